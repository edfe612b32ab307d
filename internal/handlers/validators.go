package handlers

import (
	"time"

	"github.com/finbyte/card_ledger_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// registerCustomValidators installs binding validators on gin's validator
// engine. "cardexpiry" accepts anything ParseExpiry accepts, so malformed
// expiry strings are rejected at the binding layer before reaching the
// service.
func registerCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("cardexpiry", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseExpiry(fl.Field().String(), time.Now())
		return err == nil
	})
}
