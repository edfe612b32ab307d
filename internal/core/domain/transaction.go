package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind indicates whether a ledger operation was a Charge or a Payment.
type TransactionKind string

const (
	Charge  TransactionKind = "CHARGE"
	Payment TransactionKind = "PAYMENT"
)

// Transaction is the record produced by every charge/payment attempt,
// including failed ones (Note explains the failure). It is immutable once
// constructed; the core does not store it, persistence is the caller's
// responsibility.
type Transaction struct {
	CardID     int64           `json:"cardID"`
	CardNumber string          `json:"cardNumber"` // As given at operation time, not masked
	Amount     decimal.Decimal `json:"amount"`
	Kind       TransactionKind `json:"kind"`
	Timestamp  time.Time       `json:"timestamp"`
	Success    bool            `json:"success"`
	Note       string          `json:"note"`
}
