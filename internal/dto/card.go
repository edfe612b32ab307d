package dto

import (
	"time"

	"github.com/finbyte/card_ledger_app/internal/core/domain"
	"github.com/finbyte/card_ledger_app/internal/utils"
	"github.com/shopspring/decimal"
)

// RegisterCardRequest defines the data needed to register a new card.
// Expiry accepts "MM/YY", "MM/YYYY" or a bare month; an empty string means
// the card never expires.
type RegisterCardRequest struct {
	Number      string          `json:"number" binding:"required"`
	HolderName  string          `json:"holderName" binding:"required"`
	Expiry      string          `json:"expiry" binding:"omitempty,cardexpiry"`
	CVV         string          `json:"cvv"`
	Network     string          `json:"network"` // Free-form label, e.g. "Visa"
	CreditLimit decimal.Decimal `json:"creditLimit"`
}

// CardResponse defines the data returned for a card. The number is only
// ever exposed masked; currency amounts are rendered with two decimals.
type CardResponse struct {
	CardID          int64  `json:"cardID"`
	MaskedNumber    string `json:"maskedNumber"`
	HolderName      string `json:"holderName"`
	Expiry          string `json:"expiry"` // "MM/YYYY"
	Network         string `json:"network"`
	CreditLimit     string `json:"creditLimit"`
	BalanceUsed     string `json:"balanceUsed"`
	AvailableCredit string `json:"availableCredit"`
}

// ToCardResponse converts a domain.Card to a CardResponse DTO.
func ToCardResponse(c *domain.Card) CardResponse {
	return CardResponse{
		CardID:          c.CardID,
		MaskedNumber:    c.MaskedNumber(),
		HolderName:      c.HolderName,
		Expiry:          c.Expiry.String(),
		Network:         c.Network,
		CreditLimit:     utils.FormatAmount(c.CreditLimit),
		BalanceUsed:     utils.FormatAmount(c.BalanceUsed),
		AvailableCredit: utils.FormatAmount(c.AvailableCredit()),
	}
}

// ToListCardResponse converts a slice of domain.Card to CardResponse DTOs.
func ToListCardResponse(cards []domain.Card) []CardResponse {
	res := make([]CardResponse, len(cards))
	for i := range cards {
		res[i] = ToCardResponse(&cards[i])
	}
	return res
}

// AmountRequest carries the amount for a charge or payment attempt.
type AmountRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// TransactionResponse mirrors a domain.Transaction. The card number is
// masked before leaving the API.
type TransactionResponse struct {
	CardID     int64     `json:"cardID"`
	CardNumber string    `json:"cardNumber"`
	Amount     string    `json:"amount"`
	Kind       string    `json:"kind"`
	Timestamp  time.Time `json:"timestamp"`
	Success    bool      `json:"success"`
	Note       string    `json:"note"`
}

// ToTransactionResponse converts a domain.Transaction to its DTO, masking
// the card number with the same rendering cards use.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	masked := domain.Card{Number: txn.CardNumber}
	return TransactionResponse{
		CardID:     txn.CardID,
		CardNumber: masked.MaskedNumber(),
		Amount:     utils.FormatAmount(txn.Amount),
		Kind:       string(txn.Kind),
		Timestamp:  txn.Timestamp,
		Success:    txn.Success,
		Note:       txn.Note,
	}
}

// CanChargeResponse is the pre-flight check result for a prospective charge.
type CanChargeResponse struct {
	CardID  int64  `json:"cardID"`
	Amount  string `json:"amount"`
	Allowed bool   `json:"allowed"`
}
