package domain

import (
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
)

// Card represents a credit card held by the card registry.
// Number, holder, expiry, CVV, network and limit are fixed at creation;
// BalanceUsed is the only mutable field and changes exclusively through
// Charge and Payment.
type Card struct {
	CardID      int64           `json:"cardID"` // Assigned sequentially by the registry
	Number      string          `json:"number"` // Digits only, spaces stripped
	HolderName  string          `json:"holderName"`
	Expiry      ExpiryDate      `json:"expiry"`
	CVV         string          `json:"-"` // Not serialized
	Network     string          `json:"network"` // Free-form label, e.g. "Visa"
	CreditLimit decimal.Decimal `json:"creditLimit"`
	BalanceUsed decimal.Decimal `json:"balanceUsed"`
}

// NewCard builds a card with a zero balance. The raw number has embedded
// whitespace stripped; no validity check is performed here (the registry
// runs the Luhn check at insertion).
func NewCard(number, holder string, expiry ExpiryDate, cvv, network string, creditLimit decimal.Decimal) Card {
	return Card{
		Number:      stripSpaces(number),
		HolderName:  holder,
		Expiry:      expiry,
		CVV:         cvv,
		Network:     network,
		CreditLimit: creditLimit,
		BalanceUsed: decimal.Zero,
	}
}

// ValidCardNumber runs the Luhn checksum over a card number string.
// Embedded whitespace is ignored; any other non-digit character, or an
// empty/blank input, fails the check.
func ValidCardNumber(number string) bool {
	digits := stripSpaces(number)
	if digits == "" {
		return false
	}

	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// IsValidNumber reports whether the card's number passes the Luhn check.
func (c *Card) IsValidNumber() bool {
	return ValidCardNumber(c.Number)
}

// AvailableCredit returns creditLimit - balanceUsed.
func (c *Card) AvailableCredit() decimal.Decimal {
	return c.CreditLimit.Sub(c.BalanceUsed)
}

// MaskedNumber returns a display-safe rendering of the card number: the
// first and last four digits with the middle replaced by asterisk groups,
// or "****" alone when the number has fewer than 8 digits.
func (c *Card) MaskedNumber() string {
	if len(c.Number) < 8 {
		return "****"
	}
	return c.Number[:4] + " **** **** " + c.Number[len(c.Number)-4:]
}

// IsExpired reports whether the card's expiry year-month is strictly before
// the current year-month. A card expiring in the current month is not
// expired.
func (c *Card) IsExpired(now time.Time) bool {
	return c.Expiry.Before(ExpiryDate{Year: now.Year(), Month: int(now.Month())})
}

// CanCharge reports whether a charge of the given amount would succeed,
// without mutating the card.
func (c *Card) CanCharge(amount decimal.Decimal, now time.Time) bool {
	if amount.LessThanOrEqual(decimal.Zero) {
		return false
	}
	if c.IsExpired(now) {
		return false
	}
	return !c.BalanceUsed.Add(amount).GreaterThan(c.CreditLimit)
}

// Charge attempts to add amount to the card's balance. A rejected attempt
// never mutates the card; the returned Transaction carries the outcome and
// a human-readable note either way.
func (c *Card) Charge(amount decimal.Decimal, now time.Time) Transaction {
	txn := Transaction{
		CardID:     c.CardID,
		CardNumber: c.Number,
		Amount:     amount,
		Kind:       Charge,
		Timestamp:  now,
	}
	switch {
	case amount.LessThanOrEqual(decimal.Zero):
		txn.Note = "Invalid amount"
	case c.IsExpired(now):
		txn.Note = "Card expired"
	case c.BalanceUsed.Add(amount).GreaterThan(c.CreditLimit):
		txn.Note = "Insufficient credit"
	default:
		c.BalanceUsed = c.BalanceUsed.Add(amount)
		txn.Success = true
		txn.Note = "Charge successful"
	}
	return txn
}

// Payment attempts to subtract amount from the card's balance. Overpayment
// beyond a zero balance is rejected, leaving the card untouched.
func (c *Card) Payment(amount decimal.Decimal, now time.Time) Transaction {
	txn := Transaction{
		CardID:     c.CardID,
		CardNumber: c.Number,
		Amount:     amount,
		Kind:       Payment,
		Timestamp:  now,
	}
	switch {
	case amount.LessThanOrEqual(decimal.Zero):
		txn.Note = "Invalid amount"
	case amount.GreaterThan(c.BalanceUsed):
		txn.Note = "Payment exceeds balance"
	default:
		c.BalanceUsed = c.BalanceUsed.Sub(amount)
		txn.Success = true
		txn.Note = "Payment successful"
	}
	return txn
}

func stripSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
