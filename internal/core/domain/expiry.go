package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/finbyte/card_ledger_app/internal/apperrors"
)

// farFutureYear is the sentinel expiry year assigned to cards created without
// an expiry string. Such cards are treated as never expiring.
const farFutureYear = 2100

// ExpiryDate is a calendar month+year pair with no day component.
// Comparisons are at month granularity.
type ExpiryDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// ParseExpiry parses a card expiry string into an ExpiryDate.
// Accepted forms: "MM/YY" (interpreted as 2000+YY), "MM/YYYY", or a bare
// month which defaults to the current year (taken from now). An empty string
// yields the far-future sentinel (never expires). Non-numeric components or a
// month outside 1-12 fail with apperrors.ErrInvalidExpiry.
func ParseExpiry(s string, now time.Time) (ExpiryDate, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ExpiryDate{Year: farFutureYear, Month: 1}, nil
	}

	parts := strings.Split(s, "/")
	if len(parts) > 2 {
		return ExpiryDate{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidExpiry, s)
	}

	month, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || month < 1 || month > 12 {
		return ExpiryDate{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidExpiry, s)
	}

	year := now.Year()
	if len(parts) == 2 {
		year, err = strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil || year < 0 {
			return ExpiryDate{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidExpiry, s)
		}
		if year < 100 {
			year += 2000
		}
	}

	return ExpiryDate{Year: year, Month: month}, nil
}

// Before reports whether e is strictly earlier than other.
func (e ExpiryDate) Before(other ExpiryDate) bool {
	if e.Year != other.Year {
		return e.Year < other.Year
	}
	return e.Month < other.Month
}

// String renders the expiry as "MM/YYYY".
func (e ExpiryDate) String() string {
	return fmt.Sprintf("%02d/%04d", e.Month, e.Year)
}
