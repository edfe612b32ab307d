package domain_test

import (
	"testing"
	"time"

	"github.com/finbyte/card_ledger_app/internal/apperrors"
	"github.com/finbyte/card_ledger_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExpiry(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   string
		want    domain.ExpiryDate
		wantErr bool
	}{
		{name: "MM/YY", input: "08/26", want: domain.ExpiryDate{Year: 2026, Month: 8}},
		{name: "single-digit month", input: "8/26", want: domain.ExpiryDate{Year: 2026, Month: 8}},
		{name: "MM/YYYY", input: "12/2030", want: domain.ExpiryDate{Year: 2030, Month: 12}},
		{name: "two-digit year maps to 2000s", input: "01/99", want: domain.ExpiryDate{Year: 2099, Month: 1}},
		{name: "bare month defaults to current year", input: "07", want: domain.ExpiryDate{Year: 2026, Month: 7}},
		{name: "surrounding whitespace tolerated", input: "  09/27 ", want: domain.ExpiryDate{Year: 2027, Month: 9}},
		{name: "empty input is far-future sentinel", input: "", want: domain.ExpiryDate{Year: 2100, Month: 1}},
		{name: "blank input is far-future sentinel", input: "   ", want: domain.ExpiryDate{Year: 2100, Month: 1}},
		{name: "month zero", input: "0/26", wantErr: true},
		{name: "month thirteen", input: "13/26", wantErr: true},
		{name: "non-numeric month", input: "ab/26", wantErr: true},
		{name: "non-numeric year", input: "06/xx", wantErr: true},
		{name: "too many separators", input: "1/2/3", wantErr: true},
		{name: "negative year", input: "06/-1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseExpiry(tt.input, now)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrInvalidExpiry)
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpiryDate_Before(t *testing.T) {
	aug := domain.ExpiryDate{Year: 2026, Month: 8}

	assert.True(t, domain.ExpiryDate{Year: 2026, Month: 7}.Before(aug))
	assert.True(t, domain.ExpiryDate{Year: 2025, Month: 12}.Before(aug))
	assert.False(t, aug.Before(aug))
	assert.False(t, domain.ExpiryDate{Year: 2026, Month: 9}.Before(aug))
	assert.False(t, domain.ExpiryDate{Year: 2027, Month: 1}.Before(aug))
}

func TestExpiryDate_String(t *testing.T) {
	assert.Equal(t, "08/2026", domain.ExpiryDate{Year: 2026, Month: 8}.String())
	assert.Equal(t, "12/2030", domain.ExpiryDate{Year: 2030, Month: 12}.String())
}
