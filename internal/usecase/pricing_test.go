package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculateNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int
	}{
		{"three nights", "2024-01-01", "2024-01-04", 3},
		{"one night", "2024-01-01", "2024-01-02", 1},
		{"across month end", "2024-01-30", "2024-02-02", 3},
		{"leap day", "2024-02-28", "2024-03-01", 2},
		{"same day falls back", "2024-01-01", "2024-01-01", 1},
		{"reversed falls back", "2024-01-05", "2024-01-01", 1},
		{"garbage falls back", "soon", "later", 1},
		{"partial day rounds up", "2024-01-01T10:00:00Z", "2024-01-02T12:00:00Z", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateNights(tt.checkIn, tt.checkOut)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 1)
		})
	}
}

func TestValidateStay(t *testing.T) {
	assert.NoError(t, ValidateStay("2024-01-01", "2024-01-02"))
	assert.ErrorIs(t, ValidateStay("2024-01-02", "2024-01-02"), ErrInvalidDates)
	assert.ErrorIs(t, ValidateStay("2024-01-03", "2024-01-02"), ErrInvalidDates)
	assert.ErrorIs(t, ValidateStay("2024-13-01", "2024-01-02"), ErrValidation)
}

func TestNewQuote_ThreeNightsAtHundred(t *testing.T) {
	q := NewQuote(100, "2024-01-01", "2024-01-04", 0.10)

	assert.Equal(t, 3, q.Nights)
	assert.Equal(t, 300.0, q.Subtotal)
	assert.Equal(t, 30.0, q.Tax)
	assert.Equal(t, 330.0, q.Payable)
}

func TestNewQuote_CentPrices(t *testing.T) {
	q := NewQuote(79.99, "2024-01-01", "2024-01-04", 0.10)

	assert.Equal(t, 239.97, q.Subtotal)
	assert.Equal(t, 24.0, q.Tax)
	assert.Equal(t, 263.97, q.Payable)
}

func TestTax_RoundsToWholeUnits(t *testing.T) {
	assert.Equal(t, 13.0, Tax(125, 0.10), "12.5 rounds half away from zero")
	assert.Equal(t, 12.0, Tax(124, 0.10))
	assert.Equal(t, 23.0, Tax(229, 0.10))
	assert.Equal(t, 23.0, Tax(229, 0), "non-positive rate uses the default")
}

func TestDetectCardBrand(t *testing.T) {
	tests := map[string]string{
		"4111 1111 1111 1111": "visa",
		"5500-0000-0000-0004": "mastercard",
		"5600000000000000":    "",
		"378282246310005":     "amex",
		"6011111111111117":    "discover",
		"6500000000000002":    "discover",
		"9999":                "",
	}
	for number, want := range tests {
		assert.Equal(t, want, DetectCardBrand(number), number)
	}
}

func TestCardExpired(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	assert.False(t, cardExpired(6, 24, now), "current month is still valid")
	assert.True(t, cardExpired(5, 24, now))
	assert.True(t, cardExpired(12, 23, now))
	assert.False(t, cardExpired(1, 25, now))
}

func TestMemberTier(t *testing.T) {
	assert.Equal(t, "Regular", MemberTier(0))
	assert.Equal(t, "Regular", MemberTier(1))
	assert.Equal(t, "Silver", MemberTier(2))
	assert.Equal(t, "Silver", MemberTier(4))
	assert.Equal(t, "Gold", MemberTier(5))
}
