package usecase

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"hotel-reservation/internal/data/entity"
)

// DefaultTaxRate applies when the configured rate is not positive.
const DefaultTaxRate = 0.10

// Quote is the price breakdown shown to the payer. Subtotal is what the
// ledger stores as total_price.
type Quote struct {
	Nights   int
	Subtotal float64
	Tax      float64
	Payable  float64
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(entity.DateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// CalculateNights returns the ceiling of the day difference between the
// two dates. Unparsable dates and non-positive spans count as one night.
func CalculateNights(checkIn, checkOut string) int {
	in, err := parseDate(checkIn)
	if err != nil {
		return 1
	}
	out, err := parseDate(checkOut)
	if err != nil {
		return 1
	}

	nights := int(math.Ceil(out.Sub(in).Hours() / 24))
	if nights <= 0 {
		return 1
	}
	return nights
}

// ValidateStay requires two valid dates with check-out after check-in.
func ValidateStay(checkIn, checkOut string) error {
	in, err := parseDate(checkIn)
	if err != nil {
		return fmt.Errorf("%w: check_in %q is not a date", ErrValidation, checkIn)
	}
	out, err := parseDate(checkOut)
	if err != nil {
		return fmt.Errorf("%w: check_out %q is not a date", ErrValidation, checkOut)
	}
	if !out.After(in) {
		return ErrInvalidDates
	}
	return nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// Subtotal is price times nights at cent precision.
func Subtotal(pricePerNight float64, nights int) float64 {
	return roundCents(pricePerNight * float64(nights))
}

// Tax rounds subtotal*rate to whole currency units.
func Tax(subtotal, rate float64) float64 {
	if rate <= 0 {
		rate = DefaultTaxRate
	}
	return math.Round(subtotal * rate)
}

func NewQuote(pricePerNight float64, checkIn, checkOut string, taxRate float64) Quote {
	nights := CalculateNights(checkIn, checkOut)
	subtotal := Subtotal(pricePerNight, nights)
	tax := Tax(subtotal, taxRate)

	return Quote{
		Nights:   nights,
		Subtotal: subtotal,
		Tax:      tax,
		Payable:  roundCents(subtotal + tax),
	}
}

var cardBrands = []struct {
	brand   string
	pattern *regexp.Regexp
}{
	{"visa", regexp.MustCompile(`^4`)},
	{"mastercard", regexp.MustCompile(`^5[1-5]`)},
	{"amex", regexp.MustCompile(`^3[47]`)},
	{"discover", regexp.MustCompile(`^6(?:011|5)`)},
}

// DetectCardBrand names the card network from the number prefix, or
// returns "" when none matches.
func DetectCardBrand(number string) string {
	number = NormalizeCardNumber(number)
	for _, cb := range cardBrands {
		if cb.pattern.MatchString(number) {
			return cb.brand
		}
	}
	return ""
}

// NormalizeCardNumber strips the spaces and dashes people type.
func NormalizeCardNumber(number string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(number)
}

func lastFour(number string) string {
	if len(number) <= 4 {
		return number
	}
	return number[len(number)-4:]
}

// cardExpired reports whether a MM/YY expiry lies before now's month.
func cardExpired(month, year int, now time.Time) bool {
	fullYear := 2000 + year
	if fullYear != now.Year() {
		return fullYear < now.Year()
	}
	return month < int(now.Month())
}

// MemberTier grades a guest by how many reservations they hold.
func MemberTier(reservations int) string {
	switch {
	case reservations >= 5:
		return "Gold"
	case reservations >= 2:
		return "Silver"
	default:
		return "Regular"
	}
}
