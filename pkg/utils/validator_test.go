package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type signup struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
	Kind     string `validate:"omitempty,oneof=single double"`
}

func TestValidateStruct(t *testing.T) {
	assert.Nil(t, ValidateStruct(signup{Email: "a@b.com", Password: "secret1"}))

	errs := ValidateStruct(signup{Email: "nope", Password: "abc", Kind: "villa"})
	assert.Equal(t, map[string]string{
		"Email":    "Invalid email format",
		"Password": "Minimum is 6",
		"Kind":     "Must be one of: single, double",
	}, errs)
}

func TestFormatValidationErrors_SortedByField(t *testing.T) {
	got := FormatValidationErrors(map[string]string{
		"Password": "Minimum is 6",
		"Email":    "This field is required",
	})
	assert.Equal(t, "Email: This field is required; Password: Minimum is 6", got)
}
