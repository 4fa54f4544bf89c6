package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidDate(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"2024-01-15", true},
		{"2024-13-99", true},
		{"15-01-2024", false},
		{"2024-1-15", false},
		{"2024-01-15x", false},
		{" 2024-01-15", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidDate(tt.in))
		})
	}
}

func TestValidPhone(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"069123456", true},
		{"+37369123456", true},
		{"0691234567", false},
		{"+3736912345", false},
		{"12345", false},
		{"169123456", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidPhone(tt.in))
		})
	}
}

type sample struct {
	Name  string `validate:"required"`
	Phone string `validate:"phone"`
	Date  string `validate:"isodate"`
	Age   int    `validate:"gte=14,lte=100"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		errs := ValidateStruct(sample{Name: "Ana", Phone: "069123456", Date: "2024-01-15", Age: 20})
		assert.Empty(t, errs)
	})

	t.Run("every field invalid", func(t *testing.T) {
		errs := ValidateStruct(sample{Phone: "12345", Date: "15-01-2024", Age: 101})
		require.Len(t, errs, 4)

		byField := map[string]FieldError{}
		for _, e := range errs {
			byField[e.Field] = e
		}
		assert.Equal(t, "required", byField["Name"].Tag)
		assert.Equal(t, "phone", byField["Phone"].Tag)
		assert.Equal(t, "isodate", byField["Date"].Tag)
		assert.Equal(t, "lte", byField["Age"].Tag)
		assert.Equal(t, "Age must be less than or equal to 100", byField["Age"].Message)
	})
}
