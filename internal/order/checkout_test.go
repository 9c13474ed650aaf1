package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{"PlainTenDigits", "0901234567", true},
		{"Dashes", "090-123-4567", true},
		{"Parens", "(090) 123 4567", true},
		{"PlusPrefix", "+0901234567", true},
		{"NineDigits", "090123456", false},
		{"ElevenDigits", "09012345678", false},
		{"AlphaMixedIn", "090123456a", false},
		{"LetterInsideFormatting", "090-abc-4567", false},
		{"Empty", "", false},
		{"OnlyFormatting", "()- +", false},
		{"Dots", "090.123.4567", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePhone(tt.phone)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestShippingFee(t *testing.T) {
	tests := []struct {
		name     string
		subtotal float64
		fee      float64
	}{
		{"WellBelowThreshold", 35000, 30000},
		{"JustBelowThreshold", 149999, 30000},
		{"AtThreshold", 150000, 0},
		{"AboveThreshold", 200000, 0},
		{"Zero", 0, 30000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee := ShippingFee(tt.subtotal)
			assert.Equal(t, tt.fee, fee)
			assert.Equal(t, tt.subtotal+tt.fee, tt.subtotal+ShippingFee(tt.subtotal))
		})
	}
}

func TestCanTransition(t *testing.T) {
	allowed := [][2]Status{
		{StatusPending, StatusConfirmed},
		{StatusPending, StatusCancelled},
		{StatusConfirmed, StatusShipped},
		{StatusConfirmed, StatusCancelled},
		{StatusShipped, StatusDelivered},
	}
	for _, tr := range allowed {
		assert.True(t, CanTransition(tr[0], tr[1]), "%s -> %s", tr[0], tr[1])
	}

	forbidden := [][2]Status{
		{StatusPending, StatusShipped},
		{StatusPending, StatusDelivered},
		{StatusShipped, StatusCancelled},
		{StatusDelivered, StatusPending},
		{StatusCancelled, StatusConfirmed},
		{StatusConfirmed, StatusPending},
	}
	for _, tr := range forbidden {
		assert.False(t, CanTransition(tr[0], tr[1]), "%s -> %s", tr[0], tr[1])
	}
}
