package order

import "strings"

// Shipping is free above the threshold, a flat fee below it. Amounts in VND.
const (
	FreeShippingThreshold = 150000
	FlatShippingFee       = 30000
)

// ShippingFee returns the delivery fee for a cart subtotal.
func ShippingFee(subtotal float64) float64 {
	if subtotal >= FreeShippingThreshold {
		return 0
	}
	return FlatShippingFee
}

// phoneFormatting are the characters stripped before the digit check.
const phoneFormatting = "-+() "

// ValidatePhone accepts a phone string iff, after removing formatting
// characters, exactly 10 digits remain and nothing else.
func ValidatePhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return ErrMissingPhone
	}

	digits := 0
	for _, r := range phone {
		if strings.ContainsRune(phoneFormatting, r) {
			continue
		}
		if r < '0' || r > '9' {
			return ErrInvalidPhone
		}
		digits++
	}

	if digits != 10 {
		return ErrInvalidPhone
	}
	return nil
}

func validatePlaceOrder(input *PlaceOrderInput) error {
	input.Owner = strings.TrimSpace(input.Owner)
	input.CustomerName = strings.TrimSpace(input.CustomerName)
	input.Address = strings.TrimSpace(input.Address)

	if input.Owner == "" {
		return ErrMissingOwner
	}
	if input.CustomerName == "" {
		return ErrMissingName
	}
	if err := ValidatePhone(input.Phone); err != nil {
		return err
	}
	if input.Address == "" {
		return ErrMissingAddress
	}
	if input.PaymentMethod != MethodCOD && input.PaymentMethod != MethodBank {
		return ErrInvalidMethod
	}
	return nil
}
