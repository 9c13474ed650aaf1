package voucher

import "time"

type Kind string

const (
	KindPercent Kind = "percent"
	KindFixed   Kind = "fixed"
)

type Voucher struct {
	ID          uint       `json:"id"`
	Code        string     `json:"code"`
	Description string     `json:"description"`
	Kind        Kind       `json:"type"`
	Discount    float64    `json:"discount"`
	MinOrder    *float64   `json:"minOrder,omitempty"`
	MaxUses     *int       `json:"maxUses,omitempty"`
	UsedCount   int        `json:"usedCount"`
	ExpiryDate  time.Time  `json:"expiryDate"`
	Active      bool       `json:"isActive"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// Usable reports whether the voucher could still be applied at the given time.
// Authoritative checking happens in Validate; this mirrors the optimistic
// client-side filter.
func (v *Voucher) Usable(now time.Time) bool {
	if !v.Active {
		return false
	}
	if now.After(v.ExpiryDate) {
		return false
	}
	if v.MaxUses != nil && v.UsedCount >= *v.MaxUses {
		return false
	}
	return true
}

type Input struct {
	Code        string   `json:"code"`
	Description string   `json:"description"`
	Kind        Kind     `json:"type"`
	Discount    float64  `json:"discount"`
	MinOrder    *float64 `json:"minOrder"`
	MaxUses     *int     `json:"maxUses"`
	ExpiryDate  string   `json:"expiryDate"`
}

// Validation is the authoritative answer for one code against one subtotal.
type Validation struct {
	Valid    bool    `json:"valid"`
	Message  string  `json:"message"`
	Kind     Kind    `json:"type,omitempty"`
	Value    float64 `json:"discountValue,omitempty"`
	Discount float64 `json:"discount,omitempty"`
}
