package promotion

import "time"

type Promotion struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Active      bool      `json:"isActive"`
	UsageLimit  *int      `json:"usageLimit,omitempty"`
	UsageCount  int       `json:"usageCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Exhausted reports whether the usage limit, if any, has been reached.
func (p *Promotion) Exhausted() bool {
	return p.UsageLimit != nil && p.UsageCount >= *p.UsageLimit
}

// Running reports whether the promotion is active and inside its window.
func (p *Promotion) Running(now time.Time) bool {
	return p.Active && !now.Before(p.StartDate) && !now.After(p.EndDate)
}
