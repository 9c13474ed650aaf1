package notification

import "time"

const (
	TargetAll      = "all"
	TargetSpecific = "specific"
)

type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Category  string    `json:"category,omitempty"`
	Target    string    `json:"target"`
	TargetIDs []string  `json:"targetIds,omitempty"`
	ActionURL *string   `json:"actionUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type SendInput struct {
	Title     string   `json:"title"`
	Message   string   `json:"message"`
	Category  string   `json:"category"`
	Target    string   `json:"target"`
	TargetIDs []string `json:"targetIds"`
	ActionURL *string  `json:"actionUrl"`
}
