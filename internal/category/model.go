package category

import "time"

type Category struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Input struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}
