package product

import "time"

type Product struct {
	ID          uint       `json:"id"`
	Name        string     `json:"name"`
	Price       float64    `json:"price"`
	ImageURL    *string    `json:"image,omitempty"`
	Description *string    `json:"description,omitempty"`
	Stock       int        `json:"stock"`
	CategoryID  *uint      `json:"categoryId,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

type CreateInput struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	ImageURL    *string `json:"image"`
	Description *string `json:"description"`
	Stock       int     `json:"stock"`
	CategoryID  *uint   `json:"categoryId"`
}

type UpdateInput struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	ImageURL    *string  `json:"image"`
	Description *string  `json:"description"`
	Stock       *int     `json:"stock"`
	CategoryID  *uint    `json:"categoryId"`
}

// ListFilter narrows List results; zero value means everything.
type ListFilter struct {
	Search     string
	CategoryID *uint
}
