package review

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

type Review struct {
	ID             uint      `json:"id"`
	ProductID      uint      `json:"productId"`
	Author         string    `json:"author"`
	Rating         int       `json:"rating"`
	Comment        string    `json:"comment"`
	Status         Status    `json:"status"`
	HelpfulCount   int       `json:"helpfulCount"`
	UnhelpfulCount int       `json:"unhelpfulCount"`
	CreatedAt      time.Time `json:"createdAt"`
}

type CreateInput struct {
	ProductID uint   `json:"productId"`
	Author    string `json:"author"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}
