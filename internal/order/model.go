package order

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

type PaymentMethod string

const (
	MethodCOD  PaymentMethod = "COD"
	MethodBank PaymentMethod = "BANK"
)

// BankTransferMarker is the placeholder transaction code recorded when the
// shopper confirms a transfer the system cannot verify itself.
const BankTransferMarker = "BANK_TRANSFER_PENDING"

type Order struct {
	ID              uint          `json:"id"`
	CustomerName    string        `json:"customerName"`
	Phone           string        `json:"phone"`
	Address         string        `json:"address"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	Status          Status        `json:"status"`
	TotalAmount     float64       `json:"totalAmount"`
	TransactionCode *string       `json:"transactionCode,omitempty"`
	OrderChannel    string        `json:"orderChannel"`
	CreatedAt       time.Time     `json:"createdAt"`
	Items           []Item        `json:"items,omitempty"`
}

type Item struct {
	ID        uint    `json:"id"`
	OrderID   uint    `json:"orderId"`
	ProductID uint    `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type PlaceOrderInput struct {
	Owner           string        `json:"-"`
	CustomerName    string        `json:"customerName"`
	Phone           string        `json:"phone"`
	Address         string        `json:"address"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	TransactionCode *string       `json:"transactionCode"`
}

// ListFilter narrows order listings; zero value means everything.
type ListFilter struct {
	Phone  string
	Status *Status
}

// validNext encodes the fulfillment state machine: pending -> confirmed ->
// shipped -> delivered, with cancellation allowed until shipping starts.
var validNext = map[Status]map[Status]bool{
	StatusPending:   {StatusConfirmed: true, StatusCancelled: true},
	StatusConfirmed: {StatusShipped: true, StatusCancelled: true},
	StatusShipped:   {StatusDelivered: true},
}

// CanTransition reports whether from -> to is a legal status change.
func CanTransition(from, to Status) bool {
	return validNext[from][to]
}

func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}
