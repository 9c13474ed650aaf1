package inventory

import "time"

type StockStatus string

const (
	StatusOutOfStock StockStatus = "out_of_stock"
	StatusLowStock   StockStatus = "low_stock"
	StatusReorder    StockStatus = "reorder"
	StatusInStock    StockStatus = "in_stock"
)

type Record struct {
	ID            uint        `json:"id"`
	ProductID     uint        `json:"productId"`
	Quantity      int         `json:"quantityInStock"`
	MinStock      int         `json:"minStock"`
	ReorderLevel  int         `json:"reorderLevel"`
	ReorderQty    int         `json:"reorderQuantity"`
	Status        StockStatus `json:"status"`
	LastRestocked *time.Time  `json:"lastRestocked,omitempty"`
	LastUpdated   time.Time   `json:"lastUpdated"`
	UpdatedReason *string     `json:"updatedReason,omitempty"`
}

// StatusFor derives the stock band from a quantity and the record's
// thresholds: empty, below minimum, below reorder level, or normal.
func StatusFor(quantity, minStock, reorderLevel int) StockStatus {
	switch {
	case quantity <= 0:
		return StatusOutOfStock
	case quantity < minStock:
		return StatusLowStock
	case quantity < reorderLevel:
		return StatusReorder
	default:
		return StatusInStock
	}
}

type AdjustInput struct {
	Quantity int     `json:"quantity"`
	Reason   *string `json:"reason"`
}
