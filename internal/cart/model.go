package cart

// Line is one product in a cart plus the quantity selected for purchase.
type Line struct {
	ProductID uint    `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  *string `json:"image,omitempty"`
	Quantity  int     `json:"quantity"`
}

type Cart struct {
	Lines []Line `json:"lines"`
}

// MaxUnits caps the total quantity across all lines of one cart.
const MaxUnits = 50

// Total sums price x quantity over all lines.
func (c *Cart) Total() float64 {
	var total float64
	for _, l := range c.Lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// Count returns the number of distinct line items, not total units.
func (c *Cart) Count() int {
	return len(c.Lines)
}

// Units returns the total quantity across all lines.
func (c *Cart) Units() int {
	var units int
	for _, l := range c.Lines {
		units += l.Quantity
	}
	return units
}

func (c *Cart) line(productID uint) *Line {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			return &c.Lines[i]
		}
	}
	return nil
}

func (c *Cart) clone() *Cart {
	cp := &Cart{Lines: make([]Line, len(c.Lines))}
	copy(cp.Lines, c.Lines)
	return cp
}

// Favorite is a product reference with no additional attributes.
type Favorite struct {
	ProductID uint    `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  *string `json:"image,omitempty"`
}
