package entity

import (
	"slices"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartLine is one listing in a cart. Title, price, image and seller are
// snapshots taken when the listing was first added.
type CartLine struct {
	ListingID  uuid.UUID       `json:"listing_id"`
	Title      string          `json:"title"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	ImageURL   *string         `json:"image_url"`
	SellerName string          `json:"seller_name"`
	Quantity   int             `json:"quantity"`
}

// Subtotal is UnitPrice × Quantity.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is an ordered collection of lines with at most one line per listing.
// Totals are derived on every read and never stored.
//
// A Cart is not safe for concurrent use; the session store serializes access.
type Cart struct {
	lines []CartLine
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// Add puts a listing in the cart. An existing line has its quantity
// incremented by one; otherwise the line is appended with quantity 1.
func (c *Cart) Add(line CartLine) {
	if i := c.index(line.ListingID); i >= 0 {
		c.lines[i].Quantity++

		return
	}

	line.Quantity = 1
	c.lines = append(c.lines, line)
}

// Remove deletes the line for listingID. Missing lines are ignored.
func (c *Cart) Remove(listingID uuid.UUID) {
	if i := c.index(listingID); i >= 0 {
		c.lines = slices.Delete(c.lines, i, i+1)
	}
}

// UpdateQuantity sets the quantity of a line. A quantity of zero or less
// removes the line. Missing lines are ignored.
func (c *Cart) UpdateQuantity(listingID uuid.UUID, quantity int) {
	if quantity <= 0 {
		c.Remove(listingID)

		return
	}

	if i := c.index(listingID); i >= 0 {
		c.lines[i].Quantity = quantity
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []CartLine {
	return slices.Clone(c.lines)
}

// Line returns the line for listingID.
func (c *Cart) Line(listingID uuid.UUID) (CartLine, bool) {
	if i := c.index(listingID); i >= 0 {
		return c.lines[i], true
	}

	return CartLine{}, false
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// TotalItems is the sum of quantities.
func (c *Cart) TotalItems() int {
	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}

	return total
}

// TotalPrice is the sum of unit price × quantity.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.Subtotal())
	}

	return total
}

func (c *Cart) index(listingID uuid.UUID) int {
	return slices.IndexFunc(c.lines, func(line CartLine) bool {
		return line.ListingID == listingID
	})
}
