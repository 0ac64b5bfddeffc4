package cart

import (
	"fmt"
	"strings"
)

// Line is one distinct plant selected for purchase.
type Line struct {
	PlantID    string `json:"plantId"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
	ImageURL   string `json:"imageUrl,omitempty"`
	NurseryID  string `json:"nurseryId,omitempty"`
	Quantity   int    `json:"quantity"`
}

// LineTotal is the price of one line: unit price times quantity.
func LineTotal(l Line) int64 {
	return l.PriceCents * int64(l.Quantity)
}

// Cart is an ordered collection of lines, at most one per plant ID.
// It is not safe for concurrent use; Store serializes access.
type Cart struct {
	lines []Line
}

// AddLine appends the line with quantity 1 if no line shares its plant ID.
// Re-adding a present plant is ignored entirely, it does not bump the
// quantity. Returns whether the cart changed.
func (c *Cart) AddLine(l Line) bool {
	if c.find(l.PlantID) >= 0 {
		return false
	}
	l.Quantity = 1
	c.lines = append(c.lines, l)
	return true
}

// Remove deletes the line with the given plant ID. Absent IDs are a no-op.
func (c *Cart) Remove(plantID string) {
	if i := c.find(plantID); i >= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	}
}

// SetQuantity updates the matching line's quantity. A quantity below one
// removes the line; a stored line never holds quantity zero.
func (c *Cart) SetQuantity(plantID string, qty int) {
	if qty < 1 {
		c.Remove(plantID)
		return
	}
	if i := c.find(plantID); i >= 0 {
		c.lines[i].Quantity = qty
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int { return len(c.lines) }

func (c *Cart) Empty() bool { return len(c.lines) == 0 }

// GrandTotal sums the line totals. An empty cart totals zero.
func (c *Cart) GrandTotal() int64 {
	var sum int64
	for _, l := range c.lines {
		sum += LineTotal(l)
	}
	return sum
}

// Fingerprint is a stable digest of the cart contents. Checkout records it
// when payment starts and refuses confirmations for a cart that changed
// in the meantime.
func (c *Cart) Fingerprint() string {
	parts := make([]string, 0, len(c.lines))
	for _, l := range c.lines {
		parts = append(parts, fmt.Sprintf("%s:%d:%d", l.PlantID, l.Quantity, l.PriceCents))
	}
	return strings.Join(parts, "|")
}

func (c *Cart) find(plantID string) int {
	for i, l := range c.lines {
		if l.PlantID == plantID {
			return i
		}
	}
	return -1
}
