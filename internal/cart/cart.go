// Package cart implements the shopping cart: one line per product, keyed by
// product id and listed in the order products were first added.
package cart

import (
	"encoding/json"

	"freshvegies/internal/model"
)

// MaxQuantity is the largest quantity a single line can hold.
const MaxQuantity = 99

// Cart holds the line items of a single shopper. It is not safe for concurrent
// use; callers serialise access per session.
type Cart struct {
	lines map[string]*model.CartLine
	order []string
}

// New creates an empty cart.
func New() *Cart {
	return &Cart{
		lines: make(map[string]*model.CartLine),
	}
}

// Add puts one unit of product into the cart. A product already in the cart has
// its quantity incremented up to MaxQuantity; otherwise a new line with
// quantity 1 is appended.
func (c *Cart) Add(product model.Product, shopName string) model.CartLine {
	c.init()

	if line, ok := c.lines[product.ID]; ok {
		if line.Quantity < MaxQuantity {
			line.Quantity++
		}
		return *line
	}

	line := &model.CartLine{
		Product:  product,
		Quantity: 1,
		ShopName: shopName,
	}
	c.lines[product.ID] = line
	c.order = append(c.order, product.ID)

	return *line
}

// Remove deletes the line for productID. It reports whether a line was removed.
func (c *Cart) Remove(productID string) bool {
	if _, ok := c.lines[productID]; !ok {
		return false
	}

	delete(c.lines, productID)
	for i, id := range c.order {
		if id == productID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}

	return true
}

// UpdateQuantity adds delta to the quantity of the line for productID.
// A change that would leave the quantity at zero or below is discarded; lines
// are only ever removed by Remove. Increases stop at MaxQuantity. The boolean
// reports whether the quantity changed.
func (c *Cart) UpdateQuantity(productID string, delta int) (model.CartLine, bool) {
	line, ok := c.lines[productID]
	if !ok {
		return model.CartLine{}, false
	}

	// Compare against the headroom rather than summing, so no delta overflows.
	var next int
	switch {
	case delta == 0, delta <= -line.Quantity:
		return *line, false
	case delta >= MaxQuantity-line.Quantity:
		next = MaxQuantity
	default:
		next = line.Quantity + delta
	}

	if next == line.Quantity {
		return *line, false
	}

	line.Quantity = next
	return *line, true
}

// Line returns the line for productID.
func (c *Cart) Line(productID string) (model.CartLine, bool) {
	line, ok := c.lines[productID]
	if !ok {
		return model.CartLine{}, false
	}
	return *line, true
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []model.CartLine {
	lines := make([]model.CartLine, 0, len(c.order))
	for _, id := range c.order {
		lines = append(lines, *c.lines[id])
	}
	return lines
}

// Total returns the sum of effective price times quantity over all lines.
func (c *Cart) Total() float64 {
	var total float64
	for _, id := range c.order {
		total += c.lines[id].LineTotal()
	}
	return total
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.order)
}

// Count returns the total number of units across all lines.
func (c *Cart) Count() int {
	count := 0
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = make(map[string]*model.CartLine)
	c.order = nil
}

// View returns the cart as presented to clients.
func (c *Cart) View() model.CartView {
	return model.CartView{
		Lines: c.Lines(),
		Total: c.Total(),
		Count: c.Count(),
	}
}

// MarshalJSON encodes the cart as its ordered list of lines.
func (c *Cart) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Lines())
}

// UnmarshalJSON restores a cart from an ordered list of lines.
// Lines for a repeated product id are merged, non-positive quantities dropped
// and quantities above MaxQuantity capped.
func (c *Cart) UnmarshalJSON(data []byte) error {
	var lines []model.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		return err
	}

	c.Clear()
	for _, l := range lines {
		if l.Quantity <= 0 {
			continue
		}
		if existing, ok := c.lines[l.ID]; ok {
			existing.Quantity = min(MaxQuantity, existing.Quantity+min(l.Quantity, MaxQuantity))
			continue
		}
		line := l
		line.Quantity = min(line.Quantity, MaxQuantity)
		c.lines[l.ID] = &line
		c.order = append(c.order, l.ID)
	}

	return nil
}

func (c *Cart) init() {
	if c.lines == nil {
		c.lines = make(map[string]*model.CartLine)
	}
}
