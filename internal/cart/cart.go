// Package cart keeps a visitor's line items consistent with the catalog.
//
// A Cart holds at most one LineItem per product id and never stores a
// quantity below one. Absent ids are silent no-ops for every mutation.
// Derived values (Total, Count, Units, Lines) are recomputed on each call.
//
// A Cart is not safe for concurrent use; callers serialise access
// (see the session package).
package cart

import (
	"fmt"

	"github.com/mistore/storefront/internal/models"
)

const (
	msgRemoved = "Товар удален из корзины"
)

// MaxQuantity caps a single line. It keeps price*quantity well inside int64
// for any catalog price below 9e15.
const MaxQuantity = 999

// Catalog resolves product ids to catalog entries
type Catalog interface {
	Lookup(id int64) (models.Product, bool)
}

// LineItem is a product id with a positive quantity
type LineItem struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// Line is a LineItem joined with its catalog product for display
type Line struct {
	Product  models.Product `json:"product"`
	Quantity int            `json:"quantity"`
	Subtotal int64          `json:"subtotal"`
}

// Cart is the mutable per-session collection of line items
type Cart struct {
	catalog  Catalog
	notifier Notifier
	items    []LineItem
}

// New creates an empty cart priced against catalog.
// A nil notifier discards confirmations.
func New(catalog Catalog, notifier Notifier) *Cart {
	if notifier == nil {
		notifier = discard{}
	}
	return &Cart{
		catalog:  catalog,
		notifier: notifier,
	}
}

// Add puts one unit of product into the cart and emits one confirmation.
// The product is resolved through the catalog; products the catalog does not
// know and lines already at MaxQuantity are left untouched and not confirmed.
func (c *Cart) Add(product models.Product) {
	p, ok := c.catalog.Lookup(product.ID)
	if !ok {
		return
	}
	if i := c.find(p.ID); i >= 0 {
		if c.items[i].Quantity >= MaxQuantity {
			return
		}
		c.items[i].Quantity++
	} else {
		c.items = append(c.items, LineItem{ProductID: p.ID, Quantity: 1})
	}
	c.notifier.Notify(fmt.Sprintf("%s добавлен в корзину", p.Name))
}

// Remove drops the line for productID if present
func (c *Cart) Remove(productID int64) {
	i := c.find(productID)
	if i < 0 {
		return
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	c.notifier.Notify(msgRemoved)
}

// UpdateQuantity adds delta to the line's quantity.
// A result of zero or below removes the line; results above MaxQuantity are
// clamped to it.
func (c *Cart) UpdateQuantity(productID int64, delta int) {
	i := c.find(productID)
	if i < 0 {
		return
	}
	cur := c.items[i].Quantity
	if delta > MaxQuantity-cur {
		c.items[i].Quantity = MaxQuantity
		return
	}
	q := cur + delta
	if q <= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
		return
	}
	c.items[i].Quantity = q
}

// Total is the sum of unit price times quantity over all lines
func (c *Cart) Total() int64 {
	var total int64
	for _, it := range c.items {
		p, ok := c.catalog.Lookup(it.ProductID)
		if !ok {
			continue
		}
		total += p.Price * int64(it.Quantity)
	}
	return total
}

// Count is the number of distinct lines, shown on the cart badge
func (c *Cart) Count() int {
	return len(c.items)
}

// Units is the number of items across all lines
func (c *Cart) Units() int {
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

// Items returns a copy of the line items in insertion order
func (c *Cart) Items() []LineItem {
	items := make([]LineItem, len(c.items))
	copy(items, c.items)
	return items
}

// Lines returns line items joined with catalog data.
// Products unknown to the catalog are reported with only their id and no price.
func (c *Cart) Lines() []Line {
	lines := make([]Line, 0, len(c.items))
	for _, it := range c.items {
		p, ok := c.catalog.Lookup(it.ProductID)
		if !ok {
			p = models.Product{ID: it.ProductID}
		}
		lines = append(lines, Line{
			Product:  p,
			Quantity: it.Quantity,
			Subtotal: p.Price * int64(it.Quantity),
		})
	}
	return lines
}

func (c *Cart) find(productID int64) int {
	for i, it := range c.items {
		if it.ProductID == productID {
			return i
		}
	}
	return -1
}
