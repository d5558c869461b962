// Package cart holds the session-scoped shopping cart: an ordered list of
// lines priced at add-time. It is pure in-memory state; nothing here touches
// the database. The cart travels inside the server-side session and is
// discarded on logout or after a successful checkout.
package cart

import (
	"encoding/gob"

	"github.com/shopspring/decimal"
)

// Action mutates one line via Update.
type Action string

const (
	ActionIncrease Action = "increase"
	ActionDecrease Action = "decrease"
	ActionRemove   Action = "remove"
)

// Line is one product in the cart. Price is the unit price captured when the
// product was first added, not re-fetched afterwards.
type Line struct {
	ProductID uint            `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Quantity  int             `json:"quantity"`
}

// Subtotal is price × quantity for this line.
func (l Line) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart keeps insertion order; a product id appears in at most one line and
// every line has quantity >= 1.
type Cart []Line

func init() {
	// The cart is stored as a session value; the session store gob-encodes it.
	gob.Register(Cart{})
}

// Add increments the line for productID, or appends a new line with
// quantity 1. It returns the resulting line count.
func (c *Cart) Add(productID uint, name string, price decimal.Decimal, image string) int {
	for i := range *c {
		if (*c)[i].ProductID == productID {
			(*c)[i].Quantity++
			return len(*c)
		}
	}
	*c = append(*c, Line{
		ProductID: productID,
		Name:      name,
		Price:     price,
		Image:     image,
		Quantity:  1,
	})
	return len(*c)
}

// Update applies action to the line for productID. A missing productID is a
// no-op, not an error. Decreasing a quantity-1 line removes it, so a
// zero-quantity line never survives.
func (c *Cart) Update(productID uint, action Action) {
	for i := range *c {
		if (*c)[i].ProductID != productID {
			continue
		}
		switch action {
		case ActionIncrease:
			(*c)[i].Quantity++
		case ActionDecrease:
			(*c)[i].Quantity--
			if (*c)[i].Quantity <= 0 {
				*c = append((*c)[:i], (*c)[i+1:]...)
			}
		case ActionRemove:
			*c = append((*c)[:i], (*c)[i+1:]...)
		}
		return
	}
}

// Total recomputes the cart total on every call; nothing is cached.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c {
		total = total.Add(l.Subtotal())
	}
	return total
}

// Quantity is the badge count: the sum of line quantities, distinct from the
// line count returned by Add.
func (c Cart) Quantity() int {
	var n int
	for _, l := range c {
		n += l.Quantity
	}
	return n
}

// Snapshot returns an independent copy, safe to keep across later cart
// mutations (checkout builds the order and the receipt from it).
func (c Cart) Snapshot() Cart {
	cp := make(Cart, len(c))
	copy(cp, c)
	return cp
}

// Clear empties the cart in place.
func (c *Cart) Clear() {
	*c = Cart{}
}
