package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/FernandoRe0309/techstore/internal/receipt"
	"github.com/FernandoRe0309/techstore/internal/service"
)

type Checkout struct {
	Svc service.CheckoutService
}

func NewCheckout(svc service.CheckoutService) *Checkout { return &Checkout{Svc: svc} }

// Checkout persists the order from a cart snapshot and streams the PDF ticket
// back. Missing identity or an empty cart fall back to navigation, not an
// error page. The live cart is cleared only after persistence succeeds, so a
// failed insert leaves it intact.
func (h *Checkout) Checkout(c *gin.Context) {
	s := sessions.Default(c)
	uid, username, ok := currentUser(s)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	ct := currentCart(s)
	if len(ct) == 0 {
		c.Redirect(http.StatusFound, "/cart")
		return
	}

	// The cart view issued a one-shot token with the form. A stale resubmit
	// (second tab, double click) no longer matches and goes back to the cart
	// instead of writing a duplicate order.
	want, _ := s.Get(keyCheckoutToken).(string)
	if want == "" || c.PostForm("checkout_token") != want {
		c.Redirect(http.StatusFound, "/cart")
		return
	}

	snapshot := ct.Snapshot()
	order, err := h.Svc.Checkout(uid, snapshot)
	if err != nil {
		log.Printf("checkout: %v", err)
		c.String(http.StatusInternalServerError, "checkout failed")
		return
	}

	s.Delete(keyCheckoutToken)
	ct.Clear()
	saveCart(s, ct)
	if err := s.Save(); err != nil {
		log.Printf("checkout: session save: %v", err)
	}

	lines := make([]receipt.Line, 0, len(snapshot))
	for _, l := range snapshot {
		lines = append(lines, receipt.Line{Name: l.Name, Quantity: l.Quantity, Price: l.Price})
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", "attachment; filename="+receipt.Filename(order.ID))
	err = receipt.Render(c.Writer, receipt.Receipt{
		OrderID:  order.ID,
		Customer: username,
		Date:     time.Now(),
		Lines:    lines,
		Total:    order.Total,
	})
	if err != nil {
		// The order is already persisted; nothing to roll back here.
		log.Printf("checkout: render receipt for order %d: %v", order.ID, err)
	}
}
