package handlers

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/FernandoRe0309/techstore/internal/cart"
)

// Session keys. The cart lives server-side next to the identity marker; the
// browser only ever holds the signed session id.
const (
	keyUserID        = "user_id"
	keyUsername      = "username"
	keyCart          = "cart"
	keyCheckoutToken = "checkout_token"
	keyFlash         = "flash"
)

func currentUser(s sessions.Session) (uint, string, bool) {
	id, ok := s.Get(keyUserID).(uint)
	if !ok || id == 0 {
		return 0, "", false
	}
	name, _ := s.Get(keyUsername).(string)
	return id, name, true
}

func currentCart(s sessions.Session) cart.Cart {
	if c, ok := s.Get(keyCart).(cart.Cart); ok {
		return c
	}
	return cart.Cart{}
}

func saveCart(s sessions.Session, c cart.Cart) {
	s.Set(keyCart, c)
}

func setFlash(s sessions.Session, msg string) {
	s.Set(keyFlash, msg)
}

// takeFlash reads and deletes the flash message. The caller is responsible
// for s.Save() once all its session writes are done.
func takeFlash(s sessions.Session) string {
	msg, _ := s.Get(keyFlash).(string)
	if msg != "" {
		s.Delete(keyFlash)
	}
	return msg
}

// viewData is the base payload every template gets: the signed-in username
// (empty when anonymous), the badge quantity, and a pending flash message.
func viewData(s sessions.Session, extra gin.H) gin.H {
	_, name, _ := currentUser(s)
	data := gin.H{
		"User":    name,
		"CartQty": currentCart(s).Quantity(),
		"Flash":   takeFlash(s),
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}
