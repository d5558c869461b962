package handlers

import (
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/FernandoRe0309/techstore/internal/model"
	"github.com/FernandoRe0309/techstore/internal/service"
)

// Pages renders the HTML views.
type Pages struct {
	DB      *gorm.DB
	History service.HistoryService
}

func NewPages(db *gorm.DB, history service.HistoryService) *Pages {
	return &Pages{DB: db, History: history}
}

func (h *Pages) Index(c *gin.Context) {
	var products []model.Product
	if err := h.DB.Order("id asc").Find(&products).Error; err != nil {
		log.Printf("catalog: %v", err)
		c.String(http.StatusInternalServerError, "catalog unavailable")
		return
	}
	s := sessions.Default(c)
	data := viewData(s, gin.H{"Products": products})
	_ = s.Save()
	c.HTML(http.StatusOK, "index.html", data)
}

func (h *Pages) LoginForm(c *gin.Context) {
	s := sessions.Default(c)
	data := viewData(s, nil)
	_ = s.Save()
	c.HTML(http.StatusOK, "login.html", data)
}

func (h *Pages) RegisterForm(c *gin.Context) {
	s := sessions.Default(c)
	data := viewData(s, nil)
	_ = s.Save()
	c.HTML(http.StatusOK, "register.html", data)
}

// CartView shows the cart with its recomputed total and arms the checkout
// form with a fresh one-shot token.
func (h *Pages) CartView(c *gin.Context) {
	s := sessions.Default(c)
	ct := currentCart(s)
	token := uuid.NewString()
	s.Set(keyCheckoutToken, token)
	data := viewData(s, gin.H{
		"Cart":          ct,
		"Total":         ct.Total().StringFixed(2),
		"CheckoutToken": token,
	})
	_ = s.Save()
	c.HTML(http.StatusOK, "cart.html", data)
}

func (h *Pages) HistoryView(c *gin.Context) {
	s := sessions.Default(c)
	uid, _, ok := currentUser(s)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	orders, err := h.History.Orders(uid)
	if err != nil {
		log.Printf("history: %v", err)
		c.String(http.StatusInternalServerError, "history unavailable")
		return
	}
	data := viewData(s, gin.H{"Orders": orders})
	_ = s.Save()
	c.HTML(http.StatusOK, "history.html", data)
}
