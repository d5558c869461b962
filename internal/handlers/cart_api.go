package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/FernandoRe0309/techstore/internal/cart"
	"github.com/FernandoRe0309/techstore/internal/model"
)

// CartAPI serves the two AJAX cart endpoints. Mutations touch only session
// state; the database is read solely to resolve the authoritative product.
type CartAPI struct {
	DB *gorm.DB
}

func NewCartAPI(db *gorm.DB) *CartAPI { return &CartAPI{DB: db} }

// Add puts one unit of a product in the session cart. The client may post
// name/price/image alongside the id, but those are ignored: the unit price
// captured on the line is always the current products row.
func (h *CartAPI) Add(c *gin.Context) {
	var req struct {
		ID uint `json:"id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "bad json"})
		return
	}

	var p model.Product
	if err := h.DB.First(&p, req.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "unknown product"})
			return
		}
		log.Printf("cart add: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "catalog unavailable"})
		return
	}

	s := sessions.Default(c)
	ct := currentCart(s)
	n := ct.Add(p.ID, p.Name, p.Price, p.Image)
	saveCart(s, ct)
	if err := s.Save(); err != nil {
		log.Printf("cart add: session save: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "session unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "cartLength": n})
}

// Update applies increase/decrease/remove to one line and answers with the
// whole cart plus its recomputed total. An unknown id is a no-op.
func (h *CartAPI) Update(c *gin.Context) {
	var req struct {
		ID     uint   `json:"id"`
		Action string `json:"action"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "bad json"})
		return
	}

	s := sessions.Default(c)
	ct := currentCart(s)
	ct.Update(req.ID, cart.Action(req.Action))
	saveCart(s, ct)
	if err := s.Save(); err != nil {
		log.Printf("cart update: session save: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "session unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "cart": ct, "total": ct.Total()})
}
