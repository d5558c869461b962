package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/FernandoRe0309/techstore/internal/model"
)

// OrderSummary is one past order annotated with a human-readable item list,
// e.g. "Blue T-Shirt (x2), Sneakers (x1)".
type OrderSummary struct {
	ID    uint
	Total decimal.Decimal
	Date  time.Time
	Items string
}

type HistoryService interface {
	Orders(userID uint) ([]OrderSummary, error)
}

type historyService struct {
	db *gorm.DB
}

func NewHistoryService(db *gorm.DB) HistoryService { return &historyService{db: db} }

// Orders returns the user's orders newest-first. The item summary is built in
// Go from the preloaded rows rather than a vendor-specific string-aggregate.
func (s *historyService) Orders(userID uint) ([]OrderSummary, error) {
	var orders []model.Order
	err := s.db.Preload("Items.Product").
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}

	out := make([]OrderSummary, 0, len(orders))
	for _, o := range orders {
		parts := make([]string, 0, len(o.Items))
		for _, it := range o.Items {
			parts = append(parts, fmt.Sprintf("%s (x%d)", it.Product.Name, it.Quantity))
		}
		out = append(out, OrderSummary{
			ID:    o.ID,
			Total: o.Total,
			Date:  o.Date,
			Items: strings.Join(parts, ", "),
		})
	}
	return out, nil
}
