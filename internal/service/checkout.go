package service

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/FernandoRe0309/techstore/internal/cart"
	"github.com/FernandoRe0309/techstore/internal/model"
)

type CheckoutService interface {
	Checkout(userID uint, lines cart.Cart) (model.Order, error)
}

type checkoutService struct {
	db    *gorm.DB
	email EmailService
}

func NewCheckoutService(db *gorm.DB, email EmailService) CheckoutService {
	return &checkoutService{db: db, email: email}
}

// Checkout persists one order plus its line items from a cart snapshot. The
// header and the items go in a single transaction, so a failed item insert
// never leaves an orphan order. The caller clears the live session cart only
// after this returns nil.
func (s *checkoutService) Checkout(userID uint, lines cart.Cart) (model.Order, error) {
	if len(lines) == 0 {
		return model.Order{}, ErrEmptyCart
	}

	order := model.Order{UserID: userID, Total: lines.Total()}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("insert order: %w", err)
		}
		items := make([]model.OrderItem, 0, len(lines))
		for _, l := range lines {
			items = append(items, model.OrderItem{
				OrderID:   order.ID,
				ProductID: l.ProductID,
				Quantity:  l.Quantity,
				Price:     l.Price,
			})
		}
		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("insert order items: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.Order{}, err
	}

	// Confirmation mail is best-effort; the order stands either way.
	var u model.User
	if err := s.db.First(&u, userID).Error; err == nil {
		if err := s.email.Send(u.Email, "Order confirmation",
			fmt.Sprintf("Thanks! Your order #%d total $%s was received.", order.ID, order.Total.StringFixed(2))); err != nil {
			log.Printf("order %d: confirmation mail: %v", order.ID, err)
		}
	}

	return order, nil
}
