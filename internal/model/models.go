package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"column:password_hash;not null"`
	CreatedAt    time.Time
}

func (User) TableName() string { return "users" }

// Product is read-only from the store's perspective; rows are seeded
// externally (or via the dev seed endpoint).
type Product struct {
	ID    uint            `gorm:"primaryKey" json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Image string          `json:"image"`
}

type Order struct {
	ID     uint            `gorm:"primaryKey"`
	UserID uint            `gorm:"index"`
	Total  decimal.Decimal `gorm:"type:decimal(10,2)"`
	Date   time.Time       `gorm:"autoCreateTime"`
	Items  []OrderItem
}

// OrderItem snapshots quantity and unit price at purchase time; it is
// deliberately decoupled from the current Product price.
type OrderItem struct {
	ID        uint `gorm:"primaryKey"`
	OrderID   uint `gorm:"index"`
	ProductID uint
	Quantity  int
	Price     decimal.Decimal `gorm:"type:decimal(10,2)"`
	Product   Product
}
