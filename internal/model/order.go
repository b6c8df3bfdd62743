package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "P"
	PaymentConfirmed PaymentStatus = "C"
	PaymentFailed    PaymentStatus = "F"
)

func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentPending, PaymentConfirmed, PaymentFailed:
		return true
	}
	return false
}

// Order is the durable record produced by checkout. Only payment status is
// ever mutated after creation.
type Order struct {
	ID            uint          `gorm:"primaryKey"`
	PaymentStatus PaymentStatus `gorm:"size:1;index;not null;default:P"`
	PlacedAt      time.Time     `gorm:"autoCreateTime"`
	CustomerID    uint          `gorm:"index;not null"`

	Items []OrderItem `gorm:"foreignKey:OrderID"`
}

// OrderItem carries the product price snapshotted at checkout time; it is
// never recomputed from the live product.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey"`
	OrderID   uint            `gorm:"index;not null"`
	ProductID uint            `gorm:"index;not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(6,2);not null"`

	Product Product
}
