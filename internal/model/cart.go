package model

import "time"

// Cart is ephemeral: it only lives until checkout converts it into an order.
type Cart struct {
	ID        string `gorm:"primaryKey;size:36"` // uuid
	CreatedAt time.Time

	Items []CartItem `gorm:"foreignKey:CartID"`
}

// CartItem accumulates quantity per (cart, product); the unique index backs
// the atomic upsert-increment so concurrent adds cannot duplicate rows.
type CartItem struct {
	ID        uint   `gorm:"primaryKey"`
	CartID    string `gorm:"size:36;uniqueIndex:idx_cart_items_cart_product;not null"`
	ProductID uint   `gorm:"uniqueIndex:idx_cart_items_cart_product;not null"`
	Quantity  int    `gorm:"not null"`

	Product Product
}
