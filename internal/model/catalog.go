package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Collection struct {
	ID    uint   `gorm:"primaryKey"`
	Title string `gorm:"size:255;not null"`
	// optional showcase product; not a reverse relation
	FeaturedProductID *uint `gorm:"index"`
}

type Promotion struct {
	ID          uint    `gorm:"primaryKey"`
	Description string  `gorm:"not null"`
	Discount    float64 `gorm:"not null"`
}

type Product struct {
	ID           uint            `gorm:"primaryKey"`
	Title        string          `gorm:"size:255;not null"`
	Description  string
	Price        decimal.Decimal `gorm:"type:decimal(6,2);not null"`
	Inventory    int             `gorm:"not null"`
	LastUpdate   time.Time       `gorm:"autoUpdateTime"`
	CollectionID uint            `gorm:"index;not null"`
	Promotions   []Promotion     `gorm:"many2many:product_promotions"`
}

type Review struct {
	ID          uint   `gorm:"primaryKey"`
	ProductID   uint   `gorm:"index;not null"`
	Name        string `gorm:"size:255;not null"`
	Description string
	Date        time.Time `gorm:"autoCreateTime"`
}
