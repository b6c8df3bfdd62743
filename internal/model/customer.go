package model

import "time"

type Membership string

const (
	MembershipGold   Membership = "G"
	MembershipSilver Membership = "S"
	MembershipBronze Membership = "B"
)

func ValidMembership(m Membership) bool {
	switch m {
	case MembershipGold, MembershipSilver, MembershipBronze:
		return true
	}
	return false
}

type Customer struct {
	ID uint `gorm:"primaryKey"`
	// authenticated principal this customer belongs to
	UserID     string `gorm:"size:64;uniqueIndex"`
	FirstName  string `gorm:"size:255;not null"`
	LastName   string `gorm:"size:255;not null"`
	Email      string `gorm:"size:255;uniqueIndex;not null"`
	Phone      string `gorm:"size:32"`
	BirthDate  *time.Time
	Membership Membership `gorm:"size:1;not null;default:S"`

	Address *Address `gorm:"foreignKey:CustomerID"`
}

// Address is keyed by the customer itself, one per customer.
type Address struct {
	CustomerID uint   `gorm:"primaryKey"`
	Zip        string `gorm:"size:16;not null"`
	Street     string `gorm:"size:255;not null"`
	City       string `gorm:"size:255;not null"`
}
