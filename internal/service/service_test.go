package service

import (
	"storefront/internal/model"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// a single connection keeps every session on the same in-memory db
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.Collection{},
		&model.Promotion{},
		&model.Product{},
		&model.Review{},
		&model.Customer{},
		&model.Address{},
		&model.Cart{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
		&model.Tag{},
		&model.TaggedItem{},
		&model.LikedItem{},
	))

	return db
}

func createTestCollection(t *testing.T, db *gorm.DB, title string) *model.Collection {
	t.Helper()

	collection := &model.Collection{Title: title}
	require.NoError(t, db.Create(collection).Error)
	return collection
}

func createTestProduct(t *testing.T, db *gorm.DB, collectionID uint, title, price string) *model.Product {
	t.Helper()

	parsed, err := decimal.NewFromString(price)
	require.NoError(t, err)

	product := &model.Product{
		Title:        title,
		Price:        parsed,
		Inventory:    10,
		CollectionID: collectionID,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func createTestCustomer(t *testing.T, db *gorm.DB, userID, email string) *model.Customer {
	t.Helper()

	customer := &model.Customer{
		UserID:     userID,
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Email:      email,
		Membership: model.MembershipSilver,
	}
	require.NoError(t, db.Create(customer).Error)
	return customer
}
