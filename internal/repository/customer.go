package repository

import (
	"context"
	"storefront/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *model.Customer) error
	FindByID(ctx context.Context, customerID uint) (*model.Customer, error)
	FindByUserID(ctx context.Context, userID string) (*model.Customer, error)
	List(ctx context.Context) ([]*model.Customer, error)
	Save(ctx context.Context, customer *model.Customer) error
	UpsertAddress(ctx context.Context, address *model.Address) error
}

type customerRepoImpl struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepoImpl{
		db: db,
	}
}

func (r *customerRepoImpl) Create(ctx context.Context, customer *model.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *customerRepoImpl) FindByID(ctx context.Context, customerID uint) (*model.Customer, error) {
	var customer model.Customer
	err := r.db.WithContext(ctx).
		Preload("Address").
		Where("id = ?", customerID).
		First(&customer).Error

	if err != nil {
		return nil, err
	}

	return &customer, nil
}

func (r *customerRepoImpl) FindByUserID(ctx context.Context, userID string) (*model.Customer, error) {
	var customer model.Customer
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&customer).Error

	if err != nil {
		return nil, err
	}

	return &customer, nil
}

func (r *customerRepoImpl) List(ctx context.Context) ([]*model.Customer, error) {
	var customers []*model.Customer
	err := r.db.WithContext(ctx).
		Preload("Address").
		Order("first_name, last_name").
		Find(&customers).Error

	if err != nil {
		return nil, err
	}

	return customers, nil
}

func (r *customerRepoImpl) Save(ctx context.Context, customer *model.Customer) error {
	return r.db.WithContext(ctx).Save(customer).Error
}

// UpsertAddress keeps the one-address-per-customer invariant: a second
// submit replaces the stored address.
func (r *customerRepoImpl) UpsertAddress(ctx context.Context, address *model.Address) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "customer_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"zip":    address.Zip,
			"street": address.Street,
			"city":   address.City,
		}),
	}).Create(address).Error
}
