package service

import (
	"context"
	"storefront/internal/dto"
	"storefront/internal/model"
	"storefront/internal/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomer_DuplicateEmailConflicts(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := NewCustomerService(repository.NewCustomerRepository(db))

	_, err := svc.CreateCustomer(ctx, &dto.CustomerRequest{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
	})
	require.NoError(t, err)

	_, err = svc.CreateCustomer(ctx, &dto.CustomerRequest{
		FirstName: "Grace", LastName: "Hopper", Email: "ada@example.com",
	})

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestCustomer_DefaultsToSilverMembership(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := NewCustomerService(repository.NewCustomerRepository(db))

	customer, err := svc.CreateCustomer(ctx, &dto.CustomerRequest{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, model.MembershipSilver, customer.Membership)
}

func TestCustomer_Validation(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := NewCustomerService(repository.NewCustomerRepository(db))

	var validationErr *ValidationError

	_, err := svc.CreateCustomer(ctx, &dto.CustomerRequest{LastName: "Lovelace", Email: "ada@example.com"})
	require.ErrorAs(t, err, &validationErr)

	_, err = svc.CreateCustomer(ctx, &dto.CustomerRequest{FirstName: "Ada", LastName: "Lovelace", Email: "nope"})
	require.ErrorAs(t, err, &validationErr)

	_, err = svc.CreateCustomer(ctx, &dto.CustomerRequest{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", BirthDate: "12/10/1815",
	})
	require.ErrorAs(t, err, &validationErr)

	_, err = svc.CreateCustomer(ctx, &dto.CustomerRequest{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Membership: "Z",
	})
	require.ErrorAs(t, err, &validationErr)
}

func TestCustomer_AddressUpsertReplaces(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := NewCustomerService(repository.NewCustomerRepository(db))

	customer, err := svc.CreateCustomer(ctx, &dto.CustomerRequest{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
	})
	require.NoError(t, err)

	_, err = svc.UpsertAddress(ctx, customer.ID, &dto.AddressRequest{
		Zip: "10115", Street: "Invalidenstr. 1", City: "Berlin",
	})
	require.NoError(t, err)

	updated, err := svc.UpsertAddress(ctx, customer.ID, &dto.AddressRequest{
		Zip: "20095", Street: "Ballindamm 2", City: "Hamburg",
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Address)
	assert.Equal(t, "Hamburg", updated.Address.City)

	// still one address per customer
	var count int64
	require.NoError(t, db.Model(&model.Address{}).Where("customer_id = ?", customer.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
