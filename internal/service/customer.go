package service

import (
	"context"
	"errors"
	"fmt"
	"storefront/internal/dto"
	"storefront/internal/model"
	"storefront/internal/repository"
	"strings"
	"time"

	"gorm.io/gorm"
)

type CustomerService interface {
	ListCustomers(ctx context.Context) ([]*model.Customer, error)
	GetCustomer(ctx context.Context, customerID uint) (*model.Customer, error)
	CreateCustomer(ctx context.Context, req *dto.CustomerRequest) (*model.Customer, error)
	UpdateCustomer(ctx context.Context, customerID uint, req *dto.CustomerRequest) (*model.Customer, error)
	UpsertAddress(ctx context.Context, customerID uint, req *dto.AddressRequest) (*model.Customer, error)
}

type customerServiceImpl struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerServiceImpl{
		customerRepo: customerRepo,
	}
}

func (s *customerServiceImpl) ListCustomers(ctx context.Context) ([]*model.Customer, error) {
	return s.customerRepo.List(ctx)
}

func (s *customerServiceImpl) GetCustomer(ctx context.Context, customerID uint) (*model.Customer, error) {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find customer: %w", err)
	}

	return customer, nil
}

func (s *customerServiceImpl) CreateCustomer(ctx context.Context, req *dto.CustomerRequest) (*model.Customer, error) {
	customer, err := s.customerFromRequest(req, &model.Customer{Membership: model.MembershipSilver})
	if err != nil {
		return nil, err
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, conflictErr("a customer with this email already exists")
		}
		return nil, fmt.Errorf("create customer: %w", err)
	}

	return customer, nil
}

func (s *customerServiceImpl) UpdateCustomer(ctx context.Context, customerID uint, req *dto.CustomerRequest) (*model.Customer, error) {
	existing, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find customer: %w", err)
	}

	customer, err := s.customerFromRequest(req, existing)
	if err != nil {
		return nil, err
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, conflictErr("a customer with this email already exists")
		}
		return nil, fmt.Errorf("save customer: %w", err)
	}

	return customer, nil
}

func (s *customerServiceImpl) UpsertAddress(ctx context.Context, customerID uint, req *dto.AddressRequest) (*model.Customer, error) {
	if _, err := s.customerRepo.FindByID(ctx, customerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find customer: %w", err)
	}
	if req.Street == "" || req.City == "" {
		return nil, validationErr("address", "street and city are required")
	}

	if err := s.customerRepo.UpsertAddress(ctx, &model.Address{
		CustomerID: customerID,
		Zip:        req.Zip,
		Street:     req.Street,
		City:       req.City,
	}); err != nil {
		return nil, fmt.Errorf("upsert address: %w", err)
	}

	return s.customerRepo.FindByID(ctx, customerID)
}

func (s *customerServiceImpl) customerFromRequest(req *dto.CustomerRequest, customer *model.Customer) (*model.Customer, error) {
	if req.FirstName == "" || req.LastName == "" {
		return nil, validationErr("name", "first and last name are required")
	}
	if !strings.Contains(req.Email, "@") {
		return nil, validationErr("email", "a valid email is required")
	}

	customer.FirstName = req.FirstName
	customer.LastName = req.LastName
	customer.Email = req.Email
	customer.Phone = req.Phone
	if req.UserID != "" {
		customer.UserID = req.UserID
	}

	if req.BirthDate != "" {
		birthDate, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			return nil, validationErr("birth_date", "birth date must be YYYY-MM-DD")
		}
		customer.BirthDate = &birthDate
	}

	if req.Membership != "" {
		membership := model.Membership(req.Membership)
		if !model.ValidMembership(membership) {
			return nil, validationErr("membership", "membership must be one of G, S, B")
		}
		customer.Membership = membership
	}

	return customer, nil
}
