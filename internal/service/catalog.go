package service

import (
	"context"
	"errors"
	"fmt"
	"storefront/internal/dto"
	"storefront/internal/model"
	"storefront/internal/repository"

	"gorm.io/gorm"
)

type CatalogService interface {
	ListProducts(ctx context.Context, filter repository.ProductFilter) ([]*model.Product, error)
	GetProduct(ctx context.Context, productID uint) (*model.Product, error)
	CreateProduct(ctx context.Context, req *dto.CreateProductRequest) (*model.Product, error)
	UpdateProduct(ctx context.Context, productID uint, req *dto.UpdateProductRequest) (*model.Product, error)
	DeleteProduct(ctx context.Context, productID uint) error

	ListCollections(ctx context.Context) ([]*dto.CollectionResponse, error)
	GetCollection(ctx context.Context, collectionID uint) (*dto.CollectionResponse, error)
	CreateCollection(ctx context.Context, req *dto.CollectionRequest) (*model.Collection, error)
	UpdateCollection(ctx context.Context, collectionID uint, req *dto.CollectionRequest) (*model.Collection, error)
	DeleteCollection(ctx context.Context, collectionID uint) error

	ListPromotions(ctx context.Context) ([]*model.Promotion, error)
	CreatePromotion(ctx context.Context, req *dto.PromotionRequest) (*model.Promotion, error)

	ListReviews(ctx context.Context, productID uint) ([]*model.Review, error)
	AddReview(ctx context.Context, productID uint, req *dto.ReviewRequest) (*model.Review, error)
}

type catalogServiceImpl struct {
	db             *gorm.DB
	productRepo    repository.ProductRepository
	collectionRepo repository.CollectionRepository
	promotionRepo  repository.PromotionRepository
	reviewRepo     repository.ReviewRepository
	orderRepo      repository.OrderRepository
}

func NewCatalogService(
	db *gorm.DB,
	productRepo repository.ProductRepository,
	collectionRepo repository.CollectionRepository,
	promotionRepo repository.PromotionRepository,
	reviewRepo repository.ReviewRepository,
	orderRepo repository.OrderRepository,
) CatalogService {
	return &catalogServiceImpl{
		db:             db,
		productRepo:    productRepo,
		collectionRepo: collectionRepo,
		promotionRepo:  promotionRepo,
		reviewRepo:     reviewRepo,
		orderRepo:      orderRepo,
	}
}

// ---- products ----

func (s *catalogServiceImpl) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]*model.Product, error) {
	return s.productRepo.List(ctx, filter)
}

func (s *catalogServiceImpl) GetProduct(ctx context.Context, productID uint) (*model.Product, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return product, err
}

func (s *catalogServiceImpl) CreateProduct(ctx context.Context, req *dto.CreateProductRequest) (*model.Product, error) {
	if req.Title == "" {
		return nil, validationErr("title", "title is required")
	}
	if req.Price.IsNegative() {
		return nil, validationErr("price", "price must not be negative")
	}
	if req.Inventory < 0 {
		return nil, validationErr("inventory", "inventory must not be negative")
	}
	if _, err := s.collectionRepo.FindByID(ctx, req.CollectionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, validationErr("collection_id", "no collection with given id was found")
		}
		return nil, fmt.Errorf("find collection: %w", err)
	}

	promotions, err := s.resolvePromotions(ctx, req.PromotionIDs)
	if err != nil {
		return nil, err
	}

	product := &model.Product{
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		Inventory:    req.Inventory,
		CollectionID: req.CollectionID,
		Promotions:   promotions,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	return product, nil
}

func (s *catalogServiceImpl) UpdateProduct(ctx context.Context, productID uint, req *dto.UpdateProductRequest) (*model.Product, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, validationErr("title", "title is required")
		}
		product.Title = *req.Title
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, validationErr("price", "price must not be negative")
		}
		product.Price = *req.Price
	}
	if req.Inventory != nil {
		if *req.Inventory < 0 {
			return nil, validationErr("inventory", "inventory must not be negative")
		}
		product.Inventory = *req.Inventory
	}
	if req.CollectionID != nil {
		if _, err := s.collectionRepo.FindByID(ctx, *req.CollectionID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, validationErr("collection_id", "no collection with given id was found")
			}
			return nil, fmt.Errorf("find collection: %w", err)
		}
		product.CollectionID = *req.CollectionID
	}

	if req.PromotionIDs != nil {
		promotions, err := s.resolvePromotions(ctx, req.PromotionIDs)
		if err != nil {
			return nil, err
		}
		if err := s.productRepo.ReplacePromotions(ctx, product, promotions); err != nil {
			return nil, fmt.Errorf("replace promotions: %w", err)
		}
		product.Promotions = promotions
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("save product: %w", err)
	}

	return product, nil
}

func (s *catalogServiceImpl) DeleteProduct(ctx context.Context, productID uint) error {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("find product: %w", err)
	}

	// checked here so the caller gets a descriptive conflict instead of a
	// low-level integrity error from the storage layer
	count, err := s.orderRepo.CountItemsByProduct(ctx, productID)
	if err != nil {
		return fmt.Errorf("count order items: %w", err)
	}
	if count > 0 {
		return conflictErr("Product cannot be deleted because it is associated with an order item.")
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.productRepo.Delete(ctx, tx, productID)
	})
}

func (s *catalogServiceImpl) resolvePromotions(ctx context.Context, promotionIDs []uint) ([]model.Promotion, error) {
	if len(promotionIDs) == 0 {
		return nil, nil
	}
	promotions, err := s.promotionRepo.FindMany(ctx, promotionIDs)
	if err != nil {
		return nil, fmt.Errorf("find promotions: %w", err)
	}
	if len(promotions) != len(promotionIDs) {
		return nil, validationErr("promotion_ids", "one or more promotions were not found")
	}
	return promotions, nil
}

// ---- collections ----

func (s *catalogServiceImpl) ListCollections(ctx context.Context) ([]*dto.CollectionResponse, error) {
	collections, err := s.collectionRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]*dto.CollectionResponse, len(collections))
	for i, collection := range collections {
		count, err := s.productRepo.CountByCollection(ctx, collection.ID)
		if err != nil {
			return nil, fmt.Errorf("count products: %w", err)
		}
		resp[i] = dto.NewCollectionResponse(collection, count)
	}

	return resp, nil
}

func (s *catalogServiceImpl) GetCollection(ctx context.Context, collectionID uint) (*dto.CollectionResponse, error) {
	collection, err := s.collectionRepo.FindByID(ctx, collectionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find collection: %w", err)
	}

	count, err := s.productRepo.CountByCollection(ctx, collectionID)
	if err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}

	return dto.NewCollectionResponse(collection, count), nil
}

func (s *catalogServiceImpl) CreateCollection(ctx context.Context, req *dto.CollectionRequest) (*model.Collection, error) {
	if req.Title == "" {
		return nil, validationErr("title", "title is required")
	}
	if req.FeaturedProductID != nil {
		if _, err := s.productRepo.FindByID(ctx, *req.FeaturedProductID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, validationErr("featured_product_id", "no product with given id was found")
			}
			return nil, fmt.Errorf("find featured product: %w", err)
		}
	}

	collection := &model.Collection{
		Title:             req.Title,
		FeaturedProductID: req.FeaturedProductID,
	}
	if err := s.collectionRepo.Create(ctx, collection); err != nil {
		return nil, fmt.Errorf("create collection: %w", err)
	}

	return collection, nil
}

func (s *catalogServiceImpl) UpdateCollection(ctx context.Context, collectionID uint, req *dto.CollectionRequest) (*model.Collection, error) {
	collection, err := s.collectionRepo.FindByID(ctx, collectionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find collection: %w", err)
	}

	if req.Title == "" {
		return nil, validationErr("title", "title is required")
	}
	collection.Title = req.Title
	collection.FeaturedProductID = req.FeaturedProductID

	if err := s.collectionRepo.Save(ctx, collection); err != nil {
		return nil, fmt.Errorf("save collection: %w", err)
	}

	return collection, nil
}

func (s *catalogServiceImpl) DeleteCollection(ctx context.Context, collectionID uint) error {
	if _, err := s.collectionRepo.FindByID(ctx, collectionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("find collection: %w", err)
	}

	count, err := s.productRepo.CountByCollection(ctx, collectionID)
	if err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if count > 0 {
		return conflictErr("Collection cannot be deleted because it includes one or more products.")
	}

	return s.collectionRepo.Delete(ctx, collectionID)
}

// ---- promotions ----

func (s *catalogServiceImpl) ListPromotions(ctx context.Context) ([]*model.Promotion, error) {
	return s.promotionRepo.List(ctx)
}

func (s *catalogServiceImpl) CreatePromotion(ctx context.Context, req *dto.PromotionRequest) (*model.Promotion, error) {
	if req.Description == "" {
		return nil, validationErr("description", "description is required")
	}

	promotion := &model.Promotion{
		Description: req.Description,
		Discount:    req.Discount,
	}
	if err := s.promotionRepo.Create(ctx, promotion); err != nil {
		return nil, fmt.Errorf("create promotion: %w", err)
	}

	return promotion, nil
}

// ---- reviews ----

func (s *catalogServiceImpl) ListReviews(ctx context.Context, productID uint) ([]*model.Review, error) {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return s.reviewRepo.ListByProduct(ctx, productID)
}

func (s *catalogServiceImpl) AddReview(ctx context.Context, productID uint, req *dto.ReviewRequest) (*model.Review, error) {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	if req.Name == "" {
		return nil, validationErr("name", "name is required")
	}

	review := &model.Review{
		ProductID:   productID,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	return review, nil
}
