package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"storefront/internal/model"
)

// ---- catalog ----

type CreateProductRequest struct {
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Inventory    int             `json:"inventory"`
	CollectionID uint            `json:"collection_id"`
	PromotionIDs []uint          `json:"promotion_ids"`
}

// UpdateProductRequest carries only the fields present in the payload so the
// same handler serves PUT and PATCH.
type UpdateProductRequest struct {
	Title        *string          `json:"title"`
	Description  *string          `json:"description"`
	Price        *decimal.Decimal `json:"price"`
	Inventory    *int             `json:"inventory"`
	CollectionID *uint            `json:"collection_id"`
	PromotionIDs []uint           `json:"promotion_ids"`
}

type ProductResponse struct {
	ID           uint            `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	PriceWithTax decimal.Decimal `json:"price_with_tax"`
	Inventory    int             `json:"inventory"`
	CollectionID uint            `json:"collection_id"`
	LastUpdate   time.Time       `json:"last_update"`
	Promotions   []uint          `json:"promotions,omitempty"`
}

var taxRate = decimal.NewFromFloat(1.2)

func NewProductResponse(p *model.Product) *ProductResponse {
	resp := &ProductResponse{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Price:        p.Price,
		PriceWithTax: p.Price.Mul(taxRate).Round(2),
		Inventory:    p.Inventory,
		CollectionID: p.CollectionID,
		LastUpdate:   p.LastUpdate,
	}
	for _, promo := range p.Promotions {
		resp.Promotions = append(resp.Promotions, promo.ID)
	}
	return resp
}

type CollectionRequest struct {
	Title             string `json:"title"`
	FeaturedProductID *uint  `json:"featured_product_id"`
}

type CollectionResponse struct {
	ID                uint   `json:"id"`
	Title             string `json:"title"`
	FeaturedProductID *uint  `json:"featured_product_id,omitempty"`
	ProductsCount     int64  `json:"products_count"`
}

func NewCollectionResponse(c *model.Collection, productsCount int64) *CollectionResponse {
	return &CollectionResponse{
		ID:                c.ID,
		Title:             c.Title,
		FeaturedProductID: c.FeaturedProductID,
		ProductsCount:     productsCount,
	}
}

type PromotionRequest struct {
	Description string  `json:"description"`
	Discount    float64 `json:"discount"`
}

type PromotionResponse struct {
	ID          uint    `json:"id"`
	Description string  `json:"description"`
	Discount    float64 `json:"discount"`
}

func NewPromotionResponse(p *model.Promotion) *PromotionResponse {
	return &PromotionResponse{ID: p.ID, Description: p.Description, Discount: p.Discount}
}

type ReviewRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ReviewResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

func NewReviewResponse(r *model.Review) *ReviewResponse {
	return &ReviewResponse{ID: r.ID, Name: r.Name, Description: r.Description, Date: r.Date}
}

// ---- customers ----

type CustomerRequest struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	BirthDate  string `json:"birth_date"` // YYYY-MM-DD
	Membership string `json:"membership"`
	UserID     string `json:"user_id"`
}

type AddressRequest struct {
	Zip    string `json:"zip"`
	Street string `json:"street"`
	City   string `json:"city"`
}

type AddressResponse struct {
	Zip    string `json:"zip"`
	Street string `json:"street"`
	City   string `json:"city"`
}

type CustomerResponse struct {
	ID         uint             `json:"id"`
	FirstName  string           `json:"first_name"`
	LastName   string           `json:"last_name"`
	Email      string           `json:"email"`
	Phone      string           `json:"phone,omitempty"`
	BirthDate  string           `json:"birth_date,omitempty"`
	Membership string           `json:"membership"`
	Address    *AddressResponse `json:"address,omitempty"`
}

func NewCustomerResponse(c *model.Customer) *CustomerResponse {
	resp := &CustomerResponse{
		ID:         c.ID,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		Email:      c.Email,
		Phone:      c.Phone,
		Membership: string(c.Membership),
	}
	if c.BirthDate != nil {
		resp.BirthDate = c.BirthDate.Format("2006-01-02")
	}
	if c.Address != nil {
		resp.Address = &AddressResponse{Zip: c.Address.Zip, Street: c.Address.Street, City: c.Address.City}
	}
	return resp
}

// ---- carts ----

type AddCartItemRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type ProductSummary struct {
	ID    uint            `json:"id"`
	Title string          `json:"title"`
	Price decimal.Decimal `json:"price"`
}

type CartItemResponse struct {
	ID         uint            `json:"id"`
	Product    ProductSummary  `json:"product"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

func NewCartItemResponse(item *model.CartItem) *CartItemResponse {
	return &CartItemResponse{
		ID: item.ID,
		Product: ProductSummary{
			ID:    item.Product.ID,
			Title: item.Product.Title,
			Price: item.Product.Price,
		},
		Quantity:   item.Quantity,
		TotalPrice: item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))),
	}
}

type CartResponse struct {
	ID         string             `json:"id"`
	Items      []CartItemResponse `json:"items"`
	TotalPrice decimal.Decimal    `json:"total_price"`
}

func NewCartResponse(cart *model.Cart) *CartResponse {
	resp := &CartResponse{
		ID:         cart.ID,
		Items:      make([]CartItemResponse, 0, len(cart.Items)),
		TotalPrice: decimal.Zero,
	}
	for i := range cart.Items {
		item := NewCartItemResponse(&cart.Items[i])
		resp.Items = append(resp.Items, *item)
		resp.TotalPrice = resp.TotalPrice.Add(item.TotalPrice)
	}
	return resp
}

// ---- orders ----

type CreateOrderRequest struct {
	CartID string `json:"cart_id"`
}

type UpdateOrderRequest struct {
	PaymentStatus string `json:"payment_status"`
}

type OrderItemResponse struct {
	ID        uint            `json:"id"`
	Product   ProductSummary  `json:"product"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

type OrderResponse struct {
	ID            uint                `json:"id"`
	CustomerID    uint                `json:"customer_id"`
	PlacedAt      time.Time           `json:"placed_at"`
	PaymentStatus string              `json:"payment_status"`
	Items         []OrderItemResponse `json:"items"`
}

func NewOrderResponse(order *model.Order) *OrderResponse {
	resp := &OrderResponse{
		ID:            order.ID,
		CustomerID:    order.CustomerID,
		PlacedAt:      order.PlacedAt,
		PaymentStatus: string(order.PaymentStatus),
		Items:         make([]OrderItemResponse, 0, len(order.Items)),
	}
	for i := range order.Items {
		item := &order.Items[i]
		resp.Items = append(resp.Items, OrderItemResponse{
			ID: item.ID,
			Product: ProductSummary{
				ID:    item.Product.ID,
				Title: item.Product.Title,
				Price: item.Product.Price,
			},
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}
	return resp
}

// ---- tags / likes ----

type TagRequest struct {
	TargetKind string `json:"target_kind"`
	TargetID   uint   `json:"target_id"`
	Label      string `json:"label"`
}

type TagResponse struct {
	ID    uint   `json:"id"`
	Label string `json:"label"`
}

func NewTagResponse(t *model.Tag) *TagResponse {
	return &TagResponse{ID: t.ID, Label: t.Label}
}

type LikeRequest struct {
	TargetKind string `json:"target_kind"`
	TargetID   uint   `json:"target_id"`
}
