package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"storefront/internal/events"
	"storefront/internal/model"
	"storefront/internal/repository"
	"storefront/internal/service"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestServer(t *testing.T) (*Server, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
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

	log := zap.NewNop()
	bus := events.NewBus(log)

	productRepo := repository.NewProductRepository(db)
	collectionRepo := repository.NewCollectionRepository(db)
	promotionRepo := repository.NewPromotionRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	tagRepo := repository.NewTagRepository(db)
	likeRepo := repository.NewLikeRepository(db)

	srv := NewServer(
		log,
		service.NewCatalogService(db, productRepo, collectionRepo, promotionRepo, reviewRepo, orderRepo),
		service.NewCartService(cartRepo, productRepo),
		service.NewOrderService(db, cartRepo, orderRepo, customerRepo, bus),
		service.NewCustomerService(customerRepo),
		service.NewTagService(tagRepo),
		service.NewLikeService(likeRepo),
	)
	return srv, db
}

func doJSON(srv *Server, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)
	return rec
}

func TestServer_ValidationMapsTo400(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(srv, http.MethodPost, "/orders", `{"cart_id":"no-such-cart"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "no cart with given id found", payload["error"])
}

func TestServer_NotFoundMapsTo404(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(srv, http.MethodGet, "/products/9999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_ConflictMapsTo405(t *testing.T) {
	srv, db := newTestServer(t)

	collection := &model.Collection{Title: "Beverages"}
	require.NoError(t, db.Create(collection).Error)
	require.NoError(t, db.Create(&model.Product{
		Title:        "Coffee",
		Price:        decimal.RequireFromString("10.00"),
		Inventory:    5,
		CollectionID: collection.ID,
	}).Error)

	rec := doJSON(srv, http.MethodDelete, "/collections/1", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestServer_CheckoutFlow(t *testing.T) {
	srv, db := newTestServer(t)

	// the demo auth middleware authenticates everyone as this user
	require.NoError(t, db.Create(&model.Customer{
		UserID:     "demo-user-001",
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Email:      "ada@example.com",
		Membership: model.MembershipSilver,
	}).Error)

	collection := &model.Collection{Title: "Beverages"}
	require.NoError(t, db.Create(collection).Error)
	product := &model.Product{
		Title:        "Coffee",
		Price:        decimal.RequireFromString("10.00"),
		Inventory:    5,
		CollectionID: collection.ID,
	}
	require.NoError(t, db.Create(product).Error)

	rec := doJSON(srv, http.MethodPost, "/carts", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	var cart struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cart))
	require.NotEmpty(t, cart.ID)

	rec = doJSON(srv, http.MethodPost, "/carts/"+cart.ID+"/items", `{"product_id":1,"quantity":2}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(srv, http.MethodPost, "/orders", `{"cart_id":"`+cart.ID+`"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var order struct {
		ID    uint `json:"id"`
		Items []struct {
			Quantity int `json:"quantity"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)

	// cart is gone after checkout
	rec = doJSON(srv, http.MethodGet, "/carts/"+cart.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_AddItemUnknownProduct(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(srv, http.MethodPost, "/carts", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	var cart struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cart))

	rec = doJSON(srv, http.MethodPost, "/carts/"+cart.ID+"/items", `{"product_id":42,"quantity":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
