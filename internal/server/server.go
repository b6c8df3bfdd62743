package server

import (
	"errors"
	"net/http"
	"storefront/internal/handler"
	appmw "storefront/internal/middleware"
	"storefront/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

type Server struct {
	echo            *echo.Echo
	log             *zap.Logger
	catalogHandler  *handler.CatalogHandler
	cartHandler     *handler.CartHandler
	orderHandler    *handler.OrderHandler
	customerHandler *handler.CustomerHandler
	tagHandler      *handler.TagHandler
}

func NewServer(
	log *zap.Logger,
	catalogService service.CatalogService,
	cartService service.CartService,
	orderService service.OrderService,
	customerService service.CustomerService,
	tagService service.TagService,
	likeService service.LikeService,
) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(appmw.AuthMiddleware())

	s := &Server{
		echo:            e,
		log:             log,
		catalogHandler:  handler.NewCatalogHandler(catalogService),
		cartHandler:     handler.NewCartHandler(cartService),
		orderHandler:    handler.NewOrderHandler(orderService),
		customerHandler: handler.NewCustomerHandler(customerService),
		tagHandler:      handler.NewTagHandler(tagService, likeService),
	}

	e.HTTPErrorHandler = s.handleError
	s.setupRoutes()
	return s
}

// handleError is the single place the service error taxonomy turns into
// HTTP statuses.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var validationErr *service.ValidationError
	var conflictErr *service.ConflictError
	var httpErr *echo.HTTPError

	switch {
	case errors.As(err, &validationErr):
		_ = c.JSON(http.StatusBadRequest, map[string]string{
			"field": validationErr.Field,
			"error": validationErr.Message,
		})
	case errors.Is(err, service.ErrNotFound):
		_ = c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.As(err, &conflictErr):
		_ = c.JSON(http.StatusMethodNotAllowed, map[string]string{"error": conflictErr.Message})
	case errors.As(err, &httpErr):
		_ = c.JSON(httpErr.Code, map[string]any{"error": httpErr.Message})
	default:
		s.log.Error("unhandled error", zap.Error(err))
		_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

func (s *Server) setupRoutes() {
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// -------- catalog --------
	products := s.echo.Group("/products")
	products.GET("", s.catalogHandler.ListProducts)
	products.POST("", s.catalogHandler.CreateProduct)
	products.GET("/:id", s.catalogHandler.GetProduct)
	products.PUT("/:id", s.catalogHandler.UpdateProduct)
	products.PATCH("/:id", s.catalogHandler.UpdateProduct)
	products.DELETE("/:id", s.catalogHandler.DeleteProduct)
	products.GET("/:id/reviews", s.catalogHandler.ListReviews)
	products.POST("/:id/reviews", s.catalogHandler.CreateReview)

	collections := s.echo.Group("/collections")
	collections.GET("", s.catalogHandler.ListCollections)
	collections.POST("", s.catalogHandler.CreateCollection)
	collections.GET("/:id", s.catalogHandler.GetCollection)
	collections.PUT("/:id", s.catalogHandler.UpdateCollection)
	collections.DELETE("/:id", s.catalogHandler.DeleteCollection)

	promotions := s.echo.Group("/promotions")
	promotions.GET("", s.catalogHandler.ListPromotions)
	promotions.POST("", s.catalogHandler.CreatePromotion)

	// -------- customers --------
	customers := s.echo.Group("/customers")
	customers.GET("", s.customerHandler.ListCustomers)
	customers.POST("", s.customerHandler.CreateCustomer)
	customers.GET("/:id", s.customerHandler.GetCustomer)
	customers.PUT("/:id", s.customerHandler.UpdateCustomer)
	customers.PUT("/:id/address", s.customerHandler.UpsertAddress)

	// -------- carts --------
	carts := s.echo.Group("/carts")
	carts.POST("", s.cartHandler.CreateCart)
	carts.GET("/:cart_id", s.cartHandler.GetCart)
	carts.POST("/:cart_id/items", s.cartHandler.AddItem)
	carts.PATCH("/:cart_id/items/:item_id", s.cartHandler.UpdateItem)
	carts.DELETE("/:cart_id/items/:item_id", s.cartHandler.RemoveItem)

	// -------- orders --------
	orders := s.echo.Group("/orders")
	orders.POST("", s.orderHandler.Checkout)
	orders.GET("", s.orderHandler.ListOrders)
	orders.GET("/:id", s.orderHandler.GetOrder)
	orders.PATCH("/:id", s.orderHandler.UpdatePaymentStatus)

	// -------- tags / likes --------
	tags := s.echo.Group("/tags")
	tags.POST("", s.tagHandler.TagObject)
	tags.GET("", s.tagHandler.ListTags)

	likes := s.echo.Group("/likes")
	likes.POST("", s.tagHandler.LikeObject)
	likes.GET("", s.tagHandler.CountLikes)
}

func (s *Server) Echo() *echo.Echo {
	return s.echo
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
