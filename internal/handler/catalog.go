package handler

import (
	"net/http"
	"storefront/internal/dto"
	"storefront/internal/repository"
	"storefront/internal/service"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// ---- products ----

func (h *CatalogHandler) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()

	var filter repository.ProductFilter
	if raw := c.QueryParam("collection_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid collection_id")
		}
		id := uint(parsed)
		filter.CollectionID = &id
	}
	if raw := c.QueryParam("min_price"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid min_price")
		}
		filter.MinPrice = &price
	}
	if raw := c.QueryParam("max_price"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid max_price")
		}
		filter.MaxPrice = &price
	}

	products, err := h.catalogService.ListProducts(ctx, filter)
	if err != nil {
		return err
	}

	resp := make([]*dto.ProductResponse, len(products))
	for i, product := range products {
		resp[i] = dto.NewProductResponse(product)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()

	productID, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	product, err := h.catalogService.GetProduct(ctx, productID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewProductResponse(product))
}

func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	product, err := h.catalogService.CreateProduct(ctx, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dto.NewProductResponse(product))
}

func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	productID, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	product, err := h.catalogService.UpdateProduct(ctx, productID, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewProductResponse(product))
}

func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()

	productID, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.catalogService.DeleteProduct(ctx, productID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// ---- collections ----

func (h *CatalogHandler) ListCollections(c echo.Context) error {
	ctx := c.Request().Context()

	collections, err := h.catalogService.ListCollections(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, collections)
}

func (h *CatalogHandler) GetCollection(c echo.Context) error {
	ctx := c.Request().Context()

	collectionID, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	collection, err := h.catalogService.GetCollection(ctx, collectionID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, collection)
}

func (h *CatalogHandler) CreateCollection(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CollectionRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	collection, err := h.catalogService.CreateCollection(ctx, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dto.NewCollectionResponse(collection, 0))
}

func (h *CatalogHandler) UpdateCollection(c echo.Context) error {
	ctx := c.Request().Context()

	collectionID, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.CollectionRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	collection, err := h.catalogService.UpdateCollection(ctx, collectionID, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewCollectionResponse(collection, 0))
}

func (h *CatalogHandler) DeleteCollection(c echo.Context) error {
	ctx := c.Request().Context()

	collectionID, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.catalogService.DeleteCollection(ctx, collectionID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// ---- promotions ----

func (h *CatalogHandler) ListPromotions(c echo.Context) error {
	ctx := c.Request().Context()

	promotions, err := h.catalogService.ListPromotions(ctx)
	if err != nil {
		return err
	}

	resp := make([]*dto.PromotionResponse, len(promotions))
	for i, promotion := range promotions {
		resp[i] = dto.NewPromotionResponse(promotion)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) CreatePromotion(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.PromotionRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	promotion, err := h.catalogService.CreatePromotion(ctx, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dto.NewPromotionResponse(promotion))
}

// ---- reviews ----

func (h *CatalogHandler) ListReviews(c echo.Context) error {
	ctx := c.Request().Context()

	productID, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	reviews, err := h.catalogService.ListReviews(ctx, productID)
	if err != nil {
		return err
	}

	resp := make([]*dto.ReviewResponse, len(reviews))
	for i, review := range reviews {
		resp[i] = dto.NewReviewResponse(review)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) CreateReview(c echo.Context) error {
	ctx := c.Request().Context()

	productID, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.ReviewRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	review, err := h.catalogService.AddReview(ctx, productID, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dto.NewReviewResponse(review))
}
