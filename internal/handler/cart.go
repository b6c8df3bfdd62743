package handler

import (
	"net/http"
	"storefront/internal/dto"
	"storefront/internal/service"

	"github.com/labstack/echo/v4"
)

type CartHandler struct {
	cartService service.CartService
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

func (h *CartHandler) CreateCart(c echo.Context) error {
	ctx := c.Request().Context()

	cart, err := h.cartService.CreateCart(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dto.NewCartResponse(cart))
}

func (h *CartHandler) GetCart(c echo.Context) error {
	ctx := c.Request().Context()

	cart, err := h.cartService.GetCart(ctx, c.Param("cart_id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewCartResponse(cart))
}

func (h *CartHandler) AddItem(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	item, err := h.cartService.AddItem(ctx, c.Param("cart_id"), req.ProductID, req.Quantity)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewCartItemResponse(item))
}

func (h *CartHandler) UpdateItem(c echo.Context) error {
	ctx := c.Request().Context()

	itemID, err := parseUintParam(c, "item_id")
	if err != nil {
		return err
	}

	var req dto.UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	item, err := h.cartService.UpdateItemQuantity(ctx, c.Param("cart_id"), itemID, req.Quantity)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewCartItemResponse(item))
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()

	itemID, err := parseUintParam(c, "item_id")
	if err != nil {
		return err
	}

	if err := h.cartService.RemoveItem(ctx, c.Param("cart_id"), itemID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
