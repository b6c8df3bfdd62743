package handler

import (
	"net/http"
	"storefront/internal/dto"
	"storefront/internal/service"

	"github.com/labstack/echo/v4"
)

type CustomerHandler struct {
	customerService service.CustomerService
}

func NewCustomerHandler(customerService service.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
	}
}

func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	ctx := c.Request().Context()

	customers, err := h.customerService.ListCustomers(ctx)
	if err != nil {
		return err
	}

	resp := make([]*dto.CustomerResponse, len(customers))
	for i, customer := range customers {
		resp[i] = dto.NewCustomerResponse(customer)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	ctx := c.Request().Context()

	customerID, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	customer, err := h.customerService.GetCustomer(ctx, customerID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewCustomerResponse(customer))
}

func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CustomerRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	customer, err := h.customerService.CreateCustomer(ctx, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dto.NewCustomerResponse(customer))
}

func (h *CustomerHandler) UpdateCustomer(c echo.Context) error {
	ctx := c.Request().Context()

	customerID, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.CustomerRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	customer, err := h.customerService.UpdateCustomer(ctx, customerID, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewCustomerResponse(customer))
}

func (h *CustomerHandler) UpsertAddress(c echo.Context) error {
	ctx := c.Request().Context()

	customerID, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.AddressRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	customer, err := h.customerService.UpsertAddress(ctx, customerID, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewCustomerResponse(customer))
}
