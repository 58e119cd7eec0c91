package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/marketgrid/marketplace-api/internal/api/metrics"
	"github.com/marketgrid/marketplace-api/internal/core/ports"
)

// ProductHandler handles product listing and mutation routes. Mutations run
// behind the Auth and RBAC middleware; the service layer re-checks vendor
// role and ownership against the data layer before any write.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List handles GET /products, the public catalogue read.
//
// @Summary      List all products
// @Tags         products
// @Produce      json
// @Success      200  {array}  domain.Product
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// ListByVendor handles GET /products/vendor/:vendor_id.
//
// @Summary      List a vendor's products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        vendor_id  path     string  true  "Vendor id"
// @Success      200        {array}  domain.Product
// @Router       /products/vendor/{vendor_id} [get]
func (h *ProductHandler) ListByVendor(c echo.Context) error {
	products, err := h.service.ListByVendor(c.Request().Context(), c.Param("vendor_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Create handles POST /products.
//
// @Summary      Add a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      productRequest  true  "Product details"
// @Success      201   {object}  productResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	actor, req, err := h.mutationInput(c)
	if err != nil {
		return err
	}

	product, err := h.service.Create(c.Request().Context(), actor, req.toInput())
	if err != nil {
		metrics.ProductMutationsTotal.WithLabelValues("create", "rejected").Inc()
		return err
	}
	metrics.ProductMutationsTotal.WithLabelValues("create", "ok").Inc()

	return c.JSON(http.StatusCreated, productResponse{
		Message: "Product added successfully",
		Product: product,
	})
}

// Update handles PUT /products/:product_id.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        product_id  path      string          true  "Product id"
// @Param        body        body      productRequest  true  "Product details"
// @Success      200         {object}  productResponse
// @Failure      400         {object}  map[string]string
// @Failure      403         {object}  map[string]string
// @Failure      404         {object}  map[string]string
// @Router       /products/{product_id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	actor, req, err := h.mutationInput(c)
	if err != nil {
		return err
	}

	product, err := h.service.Update(c.Request().Context(), actor, c.Param("product_id"), req.toInput())
	if err != nil {
		metrics.ProductMutationsTotal.WithLabelValues("update", "rejected").Inc()
		return err
	}
	metrics.ProductMutationsTotal.WithLabelValues("update", "ok").Inc()

	return c.JSON(http.StatusOK, productResponse{
		Message: "Product updated successfully",
		Product: product,
	})
}

// Delete handles DELETE /products/:product_id.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        product_id  path      string  true  "Product id"
// @Success      200         {object}  map[string]string
// @Failure      403         {object}  map[string]string
// @Failure      404         {object}  map[string]string
// @Router       /products/{product_id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, c.Param("product_id")); err != nil {
		metrics.ProductMutationsTotal.WithLabelValues("delete", "rejected").Inc()
		return err
	}
	metrics.ProductMutationsTotal.WithLabelValues("delete", "ok").Inc()

	return c.JSON(http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}

// DeleteMany handles POST /products/delete.
//
// @Summary      Delete selected products
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      deleteSelectedRequest  true  "Product ids"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /products/delete [post]
func (h *ProductHandler) DeleteMany(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req deleteSelectedRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.DeleteMany(c.Request().Context(), actor, req.ProductIDs); err != nil {
		metrics.ProductMutationsTotal.WithLabelValues("bulk_delete", "rejected").Inc()
		return err
	}
	metrics.ProductMutationsTotal.WithLabelValues("bulk_delete", "ok").Inc()

	return c.JSON(http.StatusOK, map[string]string{"message": "Products deleted successfully"})
}

// mutationInput gathers the acting identity and the validated payload shared
// by create and update.
func (h *ProductHandler) mutationInput(c echo.Context) (ports.Actor, *productRequest, error) {
	actor, err := ctxActor(c)
	if err != nil {
		return ports.Actor{}, nil, err
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return ports.Actor{}, nil, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return ports.Actor{}, nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return actor, &req, nil
}
