package handlers

import (
	"errors"
	request "fieldservice/internal/adapter/http/dto/request"
	response "fieldservice/internal/adapter/http/dto/response"
	"fieldservice/internal/usecase"
	"fieldservice/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidProductPayload = pkg.NewDomainErrorSimple("INVALID_PRODUCT_INPUT", "Invalid product payload", http.StatusBadRequest)
)

type ProductHandler struct {
	usecase usecase.IProductUseCase
}

func NewProductHandler(uc usecase.IProductUseCase) *ProductHandler {
	return &ProductHandler{usecase: uc}
}

// CreateProduct
//
// @Summary  Create product
// @Tags     products
// @Accept   json
// @Produce  json
// @Param    body  body  request.ProductRequest  true  "Product"
// @Success  201   {object}  entities.Product
// @Failure  400   {object}  pkg.HTTPError
// @Router   /products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var payload request.ProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProductPayload.HTTPStatus, errInvalidProductPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListProducts
//
// @Summary  List products
// @Tags     products
// @Produce  json
// @Success  200  {array}  entities.Product
// @Router   /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProducts(products))
}

func mapProductError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProduct):
		return pkg.NewDomainError("INVALID_PRODUCT_INPUT", "Invalid product payload", err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
