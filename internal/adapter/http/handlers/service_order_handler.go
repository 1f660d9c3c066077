package handlers

import (
	"errors"
	request "fieldservice/internal/adapter/http/dto/request"
	response "fieldservice/internal/adapter/http/dto/response"
	"fieldservice/internal/usecase"
	"fieldservice/internal/usecase/interfaces"
	"fieldservice/pkg"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidServiceOrderPayload = pkg.NewDomainErrorSimple("INVALID_SERVICE_ORDER_INPUT", "Invalid service order payload", http.StatusBadRequest)
)

type ServiceOrderHandler struct {
	usecase usecase.IServiceOrderUseCase
}

func NewServiceOrderHandler(uc usecase.IServiceOrderUseCase) *ServiceOrderHandler {
	return &ServiceOrderHandler{usecase: uc}
}

// CreateServiceOrder schedules an OS. It always starts as Pendente.
//
// @Summary  Create service order
// @Tags     service-orders
// @Accept   json
// @Produce  json
// @Param    body  body  request.ServiceOrderRequest  true  "Service order"
// @Success  201   {object}  entities.ServiceOrder
// @Failure  400   {object}  pkg.HTTPError
// @Failure  404   {object}  pkg.HTTPError
// @Router   /service-orders [post]
func (h *ServiceOrderHandler) CreateServiceOrder(c *gin.Context) {
	var payload request.ServiceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServiceOrderPayload.HTTPStatus, errInvalidServiceOrderPayload.ToHTTPError())
		return
	}

	order, err := payload.ToEntity()
	if err != nil {
		c.JSON(errInvalidServiceOrderPayload.HTTPStatus, errInvalidServiceOrderPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), order)
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListServiceOrders
//
// @Summary  List service orders
// @Tags     service-orders
// @Produce  json
// @Success  200  {array}  entities.ServiceOrder
// @Router   /service-orders [get]
func (h *ServiceOrderHandler) ListServiceOrders(c *gin.Context) {
	orders, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrders(orders))
}

// ParseServiceRequest suggests a service type and notes for a free-text request.
//
// @Summary  Parse a free-text service request
// @Tags     service-orders
// @Accept   json
// @Produce  json
// @Param    body  body  request.ParseServiceRequest  true  "Description"
// @Success  200   {object}  entities.ParsedServiceRequest
// @Failure  503   {object}  pkg.HTTPError
// @Router   /service-orders/parse [post]
func (h *ServiceOrderHandler) ParseServiceRequest(c *gin.Context) {
	var payload request.ParseServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServiceOrderPayload.HTTPStatus, errInvalidServiceOrderPayload.ToHTTPError())
		return
	}

	parsed, err := h.usecase.ParseRequest(c.Request.Context(), payload.Description)
	if err != nil {
		log.Printf("[service-order][handler] parse failed err=%v", err)
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, parsed)
}

func mapServiceOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceOrder), errors.Is(err, usecase.ErrEmptyServiceDescription):
		return pkg.NewDomainError("INVALID_SERVICE_ORDER_INPUT", "Invalid service order payload", err, http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrReferenceNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", interfaces.ErrReferenceNotFound.Error(), http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceParserUnavailable):
		return pkg.NewDomainErrorSimple("PARSER_UNAVAILABLE", "Service request parsing is not available", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
