package handlers

import (
	"context"
	"errors"
	request "fieldservice/internal/adapter/http/dto/request"
	response "fieldservice/internal/adapter/http/dto/response"
	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase"
	"fieldservice/internal/usecase/interfaces"
	"fieldservice/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles quote (orçamento) creation, listing and status changes.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateQuote assigns the next ORC number and recomputes totals server-side.
//
// @Summary  Create quote
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    body  body  request.QuoteRequest  true  "Quote"
// @Success  201   {object}  entities.Quote
// @Failure  400   {object}  pkg.HTTPError
// @Failure  404   {object}  pkg.HTTPError
// @Router   /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := payload.ToEntity()
	if err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), quote)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListQuotes
//
// @Summary  List quotes
// @Tags     quotes
// @Produce  json
// @Success  200  {array}  entities.Quote
// @Router   /quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

// GetQuote
//
// @Summary  Get quote
// @Tags     quotes
// @Produce  json
// @Param    id   path  string  true  "Quote ID"
// @Success  200  {object}  entities.Quote
// @Failure  404  {object}  pkg.HTTPError
// @Router   /quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, quote)
}

// SendQuote moves a draft to Enviado.
//
// @Summary  Send quote
// @Tags     quotes
// @Produce  json
// @Param    id   path  string  true  "Quote ID"
// @Success  200  {object}  entities.Quote
// @Failure  409  {object}  pkg.HTTPError
// @Router   /quotes/{id}/send [patch]
func (h *QuoteHandler) SendQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.Send)
}

// AcceptQuote
//
// @Summary  Accept quote
// @Tags     quotes
// @Produce  json
// @Param    id   path  string  true  "Quote ID"
// @Success  200  {object}  entities.Quote
// @Failure  409  {object}  pkg.HTTPError
// @Router   /quotes/{id}/accept [patch]
func (h *QuoteHandler) AcceptQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.Accept)
}

// RejectQuote
//
// @Summary  Reject quote
// @Tags     quotes
// @Produce  json
// @Param    id   path  string  true  "Quote ID"
// @Success  200  {object}  entities.Quote
// @Failure  409  {object}  pkg.HTTPError
// @Router   /quotes/{id}/reject [patch]
func (h *QuoteHandler) RejectQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.Reject)
}

func (h *QuoteHandler) patchQuoteStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Quote, error),
) {
	quote, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, quote)
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrQuoteWithoutItems):
		return pkg.NewDomainErrorSimple("QUOTE_WITHOUT_ITEMS", usecase.ErrQuoteWithoutItems.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDiscountExceeds):
		return pkg.NewDomainErrorSimple("DISCOUNT_EXCEEDS_SUBTOTAL", usecase.ErrDiscountExceeds.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidValidity):
		return pkg.NewDomainErrorSimple("INVALID_VALIDITY", usecase.ErrInvalidValidity.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuote), errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainError("INVALID_QUOTE_INPUT", "Invalid quote payload", err, http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrReferenceNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", interfaces.ErrReferenceNotFound.Error(), http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrInvalidQuoteTransition):
		return pkg.NewDomainError("INVALID_QUOTE_TRANSITION", "Quote cannot move to the requested status", err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
