package handlers

import (
	"encoding/json"
	"errors"
	response "fieldservice/internal/adapter/http/dto/response"
	"fieldservice/internal/usecase"
	"fieldservice/pkg"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// QuotePaymentHandler handles HTTP requests for quote payments.
type QuotePaymentHandler struct {
	usecase  usecase.IQuotePaymentUseCase
	mockMode bool
}

// NewQuotePaymentHandler: in mock mode an unreadable body falls back to an empty payload.
func NewQuotePaymentHandler(uc usecase.IQuotePaymentUseCase, mockMode bool) *QuotePaymentHandler {
	return &QuotePaymentHandler{usecase: uc, mockMode: mockMode}
}

// CreatePayment charges an accepted quote.
//
// @Summary  Charge an accepted quote
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    id    path  string                            true  "Quote ID"
// @Param    body  body  request.QuotePaymentCreateRequest false "Mercado Pago payload"
// @Success  200   {object}  response.QuotePaymentResponse
// @Failure  409   {object}  pkg.HTTPError
// @Router   /quotes/{id}/payments [post]
func (h *QuotePaymentHandler) CreatePayment(c *gin.Context) {
	quoteID := c.Param("id")
	log.Printf("[quote-payment][handler] create start quote_id=%s", quoteID)
	mpPayload, err := readMPPayload(c)
	if err != nil {
		if h.mockMode {
			log.Printf("[quote-payment][handler] payload invalid in mock mode; fallback to empty payload quote_id=%s err=%v", quoteID, err)
			mpPayload = json.RawMessage("{}")
		} else {
			log.Printf("[quote-payment][handler] invalid payload quote_id=%s err=%v", quoteID, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.Pay(c.Request.Context(), quoteID, mpPayload)
	if err != nil {
		log.Printf("[quote-payment][handler] create failed quote_id=%s err=%v", quoteID, err)
		appErr := mapQuotePaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quote-payment][handler] create success quote_id=%s payment_id=%s status=%s", quoteID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromQuotePayment(created))
}

// ListPayments returns every payment recorded for a quote, oldest first.
//
// @Summary  List quote payments
// @Tags     payments
// @Produce  json
// @Param    id   path  string  true  "Quote ID"
// @Success  200  {array}  response.QuotePaymentResponse
// @Router   /quotes/{id}/payments [get]
func (h *QuotePaymentHandler) ListPayments(c *gin.Context) {
	quoteID := c.Param("id")

	payments, err := h.usecase.ListByQuoteID(c.Request.Context(), quoteID)
	if err != nil {
		log.Printf("[quote-payment][handler] list failed quote_id=%s err=%v", quoteID, err)
		appErr := mapQuotePaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotePayments(payments))
}

// GetLatestPayment returns the most recent payment for a quote.
//
// @Summary  Latest quote payment
// @Tags     payments
// @Produce  json
// @Param    id   path  string  true  "Quote ID"
// @Success  200  {object}  response.QuotePaymentResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /quotes/{id}/payments/latest [get]
func (h *QuotePaymentHandler) GetLatestPayment(c *gin.Context) {
	quoteID := c.Param("id")
	log.Printf("[quote-payment][handler] get-latest start quote_id=%s", quoteID)

	payments, err := h.usecase.ListByQuoteID(c.Request.Context(), quoteID)
	if err != nil {
		log.Printf("[quote-payment][handler] get-latest failed quote_id=%s err=%v", quoteID, err)
		appErr := mapQuotePaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(payments) == 0 {
		log.Printf("[quote-payment][handler] get-latest not-found quote_id=%s", quoteID)
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}

	c.JSON(http.StatusOK, response.FromQuotePayment(latest))
}

// readMPPayload accepts either {"mp_payload": {...}} or the bare Mercado Pago object.
func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapQuotePaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotAccepted):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_ACCEPTED", "Quote not accepted", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
