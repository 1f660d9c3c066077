package handlers

import (
	"errors"
	"fieldservice/internal/usecase"
	"fieldservice/internal/usecase/interfaces"
	"fieldservice/pkg"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type PostalCodeHandler struct {
	usecase usecase.IPostalCodeUseCase
}

func NewPostalCodeHandler(uc usecase.IPostalCodeUseCase) *PostalCodeHandler {
	return &PostalCodeHandler{usecase: uc}
}

// LookupPostalCode resolves a CEP to pre-fill address forms. Failures never block
// manual entry on the client side.
//
// @Summary  Look up a CEP
// @Tags     postal-codes
// @Produce  json
// @Param    zip  path  string  true  "CEP, with or without dash"
// @Success  200  {object}  entities.PostalAddress
// @Failure  404  {object}  pkg.HTTPError
// @Router   /postal-codes/{zip} [get]
func (h *PostalCodeHandler) LookupPostalCode(c *gin.Context) {
	zip := c.Param("zip")
	addr, err := h.usecase.Lookup(c.Request.Context(), zip)
	if err != nil {
		log.Printf("[postal-code][handler] lookup failed zip=%s err=%v", zip, err)
		appErr := mapPostalCodeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, addr)
}

func mapPostalCodeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidZipCode):
		return pkg.NewDomainErrorSimple("INVALID_ZIP_CODE", "Invalid zip code", http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrPostalCodeNotFound):
		return pkg.NewDomainErrorSimple("ZIP_CODE_NOT_FOUND", "Zip code not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPostalLookupUnavailable):
		return pkg.NewDomainErrorSimple("POSTAL_LOOKUP_UNAVAILABLE", "Postal code lookup is not available", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("POSTAL_LOOKUP_FAILED", "Postal code lookup failed", err, http.StatusBadGateway)
	}
}
