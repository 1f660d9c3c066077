package handlers

import (
	"errors"
	request "fieldservice/internal/adapter/http/dto/request"
	response "fieldservice/internal/adapter/http/dto/response"
	"fieldservice/internal/usecase"
	"fieldservice/internal/usecase/interfaces"
	"fieldservice/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	usecase usecase.IUserUseCase
}

func NewAuthHandler(uc usecase.IUserUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Login checks a username/password pair. No token is issued.
//
// @Summary  Authenticate an operator
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body  body  request.LoginRequest  true  "Credentials"
// @Success  200   {object}  response.LoginResponse
// @Failure  401   {object}  pkg.HTTPError
// @Failure  403   {object}  pkg.HTTPError
// @Router   /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	user, err := h.usecase.Authenticate(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.LoginResponse{User: response.FromUser(user), IsLoggedIn: true})
}

// mapAuthError keeps the store messages; they are meant for end users.
func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, interfaces.ErrMissingCredentials):
		return pkg.NewDomainErrorSimple("MISSING_CREDENTIALS", interfaces.ErrMissingCredentials.Error(), http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", interfaces.ErrInvalidCredentials.Error(), http.StatusUnauthorized)
	case errors.Is(err, interfaces.ErrUserInactive):
		return pkg.NewDomainErrorSimple("USER_INACTIVE", interfaces.ErrUserInactive.Error(), http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
