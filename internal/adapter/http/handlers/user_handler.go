package handlers

import (
	"errors"
	request "fieldservice/internal/adapter/http/dto/request"
	response "fieldservice/internal/adapter/http/dto/response"
	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase"
	"fieldservice/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidUserPayload = pkg.NewDomainErrorSimple("INVALID_USER_INPUT", "Invalid user payload", http.StatusBadRequest)
)

type UserHandler struct {
	usecase usecase.IUserUseCase
}

func NewUserHandler(uc usecase.IUserUseCase) *UserHandler {
	return &UserHandler{usecase: uc}
}

// CreateUser registers an operator. The password, when present, goes to the credential map.
//
// @Summary  Create user
// @Tags     users
// @Accept   json
// @Produce  json
// @Param    body  body  request.UserRequest  true  "User"
// @Success  201   {object}  response.UserResponse
// @Failure  400   {object}  pkg.HTTPError
// @Router   /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var payload request.UserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidUserPayload.HTTPStatus, errInvalidUserPayload.ToHTTPError())
		return
	}

	user, password, err := payload.ToEntity()
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), user, password)
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromUser(created))
}

// ListUsers returns every user, newest first.
//
// @Summary  List users
// @Tags     users
// @Produce  json
// @Success  200  {array}  response.UserResponse
// @Router   /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUsers(users))
}

func mapUserError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUser), errors.Is(err, entities.ErrUnknownPartyType):
		return pkg.NewDomainError("INVALID_USER_INPUT", "Invalid user payload", err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
