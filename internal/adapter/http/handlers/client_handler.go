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
	errInvalidClientPayload = pkg.NewDomainErrorSimple("INVALID_CLIENT_INPUT", "Invalid client payload", http.StatusBadRequest)
)

type ClientHandler struct {
	usecase usecase.IClientUseCase
}

func NewClientHandler(uc usecase.IClientUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc}
}

// CreateClient registers a pessoa física or pessoa jurídica client.
//
// @Summary  Create client
// @Tags     clients
// @Accept   json
// @Produce  json
// @Param    body  body  request.ClientRequest  true  "Client"
// @Success  201   {object}  response.ClientResponse
// @Failure  400   {object}  pkg.HTTPError
// @Router   /clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidClientPayload.HTTPStatus, errInvalidClientPayload.ToHTTPError())
		return
	}

	client, err := payload.ToEntity()
	if err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), client)
	if err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromClient(created))
}

// ListClients returns every client, newest first.
//
// @Summary  List clients
// @Tags     clients
// @Produce  json
// @Success  200  {array}  response.ClientResponse
// @Router   /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromClients(clients))
}

func mapClientError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClient), errors.Is(err, entities.ErrUnknownPartyType):
		return pkg.NewDomainError("INVALID_CLIENT_INPUT", "Invalid client payload", err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
