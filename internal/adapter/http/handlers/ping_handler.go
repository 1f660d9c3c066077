package handlers

import (
	response "fieldservice/internal/adapter/http/dto/response"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Ping
//
// @Summary  Liveness probe
// @Tags     health
// @Produce  json
// @Success  200  {object}  response.PingResponse
// @Router   /ping [get]
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, response.PingResponse{Message: "pong", Time: time.Now().UTC()})
}
