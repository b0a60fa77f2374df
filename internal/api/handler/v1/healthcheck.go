package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/slots-pg/dashboard-api/internal/api/handler/v1/response"
)

// HandleHealthcheck godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.Message
// @Router       / [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, response.Message{Message: "ok"})
}
