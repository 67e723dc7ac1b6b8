package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tapsilat/tapsilat-go/internal/usecase"
)

type PingHandler struct {
	usecase usecase.IHealthUseCase
}

func NewPingHandler(uc usecase.IHealthUseCase) *PingHandler {
	return &PingHandler{usecase: uc}
}

// Ping answers liveness. With ?deep=1 it also asks the Tapsilat API.
func (h *PingHandler) Ping(c *gin.Context) {
	if c.Query("deep") != "1" {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
		return
	}

	upstream, err := h.usecase.CheckUpstream(c.Request.Context())
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "pong", "upstream": upstream})
}
