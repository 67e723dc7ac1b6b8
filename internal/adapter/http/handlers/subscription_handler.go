package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/tapsilat/tapsilat-go/internal/adapter/http/dto/request"
	response "github.com/tapsilat/tapsilat-go/internal/adapter/http/dto/response"
	"github.com/tapsilat/tapsilat-go/internal/logger"
	"github.com/tapsilat/tapsilat-go/internal/usecase"
)

type SubscriptionHandler struct {
	usecase usecase.ISubscriptionUseCase
	log     logger.Sugared
}

func NewSubscriptionHandler(uc usecase.ISubscriptionUseCase, log logger.Sugared) *SubscriptionHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &SubscriptionHandler{usecase: uc, log: log}
}

// CreateSubscription godoc
// @Summary      Create a recurring subscription
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Param        body  body      request.SubscriptionCreateRequest  true  "Subscription"
// @Success      201   {object}  response.SubscriptionCreatedResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /subscriptions [post]
func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	var payload request.SubscriptionCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.log.Warnf("[subscription][handler] invalid payload err=%v", err)
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSubscriptionCreated(created))
}

func (h *SubscriptionHandler) GetSubscription(c *gin.Context) {
	detail, err := h.usecase.Get(c.Request.Context(), c.Param("reference_id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, detail)
}

func (h *SubscriptionHandler) CancelSubscription(c *gin.Context) {
	res, err := h.usecase.Cancel(c.Request.Context(), c.Param("reference_id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, res)
}
