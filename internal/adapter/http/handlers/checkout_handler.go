package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/tapsilat/tapsilat-go/internal/adapter/http/dto/request"
	response "github.com/tapsilat/tapsilat-go/internal/adapter/http/dto/response"
	"github.com/tapsilat/tapsilat-go/internal/logger"
	"github.com/tapsilat/tapsilat-go/internal/usecase"
)

// CheckoutHandler exposes hosted checkout over HTTP.
type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
	log     logger.Sugared
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase, log logger.Sugared) *CheckoutHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &CheckoutHandler{usecase: uc, log: log}
}

// CreateCheckout godoc
// @Summary      Start a hosted checkout
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        body  body      request.CheckoutRequest  true  "Order"
// @Success      201   {object}  response.CheckoutResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      502   {object}  pkg.HTTPError
// @Router       /checkout [post]
func (h *CheckoutHandler) CreateCheckout(c *gin.Context) {
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.log.Warnf("[order][handler] invalid payload err=%v", err)
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	result, err := h.usecase.StartCheckout(c.Request.Context(), usecase.CheckoutCommand{
		Amount:              payload.Amount,
		Currency:            payload.Currency,
		Locale:              payload.ResolveLocale(),
		Buyer:               payload.ToBuyer(),
		Items:               payload.ToBasketItems(),
		Installments:        payload.Installments,
		ExternalReferenceID: payload.ExternalReferenceID,
	})
	if err != nil {
		h.log.Warnf("[order][handler] create failed err=%v", err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCheckoutResult(result))
}

// GetCheckout godoc
// @Summary      Look up an order
// @Tags         checkout
// @Produce      json
// @Param        reference_id  path      string  true  "Order reference id"
// @Success      200           {object}  response.OrderResponse
// @Failure      400           {object}  pkg.HTTPError
// @Router       /checkout/{reference_id} [get]
func (h *CheckoutHandler) GetCheckout(c *gin.Context) {
	referenceID := c.Param("reference_id")

	order, err := h.usecase.GetOrder(c.Request.Context(), referenceID)
	if err != nil {
		h.log.Warnf("[order][handler] get failed reference_id=%s err=%v", referenceID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *CheckoutHandler) CancelCheckout(c *gin.Context) {
	referenceID := c.Param("reference_id")

	res, err := h.usecase.CancelOrder(c.Request.Context(), referenceID)
	if err != nil {
		h.log.Warnf("[order][handler] cancel failed reference_id=%s err=%v", referenceID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, res)
}

// RefundCheckout refunds the given amount, or the whole order when the body
// carries none.
func (h *CheckoutHandler) RefundCheckout(c *gin.Context) {
	referenceID := c.Param("reference_id")

	var payload request.RefundRequest
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &payload); err != nil {
			c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
			return
		}
	}

	res, err := h.usecase.RefundOrder(c.Request.Context(), referenceID, payload.Amount)
	if err != nil {
		h.log.Warnf("[order][handler] refund failed reference_id=%s err=%v", referenceID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, res)
}
