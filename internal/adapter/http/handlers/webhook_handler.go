package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	response "github.com/tapsilat/tapsilat-go/internal/adapter/http/dto/response"
	"github.com/tapsilat/tapsilat-go/internal/logger"
	"github.com/tapsilat/tapsilat-go/internal/usecase"
	"github.com/tapsilat/tapsilat-go/pkg"
)

const SignatureHeader = "X-Tapsilat-Signature"

type WebhookHandler struct {
	usecase usecase.IWebhookUseCase
	log     logger.Sugared
}

func NewWebhookHandler(uc usecase.IWebhookUseCase, log logger.Sugared) *WebhookHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &WebhookHandler{usecase: uc, log: log}
}

// ReceiveTapsilatWebhook godoc
// @Summary      Receive a signed Tapsilat callback
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        X-Tapsilat-Signature  header    string  true  "sha256=<hex hmac>"
// @Success      202                   {object}  response.WebhookAcceptedResponse
// @Failure      401                   {object}  pkg.HTTPError
// @Router       /webhooks/tapsilat [post]
func (h *WebhookHandler) ReceiveTapsilatWebhook(c *gin.Context) {
	// The signature covers the exact bytes sent, so the body is read raw.
	payload, err := c.GetRawData()
	if err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	event, err := h.usecase.Handle(c.Request.Context(), payload, c.GetHeader(SignatureHeader))
	if err != nil {
		appErr := mapWebhookError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusAccepted, response.FromWebhookEvent(event))
}

func mapWebhookError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWebhookSignature):
		return pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Invalid webhook signature", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidWebhookPayload):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrWebhookSecretNotConfigured):
		return pkg.NewDomainErrorSimple("WEBHOOK_NOT_CONFIGURED", "Webhook secret not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
