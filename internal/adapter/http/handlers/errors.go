package handlers

import (
	"errors"
	"net/http"

	"github.com/tapsilat/tapsilat-go/internal/usecase"
	"github.com/tapsilat/tapsilat-go/pkg"
)

var errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// mapPaymentError translates use-case and client errors into the HTTP shape.
// Server rejections keep the status the Tapsilat API answered with.
func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidReferenceID), errors.Is(err, usecase.ErrInvalidRefundAmount):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	}

	apiErr, ok := pkg.AsAPIError(err)
	if !ok {
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
	switch {
	case apiErr.IsValidation():
		return pkg.NewDomainError("INVALID_REQUEST", apiErr.Message, err, http.StatusBadRequest)
	case apiErr.IsTransport():
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNREACHABLE", "Payment provider unreachable", err, http.StatusBadGateway)
	case apiErr.StatusCode >= http.StatusBadRequest && apiErr.StatusCode <= 599:
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", apiErr.Message, err, apiErr.StatusCode)
	default:
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", apiErr.Message, err, http.StatusBadGateway)
	}
}
