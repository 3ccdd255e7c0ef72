package handlers

import (
	"errors"
	"net/http"

	"workorder_invoicing/internal/usecase"
	"workorder_invoicing/internal/usecase/interfaces"
	"workorder_invoicing/pkg"
)

// mapCommonError covers the failures every route can hit: storage and upstream services.
func mapCommonError(err error, internalMessage string) *pkg.AppError {
	var statusErr *interfaces.UpstreamStatusError
	switch {
	case errors.As(err, &statusErr):
		status := statusErr.StatusCode
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		return pkg.NewDomainError("UPSTREAM_ERROR", statusErr.Error(), err, status)
	case errors.Is(err, interfaces.ErrUpstreamFailure):
		return pkg.NewDomainError("UPSTREAM_UNAVAILABLE", "Upstream service unavailable", err, http.StatusBadGateway)
	case errors.Is(err, interfaces.ErrMalformedData):
		return pkg.NewDomainError("MALFORMED_DATA", internalMessage, err, http.StatusInternalServerError)
	case errors.Is(err, interfaces.ErrStorageUnavailable):
		return pkg.NewDomainError("STORAGE_UNAVAILABLE", internalMessage, err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_FOUND", "Work order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", internalMessage, err, http.StatusInternalServerError)
	}
}
