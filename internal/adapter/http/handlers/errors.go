package handlers

import (
	"errors"
	"net/http"

	"quickgigs/internal/usecase"
	"quickgigs/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

var (
	errInvalidRequest      = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errGigNotFound         = pkg.NewDomainErrorSimple("GIG_NOT_FOUND", "Gig not found", http.StatusNotFound)
	errApplicationNotFound = pkg.NewDomainErrorSimple("APPLICATION_NOT_FOUND", "Application not found", http.StatusNotFound)
	errPaymentNotFound     = pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
)

// mapError translates use case errors. A caller that may not act on a
// resource gets the same 404 as for a missing one.
func mapError(err error, notFound *pkg.AppError) *pkg.AppError {
	var verr *usecase.ValidationError
	var terr *usecase.InvalidTransitionError
	var gerr *usecase.PaymentGatewayError

	switch {
	case errors.As(err, &verr):
		return pkg.NewDomainError("VALIDATION_ERROR", verr.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotAuthorized):
		return notFound
	case errors.Is(err, usecase.ErrGigNotFound):
		return errGigNotFound
	case errors.Is(err, usecase.ErrApplicationNotFound):
		return errApplicationNotFound
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return errPaymentNotFound
	case errors.Is(err, usecase.ErrDuplicateApplication):
		return pkg.NewDomainErrorSimple("DUPLICATE_APPLICATION", "You have already applied to this gig", http.StatusConflict)
	case errors.Is(err, usecase.ErrSelfApplication):
		return pkg.NewDomainErrorSimple("SELF_APPLICATION", "You cannot apply to your own gig", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrGigUnavailable):
		return pkg.NewDomainErrorSimple("GIG_UNAVAILABLE", "This gig is no longer accepting applications", http.StatusUnprocessableEntity)
	case errors.As(err, &terr):
		appErr := pkg.NewDomainError("INVALID_TRANSITION", "Status change not allowed", err, http.StatusConflict)
		if terr.Reason != "" {
			return appErr.WithMessage(terr.Reason)
		}
		return appErr
	case errors.Is(err, usecase.ErrInvalidSignature):
		return pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Invalid webhook signature", http.StatusBadRequest)
	case errors.As(err, &gerr):
		if gerr.Timeout {
			return pkg.NewDomainError("PAYMENT_GATEWAY_TIMEOUT", "Payment provider did not answer in time", err, http.StatusGatewayTimeout)
		}
		return pkg.NewDomainError("PAYMENT_GATEWAY_ERROR", "Payment provider error", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func respondError(c *gin.Context, scope string, err error, notFound *pkg.AppError) {
	appErr := mapError(err, notFound)
	entry := log.WithFields(log.Fields{"path": c.FullPath(), "code": appErr.Code})
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		entry.WithError(err).Error(scope + " request failed")
	} else {
		entry.WithError(err).Info(scope + " request rejected")
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
