package handlers

import (
	"errors"
	"net/http"

	request "hoa_stickers/internal/adapter/http/dto/request"
	"hoa_stickers/internal/usecase"
	"hoa_stickers/internal/usecase/interfaces"
	"hoa_stickers/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Please correct the highlighted fields", http.StatusBadRequest)
)

// BindError describes a failed ShouldBind call, with per-field messages
// when the payload parsed but did not validate.
func BindError(err error) *pkg.AppError {
	if fields := request.FieldErrors(err); len(fields) > 0 {
		return errInvalidPayload.WithFields(fields)
	}
	return errInvalidRequest
}

// MapError translates use case errors into client facing errors. The HTML
// pages show the same messages inline.
func MapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidResidentID), errors.Is(err, usecase.ErrInvalidProductID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidResident):
		return pkg.NewDomainErrorSimple("INVALID_RESIDENT", "Name, phase, block and lot are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidProduct):
		return pkg.NewDomainErrorSimple("INVALID_PRODUCT", "Choose a sticker type and color and enter an amount above zero", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPurchase):
		return pkg.NewDomainErrorSimple("INVALID_PURCHASE", "Driver, sticker, plate and AF numbers are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrResidentNotFound):
		return pkg.NewDomainErrorSimple("RESIDENT_NOT_FOUND", "Resident not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Sticker not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductInactive):
		return pkg.NewDomainErrorSimple("PRODUCT_INACTIVE", "This sticker is no longer offered", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidPaymentPayload):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_PAYLOAD", "Invalid payment details", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Card payments are not available", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainError("PAYMENT_GATEWAY_UNAUTHORIZED", "Payment provider rejected our credentials", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentPending):
		return pkg.NewDomainError("PAYMENT_PENDING", "Payment is awaiting approval, the purchase was not recorded", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrPurchaseNotRecorded):
		return pkg.NewDomainError("PURCHASE_NOT_RECORDED", "The card was charged but the purchase could not be saved, reconcile the payment before retrying", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrPaymentRejected):
		return pkg.NewDomainErrorSimple("PAYMENT_REJECTED", "Payment was not approved", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrInvalidEmail):
		return pkg.NewDomainErrorSimple("INVALID_EMAIL", "Invalid email address", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPassword):
		return pkg.NewDomainErrorSimple("INVALID_PASSWORD", "Password must be at least 6 characters", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingToken):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authorization token required", http.StatusUnauthorized)
	case errors.Is(err, interfaces.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid login credentials", http.StatusUnauthorized)
	case errors.Is(err, interfaces.ErrInvalidToken):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired token", http.StatusUnauthorized)
	case errors.Is(err, interfaces.ErrUserAlreadyExists):
		return pkg.NewDomainErrorSimple("USER_ALREADY_EXISTS", "User already registered", http.StatusConflict)
	case errors.Is(err, interfaces.ErrAuthNotConfigured):
		return pkg.NewDomainErrorSimple("AUTH_NOT_CONFIGURED", "Authentication is not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func abortWith(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
