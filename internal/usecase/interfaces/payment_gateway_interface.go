package interfaces

import (
	"context"
	"encoding/json"
	"errors"
)

// Provider answers CreatePayment wraps, so callers can classify them with errors.Is.
var (
	ErrGatewayBadRequest   = errors.New("payment provider bad request")
	ErrGatewayUnauthorized = errors.New("payment provider unauthorized")
)

// IPaymentGateway charges a sticker purchase with an external provider.
// The provider response is kept for traceability.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
