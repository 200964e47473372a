package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"hoa_stickers/internal/domain/entities"
	"hoa_stickers/internal/usecase/interfaces"
)

var (
	ErrPaymentGatewayBadRequest   = fmt.Errorf("%w: bad request", ErrPaymentRejected)
	ErrPaymentGatewayUnauthorized = fmt.Errorf("%w: unauthorized", ErrPaymentRejected)

	// ErrPaymentPending means the provider accepted the card but has not
	// approved it yet; nothing is recorded until it is approved.
	ErrPaymentPending = errors.New("payment pending approval")

	// ErrPurchaseNotRecorded means the card was charged but the purchase
	// could not be stored. The error text carries the provider payment id.
	ErrPurchaseNotRecorded = errors.New("payment charged but purchase not recorded")
)

const paymentApproved = "approved"

// charge sends the purchase to the card gateway and returns the provider payment id.
// The charged amount always overrides whatever amount the payload carried.
func (u *PurchaseUseCase) charge(ctx context.Context, p entities.Purchase, product entities.Product, payload json.RawMessage) (string, error) {
	if u.gateway == nil {
		return "", ErrPaymentGatewayNotConfigured
	}

	req := map[string]any{}
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &req); err != nil {
			slog.Warn("payment payload unmarshal failed", "purchase_id", p.ID, "err", err)
			return "", ErrInvalidPaymentPayload
		}
	}
	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = p.ID
	}
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("%s vehicle sticker %s", product.Name, p.StickerNumber)
	}
	req["transaction_amount"] = p.AmountPaid

	body, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	providerID, status, _, err := u.gateway.CreatePayment(ctx, body)
	if err != nil {
		slog.Error("payment gateway failed", "purchase_id", p.ID, "err", err)
		switch {
		case errors.Is(err, interfaces.ErrGatewayUnauthorized):
			return "", ErrPaymentGatewayUnauthorized
		case errors.Is(err, interfaces.ErrGatewayBadRequest):
			return "", ErrPaymentGatewayBadRequest
		}
		return "", err
	}
	switch status {
	case paymentApproved:
	case "rejected", "cancelled", "refunded", "charged_back":
		slog.Warn("payment not approved", "purchase_id", p.ID, "provider_payment_id", providerID, "status", status)
		return "", ErrPaymentRejected
	default:
		slog.Warn("payment awaiting approval", "purchase_id", p.ID, "provider_payment_id", providerID, "status", status)
		return "", fmt.Errorf("%w: provider payment %s is %s", ErrPaymentPending, providerID, status)
	}
	slog.Info("payment created", "purchase_id", p.ID, "provider_payment_id", providerID, "status", status)
	return providerID, nil
}
