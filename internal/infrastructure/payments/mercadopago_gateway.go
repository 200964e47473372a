// Package payments charges card payments for sticker purchases.
package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"hoa_stickers/internal/config"
	"hoa_stickers/internal/usecase/interfaces"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/mperror"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
)

// MercadoPagoGateway creates card payments through the Mercado Pago SDK.
// In mock mode every payment is approved locally.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
	now      func() time.Time
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

// NewGateway returns the gateway for cfg, or nil when purchases are cash only.
func NewGateway(cfg config.PaymentsConfig) (interfaces.IPaymentGateway, error) {
	if cfg.Gateway != config.GatewayMercadoPago {
		return nil, nil
	}
	g, err := NewMercadoPagoGateway(cfg)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func NewMercadoPagoGateway(cfg config.PaymentsConfig) (*MercadoPagoGateway, error) {
	if cfg.Mock {
		slog.Info("payment gateway in mock mode")
		return &MercadoPagoGateway{mockMode: true, now: time.Now}, nil
	}
	if cfg.MercadoPagoAccessToken == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}

	sdkCfg, err := mpconfig.New(cfg.MercadoPagoAccessToken)
	if err != nil {
		return nil, err
	}
	slog.Info("mercado pago client initialized")
	return &MercadoPagoGateway{client: payment.NewClient(sdkCfg), now: time.Now}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	if g != nil && g.mockMode {
		return g.mockPayment(requestPayload)
	}
	if g == nil || g.client == nil {
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		return "", "", nil, classifyProviderError(err)
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}

	id := fmt.Sprintf("%d", resp.ID)
	slog.Debug("mercado pago payment created", "provider_payment_id", id, "status", resp.Status)
	return id, resp.Status, raw, nil
}

// classifyProviderError tags the SDK's HTTP response errors by status.
func classifyProviderError(err error) error {
	var respErr *mperror.ResponseError
	if !errors.As(err, &respErr) {
		return err
	}
	switch respErr.StatusCode {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %w", interfaces.ErrGatewayBadRequest, err)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %w", interfaces.ErrGatewayUnauthorized, err)
	}
	return err
}

// mockPayment echoes the request back as an approved payment.
func (g *MercadoPagoGateway) mockPayment(requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	resp := map[string]any{}
	if len(requestPayload) > 0 {
		if err := json.Unmarshal(requestPayload, &resp); err != nil {
			resp = map[string]any{"request_payload_raw": string(requestPayload)}
		}
	}

	now := g.now().UTC()
	id := strconv.FormatInt(now.UnixNano(), 10)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now.Format(time.RFC3339Nano)

	raw, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return id, "approved", raw, nil
}
