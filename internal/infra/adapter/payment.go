package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"travel-core/internal/pkg/config"
	"travel-core/internal/pkg/errs"
)

// CardGatewayAdapter captures card payments synchronously against the
// payment gateway. A decline comes back as a 200 with approved=false;
// the decline reason is surfaced as the error text so the settlement
// engine can record it on the failed purchase.
type CardGatewayAdapter struct {
	gatewayURL string
	apiKey     string
	http       *http.Client
}

func NewCardGatewayAdapter(cfg config.PaymentConfig) *CardGatewayAdapter {
	return &CardGatewayAdapter{
		gatewayURL: strings.TrimRight(cfg.GatewayURL, "/"),
		apiKey:     cfg.GatewayAPIKey,
		http:       &http.Client{},
	}
}

type captureRequest struct {
	PurchaseID  string `json:"purchase_id"`
	AmountMinor int64  `json:"amount_minor"`
	Currency    string `json:"currency"`
}

type captureResponse struct {
	Approved  bool   `json:"approved"`
	Reference string `json:"reference"`
	Reason    string `json:"reason"`
}

func (a *CardGatewayAdapter) Capture(ctx context.Context, purchaseID uuid.UUID, amountMinor int64, currency string) (string, error) {
	payload, err := json.Marshal(captureRequest{
		PurchaseID:  purchaseID.String(),
		AmountMinor: amountMinor,
		Currency:    currency,
	})
	if err != nil {
		return "", errs.Wrap(err, "failed to encode capture request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.gatewayURL+"/captures", bytes.NewReader(payload))
	if err != nil {
		return "", errs.Wrap(err, "failed to build capture request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", a.apiKey)

	resp, err := a.http.Do(req)
	if err != nil {
		return "", errs.Wrap(err, "capture request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errs.Newf("payment gateway returned %d", resp.StatusCode)
	}

	var result captureResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", errs.Wrap(err, "malformed capture response")
	}
	if !result.Approved {
		return "", errs.Newf("card declined: %s", result.Reason)
	}
	return result.Reference, nil
}
