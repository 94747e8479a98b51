package response

import (
	"encoding/base64"
	"time"

	"travel-core/internal/domain/purchase"
	"travel-core/internal/usecase"

	"github.com/google/uuid"
)

type PurchaseResponse struct {
	ID             uuid.UUID         `json:"id"`
	OfferKind      string            `json:"offerKind"`
	Offer          OfferResponse     `json:"offer"`
	Passengers     int               `json:"passengers"`
	ServiceClass   *string           `json:"serviceClass,omitempty"`
	Method         string            `json:"method"`
	Status         string            `json:"status"`
	AmountMinor    int64             `json:"amountMinor"`
	Currency       string            `json:"currency"`
	MethodMetadata map[string]string `json:"methodMetadata,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
}

type PurchaseListResponse struct {
	ID          uuid.UUID `json:"id"`
	OfferKind   string    `json:"offerKind"`
	Method      string    `json:"method"`
	Status      string    `json:"status"`
	AmountMinor int64     `json:"amountMinor"`
	Currency    string    `json:"currency"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CheckoutResponse is shaped per rail: card carries only the purchase,
// wallet adds the redirect URL, bank transfer adds the payment guide.
type CheckoutResponse struct {
	Status      string             `json:"status"`
	Purchase    PurchaseResponse   `json:"purchase"`
	RedirectURL string             `json:"redirectUrl,omitempty"`
	Guide       *BankGuideResponse `json:"guide,omitempty"`
}

type BankGuideResponse struct {
	AccountName   string `json:"accountName"`
	AccountNumber string `json:"accountNumber"`
	Bank          string `json:"bank"`
	AmountMinor   int64  `json:"amountMinor"`
	Currency      string `json:"currency"`
	ReferenceCode string `json:"referenceCode"`
	QRImage       string `json:"qrImage"` // base64 PNG
}

func FromPurchase(p *purchase.Purchase) PurchaseResponse {
	return PurchaseResponse{
		ID:             p.ID(),
		OfferKind:      p.OfferKind().String(),
		Offer:          FromOffer(p.OfferSnapshot()),
		Passengers:     p.Passengers(),
		ServiceClass:   p.ServiceClass(),
		Method:         p.PaymentMethod().String(),
		Status:         p.Status().String(),
		AmountMinor:    p.AmountMinor(),
		Currency:       p.Currency(),
		MethodMetadata: p.MethodMetadata(),
		CreatedAt:      p.CreatedAt(),
	}
}

func FromPurchaseList(purchases []*purchase.Purchase) []PurchaseListResponse {
	result := make([]PurchaseListResponse, len(purchases))
	for i, p := range purchases {
		result[i] = PurchaseListResponse{
			ID:          p.ID(),
			OfferKind:   p.OfferKind().String(),
			Method:      p.PaymentMethod().String(),
			Status:      p.Status().String(),
			AmountMinor: p.AmountMinor(),
			Currency:    p.Currency(),
			CreatedAt:   p.CreatedAt(),
		}
	}
	return result
}

func FromCheckoutResult(result *usecase.CheckoutResult) CheckoutResponse {
	resp := CheckoutResponse{
		Status:      result.Purchase.Status().String(),
		Purchase:    FromPurchase(result.Purchase),
		RedirectURL: result.RedirectURL,
	}

	if result.Guide != nil {
		resp.Guide = &BankGuideResponse{
			AccountName:   result.Guide.AccountName,
			AccountNumber: result.Guide.AccountNumber,
			Bank:          result.Guide.Bank,
			AmountMinor:   result.Guide.AmountMinor,
			Currency:      result.Guide.Currency,
			ReferenceCode: result.Guide.ReferenceCode,
			QRImage:       base64.StdEncoding.EncodeToString(result.Guide.QRImage),
		}
	}

	return resp
}
