package request

import (
	"time"

	"travel-core/internal/domain/offer"
	"travel-core/internal/domain/purchase"
)

// CheckoutRequest carries the offer snapshot the buyer selected plus
// method-specific fields. The snapshot is re-validated and the amount
// recomputed server-side; the client never dictates the total.
type CheckoutRequest struct {
	Offer        OfferSnapshot `json:"offer" binding:"required"`
	Passengers   int           `json:"passengers" binding:"required,min=1,max=9"`
	ServiceClass *string       `json:"service_class,omitempty"`
	Method       string        `json:"method" binding:"required,oneof=card wallet bank-transfer"`

	// wallet
	WalletProvider string `json:"wallet_provider,omitempty"`

	// bank-transfer
	BankName string `json:"bank_name,omitempty"`
	Note     string `json:"note,omitempty"`
}

type OfferSnapshot struct {
	ID                string            `json:"id" binding:"required"`
	Kind              string            `json:"kind" binding:"required"`
	Legs              []OfferLeg        `json:"legs" binding:"required,min=1"`
	TotalMinor        int64             `json:"total_minor" binding:"required"`
	PerPassengerMinor int64             `json:"per_passenger_minor" binding:"required"`
	Currency          string            `json:"currency" binding:"required"`
	CapacityHint      int               `json:"capacity_hint" binding:"required,min=1"`
	Metadata          map[string]string `json:"metadata,omitempty"`
}

type OfferLeg struct {
	Origin      string    `json:"origin" binding:"required"`
	Destination string    `json:"destination" binding:"required"`
	DepartAt    time.Time `json:"depart_at" binding:"required"`
	ArriveAt    time.Time `json:"arrive_at" binding:"required"`
	Carrier     string    `json:"carrier,omitempty"`
	DurationMin int       `json:"duration_min,omitempty"`
	Stops       int       `json:"stops"`
	DistanceKm  float64   `json:"distance_km,omitempty"`
}

func (r CheckoutRequest) ToOffer() offer.Offer {
	legs := make([]offer.Leg, len(r.Offer.Legs))
	for i, l := range r.Offer.Legs {
		legs[i] = offer.Leg{
			Origin:      l.Origin,
			Destination: l.Destination,
			DepartAt:    l.DepartAt,
			ArriveAt:    l.ArriveAt,
			Carrier:     l.Carrier,
			DurationMin: l.DurationMin,
			Stops:       l.Stops,
			DistanceKm:  l.DistanceKm,
		}
	}

	return offer.Offer{
		ID:   r.Offer.ID,
		Kind: offer.Kind(r.Offer.Kind),
		Legs: legs,
		Price: offer.Price{
			TotalMinor:        r.Offer.TotalMinor,
			PerPassengerMinor: r.Offer.PerPassengerMinor,
			Currency:          r.Offer.Currency,
		},
		CapacityHint: r.Offer.CapacityHint,
		Metadata:     r.Offer.Metadata,
	}
}

// ToPaymentMethod builds the settlement variant from the flat request.
func (r CheckoutRequest) ToPaymentMethod() (purchase.PaymentMethod, error) {
	switch purchase.Method(r.Method) {
	case purchase.MethodCard:
		return purchase.Card{}, nil
	case purchase.MethodWallet:
		return purchase.Wallet{Provider: r.WalletProvider}, nil
	case purchase.MethodBankTransfer:
		return purchase.BankTransfer{Bank: r.BankName, Note: r.Note}, nil
	default:
		return nil, purchase.ErrUnknownPaymentMethod
	}
}
