package purchase

import (
	"errors"
	"time"

	"travel-core/internal/domain/offer"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var (
	ErrInvalidPassengers = errors.New("passenger count must be positive")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInvalidMethod     = errors.New("invalid payment method")
	ErrInvalidSnapshot   = errors.New("invalid offer snapshot")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrSnapshotCopy      = errors.New("failed to copy offer snapshot")
)

// Purchase is the durable record of one checkout attempt. The offer is
// snapshotted at creation time; provider prices are volatile, so the
// snapshot is never re-derived afterwards.
type Purchase struct {
	id             uuid.UUID
	userID         uuid.UUID
	offerKind      offer.Kind
	offerSnapshot  offer.Offer
	passengers     int
	serviceClass   *string
	method         Method
	status         Status
	amountMinor    int64
	currency       string
	methodMetadata map[string]string
	createdAt      time.Time
}

func NewPurchase(
	userID uuid.UUID,
	chosen offer.Offer,
	passengers int,
	serviceClass *string,
	method Method,
	amountMinor int64,
	currency string,
	now time.Time,
) (*Purchase, error) {
	if err := chosen.Validate(); err != nil {
		return nil, errors.Join(ErrInvalidSnapshot, err)
	}
	if passengers < 1 {
		return nil, ErrInvalidPassengers
	}
	if !method.IsValid() {
		return nil, ErrInvalidMethod
	}
	if amountMinor <= 0 {
		return nil, ErrInvalidAmount
	}

	// Deep copy so later mutation of the cached search result cannot
	// reach the durable record.
	var snapshot offer.Offer
	if err := copier.CopyWithOption(&snapshot, &chosen, copier.Option{DeepCopy: true}); err != nil {
		return nil, errors.Join(ErrSnapshotCopy, err)
	}

	return &Purchase{
		id:             uuid.New(),
		userID:         userID,
		offerKind:      chosen.Kind,
		offerSnapshot:  snapshot,
		passengers:     passengers,
		serviceClass:   serviceClass,
		method:         method,
		status:         StatusPending,
		amountMinor:    amountMinor,
		currency:       currency,
		methodMetadata: map[string]string{},
		createdAt:      now,
	}, nil
}

func ReconstructPurchase(
	id, userID uuid.UUID,
	offerKind offer.Kind,
	offerSnapshot offer.Offer,
	passengers int,
	serviceClass *string,
	method Method,
	status Status,
	amountMinor int64,
	currency string,
	methodMetadata map[string]string,
	createdAt time.Time,
) *Purchase {
	if methodMetadata == nil {
		methodMetadata = map[string]string{}
	}
	return &Purchase{
		id:             id,
		userID:         userID,
		offerKind:      offerKind,
		offerSnapshot:  offerSnapshot,
		passengers:     passengers,
		serviceClass:   serviceClass,
		method:         method,
		status:         status,
		amountMinor:    amountMinor,
		currency:       currency,
		methodMetadata: methodMetadata,
		createdAt:      createdAt,
	}
}

func (p *Purchase) transition(next Status) error {
	if !p.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	p.status = next
	return nil
}

// Complete marks a synchronous capture as settled (card success).
func (p *Purchase) Complete() error {
	return p.transition(StatusCompleted)
}

// Fail records a declined or errored capture with the gateway reason.
func (p *Purchase) Fail(reason string) error {
	if err := p.transition(StatusFailed); err != nil {
		return err
	}
	if reason != "" {
		p.methodMetadata["failure_reason"] = reason
	}
	return nil
}

// Cancel is reserved for explicit cancellation of a pending purchase.
func (p *Purchase) Cancel() error {
	return p.transition(StatusCancelled)
}

func (p *Purchase) SetMethodMetadata(key, value string) {
	p.methodMetadata[key] = value
}

func (p *Purchase) ID() uuid.UUID              { return p.id }
func (p *Purchase) UserID() uuid.UUID          { return p.userID }
func (p *Purchase) OfferKind() offer.Kind      { return p.offerKind }
func (p *Purchase) OfferSnapshot() offer.Offer { return p.offerSnapshot }
func (p *Purchase) Passengers() int            { return p.passengers }
func (p *Purchase) ServiceClass() *string      { return p.serviceClass }
func (p *Purchase) PaymentMethod() Method      { return p.method }
func (p *Purchase) Status() Status             { return p.status }
func (p *Purchase) AmountMinor() int64         { return p.amountMinor }
func (p *Purchase) Currency() string           { return p.currency }
func (p *Purchase) CreatedAt() time.Time       { return p.createdAt }

func (p *Purchase) MethodMetadata() map[string]string {
	out := make(map[string]string, len(p.methodMetadata))
	for k, v := range p.methodMetadata {
		out[k] = v
	}
	return out
}
