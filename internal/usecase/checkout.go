package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"travel-core/internal/domain/offer"
	"travel-core/internal/domain/purchase"
	"travel-core/internal/infra"
	"travel-core/internal/pkg/bankqr"
	"travel-core/internal/pkg/clock"
	"travel-core/internal/pkg/config"
	"travel-core/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidCheckout       = errors.New("invalid checkout request")
	ErrPurchaseNotFound      = errors.New("purchase not found")
	ErrSettlementPersistence = errors.New("failed to record purchase")
	ErrBankRequired          = errors.New("bank-transfer checkout requires bank_name")
)

type PurchaseRepository interface {
	Create(ctx context.Context, p *purchase.Purchase) error
	SaveSettlement(ctx context.Context, p *purchase.Purchase) error
	FindByID(ctx context.Context, id uuid.UUID) (*purchase.Purchase, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*purchase.Purchase, error)
}

// CardGateway is the synchronous capture rail. Capture returns the
// gateway's settlement reference on success and an error describing the
// decline otherwise.
type CardGateway interface {
	Capture(ctx context.Context, purchaseID uuid.UUID, amountMinor int64, currency string) (string, error)
}

type CheckoutInput struct {
	Offer        offer.Offer
	Passengers   int
	ServiceClass *string
	Method       purchase.PaymentMethod
}

// BankTransferGuide is the manual-payment artifact: everything the buyer
// needs to wire the money, plus a scannable QR image of the payload.
type BankTransferGuide struct {
	AccountName   string
	AccountNumber string
	Bank          string
	AmountMinor   int64
	Currency      string
	ReferenceCode string
	QRImage       []byte
}

type CheckoutResult struct {
	Purchase    *purchase.Purchase
	RedirectURL string             // wallet only
	Guide       *BankTransferGuide // bank transfer only
}

type CheckoutUseCase interface {
	Checkout(ctx context.Context, userID uuid.UUID, input CheckoutInput) (*CheckoutResult, error)
	GetPurchase(ctx context.Context, userID, id uuid.UUID) (*purchase.Purchase, error)
	GetUserPurchases(ctx context.Context, userID uuid.UUID) ([]*purchase.Purchase, error)
}

type checkoutUseCaseImpl struct {
	purchases PurchaseRepository
	gateway   CardGateway
	clock     clock.Clock
	cfg       config.PaymentConfig
}

func NewCheckoutUseCase(
	purchases PurchaseRepository,
	gateway CardGateway,
	clk clock.Clock,
	cfg config.PaymentConfig,
) CheckoutUseCase {
	return &checkoutUseCaseImpl{
		purchases: purchases,
		gateway:   gateway,
		clock:     clk,
		cfg:       cfg,
	}
}

// Checkout recomputes the amount from the snapshot, records the pending
// purchase, then produces the method-specific artifact. The purchase is
// durable before any artifact leaves this function; if persistence
// fails there is nothing to settle against and the attempt is aborted.
func (c *checkoutUseCaseImpl) Checkout(ctx context.Context, userID uuid.UUID, input CheckoutInput) (*CheckoutResult, error) {
	amountMinor, err := settlementAmount(input.Offer, input.Passengers)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCheckout)
	}

	// Method-specific input is checked before anything is persisted: a
	// rejected checkout must not leave a pending purchase behind.
	if bank, ok := input.Method.(purchase.BankTransfer); ok {
		if strings.TrimSpace(bank.Bank) == "" {
			return nil, errs.Mark(ErrBankRequired, ErrInvalidCheckout)
		}
	}

	p, err := purchase.NewPurchase(
		userID,
		input.Offer,
		input.Passengers,
		input.ServiceClass,
		input.Method.Method(),
		amountMinor,
		c.cfg.DisplayCurrency,
		c.clock.Now(),
	)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCheckout)
	}

	if err := c.purchases.Create(ctx, p); err != nil {
		return nil, errs.Mark(err, ErrSettlementPersistence)
	}

	switch method := input.Method.(type) {
	case purchase.Card:
		return c.settleCard(ctx, p)
	case purchase.Wallet:
		return c.settleWallet(ctx, p, method)
	case purchase.BankTransfer:
		return c.settleBankTransfer(ctx, p, method)
	default:
		return nil, errs.Mark(purchase.ErrUnknownPaymentMethod, ErrInvalidCheckout)
	}
}

// settleCard captures synchronously. A decline is a legitimate outcome,
// not an error: the purchase is recorded as failed with the gateway
// reason and returned to the caller.
func (c *checkoutUseCaseImpl) settleCard(ctx context.Context, p *purchase.Purchase) (*CheckoutResult, error) {
	reference, captureErr := c.gateway.Capture(ctx, p.ID(), p.AmountMinor(), p.Currency())
	if captureErr != nil {
		if err := p.Fail(captureErr.Error()); err != nil {
			return nil, errs.Wrap(err, "failed to mark purchase failed")
		}
	} else {
		p.SetMethodMetadata("gateway_reference", reference)
		if err := p.Complete(); err != nil {
			return nil, errs.Wrap(err, "failed to mark purchase completed")
		}
	}

	if err := c.purchases.SaveSettlement(ctx, p); err != nil {
		return nil, errs.Mark(err, ErrSettlementPersistence)
	}

	return &CheckoutResult{Purchase: p}, nil
}

// settleWallet builds the redirect URL to the external wallet page. The
// purchase stays pending until the wallet callback completes it out of
// band.
func (c *checkoutUseCaseImpl) settleWallet(ctx context.Context, p *purchase.Purchase, method purchase.Wallet) (*CheckoutResult, error) {
	reference := fmt.Sprintf("W%s%d", shortUserID(p.UserID()), c.clock.Now().Unix())

	redirect, err := url.Parse(c.cfg.WalletCheckoutURL)
	if err != nil {
		return nil, errs.Wrap(err, "invalid wallet checkout URL")
	}
	q := redirect.Query()
	q.Set("amount", fmt.Sprintf("%d", p.AmountMinor()))
	q.Set("currency", p.Currency())
	q.Set("ref", reference)
	if method.Provider != "" {
		q.Set("provider", method.Provider)
	}
	redirect.RawQuery = q.Encode()

	p.SetMethodMetadata("wallet_reference", reference)
	if method.Provider != "" {
		p.SetMethodMetadata("wallet_provider", method.Provider)
	}

	if err := c.purchases.SaveSettlement(ctx, p); err != nil {
		return nil, errs.Mark(err, ErrSettlementPersistence)
	}

	return &CheckoutResult{Purchase: p, RedirectURL: redirect.String()}, nil
}

// settleBankTransfer produces the manual payment guide. Completion is
// out of band, so the purchase stays pending.
func (c *checkoutUseCaseImpl) settleBankTransfer(ctx context.Context, p *purchase.Purchase, method purchase.BankTransfer) (*CheckoutResult, error) {
	reference := transferReference(method.Note, p.UserID(), c.clock.Now().Unix())
	payload := bankqr.Payload(method.Bank, c.cfg.BankAccountNumber, p.AmountMinor(), reference)

	image, err := bankqr.Image(payload)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode bank QR image")
	}

	p.SetMethodMetadata("bank", method.Bank)
	p.SetMethodMetadata("transfer_reference", reference)

	if err := c.purchases.SaveSettlement(ctx, p); err != nil {
		return nil, errs.Mark(err, ErrSettlementPersistence)
	}

	return &CheckoutResult{
		Purchase: p,
		Guide: &BankTransferGuide{
			AccountName:   c.cfg.BankAccountName,
			AccountNumber: c.cfg.BankAccountNumber,
			Bank:          method.Bank,
			AmountMinor:   p.AmountMinor(),
			Currency:      p.Currency(),
			ReferenceCode: reference,
			QRImage:       image,
		},
	}, nil
}

func (c *checkoutUseCaseImpl) GetPurchase(ctx context.Context, userID, id uuid.UUID) (*purchase.Purchase, error) {
	p, err := c.purchases.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrPurchaseNotFound)
		}
		return nil, errs.Wrap(err, "failed to load purchase")
	}

	// Ownership is part of lookup: someone else's purchase does not exist
	// as far as the caller can tell.
	if p.UserID() != userID {
		return nil, ErrPurchaseNotFound
	}

	return p, nil
}

func (c *checkoutUseCaseImpl) GetUserPurchases(ctx context.Context, userID uuid.UUID) ([]*purchase.Purchase, error) {
	purchases, err := c.purchases.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load purchase history")
	}
	return purchases, nil
}

// settlementAmount never trusts a client-supplied total: it recomputes
// from the snapshot's unit price. Per-traveler kinds scale by passenger
// count; flat-priced kinds (hotel, rental) cost the same regardless.
func settlementAmount(o offer.Offer, passengers int) (int64, error) {
	if err := o.Validate(); err != nil {
		return 0, err
	}
	if passengers < 1 {
		return 0, purchase.ErrInvalidPassengers
	}

	if o.Kind.PricedPerTraveler() {
		return o.Price.PerPassengerMinor * int64(passengers), nil
	}
	return o.Price.TotalMinor, nil
}

// transferReference sanitizes the caller's note into a reference code,
// falling back to a PNR-style code derived from the user and timestamp.
func transferReference(note string, userID uuid.UUID, unixTS int64) string {
	if cleaned := sanitizeReference(note); cleaned != "" {
		return cleaned
	}
	ts := fmt.Sprintf("%d", unixTS)
	return fmt.Sprintf("PNR%s%s", shortUserID(userID), ts[len(ts)-4:])
}

func sanitizeReference(note string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(strings.TrimSpace(note)) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// shortUserID is the last 8 hex characters of the UUID, enough to trace
// the owner without leaking the full identifier into bank statements.
func shortUserID(id uuid.UUID) string {
	s := strings.ReplaceAll(id.String(), "-", "")
	return s[len(s)-8:]
}
