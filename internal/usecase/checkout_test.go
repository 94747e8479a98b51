//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"travel-core/internal/domain/offer"
	"travel-core/internal/domain/purchase"
	"travel-core/internal/infra"
	"travel-core/internal/pkg/clock"
	"travel-core/internal/pkg/config"
	"travel-core/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryPurchaseRepo struct {
	byID        map[uuid.UUID]*purchase.Purchase
	createErr   error
	saveErr     error
	createCalls int
	saveCalls   int
}

func newMemoryPurchaseRepo() *memoryPurchaseRepo {
	return &memoryPurchaseRepo{byID: map[uuid.UUID]*purchase.Purchase{}}
}

func (r *memoryPurchaseRepo) Create(_ context.Context, p *purchase.Purchase) error {
	r.createCalls++
	if r.createErr != nil {
		return r.createErr
	}
	r.byID[p.ID()] = p
	return nil
}

func (r *memoryPurchaseRepo) SaveSettlement(_ context.Context, p *purchase.Purchase) error {
	r.saveCalls++
	if r.saveErr != nil {
		return r.saveErr
	}
	r.byID[p.ID()] = p
	return nil
}

func (r *memoryPurchaseRepo) FindByID(_ context.Context, id uuid.UUID) (*purchase.Purchase, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("purchase not found", nil, infra.KindNotFound)
	}
	return p, nil
}

func (r *memoryPurchaseRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*purchase.Purchase, error) {
	var out []*purchase.Purchase
	for _, p := range r.byID {
		if p.UserID() == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

type stubCardGateway struct {
	reference string
	err       error
	calls     int
}

func (g *stubCardGateway) Capture(_ context.Context, _ uuid.UUID, _ int64, _ string) (string, error) {
	g.calls++
	return g.reference, g.err
}

func flightSnapshot(totalMinor int64, capacity int) offer.Offer {
	depart := time.Date(2025, 7, 10, 8, 0, 0, 0, time.UTC)
	return offer.Offer{
		ID:   "fare-1",
		Kind: offer.KindFlight,
		Legs: []offer.Leg{{
			Origin:      "HAN",
			Destination: "SGN",
			DepartAt:    depart,
			ArriveAt:    depart.Add(2 * time.Hour),
		}},
		Price: offer.Price{
			TotalMinor:        totalMinor,
			PerPassengerMinor: totalMinor / int64(capacity),
			Currency:          "VND",
		},
		CapacityHint: capacity,
	}
}

func newCheckoutFixture(gateway usecase.CardGateway) (*memoryPurchaseRepo, usecase.CheckoutUseCase) {
	repo := newMemoryPurchaseRepo()
	clk := clock.NewMockClock(time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC))
	uc := usecase.NewCheckoutUseCase(repo, gateway, clk, config.NewTestConfig().Payment)
	return repo, uc
}

func TestCheckout_Card(t *testing.T) {
	userID := uuid.New()

	t.Run("キャプチャ成功でcompleted", func(t *testing.T) {
		gateway := &stubCardGateway{reference: "GW-123"}
		repo, uc := newCheckoutFixture(gateway)

		result, err := uc.Checkout(context.Background(), userID, usecase.CheckoutInput{
			Offer:      flightSnapshot(3000000, 2),
			Passengers: 2,
			Method:     purchase.Card{},
		})

		require.NoError(t, err)
		assert.Equal(t, purchase.StatusCompleted, result.Purchase.Status())
		assert.Equal(t, int64(3000000), result.Purchase.AmountMinor())
		assert.Equal(t, "GW-123", result.Purchase.MethodMetadata()["gateway_reference"])
		assert.Equal(t, 1, repo.createCalls)
		assert.Equal(t, 1, repo.saveCalls)
	})

	t.Run("ゲートウェイ拒否はfailedで記録しエラーにはしない", func(t *testing.T) {
		gateway := &stubCardGateway{err: errors.New("insufficient funds")}
		_, uc := newCheckoutFixture(gateway)

		result, err := uc.Checkout(context.Background(), userID, usecase.CheckoutInput{
			Offer:      flightSnapshot(3000000, 2),
			Passengers: 2,
			Method:     purchase.Card{},
		})

		require.NoError(t, err)
		assert.Equal(t, purchase.StatusFailed, result.Purchase.Status())
		assert.Equal(t, "insufficient funds", result.Purchase.MethodMetadata()["failure_reason"])
	})

	t.Run("金額はスナップショットから再計算しクライアントを信用しない", func(t *testing.T) {
		gateway := &stubCardGateway{reference: "GW-9"}
		_, uc := newCheckoutFixture(gateway)

		snapshot := flightSnapshot(3000000, 2) // 1,500,000/人
		result, err := uc.Checkout(context.Background(), userID, usecase.CheckoutInput{
			Offer:      snapshot,
			Passengers: 1,
			Method:     purchase.Card{},
		})

		require.NoError(t, err)
		assert.Equal(t, int64(1500000), result.Purchase.AmountMinor())
	})
}

func TestCheckout_Wallet(t *testing.T) {
	userID := uuid.New()
	_, uc := newCheckoutFixture(&stubCardGateway{})

	result, err := uc.Checkout(context.Background(), userID, usecase.CheckoutInput{
		Offer:      flightSnapshot(1500000, 1),
		Passengers: 1,
		Method:     purchase.Wallet{Provider: "momo"},
	})

	require.NoError(t, err)
	assert.Equal(t, purchase.StatusPending, result.Purchase.Status(), "wallet settles out of band")
	assert.Contains(t, result.RedirectURL, "amount=1500000")
	assert.Contains(t, result.RedirectURL, "provider=momo")
	assert.Regexp(t, `ref=W[0-9a-f]{8}\d+`, result.RedirectURL)
}

func TestCheckout_BankTransfer(t *testing.T) {
	userID := uuid.New()

	t.Run("note未指定はPNR形式の参照コードとガイドを返す", func(t *testing.T) {
		_, uc := newCheckoutFixture(&stubCardGateway{})

		result, err := uc.Checkout(context.Background(), userID, usecase.CheckoutInput{
			Offer:      flightSnapshot(1500000, 1),
			Passengers: 1,
			Method:     purchase.BankTransfer{Bank: "VCB"},
		})

		require.NoError(t, err)
		require.NotNil(t, result.Guide)
		assert.Equal(t, purchase.StatusPending, result.Purchase.Status())
		assert.Equal(t, int64(1500000), result.Guide.AmountMinor)
		assert.Regexp(t, regexp.MustCompile(`^PNR[0-9a-f]{8}\d{4}$`), result.Guide.ReferenceCode)
		assert.Equal(t, "VCB", result.Guide.Bank)
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, result.Guide.QRImage[:4])
	})

	t.Run("noteは英数字に正規化して参照コードに使う", func(t *testing.T) {
		_, uc := newCheckoutFixture(&stubCardGateway{})

		result, err := uc.Checkout(context.Background(), userID, usecase.CheckoutInput{
			Offer:      flightSnapshot(1500000, 1),
			Passengers: 1,
			Method:     purchase.BankTransfer{Bank: "VCB", Note: "trip 7/2025!"},
		})

		require.NoError(t, err)
		assert.Equal(t, "TRIP72025", result.Guide.ReferenceCode)
	})

	t.Run("銀行名なしNG", func(t *testing.T) {
		repo, uc := newCheckoutFixture(&stubCardGateway{})

		_, err := uc.Checkout(context.Background(), userID, usecase.CheckoutInput{
			Offer:      flightSnapshot(1500000, 1),
			Passengers: 1,
			Method:     purchase.BankTransfer{},
		})

		assert.ErrorIs(t, err, usecase.ErrInvalidCheckout)
		assert.Equal(t, 0, repo.createCalls, "rejected checkout must not persist a purchase")
		assert.Equal(t, 0, repo.saveCalls)
		assert.Empty(t, repo.byID)
	})
}

func TestCheckout_PersistenceFailureReturnsNoArtifact(t *testing.T) {
	repo := newMemoryPurchaseRepo()
	repo.createErr = infra.WrapRepoErr("db down", errors.New("connection refused"))
	gateway := &stubCardGateway{reference: "GW-1"}
	clk := clock.NewMockClock(time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC))
	uc := usecase.NewCheckoutUseCase(repo, gateway, clk, config.NewTestConfig().Payment)

	result, err := uc.Checkout(context.Background(), uuid.New(), usecase.CheckoutInput{
		Offer:      flightSnapshot(1500000, 1),
		Passengers: 1,
		Method:     purchase.Card{},
	})

	assert.ErrorIs(t, err, usecase.ErrSettlementPersistence)
	assert.Nil(t, result)
	assert.Equal(t, 0, gateway.calls, "no capture without a recorded purchase")
}

func TestCheckout_InvalidInput(t *testing.T) {
	_, uc := newCheckoutFixture(&stubCardGateway{})
	userID := uuid.New()

	t.Run("壊れたスナップショットNG", func(t *testing.T) {
		broken := flightSnapshot(1500000, 1)
		broken.Legs = nil

		_, err := uc.Checkout(context.Background(), userID, usecase.CheckoutInput{
			Offer:      broken,
			Passengers: 1,
			Method:     purchase.Card{},
		})

		assert.ErrorIs(t, err, usecase.ErrInvalidCheckout)
	})

	t.Run("乗客0人NG", func(t *testing.T) {
		_, err := uc.Checkout(context.Background(), userID, usecase.CheckoutInput{
			Offer:      flightSnapshot(1500000, 1),
			Passengers: 0,
			Method:     purchase.Card{},
		})

		assert.ErrorIs(t, err, usecase.ErrInvalidCheckout)
	})
}

func TestGetPurchase_Ownership(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()
	repo, uc := newCheckoutFixture(&stubCardGateway{reference: "GW-1"})

	created, err := uc.Checkout(context.Background(), owner, usecase.CheckoutInput{
		Offer:      flightSnapshot(1500000, 1),
		Passengers: 1,
		Method:     purchase.Card{},
	})
	require.NoError(t, err)
	require.NotEmpty(t, repo.byID)

	t.Run("本人は取得できる", func(t *testing.T) {
		got, err := uc.GetPurchase(context.Background(), owner, created.Purchase.ID())
		require.NoError(t, err)
		assert.Equal(t, created.Purchase.ID(), got.ID())
	})

	t.Run("他人の購入は存在しない扱い", func(t *testing.T) {
		_, err := uc.GetPurchase(context.Background(), stranger, created.Purchase.ID())
		assert.ErrorIs(t, err, usecase.ErrPurchaseNotFound)
	})

	t.Run("未知のIDはNotFound", func(t *testing.T) {
		_, err := uc.GetPurchase(context.Background(), owner, uuid.New())
		assert.ErrorIs(t, err, usecase.ErrPurchaseNotFound)
	})
}
