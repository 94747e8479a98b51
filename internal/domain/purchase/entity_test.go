//go:build unit

package purchase_test

import (
	"testing"
	"time"

	"travel-core/internal/domain/offer"
	"travel-core/internal/domain/purchase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotOffer() offer.Offer {
	depart := time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC)
	return offer.Offer{
		ID:   "VN123-20250701",
		Kind: offer.KindFlight,
		Legs: []offer.Leg{{
			Origin: "HAN", Destination: "SGN",
			DepartAt: depart, ArriveAt: depart.Add(2 * time.Hour),
			Carrier: "VN", DurationMin: 120,
		}},
		Price:          offer.Price{TotalMinor: 3000000, PerPassengerMinor: 1500000, Currency: "VND"},
		SourceCurrency: "VND",
		SourceAmount:   decimal.NewFromInt(3000000),
		CapacityHint:   2,
	}
}

func newPendingPurchase(t *testing.T) *purchase.Purchase {
	t.Helper()
	p, err := purchase.NewPurchase(
		uuid.New(), snapshotOffer(), 2, nil,
		purchase.MethodCard, 3000000, "VND",
		time.Date(2025, 6, 30, 10, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return p
}

func TestNewPurchase(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		p := newPendingPurchase(t)
		assert.NotEqual(t, uuid.Nil, p.ID())
		assert.Equal(t, purchase.StatusPending, p.Status())
		assert.Equal(t, offer.KindFlight, p.OfferKind())
		assert.Equal(t, int64(3000000), p.AmountMinor())
	})

	t.Run("スナップショットはディープコピー", func(t *testing.T) {
		chosen := snapshotOffer()
		p, err := purchase.NewPurchase(
			uuid.New(), chosen, 2, nil,
			purchase.MethodCard, 3000000, "VND", time.Now(),
		)
		require.NoError(t, err)

		chosen.Legs[0].Origin = "DAD"
		chosen.Price.TotalMinor = 1

		snap := p.OfferSnapshot()
		assert.Equal(t, "HAN", snap.Legs[0].Origin)
		assert.Equal(t, int64(3000000), snap.Price.TotalMinor)
	})

	t.Run("入力検証", func(t *testing.T) {
		tests := []struct {
			name       string
			passengers int
			method     purchase.Method
			amount     int64
			errIs      error
		}{
			{name: "乗客0人NG", passengers: 0, method: purchase.MethodCard, amount: 100, errIs: purchase.ErrInvalidPassengers},
			{name: "不正な決済方法NG", passengers: 1, method: purchase.Method("crypto"), amount: 100, errIs: purchase.ErrInvalidMethod},
			{name: "金額0NG", passengers: 1, method: purchase.MethodCard, amount: 0, errIs: purchase.ErrInvalidAmount},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := purchase.NewPurchase(uuid.New(), snapshotOffer(), tt.passengers, nil, tt.method, tt.amount, "VND", time.Now())
				assert.ErrorIs(t, err, tt.errIs)
			})
		}
	})

	t.Run("不正なスナップショットNG", func(t *testing.T) {
		bad := snapshotOffer()
		bad.Legs = nil
		_, err := purchase.NewPurchase(uuid.New(), bad, 1, nil, purchase.MethodCard, 100, "VND", time.Now())
		assert.ErrorIs(t, err, purchase.ErrInvalidSnapshot)
	})
}

func TestPurchase_StatusTransitions(t *testing.T) {
	t.Run("pendingからの遷移", func(t *testing.T) {
		p := newPendingPurchase(t)
		require.NoError(t, p.Complete())
		assert.Equal(t, purchase.StatusCompleted, p.Status())

		p = newPendingPurchase(t)
		require.NoError(t, p.Fail("card declined"))
		assert.Equal(t, purchase.StatusFailed, p.Status())
		assert.Equal(t, "card declined", p.MethodMetadata()["failure_reason"])

		p = newPendingPurchase(t)
		require.NoError(t, p.Cancel())
		assert.Equal(t, purchase.StatusCancelled, p.Status())
	})

	t.Run("終端状態からは遷移不可", func(t *testing.T) {
		terminal := []func(*purchase.Purchase) error{
			func(p *purchase.Purchase) error { return p.Complete() },
			func(p *purchase.Purchase) error { return p.Fail("x") },
			func(p *purchase.Purchase) error { return p.Cancel() },
		}
		for _, reach := range terminal {
			p := newPendingPurchase(t)
			require.NoError(t, reach(p))

			assert.ErrorIs(t, p.Complete(), purchase.ErrInvalidTransition)
			assert.ErrorIs(t, p.Fail("y"), purchase.ErrInvalidTransition)
			assert.ErrorIs(t, p.Cancel(), purchase.ErrInvalidTransition)
		}
	})
}

func TestStatus_CanTransitionTo(t *testing.T) {
	all := []purchase.Status{
		purchase.StatusPending, purchase.StatusCompleted,
		purchase.StatusFailed, purchase.StatusCancelled,
	}
	for _, from := range all {
		for _, to := range all {
			want := from == purchase.StatusPending && to != purchase.StatusPending
			assert.Equal(t, want, from.CanTransitionTo(to), "from=%s to=%s", from, to)
		}
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, purchase.StatusPending.IsTerminal())
	assert.True(t, purchase.StatusCompleted.IsTerminal())
	assert.True(t, purchase.StatusFailed.IsTerminal())
	assert.True(t, purchase.StatusCancelled.IsTerminal())
}
