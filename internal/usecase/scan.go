package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"travel-core/internal/domain/offer"
	"travel-core/internal/infra/provider"
	"travel-core/internal/pkg/cache"
	"travel-core/internal/pkg/clock"
	"travel-core/internal/pkg/config"
	"travel-core/internal/pkg/currency"
)

type ScanUseCase interface {
	CheapFlights(ctx context.Context, lat, lng *float64) ([]offer.Offer, error)
}

// scanUseCaseImpl runs the daily deal calls strictly sequentially with a
// fixed inter-call delay. The calls share one provider rate-limit
// budget, so this ordering is a correctness constraint, not tuning.
type scanUseCaseImpl struct {
	flights   FlightProvider
	scans     *cache.Loader[[]offer.Offer]
	converter *currency.Converter
	clock     clock.Clock
	cfg       config.SearchConfig
}

func NewScanUseCase(
	flights FlightProvider,
	scans *cache.Loader[[]offer.Offer],
	converter *currency.Converter,
	clk clock.Clock,
	cfg config.SearchConfig,
) ScanUseCase {
	return &scanUseCaseImpl{
		flights:   flights,
		scans:     scans,
		converter: converter,
		clock:     clk,
		cfg:       cfg,
	}
}

func (s *scanUseCaseImpl) CheapFlights(ctx context.Context, lat, lng *float64) ([]offer.Offer, error) {
	key := scanKey(lat, lng, s.clock.Now())

	return s.scans.GetOrFetch(ctx, key, s.cfg.ScanTTL, func(ctx context.Context) ([]offer.Offer, error) {
		deals, err := s.scan(ctx, lat, lng)
		if err != nil {
			return nil, err
		}
		return RankDeals(deals, s.converter, s.cfg.ScanResultCap), nil
	})
}

// scan walks the date window one call at a time. A rate-limit signal
// aborts the remaining dates and keeps what was gathered; any other
// per-call failure skips that date and continues.
func (s *scanUseCaseImpl) scan(ctx context.Context, lat, lng *float64) ([]provider.FlightDeal, error) {
	deals := make([]provider.FlightDeal, 0)
	start := s.clock.Now().AddDate(0, 0, 1)

	for i := 0; i < s.cfg.ScanWindowDays; i++ {
		if i > 0 {
			if err := s.wait(ctx); err != nil {
				return nil, err
			}
		}

		date := start.AddDate(0, 0, i)
		batch, err := s.fetchDay(ctx, provider.DealQuery{
			OriginLat:     lat,
			OriginLng:     lng,
			DepartureDate: date,
		})
		if err != nil {
			if errors.Is(err, provider.ErrRateLimited) {
				slog.Warn("deal scan rate limited, returning partial results",
					"date", date.Format("2006-01-02"), "days_scanned", i)
				break
			}
			slog.Warn("deal scan call failed, skipping date",
				"date", date.Format("2006-01-02"), "error", err)
			continue
		}

		deals = append(deals, batch...)
	}

	return deals, nil
}

func (s *scanUseCaseImpl) fetchDay(ctx context.Context, query provider.DealQuery) ([]provider.FlightDeal, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.ProviderTimeout)
	defer cancel()
	return s.flights.CheapestDeals(ctx, query)
}

func (s *scanUseCaseImpl) wait(ctx context.Context) error {
	if s.cfg.ScanDelay <= 0 {
		return nil
	}

	timer := time.NewTimer(s.cfg.ScanDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// RankDeals reduces raw deal entries to the cheapest per destination,
// sorted ascending by price and truncated to cap. The reduction is a
// pure function of its input, so re-running it cannot change the
// ranking.
func RankDeals(deals []provider.FlightDeal, converter *currency.Converter, limit int) []offer.Offer {
	best := make(map[string]offer.Offer, len(deals))

	for _, d := range deals {
		totalMinor := converter.ConvertFloat(d.Total, d.Currency)
		if totalMinor <= 0 {
			continue
		}
		current, ok := best[d.Destination]
		if ok && current.Price.TotalMinor <= totalMinor {
			continue
		}
		best[d.Destination] = dealOffer(d, totalMinor, converter.Target())
	}

	ranked := make([]offer.Offer, 0, len(best))
	for _, o := range best {
		ranked = append(ranked, o)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Price.TotalMinor != ranked[j].Price.TotalMinor {
			return ranked[i].Price.TotalMinor < ranked[j].Price.TotalMinor
		}
		return ranked[i].Legs[0].Destination < ranked[j].Legs[0].Destination
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}

func dealOffer(d provider.FlightDeal, totalMinor int64, targetCurrency string) offer.Offer {
	return offer.Offer{
		ID:   fmt.Sprintf("deal:%s-%s:%s", d.Origin, d.Destination, d.DepartureAt.Format("2006-01-02")),
		Kind: offer.KindFlight,
		Legs: []offer.Leg{{
			Origin:      d.Origin,
			Destination: d.Destination,
			DepartAt:    d.DepartureAt,
			ArriveAt:    d.DepartureAt,
		}},
		Price: offer.Price{
			TotalMinor:        totalMinor,
			PerPassengerMinor: totalMinor,
			Currency:          targetCurrency,
		},
		SourceCurrency: d.Currency,
		CapacityHint:   1,
	}
}

func scanKey(lat, lng *float64, now time.Time) string {
	origin := "default"
	if lat != nil && lng != nil {
		// Quantized so nearby callers share one scan result.
		origin = fmt.Sprintf("%.1f,%.1f", *lat, *lng)
	}
	return fmt.Sprintf("scan:cheap-flights:%s:%s", origin, now.Format("2006-01-02"))
}
