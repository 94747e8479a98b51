package components

import (
	"travel-core/internal/infra/adapter"
	"travel-core/internal/usecase"

	"go.uber.org/fx"
)

var AdapterModule = fx.Module("adapter",
	fx.Provide(
		adapter.NewClient,
		fx.Annotate(
			adapter.NewFlightAdapter,
			fx.As(new(usecase.FlightProvider)),
		),
		fx.Annotate(
			adapter.NewHotelAdapter,
			fx.As(new(usecase.HotelProvider)),
		),
		fx.Annotate(
			adapter.NewCarAdapter,
			fx.As(new(usecase.CarProvider)),
		),
		fx.Annotate(
			adapter.NewGeocodeAdapter,
			fx.As(new(usecase.GeocodeProvider)),
		),
		fx.Annotate(
			adapter.NewCardGatewayAdapter,
			fx.As(new(usecase.CardGateway)),
		),
	),
)
