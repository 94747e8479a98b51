package components

import (
	"travel-core/internal/pkg/clock"
	"travel-core/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	fx.Provide(
		usecase.NewSearchUseCase,
		usecase.NewScanUseCase,
		usecase.NewCheckoutUseCase,
		usecase.NewTokenValidator,
	),
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)
