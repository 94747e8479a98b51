package components

import (
	repo_impl "travel-core/internal/infra/repository"
	"travel-core/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewPurchaseRepository,
			fx.As(new(usecase.PurchaseRepository)),
		),
	),
)
