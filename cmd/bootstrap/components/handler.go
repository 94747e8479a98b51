package components

import (
	"travel-core/internal/handler"
	"travel-core/internal/handler/api"
	"travel-core/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSearchHandler,
		api.NewCheckoutHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
