package components

import (
	"hotel-management-service/internal/handler"
	"hotel-management-service/internal/handler/api"
	"hotel-management-service/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewRoomHandler,
		api.NewReservationHandler,
		api.NewMaintenanceHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
