package components

import (
	"hotel-management-service/internal/infra/readstore"
	repo_impl "hotel-management-service/internal/infra/repository"
	"hotel-management-service/internal/usecase/commands"
	"hotel-management-service/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Write side
		fx.Annotate(
			repo_impl.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
		fx.Annotate(
			repo_impl.NewRoomRepository,
			fx.As(new(commands.RoomRepository)),
		),
		fx.Annotate(
			repo_impl.NewCustomerRepository,
			fx.As(new(commands.CustomerRepository)),
		),
		fx.Annotate(
			repo_impl.NewMaintenanceRepository,
			fx.As(new(commands.MaintenanceRepository)),
		),
		// Read side
		fx.Annotate(
			readstore.NewRoomReadStore,
			fx.As(new(queries.RoomReadStore)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			readstore.NewStaffReadStore,
			fx.As(new(commands.StaffRepository)),
		),
	),
)
