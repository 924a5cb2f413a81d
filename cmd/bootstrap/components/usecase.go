package components

import (
	"hotelhub/internal/pkg/clock"
	"hotelhub/internal/pkg/config"
	"hotelhub/internal/usecase"
	"hotelhub/internal/usecase/commands"
	"hotelhub/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewReviewCommands,
		func(rooms queries.RoomReadStore, gateway commands.CheckoutGateway, cfg config.Config) commands.CheckoutCommands {
			return commands.NewCheckoutCommands(rooms, gateway, cfg.Stripe.Currency)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRoomQueries,
		queries.NewBookingQueries,
		queries.NewReviewQueries,
		queries.NewUserQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
