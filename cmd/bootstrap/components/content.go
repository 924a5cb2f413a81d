package components

import (
	"hotelhub/internal/infra/readstore"
	"hotelhub/internal/infra/repository"
	"hotelhub/internal/infra/sanity"
	"hotelhub/internal/usecase/commands"
	"hotelhub/internal/usecase/queries"

	"go.uber.org/fx"
)

// ContentModule wires the content-platform client into the read and write
// sides. The same HTTP client serves both; queries hit the query endpoint,
// repositories the mutation endpoint.
var ContentModule = fx.Module("content",
	contentBaseOption,
	readstoreModule,
	repositoryModule,
)

var contentBaseOption = fx.Provide(
	fx.Annotate(
		func(client *sanity.Client) *sanity.Client { return client },
		fx.As(new(readstore.Querier)),
	),
	fx.Annotate(
		func(client *sanity.Client) *sanity.Client { return client },
		fx.As(new(repository.Mutator)),
	),
)

var readstoreModule = fx.Module("content/readstore",
	fx.Provide(
		// Room
		fx.Annotate(
			readstore.NewRoomReadStore,
			fx.As(new(queries.RoomReadStore)),
		),
		// Booking
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Review
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewReadStore)),
		),
		// User
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

var repositoryModule = fx.Module("content/repository",
	fx.Provide(
		// Booking
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		// Room
		fx.Annotate(
			repository.NewRoomRepository,
			fx.As(new(commands.RoomRepository)),
		),
		// Review
		fx.Annotate(
			repository.NewReviewRepository,
			fx.As(new(commands.ReviewRepository)),
		),
	),
)
