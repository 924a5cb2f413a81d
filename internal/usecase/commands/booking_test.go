//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"hotelhub/internal/domain/booking"
	"hotelhub/internal/usecase/commands"
	"hotelhub/tests/common/builder"
	commandsmock "hotelhub/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingCommands_ConfirmFromCheckout(t *testing.T) {
	ctx := context.Background()

	newFixture := func(t *testing.T) (*commandsmock.MockBookingRepository, *commandsmock.MockRoomRepository, commands.BookingCommands) {
		ctrl := gomock.NewController(t)
		bookings := commandsmock.NewMockBookingRepository(ctrl)
		rooms := commandsmock.NewMockRoomRepository(ctrl)
		return bookings, rooms, commands.NewBookingCommands(bookings, rooms)
	}

	t.Run("creates booking then marks the room booked", func(t *testing.T) {
		bookings, rooms, uc := newFixture(t)
		metadata := builder.NewBookingBuilder().BuildMetadata()

		var created *booking.Booking
		bookings.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, b *booking.Booking) (string, error) {
				created = b
				return "booking-1", nil
			})
		rooms.EXPECT().MarkBooked(ctx, metadata["hotelRoom"]).Return(nil)

		result, err := uc.ConfirmFromCheckout(ctx, metadata)
		require.NoError(t, err)
		assert.Equal(t, "booking-1", result.BookingID)

		require.NotNil(t, created)
		assert.Equal(t, metadata["user"], created.UserID())
		assert.Equal(t, metadata["hotelRoom"], created.RoomID())
		assert.Equal(t, 3, created.Stay().Nights())
		assert.Equal(t, 2, created.Adults())
		assert.Equal(t, 1, created.Children())
		assert.InDelta(t, 2700, created.TotalPrice(), 1e-9)
		assert.InDelta(t, 10, created.Discount(), 1e-9)
	})

	t.Run("non-numeric metadata is rejected before any write", func(t *testing.T) {
		_, _, uc := newFixture(t)

		metadata := builder.NewBookingBuilder().BuildMetadata()
		metadata["totalPrice"] = "a lot"

		_, err := uc.ConfirmFromCheckout(ctx, metadata)
		assert.ErrorIs(t, err, commands.ErrBadMetadata)
	})

	t.Run("missing field is rejected before any write", func(t *testing.T) {
		_, _, uc := newFixture(t)

		metadata := builder.NewBookingBuilder().BuildMetadata()
		delete(metadata, "numberOfDays")

		_, err := uc.ConfirmFromCheckout(ctx, metadata)
		assert.ErrorIs(t, err, commands.ErrBadMetadata)
	})

	t.Run("create failure stops the workflow", func(t *testing.T) {
		bookings, _, uc := newFixture(t)

		bookings.EXPECT().Create(ctx, gomock.Any()).Return("", errors.New("write forbidden"))

		_, err := uc.ConfirmFromCheckout(ctx, builder.NewBookingBuilder().BuildMetadata())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create booking")
	})

	t.Run("room patch failure surfaces after the booking was created", func(t *testing.T) {
		bookings, rooms, uc := newFixture(t)

		bookings.EXPECT().Create(ctx, gomock.Any()).Return("booking-1", nil)
		rooms.EXPECT().MarkBooked(ctx, gomock.Any()).Return(errors.New("patch failed"))

		_, err := uc.ConfirmFromCheckout(ctx, builder.NewBookingBuilder().BuildMetadata())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to mark room booked")
	})
}
