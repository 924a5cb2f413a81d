package commands

import (
	"context"
	"log/slog"
	"strconv"

	"hotelhub/internal/domain/booking"
	"hotelhub/internal/pkg/errs"
)

var ErrBadMetadata = errs.New("checkout metadata is missing or malformed")

type ConfirmBookingResult struct {
	BookingID string
}

type BookingCommands interface {
	// ConfirmFromCheckout runs the booking-confirmation workflow for a
	// verified completed-payment event: create the booking document, then
	// mark the room booked. The two writes are sequential with no
	// compensating action; if the room patch fails after the booking create
	// succeeded, the booking stands and the gap is surfaced in the error.
	ConfirmFromCheckout(ctx context.Context, metadata map[string]string) (*ConfirmBookingResult, error)
}

type bookingCommandsImpl struct {
	bookings BookingRepository
	rooms    RoomRepository
}

func NewBookingCommands(bookings BookingRepository, rooms RoomRepository) BookingCommands {
	return &bookingCommandsImpl{bookings: bookings, rooms: rooms}
}

func (uc *bookingCommandsImpl) ConfirmFromCheckout(ctx context.Context, metadata map[string]string) (*ConfirmBookingResult, error) {
	b, err := bookingFromMetadata(metadata)
	if err != nil {
		return nil, err
	}

	bookingID, err := uc.bookings.Create(ctx, b)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create booking")
	}

	if err := uc.rooms.MarkBooked(ctx, b.RoomID()); err != nil {
		slog.Error("booking created but room not marked booked",
			"booking_id", bookingID, "room_id", b.RoomID(), "error", err.Error())
		return nil, errs.Wrap(err, "failed to mark room booked")
	}

	return &ConfirmBookingResult{BookingID: bookingID}, nil
}

// bookingFromMetadata coerces the text-only metadata bag back into a booking.
func bookingFromMetadata(metadata map[string]string) (*booking.Booking, error) {
	nights, err := atoiMeta(metadata, metaNumberOfDays)
	if err != nil {
		return nil, err
	}
	adults, err := atoiMeta(metadata, metaAdults)
	if err != nil {
		return nil, err
	}
	children, err := atoiMeta(metadata, metaChildren)
	if err != nil {
		return nil, err
	}
	totalPrice, err := atofMeta(metadata, metaTotalPrice)
	if err != nil {
		return nil, err
	}
	discount, err := atofMeta(metadata, metaDiscount)
	if err != nil {
		return nil, err
	}

	stay, err := booking.NewStayRange(metadata[metaCheckinDate], metadata[metaCheckoutDate], nights)
	if err != nil {
		return nil, errs.Mark(err, ErrBadMetadata)
	}

	b, err := booking.NewBooking(metadata[metaUser], metadata[metaHotelRoom], stay, adults, children, totalPrice, discount)
	if err != nil {
		return nil, errs.Mark(err, ErrBadMetadata)
	}
	return b, nil
}

func atoiMeta(metadata map[string]string, key string) (int, error) {
	v, err := strconv.Atoi(metadata[key])
	if err != nil {
		return 0, errs.Mark(errs.New("non-numeric metadata field "+key), ErrBadMetadata)
	}
	return v, nil
}

func atofMeta(metadata map[string]string, key string) (float64, error) {
	v, err := strconv.ParseFloat(metadata[key], 64)
	if err != nil {
		return 0, errs.Mark(errs.New("non-numeric metadata field "+key), ErrBadMetadata)
	}
	return v, nil
}
