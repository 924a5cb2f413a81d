//go:build unit

package booking_test

import (
	"testing"

	"hotelhub/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validStay(t *testing.T) booking.StayRange {
	t.Helper()
	stay, err := booking.NewStayRange("2026-09-01", "2026-09-04", 3)
	require.NoError(t, err)
	return stay
}

func TestNewStayRange(t *testing.T) {
	testCases := []struct {
		name     string
		checkin  string
		checkout string
		nights   int
		errIs    error
	}{
		{name: "valid range", checkin: "2026-09-01", checkout: "2026-09-04", nights: 3},
		{name: "single night", checkin: "2026-09-01", checkout: "2026-09-02", nights: 1},
		{name: "checkout equals checkin", checkin: "2026-09-01", checkout: "2026-09-01", nights: 1, errIs: booking.ErrInvalidStay},
		{name: "checkout before checkin", checkin: "2026-09-04", checkout: "2026-09-01", nights: 3, errIs: booking.ErrInvalidStay},
		{name: "zero nights", checkin: "2026-09-01", checkout: "2026-09-04", nights: 0, errIs: booking.ErrInvalidNights},
		{name: "negative nights", checkin: "2026-09-01", checkout: "2026-09-04", nights: -1, errIs: booking.ErrInvalidNights},
		{name: "garbage checkin", checkin: "not-a-date", checkout: "2026-09-04", nights: 3, errIs: booking.ErrInvalidDate},
		{name: "garbage checkout", checkin: "2026-09-01", checkout: "tomorrow", nights: 3, errIs: booking.ErrInvalidDate},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stay, err := booking.NewStayRange(tc.checkin, tc.checkout, tc.nights)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.nights, stay.Nights())
		})
	}

	t.Run("timestamp input is reduced to the date part", func(t *testing.T) {
		stay, err := booking.NewStayRange("2026-09-01T14:00:00.000Z", "2026-09-04T10:00:00.000Z", 3)
		require.NoError(t, err)
		assert.Equal(t, "2026-09-01", stay.Checkin())
		assert.Equal(t, "2026-09-04", stay.Checkout())
	})
}

func TestNewBooking(t *testing.T) {
	stay := validStay(t)

	testCases := []struct {
		name       string
		userID     string
		roomID     string
		adults     int
		children   int
		totalPrice float64
		discount   float64
		errIs      error
	}{
		{name: "valid booking", userID: "u1", roomID: "r1", adults: 2, children: 1, totalPrice: 2700, discount: 10},
		{name: "no children is fine", userID: "u1", roomID: "r1", adults: 1, children: 0, totalPrice: 900, discount: 0},
		{name: "missing user", userID: "", roomID: "r1", adults: 2, children: 0, totalPrice: 2700, discount: 0, errIs: booking.ErrMissingUser},
		{name: "missing room", userID: "u1", roomID: "", adults: 2, children: 0, totalPrice: 2700, discount: 0, errIs: booking.ErrMissingRoom},
		{name: "zero adults", userID: "u1", roomID: "r1", adults: 0, children: 0, totalPrice: 2700, discount: 0, errIs: booking.ErrInvalidOccupants},
		{name: "negative children", userID: "u1", roomID: "r1", adults: 2, children: -1, totalPrice: 2700, discount: 0, errIs: booking.ErrInvalidChildren},
		{name: "zero total price", userID: "u1", roomID: "r1", adults: 2, children: 0, totalPrice: 0, discount: 0, errIs: booking.ErrInvalidTotalPrice},
		{name: "negative total price", userID: "u1", roomID: "r1", adults: 2, children: 0, totalPrice: -100, discount: 0, errIs: booking.ErrInvalidTotalPrice},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := booking.NewBooking(tc.userID, tc.roomID, stay, tc.adults, tc.children, tc.totalPrice, tc.discount)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.userID, b.UserID())
			assert.Equal(t, tc.roomID, b.RoomID())
			assert.Equal(t, tc.totalPrice, b.TotalPrice())
			assert.Equal(t, stay, b.Stay())
		})
	}
}
