package booking

import (
	"hotelhub/internal/pkg/errs"
)

var (
	ErrMissingUser       = errs.New("booking requires a user reference")
	ErrMissingRoom       = errs.New("booking requires a room reference")
	ErrInvalidOccupants  = errs.New("booking requires at least one adult")
	ErrInvalidChildren   = errs.New("children count cannot be negative")
	ErrInvalidTotalPrice = errs.New("total price must be greater than zero")
)

// Booking is created exactly once per completed payment event and is never
// updated or deleted afterwards.
type Booking struct {
	userID     string
	roomID     string
	stay       StayRange
	adults     int
	children   int
	totalPrice float64
	discount   float64 // discount percentage snapshot at checkout time
}

func NewBooking(userID, roomID string, stay StayRange, adults, children int, totalPrice, discount float64) (*Booking, error) {
	if userID == "" {
		return nil, ErrMissingUser
	}
	if roomID == "" {
		return nil, ErrMissingRoom
	}
	if adults < 1 {
		return nil, ErrInvalidOccupants
	}
	if children < 0 {
		return nil, ErrInvalidChildren
	}
	if totalPrice <= 0 {
		return nil, ErrInvalidTotalPrice
	}
	if discount < 0 || discount > 100 {
		return nil, errs.New("discount snapshot must be between 0 and 100")
	}

	return &Booking{
		userID:     userID,
		roomID:     roomID,
		stay:       stay,
		adults:     adults,
		children:   children,
		totalPrice: totalPrice,
		discount:   discount,
	}, nil
}

func (b *Booking) UserID() string      { return b.userID }
func (b *Booking) RoomID() string      { return b.roomID }
func (b *Booking) Stay() StayRange     { return b.stay }
func (b *Booking) Adults() int         { return b.adults }
func (b *Booking) Children() int       { return b.children }
func (b *Booking) TotalPrice() float64 { return b.totalPrice }
func (b *Booking) Discount() float64   { return b.discount }
