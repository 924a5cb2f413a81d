package commands

import (
	"context"
	"strconv"

	"hotelhub/internal/domain/booking"
	"hotelhub/internal/domain/room"
	"hotelhub/internal/pkg/errs"
	"hotelhub/internal/usecase/queries"
)

var ErrRoomNotFound = queries.ErrRoomNotFound

// Metadata keys round-tripped through the checkout session. The bag exists so
// the webhook can reconstruct booking fields without a second lookup.
const (
	metaUser         = "user"
	metaHotelRoom    = "hotelRoom"
	metaCheckinDate  = "checkinDate"
	metaCheckoutDate = "checkoutDate"
	metaNumberOfDays = "numberOfDays"
	metaAdults       = "adults"
	metaChildren     = "children"
	metaDiscount     = "discount"
	metaTotalPrice   = "totalPrice"
)

type CreateCheckoutSessionRequest struct {
	RoomSlug     string
	CheckinDate  string
	CheckoutDate string
	NumberOfDays int
	Adults       int
	Children     int
	Origin       string
}

type CheckoutCommands interface {
	CreateSession(ctx context.Context, req CreateCheckoutSessionRequest, userID string) (*CheckoutSession, error)
}

type checkoutCommandsImpl struct {
	rooms    queries.RoomReadStore
	gateway  CheckoutGateway
	currency string
}

func NewCheckoutCommands(rooms queries.RoomReadStore, gateway CheckoutGateway, currency string) CheckoutCommands {
	return &checkoutCommandsImpl{rooms: rooms, gateway: gateway, currency: currency}
}

func (uc *checkoutCommandsImpl) CreateSession(ctx context.Context, req CreateCheckoutSessionRequest, userID string) (*CheckoutSession, error) {
	stay, err := booking.NewStayRange(req.CheckinDate, req.CheckoutDate, req.NumberOfDays)
	if err != nil {
		return nil, err
	}

	view, err := uc.rooms.FindBySlug(ctx, req.RoomSlug)
	if err != nil {
		return nil, err
	}

	price, err := room.NewPrice(view.Price)
	if err != nil {
		return nil, err
	}
	discount, err := room.NewDiscount(view.Discount)
	if err != nil {
		return nil, err
	}

	totalPrice := discount.Apply(price) * float64(stay.Nights())

	images := make([]string, 0, len(view.Images))
	for _, img := range view.Images {
		images = append(images, img.URL)
	}

	session, err := uc.gateway.CreateSession(ctx, CheckoutSessionSpec{
		AmountMinor: int64(totalPrice * 100),
		Currency:    uc.currency,
		ProductName: view.Name,
		Images:      images,
		SuccessURL:  req.Origin + "/users/" + userID,
		Metadata: map[string]string{
			metaUser:         userID,
			metaHotelRoom:    view.ID,
			metaCheckinDate:  stay.Checkin(),
			metaCheckoutDate: stay.Checkout(),
			metaNumberOfDays: strconv.Itoa(stay.Nights()),
			metaAdults:       strconv.Itoa(req.Adults),
			metaChildren:     strconv.Itoa(req.Children),
			metaDiscount:     strconv.FormatFloat(discount.Percent(), 'f', -1, 64),
			metaTotalPrice:   strconv.FormatFloat(totalPrice, 'f', -1, 64),
		},
	})
	if err != nil {
		return nil, errs.Wrap(err, "checkout session creation failed")
	}
	return session, nil
}
