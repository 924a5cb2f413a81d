//go:build unit

package builder

import (
	"hotelhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomBuilder struct {
	ID           string
	Name         string
	Slug         string
	Description  string
	Type         string
	Price        float64
	Discount     float64
	NumberOfBeds int
	IsBooked     bool
	IsFeatured   bool
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:           uuid.NewString(),
		Name:         "Deluxe Sea View",
		Slug:         "deluxe-sea-view",
		Description:  "A deluxe room overlooking the sea",
		Type:         "deluxe",
		Price:        1000,
		Discount:     10,
		NumberOfBeds: 2,
	}
}

func (r *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(r)
	return r
}

func (r *RoomBuilder) WithPrice(price float64) *RoomBuilder {
	r.Price = price
	return r
}

func (r *RoomBuilder) WithDiscount(discount float64) *RoomBuilder {
	r.Discount = discount
	return r
}

func (r *RoomBuilder) WithSlug(slug string) *RoomBuilder {
	r.Slug = slug
	return r
}

func (r *RoomBuilder) AsBooked() *RoomBuilder {
	r.IsBooked = true
	return r
}

func (r *RoomBuilder) AsFeatured() *RoomBuilder {
	r.IsFeatured = true
	return r
}

func (r *RoomBuilder) BuildView() *queries.RoomView {
	return &queries.RoomView{
		ID:           r.ID,
		Name:         r.Name,
		Slug:         r.Slug,
		Description:  r.Description,
		Type:         r.Type,
		Price:        r.Price,
		Discount:     r.Discount,
		NumberOfBeds: r.NumberOfBeds,
		CoverImage:   "https://cdn.example.com/rooms/cover.jpg",
		Images: []queries.RoomImage{
			{URL: "https://cdn.example.com/rooms/1.jpg"},
			{URL: "https://cdn.example.com/rooms/2.jpg"},
		},
		OfferedAmenities: []queries.Amenity{
			{Amenity: "Wifi", Icon: "fa-wifi"},
		},
		IsBooked:   r.IsBooked,
		IsFeatured: r.IsFeatured,
	}
}
