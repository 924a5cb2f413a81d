package queries

import (
	"context"

	"hotelhub/internal/infra"
	"hotelhub/internal/pkg/errs"
)

var ErrRoomNotFound = errs.New("room not found")

type RoomImage struct {
	URL string `json:"url"`
}

type Amenity struct {
	Amenity string `json:"amenity"`
	Icon    string `json:"icon"`
}

type RoomView struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	Slug             string      `json:"slug"`
	Description      string      `json:"description"`
	Type             string      `json:"type"`
	Price            float64     `json:"price"`
	Discount         float64     `json:"discount"`
	NumberOfBeds     int         `json:"numberOfBeds"`
	SpecialNote      string      `json:"specialNote"`
	CoverImage       string      `json:"coverImage"`
	Images           []RoomImage `json:"images"`
	OfferedAmenities []Amenity   `json:"offeredAmenities"`
	IsBooked         bool        `json:"isBooked"`
	IsFeatured       bool        `json:"isFeatured"`
}

// RoomFilters are pushed down into the content-store query so filtering
// happens at the data layer, not after full retrieval.
type RoomFilters struct {
	RoomType string
	Search   string
}

type RoomReadStore interface {
	FindAll(ctx context.Context, filters RoomFilters) ([]*RoomView, error)
	FindBySlug(ctx context.Context, slug string) (*RoomView, error)
	FindFeatured(ctx context.Context) (*RoomView, error)
}

type RoomQueries interface {
	List(ctx context.Context, filters RoomFilters) ([]*RoomView, error)
	GetBySlug(ctx context.Context, slug string) (*RoomView, error)
	GetFeatured(ctx context.Context) (*RoomView, error)
}

type roomQueriesImpl struct {
	repo RoomReadStore
}

func NewRoomQueries(repo RoomReadStore) RoomQueries {
	return &roomQueriesImpl{repo: repo}
}

func (q *roomQueriesImpl) List(ctx context.Context, filters RoomFilters) ([]*RoomView, error) {
	return q.repo.FindAll(ctx, filters)
}

func (q *roomQueriesImpl) GetBySlug(ctx context.Context, slug string) (*RoomView, error) {
	view, err := q.repo.FindBySlug(ctx, slug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *roomQueriesImpl) GetFeatured(ctx context.Context) (*RoomView, error) {
	view, err := q.repo.FindFeatured(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return view, nil
}
