package readstore

import (
	"context"
	"strings"

	"hotelhub/internal/infra"
	"hotelhub/internal/usecase/queries"
)

const roomProjection = `{
	"id": _id,
	name,
	"slug": slug.current,
	description,
	"type": type,
	price,
	discount,
	numberOfBeds,
	specialNote,
	"coverImage": coverImage.url,
	"images": images[]{url},
	"offeredAmenities": offeredAmenities[]{amenity, icon},
	isBooked,
	isFeatured
}`

type RoomReadStore struct {
	client Querier
}

func NewRoomReadStore(client Querier) *RoomReadStore {
	return &RoomReadStore{client: client}
}

func (r *RoomReadStore) FindAll(ctx context.Context, filters queries.RoomFilters) ([]*queries.RoomView, error) {
	query := `*[_type == "hotelRoom"`
	params := map[string]any{}

	if filters.RoomType != "" && !strings.EqualFold(filters.RoomType, "all") {
		query += ` && lower(type) == lower($roomType)`
		params["roomType"] = filters.RoomType
	}
	if filters.Search != "" {
		query += ` && name match $search`
		params["search"] = "*" + filters.Search + "*"
	}
	query += `] | order(_createdAt desc) ` + roomProjection

	var rooms []*queries.RoomView
	if err := r.client.Fetch(ctx, query, params, &rooms); err != nil {
		return nil, infra.WrapRepoErr("failed to fetch rooms", err)
	}
	return rooms, nil
}

func (r *RoomReadStore) FindBySlug(ctx context.Context, slug string) (*queries.RoomView, error) {
	query := `*[_type == "hotelRoom" && slug.current == $slug][0] ` + roomProjection

	var room *queries.RoomView
	if err := r.client.Fetch(ctx, query, map[string]any{"slug": slug}, &room); err != nil {
		return nil, infra.WrapRepoErr("failed to fetch room by slug", err)
	}
	if room == nil {
		return nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return room, nil
}

func (r *RoomReadStore) FindFeatured(ctx context.Context) (*queries.RoomView, error) {
	query := `*[_type == "hotelRoom" && isFeatured == true][0] ` + roomProjection

	var room *queries.RoomView
	if err := r.client.Fetch(ctx, query, nil, &room); err != nil {
		return nil, infra.WrapRepoErr("failed to fetch featured room", err)
	}
	if room == nil {
		return nil, infra.WrapRepoErr("featured room not found", nil, infra.KindNotFound)
	}
	return room, nil
}
