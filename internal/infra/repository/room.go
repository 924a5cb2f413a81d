package repository

import (
	"context"

	"hotelhub/internal/infra"
	"hotelhub/internal/infra/sanity"
)

type RoomRepository struct {
	client Mutator
}

func NewRoomRepository(client Mutator) *RoomRepository {
	return &RoomRepository{client: client}
}

func (r *RoomRepository) MarkBooked(ctx context.Context, roomID string) error {
	patch := &sanity.Patch{
		ID:  roomID,
		Set: map[string]any{"isBooked": true},
	}
	if _, err := r.client.Mutate(ctx, []sanity.Mutation{{Patch: patch}}); err != nil {
		return infra.WrapRepoErr("failed to mark room booked", err)
	}
	return nil
}
