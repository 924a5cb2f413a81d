//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"hotelhub/internal/domain/booking"
	"hotelhub/internal/infra"
	"hotelhub/internal/infra/repository"
	"hotelhub/internal/infra/sanity"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildBooking(t *testing.T) *booking.Booking {
	t.Helper()
	stay, err := booking.NewStayRange("2026-09-01", "2026-09-04", 3)
	require.NoError(t, err)
	b, err := booking.NewBooking("user-1", "room-1", stay, 2, 1, 2700, 10)
	require.NoError(t, err)
	return b
}

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a booking document with generated id", func(t *testing.T) {
		fake := &fakeMutator{}
		repo := repository.NewBookingRepository(fake)

		id, err := repo.Create(ctx, buildBooking(t))
		require.NoError(t, err)
		require.NoError(t, uuid.Validate(id))

		require.Len(t, fake.batches, 1)
		require.Len(t, fake.batches[0], 1)
		doc, ok := fake.batches[0][0].Create.(map[string]any)
		require.True(t, ok)

		want := map[string]any{
			"_id":          id,
			"_type":        "booking",
			"user":         map[string]any{"_type": "reference", "_ref": "user-1"},
			"hotelRoom":    map[string]any{"_type": "reference", "_ref": "room-1"},
			"checkinDate":  "2026-09-01",
			"checkoutDate": "2026-09-04",
			"numberOfDays": 3,
			"adults":       2,
			"children":     1,
			"totalPrice":   2700.0,
			"discount":     10.0,
		}
		if diff := cmp.Diff(want, doc); diff != "" {
			t.Errorf("booking document mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("mutation failure is wrapped", func(t *testing.T) {
		fake := &fakeMutator{err: errors.New("write forbidden")}
		repo := repository.NewBookingRepository(fake)

		_, err := repo.Create(ctx, buildBooking(t))
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindContentAPIFailure))
	})
}

func TestRoomRepository_MarkBooked(t *testing.T) {
	ctx := context.Background()

	t.Run("patches the booked flag", func(t *testing.T) {
		fake := &fakeMutator{}
		repo := repository.NewRoomRepository(fake)

		require.NoError(t, repo.MarkBooked(ctx, "room-1"))

		require.Len(t, fake.batches, 1)
		patch := fake.batches[0][0].Patch
		require.NotNil(t, patch)
		assert.Equal(t, "room-1", patch.ID)
		assert.Equal(t, map[string]any{"isBooked": true}, patch.Set)
	})

	t.Run("mutation failure is wrapped", func(t *testing.T) {
		fake := &fakeMutator{err: errors.New("write forbidden")}
		repo := repository.NewRoomRepository(fake)

		err := repo.MarkBooked(ctx, "room-1")
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindContentAPIFailure))
	})
}

func TestReviewRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create writes a review document with refs", func(t *testing.T) {
		fake := &fakeMutator{result: &sanity.MutateResult{}}
		repo := repository.NewReviewRepository(fake)

		rev := buildReview(t)
		id, err := repo.Create(ctx, rev)
		require.NoError(t, err)
		require.NoError(t, uuid.Validate(id))

		doc, ok := fake.batches[0][0].Create.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "review", doc["_type"])
		assert.Equal(t, map[string]any{"_type": "reference", "_ref": rev.UserID()}, doc["user"])
		assert.Equal(t, map[string]any{"_type": "reference", "_ref": rev.RoomID()}, doc["hotelRoom"])
		assert.Equal(t, 5, doc["userRating"])
		assert.Equal(t, "Excellent stay!", doc["text"])
	})

	t.Run("update patches text and rating in place", func(t *testing.T) {
		fake := &fakeMutator{}
		repo := repository.NewReviewRepository(fake)

		require.NoError(t, repo.UpdateContent(ctx, "rev-1", 3, "Average this time"))

		patch := fake.batches[0][0].Patch
		require.NotNil(t, patch)
		assert.Equal(t, "rev-1", patch.ID)
		assert.Equal(t, map[string]any{"text": "Average this time", "userRating": 3}, patch.Set)
	})
}
