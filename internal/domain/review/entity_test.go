//go:build unit

package review_test

import (
	"strings"
	"testing"

	"hotelhub/internal/domain/review"
	"hotelhub/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReviewBuilder)
	errIs  error
}

func TestReview(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewReviewBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.False(t, actual.CreatedAt().IsZero())
		assert.Equal(t, 5, actual.Rating().Value())
		assert.Equal(t, "Excellent stay!", actual.Text().String())
	})

	t.Run("rating validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "below minimum rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(0) },
				errIs:  review.ErrInvalidRating,
			},
			{
				name:   "minimum valid rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(1) },
			},
			{
				name:   "maximum valid rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(5) },
			},
			{
				name:   "above maximum rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(6) },
				errIs:  review.ErrInvalidRating,
			},
		})
	})

	t.Run("text validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "single character text",
				mutate: func(b *builder.ReviewBuilder) { b.WithText("a") },
			},
			{
				name:   "maximum length text",
				mutate: func(b *builder.ReviewBuilder) { b.WithText(strings.Repeat("a", review.MaxTextLength)) },
			},
			{
				name:   "over maximum length text",
				mutate: func(b *builder.ReviewBuilder) { b.WithText(strings.Repeat("a", review.MaxTextLength+1)) },
				errIs:  review.ErrTextTooLong,
			},
			{
				name:   "empty text",
				mutate: func(b *builder.ReviewBuilder) { b.WithText("") },
				errIs:  review.ErrEmptyText,
			},
			{
				name:   "whitespace only text",
				mutate: func(b *builder.ReviewBuilder) { b.WithText("   ") },
				errIs:  review.ErrEmptyText,
			},
		})
	})

	t.Run("reference validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "missing user reference",
				mutate: func(b *builder.ReviewBuilder) { b.WithUserID("") },
				errIs:  review.ErrMissingUser,
			},
			{
				name:   "missing room reference",
				mutate: func(b *builder.ReviewBuilder) { b.WithRoomID("") },
				errIs:  review.ErrMissingRoom,
			},
		})
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewReviewBuilder().With(tc.mutate)
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}
