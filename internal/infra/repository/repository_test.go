//go:build unit

package repository_test

import (
	"context"
	"testing"

	"hotelhub/internal/domain/review"
	"hotelhub/internal/infra/sanity"
	"hotelhub/tests/common/builder"

	"github.com/stretchr/testify/require"
)

// fakeMutator records mutation batches and returns a canned result.
type fakeMutator struct {
	batches [][]sanity.Mutation
	result  *sanity.MutateResult
	err     error
}

func (f *fakeMutator) Mutate(_ context.Context, mutations []sanity.Mutation) (*sanity.MutateResult, error) {
	f.batches = append(f.batches, mutations)
	if f.err != nil {
		return nil, f.err
	}
	if f.result != nil {
		return f.result, nil
	}
	return &sanity.MutateResult{}, nil
}

func buildReview(t *testing.T) *review.Review {
	t.Helper()
	rev, err := builder.NewReviewBuilder().BuildDomain()
	require.NoError(t, err)
	return rev
}
