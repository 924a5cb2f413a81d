// Package repository implements the write-side mutations against the content
// platform. Document ids are generated client-side so created ids can be
// returned without a second round-trip.
package repository

import (
	"context"

	"hotelhub/internal/infra/sanity"
)

// Mutator is the slice of the content client the write side needs.
type Mutator interface {
	Mutate(ctx context.Context, mutations []sanity.Mutation) (*sanity.MutateResult, error)
}
