// Package readstore implements the typed read paths over the content
// platform's GROQ query endpoint. Every query is parameterized; filters are
// pushed into the query itself so no post-fetch filtering happens here.
package readstore

import "context"

// Querier is the slice of the content client the read side needs.
type Querier interface {
	Fetch(ctx context.Context, query string, params map[string]any, out any) error
}
