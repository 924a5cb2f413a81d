//go:build unit

package readstore_test

import (
	"context"
	"encoding/json"
)

// fakeQuerier captures the query and params handed to Fetch and feeds a canned
// result back through out, mimicking the content platform's JSON decoding.
type fakeQuerier struct {
	lastQuery  string
	lastParams map[string]any
	result     any
	err        error
}

func (f *fakeQuerier) Fetch(_ context.Context, query string, params map[string]any, out any) error {
	f.lastQuery = query
	f.lastParams = params
	if f.err != nil {
		return f.err
	}
	if f.result == nil || out == nil {
		return nil
	}
	b, err := json.Marshal(f.result)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}
