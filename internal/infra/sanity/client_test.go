//go:build unit

package sanity_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"hotelhub/internal/infra/sanity"
	"hotelhub/internal/pkg/config"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rewriteTransport sends every request to the test server regardless of the
// host the client built from config.
type rewriteTransport struct {
	target *url.URL
}

func (t rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = t.target.Scheme
	req.URL.Host = t.target.Host
	return http.DefaultTransport.RoundTrip(req)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*sanity.Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	target, err := url.Parse(server.URL)
	require.NoError(t, err)

	httpClient := &http.Client{Transport: rewriteTransport{target: target}}
	return sanity.NewClient(config.NewTestConfig().Sanity, httpClient), server
}

func TestClient_Fetch(t *testing.T) {
	ctx := context.Background()

	t.Run("sends parameterized query with auth and cache headers", func(t *testing.T) {
		var captured *http.Request
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			captured = r.Clone(r.Context())
			w.Write([]byte(`{"result": {"name": "Deluxe"}}`))
		})

		var out struct {
			Name string `json:"name"`
		}
		query := `*[_type == "hotelRoom" && slug.current == $slug][0]`
		err := client.Fetch(ctx, query, map[string]any{"slug": "deluxe-sea-view"}, &out)
		require.NoError(t, err)

		require.NotNil(t, captured)
		assert.Equal(t, http.MethodGet, captured.Method)
		assert.Equal(t, "/v2021-10-21/data/query/test", captured.URL.Path)
		assert.Equal(t, query, captured.URL.Query().Get("query"))
		assert.Equal(t, `"deluxe-sea-view"`, captured.URL.Query().Get("$slug"))
		assert.Equal(t, "Bearer test-token", captured.Header.Get("Authorization"))
		assert.Equal(t, "no-cache", captured.Header.Get("Cache-Control"))
		assert.Equal(t, "Deluxe", out.Name)
	})

	t.Run("non-string params are JSON encoded", func(t *testing.T) {
		var captured url.Values
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			captured = r.URL.Query()
			w.Write([]byte(`{"result": null}`))
		})

		err := client.Fetch(ctx, "*[rating >= $min]", map[string]any{"min": 3}, nil)
		require.NoError(t, err)
		assert.Equal(t, "3", captured.Get("$min"))
	})

	t.Run("null result leaves out untouched", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"result": null}`))
		})

		out := struct {
			Name string `json:"name"`
		}{Name: "unchanged"}
		err := client.Fetch(ctx, "*[0]", nil, &out)
		require.NoError(t, err)
		assert.Equal(t, "unchanged", out.Name)
	})

	t.Run("non-2xx becomes APIError", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message": "invalid token"}`))
		})

		err := client.Fetch(ctx, "*", nil, nil)
		require.Error(t, err)

		var apiErr *sanity.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
		assert.Contains(t, apiErr.Body, "invalid token")
	})
}

func TestClient_Mutate(t *testing.T) {
	ctx := context.Background()

	t.Run("posts mutation batch and decodes ids", func(t *testing.T) {
		var captured *http.Request
		var capturedBody []byte
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			captured = r.Clone(r.Context())
			capturedBody, _ = io.ReadAll(r.Body)
			w.Write([]byte(`{"transactionId": "tx1", "results": [{"id": "booking-1", "operation": "create"}]}`))
		})

		mutations := []sanity.Mutation{
			{Create: map[string]any{"_type": "booking", "_id": "booking-1"}},
			{Patch: &sanity.Patch{ID: "room-1", Set: map[string]any{"isBooked": true}}},
		}
		result, err := client.Mutate(ctx, mutations)
		require.NoError(t, err)

		assert.Equal(t, http.MethodPost, captured.Method)
		assert.Equal(t, "/v2021-10-21/data/mutate/test", captured.URL.Path)
		assert.Equal(t, "true", captured.URL.Query().Get("returnIds"))
		assert.Equal(t, "application/json", captured.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer test-token", captured.Header.Get("Authorization"))

		var sent map[string]any
		require.NoError(t, json.Unmarshal(capturedBody, &sent))
		expected := map[string]any{
			"mutations": []any{
				map[string]any{"create": map[string]any{"_type": "booking", "_id": "booking-1"}},
				map[string]any{"patch": map[string]any{"id": "room-1", "set": map[string]any{"isBooked": true}}},
			},
		}
		if diff := cmp.Diff(expected, sent); diff != "" {
			t.Errorf("mutation payload mismatch (-want +got):\n%s", diff)
		}

		assert.Equal(t, "tx1", result.TransactionID)
		require.Len(t, result.Results, 1)
		assert.Equal(t, "booking-1", result.Results[0].ID)
		assert.Equal(t, "create", result.Results[0].Operation)
	})

	t.Run("non-2xx becomes APIError", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte("insufficient permissions"))
		})

		_, err := client.Mutate(ctx, []sanity.Mutation{{Create: map[string]any{"_type": "review"}}})
		require.Error(t, err)

		var apiErr *sanity.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	})
}

func TestRef(t *testing.T) {
	got := sanity.Ref("user-1")
	want := map[string]any{"_type": "reference", "_ref": "user-1"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("reference shape mismatch (-want +got):\n%s", diff)
	}
}
