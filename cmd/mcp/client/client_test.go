package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GetRecommendations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/recommendations", r.URL.Path)
		assert.Equal(t, "p1", r.URL.Query().Get("product_id"))
		assert.Equal(t, "4", r.URL.Query().Get("limit"))
		assert.Equal(t, "Bearer auth0|jwt", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"id":"p2","name":"Nhẫn vàng"}],"metadata":{}}`))
	}))
	defer srv.Close()

	products, err := NewClient(srv.URL+"/", "auth0|jwt").GetRecommendations(context.Background(), "p1", 4)

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "p2", products[0].ID)
}

func TestClient_UpdateRecommendations(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		wantErr bool
	}{
		{
			name:   "success",
			status: http.StatusOK,
			body:   `{"run_id":"run1","collaborative_edges":4,"content_edges":6}`,
		},
		{
			name:    "forbidden",
			status:  http.StatusForbidden,
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/v1/recommendations/update", r.URL.Path)
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			result, err := NewClient(srv.URL, "admin|token").UpdateRecommendations(context.Background())

			if tc.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "403")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, &UpdateResult{RunID: "run1", CollaborativeEdges: 4, ContentEdges: 6}, result)
		})
	}
}

func TestClient_RecordBehavior(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/products/p1/behaviors/wishlist", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"e1","product_id":"p1","behavior_type":"wishlist"}`))
	}))
	defer srv.Close()

	event, err := NewClient(srv.URL, "").RecordBehavior(context.Background(), "p1", "wishlist")

	require.NoError(t, err)
	assert.Equal(t, "e1", event.ID)
	assert.Equal(t, "wishlist", event.BehaviorType)
}
