package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lumiere-jewelry/storefront-recommendations/cmd/mcp/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestHandleGetRecommendations(t *testing.T) {
	cases := []struct {
		name      string
		args      map[string]any
		wantQuery string
		body      string
		wantText  string
	}{
		{
			name:      "with_product_and_limit",
			args:      map[string]any{"product_id": "p1", "limit": float64(80)},
			wantQuery: "limit=50&product_id=p1",
			body:      `{"data":[{"id":"p2"}],"metadata":{}}`,
			wantText:  "Found 1 product(s)",
		},
		{
			name:     "no_products",
			args:     map[string]any{},
			body:     `{"data":[],"metadata":{}}`,
			wantText: "No products found.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tc.wantQuery, r.URL.RawQuery)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer api.Close()

			s := NewServer(client.NewClient(api.URL, ""))
			req := mcp.CallToolRequest{}
			req.Params.Arguments = tc.args

			result, err := s.handleGetRecommendations(context.Background(), req)

			require.NoError(t, err)
			assert.False(t, result.IsError)
			assert.Contains(t, resultText(t, result), tc.wantText)
		})
	}
}

func TestHandleRecordBehavior_MissingArguments(t *testing.T) {
	s := NewServer(client.NewClient("http://localhost:0", ""))
	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]any{"product_id": "p1"}

	result, err := s.handleRecordBehavior(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Equal(t, "behavior_type is required", resultText(t, result))
}

func TestHandleUpdateRecommendations(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"run_id":"run1","collaborative_edges":2,"content_edges":8}`))
	}))
	defer api.Close()

	s := NewServer(client.NewClient(api.URL, "admin|token"))

	result, err := s.handleUpdateRecommendations(context.Background(), mcp.CallToolRequest{})

	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, "Run run1 wrote 2 collaborative and 8 content similarity edges", resultText(t, result))
}
