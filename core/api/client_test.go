package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dbapi-compare/core/progress"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchAllPaginatesItems(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
		assert.Equal(t, "JAPP0XQADEV", r.Header.Get("x-application-id"))
		assert.Equal(t, "ABC", r.Header.Get("Alias"))

		switch r.URL.Path {
		case "/api/v1/merchant/merchant-products":
			fmt.Fprintf(w, `{"items":[{"jfsku":"X1","condition":"New","dimensions":{"weight":2}}],"_links":{"next":"%s/page2"}}`, srv.URL)
		case "/page2":
			fmt.Fprint(w, `{"items":[{"jfsku":"X2","condition":"Used"}],"_links":{}}`)
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := NewClient(5 * time.Second)
	cfg := Config{
		BaseURL:  srv.URL,
		Role:     "merchant",
		Resource: "merchant-products",
		Alias:    "abc",
		Auth:     "Bearer token",
		PageCap:  10,
	}

	col := &progress.Collector{}
	table, err := c.FetchAll(context.Background(), cfg, "", "", col)
	require.NoError(t, err)

	require.Equal(t, 2, table.Len())
	assert.Equal(t, "X1", table.Rows[0]["jfsku"])
	assert.Equal(t, "X2", table.Rows[1]["jfsku"])
	// nested objects flatten to dot notation
	assert.Equal(t, float64(2), table.Rows[0]["dimensions.weight"])
	assert.Contains(t, table.Columns, "dimensions.weight")

	lines := col.Lines()
	require.NotEmpty(t, lines)
	assert.Equal(t, "API: 2 rows received.", lines[len(lines)-1])
}

func TestFetchAllUpdatesMode(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/merchant/merchant-products/updates":
			assert.Equal(t, "2025-08-27T22:00:00Z", r.URL.Query().Get("fromDate"))
			fmt.Fprintf(w, `{"data":[{"jfsku":"X1"}],"nextChunkUrl":"%s/chunk2"}`, srv.URL)
		case "/chunk2":
			fmt.Fprint(w, `{"data":[{"jfsku":"X2"}],"nextChunkUrl":""}`)
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := NewClient(5 * time.Second)
	cfg := Config{
		BaseURL:    srv.URL,
		Role:       "merchant",
		Resource:   "merchant-products",
		Auth:       "Bearer token",
		UseUpdates: true,
		PageCap:    10,
	}

	table, err := c.FetchAll(context.Background(), cfg, "2025-08-27T22:00:00Z", "2025-08-28T21:59:59Z", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())
}

func TestFetchAllUpdatesRequiresWindow(t *testing.T) {
	c := NewClient(time.Second)
	cfg := Config{BaseURL: "http://localhost", Role: "merchant", Resource: "r", UseUpdates: true}
	_, err := c.FetchAll(context.Background(), cfg, "", "", nil)
	assert.ErrorContains(t, err, "from/to")
}

func TestFetchAllPageCap(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Always advertise another page.
		fmt.Fprintf(w, `{"items":[{"jfsku":"X"}],"_links":{"next":"%s/again"}}`, srv.URL)
	}))
	defer srv.Close()

	c := NewClient(5 * time.Second)
	cfg := Config{BaseURL: srv.URL, Role: "merchant", Resource: "r", PageCap: 3}

	col := &progress.Collector{}
	table, err := c.FetchAll(context.Background(), cfg, "", "", col)
	require.NoError(t, err)
	assert.Equal(t, 3, table.Len())
	assert.Contains(t, col.Lines(), "API: page cap reached, stopped to avoid an endless loop.")
}

func TestFetchAllStatusErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		headers map[string]string
		wantSub string
	}{
		{"unauthorized", http.StatusUnauthorized, nil, "api 401"},
		{"rate limited", http.StatusTooManyRequests, map[string]string{"Retry-After": "30"}, "Retry-After=30"},
		{"server error", http.StatusInternalServerError, nil, "api 500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				for k, v := range tt.headers {
					w.Header().Set(k, v)
				}
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			c := NewClient(5 * time.Second)
			cfg := Config{BaseURL: srv.URL, Role: "merchant", Resource: "r", PageCap: 1}
			_, err := c.FetchAll(context.Background(), cfg, "", "", nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantSub)
		})
	}
}

func TestBuildURLSelect(t *testing.T) {
	u, err := buildURL(Config{
		BaseURL:  "https://host/",
		Role:     "merchant",
		Resource: "merchant-products",
		Select:   "jfsku, condition",
	}, "", "")
	require.NoError(t, err)
	assert.Equal(t, "https://host/api/v1/merchant/merchant-products?$select=jfsku%2Ccondition", u)

	_, err = buildURL(Config{Role: "merchant", Resource: "r"}, "", "")
	assert.ErrorContains(t, err, "base_url")
}

func TestFetchAllHonorsConfiguredTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(5 * time.Second):
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	// transport ceiling well above the profile timeout
	c := NewClient(30 * time.Second)
	cfg := Config{
		BaseURL:        srv.URL,
		Role:           "merchant",
		Resource:       "merchant-products",
		TimeoutSeconds: 1,
	}

	start := time.Now()
	_, err := c.FetchAll(context.Background(), cfg, "", "", nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, "context deadline exceeded")
	assert.Less(t, time.Since(start), 4*time.Second)
}
