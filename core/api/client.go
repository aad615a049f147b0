package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"dbapi-compare/core/progress"
	"dbapi-compare/core/record"
	"dbapi-compare/core/redact"
)

// Fixed application identity headers expected by the fulfillment API.
const (
	applicationID      = "JAPP0XQADEV"
	applicationVersion = "0.1"
)

// Client is an HTTP client for the fulfillment API.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a client. timeout is the transport-level ceiling (dial,
// TLS, response header); zero selects 60s. The per-request budget comes from
// the profile's timeout and is applied per page fetch in FetchAll.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeout,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeout,
	}

	return &Client{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
	}
}

// FetchAll retrieves every page of the configured resource and returns the
// flattened records as a table. fromISO/toISO bound the updates window and are
// required when cfg.UseUpdates is set. Status lines go to q.
func (c *Client) FetchAll(ctx context.Context, cfg Config, fromISO, toISO string, q progress.Reporter) (*record.Table, error) {
	startURL, err := buildURL(cfg, fromISO, toISO)
	if err != nil {
		return nil, err
	}

	headers := buildHeaders(cfg)

	pageCap := cfg.PageCap
	if pageCap <= 0 {
		pageCap = 100
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	table := record.NewTable()
	nextURL := startURL
	page := 0

	for nextURL != "" && page < pageCap {
		progress.Put(q, "GET "+redact.Redact(nextURL))

		// The profile's timeout bounds each page fetch, not the whole run.
		pageCtx, cancel := context.WithTimeout(ctx, timeout)
		payload, err := c.getJSON(pageCtx, nextURL, headers)
		cancel()
		if err != nil {
			return nil, err
		}

		var chunk []any
		if cfg.UseUpdates {
			chunk, _ = payload["data"].([]any)
			nextURL, _ = payload["nextChunkUrl"].(string)
		} else {
			chunk, _ = payload["items"].([]any)
			nextURL = ""
			if links, ok := payload["_links"].(map[string]any); ok {
				nextURL, _ = links["next"].(string)
			}
		}

		for _, item := range chunk {
			obj, ok := item.(map[string]any)
			if !ok {
				continue
			}
			row := make(record.Row)
			flatten("", obj, row, table)
			table.Append(row)
		}
		page++
	}

	if page >= pageCap && nextURL != "" {
		progress.Put(q, "API: page cap reached, stopped to avoid an endless loop.")
	}

	// JSON objects decode in map order, sort columns for stable exports.
	sort.Strings(table.Columns)
	progress.Put(q, fmt.Sprintf("API: %d rows received.", table.Len()))

	return table, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, headers map[string]string) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid request URL: %w", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api request failed: %s", redact.Redact(err.Error()))
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, fmt.Errorf("api 401: unauthorized")
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("api 429: rate limit reached, Retry-After=%s", resp.Header.Get("Retry-After"))
	case resp.StatusCode >= 400:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 240))
		return nil, fmt.Errorf("api %d: %s", resp.StatusCode, redact.Redact(string(body)))
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("api returned invalid JSON: %w", err)
	}
	return payload, nil
}

func buildURL(cfg Config, fromISO, toISO string) (string, error) {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		return "", fmt.Errorf("api base_url is empty")
	}
	if cfg.Role == "" {
		return "", fmt.Errorf("api role is empty")
	}
	if cfg.Resource == "" {
		return "", fmt.Errorf("api resource is empty")
	}

	u := fmt.Sprintf("%s/api/v1/%s/%s", base, cfg.Role, cfg.Resource)

	var params []string
	if cfg.UseUpdates {
		if fromISO == "" || toISO == "" {
			return "", fmt.Errorf("updates endpoint requires from/to ISO timestamps")
		}
		u += "/updates"
		params = append(params,
			"fromDate="+url.QueryEscape(fromISO),
			"toDate="+url.QueryEscape(toISO),
		)
	}
	if cfg.Select != "" {
		sel := strings.ReplaceAll(cfg.Select, " ", "")
		params = append(params, "$select="+url.QueryEscape(sel))
	}
	if len(params) > 0 {
		u += "?" + strings.Join(params, "&")
	}
	return u, nil
}

func buildHeaders(cfg Config) map[string]string {
	h := map[string]string{
		"Authorization":         cfg.Auth,
		"x-application-id":      applicationID,
		"x-application-version": applicationVersion,
		"Content-Type":          "application/json",
	}
	if cfg.Alias != "" {
		h["Alias"] = strings.ToUpper(strings.TrimSpace(cfg.Alias))
	}
	return h
}

// flatten writes obj into row using dot-notation keys for nested objects and
// registers each column on the table in first-seen order. Arrays are kept as
// values; only objects recurse.
func flatten(prefix string, obj map[string]any, row record.Row, table *record.Table) {
	for key, val := range obj {
		name := key
		if prefix != "" {
			name = prefix + "." + key
		}
		if nested, ok := val.(map[string]any); ok {
			flatten(name, nested, row, table)
			continue
		}
		table.AddColumn(name)
		row[name] = val
	}
}
