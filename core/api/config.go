package api

// Config holds the per-profile settings for one API-side record source.
type Config struct {
	// BaseURL is the API origin, e.g. https://api.example.com.
	BaseURL string `mapstructure:"base_url"`
	// Role selects the API surface (merchant or fulfiller).
	Role string `mapstructure:"role" default:"merchant"`
	// Resource is the collection to list, e.g. merchant-products.
	Resource string `mapstructure:"resource"`
	// Alias is sent upper-cased in the Alias header.
	Alias string `mapstructure:"alias"`
	// Auth is the full Authorization header value.
	Auth string `mapstructure:"auth"`
	// UseUpdates switches to the /updates endpoint with a time window.
	UseUpdates bool `mapstructure:"use_updates"`
	// PageCap bounds pagination to guard against endless next links.
	PageCap int `mapstructure:"page_cap" default:"100"`
	// TimeoutSeconds is the per-request timeout.
	TimeoutSeconds int `mapstructure:"timeout_s" default:"60"`
	// Select is an optional OData $select projection.
	Select string `mapstructure:"select"`
}
