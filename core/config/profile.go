package config

import (
	"errors"
	"fmt"
	"sort"

	"dbapi-compare/core/api"
	"dbapi-compare/core/join"
	"dbapi-compare/core/timerange"

	"github.com/spf13/viper"
)

// SQLProfile holds the database side of a comparison profile.
type SQLProfile struct {
	// SQL is the read-only SELECT executed against the Wawi database.
	SQL string `mapstructure:"sql"`
	// MaxRows caps the rows read for this profile; 0 falls back to the
	// database config cap.
	MaxRows int `mapstructure:"max_rows"`
}

// APIProfile holds the API side of a comparison profile. BaseKey references
// an entry in Profiles.APIURLs; the remaining fields mirror api.Config.
type APIProfile struct {
	BaseKey        string `mapstructure:"base_key"`
	Role           string `mapstructure:"role"`
	Resource       string `mapstructure:"resource"`
	Alias          string `mapstructure:"alias"`
	Auth           string `mapstructure:"auth"`
	UseUpdates     bool   `mapstructure:"use_updates"`
	PageCap        int    `mapstructure:"page_cap"`
	TimeoutSeconds int    `mapstructure:"timeout_s"`
	Select         string `mapstructure:"select"`
}

// Profile bundles everything one comparison run needs.
type Profile struct {
	DB       SQLProfile `mapstructure:"db"`
	API      APIProfile `mapstructure:"api"`
	Join     join.Spec  `mapstructure:"join"`
	Timezone string     `mapstructure:"timezone"`
}

// Profiles is the parsed profiles file.
type Profiles struct {
	// APIURLs maps environment names (QA, PROD) to API origins.
	APIURLs map[string]string `mapstructure:"api_urls"`
	// Entries maps profile names to their settings.
	Entries map[string]Profile `mapstructure:"profiles"`
}

// LoadProfiles reads profiles.(yaml|yml|json) from path. A missing file
// yields an empty profile set, not an error.
func LoadProfiles(path string) (*Profiles, error) {
	v := viper.New()
	v.SetConfigName("profiles")
	v.AddConfigPath(path)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return &Profiles{APIURLs: map[string]string{}, Entries: map[string]Profile{}}, nil
		}
		return nil, fmt.Errorf("failed to read profiles file: %w", err)
	}

	var p Profiles
	if err := v.Unmarshal(&p); err != nil {
		return nil, fmt.Errorf("failed to parse profiles file: %w", err)
	}
	if p.APIURLs == nil {
		p.APIURLs = map[string]string{}
	}
	if p.Entries == nil {
		p.Entries = map[string]Profile{}
	}
	return &p, nil
}

// Names returns all profile names sorted alphabetically.
func (p *Profiles) Names() []string {
	names := make([]string, 0, len(p.Entries))
	for name := range p.Entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the named profile with defaults applied.
func (p *Profiles) Get(name string) (Profile, error) {
	prof, ok := p.Entries[name]
	if !ok {
		return Profile{}, fmt.Errorf("profile %q not found", name)
	}
	if prof.Timezone == "" {
		prof.Timezone = timerange.DefaultTimezone
	}
	var err error
	if prof.Join, err = prof.Join.Normalize(); err != nil {
		return Profile{}, fmt.Errorf("profile %q: %w", name, err)
	}
	return prof, nil
}

// APIConfig resolves the profile's API settings against the api_urls map.
func (p *Profiles) APIConfig(prof Profile) (api.Config, error) {
	baseURL, ok := p.APIURLs[prof.API.BaseKey]
	if !ok {
		return api.Config{}, fmt.Errorf("api base key %q not found in api_urls", prof.API.BaseKey)
	}

	cfg := api.Config{
		BaseURL:        baseURL,
		Role:           prof.API.Role,
		Resource:       prof.API.Resource,
		Alias:          prof.API.Alias,
		Auth:           prof.API.Auth,
		UseUpdates:     prof.API.UseUpdates,
		PageCap:        prof.API.PageCap,
		TimeoutSeconds: prof.API.TimeoutSeconds,
		Select:         prof.API.Select,
	}
	if cfg.Role == "" {
		cfg.Role = "merchant"
	}
	if cfg.PageCap <= 0 {
		cfg.PageCap = 100
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = 60
	}
	return cfg, nil
}
