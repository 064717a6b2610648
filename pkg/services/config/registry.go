package config

import (
	"context"
	"fmt"

	"gopkg.in/ini.v1"
)

// Registry resolves per-site credentials for the web runtime, where one
// server instance reports on several sites. Each ini section is a site:
//
//	[example.com]
//	apikey      = ...
//	baseurl     = https://stats.example.com/api/
//	apiversion  = v1
//	period      = custom
//
// The section name doubles as the site_id.
type Registry interface {
	GetSites(ctx context.Context) ([]string, error)
	GetConfig(ctx context.Context, site string) (*Config, error)
}

type iniRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile registry: %w", err)
	}
	return &iniRegistry{cfg: cfg}, nil
}

func (r *iniRegistry) GetSites(_ context.Context) ([]string, error) {
	var sites []string
	for _, section := range r.cfg.Sections() {
		if len(section.Keys()) > 0 {
			sites = append(sites, section.Name())
		}
	}
	return sites, nil
}

func (r *iniRegistry) GetConfig(_ context.Context, site string) (*Config, error) {
	section, err := r.cfg.GetSection(site)
	if err != nil {
		return nil, fmt.Errorf("site %q not found in profile registry", site)
	}

	cfg := &Config{
		APIKey:     section.Key("apikey").String(),
		BaseURL:    section.Key("baseurl").String(),
		APIVersion: section.Key("apiversion").String(),
		SiteID:     site,
		Period:     section.Key("period").String(),
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("profile %q: %w", site, err)
	}
	return cfg, nil
}
