package handlers

import "github.com/danielgtaylor/huma/v2"

// NewAPIConfig returns the huma config shared by the service and its tests.
// The create hooks are dropped so responses carry no $schema field or Link header.
func NewAPIConfig() huma.Config {
	cfg := huma.DefaultConfig("URL Shortener", "1.0.0")
	cfg.CreateHooks = nil

	return cfg
}
