// SPDX-License-Identifier: Apache-2.0

package config

import "time"

// Defaults applied when no source supplied a value. The frontend dev hosts
// mirror the origins served by the reference single-page client.
const (
	defaultHTTPAddress    = "localhost:8080"
	defaultRequestTimeout = 30 * time.Second
	defaultAdvisorModel   = "gemini-2.5-flash"
	defaultAdvisorTimeout = 30 * time.Second
	defaultTokenIssuer    = "go-car-market"
	defaultTokenDuration  = 24 * time.Hour
)

var defaultAllowedOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
	"http://localhost:5173",
	"http://127.0.0.1:5173",
}

// applyDefaults fills zero-valued fields of the merged configuration.
// It never overrides values supplied by env, flags, or the JSON file.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = defaultAllowedOrigins
	}
	if cfg.Advisor.Model == "" {
		cfg.Advisor.Model = defaultAdvisorModel
	}
	if cfg.Advisor.Timeout == 0 {
		cfg.Advisor.Timeout = defaultAdvisorTimeout
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
