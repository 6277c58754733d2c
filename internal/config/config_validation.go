// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Notepad API Authors

package config

import "time"

const (
	defaultHTTPAddress    = ":8080"
	defaultTokenIssuer    = "notepad-api"
	defaultTokenDuration  = 30 * time.Minute
	defaultRequestTimeout = 30 * time.Second
)

// applyDefaults fills in optional settings left empty by every source.
// The token signing key and DSN deliberately have no defaults; validate
// rejects a config that omits them.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
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
