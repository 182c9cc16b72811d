// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Ilyasov

package config

import "errors"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The database DSN and the identity-provider parameters have no sensible
// defaults, so their absence is a fatal misconfiguration.
//
// Returns nil if the configuration is valid, or the joined set of all
// violations otherwise.
func (cfg *StructuredConfig) validate() error {
	var err error

	if cfg.Storage.DB.DSN == "" {
		err = errors.Join(err, ErrNoDatabaseDSN)
	}
	if cfg.Identity.Issuer == "" {
		err = errors.Join(err, ErrNoIdentityIssuer)
	}
	if cfg.Identity.Audience == "" {
		err = errors.Join(err, ErrNoIdentityAudience)
	}
	if cfg.Identity.CertsURL == "" {
		err = errors.Join(err, ErrNoIdentityCertsURL)
	}

	return err
}
