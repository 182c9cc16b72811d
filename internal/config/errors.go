// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Ilyasov

package config

import "errors"

// Sentinel errors reported by [StructuredConfig.validate] when a required
// setting is missing from every configuration source.
var (
	// ErrNoDatabaseDSN is returned when no database connection string was
	// provided via env, flags, or the JSON file.
	ErrNoDatabaseDSN = errors.New("database DSN is not specified")

	// ErrNoIdentityIssuer is returned when the expected token issuer is missing.
	ErrNoIdentityIssuer = errors.New("identity issuer is not specified")

	// ErrNoIdentityAudience is returned when the expected token audience is missing.
	ErrNoIdentityAudience = errors.New("identity audience is not specified")

	// ErrNoIdentityCertsURL is returned when the signing-certificates URL is missing.
	ErrNoIdentityCertsURL = errors.New("identity certs URL is not specified")
)
