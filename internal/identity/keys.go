// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Ilyasov

package identity

import (
	"context"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/tilyasov/bookstore/internal/config"
	"github.com/tilyasov/bookstore/internal/logger"
	"github.com/tilyasov/bookstore/internal/utils"
)

// defaultKeyTTL is used when the provider's response carries no usable
// Cache-Control max-age directive.
const defaultKeyTTL = 30 * time.Minute

// CertKeyStore downloads the identity provider's token-signing certificates
// and caches the extracted RSA public keys in memory.
//
// The provider rotates its keys and publishes the current set as a JSON
// object of key id to PEM-encoded X.509 certificate. The response's
// Cache-Control max-age tells us how long the set may be reused; a lookup
// after that deadline triggers a synchronous re-fetch.
type CertKeyStore struct {
	client   *utils.HTTPClient
	certsURL string
	timeout  time.Duration
	logger   *logger.Logger

	mu      sync.RWMutex
	keys    map[string]*rsa.PublicKey
	staleAt time.Time
}

// NewCertKeyStore constructs a [CertKeyStore] for the configured provider.
// No certificates are fetched until the first lookup or Refresh call.
func NewCertKeyStore(cfg config.Identity, client *utils.HTTPClient, log *logger.Logger) *CertKeyStore {
	log.Debug().Str("certs_url", cfg.CertsURL).Msg("creating signing-certificate store")
	return &CertKeyStore{
		client:   client,
		certsURL: cfg.CertsURL,
		timeout:  cfg.RequestTimeout,
		logger:   log,
		keys:     map[string]*rsa.PublicKey{},
	}
}

// Key returns the RSA public key published under the given key id,
// refreshing the cached set first if it has gone stale. An id absent from a
// fresh set yields [ErrUnknownKeyID].
func (s *CertKeyStore) Key(ctx context.Context, keyID string) (*rsa.PublicKey, error) {
	s.mu.RLock()
	key, found := s.keys[keyID]
	fresh := time.Now().Before(s.staleAt)
	s.mu.RUnlock()

	if found && fresh {
		return key, nil
	}

	if err := s.Refresh(ctx); err != nil {
		// a known key from a stale set is still better than rejecting
		// every request while the provider endpoint is down
		if found {
			s.logger.Warn().Err(err).Str("kid", keyID).Msg("certificate refresh failed, using stale key")
			return key, nil
		}
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	key, found = s.keys[keyID]
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKeyID, keyID)
	}
	return key, nil
}

// Refresh downloads the provider's current certificate set and replaces the
// cached keys. Safe for concurrent use.
func (s *CertKeyStore) Refresh(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	resp, err := s.client.R().
		SetContext(ctx).
		Get(s.certsURL)
	if err != nil {
		log.Err(err).Str("func", "*CertKeyStore.Refresh").Str("url", s.certsURL).Msg("certificate request failed")
		return fmt.Errorf("%w: %w", ErrCertificateFetch, err)
	}
	if resp.IsError() {
		log.Error().Str("func", "*CertKeyStore.Refresh").Int("status", resp.StatusCode()).Msg("certificate endpoint returned error status")
		return fmt.Errorf("%w: unexpected status %d", ErrCertificateFetch, resp.StatusCode())
	}

	var certs map[string]string
	if err = json.Unmarshal(resp.Body(), &certs); err != nil {
		log.Err(err).Str("func", "*CertKeyStore.Refresh").Msg("certificate payload is not a kid→PEM object")
		return fmt.Errorf("%w: %w", ErrCertificateParse, err)
	}

	keys := make(map[string]*rsa.PublicKey, len(certs))
	for kid, pemCert := range certs {
		key, parseErr := publicKeyFromPEM(pemCert)
		if parseErr != nil {
			log.Err(parseErr).Str("func", "*CertKeyStore.Refresh").Str("kid", kid).Msg("skipping unparseable certificate")
			return fmt.Errorf("%w: key %q: %w", ErrCertificateParse, kid, parseErr)
		}
		keys[kid] = key
	}

	ttl := cacheTTL(resp.Header().Get("Cache-Control"))
	now := time.Now()

	s.mu.Lock()
	s.keys = keys
	s.staleAt = now.Add(ttl)
	s.mu.Unlock()

	log.Debug().Int("keys", len(keys)).Dur("ttl", ttl).Msg("signing certificates refreshed")
	return nil
}

// publicKeyFromPEM extracts the RSA public key from a PEM-encoded X.509
// certificate.
func publicKeyFromPEM(pemCert string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(pemCert))
	if block == nil {
		return nil, fmt.Errorf("no PEM block found")
	}

	cert, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("parsing certificate: %w", err)
	}

	key, ok := cert.PublicKey.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("certificate does not carry an RSA public key")
	}
	return key, nil
}

// cacheTTL extracts the max-age directive from a Cache-Control header.
// Missing or malformed directives fall back to defaultKeyTTL.
func cacheTTL(cacheControl string) time.Duration {
	for _, directive := range strings.Split(cacheControl, ",") {
		directive = strings.TrimSpace(directive)
		value, found := strings.CutPrefix(directive, "max-age=")
		if !found {
			continue
		}
		seconds, err := strconv.Atoi(value)
		if err != nil || seconds <= 0 {
			break
		}
		return time.Duration(seconds) * time.Second
	}
	return defaultKeyTTL
}
