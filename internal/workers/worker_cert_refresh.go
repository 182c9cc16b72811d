// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Ilyasov

package workers

import (
	"context"
	"time"

	"github.com/tilyasov/bookstore/internal/identity"
	"github.com/tilyasov/bookstore/internal/logger"
)

// certRefreshWorker keeps the identity verifier's signing-certificate cache
// warm by refreshing it on a fixed interval.
//
// The key store already refreshes itself lazily when a lookup finds the
// cache stale; this worker only moves that cost off the request path so
// callers do not pay the fetch latency after a quiet period.
type certRefreshWorker struct {
	keys     identity.KeySource
	interval time.Duration
	logger   *logger.Logger
}

func newCertRefreshWorker(keys identity.KeySource, interval time.Duration, log *logger.Logger) Worker {
	return &certRefreshWorker{
		keys:     keys,
		interval: interval,
		logger:   log,
	}
}

// Run starts the refresh loop in a background goroutine and returns
// immediately. A non-positive interval disables the worker; lazy refresh on
// lookup still applies.
func (w *certRefreshWorker) Run() {
	if w.interval <= 0 {
		w.logger.Warn().Msg("certificate refresh worker disabled: no interval configured")
		return
	}

	w.logger.Info().Dur("interval", w.interval).Msg("certificate refresh worker started")
	go w.loop()
}

func (w *certRefreshWorker) loop() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for range ticker.C {
		w.refresh()
	}
}

func (w *certRefreshWorker) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), w.interval)
	defer cancel()

	if err := w.keys.Refresh(ctx); err != nil {
		// keep ticking: the provider endpoint being down now does not
		// mean it will be down on the next interval
		w.logger.Err(err).Str("func", "*certRefreshWorker.refresh").Msg("background certificate refresh failed")
		return
	}

	w.logger.Debug().Msg("background certificate refresh completed")
}
