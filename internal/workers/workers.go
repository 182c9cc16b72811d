package workers

import (
	"github.com/tilyasov/bookstore/internal/config"
	"github.com/tilyasov/bookstore/internal/identity"
	"github.com/tilyasov/bookstore/internal/logger"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles every background worker of the application.
func NewWorkers(keys identity.KeySource, cfg config.Workers, log *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			newCertRefreshWorker(keys, cfg.CertRefreshInterval, log),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
