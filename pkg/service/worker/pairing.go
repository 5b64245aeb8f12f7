package worker

import (
	"context"
	"time"

	"github.com/secmon-lab/pairup/pkg/utils/logging"
)

// PairingRunner is the subset of the matching use case the worker drives
type PairingRunner interface {
	RunPairingCycle(ctx context.Context) (int, error)
}

// PairingWorker triggers pairing cycles at a fixed interval.
//
// Architecture assumptions:
// - Single server instance (no distributed locking)
// - For horizontal scaling, add distributed locking or leader election
type PairingWorker struct {
	runner   PairingRunner
	interval time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewPairingWorker creates a worker that runs a pairing cycle every interval
func NewPairingWorker(runner PairingRunner, interval time.Duration) *PairingWorker {
	return &PairingWorker{
		runner:   runner,
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background loop. The first cycle fires after one full
// interval; use the match command or the HTTP trigger for an immediate run.
func (w *PairingWorker) Start(ctx context.Context) {
	logging.Default().Info("pairing worker starting", "interval", w.interval.String())
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for completion
func (w *PairingWorker) Stop() {
	logging.Default().Info("pairing worker stopping")
	close(w.stopCh)
	<-w.doneCh
	logging.Default().Info("pairing worker stopped")
}

func (w *PairingWorker) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			count, err := w.runner.RunPairingCycle(ctx)
			if err != nil {
				// Log error and keep the worker alive for the next tick
				logging.Default().Error("pairing cycle failed (will retry next interval)",
					"error", err.Error())
				continue
			}
			logging.Default().Info("scheduled pairing cycle finished", "pairs_notified", count)

		case <-w.stopCh:
			return

		case <-ctx.Done():
			logging.Default().Info("pairing worker context cancelled")
			return
		}
	}
}
