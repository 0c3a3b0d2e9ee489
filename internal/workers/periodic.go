package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/notes-keeper/internal/logger"
)

type periodicWorker struct {
	name     string
	interval time.Duration
	task     func(ctx context.Context)

	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPeriodicWorker returns a Worker that calls task every interval. A zero
// or negative interval disables the worker: Start does nothing.
func NewPeriodicWorker(name string, interval time.Duration, task func(ctx context.Context), logger *logger.Logger) Worker {
	return &periodicWorker{
		name:     name,
		interval: interval,
		task:     task,
		logger:   logger,
	}
}

// Start stops a previous run, then ticks until ctx is cancelled or Stop is
// called. The first call to task happens one interval after Start.
func (p *periodicWorker) Start(ctx context.Context) {
	if p.interval <= 0 {
		p.logger.Debug().Str("worker", p.name).Msg("worker disabled")
		return
	}

	p.Stop()

	p.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	p.logger.Debug().Str("worker", p.name).Dur("interval", p.interval).Msg("worker started")

	go func() {
		defer p.wg.Done()
		t := time.NewTicker(p.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				p.task(jobCtx)
			}
		}
	}()
}

func (p *periodicWorker) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}
