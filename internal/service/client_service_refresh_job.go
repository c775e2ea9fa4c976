package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-pilot-logbook/internal/logger"
)

const defaultRefreshInterval = 5 * time.Minute

type clientRefreshJob struct {
	provider PreferencesProvider
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientRefreshJob creates a job that calls provider.Refresh on a ticker.
// The job is idle until Start is called.
func NewClientRefreshJob(provider PreferencesProvider, logger *logger.Logger) ClientRefreshJob {
	return &clientRefreshJob{provider: provider, logger: logger}
}

// Start implements ClientRefreshJob. When the provider holds a value the
// server has not confirmed yet, the first refresh runs right away. If
// interval is zero or negative it defaults to 5 minutes. The goroutine exits
// when ctx is cancelled or Stop is called.
func (j *clientRefreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()

		if !j.provider.Synced() {
			j.refresh(jobCtx)
		}

		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.refresh(jobCtx)
			}
		}
	}()
}

func (j *clientRefreshJob) refresh(ctx context.Context) {
	if err := j.provider.Refresh(ctx); err != nil && ctx.Err() == nil {
		j.logger.Warn().Err(err).Msg("background preferences refresh failed")
	}
}

// Stop implements ClientRefreshJob. Safe to call when the job is not running.
func (j *clientRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
