package workers

import (
	"context"
	"time"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop stops the workers that implement [Stopper], last started first.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		if s, ok := w.workers[i].(Stopper); ok {
			s.Stop()
		}
	}
}

type periodicWorker struct {
	ctx      context.Context
	job      Job
	interval time.Duration
}

// NewPeriodicWorker wraps job so that Run starts it with ctx and interval.
func NewPeriodicWorker(ctx context.Context, job Job, interval time.Duration) Worker {
	return &periodicWorker{ctx: ctx, job: job, interval: interval}
}

func (p *periodicWorker) Run() {
	p.job.Start(p.ctx, p.interval)
}

func (p *periodicWorker) Stop() {
	p.job.Stop()
}
