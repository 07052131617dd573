package jobs

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Task is the unit of work executed on every tick.
type Task func(context.Context) error

// RefresherConfig configures the periodic execution behaviour.
type RefresherConfig struct {
	Interval   time.Duration
	RunOnStart bool
	Logger     *zap.Logger
}

// Refresher runs a task on a fixed interval until stopped. It replaces
// client-driven polling with a single cancellable server-side schedule.
type Refresher struct {
	name       string
	task       Task
	interval   time.Duration
	runOnStart bool
	logger     *zap.Logger

	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	mu      sync.Mutex
	started bool
}

// NewRefresher builds a refresher for the provided task.
func NewRefresher(name string, task Task, cfg RefresherConfig) *Refresher {
	if cfg.Interval <= 0 {
		cfg.Interval = 30 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return &Refresher{
		name:       name,
		task:       task,
		interval:   cfg.Interval,
		runOnStart: cfg.RunOnStart,
		logger:     cfg.Logger,
	}
}

// Start launches the schedule. Safe to call once.
func (r *Refresher) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.started {
		return
	}
	r.ctx, r.cancel = context.WithCancel(ctx)
	r.wg.Add(1)
	go r.loop()
	r.started = true
	r.logger.Sugar().Infow("refresher started", "refresher", r.name, "interval", r.interval)
}

// Stop cancels the schedule and waits for the loop to exit.
func (r *Refresher) Stop() {
	r.mu.Lock()
	if !r.started {
		r.mu.Unlock()
		return
	}
	r.cancel()
	r.mu.Unlock()
	r.wg.Wait()
	r.logger.Sugar().Infow("refresher stopped", "refresher", r.name)
}

func (r *Refresher) loop() {
	defer r.wg.Done()

	if r.runOnStart {
		r.run()
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.ctx.Done():
			return
		case <-ticker.C:
			r.run()
		}
	}
}

func (r *Refresher) run() {
	start := time.Now()
	if err := r.task(r.ctx); err != nil {
		if r.ctx.Err() != nil {
			return
		}
		r.logger.Sugar().Warnw("refresher task failed", "refresher", r.name, "error", err)
		return
	}
	r.logger.Sugar().Debugw("refresher task completed", "refresher", r.name, "duration", time.Since(start))
}
