package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Task is a long-running unit of work owned by the pool. It must return once
// ctx is cancelled.
type Task func(ctx context.Context) error

// Pool runs the process's long-lived goroutines (servers, probes) under one
// cancellable context. The first task to fail cancels the others.
type Pool struct {
	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
	logger *slog.Logger

	mu  sync.Mutex
	err error
}

// NewPool creates a new worker pool derived from parent
func NewPool(parent context.Context, logger *slog.Logger) *Pool {
	ctx, cancel := context.WithCancel(parent)
	return &Pool{
		ctx:    ctx,
		cancel: cancel,
		logger: logger,
	}
}

// Submit starts a named task and tracks it
func (p *Pool) Submit(name string, task Task) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		p.logger.Debug("▶️ [Worker] Task started", "task", name)
		if err := task(p.ctx); err != nil {
			p.logger.Error("❌ [Worker] Task failed", "task", name, "error", err)
			p.fail(err)
			return
		}
		p.logger.Debug("⏹️ [Worker] Task stopped", "task", name)
	}()
}

// Every runs task immediately and then once per interval until the pool
// stops. Each run gets at most one interval to finish.
func (p *Pool) Every(name string, interval time.Duration, task func(ctx context.Context)) {
	p.Submit(name, func(ctx context.Context) error {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			runCtx, cancel := context.WithTimeout(ctx, interval)
			task(runCtx)
			cancel()

			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
			}
		}
	})
}

// Context returns the pool's context
func (p *Pool) Context() context.Context {
	return p.ctx
}

// Done is closed when the pool is shut down or a task has failed
func (p *Pool) Done() <-chan struct{} {
	return p.ctx.Done()
}

// Err returns the first task failure, if any
func (p *Pool) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

func (p *Pool) fail(err error) {
	p.mu.Lock()
	if p.err == nil {
		p.err = err
	}
	p.mu.Unlock()
	p.cancel()
}

// Shutdown signals all tasks to stop and waits up to timeout for them. It
// reports whether every task returned in time.
func (p *Pool) Shutdown(timeout time.Duration) bool {
	p.logger.Info("🛑 [Worker] Initiating graceful shutdown...")

	p.cancel()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.logger.Info("✅ [Worker] All background tasks completed")
		return true
	case <-time.After(timeout):
		p.logger.Warn("⚠️ [Worker] Shutdown timeout exceeded, some tasks may not have completed",
			"timeout", timeout,
		)
		return false
	}
}
