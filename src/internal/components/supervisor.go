package components

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/maksimkurb/keen-menu/src/internal/log"
)

// Supervisor runs a function in a goroutine and restarts it when it fails or
// panics, so a crashed serve loop does not take the process down with it.
type Supervisor struct {
	name           string
	runFunc        func(ctx context.Context) error
	mu             sync.RWMutex
	running        bool
	cancel         context.CancelFunc
	done           chan struct{}
	lastError      error
	restartCount   int
	maxRestarts    int           // 0 means unlimited
	restartBackoff time.Duration // Initial backoff duration
	maxBackoff     time.Duration // Maximum backoff duration
}

// SupervisorConfig contains configuration for Supervisor.
type SupervisorConfig struct {
	Name           string
	MaxRestarts    int           // 0 = unlimited restarts
	RestartBackoff time.Duration // Initial backoff (default: 1s)
	MaxBackoff     time.Duration // Max backoff (default: 30s)
}

// NewSupervisor creates a supervisor for runFunc. runFunc should return nil on
// a clean exit and watch ctx for shutdown.
func NewSupervisor(cfg SupervisorConfig, runFunc func(ctx context.Context) error) *Supervisor {
	if cfg.RestartBackoff == 0 {
		cfg.RestartBackoff = 1 * time.Second
	}
	if cfg.MaxBackoff == 0 {
		cfg.MaxBackoff = 30 * time.Second
	}

	return &Supervisor{
		name:           cfg.Name,
		runFunc:        runFunc,
		maxRestarts:    cfg.MaxRestarts,
		restartBackoff: cfg.RestartBackoff,
		maxBackoff:     cfg.MaxBackoff,
	}
}

// Start launches the run loop.
func (s *Supervisor) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("%s is already running", s.name)
	}

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})
	s.running = true
	s.restartCount = 0
	s.lastError = nil

	go s.loop(runCtx, s.done)

	return nil
}

// Stop cancels the run loop and waits up to timeout for it to finish.
func (s *Supervisor) Stop(timeout time.Duration) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	cancel := s.cancel
	done := s.done
	s.mu.Unlock()

	cancel()

	select {
	case <-done:
	case <-time.After(timeout):
		return fmt.Errorf("%s: timeout waiting for stop", s.name)
	}

	return nil
}

// Done is closed when the run loop exits.
func (s *Supervisor) Done() <-chan struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.done
}

// IsRunning returns true while the run loop is active.
func (s *Supervisor) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// LastError returns the error of the last run.
func (s *Supervisor) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastError
}

// RestartCount returns the number of restarts so far.
func (s *Supervisor) RestartCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.restartCount
}

func (s *Supervisor) loop(ctx context.Context, done chan struct{}) {
	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
		close(done)
	}()

	backoff := s.restartBackoff

	for {
		err := s.runWithRecovery(ctx)

		s.mu.Lock()
		s.lastError = err
		s.mu.Unlock()

		if err == nil {
			log.Debugf("%s: exited cleanly", s.name)
			return
		}

		if ctx.Err() != nil {
			log.Debugf("%s: stopped", s.name)
			return
		}

		s.mu.Lock()
		s.restartCount++
		restartCount := s.restartCount
		s.mu.Unlock()

		if s.maxRestarts > 0 && restartCount > s.maxRestarts {
			log.Errorf("%s: max restarts (%d) reached, giving up. Last error: %v", s.name, s.maxRestarts, err)
			return
		}

		log.Errorf("%s: crashed with error: %v. Restarting in %v (restart #%d)", s.name, err, backoff, restartCount)

		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}

		backoff *= 2
		if backoff > s.maxBackoff {
			backoff = s.maxBackoff
		}
	}
}

func (s *Supervisor) runWithRecovery(ctx context.Context) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("panic: %v", recovered)
		}
	}()

	return s.runFunc(ctx)
}
