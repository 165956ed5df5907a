package app

import (
	"sync"
	"time"

	"muse/internal/logger"
)

// Step is one named stage of the launch sequence.
type Step struct {
	Name string
	Run  func()
}

// Lifecycle runs the launch sequence once, in order, and records teardown.
type Lifecycle struct {
	logger     logger.Logger
	mu         sync.Mutex
	launched   bool
	isShutdown bool
}

func NewLifecycle(log logger.Logger) *Lifecycle {
	return &Lifecycle{logger: log}
}

func (l *Lifecycle) Launch(steps []Step) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.launched {
		return
	}
	l.launched = true

	start := time.Now()
	for _, step := range steps {
		step.Run()
		l.logger.Debug("Lifecycle", "launch step completed", map[string]interface{}{
			"step": step.Name,
		})
	}

	l.logger.Info("Lifecycle", "launch sequence completed", map[string]interface{}{
		"steps":       len(steps),
		"duration_ms": time.Since(start).Milliseconds(),
	})
}

func (l *Lifecycle) Terminate() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.isShutdown {
		return
	}
	l.isShutdown = true
	l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
}

func (l *Lifecycle) Launched() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.launched
}

func (l *Lifecycle) Terminated() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.isShutdown
}
