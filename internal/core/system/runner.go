package system

import (
	"fmt"

	"go.uber.org/zap"
)

// Runner holds systems in registration order and drives the init and
// execute phases. Single-goroutine access only.
type Runner struct {
	systems     []System
	initialized bool
	ticks       uint64
	log         *zap.Logger
}

func NewRunner(log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{
		systems: make([]System, 0, 16),
		log:     log,
	}
}

func (r *Runner) Register(s System) {
	r.systems = append(r.systems, s)
}

// Init runs every Initializer in registration order. Only the first call
// does anything; the first failing system aborts the phase.
func (r *Runner) Init() error {
	if r.initialized {
		return nil
	}
	r.initialized = true
	for _, s := range r.systems {
		is, ok := s.(Initializer)
		if !ok {
			continue
		}
		r.log.Debug("system init", zap.String("system", s.Name()))
		if err := is.Init(); err != nil {
			return fmt.Errorf("init %s: %w", s.Name(), err)
		}
	}
	return nil
}

// Update runs every Executor once, in registration order. The init phase
// runs first if it has not run yet.
func (r *Runner) Update() error {
	if !r.initialized {
		if err := r.Init(); err != nil {
			return err
		}
	}
	r.ticks++
	r.log.Debug("system tick", zap.Uint64("tick", r.ticks))
	for _, s := range r.systems {
		es, ok := s.(Executor)
		if !ok {
			continue
		}
		if err := es.Execute(); err != nil {
			return fmt.Errorf("tick %d: execute %s: %w", r.ticks, s.Name(), err)
		}
	}
	return nil
}

func (r *Runner) Initialized() bool { return r.initialized }

// Ticks returns how many times Update has been called.
func (r *Runner) Ticks() uint64 { return r.ticks }

func (r *Runner) Len() int { return len(r.systems) }
