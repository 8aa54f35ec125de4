// Package sim drives a replacement policy over an access sequence.
package sim

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rs/xid"

	"github.com/bietkhonhungvandi212/pagesim/internal/storage/buffer"
	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

// State is the lifecycle of a Simulator.
type State int

const (
	NotStarted State = iota
	Running
	Finished
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "NotStarted"
	case Running:
		return "Running"
	case Finished:
		return "Finished"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Simulator runs one pass of an access sequence through a pool.
// It is single use: Start may be called once.
type Simulator struct {
	*HookableBase

	id     string
	pool   *buffer.Pool
	logger *slog.Logger

	state State
	steps []Step
	err   error
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithLogger sets the logger used for run-level messages.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Simulator) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRunID overrides the generated run ID.
func WithRunID(id string) Option {
	return func(s *Simulator) {
		s.id = id
	}
}

// NewSimulator creates a simulator with capacity frames managed by replacer.
func NewSimulator(capacity int, replacer buffer.Replacer, opts ...Option) (*Simulator, error) {
	pool, err := buffer.NewPool(capacity, replacer)
	if err != nil {
		return nil, util.Classify("NewSimulator", err)
	}

	s := &Simulator{
		HookableBase: NewHookableBase(),
		id:           xid.New().String(),
		pool:         pool,
		logger:       slog.Default(),
		state:        NotStarted,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Simulator) ID() string {
	return s.id
}

func (s *Simulator) State() State {
	return s.state
}

// Start processes every access in order. A failed run finishes without a result.
func (s *Simulator) Start(ctx context.Context, accesses []util.PageID) error {
	if s.state != NotStarted {
		return util.Classify("Start", fmt.Errorf("[sim] run %s is %s: %w", s.id, s.state, util.ErrAlreadyStarted))
	}
	if len(accesses) == 0 {
		return util.Classify("Start", util.ErrEmptySequence)
	}

	s.state = Running
	s.steps = make([]Step, 0, len(accesses))
	s.logger.Debug("simulation started",
		"run", s.id, "policy", s.pool.Policy().Title(),
		"frames", s.pool.Capacity(), "accesses", len(accesses))

	for _, pageID := range accesses {
		if err := ctx.Err(); err != nil {
			return s.fail(err)
		}

		res, err := s.pool.Access(pageID)
		if err != nil {
			return s.fail(util.Classify("Start", err))
		}

		step := Step{
			Index:    res.Step,
			PageID:   res.PageID,
			Fault:    res.Fault,
			Evicted:  res.Evicted,
			Victim:   res.Victim,
			FrameIdx: res.FrameIdx,
			Snapshot: s.pool.Snapshot(),
		}
		s.steps = append(s.steps, step)
		s.InvokeHook(HookCtx{Domain: s, Pos: HookPosAccess, Item: step})
	}

	s.state = Finished
	result := s.result()
	s.logger.Debug("simulation finished",
		"run", s.id, "faults", result.Faults(), "accesses", result.Accesses())
	s.InvokeHook(HookCtx{Domain: s, Pos: HookPosFinished, Item: result})
	return nil
}

func (s *Simulator) fail(err error) error {
	s.state = Finished
	s.err = err
	s.steps = nil
	s.logger.Error("simulation aborted", "run", s.id, "error", err)
	return err
}

// Result returns the finished run. It fails before Finished or if the run failed.
func (s *Simulator) Result() (*Result, error) {
	if s.state != Finished {
		return nil, util.Classify("Result", fmt.Errorf("[sim] run %s is %s: %w", s.id, s.state, util.ErrNotFinished))
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.result(), nil
}

func (s *Simulator) result() *Result {
	return &Result{
		RunID:    s.id,
		Policy:   s.pool.Policy(),
		Capacity: s.pool.Capacity(),
		Steps:    s.steps,
		faults:   s.pool.Faults(),
	}
}
