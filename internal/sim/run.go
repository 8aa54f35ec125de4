package sim

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bietkhonhungvandi212/pagesim/internal/storage/buffer"
	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

// Params is the input a caller supplies for one run.
type Params struct {
	Capacity int
	Policy   buffer.Policy
	Logger   *slog.Logger
	Hooks    []Hook
}

// Validate reports configuration and sequence errors before anything runs.
func (p Params) Validate(accesses []util.PageID) error {
	if p.Capacity <= 0 {
		return util.Classify("Validate", fmt.Errorf("memory size %d: %w", p.Capacity, util.ErrInvalidCapacity))
	}
	if !p.Policy.Valid() {
		return util.Classify("Validate", fmt.Errorf("%w: %v", util.ErrInvalidPolicy, p.Policy))
	}
	if len(accesses) == 0 {
		return util.Classify("Validate", util.ErrEmptySequence)
	}
	return nil
}

// Run validates params, simulates accesses and returns the finished result.
func Run(ctx context.Context, params Params, accesses []util.PageID) (*Result, error) {
	if err := params.Validate(accesses); err != nil {
		return nil, err
	}

	replacer, err := buffer.NewReplacer(params.Policy)
	if err != nil {
		return nil, util.Classify("Run", err)
	}

	s, err := NewSimulator(params.Capacity, replacer, WithLogger(params.Logger))
	if err != nil {
		return nil, err
	}
	for _, hook := range params.Hooks {
		s.AcceptHook(hook)
	}

	if err := s.Start(ctx, accesses); err != nil {
		return nil, err
	}
	return s.Result()
}
