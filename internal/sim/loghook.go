package sim

import (
	"context"
	"log/slog"

	"github.com/bietkhonhungvandi212/pagesim/internal/storage/page"
)

// StepLogger is a hook that writes every step to a slog logger at debug level.
type StepLogger struct {
	logger *slog.Logger
}

// NewStepLogger returns a StepLogger writing into logger.
func NewStepLogger(logger *slog.Logger) *StepLogger {
	return &StepLogger{logger: logger}
}

// Func writes the step information into the logger
func (h *StepLogger) Func(ctx HookCtx) {
	if ctx.Pos != HookPosAccess {
		return
	}

	step, ok := ctx.Item.(Step)
	if !ok {
		return
	}
	if !h.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}

	attrs := []any{
		"step", step.Index,
		"page", step.PageID,
		"fault", step.Fault,
		"frame", step.FrameIdx,
		"memory", page.Join(step.Snapshot),
	}
	if step.Evicted {
		attrs = append(attrs, "victim", step.Victim)
	}
	h.logger.Debug("access", attrs...)
}
