package sim

import (
	"github.com/bietkhonhungvandi212/pagesim/internal/storage/buffer"
	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

// Step records one access and the occupancy right after it.
type Step struct {
	Index    uint64
	PageID   util.PageID
	Fault    bool
	Evicted  bool
	Victim   util.PageID
	FrameIdx int
	Snapshot []util.PageID
}

// Result is the outcome of a finished simulation.
type Result struct {
	RunID    string
	Policy   buffer.Policy
	Capacity int
	Steps    []Step
	faults   int
}

func (r *Result) Snapshots() [][]util.PageID {
	snaps := make([][]util.PageID, len(r.Steps))
	for i, step := range r.Steps {
		snaps[i] = step.Snapshot
	}
	return snaps
}

func (r *Result) Faults() int {
	return r.faults
}

func (r *Result) Accesses() int {
	return len(r.Steps)
}
