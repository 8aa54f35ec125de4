package buffer

import (
	"fmt"

	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

// AccessResult describes what one access did to the pool.
type AccessResult struct {
	Step     uint64
	PageID   util.PageID
	Fault    bool
	Evicted  bool
	Victim   util.PageID
	FrameIdx int
}

// Pool pairs a frame table with the replacer that manages it.
type Pool struct {
	frames   *FrameTable
	replacer Replacer
	step     uint64 // index of the next access
	faults   int
}

func NewPool(size int, replacer Replacer) (*Pool, error) {
	if replacer == nil {
		return nil, fmt.Errorf("[pool] nil replacer: %w", util.ErrInvalidPolicy)
	}
	frames, err := NewFrameTable(size)
	if err != nil {
		return nil, err
	}
	return &Pool{
		frames:   frames,
		replacer: replacer,
	}, nil
}

// Access references pageID, faulting it in and evicting a victim if needed.
func (p *Pool) Access(pageID util.PageID) (AccessResult, error) {
	res := AccessResult{Step: p.step, PageID: pageID, FrameIdx: -1}

	if frameIdx, exists := p.frames.FrameOf(pageID); exists {
		if err := p.replacer.Accessed(p.frames, pageID, p.step); err != nil {
			return res, fmt.Errorf("[pool] [Access] hit on page %d: %w", pageID, err)
		}
		res.FrameIdx = frameIdx
		p.step++
		return res, nil
	}

	res.Fault = true
	p.faults++

	if p.frames.IsFull() {
		victim, err := p.replacer.Victim(p.frames)
		if err != nil {
			return res, fmt.Errorf("[pool] [Access] select victim: %w", err)
		}
		if _, err := p.frames.Evict(victim); err != nil {
			return res, fmt.Errorf("[pool] [Access] evict victim: %w", err)
		}
		res.Evicted = true
		res.Victim = victim
	}

	frameIdx, err := p.frames.Admit(pageID, FrameMeta{Referenced: true, LastUsed: p.step})
	if err != nil {
		return res, fmt.Errorf("[pool] [Access] admit: %w", err)
	}
	if err := p.replacer.Admitted(p.frames, pageID, p.step); err != nil {
		return res, fmt.Errorf("[pool] [Access] record admission: %w", err)
	}
	if err := p.replacer.Accessed(p.frames, pageID, p.step); err != nil {
		return res, fmt.Errorf("[pool] [Access] record access: %w", err)
	}

	res.FrameIdx = frameIdx
	p.step++
	return res, nil
}

func (p *Pool) Snapshot() []util.PageID {
	return p.frames.Snapshot()
}

func (p *Pool) Faults() int {
	return p.faults
}

func (p *Pool) Accesses() uint64 {
	return p.step
}

func (p *Pool) Capacity() int {
	return p.frames.Capacity()
}

func (p *Pool) Policy() Policy {
	return p.replacer.Policy()
}
