package buffer

import (
	"fmt"

	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

// LRUReplacer evicts the resident page with the smallest LastUsed step.
// Steps are unique per access, so ties only arise from corrupted metadata;
// they resolve to the lowest frame slot.
type LRUReplacer struct{}

func NewLRUReplacer() *LRUReplacer {
	return &LRUReplacer{}
}

func (lr *LRUReplacer) Policy() Policy {
	return PolicyLRU
}

func (lr *LRUReplacer) Victim(frames Frames) (util.PageID, error) {
	var (
		victim util.PageID
		oldest uint64
		found  bool
	)
	frames.Each(func(_ int, pageID util.PageID, meta FrameMeta) bool {
		if !found || meta.LastUsed < oldest {
			victim, oldest, found = pageID, meta.LastUsed, true
		}
		return true
	})
	if !found {
		return 0, fmt.Errorf("[LRU] [Victim] no resident page: %w", util.ErrNoVictim)
	}
	return victim, nil
}

func (lr *LRUReplacer) Admitted(frames Frames, pageID util.PageID, step uint64) error {
	return lr.Accessed(frames, pageID, step)
}

func (lr *LRUReplacer) Accessed(frames Frames, pageID util.PageID, step uint64) error {
	meta, err := frames.Meta(pageID)
	if err != nil {
		return fmt.Errorf("[LRU] [Accessed] page %d: %w", pageID, err)
	}
	meta.LastUsed = step
	return frames.Touch(pageID, meta)
}
