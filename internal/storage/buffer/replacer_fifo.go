package buffer

import (
	"container/list"
	"fmt"

	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

// FIFOReplacer evicts pages in admission order. Hits do not reorder the queue.
type FIFOReplacer struct {
	queue *list.List // front is the oldest admission
}

func NewFIFOReplacer() *FIFOReplacer {
	return &FIFOReplacer{queue: list.New()}
}

func (fr *FIFOReplacer) Policy() Policy {
	return PolicyFIFO
}

func (fr *FIFOReplacer) Victim(frames Frames) (util.PageID, error) {
	head := fr.queue.Front()
	if head == nil {
		return 0, fmt.Errorf("[FIFO] [Victim] empty queue: %w", util.ErrNoVictim)
	}
	fr.queue.Remove(head)

	pageID := head.Value.(util.PageID)
	if !frames.IsResident(pageID) {
		return 0, fmt.Errorf("[FIFO] [Victim] queued page %d: %w", pageID, util.ErrPageNotResident)
	}
	return pageID, nil
}

func (fr *FIFOReplacer) Admitted(_ Frames, pageID util.PageID, _ uint64) error {
	fr.queue.PushBack(pageID)
	return nil
}

func (fr *FIFOReplacer) Accessed(Frames, util.PageID, uint64) error {
	return nil
}

// Len reports the queue length.
func (fr *FIFOReplacer) Len() int {
	return fr.queue.Len()
}
