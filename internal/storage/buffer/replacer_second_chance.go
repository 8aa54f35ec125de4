package buffer

import (
	"container/list"
	"fmt"

	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

// SecondChanceReplacer is FIFO with a reference bit: a referenced head is
// cleared and moved to the tail instead of being evicted.
type SecondChanceReplacer struct {
	queue *list.List // circular order, front is the next inspected page
}

func NewSecondChanceReplacer() *SecondChanceReplacer {
	return &SecondChanceReplacer{queue: list.New()}
}

func (sc *SecondChanceReplacer) Policy() Policy {
	return PolicySecondChance
}

// Victim sweeps from the head. Every sweep step either evicts or clears one
// bit, so at most Len()+1 inspections are needed.
func (sc *SecondChanceReplacer) Victim(frames Frames) (util.PageID, error) {
	maxLoop := sc.queue.Len() + 1
	for range maxLoop {
		head := sc.queue.Front()
		if head == nil {
			break
		}
		pageID := head.Value.(util.PageID)

		meta, err := frames.Meta(pageID)
		if err != nil {
			return 0, fmt.Errorf("[SecondChance] [Victim] inspect head: %w", err)
		}

		if !meta.Referenced {
			sc.queue.Remove(head)
			return pageID, nil
		}

		meta.Referenced = false
		if err := frames.Touch(pageID, meta); err != nil {
			return 0, fmt.Errorf("[SecondChance] [Victim] clear bit: %w", err)
		}
		sc.queue.MoveToBack(head)
	}

	return 0, fmt.Errorf("[SecondChance] [Victim] can not find the victim with maxLoop %d: %w", maxLoop, util.ErrNoVictim)
}

func (sc *SecondChanceReplacer) Admitted(frames Frames, pageID util.PageID, step uint64) error {
	sc.queue.PushBack(pageID)
	return sc.reference(frames, pageID)
}

func (sc *SecondChanceReplacer) Accessed(frames Frames, pageID util.PageID, _ uint64) error {
	return sc.reference(frames, pageID)
}

func (sc *SecondChanceReplacer) reference(frames Frames, pageID util.PageID) error {
	meta, err := frames.Meta(pageID)
	if err != nil {
		return fmt.Errorf("[SecondChance] [reference] page %d: %w", pageID, err)
	}
	if meta.Referenced {
		return nil
	}
	meta.Referenced = true
	return frames.Touch(pageID, meta)
}

// Order returns the queue from head to tail.
func (sc *SecondChanceReplacer) Order() []util.PageID {
	order := make([]util.PageID, 0, sc.queue.Len())
	for e := sc.queue.Front(); e != nil; e = e.Next() {
		order = append(order, e.Value.(util.PageID))
	}
	return order
}
