package buffer

import (
	"fmt"

	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

// FrameMeta is the per-frame bookkeeping a replacement policy may use.
type FrameMeta struct {
	Referenced bool   // Second-Chance reference bit
	LastUsed   uint64 // LRU step of the last access
}

type frameDesc struct {
	pageID util.PageID
	meta   FrameMeta
	used   bool
}

// Frames is the read/update view of the frame table handed to replacers.
type Frames interface {
	IsResident(pageID util.PageID) bool
	IsFull() bool
	Len() int
	Meta(pageID util.PageID) (FrameMeta, error)
	Touch(pageID util.PageID, meta FrameMeta) error
	Each(fn func(frameIdx int, pageID util.PageID, meta FrameMeta) bool)
}

// FrameTable tracks which page occupies which frame slot.
type FrameTable struct {
	frames    []frameDesc
	pageToIdx map[util.PageID]int // Map PageID to frame index
	nextFree  []int               // Free list for allocation
	freeHead  int                 // Head of free list
	poolSize  int                 // Total frames
}

// NewFrameTable initializes an empty table of size frames.
func NewFrameTable(size int) (*FrameTable, error) {
	if size <= 0 {
		return nil, fmt.Errorf("[frames] size %d: %w", size, util.ErrInvalidCapacity)
	}
	ft := &FrameTable{
		frames:    make([]frameDesc, size),
		pageToIdx: make(map[util.PageID]int, size),
		nextFree:  make([]int, size),
		freeHead:  0,
		poolSize:  size,
	}
	for i := 0; i < size; i++ {
		ft.nextFree[i] = i + 1
	}
	ft.nextFree[size-1] = -1
	return ft, nil
}

func (ft *FrameTable) Capacity() int {
	return ft.poolSize
}

func (ft *FrameTable) Len() int {
	return len(ft.pageToIdx)
}

func (ft *FrameTable) IsResident(pageID util.PageID) bool {
	_, exists := ft.pageToIdx[pageID]
	return exists
}

func (ft *FrameTable) IsFull() bool {
	return len(ft.pageToIdx) == ft.poolSize
}

// FrameOf returns the slot holding pageID.
func (ft *FrameTable) FrameOf(pageID util.PageID) (int, bool) {
	idx, exists := ft.pageToIdx[pageID]
	return idx, exists
}

// Admit places pageID into a free frame. The most recently freed frame is
// reused first, so an admission after Evict lands in the victim's slot.
func (ft *FrameTable) Admit(pageID util.PageID, meta FrameMeta) (int, error) {
	if ft.IsResident(pageID) {
		return -1, fmt.Errorf("[frames] [Admit] page %d: %w", pageID, util.ErrPageAlreadyResident)
	}
	frameIdx := ft.allocFromFree()
	if frameIdx == -1 {
		return -1, fmt.Errorf("[frames] [Admit] page %d: %w", pageID, util.ErrCapacityExceeded)
	}

	ft.frames[frameIdx] = frameDesc{pageID: pageID, meta: meta, used: true}
	ft.pageToIdx[pageID] = frameIdx
	return frameIdx, nil
}

// Evict removes pageID and returns the frame it occupied.
func (ft *FrameTable) Evict(pageID util.PageID) (int, error) {
	frameIdx, exists := ft.pageToIdx[pageID]
	if !exists {
		return -1, fmt.Errorf("[frames] [Evict] page %d: %w", pageID, util.ErrPageNotResident)
	}

	ft.removePageMapping(pageID)
	ft.frames[frameIdx] = frameDesc{}
	ft.returnFrameToFree(frameIdx)
	return frameIdx, nil
}

// Touch replaces the metadata of a resident page.
func (ft *FrameTable) Touch(pageID util.PageID, meta FrameMeta) error {
	frameIdx, exists := ft.pageToIdx[pageID]
	if !exists {
		return fmt.Errorf("[frames] [Touch] page %d: %w", pageID, util.ErrPageNotResident)
	}
	ft.frames[frameIdx].meta = meta
	return nil
}

func (ft *FrameTable) Meta(pageID util.PageID) (FrameMeta, error) {
	frameIdx, exists := ft.pageToIdx[pageID]
	if !exists {
		return FrameMeta{}, fmt.Errorf("[frames] [Meta] page %d: %w", pageID, util.ErrPageNotResident)
	}
	return ft.frames[frameIdx].meta, nil
}

// Each visits occupied frames in slot order until fn returns false.
func (ft *FrameTable) Each(fn func(frameIdx int, pageID util.PageID, meta FrameMeta) bool) {
	for i := range ft.frames {
		desc := ft.frames[i]
		if !desc.used {
			continue
		}
		if !fn(i, desc.pageID, desc.meta) {
			return
		}
	}
}

// Snapshot returns the resident pages in slot order.
func (ft *FrameTable) Snapshot() []util.PageID {
	snap := make([]util.PageID, 0, len(ft.pageToIdx))
	ft.Each(func(_ int, pageID util.PageID, _ FrameMeta) bool {
		snap = append(snap, pageID)
		return true
	})
	return snap
}

// allocFromFree allocates a free frame index.
func (ft *FrameTable) allocFromFree() int {
	if ft.freeHead == -1 {
		return -1
	}
	freeIdx := ft.freeHead
	ft.freeHead = ft.nextFree[freeIdx]
	ft.nextFree[freeIdx] = -1
	return freeIdx
}

// returnFrameToFree returns a frame to the free list.
func (ft *FrameTable) returnFrameToFree(frameIdx int) {
	if frameIdx >= ft.poolSize || frameIdx < 0 {
		panic(fmt.Sprintf("[frames] [returnFrameToFree] %v: %d", util.ErrOutBoundOfFrame, frameIdx))
	}
	ft.nextFree[frameIdx] = ft.freeHead
	ft.freeHead = frameIdx
}

// removePageMapping removes a page from the pageToIdx map.
func (ft *FrameTable) removePageMapping(pageID util.PageID) {
	delete(ft.pageToIdx, pageID)
}
