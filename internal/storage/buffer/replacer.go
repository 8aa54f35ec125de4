package buffer

import (
	"fmt"
	"strings"

	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

// Replacer defines the contract for page replacement policies.
type Replacer interface {
	Policy() Policy
	// Victim picks the resident page to evict. Only called when frames is full.
	Victim(frames Frames) (util.PageID, error)
	// Admitted records that pageID was just placed into frames at step.
	Admitted(frames Frames, pageID util.PageID, step uint64) error
	// Accessed records a reference to a resident page at step.
	Accessed(frames Frames, pageID util.PageID, step uint64) error
}

// Policy selects a replacement algorithm.
type Policy int

const (
	PolicyFIFO Policy = iota
	PolicySecondChance
	PolicyLRU
)

// Policies lists every supported policy in code order.
var Policies = []Policy{PolicyFIFO, PolicySecondChance, PolicyLRU}

// String returns the short code used in output file names.
func (p Policy) String() string {
	switch p {
	case PolicyFIFO:
		return "fifo"
	case PolicySecondChance:
		return "second"
	case PolicyLRU:
		return "lru"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// Title is the human readable name.
func (p Policy) Title() string {
	switch p {
	case PolicyFIFO:
		return "FIFO"
	case PolicySecondChance:
		return "Second-Chance"
	case PolicyLRU:
		return "LRU"
	default:
		return p.String()
	}
}

func (p Policy) Valid() bool {
	return p >= PolicyFIFO && p <= PolicyLRU
}

// ParsePolicy accepts the numeric codes 0, 1, 2 or a policy name.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "0", "fifo":
		return PolicyFIFO, nil
	case "1", "second", "second-chance", "secondchance", "sc":
		return PolicySecondChance, nil
	case "2", "lru":
		return PolicyLRU, nil
	}
	return 0, fmt.Errorf("%w %q, use 0 (fifo), 1 (second) or 2 (lru)", util.ErrInvalidPolicy, s)
}

// NewReplacer creates the replacer for policy.
func NewReplacer(policy Policy) (Replacer, error) {
	switch policy {
	case PolicyFIFO:
		return NewFIFOReplacer(), nil
	case PolicySecondChance:
		return NewSecondChanceReplacer(), nil
	case PolicyLRU:
		return NewLRUReplacer(), nil
	}
	return nil, fmt.Errorf("%w: %v", util.ErrInvalidPolicy, policy)
}
