package page

import (
	"bytes"
	"fmt"
	"strconv"

	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

// Sequence is an ordered list of page accesses.
type Sequence []util.PageID

// Serialize packs the sequence as space separated page numbers.
func (s Sequence) Serialize() []byte {
	return []byte(Join(s))
}

// Deserialize parses whitespace separated non-negative integers.
func Deserialize(data []byte) (Sequence, error) {
	fields := bytes.Fields(data)
	if len(fields) == 0 {
		return nil, util.ErrEmptySequence
	}

	seq := make(Sequence, 0, len(fields))
	for i, field := range fields {
		n, err := strconv.ParseUint(string(field), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("token %d %q: %w", i+1, field, util.ErrInvalidAccess)
		}
		seq = append(seq, util.PageID(n))
	}
	return seq, nil
}

// Distinct counts the different pages in the sequence.
func (s Sequence) Distinct() int {
	seen := make(map[util.PageID]struct{}, len(s))
	for _, id := range s {
		seen[id] = struct{}{}
	}
	return len(seen)
}
