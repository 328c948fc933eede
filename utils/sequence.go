package utils

import "sync/atomic"

// Sequence hands out monotonically increasing integer ids. The zero value starts
// at 1. Safe for concurrent use.
type Sequence struct {
	n atomic.Int64
}

// NewSequence creates a sequence whose first id is start.
func NewSequence(start int) *Sequence {
	s := &Sequence{}
	s.n.Store(int64(start) - 1)
	return s
}

// Next returns the next id in the sequence.
func (s *Sequence) Next() int {
	return int(s.n.Add(1))
}
