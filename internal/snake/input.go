package snake

// InputBuffer holds the direction intent collected between two ticks.
// Only the latest accepted intent survives until the next Consume, and an
// intent that would reverse the snake onto itself is dropped.
type InputBuffer struct {
	lastApplied Direction
	pending     Direction
	hasPending  bool
}

// NewInputBuffer returns a buffer whose last applied direction is initial.
func NewInputBuffer(initial Direction) *InputBuffer {
	return &InputBuffer{lastApplied: initial}
}

// Submit records d as the candidate for the next tick. It returns false,
// leaving any earlier candidate in place, when d is invalid or the reverse
// of the last applied direction.
func (b *InputBuffer) Submit(d Direction) bool {
	if !d.Valid() || d.Opposite() == b.lastApplied {
		return false
	}
	b.pending = d
	b.hasPending = true
	return true
}

// Consume returns the direction to apply this tick and clears the buffer.
// The candidate is checked again against the last applied direction because
// the snake may have turned since it was submitted.
func (b *InputBuffer) Consume() Direction {
	d := b.lastApplied
	if b.hasPending && b.pending.Valid() && b.pending.Opposite() != b.lastApplied {
		d = b.pending
	}
	b.pending = 0
	b.hasPending = false
	b.lastApplied = d
	return d
}

// Reset drops any candidate and sets the last applied direction.
func (b *InputBuffer) Reset(d Direction) {
	b.lastApplied = d
	b.pending = 0
	b.hasPending = false
}

// LastApplied returns the direction used by the most recent tick.
func (b *InputBuffer) LastApplied() Direction {
	return b.lastApplied
}

// Pending returns the buffered candidate, if any.
func (b *InputBuffer) Pending() (Direction, bool) {
	return b.pending, b.hasPending
}
