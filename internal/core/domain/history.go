package domain

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one recorded transaction in an account's history.
type Entry struct {
	ID     uuid.UUID       `json:"id"`
	Kind   TransactionKind `json:"kind"`
	Amount int64           `json:"amount"`
	At     time.Time       `json:"at"`
}

// History is the append-only chronological log of an account's recorded
// transactions. Entries are never edited or removed; order is append
// order.
type History struct {
	entries []Entry
}

func NewHistory() *History {
	return &History{}
}

// Append adds a record to the end of the log. The caller (the
// transaction protocol) only appends after the account confirmed the
// balance change, so no validation happens here.
func (h *History) Append(e Entry) {
	h.entries = append(h.entries, e)
}

// All returns a copy of the log in chronological order.
func (h *History) All() []Entry {
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len reports how many transactions were recorded.
func (h *History) Len() int {
	return len(h.entries)
}

// CountOnDay counts recorded transactions of the given kind on the same
// calendar day as ref. The count is always recomputed from the log so it
// can never drift from the entries.
func (h *History) CountOnDay(kind TransactionKind, ref time.Time) int {
	y, m, d := ref.Date()
	n := 0
	for _, e := range h.entries {
		ey, em, ed := e.At.Date()
		if e.Kind == kind && ey == y && em == m && ed == d {
			n++
		}
	}
	return n
}
