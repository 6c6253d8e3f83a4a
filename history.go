package main

import "fmt"

// historyEntry records one commit raised by a field.
type historyEntry struct {
	Seq   int
	Field string
	Value string
}

func (e historyEntry) String() string {
	v := e.Value
	if v == "" {
		v = "(cleared)"
	}
	return fmt.Sprintf("%3d  %-6s %s", e.Seq, e.Field, v)
}

// history keeps the most recent commits, newest last.
type history struct {
	limit   int
	seq     int
	entries []historyEntry
}

func newHistory(limit int) history {
	return history{limit: limit}
}

func (h *history) add(field, value string) {
	h.seq++
	if h.limit <= 0 {
		return
	}
	h.entries = append(h.entries, historyEntry{Seq: h.seq, Field: field, Value: value})
	if over := len(h.entries) - h.limit; over > 0 {
		h.entries = append(h.entries[:0:0], h.entries[over:]...)
	}
}

// Total counts every commit seen, including ones that fell off the list.
func (h history) Total() int { return h.seq }

func (h history) Entries() []historyEntry { return h.entries }
