package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistoryKeepsNewest(t *testing.T) {
	h := newHistory(3)
	for _, v := range []string{"a", "b", "c", "d", "e"} {
		h.add("time", v)
	}

	got := make([]string, 0, 3)
	for _, e := range h.Entries() {
		got = append(got, e.Value)
	}
	assert.Equal(t, []string{"c", "d", "e"}, got)
	assert.Equal(t, 5, h.Total())
	assert.Equal(t, 5, h.Entries()[2].Seq)
}

func TestHistoryDisabled(t *testing.T) {
	h := newHistory(0)
	h.add("range", "09:00:00 - 10:00:00")

	assert.Empty(t, h.Entries())
	assert.Equal(t, 1, h.Total())
}

func TestHistoryEntryString(t *testing.T) {
	assert.Equal(t, "  1  time   09:00:00", historyEntry{Seq: 1, Field: "time", Value: "09:00:00"}.String())
	assert.Contains(t, historyEntry{Seq: 2, Field: "range"}.String(), "(cleared)")
}
