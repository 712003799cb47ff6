package gui

import (
	"slices"
)

// ChestWidth is the number of columns of a generic chest menu.
const ChestWidth = 9

// Section is a fixed set of slot indices.
type Section struct {
	slots map[int]struct{}
}

// NewSection returns a section holding exactly the given slots.
func NewSection(slots ...int) *Section {
	s := &Section{slots: make(map[int]struct{}, len(slots))}
	for _, slot := range slots {
		if slot >= 0 {
			s.slots[slot] = struct{}{}
		}
	}
	return s
}

// SectionRange returns the slots from..to inclusive.
func SectionRange(from, to int) *Section {
	s := NewSection()
	for i := from; i <= to; i++ {
		if i >= 0 {
			s.slots[i] = struct{}{}
		}
	}
	return s
}

// SectionRect returns the rectangle between two (row, column) corners of a
// 9-wide grid, inclusive.
func SectionRect(startRow, startCol, endRow, endCol int) *Section {
	if startRow > endRow {
		startRow, endRow = endRow, startRow
	}
	if startCol > endCol {
		startCol, endCol = endCol, startCol
	}
	startCol = max(startCol, 0)
	endCol = min(endCol, ChestWidth-1)

	s := NewSection()
	for r := max(startRow, 0); r <= endRow; r++ {
		for c := startCol; c <= endCol; c++ {
			s.slots[r*ChestWidth+c] = struct{}{}
		}
	}
	return s
}

func (s *Section) ContainsSlot(slot int) bool {
	_, ok := s.slots[slot]
	return ok
}

// Slots returns the slots in ascending order.
func (s *Section) Slots() []int {
	out := make([]int, 0, len(s.slots))
	for slot := range s.slots {
		out = append(out, slot)
	}
	slices.Sort(out)
	return out
}

func (s *Section) Len() int { return len(s.slots) }
