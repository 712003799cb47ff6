package gui

import (
	"errors"
	"testing"

	"github.com/go-mclib/guiframework/pkg/item"
)

func TestSectionRect(t *testing.T) {
	s := SectionRect(1, 1, 2, 3)
	want := []int{10, 11, 12, 19, 20, 21}

	got := s.Slots()
	if len(got) != len(want) {
		t.Fatalf("Slots() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Slots() = %v, want %v", got, want)
		}
	}

	for _, slot := range []int{0, 9, 13, 18, 22, 28} {
		if s.ContainsSlot(slot) {
			t.Errorf("ContainsSlot(%d) = true, want false", slot)
		}
	}
}

func TestSectionRectSwappedCorners(t *testing.T) {
	a := SectionRect(2, 3, 1, 1)
	b := SectionRect(1, 1, 2, 3)
	if a.Len() != b.Len() {
		t.Errorf("swapped corners Len() = %d, want %d", a.Len(), b.Len())
	}
}

func TestSectionRangeAndExplicit(t *testing.T) {
	r := SectionRange(3, 5)
	for slot, want := range map[int]bool{2: false, 3: true, 4: true, 5: true, 6: false} {
		if got := r.ContainsSlot(slot); got != want {
			t.Errorf("SectionRange(3,5).ContainsSlot(%d) = %v, want %v", slot, got, want)
		}
	}

	e := NewSection(1, 7, -4)
	if e.Len() != 2 || !e.ContainsSlot(7) || e.ContainsSlot(-4) {
		t.Errorf("NewSection(1, 7, -4) = %v", e.Slots())
	}
}

func TestEditFilters(t *testing.T) {
	diamond := item.MustMaterial("diamond")
	dirt := item.MustMaterial("dirt")

	white := NewEditFilters(Whitelist, diamond)
	if !white.CanInteractWith(diamond) || white.CanInteractWith(dirt) {
		t.Errorf("whitelist{diamond}: diamond=%v dirt=%v", white.CanInteractWith(diamond), white.CanInteractWith(dirt))
	}

	black := NewEditFilters(Blacklist, diamond)
	if black.CanInteractWith(diamond) || !black.CanInteractWith(dirt) {
		t.Errorf("blacklist{diamond}: diamond=%v dirt=%v", black.CanInteractWith(diamond), black.CanInteractWith(dirt))
	}
}

func TestParseEditFilters(t *testing.T) {
	f, err := ParseEditFilters(Whitelist, "diamond", "minecraft:emerald")
	if err != nil {
		t.Fatalf("ParseEditFilters() error: %v", err)
	}
	if !f.CanInteractWith(item.MustMaterial("emerald")) {
		t.Errorf("parsed whitelist rejects emerald")
	}

	if _, err := ParseEditFilters(Blacklist, "diamond", "nope_not_an_item"); !errors.Is(err, item.ErrUnknownMaterial) {
		t.Errorf("ParseEditFilters(unknown) error = %v, want ErrUnknownMaterial", err)
	}
}

func TestClickActionString(t *testing.T) {
	if got := ActionTransitionForwards.String(); got != "TRANSITION_FORWARDS" {
		t.Errorf("String() = %q", got)
	}
	if got := ClickAction(99).String(); got != "NONE" {
		t.Errorf("ClickAction(99).String() = %q, want NONE", got)
	}
}
