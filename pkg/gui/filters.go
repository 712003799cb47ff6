package gui

import (
	"fmt"

	"github.com/go-mclib/guiframework/pkg/item"
)

// FilterMode selects how EditFilters treats its materials.
type FilterMode int

const (
	// Whitelist permits only the listed materials.
	Whitelist FilterMode = iota
	// Blacklist permits everything except the listed materials.
	Blacklist
)

func (m FilterMode) String() string {
	if m == Blacklist {
		return "blacklist"
	}
	return "whitelist"
}

// EditFilters is a material whitelist or blacklist.
type EditFilters struct {
	mode      FilterMode
	materials map[item.Material]struct{}
}

// NewEditFilters builds a filter over the given materials.
func NewEditFilters(mode FilterMode, materials ...item.Material) *EditFilters {
	f := &EditFilters{mode: mode, materials: make(map[item.Material]struct{}, len(materials))}
	for _, m := range materials {
		f.materials[m] = struct{}{}
	}
	return f
}

// ParseEditFilters builds a filter from registry names.
func ParseEditFilters(mode FilterMode, names ...string) (*EditFilters, error) {
	materials := make([]item.Material, 0, len(names))
	for _, name := range names {
		m, err := item.ParseMaterial(name)
		if err != nil {
			return nil, fmt.Errorf("edit filters: %w", err)
		}
		materials = append(materials, m)
	}
	return NewEditFilters(mode, materials...), nil
}

func (f *EditFilters) Mode() FilterMode { return f.mode }

func (f *EditFilters) CanInteractWith(m item.Material) bool {
	_, listed := f.materials[m]
	if f.mode == Blacklist {
		return !listed
	}
	return listed
}
