package arbiter

import (
	"slices"

	"github.com/google/uuid"

	"github.com/go-mclib/guiframework/pkg/gui"
	"github.com/go-mclib/guiframework/pkg/inventory"
)

// Resolution is the (container, screen) pair owning a top inventory.
type Resolution struct {
	Container gui.Container
	Screen    gui.Screen
}

// Found reports whether the inventory belongs to an active GUI.
func (r Resolution) Found() bool { return r.Container != nil && r.Screen != nil }

// Registry tracks active GUI containers and maps inventories back to them.
// Lookups go through an index keyed by inventory id; a miss falls back to a
// scan of every active screen and caches the result.
type Registry struct {
	active []gui.Container
	index  map[uuid.UUID]Resolution
}

func NewRegistry() *Registry {
	return &Registry{index: make(map[uuid.UUID]Resolution)}
}

// Register marks c active. It returns false if c was already active.
func (r *Registry) Register(c gui.Container) bool {
	if r.IsActive(c) {
		return false
	}
	r.active = append(r.active, c)
	return true
}

// Unregister drops c and every index entry pointing at it. It returns false
// if c was not active.
func (r *Registry) Unregister(c gui.Container) bool {
	i := slices.Index(r.active, c)
	if i < 0 {
		return false
	}
	r.active = slices.Delete(r.active, i, i+1)
	for id, res := range r.index {
		if res.Container == c {
			delete(r.index, id)
		}
	}
	return true
}

func (r *Registry) IsActive(c gui.Container) bool {
	return slices.Contains(r.active, c)
}

// ActiveGuis returns the active containers in registration order.
func (r *Registry) ActiveGuis() []gui.Container {
	return slices.Clone(r.active)
}

// Resolve finds the container and screen owning inv.
func (r *Registry) Resolve(inv *inventory.Inventory) Resolution {
	if inv == nil {
		return Resolution{}
	}
	if res, ok := r.index[inv.ID()]; ok {
		if res.Screen.ContainsInventory(inv) {
			return res
		}
		delete(r.index, inv.ID())
	}
	for _, c := range r.active {
		for _, s := range c.Screens() {
			if s.ContainsInventory(inv) {
				res := Resolution{Container: c, Screen: s}
				r.index[inv.ID()] = res
				return res
			}
		}
	}
	return Resolution{}
}

// ResolveContainer returns the container owning inv, or nil.
func (r *Registry) ResolveContainer(inv *inventory.Inventory) gui.Container {
	return r.Resolve(inv).Container
}

// ResolveScreen returns the screen owning inv, or nil.
func (r *Registry) ResolveScreen(inv *inventory.Inventory) gui.Screen {
	return r.Resolve(inv).Screen
}
