package host

import (
	"github.com/google/uuid"

	"github.com/go-mclib/guiframework/pkg/inventory"
	"github.com/go-mclib/guiframework/pkg/item"
)

// Player is a connected player with an inventory, a cursor and an open view.
type Player struct {
	ID       uuid.UUID
	Name     string
	Creative bool

	Inventory *inventory.Inventory

	host        *Host
	cursor      item.Stack
	view        *inventory.View
	defaultView *inventory.View
	nextWindow  int32
}

func newPlayer(h *Host, id uuid.UUID, name string) *Player {
	inv := inventory.NewPlayer()
	p := &Player{
		ID:        id,
		Name:      name,
		Inventory: inv,
		host:      h,
		cursor:    item.Empty(),
	}
	p.defaultView = inventory.NewView(0, inventory.New(inventory.MenuPlayer, "Crafting"), inv)
	p.view = p.defaultView
	return p
}

// Cursor returns the stack held on the cursor.
func (p *Player) Cursor() item.Stack { return p.cursor }

// SetCursor replaces the stack held on the cursor.
func (p *Player) SetCursor(s item.Stack) { p.cursor = s.Normalize() }

// OpenView returns the view the player has open right now; never nil.
func (p *Player) OpenView() *inventory.View { return p.view }

// DefaultView returns the player's own inventory view shown when nothing is open.
func (p *Player) DefaultView() *inventory.View { return p.defaultView }

// HasDefaultView reports whether no other inventory is open.
func (p *Player) HasDefaultView() bool { return p.view == p.defaultView }

// OpenInventory shows top to the player. A previously open inventory is
// closed first, dispatching a CloseEvent while it is still reported open.
func (p *Player) OpenInventory(top *inventory.Inventory) *inventory.View {
	if !p.HasDefaultView() {
		p.host.Dispatch(CloseEvent{Who: p, View: p.view})
	}
	p.nextWindow = p.nextWindow%100 + 1
	p.view = inventory.NewView(p.nextWindow, top, p.Inventory)
	if p.host.Verbose {
		p.host.Logger.Printf("host: %s opened %q (window %d)", p.Name, top.Title(), p.nextWindow)
	}
	return p.view
}

// CloseInventory closes the open inventory, if any, and reverts to the default view.
func (p *Player) CloseInventory() {
	if p.HasDefaultView() {
		return
	}
	p.host.Dispatch(CloseEvent{Who: p, View: p.view})
	p.view = p.defaultView
}

// Give adds s to the player's main and hotbar slots, merging with similar
// stacks first. It returns the amount that did not fit.
func (p *Player) Give(s item.Stack) int {
	return addToRange(p.Inventory, s, inventory.SlotMainStart, inventory.SlotHotbarEnd)
}

// Drop throws s out of the player's hands into the world.
func (p *Player) Drop(s item.Stack) {
	p.host.dropped(p, s)
}
