package host

import (
	"github.com/go-mclib/guiframework/pkg/inventory"
	"github.com/go-mclib/guiframework/pkg/item"
)

// apply performs the default behavior of an allowed event.
func (h *Host) apply(ev Event) {
	switch e := ev.(type) {
	case DragEvent:
		h.applyDrag(e)
	case ClickEvent:
		h.applyClick(e)
	}
}

func (h *Host) applyDrag(e DragEvent) {
	for raw, s := range e.NewItems {
		e.View.SetItem(raw, s)
	}
	e.Who.SetCursor(e.Cursor)
}

func (h *Host) applyClick(e ClickEvent) {
	p := e.Who
	v := e.View
	raw := e.RawSlot
	cursor := p.Cursor()
	current := v.Item(raw)

	switch e.Action {
	case ActionPickupAll:
		p.SetCursor(current)
		v.SetItem(raw, item.Empty())

	case ActionPickupHalf:
		take := (current.Amount + 1) / 2
		p.SetCursor(current.WithAmount(take))
		v.SetItem(raw, current.WithAmount(current.Amount-take))

	case ActionPickupOne:
		if cursor.IsEmpty() {
			cursor = current.WithAmount(0)
		}
		p.SetCursor(cursor.WithAmount(cursor.Amount + 1))
		v.SetItem(raw, current.WithAmount(current.Amount-1))

	case ActionPickupSome:
		take := min(cursor.Space(), current.Amount)
		if cursor.IsEmpty() {
			cursor = current.WithAmount(0)
		}
		p.SetCursor(cursor.WithAmount(cursor.Amount + take))
		v.SetItem(raw, current.WithAmount(current.Amount-take))

	case ActionPlaceAll, ActionPlaceSome, ActionPlaceOne:
		n := cursor.Amount
		switch e.Action {
		case ActionPlaceSome:
			n = min(n, current.Space())
		case ActionPlaceOne:
			n = 1
		}
		if current.IsEmpty() {
			current = cursor.WithAmount(0)
		}
		v.SetItem(raw, current.WithAmount(current.Amount+n))
		p.SetCursor(cursor.WithAmount(cursor.Amount - n))

	case ActionSwapWithCursor:
		p.SetCursor(current)
		v.SetItem(raw, cursor)

	case ActionDropAllCursor, ActionDropOneCursor:
		n := cursor.Amount
		if e.Action == ActionDropOneCursor {
			n = 1
		}
		h.dropped(p, cursor.WithAmount(n))
		p.SetCursor(cursor.WithAmount(cursor.Amount - n))

	case ActionDropAllSlot, ActionDropOneSlot:
		n := current.Amount
		if e.Action == ActionDropOneSlot {
			n = 1
		}
		h.dropped(p, current.WithAmount(n))
		v.SetItem(raw, current.WithAmount(current.Amount-n))

	case ActionMoveToOtherInventory:
		var left int
		if v.IsTop(raw) {
			left = addToRange(v.Bottom, current, inventory.SlotMainStart, inventory.SlotHotbarEnd)
		} else {
			left = addToRange(v.Top, current, 0, v.Top.Size())
		}
		v.SetItem(raw, current.WithAmount(left))

	case ActionHotbarSwap, ActionHotbarMoveAndReadd:
		target := inventory.PlayerSlot(e.HotbarButton)
		if target < 0 {
			return
		}
		hotbar := p.Inventory.Item(target)
		p.Inventory.SetItem(target, current)
		v.SetItem(raw, hotbar)

	case ActionCloneStack:
		p.SetCursor(current.WithAmount(item.MaxStackSize))

	case ActionCollectToCursor:
		for other := 0; other < v.CountSlots() && cursor.Amount < item.MaxStackSize; other++ {
			s := v.Item(other)
			if s.IsEmpty() || !s.Similar(cursor) {
				continue
			}
			take := min(s.Amount, item.MaxStackSize-cursor.Amount)
			cursor.Amount += take
			v.SetItem(other, s.WithAmount(s.Amount-take))
		}
		p.SetCursor(cursor)
	}
}

func (h *Host) dropped(p *Player, s item.Stack) {
	if s.IsEmpty() {
		return
	}
	if h.Verbose {
		h.Logger.Printf("host: %s dropped %v", p.Name, s)
	}
	for _, cb := range h.onDrop {
		cb(p, s)
	}
}

// addToRange merges s into inv slots [from, to): similar stacks first, then
// empty slots. It returns the amount that did not fit.
func addToRange(inv *inventory.Inventory, s item.Stack, from, to int) int {
	if s.IsEmpty() {
		return 0
	}
	left := s.Amount
	for i := from; i < to && left > 0; i++ {
		cur := inv.Item(i)
		if cur.IsEmpty() || !cur.Similar(s) {
			continue
		}
		n := min(cur.Space(), left)
		inv.SetItem(i, cur.WithAmount(cur.Amount+n))
		left -= n
	}
	for left > 0 {
		i := inv.FirstEmpty(from, to)
		if i < 0 {
			break
		}
		n := min(item.MaxStackSize, left)
		inv.SetItem(i, s.WithAmount(n))
		left -= n
	}
	return left
}
