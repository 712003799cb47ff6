package arbiter

import (
	"github.com/go-mclib/guiframework/pkg/gui"
	"github.com/go-mclib/guiframework/pkg/host"
	"github.com/go-mclib/guiframework/pkg/inventory"
	"github.com/go-mclib/guiframework/pkg/item"
)

// ReconcileDrag decides what happens to a drag over a GUI screen. A drag
// touching non-editable GUI slots is cancelled as a whole; the returned
// Rewrites re-apply the legitimate part and ReturnToCursor is the amount
// that must go back onto the cursor, so that
// ReturnToCursor + Applied equals everything the host proposed to place.
func ReconcileDrag(ev host.DragEvent, screen gui.Screen) DragDecision {
	view := ev.View
	dragged := ev.OldCursor.Material
	slots := ev.RawSlots()

	region := screen.EditableSection()
	if region == nil {
		for _, raw := range slots {
			if view.SlotType(raw) == inventory.SlotTypeContainer {
				return DragDecision{Outcome: Cancel, Reason: "drag into gui", Kind: dragged}
			}
		}
		return DragDecision{Outcome: Allow, Reason: "player inventory only", Kind: dragged}
	}

	if filters := screen.EditFilters(); filters != nil && !filters.CanInteractWith(dragged) {
		return DragDecision{Outcome: Cancel, Reason: "filtered material", Kind: dragged}
	}

	rejected := make(map[int]int)
	total := 0
	for _, raw := range slots {
		if !view.IsTop(raw) || region.ContainsSlot(raw) {
			continue
		}
		n := ev.NewItems[raw].Amount - priorAmount(view.Item(raw))
		rejected[raw] = n
		total += n
	}
	if total <= 0 {
		return DragDecision{Outcome: Allow, Reason: "edit", Kind: dragged}
	}

	d := DragDecision{
		Outcome:        Cancel,
		Reason:         "drag over non-editable slots",
		Rewrites:       make(map[int]item.Stack),
		ReturnToCursor: total,
		Kind:           dragged,
	}
	for _, raw := range slots {
		if _, ok := rejected[raw]; ok {
			continue
		}
		prior := view.Item(raw)
		delta := ev.NewItems[raw].Amount - priorAmount(prior)
		if prior.IsEmpty() {
			d.Rewrites[raw] = item.Of(dragged, delta)
		} else {
			d.Rewrites[raw] = prior.WithAmount(prior.Amount + delta)
		}
		d.Applied += delta
	}
	return d
}

func priorAmount(s item.Stack) int {
	if s.IsEmpty() {
		return 0
	}
	return s.Amount
}

func (m *Module) onDrag(ev host.DragEvent) host.Verdict {
	res := m.registry.Resolve(ev.View.Top)
	if !res.Found() {
		return host.Allow
	}

	d := ReconcileDrag(ev, res.Screen)
	m.record(ev.Who, ev.Kind(), -1, d.Outcome, d.Reason, d.ReturnToCursor)
	if d.Outcome != Cancel || d.ReturnToCursor == 0 {
		return d.Outcome.Verdict()
	}

	for raw, s := range d.Rewrites {
		ev.View.SetItem(raw, s)
	}
	// A cancelled drag keeps the old cursor. Take the host's leftover now and
	// hand the rejected part back once the event is done.
	p := ev.Who
	p.SetCursor(ev.Cursor)
	owed := item.Of(d.Kind, d.ReturnToCursor)
	m.host.RunTask(func() {
		returnToPlayer(p, owed)
	})
	return host.Cancel
}

// returnToPlayer adds s onto the cursor as it is now, spilling into the
// inventory and then onto the ground. Nothing already held is replaced.
func returnToPlayer(p *host.Player, s item.Stack) {
	if s.IsEmpty() {
		return
	}
	cursor := p.Cursor()
	if cursor.IsEmpty() || cursor.Similar(s) {
		have := priorAmount(cursor)
		n := min(s.Amount, item.MaxStackSize-have)
		if n > 0 {
			p.SetCursor(s.WithAmount(have + n))
			s = s.WithAmount(s.Amount - n)
		}
	}
	if s.IsEmpty() {
		return
	}
	if left := p.Give(s); left > 0 {
		p.Drop(s.WithAmount(left))
	}
}
