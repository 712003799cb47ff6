package arbiter

import (
	"github.com/go-mclib/guiframework/pkg/gui"
	"github.com/go-mclib/guiframework/pkg/host"
	"github.com/go-mclib/guiframework/pkg/item"
)

// ArbitrateClick decides what happens to a click. It does not mutate
// anything besides the registry's lookup cache.
func ArbitrateClick(ev host.ClickEvent, reg *Registry) ClickDecision {
	view := ev.View
	clicked := ev.ClickedInventory()
	if clicked == nil {
		return pass("outside window")
	}

	// TODO: move-to-other-inventory from the player's side (including the
	// double shift-click that moves every stack of one type) needs placement
	// into an editable section; until then it is rejected in every view.
	if clicked == view.Bottom && ev.Action == host.ActionMoveToOtherInventory {
		return cancel("shift move from player inventory")
	}

	res := reg.Resolve(view.Top)
	if !res.Found() {
		return pass("not a gui")
	}
	if clicked == view.Bottom {
		return pass("player inventory")
	}

	slot := ev.Slot()
	screen := res.Screen
	if region := screen.EditableSection(); region != nil && region.ContainsSlot(slot) {
		if !ValidEditClick(ev.Click) || !ValidEditAction(ev.Action) {
			return cancel("edit gesture not allowed")
		}
		if filters := screen.EditFilters(); filters != nil {
			if filtered(filters, ev.Cursor) || filtered(filters, ev.Current) {
				return cancel("filtered material")
			}
		}
		return allow("edit")
	}

	if !ValidButtonClick(ev.Click) || !ValidButtonAction(ev.Action) {
		return cancel("button gesture not allowed")
	}
	button := screen.ButtonAt(view.Top, slot)
	if button == nil {
		return cancel("no button")
	}
	if !screen.IsButtonVisible(view.Top, slot) {
		return cancel("button hidden")
	}
	return ClickDecision{Outcome: Dispatch, Reason: "button", Resolution: res, Button: button}
}

func filtered(f gui.FilterPolicy, s item.Stack) bool {
	return !s.IsEmpty() && !f.CanInteractWith(s.Material)
}

func (m *Module) onClick(ev host.ClickEvent) host.Verdict {
	d := ArbitrateClick(ev, m.registry)
	m.record(ev.Who, ev.Kind(), ev.RawSlot, d.Outcome, d.Reason, 0)
	if d.Outcome == Dispatch {
		m.dispatch(ev, d)
	}
	return d.Outcome.Verdict()
}

// dispatch invokes the button and applies the action it returns.
func (m *Module) dispatch(ev host.ClickEvent, d ClickDecision) {
	p := ev.Who
	c := d.Resolution.Container
	action := d.Button.Click(gui.ClickContext{Player: p, Event: ev})
	if m.host.Verbose && action != gui.ActionNone {
		m.host.Logger.Printf("arbiter: %s button at slot %d -> %s", p.Name, ev.RawSlot, action)
	}

	switch action {
	case gui.ActionRefresh:
		d.Resolution.Screen.UpdateInventories()
	case gui.ActionClose:
		p.CloseInventory()
	case gui.ActionPageFirst:
		c.FirstPage(p)
	case gui.ActionPageBackwards:
		c.PageBackwards(p)
	case gui.ActionPageForwards:
		c.PageForwards(p)
	case gui.ActionPageLast:
		c.LastPage(p)
	case gui.ActionTransitionBackwards:
		c.TransitionBackwards(p)
	case gui.ActionTransitionForwards:
		c.TransitionForwards(p)
	}
}
