// Package gui defines the contracts between the arbitration core and the
// menus it guards: containers made of screens, screens made of pages,
// buttons, editable regions and filter policies.
package gui

import (
	"github.com/go-mclib/guiframework/pkg/host"
	"github.com/go-mclib/guiframework/pkg/inventory"
	"github.com/go-mclib/guiframework/pkg/item"
)

// ClickAction is what a button asks the core to do after it was clicked.
type ClickAction int

const (
	ActionNone ClickAction = iota
	ActionRefresh
	ActionClose
	ActionPageFirst
	ActionPageBackwards
	ActionPageForwards
	ActionPageLast
	ActionTransitionBackwards
	ActionTransitionForwards
)

var clickActionNames = [...]string{
	ActionNone:                "NONE",
	ActionRefresh:             "REFRESH",
	ActionClose:               "CLOSE",
	ActionPageFirst:           "PAGE_FIRST",
	ActionPageBackwards:       "PAGE_BACKWARDS",
	ActionPageForwards:        "PAGE_FORWARDS",
	ActionPageLast:            "PAGE_LAST",
	ActionTransitionBackwards: "TRANSITION_BACKWARDS",
	ActionTransitionForwards:  "TRANSITION_FORWARDS",
}

func (a ClickAction) String() string {
	if a < 0 || int(a) >= len(clickActionNames) {
		return "NONE"
	}
	return clickActionNames[a]
}

// ClickContext is handed to a button when it is clicked.
type ClickContext struct {
	Player *host.Player
	Event  host.ClickEvent
}

// Button is a clickable slot of a screen page.
type Button interface {
	Click(ctx ClickContext) ClickAction
}

// ButtonFunc adapts a function to Button.
type ButtonFunc func(ctx ClickContext) ClickAction

func (f ButtonFunc) Click(ctx ClickContext) ClickAction { return f(ctx) }

// Region is a set of top-inventory slots open to free item placement.
type Region interface {
	ContainsSlot(slot int) bool
}

// FilterPolicy restricts which materials may enter an editable region.
type FilterPolicy interface {
	CanInteractWith(m item.Material) bool
}

// Screen is one layout of a container; each of its pages is a distinct top
// inventory. EditableSection and EditFilters return untyped nil when absent.
type Screen interface {
	EditableSection() Region
	EditFilters() FilterPolicy
	ContainsInventory(inv *inventory.Inventory) bool
	ButtonAt(page *inventory.Inventory, slot int) Button
	IsButtonVisible(page *inventory.Inventory, slot int) bool
	UpdateInventories()
}

// Container is a multi-screen GUI instance shown to one or more players.
type Container interface {
	Screens() []Screen
	IsPersistent() bool
	HasViewers() bool

	Open(p *host.Player)
	RunCloseFor(p *host.Player)

	FirstPage(p *host.Player)
	LastPage(p *host.Player)
	PageBackwards(p *host.Player)
	PageForwards(p *host.Player)
	TransitionBackwards(p *host.Player)
	TransitionForwards(p *host.Player)
}
