package wire

import (
	"github.com/go-mclib/guiframework/pkg/host"
	"github.com/go-mclib/guiframework/pkg/inventory"
	"github.com/go-mclib/guiframework/pkg/item"
)

// container click modes
const (
	ModePickup     = 0
	ModeQuickMove  = 1
	ModeSwap       = 2
	ModeClone      = 3
	ModeThrow      = 4
	ModeQuickCraft = 5
	ModePickupAll  = 6
)

// quick craft buttons pack the stage in the low two bits and the drag kind above
const (
	dragStart = 0
	dragAdd   = 1
	dragEnd   = 2

	dragLeft   = 0
	dragRight  = 1
	dragMiddle = 2
)

func dragStage(button int) int { return button & 3 }
func dragKind(button int) int  { return (button >> 2) & 3 }

// Gesture is a classified click.
type Gesture struct {
	Click        host.ClickType
	Action       host.InventoryAction
	HotbarButton int
}

// Classify maps a raw (mode, button, slot) click in v to the gesture the
// host dispatches, judged against the player's cursor and the clicked slot.
// Quick craft clicks are not handled here.
func Classify(p *host.Player, v *inventory.View, mode, button, raw int) Gesture {
	g := Gesture{Click: host.ClickUnknown, Action: host.ActionUnknown, HotbarButton: -1}
	cursor := p.Cursor()
	current := item.Empty()
	if raw >= 0 {
		current = v.Item(raw)
	}

	switch mode {
	case ModePickup:
		right := button == 1
		if button != 0 && !right {
			return g
		}
		switch {
		case raw == inventory.SlotOutside:
			g.Click = host.ClickWindowBorderLeft
			g.Action = host.ActionDropAllCursor
			if right {
				g.Click = host.ClickWindowBorderRight
				g.Action = host.ActionDropOneCursor
			}
			if cursor.IsEmpty() {
				g.Action = host.ActionNothing
			}
		case raw < 0:
			g.Click, g.Action = host.ClickLeft, host.ActionNothing
			if right {
				g.Click = host.ClickRight
			}
		case right:
			g.Click = host.ClickRight
			g.Action = pickupRight(cursor, current)
		default:
			g.Click = host.ClickLeft
			g.Action = pickupLeft(cursor, current)
		}

	case ModeQuickMove:
		g.Click = host.ClickShiftLeft
		if button == 1 {
			g.Click = host.ClickShiftRight
		}
		g.Action = host.ActionNothing
		if raw >= 0 && !current.IsEmpty() {
			g.Action = host.ActionMoveToOtherInventory
		}

	case ModeSwap:
		switch {
		case button >= 0 && button <= 8:
			g.Click = host.ClickNumberKey
		case button == inventory.OffhandButton:
			g.Click = host.ClickSwapOffhand
		default:
			return g
		}
		g.HotbarButton = button
		hotbar := p.Inventory.Item(inventory.PlayerSlot(button))
		switch {
		case raw < 0 || (current.IsEmpty() && hotbar.IsEmpty()):
			g.Action = host.ActionNothing
		case !current.IsEmpty() && !hotbar.IsEmpty() && !v.IsTop(raw):
			g.Action = host.ActionHotbarSwap
		case !current.IsEmpty() && !hotbar.IsEmpty():
			g.Action = host.ActionHotbarMoveAndReadd
		default:
			g.Action = host.ActionHotbarSwap
		}

	case ModeClone:
		g.Click = host.ClickMiddle
		g.Action = host.ActionNothing
		if p.Creative && cursor.IsEmpty() && !current.IsEmpty() {
			g.Action = host.ActionCloneStack
		}

	case ModeThrow:
		if raw < 0 {
			g.Click = host.ClickWindowBorderLeft
			if button == 1 {
				g.Click = host.ClickWindowBorderRight
			}
			g.Action = host.ActionNothing
			return g
		}
		g.Click, g.Action = host.ClickDrop, host.ActionDropOneSlot
		if button == 1 {
			g.Click, g.Action = host.ClickControlDrop, host.ActionDropAllSlot
		}
		if current.IsEmpty() {
			g.Action = host.ActionNothing
		}

	case ModePickupAll:
		g.Click = host.ClickDoubleClick
		g.Action = host.ActionNothing
		if raw >= 0 && !cursor.IsEmpty() {
			g.Action = host.ActionCollectToCursor
		}
	}
	return g
}

func pickupLeft(cursor, current item.Stack) host.InventoryAction {
	switch {
	case current.IsEmpty() && cursor.IsEmpty():
		return host.ActionNothing
	case current.IsEmpty():
		return host.ActionPlaceAll
	case cursor.IsEmpty():
		return host.ActionPickupAll
	case !cursor.Similar(current):
		return host.ActionSwapWithCursor
	case current.Space() == 0:
		return host.ActionNothing
	case cursor.Amount <= current.Space():
		return host.ActionPlaceAll
	default:
		return host.ActionPlaceSome
	}
}

func pickupRight(cursor, current item.Stack) host.InventoryAction {
	switch {
	case current.IsEmpty() && cursor.IsEmpty():
		return host.ActionNothing
	case current.IsEmpty():
		return host.ActionPlaceOne
	case cursor.IsEmpty():
		return host.ActionPickupHalf
	case !cursor.Similar(current):
		return host.ActionSwapWithCursor
	case current.Space() == 0:
		return host.ActionNothing
	default:
		return host.ActionPlaceOne
	}
}
