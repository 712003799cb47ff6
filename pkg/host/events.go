package host

import (
	"slices"

	"github.com/go-mclib/guiframework/pkg/inventory"
	"github.com/go-mclib/guiframework/pkg/item"
)

// Event is an inventory event dispatched on the host.
type Event interface {
	Player() *Player
	Kind() string
}

// ClickType is the physical gesture of a click.
type ClickType int

const (
	ClickUnknown ClickType = iota
	ClickLeft
	ClickShiftLeft
	ClickRight
	ClickShiftRight
	ClickWindowBorderLeft
	ClickWindowBorderRight
	ClickMiddle
	ClickNumberKey
	ClickDoubleClick
	ClickDrop
	ClickControlDrop
	ClickCreative
	ClickSwapOffhand
)

var clickTypeNames = [...]string{
	ClickUnknown:           "UNKNOWN",
	ClickLeft:              "LEFT",
	ClickShiftLeft:         "SHIFT_LEFT",
	ClickRight:             "RIGHT",
	ClickShiftRight:        "SHIFT_RIGHT",
	ClickWindowBorderLeft:  "WINDOW_BORDER_LEFT",
	ClickWindowBorderRight: "WINDOW_BORDER_RIGHT",
	ClickMiddle:            "MIDDLE",
	ClickNumberKey:         "NUMBER_KEY",
	ClickDoubleClick:       "DOUBLE_CLICK",
	ClickDrop:              "DROP",
	ClickControlDrop:       "CONTROL_DROP",
	ClickCreative:          "CREATIVE",
	ClickSwapOffhand:       "SWAP_OFFHAND",
}

// ClickTypes lists every click type.
func ClickTypes() []ClickType {
	out := make([]ClickType, len(clickTypeNames))
	for i := range clickTypeNames {
		out[i] = ClickType(i)
	}
	return out
}

func (c ClickType) String() string {
	if c < 0 || int(c) >= len(clickTypeNames) {
		return "UNKNOWN"
	}
	return clickTypeNames[c]
}

// IsShift reports whether the gesture held shift.
func (c ClickType) IsShift() bool { return c == ClickShiftLeft || c == ClickShiftRight }

// InventoryAction is the host's classification of what a click would do.
type InventoryAction int

const (
	ActionNothing InventoryAction = iota
	ActionPickupAll
	ActionPickupSome
	ActionPickupHalf
	ActionPickupOne
	ActionPlaceAll
	ActionPlaceSome
	ActionPlaceOne
	ActionSwapWithCursor
	ActionDropAllCursor
	ActionDropOneCursor
	ActionDropAllSlot
	ActionDropOneSlot
	ActionMoveToOtherInventory
	ActionHotbarMoveAndReadd
	ActionHotbarSwap
	ActionCloneStack
	ActionCollectToCursor
	ActionUnknown
)

var actionNames = [...]string{
	ActionNothing:              "NOTHING",
	ActionPickupAll:            "PICKUP_ALL",
	ActionPickupSome:           "PICKUP_SOME",
	ActionPickupHalf:           "PICKUP_HALF",
	ActionPickupOne:            "PICKUP_ONE",
	ActionPlaceAll:             "PLACE_ALL",
	ActionPlaceSome:            "PLACE_SOME",
	ActionPlaceOne:             "PLACE_ONE",
	ActionSwapWithCursor:       "SWAP_WITH_CURSOR",
	ActionDropAllCursor:        "DROP_ALL_CURSOR",
	ActionDropOneCursor:        "DROP_ONE_CURSOR",
	ActionDropAllSlot:          "DROP_ALL_SLOT",
	ActionDropOneSlot:          "DROP_ONE_SLOT",
	ActionMoveToOtherInventory: "MOVE_TO_OTHER_INVENTORY",
	ActionHotbarMoveAndReadd:   "HOTBAR_MOVE_AND_READD",
	ActionHotbarSwap:           "HOTBAR_SWAP",
	ActionCloneStack:           "CLONE_STACK",
	ActionCollectToCursor:      "COLLECT_TO_CURSOR",
	ActionUnknown:              "UNKNOWN",
}

// InventoryActions lists every inventory action.
func InventoryActions() []InventoryAction {
	out := make([]InventoryAction, len(actionNames))
	for i := range actionNames {
		out[i] = InventoryAction(i)
	}
	return out
}

func (a InventoryAction) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "UNKNOWN"
	}
	return actionNames[a]
}

// ClickEvent is a single click inside a player's open view.
type ClickEvent struct {
	Who    *Player
	View   *inventory.View
	Click  ClickType
	Action InventoryAction
	// RawSlot is the clicked view slot, inventory.SlotOutside outside the window.
	RawSlot int
	// HotbarButton is the hotbar index (0-8, or 40 for offhand) of NUMBER_KEY
	// and SWAP_OFFHAND clicks, -1 otherwise.
	HotbarButton int
	// Cursor and Current are the cursor and clicked slot at click time.
	Cursor  item.Stack
	Current item.Stack
}

func (e ClickEvent) Player() *Player { return e.Who }
func (e ClickEvent) Kind() string    { return "click" }

// ClickedInventory returns the inventory under the click, or nil outside the window.
func (e ClickEvent) ClickedInventory() *inventory.Inventory {
	return e.View.InventoryAt(e.RawSlot)
}

// Slot returns the clicked index inside ClickedInventory.
func (e ClickEvent) Slot() int { return e.View.ConvertSlot(e.RawSlot) }

// DragType is how a drag spreads the cursor over its slots.
type DragType int

const (
	// DragEven splits the cursor evenly (left button).
	DragEven DragType = iota
	// DragSingle places one item per slot (right button).
	DragSingle
)

func (t DragType) String() string {
	if t == DragSingle {
		return "SINGLE"
	}
	return "EVEN"
}

// DragEvent is a multi-slot drag the host is about to apply atomically.
type DragEvent struct {
	Who  *Player
	View *inventory.View
	Type DragType
	// OldCursor is the cursor before the drag.
	OldCursor item.Stack
	// Cursor is what the host leaves on the cursor after the drag.
	Cursor item.Stack
	// NewItems maps every touched raw slot to its resulting stack. It must
	// not be modified by handlers.
	NewItems map[int]item.Stack
}

func (e DragEvent) Player() *Player { return e.Who }
func (e DragEvent) Kind() string    { return "drag" }

// RawSlots returns the touched raw slots in ascending order.
func (e DragEvent) RawSlots() []int {
	out := make([]int, 0, len(e.NewItems))
	for raw := range e.NewItems {
		out = append(out, raw)
	}
	slices.Sort(out)
	return out
}

// CloseEvent reports that View stopped being the player's open view. During
// dispatch the player still reports View as open.
type CloseEvent struct {
	Who  *Player
	View *inventory.View
}

func (e CloseEvent) Player() *Player { return e.Who }
func (e CloseEvent) Kind() string    { return "close" }

// QuitEvent reports that a player is disconnecting with View open.
type QuitEvent struct {
	Who  *Player
	View *inventory.View
}

func (e QuitEvent) Player() *Player { return e.Who }
func (e QuitEvent) Kind() string    { return "quit" }
