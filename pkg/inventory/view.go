package inventory

import (
	"github.com/google/uuid"

	"github.com/go-mclib/guiframework/pkg/item"
)

// View is the window one player currently sees: a top inventory followed by
// the 36 main and hotbar slots of the player's own inventory.
type View struct {
	ID       uuid.UUID
	WindowID int32
	Top      *Inventory
	Bottom   *Inventory
}

// NewView pairs a top inventory with a player inventory.
func NewView(windowID int32, top, bottom *Inventory) *View {
	return &View{
		ID:       uuid.New(),
		WindowID: windowID,
		Top:      top,
		Bottom:   bottom,
	}
}

// CountSlots returns the number of addressable raw slots.
func (v *View) CountSlots() int {
	return v.Top.Size() + PlayerInvSlots
}

// InventoryAt returns the inventory a raw slot belongs to, or nil outside the window.
func (v *View) InventoryAt(raw int) *Inventory {
	switch {
	case raw < 0 || raw >= v.CountSlots():
		return nil
	case raw < v.Top.Size():
		return v.Top
	default:
		return v.Bottom
	}
}

// ConvertSlot maps a raw view slot to the index inside InventoryAt(raw).
func (v *View) ConvertSlot(raw int) int {
	topSize := v.Top.Size()
	if raw < topSize {
		return raw
	}
	return SlotMainStart + (raw - topSize)
}

// IsTop reports whether the raw slot addresses the top inventory.
func (v *View) IsTop(raw int) bool {
	return raw >= 0 && raw < v.Top.Size()
}

// SlotType classifies a raw slot.
func (v *View) SlotType(raw int) SlotType {
	inv := v.InventoryAt(raw)
	switch {
	case inv == nil:
		return SlotTypeOutside
	case inv == v.Top:
		return SlotTypeContainer
	case v.ConvertSlot(raw) >= SlotHotbarStart:
		return SlotTypeQuickbar
	default:
		return SlotTypeInventory
	}
}

// Item returns the stack at a raw slot.
func (v *View) Item(raw int) item.Stack {
	inv := v.InventoryAt(raw)
	if inv == nil {
		return item.Empty()
	}
	return inv.Item(v.ConvertSlot(raw))
}

// SetItem sets the stack at a raw slot.
func (v *View) SetItem(raw int, s item.Stack) {
	inv := v.InventoryAt(raw)
	if inv == nil {
		return
	}
	inv.SetItem(v.ConvertSlot(raw), s)
}
