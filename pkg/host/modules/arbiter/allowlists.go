package arbiter

import "github.com/go-mclib/guiframework/pkg/host"

// Gestures accepted inside an editable region.
var validEditClicks = map[host.ClickType]bool{
	host.ClickControlDrop: true,
	host.ClickCreative:    true,
	host.ClickDoubleClick: true,
	host.ClickDrop:        true,
	host.ClickLeft:        true,
	host.ClickMiddle:      true,
	host.ClickNumberKey:   true,
	host.ClickRight:       true,
	host.ClickShiftLeft:   true,
	host.ClickShiftRight:  true,
}

var validEditActions = map[host.InventoryAction]bool{
	host.ActionCloneStack:           true,
	host.ActionDropAllCursor:        true,
	host.ActionDropAllSlot:          true,
	host.ActionDropOneCursor:        true,
	host.ActionDropOneSlot:          true,
	host.ActionMoveToOtherInventory: true,
	host.ActionPickupAll:            true,
	host.ActionPickupHalf:           true,
	host.ActionPickupOne:            true,
	host.ActionPickupSome:           true,
	host.ActionPlaceAll:             true,
	host.ActionPlaceOne:             true,
	host.ActionPlaceSome:            true,
	host.ActionSwapWithCursor:       true,
}

// Gestures that activate a button.
var validButtonClicks = map[host.ClickType]bool{
	host.ClickLeft:   true,
	host.ClickMiddle: true,
	host.ClickRight:  true,
}

var validButtonActions = map[host.InventoryAction]bool{
	host.ActionPickupAll:  true,
	host.ActionPickupHalf: true,
	host.ActionPickupOne:  true,
	host.ActionPickupSome: true,
}

func ValidEditClick(c host.ClickType) bool          { return validEditClicks[c] }
func ValidEditAction(a host.InventoryAction) bool   { return validEditActions[a] }
func ValidButtonClick(c host.ClickType) bool        { return validButtonClicks[c] }
func ValidButtonAction(a host.InventoryAction) bool { return validButtonActions[a] }
