package inventory

// Player inventory layout, shared with the protocol's InventoryMenu.
const (
	TotalSlots = 46

	SlotCraftingResult = 0
	SlotArmorHead      = 5
	SlotArmorChest     = 6
	SlotArmorLegs      = 7
	SlotArmorFeet      = 8
	SlotMainStart      = 9
	SlotMainEnd        = 36
	SlotHotbarStart    = 36
	SlotHotbarEnd      = 45
	SlotOffhand        = 45
	PlayerInvSlots     = 36 // main(27) + hotbar(9) appended to every container view

	// SlotOutside is the raw slot of a click outside the window.
	SlotOutside = -999

	// OffhandButton is the swap button that targets the offhand.
	OffhandButton = 40
)

// SlotType classifies a raw view slot.
type SlotType int

const (
	SlotTypeOutside SlotType = iota
	SlotTypeContainer
	SlotTypeInventory
	SlotTypeQuickbar
)

func (t SlotType) String() string {
	switch t {
	case SlotTypeContainer:
		return "container"
	case SlotTypeInventory:
		return "inventory"
	case SlotTypeQuickbar:
		return "quickbar"
	default:
		return "outside"
	}
}

// PlayerSlot maps an Inventory.java slot index (hotbar 0-8, main 9-35,
// armor 36-39, offhand 40) to the InventoryMenu slot index used here.
func PlayerSlot(invSlot int) int {
	switch {
	case invSlot >= 0 && invSlot <= 8:
		return SlotHotbarStart + invSlot // hotbar 0-8 → 36-44
	case invSlot >= 9 && invSlot <= 35:
		return invSlot // main inventory is the same
	case invSlot >= 36 && invSlot <= 39:
		return 8 - (invSlot - 36) // armor: 36=feet→8, 37=legs→7, 38=chest→6, 39=head→5
	case invSlot == OffhandButton:
		return SlotOffhand
	default:
		return -1
	}
}
