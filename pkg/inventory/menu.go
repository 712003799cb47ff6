package inventory

// MenuType represents a Minecraft container menu type from the minecraft:menu registry.
type MenuType int32

const (
	// MenuPlayer is the player's own inventory screen (window 0); it has no registry id.
	MenuPlayer MenuType = -1

	MenuGeneric9x1 MenuType = 0
	MenuGeneric9x2 MenuType = 1
	MenuGeneric9x3 MenuType = 2 // single chest, barrel
	MenuGeneric9x4 MenuType = 3
	MenuGeneric9x5 MenuType = 4
	MenuGeneric9x6 MenuType = 5 // double chest
	MenuGeneric3x3 MenuType = 6 // dispenser, dropper
	MenuCrafter3x3 MenuType = 7
	MenuAnvil      MenuType = 8
	MenuBeacon     MenuType = 9
	MenuCrafting   MenuType = 12
	MenuFurnace    MenuType = 14
	MenuHopper     MenuType = 16
	MenuShulkerBox MenuType = 20
)

// Size returns the number of top slots the menu shows, or 0 for unknown menus.
func (t MenuType) Size() int {
	switch t {
	case MenuPlayer:
		return 5 // crafting result + 2x2 grid
	case MenuGeneric9x1, MenuGeneric9x2, MenuGeneric9x3, MenuGeneric9x4, MenuGeneric9x5, MenuGeneric9x6:
		return 9 * (int(t) + 1)
	case MenuGeneric3x3, MenuCrafter3x3:
		return 9
	case MenuAnvil, MenuFurnace:
		return 3
	case MenuBeacon:
		return 1
	case MenuCrafting:
		return 10
	case MenuHopper:
		return 5
	case MenuShulkerBox:
		return 27
	default:
		return 0
	}
}

// GenericMenu returns the 9-wide chest menu with the given number of rows (1-6).
func GenericMenu(rows int) MenuType {
	rows = min(max(rows, 1), 6)
	return MenuGeneric9x1 + MenuType(rows-1)
}
