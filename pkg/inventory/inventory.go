package inventory

import (
	"github.com/google/uuid"

	"github.com/go-mclib/guiframework/pkg/item"
)

// Inventory is a fixed-size array of item stacks with a stable identity.
// Inventories are only touched from the host's main thread.
type Inventory struct {
	id       uuid.UUID
	menuType MenuType
	title    string
	slots    []item.Stack
}

// New creates an empty inventory sized for the menu type.
func New(menuType MenuType, title string) *Inventory {
	return &Inventory{
		id:       uuid.New(),
		menuType: menuType,
		title:    title,
		slots:    make([]item.Stack, menuType.Size()),
	}
}

// NewPlayer creates an empty player inventory in the InventoryMenu layout.
func NewPlayer() *Inventory {
	return &Inventory{
		id:       uuid.New(),
		menuType: MenuPlayer,
		title:    "Inventory",
		slots:    make([]item.Stack, TotalSlots),
	}
}

func (inv *Inventory) ID() uuid.UUID      { return inv.id }
func (inv *Inventory) MenuType() MenuType { return inv.menuType }
func (inv *Inventory) Title() string      { return inv.title }
func (inv *Inventory) Size() int          { return len(inv.slots) }

// Item returns the stack at index, or an empty stack when out of range.
func (inv *Inventory) Item(index int) item.Stack {
	if index < 0 || index >= len(inv.slots) {
		return item.Empty()
	}
	return inv.slots[index]
}

// SetItem replaces the stack at index. Out-of-range indices are ignored.
func (inv *Inventory) SetItem(index int, s item.Stack) {
	if index < 0 || index >= len(inv.slots) {
		return
	}
	inv.slots[index] = s.Normalize()
}

// Clear empties every slot.
func (inv *Inventory) Clear() {
	for i := range inv.slots {
		inv.slots[i] = item.Empty()
	}
}

// Contents returns a copy of all slots.
func (inv *Inventory) Contents() []item.Stack {
	out := make([]item.Stack, len(inv.slots))
	copy(out, inv.slots)
	return out
}

// Count returns the total amount of m held.
func (inv *Inventory) Count(m item.Material) int {
	n := 0
	for _, s := range inv.slots {
		if !s.IsEmpty() && s.Material == m {
			n += s.Amount
		}
	}
	return n
}

// FirstEmpty returns the first empty slot within [from, to), or -1.
func (inv *Inventory) FirstEmpty(from, to int) int {
	to = min(to, len(inv.slots))
	for i := max(from, 0); i < to; i++ {
		if inv.slots[i].IsEmpty() {
			return i
		}
	}
	return -1
}
