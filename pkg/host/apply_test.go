package host

import (
	"testing"

	"github.com/google/uuid"

	"github.com/go-mclib/guiframework/pkg/inventory"
	"github.com/go-mclib/guiframework/pkg/item"
)

func TestApplyClick(t *testing.T) {
	stone := item.MustMaterial("stone")
	dirt := item.MustMaterial("dirt")

	tests := []struct {
		name        string
		action      InventoryAction
		cursor      item.Stack
		slot        item.Stack
		wantCursor  item.Stack
		wantSlot    item.Stack
		hotbarInput int
	}{
		{"pickup all", ActionPickupAll, item.Empty(), item.Of(stone, 10), item.Of(stone, 10), item.Empty(), -1},
		{"pickup half odd", ActionPickupHalf, item.Empty(), item.Of(stone, 9), item.Of(stone, 5), item.Of(stone, 4), -1},
		{"pickup one", ActionPickupOne, item.Of(stone, 2), item.Of(stone, 3), item.Of(stone, 3), item.Of(stone, 2), -1},
		{"pickup some", ActionPickupSome, item.Of(stone, 60), item.Of(stone, 10), item.Of(stone, 64), item.Of(stone, 6), -1},
		{"place all", ActionPlaceAll, item.Of(stone, 5), item.Of(stone, 3), item.Empty(), item.Of(stone, 8), -1},
		{"place all empty slot", ActionPlaceAll, item.Of(stone, 5), item.Empty(), item.Empty(), item.Of(stone, 5), -1},
		{"place some", ActionPlaceSome, item.Of(stone, 10), item.Of(stone, 60), item.Of(stone, 6), item.Of(stone, 64), -1},
		{"place one", ActionPlaceOne, item.Of(stone, 5), item.Empty(), item.Of(stone, 4), item.Of(stone, 1), -1},
		{"swap", ActionSwapWithCursor, item.Of(dirt, 2), item.Of(stone, 3), item.Of(stone, 3), item.Of(dirt, 2), -1},
		{"drop one cursor", ActionDropOneCursor, item.Of(stone, 2), item.Empty(), item.Of(stone, 1), item.Empty(), -1},
		{"drop all slot", ActionDropAllSlot, item.Empty(), item.Of(stone, 7), item.Empty(), item.Empty(), -1},
		{"clone", ActionCloneStack, item.Empty(), item.Of(dirt, 1), item.Of(dirt, item.MaxStackSize), item.Of(dirt, 1), -1},
		{"nothing", ActionNothing, item.Of(dirt, 1), item.Of(stone, 1), item.Of(dirt, 1), item.Of(stone, 1), -1},
	}

	for _, tt := range tests {
		h := newTestHost()
		p := h.AddPlayer(uuid.New(), "steve")
		v := p.OpenInventory(inventory.New(inventory.MenuGeneric9x1, "gui"))
		p.SetCursor(tt.cursor)
		v.SetItem(0, tt.slot)

		h.Dispatch(ClickEvent{Who: p, View: v, Action: tt.action, RawSlot: 0, HotbarButton: tt.hotbarInput})

		if got := p.Cursor(); got != tt.wantCursor.Normalize() {
			t.Errorf("%s: cursor = %v, want %v", tt.name, got, tt.wantCursor)
		}
		if got := v.Item(0); got != tt.wantSlot.Normalize() {
			t.Errorf("%s: slot = %v, want %v", tt.name, got, tt.wantSlot)
		}
	}
}

func TestApplyMoveToOtherInventory(t *testing.T) {
	stone := item.MustMaterial("stone")
	h := newTestHost()
	p := h.AddPlayer(uuid.New(), "steve")
	v := p.OpenInventory(inventory.New(inventory.MenuGeneric9x1, "gui"))

	p.Inventory.SetItem(inventory.SlotMainStart, item.Of(stone, 60))
	v.SetItem(4, item.Of(stone, 10))

	h.Dispatch(ClickEvent{Who: p, View: v, Action: ActionMoveToOtherInventory, RawSlot: 4, HotbarButton: -1})

	if got := p.Inventory.Item(inventory.SlotMainStart); got != item.Of(stone, 64) {
		t.Errorf("merged slot = %v, want stone x64", got)
	}
	if got := p.Inventory.Item(inventory.SlotMainStart + 1); got != item.Of(stone, 6) {
		t.Errorf("next slot = %v, want stone x6", got)
	}
	if !v.Item(4).IsEmpty() {
		t.Errorf("source slot = %v, want empty", v.Item(4))
	}
}

func TestApplyHotbarSwap(t *testing.T) {
	stone := item.MustMaterial("stone")
	dirt := item.MustMaterial("dirt")
	h := newTestHost()
	p := h.AddPlayer(uuid.New(), "steve")
	v := p.OpenInventory(inventory.New(inventory.MenuGeneric9x1, "gui"))

	v.SetItem(2, item.Of(stone, 3))
	p.Inventory.SetItem(inventory.SlotHotbarStart+1, item.Of(dirt, 5))

	h.Dispatch(ClickEvent{Who: p, View: v, Click: ClickNumberKey, Action: ActionHotbarSwap, RawSlot: 2, HotbarButton: 1})

	if got := v.Item(2); got != item.Of(dirt, 5) {
		t.Errorf("clicked slot = %v, want dirt x5", got)
	}
	if got := p.Inventory.Item(inventory.SlotHotbarStart + 1); got != item.Of(stone, 3) {
		t.Errorf("hotbar slot = %v, want stone x3", got)
	}
}

func TestGive(t *testing.T) {
	stone := item.MustMaterial("stone")
	h := newTestHost()
	p := h.AddPlayer(uuid.New(), "steve")

	if left := p.Give(item.Of(stone, 100)); left != 0 {
		t.Fatalf("Give() left %d, want 0", left)
	}
	if got := p.Inventory.Count(stone); got != 100 {
		t.Errorf("Count(stone) = %d, want 100", got)
	}
}
