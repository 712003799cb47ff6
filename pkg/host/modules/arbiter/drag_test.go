package arbiter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-mclib/guiframework/pkg/gui"
	"github.com/go-mclib/guiframework/pkg/gui/menu"
	"github.com/go-mclib/guiframework/pkg/host"
	"github.com/go-mclib/guiframework/pkg/host/modules/wire"
	"github.com/go-mclib/guiframework/pkg/inventory"
	"github.com/go-mclib/guiframework/pkg/item"
)

// spread builds the drag the host would apply when placing one item of
// cursor into each raw slot.
func spread(p *host.Player, cursor item.Stack, raws ...int) host.DragEvent {
	v := p.OpenView()
	ev := host.DragEvent{
		Who:       p,
		View:      v,
		Type:      host.DragSingle,
		OldCursor: cursor,
		Cursor:    cursor.WithAmount(cursor.Amount - len(raws)),
		NewItems:  make(map[int]item.Stack, len(raws)),
	}
	for _, raw := range raws {
		prior := v.Item(raw)
		if prior.IsEmpty() {
			ev.NewItems[raw] = cursor.WithAmount(1)
		} else {
			ev.NewItems[raw] = prior.WithAmount(prior.Amount + 1)
		}
	}
	return ev
}

func total(v *inventory.View, m item.Material) int {
	n := 0
	for raw := range v.CountSlots() {
		if s := v.Item(raw); s.Material == m {
			n += s.Amount
		}
	}
	return n
}

func TestDragConservesItems(t *testing.T) {
	h, m, p := newHost(t)
	screen := menu.NewScreen("shop", 3, 1).WithEditableSection(gui.SectionRange(0, 6))
	m.Open(menu.New("shop").AddScreen(screen), p)
	p.SetCursor(item.Of(stone, 10))

	ev := spread(p, p.Cursor(), 0, 1, 2, 3, 4, 5, 6, 18, 19, 20)
	require.Equal(t, host.Cancel, h.Dispatch(ev))

	top := screen.Page(0)
	for slot := range 7 {
		require.Equal(t, item.Of(stone, 1), top.Item(slot), "editable slot %d", slot)
	}
	for _, slot := range []int{18, 19, 20} {
		require.True(t, top.Item(slot).IsEmpty(), "locked slot %d", slot)
	}

	require.True(t, p.Cursor().IsEmpty(), "cursor holds the host's leftover until the return")
	require.Equal(t, 1, h.PendingTasks(), "cursor return waits for the next tick")
	h.Tick()
	require.Equal(t, item.Of(stone, 3), p.Cursor())
	require.Equal(t, 10, total(p.OpenView(), stone)+p.Cursor().Amount)
}

func TestDragMergesIntoExistingStacks(t *testing.T) {
	_, m, p := newHost(t)
	screen := menu.NewScreen("shop", 3, 1).WithEditableSection(gui.SectionRange(0, 8))
	m.Open(menu.New("shop").AddScreen(screen), p)
	top := screen.Page(0)
	top.SetItem(0, item.Of(stone, 5))

	ev := spread(p, item.Of(stone, 4), 0, 1, 9, 10)
	d := ReconcileDrag(ev, screen)

	require.Equal(t, Cancel, d.Outcome)
	require.Equal(t, 2, d.ReturnToCursor)
	require.Equal(t, 2, d.Applied)
	require.Equal(t, map[int]item.Stack{
		0: item.Of(stone, 6),
		1: item.Of(stone, 1),
	}, d.Rewrites)
	require.Equal(t, 4, d.Applied+d.ReturnToCursor)
}

func TestDragIntoEditableOnlyIsAllowed(t *testing.T) {
	h, m, p := newHost(t)
	screen := menu.NewScreen("shop", 3, 1).WithEditableSection(gui.SectionRange(0, 8))
	m.Open(menu.New("shop").AddScreen(screen), p)
	p.SetCursor(item.Of(stone, 4))

	bottom := screen.Page(0).Size()
	require.Equal(t, host.Allow, h.Dispatch(spread(p, p.Cursor(), 0, 1, bottom)))
	require.Equal(t, item.Of(stone, 1), p.Cursor())
	require.Zero(t, h.PendingTasks())
}

func TestDragWithoutEditableSection(t *testing.T) {
	h, m, p := newHost(t)
	screen := menu.NewScreen("shop", 3, 1)
	m.Open(menu.New("shop").AddScreen(screen), p)
	size := screen.Page(0).Size()

	d := ReconcileDrag(spread(p, item.Of(stone, 4), size, size+1), screen)
	require.Equal(t, Allow, d.Outcome)

	p.SetCursor(item.Of(stone, 4))
	require.Equal(t, host.Cancel, h.Dispatch(spread(p, p.Cursor(), 0, size)))
	require.Equal(t, item.Of(stone, 4), p.Cursor())
	require.True(t, screen.Page(0).Item(0).IsEmpty())
	require.True(t, p.OpenView().Item(size).IsEmpty())
}

func TestDragFilteredMaterial(t *testing.T) {
	h, m, p := newHost(t)
	screen := menu.NewScreen("shop", 3, 1).
		WithEditableSection(gui.SectionRange(0, 8)).
		WithEditFilters(gui.NewEditFilters(gui.Blacklist, stone))
	m.Open(menu.New("shop").AddScreen(screen), p)
	p.SetCursor(item.Of(stone, 3))

	require.Equal(t, host.Cancel, h.Dispatch(spread(p, p.Cursor(), 0, 1, 2)))
	require.Zero(t, total(p.OpenView(), stone))
	require.Equal(t, item.Of(stone, 3), p.Cursor())
	require.Zero(t, h.PendingTasks())
}

func TestDragOutsideGuiIsIgnored(t *testing.T) {
	h, _, p := newHost(t)
	p.OpenInventory(inventory.New(inventory.GenericMenu(1), "chest"))
	p.SetCursor(item.Of(stone, 2))

	require.Equal(t, host.Allow, h.Dispatch(spread(p, p.Cursor(), 0, 1)))
	require.True(t, p.Cursor().IsEmpty())
}

// lockedShop opens a three-row shop whose only editable slots are 0-8.
func lockedShop(m *Module, p *host.Player) *menu.Screen {
	screen := menu.NewScreen("shop", 3, 1).WithEditableSection(gui.SectionRange(0, 8))
	m.Open(menu.New("shop").AddScreen(screen), p)
	return screen
}

func TestDragReturnAfterPlaceBeforeTick(t *testing.T) {
	h, m, p := newHost(t)
	screen := lockedShop(m, p)
	p.SetCursor(item.Of(stone, 12))

	require.Equal(t, host.Cancel, h.Dispatch(spread(p, p.Cursor(), 0, 1, 2, 3, 4, 5, 6, 18, 19, 20)))
	require.Equal(t, item.Of(stone, 2), p.Cursor())

	require.Equal(t, host.Allow, h.Dispatch(click(p, 8, host.ClickLeft, host.ActionPlaceAll)))
	require.Equal(t, item.Of(stone, 2), screen.Page(0).Item(8))
	require.True(t, p.Cursor().IsEmpty())

	h.Tick()
	require.Equal(t, item.Of(stone, 3), p.Cursor())
	require.Equal(t, 12, total(p.OpenView(), stone)+p.Cursor().Amount)
}

func TestDragReturnKeepsOtherCursorItems(t *testing.T) {
	h, m, p := newHost(t)
	screen := lockedShop(m, p)
	screen.Page(0).SetItem(8, item.Of(diamond, 5))
	p.SetCursor(item.Of(stone, 10))

	h.Dispatch(spread(p, p.Cursor(), 0, 1, 2, 3, 4, 5, 6, 18, 19, 20))
	require.Equal(t, host.Allow, h.Dispatch(click(p, 8, host.ClickLeft, host.ActionPickupAll)))
	require.Equal(t, item.Of(diamond, 5), p.Cursor())

	h.Tick()
	require.Equal(t, item.Of(diamond, 5), p.Cursor())
	require.Equal(t, 3, p.Inventory.Count(stone))
	require.Equal(t, 10, total(p.OpenView(), stone))
}

func TestReturnToPlayerSpills(t *testing.T) {
	h, _, p := newHost(t)
	var dropped []item.Stack
	h.OnDrop(func(_ *host.Player, s item.Stack) { dropped = append(dropped, s) })

	p.SetCursor(item.Of(stone, 63))
	returnToPlayer(p, item.Of(stone, 3))
	require.Equal(t, item.Of(stone, 64), p.Cursor())
	require.Equal(t, 2, p.Inventory.Count(stone))
	require.Empty(t, dropped)

	dirt := item.MustMaterial("dirt")
	for slot := inventory.SlotMainStart; slot < inventory.SlotHotbarEnd; slot++ {
		p.Inventory.SetItem(slot, item.Of(dirt, item.MaxStackSize))
	}
	p.SetCursor(item.Of(diamond, 1))
	returnToPlayer(p, item.Of(stone, 3))
	require.Equal(t, item.Of(diamond, 1), p.Cursor())
	require.Equal(t, []item.Stack{item.Of(stone, 3)}, dropped)
}

func TestQuickCraftPacketsOverLockedSlots(t *testing.T) {
	tests := []struct {
		name   string
		kind   int
		cursor int
		slots  []int
		slot0  int
		slot2  int
		after  int
	}{
		// 20 split over 4: slot 2 only has room for 2, slots 10 and 11 are locked
		{"even split", 0, 20, []int{0, 2, 10, 11}, 5, 64, 13},
		// slot 1 is past the cursor amount and never joins the drag
		{"one each", 1, 3, []int{0, 10, 11, 1}, 1, 62, 2},
	}

	for _, tt := range tests {
		h, m, p := newHost(t)
		h.Register(wire.New())
		screen := lockedShop(m, p)
		top := screen.Page(0)
		top.SetItem(2, item.Of(stone, 62))
		p.SetCursor(item.Of(stone, tt.cursor))
		before := total(p.OpenView(), stone) + tt.cursor

		w := wire.From(h)
		window := p.OpenView().WindowID
		require.NoError(t, w.Click(p.ID, window, wire.ModeQuickCraft, tt.kind<<2, inventory.SlotOutside))
		for _, raw := range tt.slots {
			require.NoError(t, w.Click(p.ID, window, wire.ModeQuickCraft, tt.kind<<2|1, raw))
		}
		require.NoError(t, w.Click(p.ID, window, wire.ModeQuickCraft, tt.kind<<2|2, inventory.SlotOutside))
		h.Tick()

		require.Equal(t, tt.slot0, top.Item(0).Amount, tt.name)
		require.Equal(t, tt.slot2, top.Item(2).Amount, tt.name)
		require.True(t, top.Item(10).IsEmpty(), tt.name)
		require.True(t, top.Item(11).IsEmpty(), tt.name)
		require.Equal(t, tt.after, p.Cursor().Amount, tt.name)
		require.Equal(t, before, total(p.OpenView(), stone)+p.Cursor().Amount, tt.name)
	}
}
