// Package wire turns serverbound container packets into host events.
package wire

import (
	"fmt"
	"slices"

	"github.com/go-mclib/data/pkg/packets"
	ns "github.com/go-mclib/protocol/java_protocol/net_structures"
	"github.com/google/uuid"

	"github.com/go-mclib/guiframework/pkg/host"
	"github.com/go-mclib/guiframework/pkg/item"
)

const ModuleName = "wire"

// drag is an in-progress quick craft.
type drag struct {
	kind  int
	slots []int
}

type Module struct {
	host  *host.Host
	drags map[uuid.UUID]*drag

	onDesync []func(p *host.Player, carried ns.HashedSlot)
}

func New() *Module {
	return &Module{drags: make(map[uuid.UUID]*drag)}
}

func (m *Module) Name() string { return ModuleName }

func (m *Module) Init(h *host.Host) { m.host = h }

func (m *Module) Reset() { m.drags = make(map[uuid.UUID]*drag) }

// From retrieves the wire module from a host.
func From(h *host.Host) *Module {
	mod := h.Module(ModuleName)
	if mod == nil {
		return nil
	}
	return mod.(*Module)
}

// events

// OnDesync is called when the cursor a client reports differs from the
// server's after a click was processed.
func (m *Module) OnDesync(cb func(p *host.Player, carried ns.HashedSlot)) {
	m.onDesync = append(m.onDesync, cb)
}

func (m *Module) HandleEvent(ev host.Event) host.Verdict {
	if q, ok := ev.(host.QuitEvent); ok {
		delete(m.drags, q.Who.ID)
	}
	return host.Allow
}

// HandlePacket decodes a serverbound container packet sent by player id.
func (m *Module) HandlePacket(id uuid.UUID, pkt any) error {
	p := m.host.Player(id)
	if p == nil {
		return fmt.Errorf("wire: %s: %w", id, host.ErrUnknownPlayer)
	}
	switch d := pkt.(type) {
	case *packets.C2SContainerClick:
		m.handleClick(p, d)
	case *packets.C2SContainerClose:
		m.handleClose(p, d)
	default:
		return fmt.Errorf("wire: unsupported packet %T", pkt)
	}
	return nil
}

// Click handles an already decoded container click from player id.
func (m *Module) Click(id uuid.UUID, window int32, mode, button, raw int) error {
	p := m.host.Player(id)
	if p == nil {
		return fmt.Errorf("wire: %s: %w", id, host.ErrUnknownPlayer)
	}
	m.containerClick(p, window, mode, button, raw)
	return nil
}

func (m *Module) handleClose(p *host.Player, d *packets.C2SContainerClose) {
	delete(m.drags, p.ID)
	if int32(d.WindowId) != p.OpenView().WindowID {
		return
	}
	p.CloseInventory()
}

func (m *Module) handleClick(p *host.Player, d *packets.C2SContainerClick) {
	if !m.containerClick(p, int32(d.WindowId), int(d.Mode), int(d.Button), int(d.Slot)) {
		return
	}
	if !sameStack(d.CarriedItem, p.Cursor()) {
		for _, cb := range m.onDesync {
			cb(p, d.CarriedItem)
		}
	}
}

// containerClick reports whether the click applied to the open view.
func (m *Module) containerClick(p *host.Player, window int32, mode, button, raw int) bool {
	v := p.OpenView()
	if window != v.WindowID {
		if m.host.Verbose {
			m.host.Logger.Printf("wire: %s clicked window %d, open is %d", p.Name, window, v.WindowID)
		}
		return false
	}

	if raw != slotOutside && (raw < 0 || raw >= v.CountSlots()) {
		return false
	}

	if mode == ModeQuickCraft {
		m.quickCraft(p, button, raw)
	} else {
		delete(m.drags, p.ID)
		g := Classify(p, v, mode, button, raw)
		m.click(p, g, raw)
	}
	return true
}

const slotOutside = -999

func (m *Module) click(p *host.Player, g Gesture, raw int) host.Verdict {
	v := p.OpenView()
	current := item.Empty()
	if raw >= 0 {
		current = v.Item(raw)
	}
	return m.host.Dispatch(host.ClickEvent{
		Who:          p,
		View:         v,
		Click:        g.Click,
		Action:       g.Action,
		RawSlot:      raw,
		HotbarButton: g.HotbarButton,
		Cursor:       p.Cursor(),
		Current:      current,
	})
}

func (m *Module) quickCraft(p *host.Player, button, raw int) {
	stage, kind := dragStage(button), dragKind(button)
	st := m.drags[p.ID]

	switch stage {
	case dragStart:
		delete(m.drags, p.ID)
		if raw != slotOutside || p.Cursor().IsEmpty() {
			return
		}
		if kind == dragMiddle && !p.Creative {
			return
		}
		m.drags[p.ID] = &drag{kind: kind}

	case dragAdd:
		if st == nil || st.kind != kind || raw < 0 {
			return
		}
		cursor := p.Cursor()
		current := p.OpenView().Item(raw)
		if !current.IsEmpty() && !current.Similar(cursor) {
			return
		}
		if slices.Contains(st.slots, raw) || len(st.slots) >= cursor.Amount {
			return
		}
		st.slots = append(st.slots, raw)

	case dragEnd:
		delete(m.drags, p.ID)
		if st == nil || st.kind != kind || len(st.slots) == 0 {
			return
		}
		if kind == dragMiddle {
			if m.host.Verbose {
				m.host.Logger.Printf("wire: %s middle drag ignored", p.Name)
			}
			return
		}
		if len(st.slots) == 1 {
			button := 0
			if kind == dragRight {
				button = 1
			}
			raw := st.slots[0]
			m.click(p, Classify(p, p.OpenView(), ModePickup, button, raw), raw)
			return
		}
		m.host.Dispatch(spread(p, st.kind, st.slots))
	}
}

// spread computes the drag the host applies: the cursor split evenly for a
// left drag, one item per slot for a right drag, capped by free space.
func spread(p *host.Player, kind int, slots []int) host.DragEvent {
	v := p.OpenView()
	cursor := p.Cursor()
	ev := host.DragEvent{
		Who:       p,
		View:      v,
		Type:      host.DragEven,
		OldCursor: cursor,
		NewItems:  make(map[int]item.Stack, len(slots)),
	}
	per := cursor.Amount / len(slots)
	if kind == dragRight {
		ev.Type = host.DragSingle
		per = 1
	}

	left := cursor.Amount
	for _, raw := range slots {
		prior := v.Item(raw)
		n := min(per, prior.Space(), left)
		if prior.IsEmpty() {
			prior = cursor.WithAmount(0)
		}
		ev.NewItems[raw] = prior.WithAmount(prior.Amount + n)
		left -= n
	}
	ev.Cursor = cursor.WithAmount(left).Normalize()
	return ev
}

// sameStack reports whether a client-reported stack matches s by kind and count.
func sameStack(hs ns.HashedSlot, s item.Stack) bool {
	if !hs.Present || int(hs.Count) <= 0 {
		return s.IsEmpty()
	}
	return !s.IsEmpty() && item.Material(int32(hs.ItemID)) == s.Material && int(hs.Count) == s.Amount
}
