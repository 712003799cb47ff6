// Package arbiter enforces GUI semantics on inventory events: it resolves
// the GUI behind an inventory, dispatches button clicks, guards editable
// regions and keeps container registration in step with viewers.
package arbiter

import (
	"time"

	"github.com/go-mclib/guiframework/pkg/audit"
	"github.com/go-mclib/guiframework/pkg/gui"
	"github.com/go-mclib/guiframework/pkg/host"
)

const ModuleName = "arbiter"

// Recorder persists decisions. *audit.Logger implements it.
type Recorder interface {
	Record(e audit.Entry) error
}

type Module struct {
	host     *host.Host
	registry *Registry

	// Audit, when set, receives every decision other than Pass.
	Audit Recorder

	onDecision []func(p *host.Player, e audit.Entry)
}

func New() *Module {
	return &Module{registry: NewRegistry()}
}

func (m *Module) Name() string { return ModuleName }

func (m *Module) Init(h *host.Host) { m.host = h }

func (m *Module) Reset() { m.registry = NewRegistry() }

// From retrieves the arbiter module from a host.
func From(h *host.Host) *Module {
	mod := h.Module(ModuleName)
	if mod == nil {
		return nil
	}
	return mod.(*Module)
}

// events

func (m *Module) OnDecision(cb func(p *host.Player, e audit.Entry)) {
	m.onDecision = append(m.onDecision, cb)
}

func (m *Module) HandleEvent(ev host.Event) host.Verdict {
	switch e := ev.(type) {
	case host.ClickEvent:
		return m.onClick(e)
	case host.DragEvent:
		return m.onDrag(e)
	case host.CloseEvent:
		m.onClose(e)
	case host.QuitEvent:
		m.onQuit(e)
	}
	return host.Allow
}

// Registry exposes the active GUI registry.
func (m *Module) Registry() *Registry { return m.registry }

// Register marks c active so its inventories are arbitrated.
func (m *Module) Register(c gui.Container) bool { return m.registry.Register(c) }

// Unregister stops arbitrating c.
func (m *Module) Unregister(c gui.Container) bool { return m.registry.Unregister(c) }

// Open registers c and shows its first screen to p.
func (m *Module) Open(c gui.Container, p *host.Player) {
	if m.registry.Register(c) && m.host.Verbose {
		m.host.Logger.Printf("arbiter: registered gui for %s (%d active)", p.Name, len(m.registry.active))
	}
	c.Open(p)
}

func (m *Module) record(p *host.Player, kind string, rawSlot int, outcome Outcome, reason string, returned int) {
	if outcome == Pass {
		return
	}
	if m.host.Verbose {
		m.host.Logger.Printf("arbiter: %s %s slot %d -> %s (%s)", p.Name, kind, rawSlot, outcome, reason)
	}

	e := audit.Entry{
		Time:     time.Now().UTC(),
		Tick:     m.host.CurrentTick(),
		PlayerID: p.ID.String(),
		Player:   p.Name,
		Event:    kind,
		Slot:     rawSlot,
		Outcome:  outcome.String(),
		Reason:   reason,
		Returned: returned,
	}
	for _, cb := range m.onDecision {
		cb(p, e)
	}
	if m.Audit != nil {
		if err := m.Audit.Record(e); err != nil {
			m.host.Logger.Println("arbiter: failed to record decision:", err)
		}
	}
}
