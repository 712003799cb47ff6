package arbiter

import (
	"github.com/go-mclib/guiframework/pkg/host"
	"github.com/go-mclib/guiframework/pkg/inventory"
)

// onClose defers reconciliation: while the close is dispatched the player
// still reports the closed view as open.
func (m *Module) onClose(ev host.CloseEvent) {
	p := ev.Who
	closed := ev.View.Top
	m.host.RunTask(func() {
		m.reconcileClose(p, closed, p.OpenView().Top)
	})
}

// onQuit reconciles at once; a leaving player has nothing open afterwards.
func (m *Module) onQuit(ev host.QuitEvent) {
	if ev.View == nil || ev.View == ev.Who.DefaultView() {
		return
	}
	m.reconcileClose(ev.Who, ev.View.Top, nil)
}

// reconcileClose stops p viewing the container owning closed unless p is
// still inside some GUI (current), and unregisters the container once it is
// neither persistent nor viewed. It reports whether p was detached.
func (m *Module) reconcileClose(p *host.Player, closed, current *inventory.Inventory) bool {
	eventContainer := m.registry.ResolveContainer(closed)
	if eventContainer == nil {
		return false
	}
	if current != nil && m.registry.ResolveContainer(current) != nil {
		return false
	}

	eventContainer.RunCloseFor(p)
	m.record(p, "close", -1, Allow, "viewer left", 0)

	if !eventContainer.IsPersistent() && !eventContainer.HasViewers() {
		m.registry.Unregister(eventContainer)
		if m.host.Verbose {
			m.host.Logger.Printf("arbiter: unregistered gui after %s left (%d active)", p.Name, len(m.registry.active))
		}
	}
	return true
}
