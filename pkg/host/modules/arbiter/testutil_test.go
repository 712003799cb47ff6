package arbiter

import (
	"io"
	"log"
	"testing"

	"github.com/google/uuid"

	"github.com/go-mclib/guiframework/pkg/host"
	"github.com/go-mclib/guiframework/pkg/item"
)

var (
	stone   = item.MustMaterial("stone")
	diamond = item.MustMaterial("diamond")
)

func newHost(t *testing.T) (*host.Host, *Module, *host.Player) {
	t.Helper()
	h := host.New()
	h.Logger = log.New(io.Discard, "", 0)
	m := New()
	h.Register(m)
	p := h.AddPlayer(uuid.New(), "steve")
	return h, m, p
}

func click(p *host.Player, raw int, c host.ClickType, a host.InventoryAction) host.ClickEvent {
	v := p.OpenView()
	return host.ClickEvent{
		Who:          p,
		View:         v,
		Click:        c,
		Action:       a,
		RawSlot:      raw,
		HotbarButton: -1,
		Cursor:       p.Cursor(),
		Current:      v.Item(raw),
	}
}
