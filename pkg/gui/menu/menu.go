// Package menu is a small Container/Screen implementation: a menu is an
// ordered list of paged screens that tracks where each viewer is.
package menu

import (
	"github.com/google/uuid"

	"github.com/go-mclib/guiframework/pkg/gui"
	"github.com/go-mclib/guiframework/pkg/host"
)

type viewer struct {
	screen int
	page   int
}

// Menu is a multi-screen container.
type Menu struct {
	ID uuid.UUID

	title      string
	persistent bool
	screens    []*Screen
	viewers    map[uuid.UUID]*viewer
}

// Option configures a Menu.
type Option func(*Menu)

// Persistent keeps the menu registered after its last viewer leaves.
func Persistent() Option {
	return func(m *Menu) { m.persistent = true }
}

// New creates an empty menu.
func New(title string, opts ...Option) *Menu {
	m := &Menu{
		ID:      uuid.New(),
		title:   title,
		viewers: make(map[uuid.UUID]*viewer),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AddScreen appends a screen; the first screen is shown on Open.
func (m *Menu) AddScreen(s *Screen) *Menu {
	m.screens = append(m.screens, s)
	return m
}

func (m *Menu) Title() string { return m.title }

func (m *Menu) Screens() []gui.Screen {
	out := make([]gui.Screen, len(m.screens))
	for i, s := range m.screens {
		out[i] = s
	}
	return out
}

func (m *Menu) IsPersistent() bool { return m.persistent }
func (m *Menu) HasViewers() bool   { return len(m.viewers) > 0 }

// Viewers returns the number of players viewing the menu.
func (m *Menu) Viewers() int { return len(m.viewers) }

// Position returns the screen and page a player is on.
func (m *Menu) Position(p *host.Player) (screen, page int, ok bool) {
	v, ok := m.viewers[p.ID]
	if !ok {
		return 0, 0, false
	}
	return v.screen, v.page, true
}

// Open shows the first screen to p, or where p already is.
func (m *Menu) Open(p *host.Player) {
	if len(m.screens) == 0 {
		return
	}
	v, ok := m.viewers[p.ID]
	if !ok {
		v = &viewer{}
		m.viewers[p.ID] = v
	}
	m.show(p, v)
}

func (m *Menu) RunCloseFor(p *host.Player) {
	delete(m.viewers, p.ID)
}

func (m *Menu) FirstPage(p *host.Player) {
	m.moveTo(p, func(v *viewer, _ *Screen) { v.page = 0 })
}

func (m *Menu) LastPage(p *host.Player) {
	m.moveTo(p, func(v *viewer, s *Screen) { v.page = s.Pages() - 1 })
}

func (m *Menu) PageBackwards(p *host.Player) {
	m.moveTo(p, func(v *viewer, _ *Screen) { v.page = max(v.page-1, 0) })
}

func (m *Menu) PageForwards(p *host.Player) {
	m.moveTo(p, func(v *viewer, s *Screen) { v.page = min(v.page+1, s.Pages()-1) })
}

func (m *Menu) TransitionBackwards(p *host.Player) {
	m.moveTo(p, func(v *viewer, _ *Screen) {
		if v.screen > 0 {
			v.screen--
			v.page = 0
		}
	})
}

func (m *Menu) TransitionForwards(p *host.Player) {
	m.moveTo(p, func(v *viewer, _ *Screen) {
		if v.screen < len(m.screens)-1 {
			v.screen++
			v.page = 0
		}
	})
}

// moveTo applies step to p's position and reopens only when it changed.
func (m *Menu) moveTo(p *host.Player, step func(v *viewer, s *Screen)) {
	v, ok := m.viewers[p.ID]
	if !ok {
		return
	}
	before := *v
	step(v, m.screens[v.screen])
	if *v != before {
		m.show(p, v)
	}
}

func (m *Menu) show(p *host.Player, v *viewer) {
	s := m.screens[v.screen]
	s.UpdateInventories()
	p.OpenInventory(s.Page(v.page))
}
