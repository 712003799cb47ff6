package host

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/go-mclib/guiframework/pkg/item"
)

// ErrUnknownPlayer is returned for operations on a player that is not online.
var ErrUnknownPlayer = errors.New("unknown player")

// DefaultTickRate is the number of ticks per second of a vanilla server.
const DefaultTickRate = 20

// Host is one live server session. Every method must be called from the
// goroutine running Run (or, without Run, from a single goroutine); other
// goroutines hand work over with Post.
type Host struct {
	Verbose  bool
	TickRate int
	Logger   *log.Logger

	// modules
	modules       []Module
	modulesByName map[string]Module
	handlers      []Handler
	onDrop        []func(p *Player, s item.Stack)

	players map[uuid.UUID]*Player
	tasks   taskQueue
	tick    uint64
	inbox   chan func()
}

// New creates a host with no modules. Register modules before dispatching events.
func New() *Host {
	return &Host{
		TickRate:      DefaultTickRate,
		Logger:        log.New(os.Stdout, "", log.LstdFlags),
		modulesByName: make(map[string]Module),
		players:       make(map[uuid.UUID]*Player),
		inbox:         make(chan func(), 256),
	}
}

// Register adds a module to the host. Panics on duplicate name.
func (h *Host) Register(m Module) {
	if _, exists := h.modulesByName[m.Name()]; exists {
		panic("module already registered: " + m.Name())
	}
	h.modules = append(h.modules, m)
	h.modulesByName[m.Name()] = m
	m.Init(h)
}

// Module returns a registered module by name, or nil.
func (h *Host) Module(name string) Module {
	return h.modulesByName[name]
}

// RegisterHandler appends a lightweight event observer (escape hatch).
func (h *Host) RegisterHandler(fn Handler) {
	h.handlers = append(h.handlers, fn)
}

// Dispatch runs ev through every module. The event is cancelled when any
// module cancels it; otherwise the host applies its default behavior.
func (h *Host) Dispatch(ev Event) Verdict {
	verdict := Allow
	for _, m := range h.modules {
		if m.HandleEvent(ev) == Cancel {
			verdict = Cancel
		}
	}
	if verdict == Allow {
		h.apply(ev)
	}
	for _, fn := range h.handlers {
		fn(h, ev, verdict)
	}
	return verdict
}

// OnDrop registers a callback for every stack a player drops into the world.
func (h *Host) OnDrop(cb func(p *Player, s item.Stack)) {
	h.onDrop = append(h.onDrop, cb)
}

// RunTask queues fn to run on the next tick, after the current event has
// been fully applied. Tasks run in submission order.
func (h *Host) RunTask(fn func()) {
	h.tasks.push(fn)
}

// PendingTasks returns the number of tasks waiting for the next tick.
func (h *Host) PendingTasks() int { return h.tasks.len() }

// Tick runs every task queued before the tick started.
func (h *Host) Tick() {
	h.tick++
	h.tasks.drain()
}

// CurrentTick returns the number of ticks run so far.
func (h *Host) CurrentTick() uint64 { return h.tick }

// Post hands fn to the goroutine running Run. Safe for concurrent use.
func (h *Host) Post(fn func()) {
	h.inbox <- fn
}

// Run executes posted work and ticks at TickRate until ctx is cancelled.
func (h *Host) Run(ctx context.Context) error {
	rate := h.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-h.inbox:
			fn()
		case <-ticker.C:
			h.Tick()
		}
	}
}

// Reset clears pending tasks and resets every module.
func (h *Host) Reset() {
	h.tasks.clear()
	for _, m := range h.modules {
		m.Reset()
	}
}

// AddPlayer connects a player with an empty inventory.
func (h *Host) AddPlayer(id uuid.UUID, name string) *Player {
	p := newPlayer(h, id, name)
	h.players[id] = p
	if h.Verbose {
		h.Logger.Printf("host: %s joined (%s)", name, id)
	}
	return p
}

// Player returns an online player, or nil.
func (h *Host) Player(id uuid.UUID) *Player {
	return h.players[id]
}

// RemovePlayer disconnects a player, dispatching a QuitEvent while the
// player still reports its open view.
func (h *Host) RemovePlayer(id uuid.UUID) error {
	p, ok := h.players[id]
	if !ok {
		return ErrUnknownPlayer
	}
	h.Dispatch(QuitEvent{Who: p, View: p.view})
	p.view = p.defaultView
	delete(h.players, id)
	if h.Verbose {
		h.Logger.Printf("host: %s left", p.Name)
	}
	return nil
}
