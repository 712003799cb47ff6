package host

// Verdict is a module's decision about an event.
type Verdict int

const (
	// Allow lets the host apply the event's default behavior.
	Allow Verdict = iota
	// Cancel stops the host from applying the event. It only affects the
	// event instance it was returned for.
	Cancel
)

func (v Verdict) String() string {
	if v == Cancel {
		return "cancel"
	}
	return "allow"
}

// Module is a pluggable event-handling component.
type Module interface {
	// Name returns a unique key for this module (e.g. "arbiter", "wire").
	Name() string
	// Init is called once when the module is registered on a host.
	// Store the *Host reference for later use.
	Init(h *Host)
	// HandleEvent is called for every event dispatched on the host.
	// Events are immutable inputs; side effects go through the host primitives.
	HandleEvent(ev Event) Verdict
	// Reset is called when the host session is reset to clear module state.
	Reset()
}

// Handler is a lightweight event observer for one-off matching. Handlers run
// after all modules and cannot cancel.
type Handler func(h *Host, ev Event, verdict Verdict)
