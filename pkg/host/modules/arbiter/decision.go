package arbiter

import (
	"github.com/go-mclib/guiframework/pkg/gui"
	"github.com/go-mclib/guiframework/pkg/host"
	"github.com/go-mclib/guiframework/pkg/item"
)

// Outcome is the arbitration result for one event.
type Outcome int

const (
	// Pass means the event does not concern an active GUI.
	Pass Outcome = iota
	// Allow lets the host apply the event unmodified.
	Allow
	// Cancel rejects the event.
	Cancel
	// Dispatch rejects the event and activates a button.
	Dispatch
)

func (o Outcome) String() string {
	switch o {
	case Allow:
		return "allow"
	case Cancel:
		return "cancel"
	case Dispatch:
		return "dispatch"
	default:
		return "pass"
	}
}

// Verdict maps the outcome onto the host's cancel flag.
func (o Outcome) Verdict() host.Verdict {
	if o == Cancel || o == Dispatch {
		return host.Cancel
	}
	return host.Allow
}

// ClickDecision is the result of ArbitrateClick.
type ClickDecision struct {
	Outcome Outcome
	Reason  string
	// Resolution and Button are set for Dispatch.
	Resolution Resolution
	Button     gui.Button
}

// DragDecision is the result of ReconcileDrag.
type DragDecision struct {
	Outcome Outcome
	Reason  string
	// Rewrites holds the legitimate part of a partially rejected drag, keyed
	// by raw slot, to be written after the host's own application is cancelled.
	Rewrites map[int]item.Stack
	// ReturnToCursor is the rejected amount owed back to the cursor.
	ReturnToCursor int
	// Applied is the amount Rewrites add on top of the slots' prior contents.
	Applied int
	// Kind is the dragged material.
	Kind item.Material
}

func pass(reason string) ClickDecision   { return ClickDecision{Outcome: Pass, Reason: reason} }
func allow(reason string) ClickDecision  { return ClickDecision{Outcome: Allow, Reason: reason} }
func cancel(reason string) ClickDecision { return ClickDecision{Outcome: Cancel, Reason: reason} }
