package helpers

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/go-mclib/guiframework/pkg/audit"
	"github.com/go-mclib/guiframework/pkg/config"
	"github.com/go-mclib/guiframework/pkg/host"
	"github.com/go-mclib/guiframework/pkg/host/modules/arbiter"
	"github.com/go-mclib/guiframework/pkg/host/modules/wire"
)

// Flags holds common CLI flags for example hosts.
type Flags struct {
	ConfigPath  string
	Verbose     bool
	Interactive bool
}

// RegisterFlags registers the standard CLI flags on the default flag set.
func RegisterFlags(f *Flags) {
	flag.StringVar(&f.ConfigPath, "config", "", "path to a YAML config file")
	flag.BoolVar(&f.Verbose, "v", false, "verbose logging")
	flag.BoolVar(&f.Interactive, "i", false, "enable interactive mode with a command console")
}

// LoadConfig reads the config named by the flags; -v forces verbose logging.
func LoadConfig(f Flags) (config.Config, error) {
	cfg, err := config.Load(f.ConfigPath)
	if err != nil {
		return cfg, err
	}
	if f.Verbose {
		cfg.Verbose = true
	}
	return cfg, nil
}

// NewHost creates a host with the default modules (wire, arbiter). When the
// config names an audit directory every decision is written there.
func NewHost(cfg config.Config) *host.Host {
	h := host.New()
	h.Verbose = cfg.Verbose
	h.TickRate = cfg.TickRateHz

	h.Register(wire.New())
	arb := arbiter.New()
	if cfg.AuditDir != "" {
		arb.Audit = audit.NewLogger(cfg.AuditDir)
	}
	h.Register(arb)

	return h
}

// Close flushes the audit log, if any.
func Close(h *host.Host) error {
	arb := arbiter.From(h)
	if arb == nil {
		return nil
	}
	if l, ok := arb.Audit.(*audit.Logger); ok {
		if err := l.Close(); err != nil {
			return fmt.Errorf("close audit log: %w", err)
		}
	}
	return nil
}

// Run ticks the host until ctx is cancelled, logging unexpected errors.
func Run(ctx context.Context, h *host.Host) {
	if err := h.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		h.Logger.Println(err)
	}
}
