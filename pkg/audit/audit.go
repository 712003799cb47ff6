// Package audit writes arbitration decisions as zstd compressed JSON lines,
// one file per hour of decision time.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/klauspost/compress/zstd"
)

const hourLayout = "2006-01-02-15"

// Entry is one recorded decision.
type Entry struct {
	Time     time.Time `json:"time"`
	Tick     uint64    `json:"tick"`
	PlayerID string    `json:"player_id"`
	Player   string    `json:"player"`
	Event    string    `json:"event"`
	Slot     int       `json:"slot"`
	Outcome  string    `json:"outcome"`
	Reason   string    `json:"reason,omitempty"`
	Returned int       `json:"returned,omitempty"`
}

// Logger records entries under <dir>/audit/audit-<yyyy-mm-dd-hh>.jsonl.zst.
// The file is picked by the entry's own time, so replayed or late entries
// land next to the decisions they belong with.
type Logger struct {
	dir string

	mu   sync.Mutex
	hour string
	f    *os.File
	enc  *zstd.Encoder
}

func NewLogger(dir string) *Logger {
	return &Logger{dir: filepath.Join(dir, "audit")}
}

// Record appends e. An entry without a time is stamped with the current one.
func (l *Logger) Record(e Entry) error {
	if e.Time.IsZero() {
		e.Time = time.Now()
	}
	b, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("audit: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.open(e.Time.UTC().Format(hourLayout)); err != nil {
		return err
	}
	if _, err := l.enc.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("audit: %w", err)
	}
	// each record ends a zstd frame so a crash loses at most the current one
	return l.enc.Flush()
}

func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.release()
}

// Path returns the file that holds entries recorded at t.
func (l *Logger) Path(t time.Time) string {
	return filepath.Join(l.dir, "audit-"+t.UTC().Format(hourLayout)+".jsonl.zst")
}

func (l *Logger) open(hour string) error {
	if l.enc != nil && hour == l.hour {
		return nil
	}
	if err := l.release(); err != nil {
		return err
	}
	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return fmt.Errorf("audit: %w", err)
	}
	path := filepath.Join(l.dir, "audit-"+hour+".jsonl.zst")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("audit: %w", err)
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("audit: %w", err)
	}
	l.f, l.enc, l.hour = f, enc, hour
	return nil
}

func (l *Logger) release() error {
	if l.enc == nil {
		return nil
	}
	err := l.enc.Close()
	if cerr := l.f.Close(); err == nil {
		err = cerr
	}
	l.f, l.enc, l.hour = nil, nil, ""
	return err
}
