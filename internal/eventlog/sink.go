// Package eventlog provides the append-only, in-memory event sink shared by
// the banking core. Every business-level event (account created, deposit
// rejected, transfer completed) is recorded here with a unique entry ID,
// independent of any account's transaction history.
package eventlog

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/corebank-ledger/internal/idgen"
)

// Sink is the process-wide event log. It is constructed once at startup and
// passed by reference into the bank and account layers. Appends are
// mutex-guarded and safe for concurrent writers; reads return a snapshot
// copy, never a live view.
type Sink struct {
	mu      sync.Mutex
	entries []Entry
	ids     *idgen.Generator
	logger  *slog.Logger
}

// NewSink creates an empty sink. Recorded events are mirrored to the given
// structured logger at the matching level.
func NewSink(ids *idgen.Generator, logger *slog.Logger) *Sink {
	return &Sink{
		ids:    ids,
		logger: logger,
	}
}

// Record appends a new entry with a fresh entry ID and the current time.
func (s *Sink) Record(level Level, format string, args ...any) {
	description := fmt.Sprintf(format, args...)

	entry := Entry{
		ID:          s.ids.Next(idgen.ClassLogEntry),
		Timestamp:   time.Now(),
		Level:       level,
		Description: description,
	}

	s.mu.Lock()
	s.entries = append(s.entries, entry)
	s.mu.Unlock()

	switch level {
	case LevelWarning:
		s.logger.Warn(description, "entry_id", entry.ID)
	case LevelError:
		s.logger.Error(description, "entry_id", entry.ID)
	default:
		s.logger.Info(description, "entry_id", entry.ID)
	}
}

// Info records an informational event.
func (s *Sink) Info(format string, args ...any) {
	s.Record(LevelInfo, format, args...)
}

// Warning records a business-rule violation.
func (s *Sink) Warning(format string, args ...any) {
	s.Record(LevelWarning, format, args...)
}

// Error records an integrity or lookup failure.
func (s *Sink) Error(format string, args ...any) {
	s.Record(LevelError, format, args...)
}

// Snapshot returns a copy of all entries in append order.
func (s *Sink) Snapshot() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len reports the number of recorded entries.
func (s *Sink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Reset discards all recorded entries. Entry IDs keep increasing across
// resets so identifiers from a cleared log are never reissued.
func (s *Sink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}
