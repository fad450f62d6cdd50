// Package medium provides broadcast transports for published messages.
// A medium is an append-only log: every reader sees every record appended
// after the reader was created, in publish order.
package medium

import (
	"context"
	"log/slog"
	"sync"

	"chatter-hub/contract"
	"chatter-hub/domain"
	"chatter-hub/errors"
)

// compactThreshold is how large the in-memory log may grow before the
// prefix already consumed by every reader is dropped.
const compactThreshold = 4096

// Memory is the in-process medium. All readers share one log; each reader
// owns a cursor into it. The log prefix is reclaimed once every live reader
// has moved past it.
type Memory struct {
	mu      sync.Mutex
	log     *slog.Logger
	records []domain.Message
	base    int // sequence number of records[0]
	readers map[*memoryReader]struct{}
	closed  bool
}

func NewMemory(log *slog.Logger) *Memory {
	return &Memory{
		log:     log,
		readers: make(map[*memoryReader]struct{}),
	}
}

func (m *Memory) Publish(_ context.Context, msg domain.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return errors.ErrMediumClosed
	}
	m.records = append(m.records, msg)
	return nil
}

// NewReader anchors a cursor at the current tail: records published before
// this call are never visible to the new reader.
func (m *Memory) NewReader(_ context.Context) (contract.MediumReader, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, errors.ErrMediumClosed
	}
	r := &memoryReader{medium: m, cursor: m.base + len(m.records)}
	m.readers[r] = struct{}{}
	return r, nil
}

func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// compactLocked drops the prefix every live reader has consumed.
// Callers must hold mu.
func (m *Memory) compactLocked() {
	if len(m.records) < compactThreshold {
		return
	}
	min := m.base + len(m.records)
	for r := range m.readers {
		if r.cursor < min {
			min = r.cursor
		}
	}
	if min <= m.base {
		return
	}
	drop := min - m.base
	m.records = append([]domain.Message(nil), m.records[drop:]...)
	m.base = min
	m.log.Debug("Compacted medium log", "dropped", drop, "base", m.base)
}

type memoryReader struct {
	medium *Memory
	cursor int // sequence number of the next record to read
	closed bool
}

func (r *memoryReader) ReadNew(_ context.Context) ([]domain.Message, error) {
	m := r.medium
	m.mu.Lock()
	defer m.mu.Unlock()
	if r.closed {
		return nil, errors.ErrReaderClosed
	}
	if m.closed {
		return nil, errors.ErrMediumClosed
	}
	start := r.cursor - m.base
	if start >= len(m.records) {
		return nil, nil
	}
	batch := make([]domain.Message, len(m.records)-start)
	copy(batch, m.records[start:])
	r.cursor = m.base + len(m.records)
	m.compactLocked()
	return batch, nil
}

func (r *memoryReader) Close() error {
	m := r.medium
	m.mu.Lock()
	defer m.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true
	delete(m.readers, r)
	m.compactLocked()
	return nil
}
