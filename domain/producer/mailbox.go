package producer

import (
	"sync"
	"sync/atomic"
)

// Mailbox is a single-slot handoff from the producer goroutine to the UI
// thread. Put overwrites an unconsumed frame and counts the drop; Take empties
// the slot. The zero value is ready to use.
type Mailbox struct {
	mu      sync.Mutex
	payload []byte
	full    bool
	drops   atomic.Uint64
	puts    atomic.Uint64
}

// NewMailbox returns an empty mailbox.
func NewMailbox() *Mailbox { return &Mailbox{} }

// Put stores payload, replacing any frame not yet taken.
func (m *Mailbox) Put(payload []byte) {
	if m == nil {
		return
	}
	m.mu.Lock()
	if m.full {
		m.drops.Add(1)
	}
	m.payload = payload
	m.full = true
	m.mu.Unlock()
	m.puts.Add(1)
}

// Take returns the stored frame and empties the slot. ok is false when the
// slot was empty.
func (m *Mailbox) Take() (payload []byte, ok bool) {
	if m == nil {
		return nil, false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.full {
		return nil, false
	}
	payload, m.payload, m.full = m.payload, nil, false
	return payload, true
}

// Drops returns how many frames were overwritten before being taken.
func (m *Mailbox) Drops() uint64 {
	if m == nil {
		return 0
	}
	return m.drops.Load()
}

// Puts returns how many frames were stored.
func (m *Mailbox) Puts() uint64 {
	if m == nil {
		return 0
	}
	return m.puts.Load()
}
