// Package history implements the undo/redo manager: a bounded committed
// stack, a single pending snapshot, and a redo stack. Rapid consecutive
// edits coalesce into one undo step via a cancellable one-shot timer.
package history

import (
	"sync"
	"time"

	"github.com/yaklabco/mdedit/pkg/editor"
)

// DefaultCapacity bounds the undo stack; the oldest entries are evicted
// past it.
const DefaultCapacity = 100

// DefaultCoalesceDelay is the quiet period after which a pending edit
// group commits.
const DefaultCoalesceDelay = 500 * time.Millisecond

// Snapshot is one committed editor state.
type Snapshot struct {
	Text      string
	Selection editor.Selection
}

// entry pairs a restorable snapshot with the label of the edit that
// moved away from it.
type entry struct {
	snap  Snapshot
	label string
}

// Manager tracks text+selection history for one document. The
// coalescing timer fires on its own goroutine, so the manager guards
// its state with a mutex; everything else about it is synchronous.
type Manager struct {
	mu       sync.Mutex
	capacity int
	delay    time.Duration

	undo    []entry
	redo    []entry
	last    Snapshot
	pending *Snapshot

	// timerGen invalidates superseded timer callbacks that were already
	// in flight when their timer was stopped or replaced.
	timerGen uint64
	timer    *time.Timer
	closed   bool
}

// Option configures a Manager.
type Option func(*Manager)

// WithCapacity bounds the undo stack.
func WithCapacity(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.capacity = n
		}
	}
}

// WithCoalesceDelay sets the quiet period before a pending edit group
// commits.
func WithCoalesceDelay(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.delay = d
		}
	}
}

// NewManager creates a Manager seeded with an empty initial state.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		capacity: DefaultCapacity,
		delay:    DefaultCoalesceDelay,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetInitialState resets all history and seeds the reference state.
func (m *Manager) SetInitialState(text string, sel editor.Selection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopTimerLocked()
	m.undo = nil
	m.redo = nil
	m.pending = nil
	m.last = Snapshot{Text: text, Selection: sel}
}

// RecordChange observes a committed text+selection pair from the host.
// Pure selection moves never create history entries. A text change
// clears the redo stack, replaces the pending snapshot and restarts the
// coalescing timer.
func (m *Manager) RecordChange(text string, sel editor.Selection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}

	current := m.last.Text
	if m.pending != nil {
		current = m.pending.Text
	}
	if text == current {
		return
	}

	m.redo = nil
	m.pending = &Snapshot{Text: text, Selection: sel}

	m.stopTimerLocked()
	gen := m.timerGen
	m.timer = time.AfterFunc(m.delay, func() {
		m.timerFired(gen)
	})
}

// timerFired commits the pending group when the coalescing timer
// elapses. A callback that fired just before its timer was replaced or
// stopped may still reach here after waiting on the mutex; it must not
// commit the newer pending group, so only the current generation
// proceeds.
func (m *Manager) timerFired(gen uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed || gen != m.timerGen {
		return
	}
	m.commitLocked()
}

// BreakGroup commits any pending edit group immediately.
func (m *Manager) BreakGroup() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commitLocked()
}

// commitLocked pushes the state before the pending group onto the undo
// stack and makes the pending snapshot the new reference point.
func (m *Manager) commitLocked() {
	m.stopTimerLocked()
	if m.pending == nil {
		return
	}

	label := classifyEdit(m.last.Text, m.pending.Text)
	if len(m.undo) == 0 {
		// The bottom entry restores the seed state.
		label = "Initial"
	}
	m.undo = append(m.undo, entry{snap: m.last, label: label})
	if len(m.undo) > m.capacity {
		m.undo = m.undo[len(m.undo)-m.capacity:]
	}

	m.last = *m.pending
	m.pending = nil
}

// stopTimerLocked cancels the timer and invalidates any callback of it
// that is already in flight.
func (m *Manager) stopTimerLocked() {
	m.timerGen++
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}

// Undo commits any pending group, then restores the state before the
// newest undo entry. Returns false when there is nothing to undo.
func (m *Manager) Undo() (Snapshot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.undoLocked()
}

func (m *Manager) undoLocked() (Snapshot, bool) {
	m.commitLocked()
	if len(m.undo) == 0 {
		return Snapshot{}, false
	}
	top := m.undo[len(m.undo)-1]
	m.undo = m.undo[:len(m.undo)-1]
	m.redo = append(m.redo, entry{snap: m.last, label: top.label})
	m.last = top.snap
	return top.snap, true
}

// Redo re-applies the most recently undone edit group. Returns false
// when there is nothing to redo.
func (m *Manager) Redo() (Snapshot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.redoLocked()
}

func (m *Manager) redoLocked() (Snapshot, bool) {
	m.commitLocked()
	if len(m.redo) == 0 {
		return Snapshot{}, false
	}
	top := m.redo[len(m.redo)-1]
	m.redo = m.redo[:len(m.redo)-1]
	m.undo = append(m.undo, entry{snap: m.last, label: top.label})
	m.last = top.snap
	return top.snap, true
}

// UndoSteps undoes up to n steps and returns the final restored state.
func (m *Manager) UndoSteps(n int) (Snapshot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out Snapshot
	ok := false
	for i := 0; i < n; i++ {
		snap, more := m.undoLocked()
		if !more {
			break
		}
		out = snap
		ok = true
	}
	return out, ok
}

// RedoSteps redoes up to n steps and returns the final restored state.
func (m *Manager) RedoSteps(n int) (Snapshot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out Snapshot
	ok := false
	for i := 0; i < n; i++ {
		snap, more := m.redoLocked()
		if !more {
			break
		}
		out = snap
		ok = true
	}
	return out, ok
}

// CanUndo reports whether an undo step (committed or pending) exists.
func (m *Manager) CanUndo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.undo) > 0 || m.pending != nil
}

// CanRedo reports whether a redo step exists.
func (m *Manager) CanRedo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.redo) > 0
}

// UndoLabels returns the undo step labels, newest first.
func (m *Manager) UndoLabels() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	labels := make([]string, 0, len(m.undo))
	for i := len(m.undo) - 1; i >= 0; i-- {
		labels = append(labels, m.undo[i].label)
	}
	return labels
}

// RedoLabels returns the redo step labels, newest first.
func (m *Manager) RedoLabels() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	labels := make([]string, 0, len(m.redo))
	for i := len(m.redo) - 1; i >= 0; i-- {
		labels = append(labels, m.redo[i].label)
	}
	return labels
}

// Current returns the last committed reference state.
func (m *Manager) Current() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.pending != nil {
		return *m.pending
	}
	return m.last
}

// Close cancels the coalescing timer and drops further records. Safe to
// call more than once.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopTimerLocked()
	m.closed = true
}
