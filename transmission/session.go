// Package transmission turns integers and text into the ordered role
// changes a receiver board decodes as bits.
//
// A Session holds everything one recipient's channel remembers between
// calls: the code currently held and whether a packet is in flight. It
// is passed explicitly to the Emitter and Framer and must not be shared
// between goroutines; callers serialize sends on the same recipient.
package transmission

import (
	"circuits-lab/domain/signal"
	"circuits-lab/errors"
	"fmt"
	"time"
)

// DefaultTimeout is the longest gap between two bits the receiver board
// waits before it drops the packet it is assembling.
const DefaultTimeout = 10 * time.Second

type State int

const (
	Idle State = iota
	InFlight
)

func (s State) String() string {
	if s == InFlight {
		return "IN_FLIGHT"
	}
	return "IDLE"
}

type Session struct {
	// Code is the role last requested for the recipient.
	Code         signal.Code
	state        State
	lastEmission time.Time
}

// NewSession starts a channel whose recipient currently holds initial.
func NewSession(initial signal.Code) *Session {
	return &Session{Code: initial}
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) InFlight() bool {
	return s.state == InFlight
}

// LastEmission is zero until a bit was emitted in the current packet.
func (s *Session) LastEmission() time.Time {
	return s.lastEmission
}

// TimeoutMonitor watches the gap between bits of the packet in flight.
// It mirrors the receiver's own timer: once the gap reaches the threshold
// the receiver has discarded the partial packet, so continuing is useless.
type TimeoutMonitor struct {
	threshold time.Duration
	now       func() time.Time
}

// NewTimeoutMonitor uses time.Now when now is nil.
func NewTimeoutMonitor(threshold time.Duration, now func() time.Time) *TimeoutMonitor {
	if threshold <= 0 {
		threshold = DefaultTimeout
	}
	if now == nil {
		now = time.Now
	}
	return &TimeoutMonitor{threshold: threshold, now: now}
}

func (m *TimeoutMonitor) Threshold() time.Duration {
	return m.threshold
}

// Begin marks the start of a packet.
func (m *TimeoutMonitor) Begin(s *Session) {
	s.state = InFlight
	s.lastEmission = time.Time{}
}

// Check must be called once each signal of the packet in flight has been
// applied. When the previous bit is older than the threshold, the receiver
// has already dropped the packet: the session goes back to Idle.
func (m *TimeoutMonitor) Check(s *Session) error {
	if s.state != InFlight || s.lastEmission.IsZero() {
		return nil
	}
	elapsed := m.now().Sub(s.lastEmission)
	if elapsed < m.threshold {
		return nil
	}
	m.Reset(s)
	return fmt.Errorf("%w: %s since last bit", errors.ErrTimedOut, elapsed.Round(time.Millisecond))
}

// Mark records a bit emission while a packet is in flight.
func (m *TimeoutMonitor) Mark(s *Session) {
	if s.state == InFlight {
		s.lastEmission = m.now()
	}
}

// Reset returns the session to Idle.
func (m *TimeoutMonitor) Reset(s *Session) {
	s.state = Idle
	s.lastEmission = time.Time{}
}
