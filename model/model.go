// Package model implements the watchface state shared between the host
// callbacks, with methods for synchronized read+write access.
package model

import (
	"sync"

	"github.com/ardnew/decimalwatch/dectime"
)

// Data holds everything the face last computed or received.
type Data struct {
	Time    dectime.WallClock
	Decimal dectime.Decimal
	Angles  dectime.Angles
	Weather string
	Status  Status

	// Requested is the wall clock minute of day for which a weather request
	// was last attempted, or -1 if none has been.
	Requested int
}

// Status represents the freshness of the weather side-channel.
type Status uint8

// Constants defining each possible weather Status.
const (
	StatusLoading Status = iota // no report received yet
	StatusReady                 // last exchange succeeded
	StatusStale                 // last exchange failed; previous report still shown
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusStale:
		return "stale"
	}
	return "unknown"
}

// Model guards a Data value and remembers whether it changed since it was last
// read. The zero value is not usable; construct with New.
type Model struct {
	lock    sync.Mutex
	data    Data
	changed bool
}

// New returns a Model whose weather text is initialized to placeholder.
func New(placeholder string) *Model {
	return &Model{
		data:    Data{Weather: placeholder, Requested: -1},
		changed: true,
	}
}

// Get safely returns the model's changed flag and a copy of the Data (as it
// was defined when Get was called).
// The changed flag is automatically set false after reading.
func (m *Model) Get() (changed bool, data Data) {
	m.lock.Lock()
	changed, data = m.changed, m.data
	m.changed = false
	m.lock.Unlock()
	return
}

// Peek returns a copy of the Data without touching the changed flag.
func (m *Model) Peek() Data {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.data
}

// Set provides synchronized read+write access to the Data via argument to the
// given closure.
// The changed flag is automatically set true after the closure has been called.
func (m *Model) Set(set func(*Data)) {
	m.lock.Lock()
	set(&m.data)
	m.changed = true
	m.lock.Unlock()
}

// Mod provides synchronized read+write access to the Data via argument to the
// given closure.
// The changed flag is unaffected by this method.
func (m *Model) Mod(mod func(*Data)) {
	m.lock.Lock()
	mod(&m.data)
	m.lock.Unlock()
}
