// Copyright 2022 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package presence

import (
	"time"
)

// Default values for AutoAwayConfig, provided for hosts that own the idle
// polling loop.
const (
	DefaultThreshold = 5 * time.Minute
	DefaultInterval  = 10 * time.Second
)

// AutoAwayConfig configures automatic away transitions.
// The machine itself never measures idle time; the host polls for it every
// Interval and calls Idle once the user has been inactive for at least
// Threshold.
// Hosts should stop their polling loop while Enabled is false.
type AutoAwayConfig struct {
	Threshold time.Duration
	Interval  time.Duration
	Enabled   bool
}

// AutoAwayOption configures automatic away behavior.
type AutoAwayOption func(*AutoAwayConfig)

// Threshold returns an option that sets the idle time after which the host
// should report the user as idle.
func Threshold(d time.Duration) AutoAwayOption {
	return func(c *AutoAwayConfig) {
		c.Threshold = d
	}
}

// Interval returns an option that sets how often the host should poll for
// idle time.
func Interval(d time.Duration) AutoAwayOption {
	return func(c *AutoAwayConfig) {
		c.Interval = d
	}
}

// Enabled returns an option that turns automatic away transitions on or off.
func Enabled(on bool) AutoAwayOption {
	return func(c *AutoAwayConfig) {
		c.Enabled = on
	}
}

type localState uint8

const (
	stateDisconnected localState = iota
	stateOnline
	stateAway
	stateDND
	stateAutoAway
)

// Local tracks the availability the local user wants to advertise.
//
// It is an event driven state machine: the connection lifecycle, explicit
// choices made in the user interface, and idle, activity, sleep, and wake
// signals from the host environment are fed in as method calls and the
// current show and status values to advertise are read back out.
// Events that have no defined transition from the current state are silently
// ignored, so callers can forward environment signals without filtering
// them first.
//
// The last explicit choice made with Set is remembered while disconnected
// and reapplied by Connect; everything else (status message, idle state) is
// transient and does not survive a disconnect.
//
// Methods on Local do not lock.
// All events must be delivered from a single goroutine, or be externally
// serialized, in the same way that stanzas delivered to a handler by a
// session are serialized.
// The zero value is a disconnected machine ready for use.
type Local struct {
	state     localState
	pre       localState
	last      Show
	status    string
	idleSince time.Time
	cfg       AutoAwayConfig
}

// Connect moves the machine out of the disconnected state, reapplying the
// last availability the user explicitly chose (or plain online if they never
// chose one).
// Connect is ignored if the machine is already connected.
func (l *Local) Connect() {
	if l.state != stateDisconnected {
		return
	}
	switch l.last {
	case ShowAway:
		l.state = stateAway
	case ShowDND:
		l.state = stateDND
	default:
		l.state = stateOnline
	}
}

// Disconnect returns the machine to the disconnected state.
// The last explicit choice is preserved for the next call to Connect; the
// status message and any automatic away state are discarded.
func (l *Local) Disconnect() {
	if l.state == stateDisconnected {
		return
	}
	l.state = stateDisconnected
	l.pre = stateDisconnected
	l.status = ""
	l.idleSince = time.Time{}
}

// Set records an explicit availability choice made by the user along with an
// optional status message.
// Show values map onto the three connected states the user can choose: chat
// and plain availability select online, away and xa select away, and dnd
// selects do-not-disturb.
// Set always exits automatic away and is ignored while disconnected.
func (l *Local) Set(s Show, statusMessage string) {
	if l.state == stateDisconnected {
		return
	}
	switch s.Status() {
	case StatusAway:
		l.state = stateAway
		l.last = ShowAway
	case StatusDND:
		l.state = stateDND
		l.last = ShowDND
	default:
		l.state = stateOnline
		l.last = ShowNone
	}
	l.status = statusMessage
	l.pre = stateDisconnected
	l.idleSince = time.Time{}
}

// Idle reports that the user has been inactive since the provided time and
// moves the machine into automatic away.
// Do-not-disturb is never overridden automatically, so Idle is ignored from
// the DND state (as well as while disconnected or already automatically
// away).
func (l *Local) Idle(since time.Time) {
	if l.state != stateOnline && l.state != stateAway {
		return
	}
	l.pre = l.state
	l.state = stateAutoAway
	l.idleSince = since
}

// Active reports that the user is active again and restores the state that
// was current before the machine went automatically away.
// Active is ignored unless the machine is automatically away.
func (l *Local) Active() {
	if l.state != stateAutoAway {
		return
	}
	l.state = l.pre
	l.pre = stateDisconnected
	l.idleSince = time.Time{}
}

// Sleep reports that the host system is suspending.
// Going to sleep is treated as going idle immediately.
func (l *Local) Sleep() {
	l.Idle(time.Now())
}

// Wake reports that the host system resumed from suspend.
// It is treated as an activity signal.
func (l *Local) Wake() {
	l.Active()
}

// SetAutoAway merges the provided options into the automatic away
// configuration.
// It never changes the current availability.
func (l *Local) SetAutoAway(opts ...AutoAwayOption) {
	for _, o := range opts {
		o(&l.cfg)
	}
}

// Config returns the current automatic away configuration.
func (l *Local) Config() AutoAwayConfig {
	return l.cfg
}

// Show returns the show value to put on the wire for the current state.
// While disconnected there is nothing to advertise and the zero value is
// returned.
func (l *Local) Show() Show {
	switch l.state {
	case stateAway, stateAutoAway:
		return ShowAway
	case stateDND:
		return ShowDND
	}
	return ShowNone
}

// Status returns the availability to display for the local user.
func (l *Local) Status() Status {
	if l.state == stateDisconnected {
		return StatusOffline
	}
	return l.Show().Status()
}

// StatusMessage returns the status message set by the most recent call to
// Set since connecting.
func (l *Local) StatusMessage() string {
	return l.status
}

// AutoAway reports whether the machine is away because of inactivity rather
// than an explicit choice.
func (l *Local) AutoAway() bool {
	return l.state == stateAutoAway
}

// IdleSince returns the time the user went idle.
// It is only valid while the machine is automatically away.
func (l *Local) IdleSince() (since time.Time, ok bool) {
	return l.idleSince, l.state == stateAutoAway
}

// String returns a name for the current state suitable for diagnostics.
func (l *Local) String() string {
	switch l.state {
	case stateOnline:
		return "Online"
	case stateAway:
		return "Away"
	case stateDND:
		return "DND"
	case stateAutoAway:
		return "AutoAway"
	}
	return "Disconnected"
}
