// Copyright 2022 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package presence

import (
	"sort"
	"time"

	"mellium.im/presence/color"
	"mellium.im/xmpp/jid"
	"mellium.im/xmpp/stanza"
)

// Resource is the presence advertised by a single connected session of a
// contact.
// Status is the human readable status message, if any.
type Resource struct {
	Show     Show
	Priority int8
	Status   string
}

// Contact is a roster entry together with the presence aggregated over its
// connected resources.
//
// Presence and Status are derived from the winning resource and Resources is
// nil whenever the contact has no available resources.
// If Err is set the contact is offline and Resources is nil regardless of
// any presence that was cached before the error arrived.
// LastSeen is stamped when the contact transitions to offline and LastSeen
// and LastInteraction are both the zero time until first set.
// The color pair is assigned when the contact is first seen and never
// changes, even if the contact is renamed.
type Contact struct {
	JID             jid.JID
	Name            string
	Presence        Status
	Status          string
	Resources       map[string]Resource
	Err             stanza.Condition
	LastSeen        time.Time
	LastInteraction time.Time
	ColorLight      string
	ColorDark       string
}

// recompute rederives the aggregate presence from the surviving resources.
// Among resources the highest priority wins; priority ties go to the most
// available show value, and remaining ties to the lexically smallest
// resource name so that recomputing is deterministic.
func (c *Contact) recompute(now time.Time) {
	if len(c.Resources) == 0 {
		if c.Presence != StatusOffline {
			c.LastSeen = now
		}
		c.Presence = StatusOffline
		c.Status = ""
		c.Resources = nil
		return
	}

	names := make([]string, 0, len(c.Resources))
	for name := range c.Resources {
		names = append(names, name)
	}
	sort.Strings(names)

	win := c.Resources[names[0]]
	for _, name := range names[1:] {
		r := c.Resources[name]
		if r.Priority > win.Priority ||
			(r.Priority == win.Priority && Rank(r.Show) < Rank(win.Show)) {
			win = r
		}
	}
	c.Presence = win.Show.Status()
	c.Status = win.Status
}

func (c *Contact) clone() Contact {
	out := *c
	if c.Resources != nil {
		out.Resources = make(map[string]Resource, len(c.Resources))
		for name, r := range c.Resources {
			out.Resources[name] = r
		}
	}
	return out
}

// Tracker aggregates the presence reported by each contact's resources into
// a single availability per contact.
//
// Methods on Tracker do not lock: updates for a contact must be applied in
// the order the stream delivered them, so all mutating calls are expected to
// arrive from a single goroutine such as a session's stanza handler.
// The zero value is an empty tracker ready for use.
type Tracker struct {
	contacts map[string]*Contact
}

func (t *Tracker) ensure(j jid.JID) *Contact {
	bare := j.Bare()
	key := bare.String()
	if c, ok := t.contacts[key]; ok {
		return c
	}
	light, dark := color.Pair(key)
	c := &Contact{
		JID:        bare,
		Presence:   StatusOffline,
		ColorLight: light,
		ColorDark:  dark,
	}
	if t.contacts == nil {
		t.contacts = make(map[string]*Contact)
	}
	t.contacts[key] = c
	return c
}

// Add creates the entry for j if it has not been seen before and records its
// display name.
// Colors are assigned on creation and preserved for the life of the entry,
// including across renames.
func (t *Tracker) Add(j jid.JID, name string) {
	c := t.ensure(j)
	c.Name = name
}

// Remove destroys the entry for j.
func (t *Tracker) Remove(j jid.JID) {
	delete(t.contacts, j.Bare().String())
}

// Update records the presence advertised by one of the contact's resources
// and recomputes the contact's aggregate presence.
// Fresh presence supersedes any previous presence error on the contact.
// The contact is created if it has not been seen before.
func (t *Tracker) Update(from jid.JID, res Resource) {
	c := t.ensure(from)
	c.Err = ""
	if c.Resources == nil {
		c.Resources = make(map[string]Resource)
	}
	c.Resources[from.Resourcepart()] = res
	c.recompute(time.Now())
}

// Unavailable removes the resource that went offline and recomputes the
// contact's aggregate presence from the resources that remain.
// If the last resource is removed the contact goes offline and LastSeen is
// stamped.
// Unknown contacts and resources are ignored.
func (t *Tracker) Unavailable(from jid.JID) {
	c, ok := t.contacts[from.Bare().String()]
	if !ok {
		return
	}
	delete(c.Resources, from.Resourcepart())
	c.recompute(time.Now())
}

// SetError records a presence error scoped to the contact's bare address.
// Everything cached for the contact's resources is invalidated: a stale
// resource must not bring the contact back online after the error, even if
// another resource goes unavailable first.
func (t *Tracker) SetError(j jid.JID, cond stanza.Condition) {
	c := t.ensure(j)
	c.Err = cond
	c.Resources = nil
	c.recompute(time.Now())
}

// Reset returns every contact to offline and clears cached resources, status
// messages, and presence errors.
// It must be applied after a failed session resumption before any presence
// from the new stream is processed: unavailability that happened during the
// gap was never delivered, so everything cached is suspect.
func (t *Tracker) Reset() {
	now := time.Now()
	for _, c := range t.contacts {
		c.Err = ""
		c.Resources = nil
		c.recompute(now)
	}
}

// Touch records the time of the most recent interaction with the contact.
// Unknown contacts are ignored.
func (t *Tracker) Touch(j jid.JID, at time.Time) {
	c, ok := t.contacts[j.Bare().String()]
	if !ok {
		return
	}
	c.LastInteraction = at
}

// Get returns a snapshot of the contact with the provided bare address.
func (t *Tracker) Get(j jid.JID) (Contact, bool) {
	c, ok := t.contacts[j.Bare().String()]
	if !ok {
		return Contact{}, false
	}
	return c.clone(), true
}

// Contacts returns a snapshot of every contact, sorted by bare address.
func (t *Tracker) Contacts() []Contact {
	out := make([]Contact, 0, len(t.contacts))
	for _, c := range t.contacts {
		out = append(out, c.clone())
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].JID.String() < out[j].JID.String()
	})
	return out
}
