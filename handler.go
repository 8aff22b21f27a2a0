// Copyright 2022 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package presence

import (
	"encoding/xml"

	"mellium.im/xmlstream"
	"mellium.im/xmpp/mux"
	"mellium.im/xmpp/stanza"
)

// Handle returns an option that registers the handler for incoming available,
// unavailable, and error presence.
func Handle(h *Handler) mux.Option {
	return func(m *mux.ServeMux) {
		mux.Presence(stanza.AvailablePresence, xml.Name{}, h)(m)
		mux.Presence(stanza.UnavailablePresence, xml.Name{}, h)(m)
		mux.Presence(stanza.ErrorPresence, xml.Name{}, h)(m)
	}
}

// Handler updates a Tracker, and optionally a Local machine, from events at
// the session boundary.
//
// Inbound presence stanzas are applied to the tracker by HandlePresence;
// connection lifecycle outcomes are reported with Connected, Disconnected,
// and ResumeFailed.
// The handler performs no locking of its own: a session dispatches stanzas
// to a handler one at a time, which is exactly the serialization the tracker
// requires.
// Subscription management presence (probe, subscribe, and friends) is not
// handled here.
type Handler struct {
	Tracker *Tracker
	Local   *Local
}

// HandlePresence satisfies mux.PresenceHandler.
// It is used by the multiplexer and normally does not need to be called by
// the user.
func (h *Handler) HandlePresence(p stanza.Presence, r xmlstream.TokenReadEncoder) error {
	if h.Tracker == nil {
		return nil
	}

	d := xml.NewTokenDecoder(r)
	var pres struct {
		stanza.Presence
		Show     Show         `xml:"show"`
		Status   string       `xml:"status"`
		Priority int8         `xml:"priority"`
		Error    stanza.Error `xml:"error"`
	}
	err := d.Decode(&pres)
	if err != nil {
		return err
	}

	switch p.Type {
	case stanza.AvailablePresence:
		h.Tracker.Update(p.From, Resource{
			Show:     pres.Show,
			Priority: pres.Priority,
			Status:   pres.Status,
		})
	case stanza.UnavailablePresence:
		h.Tracker.Unavailable(p.From)
	case stanza.ErrorPresence:
		cond := pres.Error.Condition
		if cond == "" {
			cond = stanza.UndefinedCondition
		}
		h.Tracker.SetError(p.From, cond)
	}
	return nil
}

// Connected reports that a session was negotiated.
// The local machine reapplies the last availability the user explicitly
// chose.
func (h *Handler) Connected() {
	if h.Local != nil {
		h.Local.Connect()
	}
}

// Disconnected reports that the session went away.
func (h *Handler) Disconnected() {
	if h.Local != nil {
		h.Local.Disconnect()
	}
}

// ResumeFailed reports that stream resumption failed and a full new session
// had to be negotiated.
// Every contact is reset to offline before presence from the new stream is
// processed, so that contacts whose unavailability went unreported during
// the gap do not linger online.
func (h *Handler) ResumeFailed() {
	if h.Tracker != nil {
		h.Tracker.Reset()
	}
}
