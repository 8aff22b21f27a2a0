// Copyright 2022 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

// Package presence implements client side presence tracking.
//
// The Tracker type merges the presence reported by each of a contact's
// connected resources into a single availability per contact, and the Local
// type is a state machine for the availability the local user wants to
// advertise, including automatic away transitions when the machine goes idle
// or to sleep.
// Neither type performs any I/O: both are driven entirely by events, and the
// decision of when to put a presence on the wire is left to the caller.
//
// Both are normally fed from a session by registering a Handler with a
// multiplexer such as the one found in mellium.im/xmpp/mux:
//
//	tracker := &presence.Tracker{}
//	local := &presence.Local{}
//	m := mux.New(
//		stanza.NSClient,
//		presence.Handle(&presence.Handler{Tracker: tracker, Local: local}),
//	)
package presence // import "mellium.im/presence"
