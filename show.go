// Copyright 2022 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package presence

// Show is the availability sub-state advertised by an available resource.
// The zero value indicates plain availability (a presence with no <show/>
// element).
type Show string

// A list of show values.
const (
	ShowNone Show = ""
	ShowChat Show = "chat"
	ShowAway Show = "away"
	ShowXA   Show = "xa"
	ShowDND  Show = "dnd"
)

// Rank returns the position of s in the availability ordering used for all
// tie-breaking in this package.
// Lower is more available.
// Unrecognized values rank below every defined show value.
func Rank(s Show) int {
	switch s {
	case ShowChat:
		return 0
	case ShowNone:
		return 1
	case ShowAway:
		return 2
	case ShowXA:
		return 3
	case ShowDND:
		return 4
	}
	return 5
}

// Best returns the most available of the provided show values.
// Ties keep the earliest value.
// If no values are provided ok is false.
func Best(shows ...Show) (best Show, ok bool) {
	if len(shows) == 0 {
		return ShowNone, false
	}
	best = shows[0]
	for _, s := range shows[1:] {
		if Rank(s) < Rank(best) {
			best = s
		}
	}
	return best, true
}

// Status is a coarse availability value suitable for display.
type Status uint8

// A list of status values.
const (
	StatusOffline Status = iota
	StatusOnline
	StatusAway
	StatusDND
)

// String satisfies fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusOnline:
		return "online"
	case StatusAway:
		return "away"
	case StatusDND:
		return "dnd"
	}
	return "offline"
}

// Status maps the show value onto the status displayed for an available
// resource.
// It never returns StatusOffline: being offline is a property of having no
// available resources, not of any show value.
// Unrecognized values degrade to StatusOnline.
func (s Show) Status() Status {
	switch s {
	case ShowAway, ShowXA:
		return StatusAway
	case ShowDND:
		return StatusDND
	}
	return StatusOnline
}
