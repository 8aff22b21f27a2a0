// Copyright 2022 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package presence_test

import (
	"strconv"
	"testing"

	"mellium.im/presence"
)

var rankTests = [...]struct {
	show presence.Show
	rank int
}{
	0: {show: presence.ShowChat, rank: 0},
	1: {show: presence.ShowNone, rank: 1},
	2: {show: presence.ShowAway, rank: 2},
	3: {show: presence.ShowXA, rank: 3},
	4: {show: presence.ShowDND, rank: 4},
	5: {show: presence.Show("banana"), rank: 5},
}

func TestRank(t *testing.T) {
	for i, tc := range rankTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if rank := presence.Rank(tc.show); rank != tc.rank {
				t.Errorf("Bad rank for %q: want=%d, got=%d", tc.show, tc.rank, rank)
			}
		})
	}
}

var bestTests = [...]struct {
	shows []presence.Show
	best  presence.Show
	ok    bool
}{
	0: {},
	1: {shows: []presence.Show{presence.ShowDND}, best: presence.ShowDND, ok: true},
	2: {shows: []presence.Show{presence.ShowAway, presence.ShowChat}, best: presence.ShowChat, ok: true},
	3: {shows: []presence.Show{presence.ShowAway, presence.ShowXA, presence.ShowAway}, best: presence.ShowAway, ok: true},
	4: {shows: []presence.Show{presence.ShowNone, presence.ShowChat}, best: presence.ShowChat, ok: true},
	5: {shows: []presence.Show{presence.Show("banana"), presence.ShowDND}, best: presence.ShowDND, ok: true},
	6: {shows: []presence.Show{presence.ShowXA, presence.ShowXA}, best: presence.ShowXA, ok: true},
}

func TestBest(t *testing.T) {
	for i, tc := range bestTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			best, ok := presence.Best(tc.shows...)
			if ok != tc.ok {
				t.Errorf("Wrong ok value: want=%t, got=%t", tc.ok, ok)
			}
			if best != tc.best {
				t.Errorf("Wrong best value: want=%q, got=%q", tc.best, best)
			}
		})
	}
}

var statusTests = [...]struct {
	show   presence.Show
	status presence.Status
}{
	0: {show: presence.ShowNone, status: presence.StatusOnline},
	1: {show: presence.ShowChat, status: presence.StatusOnline},
	2: {show: presence.ShowAway, status: presence.StatusAway},
	3: {show: presence.ShowXA, status: presence.StatusAway},
	4: {show: presence.ShowDND, status: presence.StatusDND},
	5: {show: presence.Show("banana"), status: presence.StatusOnline},
}

func TestShowStatus(t *testing.T) {
	for i, tc := range statusTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if status := tc.show.Status(); status != tc.status {
				t.Errorf("Bad status for %q: want=%v, got=%v", tc.show, tc.status, status)
			}
		})
	}
}

var statusStringTests = [...]struct {
	status presence.Status
	s      string
}{
	0: {status: presence.StatusOffline, s: "offline"},
	1: {status: presence.StatusOnline, s: "online"},
	2: {status: presence.StatusAway, s: "away"},
	3: {status: presence.StatusDND, s: "dnd"},
	4: {status: presence.Status(200), s: "offline"},
}

func TestStatusString(t *testing.T) {
	for i, tc := range statusStringTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if s := tc.status.String(); s != tc.s {
				t.Errorf("Bad status string: want=%q, got=%q", tc.s, s)
			}
		})
	}
}
