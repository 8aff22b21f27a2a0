// Copyright 2022 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package color_test

import (
	"strconv"
	"testing"

	"mellium.im/presence/color"
)

var pairTests = [...]struct {
	addr  string
	light string
	dark  string
}{
	0: {addr: "romeo@montague.lit", light: "d32aff", dark: "ff7aff"},
	1: {addr: "juliet@capulet.lit", light: "1ae000", dark: "6aff00"},
	2: {addr: "benvolio@montague.lit", light: "00ff00", dark: "1dff00"},
	3: {addr: "😺", light: "1c87ff", dark: "6dd7ff"},
	4: {addr: "council", light: "7f55ff", dark: "cfa5ff"},
}

func TestPair(t *testing.T) {
	for i, tc := range pairTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			light, dark := color.Pair(tc.addr)
			if light != tc.light {
				t.Errorf("Bad light color: want=%s, got=%s", tc.light, light)
			}
			if dark != tc.dark {
				t.Errorf("Bad dark color: want=%s, got=%s", tc.dark, dark)
			}

			// The derivation must be stable between calls.
			light2, dark2 := color.Pair(tc.addr)
			if light2 != light || dark2 != dark {
				t.Errorf("Colors changed between calls: got=%s/%s then %s/%s", light, dark, light2, dark2)
			}
		})
	}
}

func TestPairDistinct(t *testing.T) {
	seen := make(map[string]string)
	for _, tc := range pairTests {
		light, dark := color.Pair(tc.addr)
		key := light + dark
		if prev, ok := seen[key]; ok {
			t.Errorf("Same colors for different addresses: %s and %s", prev, tc.addr)
		}
		seen[key] = tc.addr
	}
}

func TestDarkIsLighter(t *testing.T) {
	for i, tc := range pairTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if lum(t, tc.dark) <= lum(t, tc.light) {
				t.Errorf("Dark variant is not lighter: light=%s, dark=%s", tc.light, tc.dark)
			}
		})
	}
}

// lum returns an approximate relative luminance for a hex color.
// Any measure that grows with each channel works here since both variants
// share a hue.
func lum(t *testing.T, s string) int64 {
	t.Helper()
	v, err := strconv.ParseInt(s, 16, 64)
	if err != nil {
		t.Fatalf("Bad hex color %q: %v", s, err)
	}
	r := v >> 16 & 0xff
	g := v >> 8 & 0xff
	b := v & 0xff
	return 2126*r + 7152*g + 722*b
}

func BenchmarkPair(b *testing.B) {
	for i := 0; i < b.N; i++ {
		color.Pair("romeo@montague.lit")
	}
}
