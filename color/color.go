// Copyright 2022 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

// Package color derives stable per-contact colors.
//
// The hue for an address is generated with XEP-0392: Consistent Color
// Generation, so the same address always produces the same colors and the
// colors agree with those shown by other clients implementing the XEP.
// Each hue is rendered at two fixed luma points: a darker variant for light
// backgrounds and a brighter variant for dark backgrounds.
package color // import "mellium.im/presence/color"

import (
	"fmt"
	"image/color"

	xmppcolor "mellium.im/xmpp/color"
)

// Luma values for the two theme variants.
// The dark background variant is the brighter of the two so that both stay
// legible against their respective backgrounds.
const (
	lumaLight = 128
	lumaDark  = 208
)

// Pair returns the colors used to identify s on light and dark backgrounds
// as lowercase rrggbb hex strings.
// Both share the hue derived from s and dark always has the greater
// lightness.
// Pair is a pure function: equal inputs produce equal pairs, and it should
// be called once when a contact is first seen, not on every update.
func Pair(s string) (light, dark string) {
	return hex(xmppcolor.String(s, lumaLight, xmppcolor.None)),
		hex(xmppcolor.String(s, lumaDark, xmppcolor.None))
}

func hex(c color.YCbCr) string {
	r, g, b := color.YCbCrToRGB(c.Y, c.Cb, c.Cr)
	return fmt.Sprintf("%02x%02x%02x", r, g, b)
}
