package design

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Color normalization shared by the format adapters and the style resolver.
// The IR stores colors as lowercase "#rrggbb"; alpha travels separately.

// HexFromFloats converts 0-1 float channels (the Figma representation) into
// the canonical hex form. Channels are clamped, never rejected.
func HexFromFloats(r, g, b float64) string {
	return fmt.Sprintf("#%02x%02x%02x", channelByte(r), channelByte(g), channelByte(b))
}

func channelByte(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	n := int(math.Round(v * 255))
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return n
}

// NormalizeHex canonicalizes a source hex color: lowercased, "#" prefixed,
// 3-digit shorthand expanded. Reports false for anything that is not a hex
// color so the caller can substitute a default instead of propagating junk.
func NormalizeHex(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "#")
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return "", false
	}
	if _, err := strconv.ParseUint(s, 16, 32); err != nil {
		return "", false
	}
	return "#" + s, true
}

// HexToRGB splits a canonical "#rrggbb" value into integer channels.
func HexToRGB(hex string) (r, g, b int, ok bool) {
	norm, ok := NormalizeHex(hex)
	if !ok {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(norm[1:], 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), true
}
