package datefmt

import (
	"strconv"
	"strings"
)

// DefaultPadWidth is the width used by PadDefault.
const DefaultPadWidth = 2

// Pad renders value in base 10 and left-pads it with zeros up to width.
// Longer values are returned unchanged. The sign of a negative value stays in front
// of the zeros and counts towards the width.
//
//	Pad(5, 3)   // "005"
//	Pad(123, 2) // "123"
func Pad(value, width int) string {
	s := strconv.Itoa(value)
	if len(s) >= width {
		return s
	}
	if value < 0 {
		return "-" + strings.Repeat("0", width-len(s)) + s[1:]
	}
	return strings.Repeat("0", width-len(s)) + s
}

// PadDefault pads value to DefaultPadWidth.
func PadDefault(value int) string {
	return Pad(value, DefaultPadWidth)
}
