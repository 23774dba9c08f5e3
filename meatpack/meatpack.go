// Package meatpack implements the MeatPack compact G-code transport.
//
// MeatPack packs the fifteen most common G-code characters into 4-bit
// codes, two per byte, with an escape nibble for everything else and an
// 0xFF 0xFF command framing for protocol state changes. See
// https://github.com/scottmudge/OctoPrint-MeatPack for the protocol.
//
// Input is expected to be ASCII G-code text; a raw 0xFF byte in the
// input is not representable.
package meatpack

const (
	header = 0xFF

	// a nibble of 0xF marks a character that could not be packed; the
	// full byte follows the packed pair
	unpackable = 0xF

	cmdEnablePacking   = 251
	cmdDisablePacking  = 250
	cmdResetAll        = 249
	cmdQueryConfig     = 248
	cmdEnableNoSpaces  = 247
	cmdDisableNoSpaces = 246
)

// packChar returns the 4-bit code for c. In no-spaces mode the space slot
// is reassigned to 'E' (common in extrusion moves).
func packChar(c byte, noSpaces bool) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c == '.':
		return 10, true
	case c == ' ' && !noSpaces:
		return 11, true
	case c == 'E' && noSpaces:
		return 11, true
	case c == '\n':
		return 12, true
	case c == 'G':
		return 13, true
	case c == 'X':
		return 14, true
	}
	return 0, false
}

func unpackChar(x byte, noSpaces bool) (byte, bool) {
	switch {
	case x <= 9:
		return '0' + x, true
	case x == 10:
		return '.', true
	case x == 11 && !noSpaces:
		return ' ', true
	case x == 11 && noSpaces:
		return 'E', true
	case x == 12:
		return '\n', true
	case x == 13:
		return 'G', true
	case x == 14:
		return 'X', true
	}
	return 0, false
}

// normalize uppercases the letters MeatPack transmits uppercased, so
// lowercase g-code still packs tightly.
func normalize(c byte, noSpaces bool) byte {
	switch {
	case c == 'e' && !noSpaces:
		return 'E'
	case c == 'g':
		return 'G'
	case c == 'x':
		return 'X'
	}
	return c
}
