package meatpack

import "errors"

// ErrTruncated is returned when packed input ends mid-sequence.
var ErrTruncated = errors.New("meatpack: truncated input")

// Unpack decodes a packed byte stream back into G-code text. Command
// sequences adjust decoder state and produce no output.
func Unpack(data []byte) ([]byte, error) {
	var packing, noSpaces bool
	out := make([]byte, 0, len(data)*2)

	i := 0
	for i < len(data) {
		if data[i] == header && i+1 < len(data) && data[i+1] == header {
			if i+2 >= len(data) {
				return nil, ErrTruncated
			}
			switch data[i+2] {
			case cmdEnablePacking:
				packing = true
			case cmdDisablePacking, cmdResetAll:
				packing = false
			case cmdEnableNoSpaces:
				noSpaces = true
			case cmdDisableNoSpaces:
				noSpaces = false
			case cmdQueryConfig:
			}
			i += 3
			continue
		}

		if !packing {
			out = append(out, data[i])
			i++
			continue
		}

		b := data[i]
		i++
		if b == header {
			// neither character was packable; both follow raw
			if i+2 > len(data) {
				return nil, ErrTruncated
			}
			out = append(out, data[i], data[i+1])
			i += 2
			continue
		}

		first, ok1 := unpackChar(b&unpackable, noSpaces)
		second, ok2 := unpackChar(b>>4, noSpaces)
		if !ok1 {
			if i >= len(data) {
				return nil, ErrTruncated
			}
			first = data[i]
			i++
		}
		if !ok2 {
			if i >= len(data) {
				return nil, ErrTruncated
			}
			second = data[i]
			i++
		}
		out = append(out, first, second)
	}

	return out, nil
}
