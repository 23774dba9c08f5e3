package gcode

// ComputeChecksum XOR-folds every byte of a rendered line up to, but not
// including, the checksum marker.
func ComputeChecksum(b []byte) (c byte) {
	for _, x := range b {
		c ^= x
	}
	return c
}

// ComputeChecksum returns the checksum of the line's canonical rendering:
// words joined with a single space, inline comment included, leading line
// number included if present.
func (ln Line) ComputeChecksum() byte {
	return ComputeChecksum([]byte(checksumPrefix(ln, " ")))
}

// ValidateChecksum recomputes the line's checksum and compares it to the
// declared one. It returns false when no checksum is declared.
func (ln Line) ValidateChecksum() bool {
	return ln.Checksum != nil && ln.ComputeChecksum() == ln.Checksum.Value
}
