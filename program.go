package gcode

// Program is the full ordered instruction sequence of a G-code file.
type Program []Line

func (p Program) Equal(o Program) bool {
	if len(p) != len(o) {
		return false
	}
	for i, ln := range p {
		if !ln.Equal(o[i]) {
			return false
		}
	}
	return true
}

func (p Program) Clone() Program {
	c := make(Program, len(p))
	for i, ln := range p {
		c[i] = ln.Clone()
	}
	return c
}

// String renders the program with default options.
func (p Program) String() string {
	return Emit(p, Options{})
}
