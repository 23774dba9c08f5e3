package gcode

import "io"

// Reader yields Lines one at a time, returning io.EOF when exhausted.
// Parser implements it for text input; LinesReader for in-memory Programs.
type Reader interface {
	Read() (Line, error)
}

var (
	_ Reader = &Parser{}
	_ Reader = &LinesReader{}
)

type LinesReader struct {
	Lines []Line
	n     int
}

func (r *LinesReader) Read() (Line, error) {
	if r.n == len(r.Lines) {
		return Line{}, io.EOF
	}

	r.n++
	return r.Lines[r.n-1], nil
}
