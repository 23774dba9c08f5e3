package gcode

import (
	"io"
	"strings"
)

// Parse reads a full program text. It returns the first structural error
// as a *ParseError; no partial Program is returned. Empty input yields an
// empty Program.
func Parse(data string) (Program, error) {
	p := NewParser(strings.NewReader(data))
	var prog Program
	for {
		ln, err := p.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		prog = append(prog, ln)
	}
	return prog, nil
}

func MustParse(data string) Program {
	p, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return p
}
