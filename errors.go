package gcode

import "fmt"

// ErrorKind identifies which grammar rule a ParseError violated.
type ErrorKind int

const (
	// UnexpectedCharacter is a byte outside any recognized token.
	UnexpectedCharacter ErrorKind = iota
	// InvalidWord is a letter not followed by a valid numeric literal.
	InvalidWord
	// UnterminatedComment is a parenthetical comment with no closing paren
	// before end of line.
	UnterminatedComment
	// MalformedChecksum is a checksum marker not followed by 1-3 digits
	// fitting a byte, or a checksum followed by further tokens.
	MalformedChecksum
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedCharacter:
		return "unexpected character"
	case InvalidWord:
		return "invalid word"
	case UnterminatedComment:
		return "unterminated comment"
	case MalformedChecksum:
		return "malformed checksum"
	}
	return "unknown error"
}

// ParseError reports the first structural error in a parse. Line is the
// 1-indexed physical line number; Col is the byte offset within that line.
type ParseError struct {
	Line int
	Col  int
	Kind ErrorKind
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("gcode: line %d, col %d: %s", e.Line, e.Col, e.Kind)
}
