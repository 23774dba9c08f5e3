package gcode

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Parser reads Lines from a stream of G-code text. Blank lines are
// skipped; physical line numbers still advance so diagnostics stay
// accurate.
type Parser struct {
	br   *bufio.Reader
	line int
}

func NewParser(r io.Reader) *Parser {
	if br, ok := r.(*bufio.Reader); ok {
		return &Parser{br: br}
	}

	return &Parser{br: bufio.NewReader(r)}
}

// Read returns the next non-blank line, or io.EOF at end of input.
// The first structural error aborts the parse with a *ParseError.
func (p *Parser) Read() (Line, error) {
	for {
		s, err := p.br.ReadString('\n')
		if err == io.EOF && s != "" {
			err = nil
		}
		if err != nil {
			return Line{}, err
		}
		p.line++

		s = strings.TrimRight(s, "\r\n")
		if strings.TrimSpace(s) == "" {
			continue
		}

		return parseLine(s, p.line)
	}
}

func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isLetter(c byte) bool { return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' }

func parseLine(s string, lineNo int) (Line, error) {
	var ln Line
	var sawChecksum bool

	fail := func(col int, kind ErrorKind) (Line, error) {
		return Line{}, &ParseError{Line: lineNo, Col: col, Kind: kind}
	}

	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c == ';':
			if ln.Comment == nil {
				ln.Comment = &Comment{Text: s[i+1:]}
			}
			i = len(s)
		case c == '(':
			if sawChecksum {
				return fail(i, MalformedChecksum)
			}
			end := strings.IndexByte(s[i:], ')')
			if end < 0 {
				return fail(i, UnterminatedComment)
			}
			if ln.Comment == nil {
				ln.Comment = &Comment{Text: s[i+1 : i+end], Inline: true}
			}
			i += end + 1
		case c == '*':
			if sawChecksum {
				return fail(i, MalformedChecksum)
			}
			start := i
			i++
			j := i
			for j < len(s) && isDigit(s[j]) && j-i < 3 {
				j++
			}
			if j == i || j < len(s) && isDigit(s[j]) {
				return fail(start, MalformedChecksum)
			}
			v, err := strconv.Atoi(s[i:j])
			if err != nil || v > 255 {
				return fail(start, MalformedChecksum)
			}
			ln.Checksum = &Checksum{Value: byte(v)}
			sawChecksum = true
			i = j
		case isLetter(c):
			if sawChecksum {
				return fail(i, MalformedChecksum)
			}
			start := i
			i++
			value, n, ok := scanNumber(s[i:])
			if !ok {
				return fail(start, InvalidWord)
			}
			i += n
			ln.Words = append(ln.Words, NewWord(c, value))
		default:
			return fail(i, UnexpectedCharacter)
		}
	}

	return ln, nil
}

// scanNumber consumes a numeric literal of the form [+-]?[0-9]*\.?[0-9]+
// from the front of s, returning its exact decimal value and length.
func scanNumber(s string) (v decimal.Decimal, n int, ok bool) {
	i := 0
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	digits := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	intDigits := i - digits
	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		i++
		digits = i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		fracDigits = i - digits
		if fracDigits == 0 {
			return v, 0, false
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return v, 0, false
	}

	text := strings.TrimLeft(s[:i], "+-")
	if text[0] == '.' {
		text = "0" + text
	}
	if neg {
		text = "-" + text
	}
	v, err := decimal.NewFromString(text)
	if err != nil {
		return v, 0, false
	}
	return v, i, true
}
