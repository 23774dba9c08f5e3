package gcode

import (
	"strconv"
	"strings"
)

// Options control emission. The zero value renders words separated by a
// single space, one line per terminator, preserving any declared checksums
// and line-number words as-is.
type Options struct {
	// LineNumbers replaces any leading N word with sequentially assigned
	// line numbers.
	LineNumbers     bool
	LineNumberStart int
	// LineNumberStep defaults to 1.
	LineNumberStep int

	// Checksums computes and appends a checksum to every line, replacing
	// any declared checksum.
	Checksums bool

	// Separator is the inter-word spacing. Default " ". It is cosmetic,
	// but it changes the bytes a checksum covers: Line.ValidateChecksum
	// always recomputes over the canonical single-space rendering, so
	// lines emitted with Checksums and a non-default Separator will not
	// validate after a re-parse.
	Separator string
	// LineEnding defaults to "\n".
	LineEnding string
}

func (opt Options) separator() string {
	if opt.Separator == "" {
		return " "
	}
	return opt.Separator
}

func (opt Options) ending() string {
	if opt.LineEnding == "" {
		return "\n"
	}
	return opt.LineEnding
}

func (opt Options) step() int {
	if opt.LineNumberStep == 0 {
		return 1
	}
	return opt.LineNumberStep
}

// Emit renders a Program to text. It is total over structurally valid
// Programs and never fails.
func Emit(p Program, opt Options) string {
	var b strings.Builder
	wr := NewWriter(&b, opt)
	for _, ln := range p {
		wr.WriteLine(ln)
	}
	wr.Close()
	return b.String()
}

// checksumPrefix renders the part of a line a checksum covers: the words
// and any inline comment, joined by sep.
func checksumPrefix(ln Line, sep string) string {
	var b strings.Builder
	for i, w := range ln.Words {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(w.String())
	}
	if ln.Comment != nil && ln.Comment.Inline {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteByte('(')
		b.WriteString(ln.Comment.Text)
		b.WriteByte(')')
	}
	return b.String()
}

// renderLine produces a single canonical line, without a terminator. The
// checksum marker directly follows the last covered byte; a trailing
// comment comes after the checksum, matching the grammar the parser
// accepts.
func renderLine(ln Line, opt Options) string {
	var b strings.Builder
	prefix := checksumPrefix(ln, opt.separator())
	b.WriteString(prefix)

	// every line with content gets a checksum, even one that covers zero
	// bytes; only a structurally empty line is left bare
	if opt.Checksums && (prefix != "" || ln.Comment != nil) {
		b.WriteByte('*')
		b.WriteString(strconv.Itoa(int(ComputeChecksum([]byte(prefix)))))
	} else if ln.Checksum != nil {
		b.WriteByte('*')
		b.WriteString(strconv.Itoa(int(ln.Checksum.Value)))
	}

	if ln.Comment != nil && !ln.Comment.Inline {
		if b.Len() > 0 {
			b.WriteString(opt.separator())
		}
		b.WriteByte(';')
		b.WriteString(ln.Comment.Text)
	}
	return b.String()
}
