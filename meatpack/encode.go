package meatpack

import (
	"bytes"
	"io"
)

// Writer packs G-code text written to it and forwards the packed bytes
// downstream. Comment text (`;` to end of line, or between parens) flows
// through byte-for-byte: it is never uppercased and never space-stripped.
// Close flushes any pending odd character and emits the protocol reset;
// it does not close the downstream writer.
type Writer struct {
	w        io.Writer
	noSpaces bool

	started    bool
	pending    byte
	hasPending bool
	comment    byte
	err        error
}

var _ io.WriteCloser = &Writer{}

func NewWriter(w io.Writer, noSpaces bool) *Writer {
	return &Writer{w: w, noSpaces: noSpaces}
}

func (w *Writer) emit(b ...byte) {
	if w.err != nil {
		return
	}
	_, w.err = w.w.Write(b)
}

func (w *Writer) start() {
	if w.started {
		return
	}
	w.started = true
	if w.noSpaces {
		w.emit(header, header, cmdEnableNoSpaces)
	}
	w.emit(header, header, cmdEnablePacking)
}

func (w *Writer) pair(a, b byte) {
	pa, okA := packChar(a, w.noSpaces)
	pb, okB := packChar(b, w.noSpaces)
	switch {
	case okA && okB:
		w.emit(pa | pb<<4)
	case okA:
		w.emit(pa|unpackable<<4, b)
	case okB:
		w.emit(pb<<4|unpackable, a)
	default:
		w.emit(header, a, b)
	}
}

func (w *Writer) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	w.start()
	for _, c := range p {
		if w.comment == 0 {
			if w.noSpaces && c == ' ' {
				continue
			}
			c = normalize(c, w.noSpaces)
		}
		switch {
		case w.comment == 0 && (c == ';' || c == '('):
			w.comment = c
		case w.comment == ';' && c == '\n':
			w.comment = 0
		case w.comment == '(' && c == ')':
			w.comment = 0
		}
		if !w.hasPending {
			w.pending = c
			w.hasPending = true
			continue
		}
		w.pair(w.pending, c)
		w.hasPending = false
	}
	if w.err != nil {
		return 0, w.err
	}
	return len(p), nil
}

func (w *Writer) Close() error {
	w.start()
	if w.hasPending {
		// pad the odd trailing character; harmless in g-code
		pad := byte(' ')
		if w.noSpaces {
			pad = '\n'
		}
		w.pair(w.pending, pad)
		w.hasPending = false
	}
	w.emit(header, header, cmdResetAll)
	return w.err
}

// Pack encodes an entire ASCII G-code text.
func Pack(data []byte, noSpaces bool) []byte {
	var buf bytes.Buffer
	w := NewWriter(&buf, noSpaces)
	w.Write(data)
	w.Close()
	return buf.Bytes()
}
