package gcode

import "io"

// Writer emits G-code incrementally, one word or comment at a time,
// without requiring a full in-memory Program. Line numbers and checksums
// are applied per Options as each line is finished.
type Writer struct {
	w   io.Writer
	opt Options

	num     int
	cur     Line
	pending bool
	err     error
}

func NewWriter(w io.Writer, opt Options) *Writer {
	return &Writer{w: w, opt: opt, num: opt.LineNumberStart}
}

// WriteWord appends a word to the current line.
func (wr *Writer) WriteWord(w Word) error {
	if wr.err != nil {
		return wr.err
	}
	wr.cur.Words = append(wr.cur.Words, w)
	wr.pending = true
	return nil
}

// WriteComment attaches a comment to the current line. Only the first
// comment on a line is kept, mirroring the parser.
func (wr *Writer) WriteComment(c Comment) error {
	if wr.err != nil {
		return wr.err
	}
	if wr.cur.Comment == nil {
		wr.cur.Comment = &c
	}
	wr.pending = true
	return nil
}

// EndLine renders and writes the current line, then starts a new one.
func (wr *Writer) EndLine() error {
	if wr.err != nil {
		return wr.err
	}
	err := wr.writeLine(wr.cur)
	wr.cur = Line{}
	wr.pending = false
	return err
}

// WriteLine renders a whole line. Any partially built line is finished
// first.
func (wr *Writer) WriteLine(ln Line) error {
	if wr.pending {
		err := wr.EndLine()
		if err != nil {
			return err
		}
	}
	return wr.writeLine(ln)
}

// Close finishes any partially built line. It does not close the
// underlying writer.
func (wr *Writer) Close() error {
	if wr.pending {
		return wr.EndLine()
	}
	return wr.err
}

func (wr *Writer) writeLine(ln Line) error {
	if wr.err != nil {
		return wr.err
	}
	if wr.opt.LineNumbers && (len(ln.Words) > 0 || ln.Comment != nil) {
		words := ln.Words
		if len(words) > 0 && words[0].W == 'N' {
			words = words[1:]
		}
		numbered := make([]Word, 0, len(words)+1)
		numbered = append(numbered, NewWordInt('N', int64(wr.num)))
		numbered = append(numbered, words...)
		ln.Words = numbered
		wr.num += wr.opt.step()
	}
	_, wr.err = io.WriteString(wr.w, renderLine(ln, wr.opt)+wr.opt.ending())
	return wr.err
}
