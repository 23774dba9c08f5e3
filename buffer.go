package gcode

import (
	"bytes"
	"io"
)

// Buffer adapts a Reader into an io.Reader of rendered G-code text,
// one canonical line per newline.
type Buffer struct {
	gr  Reader
	opt Options
	wr  *Writer
	buf bytes.Buffer
	err error
}

var _ io.Reader = &Buffer{}

func NewBuffer(r Reader) *Buffer { return &Buffer{gr: r} }

// NewBufferOptions renders with the given emission options.
func NewBufferOptions(r Reader, opt Options) *Buffer {
	return &Buffer{gr: r, opt: opt}
}

func (b *Buffer) Buffered() []byte { return b.buf.Bytes() }

func (b *Buffer) Read(p []byte) (n int, err error) {
	if b.err == io.EOF {
		return b.buf.Read(p)
	}
	if b.err != nil {
		return 0, b.err
	}

	if b.wr == nil {
		b.wr = NewWriter(&b.buf, b.opt)
	}
	var line Line
	for b.buf.Len() < len(p) {
		line, b.err = b.gr.Read()
		if b.err == io.EOF {
			return b.buf.Read(p)
		}
		if b.err != nil {
			return 0, b.err
		}
		b.wr.WriteLine(line)
	}

	return b.buf.Read(p)
}
