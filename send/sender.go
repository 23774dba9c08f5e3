// Package send streams G-code to a device as numbered, checksummed
// lines, honoring the ok/resend acknowledgement protocol spoken by
// Marlin-style controllers.
package send

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mastercactapus/gcode"
)

// Sender writes one line at a time to rw and waits for the device to
// acknowledge it before sending the next. A resend request rewinds to
// the requested line number.
type Sender struct {
	rw   io.ReadWriter
	scan *bufio.Scanner
}

func New(rw io.ReadWriter) *Sender {
	return &Sender{rw: rw, scan: bufio.NewScanner(rw)}
}

type ackKind int

const (
	ackOK ackKind = iota
	ackResend
)

// Send parses the program from r and streams it. Comments are stripped
// and comment-only lines dropped before transmission. The line-number
// counter is reset on the device with M110 before the first content line.
func (s *Sender) Send(r io.Reader) error {
	p := gcode.NewParser(r)

	lines := []gcode.Line{
		{Words: []gcode.Word{gcode.NewWordInt('M', 110)}},
	}
	for {
		ln, err := p.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		ln.Comment = nil
		ln.Checksum = nil
		if len(ln.Words) == 0 {
			continue
		}
		lines = append(lines, ln)
	}

	rendered := make([]string, len(lines))
	for i, ln := range lines {
		rendered[i] = gcode.Emit(gcode.Program{ln}, gcode.Options{
			LineNumbers:     true,
			LineNumberStart: i,
			Checksums:       true,
		})
	}

	for i := 0; i < len(rendered); {
		_, err := io.WriteString(s.rw, rendered[i])
		if err != nil {
			return err
		}
		kind, n, err := s.readAck()
		if err != nil {
			return err
		}
		switch kind {
		case ackOK:
			i++
		case ackResend:
			if n < 0 || n >= len(rendered) {
				return fmt.Errorf("send: device requested line %d of %d", n, len(rendered))
			}
			i = n
		}
	}
	return nil
}

// readAck consumes device output until it sees an acknowledgement,
// resend request, or error. Status chatter (temperature reports, busy
// notices, echoes) is ignored.
func (s *Sender) readAck() (ackKind, int, error) {
	for s.scan.Scan() {
		line := strings.TrimSpace(s.scan.Text())
		switch {
		case line == "ok" || strings.HasPrefix(line, "ok "):
			return ackOK, 0, nil
		case strings.HasPrefix(line, "rs "), strings.HasPrefix(line, "Resend:"):
			f := strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(line, "rs "), "Resend:"))
			n, err := strconv.Atoi(f)
			if err != nil {
				return 0, 0, fmt.Errorf("send: bad resend request %q", line)
			}
			return ackResend, n, nil
		case strings.HasPrefix(line, "Error:"), strings.HasPrefix(line, "error:"):
			return 0, 0, fmt.Errorf("send: device: %s", line)
		}
	}
	err := s.scan.Err()
	if err == nil {
		err = io.ErrUnexpectedEOF
	}
	return 0, 0, err
}
