package gcode

import "github.com/shopspring/decimal"

// Comment is the free text attached to a Line. Inline comments are the
// parenthetical form `(text)`; otherwise the comment is the trailing
// `;text` form running to end of line. Text excludes the delimiters.
type Comment struct {
	Text   string `json:"text"`
	Inline bool   `json:"inline"`
}

// Checksum is a checksum value declared in parsed text. Whether it matches
// the line content is a separate question; see Line.ValidateChecksum.
type Checksum struct {
	Value byte `json:"value"`
}

// Line is one logical instruction: an ordered sequence of Words with an
// optional Comment and an optional declared Checksum. A leading word with
// letter 'N' is the conventional line number; it is stored as an ordinary
// Word so the model stays uniform.
type Line struct {
	Words    []Word    `json:"words"`
	Comment  *Comment  `json:"comment,omitempty"`
	Checksum *Checksum `json:"checksum,omitempty"`
}

// Arg returns the value of the first word with the given letter.
func (ln Line) Arg(w byte) (bool, decimal.Decimal) {
	for _, g := range ln.Words {
		if g.W == w {
			return true, g.Value
		}
	}
	return false, decimal.Decimal{}
}

// Number returns the value of a leading N word, if the line has one.
func (ln Line) Number() (bool, decimal.Decimal) {
	if len(ln.Words) > 0 && ln.Words[0].W == 'N' {
		return true, ln.Words[0].Value
	}
	return false, decimal.Decimal{}
}

func (ln Line) Clone() Line {
	c := ln
	c.Words = make([]Word, len(ln.Words))
	copy(c.Words, ln.Words)
	if ln.Comment != nil {
		cm := *ln.Comment
		c.Comment = &cm
	}
	if ln.Checksum != nil {
		cs := *ln.Checksum
		c.Checksum = &cs
	}
	return c
}

// Equal compares words by value, comments by text and style, and declared
// checksums by value.
func (ln Line) Equal(o Line) bool {
	if len(ln.Words) != len(o.Words) {
		return false
	}
	for i, w := range ln.Words {
		if !w.Equal(o.Words[i]) {
			return false
		}
	}
	if (ln.Comment == nil) != (o.Comment == nil) {
		return false
	}
	if ln.Comment != nil && *ln.Comment != *o.Comment {
		return false
	}
	if (ln.Checksum == nil) != (o.Checksum == nil) {
		return false
	}
	if ln.Checksum != nil && *ln.Checksum != *o.Checksum {
		return false
	}
	return true
}

// String renders the line canonically, without a terminator.
func (ln Line) String() string {
	return renderLine(ln, Options{})
}
