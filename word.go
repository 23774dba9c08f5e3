package gcode

import (
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"
)

// Word is a single letter paired with a decimal value, the atomic unit
// of a G-code line.
type Word struct {
	W     byte
	Value decimal.Decimal
}

// NewWord constructs a Word, normalizing a lowercase letter to uppercase.
func NewWord(w byte, value decimal.Decimal) Word {
	if w >= 'a' && w <= 'z' {
		w -= 'a' - 'A'
	}
	return Word{W: w, Value: value}
}

// NewWordInt is shorthand for words with integer values, like G1 or M104.
func NewWordInt(w byte, value int64) Word {
	return NewWord(w, decimal.New(value, 0))
}

func (w Word) IsValid() bool {
	return w.W >= 'A' && w.W <= 'Z'
}

// Equal compares by letter and numeric value. X1.5 and X1.50 are equal.
func (w Word) Equal(o Word) bool {
	return w.W == o.W && w.Value.Equal(o.Value)
}

// String renders the word with the minimal number of fractional digits.
func (w Word) String() string {
	return string(w.W) + w.Value.String()
}

type wordJSON struct {
	Letter string          `json:"letter"`
	Value  decimal.Decimal `json:"value"`
}

func (w Word) MarshalJSON() ([]byte, error) {
	return json.Marshal(wordJSON{Letter: string(w.W), Value: w.Value})
}

func (w *Word) UnmarshalJSON(data []byte) error {
	var wj wordJSON
	err := json.Unmarshal(data, &wj)
	if err != nil {
		return err
	}
	if len(wj.Letter) != 1 {
		return errors.New("word letter must be a single character")
	}
	*w = NewWord(wj.Letter[0], wj.Value)
	if !w.IsValid() {
		return errors.New("word letter must be A-Z")
	}
	return nil
}
