// Package gcode parses and emits G-code program text.
//
// Parsing turns raw text into a Program: an ordered sequence of Lines,
// each holding Words (letter/value pairs), an optional Comment, and an
// optional declared Checksum. Emission renders a Program back to text,
// optionally inserting line numbers and XOR checksums.
//
// Numeric values are exact decimals so that parse/emit round trips never
// drift. Whitespace between words carries no meaning and is not preserved;
// emission uses its own canonical spacing.
package gcode
