package gcode

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmit(t *testing.T) {
	p := MustParse("G1 X10 Y-2.5\nG0X0\n")
	assert.Equal(t, "G1 X10 Y-2.5\nG0 X0\n", Emit(p, Options{}))
}

func TestEmit_RoundTrip(t *testing.T) {
	inputs := []string{
		"G1 X10 Y-2.5",
		"G0X0Y0Z0\nG1 Z-0.125 F30\n",
		"N1 G1 X10*80\nN2 G1 X20*83\n",
		"G1 X1 ; move\n(setup)\nM2",
		"X.5 Y-0.1 Z+2",
	}
	for _, in := range inputs {
		orig := MustParse(in)
		again, err := Parse(Emit(orig, Options{}))
		require.NoError(t, err, "re-parse %q", in)
		assert.True(t, orig.Equal(again), "round trip %q: got %q", in, Emit(orig, Options{}))
	}
}

func TestEmit_MinimalDigits(t *testing.T) {
	assert.Equal(t, "X1.5\n", Emit(MustParse("X1.50"), Options{}))
	assert.Equal(t, "X-0.1\n", Emit(MustParse("X-0.1"), Options{}))
	assert.Equal(t, "X0.5\n", Emit(MustParse("X.5"), Options{}))
	assert.Equal(t, "X2\n", Emit(MustParse("X+2"), Options{}))
}

func TestEmit_NoFloatDrift(t *testing.T) {
	ok, v := MustParse("X-0.1")[0].Arg('X')
	require.True(t, ok)
	sum := dec("0")
	for i := 0; i < 10; i++ {
		sum = sum.Add(v)
	}
	assert.Equal(t, "-1", sum.String())
}

func TestEmit_LineNumbers(t *testing.T) {
	p := MustParse("G28\nN99 G1 X1\nG1 X2")
	out := Emit(p, Options{LineNumbers: true})
	assert.Equal(t, "N0 G28\nN1 G1 X1\nN2 G1 X2\n", out)

	out = Emit(p, Options{LineNumbers: true, LineNumberStart: 10, LineNumberStep: 5})
	assert.Equal(t, "N10 G28\nN15 G1 X1\nN20 G1 X2\n", out)
}

func TestEmit_LineNumberMonotonicity(t *testing.T) {
	var p Program
	for i := 0; i < 25; i++ {
		p = append(p, Line{Words: []Word{NewWordInt('G', 1), NewWordInt('X', int64(i))}})
	}
	out, err := Parse(Emit(p, Options{LineNumbers: true}))
	require.NoError(t, err)
	require.Len(t, out, 25)
	for i, ln := range out {
		ok, n := ln.Number()
		require.True(t, ok)
		assert.Equal(t, fmt.Sprintf("%d", i), n.String())
	}
}

func TestEmit_Checksums(t *testing.T) {
	out := Emit(MustParse("G1 X10 Y-2.5"), Options{Checksums: true})
	assert.Equal(t, "G1 X10 Y-2.5*114\n", out)

	// inserted checksums replace declared ones
	out = Emit(MustParse("N1 G1 X10*99"), Options{Checksums: true})
	assert.Equal(t, "N1 G1 X10*80\n", out)

	// emitted checksums always validate
	p, err := Parse(Emit(MustParse("N1 G1 X10\nG1 Z0.2 ; plunge"), Options{Checksums: true}))
	require.NoError(t, err)
	for _, ln := range p {
		assert.True(t, ln.ValidateChecksum())
	}
}

func TestEmit_ChecksumCommentOnlyLine(t *testing.T) {
	// nothing precedes the marker, so the checksum covers zero bytes
	out := Emit(MustParse("; note"), Options{Checksums: true})
	assert.Equal(t, "*0 ; note\n", out)

	p, err := Parse(out)
	require.NoError(t, err)
	require.Len(t, p, 1)
	assert.True(t, p[0].ValidateChecksum())

	// a structurally empty line still gets no checksum
	assert.Equal(t, "\n", Emit(Program{{}}, Options{Checksums: true}))
}

func TestEmit_DeclaredChecksumPreserved(t *testing.T) {
	assert.Equal(t, "N1 G1 X10*80\n", Emit(MustParse("N1 G1 X10*80"), Options{}))
}

func TestEmit_CommentPlacement(t *testing.T) {
	assert.Equal(t, "G1 X1 ; move\n", Emit(MustParse("G1 X1 ; move\n"), Options{}))
	assert.Equal(t, "G1 X2 (sq hole)\n", Emit(MustParse("G1 (sq hole) X2"), Options{}))

	// checksum covers the inline comment, not the trailing one
	out := Emit(MustParse("G1 X1 ; move"), Options{Checksums: true})
	assert.Equal(t, "G1 X1*63 ; move\n", out)
}

func TestEmit_Cosmetic(t *testing.T) {
	p := MustParse("G1 X1")
	assert.Equal(t, "G1\tX1\r\n", Emit(p, Options{Separator: "\t", LineEnding: "\r\n"}))
}

func TestEmit_EmptyProgram(t *testing.T) {
	assert.Equal(t, "", Emit(nil, Options{}))
	assert.Equal(t, "", Emit(MustParse(""), Options{Checksums: true, LineNumbers: true}))
}
