package gcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeChecksum(t *testing.T) {
	assert.Equal(t, byte(114), ComputeChecksum([]byte("G1 X10 Y-2.5")))
	assert.Equal(t, byte(0), ComputeChecksum(nil))
}

func TestLine_ComputeChecksum(t *testing.T) {
	// the leading line number participates
	p := MustParse("N0 G1 X10")
	assert.Equal(t, byte(81), p[0].ComputeChecksum())

	p = MustParse("G1 X10 Y-2.5")
	assert.Equal(t, byte(114), p[0].ComputeChecksum())
}

func TestLine_ValidateChecksum(t *testing.T) {
	p := MustParse("N1 G1 X10*80")
	assert.True(t, p[0].ValidateChecksum())

	p = MustParse("N1 G1 X10*81")
	assert.False(t, p[0].ValidateChecksum())

	// no declared checksum
	p = MustParse("N1 G1 X10")
	assert.False(t, p[0].ValidateChecksum())
}

func TestLine_ComputeChecksum_CanonicalSpacing(t *testing.T) {
	// the source's tab-separated rendering XORs to 22, but validation
	// always uses the canonical single-space form
	p := MustParse("G1\tX1*22")
	assert.Equal(t, byte(63), p[0].ComputeChecksum())
	assert.False(t, p[0].ValidateChecksum())

	p = MustParse("G1\tX1*63")
	assert.True(t, p[0].ValidateChecksum())
}

func TestLine_ValidateChecksum_Mismatch(t *testing.T) {
	// a mismatch is a finding, never a parse failure
	p, err := Parse("N1 G1 X10*12\nN2 G1 X20*80")
	require.NoError(t, err)
	assert.False(t, p[0].ValidateChecksum())
	assert.True(t, p[1].ValidateChecksum())
}
