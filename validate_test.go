package x64write

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGpr8HighByteRexConflict(t *testing.T) {
	c := NewCursor()
	err := MovRR8(c, AH, R8B)
	require.Error(t, err)
}

func TestGpr8HighByteWithoutConflictOK(t *testing.T) {
	c := NewCursor()
	require.NoError(t, MovRR8(c, AH, CL))
}

func TestGpr8SplRequiresRexEvenAlone(t *testing.T) {
	c := NewCursor()
	require.NoError(t, MovRR8(c, SPL, AL))
	// REX prefix must be present even though neither register is r8-r15.
	require.Equal(t, byte(0x40), c.Bytes()[0])
}

func TestMemoryRejectsRspAsIndex(t *testing.T) {
	c := NewCursor()
	err := MovMR32(c, MemBI(RAX, RSP, 1), EAX)
	require.Error(t, err)
}

func TestMemoryRejectsInvalidScale(t *testing.T) {
	c := NewCursor()
	err := MovMR32(c, MemBI(RAX, RCX, 3), EAX)
	require.Error(t, err)
}

func TestImmediateRangeAcceptsImm8Bounds(t *testing.T) {
	c := NewCursor()
	err := MovRI8(c, AL, 0)
	require.NoError(t, err)
	c2 := NewCursor()
	require.NoError(t, AddR32I8(c2, EAX, 127))
	require.NoError(t, AddR32I8(c2, EAX, -128))
}

func TestAddr32EmitsAddressSizeOverride(t *testing.T) {
	c := NewCursor()
	require.NoError(t, MovMR32(c, MemB(RAX).Addr32(), EAX))
	require.Equal(t, []byte{0x67, 0x89, 0x00}, c.Bytes())
}

func TestAddr32OmittedWithoutBuilder(t *testing.T) {
	c := NewCursor()
	require.NoError(t, MovMR32(c, MemB(RAX), EAX))
	require.Equal(t, []byte{0x89, 0x00}, c.Bytes())
}

func TestAddr32EmittedForLegacySSEMemoryOperand(t *testing.T) {
	c := NewCursor()
	require.NoError(t, AddpdXM(c, XMM0, MemB(RCX).Addr32()))
	require.Equal(t, []byte{0x67, 0x66, 0x0f, 0x58, 0x01}, c.Bytes())
}

func TestAddr32EmittedForVexMemoryOperand(t *testing.T) {
	c := NewCursor()
	require.NoError(t, VaddpdXXM(c, XMM0, XMM1, MemB(RCX).Addr32()))
	require.Equal(t, byte(0x67), c.Bytes()[0])
}

func TestGpr8RejectsInvalidGapIndices(t *testing.T) {
	for _, v := range []uint8{0x10, 0x11, 0x12, 0x13} {
		c := NewCursor()
		err := MovRI8(c, Gpr8(v), 0)
		require.Errorf(t, err, "Gpr8(0x%02x) should be rejected", v)
	}
}

func TestGpr8AcceptsSplBplSilDilRange(t *testing.T) {
	for _, v := range []uint8{0x14, 0x15, 0x16, 0x17} {
		c := NewCursor()
		require.NoError(t, MovRI8(c, Gpr8(v), 0))
	}
}

func TestGprWideRejectsOutOfRangeIndex(t *testing.T) {
	c16 := NewCursor()
	require.Error(t, MovRI16(c16, Gpr16(16), 0))

	c32 := NewCursor()
	require.Error(t, MovRI32(c32, Gpr32(20), 0))

	c64 := NewCursor()
	require.Error(t, MovRI64(c64, Gpr64(20), 0))
}

func TestGprWideAcceptsTopOfRange(t *testing.T) {
	c := NewCursor()
	require.NoError(t, MovRI64(c, Gpr64(15), 0))
}

func TestVecRejectsOutOfRangeIndex(t *testing.T) {
	x := NewCursor()
	require.Error(t, AddpdXX(x, Xmm(40), XMM0))

	y := NewCursor()
	require.Error(t, VaddpdYYY(y, Ymm(40), YMM0, YMM1))

	z := NewCursor()
	require.Error(t, VaddpdZZZ(z, Zmm(40), ZMM0, ZMM1))
}

func TestArithRIUsesNativeWidthNotShortcut(t *testing.T) {
	// A small immediate must still take the full 0x81 imm32 form when the
	// native-width entry point is called, per the naming rule the encoder
	// enforces: opcode choice follows the entry point, never the value.
	c := NewCursor()
	require.NoError(t, SubRI64(c, RSP, 16))
	require.Equal(t, []byte{0x48, 0x81, 0xec, 0x10, 0x00, 0x00, 0x00}, c.Bytes())

	c2 := NewCursor()
	require.NoError(t, SubR64I8(c2, RSP, 16))
	require.Equal(t, []byte{0x48, 0x83, 0xec, 0x10}, c2.Bytes())
}
