package x64write

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddpdLegacySSE(t *testing.T) {
	c := NewCursor()
	require.NoError(t, AddpdXX(c, XMM1, XMM2))
	// 66 0F 58 /r, mod=11 reg=1(xmm1) rm=2(xmm2): CA = 11 001 010
	require.Equal(t, []byte{0x66, 0x0f, 0x58, 0xca}, c.Bytes())
}

func TestAddpdRejectsHighRegisters(t *testing.T) {
	c := NewCursor()
	err := AddpdXX(c, Xmm(17), XMM0)
	require.Error(t, err)
}

func TestVaddpdXmmUsesTwoByteVEX(t *testing.T) {
	c := NewCursor()
	require.NoError(t, VaddpdXXX(c, XMM0, XMM1, XMM2))
	// No REX.X/B/W needed and map is 0F, so the 2-byte VEX form (C5) applies.
	require.Equal(t, byte(0xc5), c.Bytes()[0])
	require.Len(t, c.Bytes(), 4) // C5 xx 58 modrm
}

func TestVaddpdYmm(t *testing.T) {
	c := NewCursor()
	require.NoError(t, VaddpdYYY(c, YMM0, YMM1, YMM2))
	require.Equal(t, byte(0xc5), c.Bytes()[0])
}

func TestVaddpdEscalatesToEVEXForHighRegister(t *testing.T) {
	c := NewCursor()
	require.NoError(t, VaddpdXXX(c, Xmm(16), XMM1, XMM2))
	require.Equal(t, byte(0x62), c.Bytes()[0])
}

func TestVaddpdZmmAlwaysEVEX(t *testing.T) {
	c := NewCursor()
	require.NoError(t, VaddpdZZZ(c, ZMM0, ZMM1, ZMM2))
	require.Equal(t, byte(0x62), c.Bytes()[0])
}

func TestVaddpdMemoryOperand(t *testing.T) {
	c := NewCursor()
	require.NoError(t, VaddpdXXM(c, XMM0, XMM1, MemB(RAX)))
	require.Equal(t, byte(0xc5), c.Bytes()[0])
}
