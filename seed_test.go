package x64write

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// These ten scenarios are byte-exact reference encodings, covering the
// addressing corner cases: SIB 0x24 for an rsp/r12 base, a forced disp8 of
// zero for an rbp base, and SIB 0x25 for an absolute address with no base.

func TestSeedMovRR64(t *testing.T) {
	c := NewCursor()
	require.NoError(t, MovRR64(c, RBP, RSP))
	require.Equal(t, []byte{0x48, 0x8b, 0xec}, c.Bytes())
}

func TestSeedPushR64(t *testing.T) {
	c := NewCursor()
	require.NoError(t, PushR64(c, RBP))
	require.Equal(t, []byte{0x55}, c.Bytes())
}

func TestSeedSubR64I32(t *testing.T) {
	c := NewCursor()
	require.NoError(t, SubRI64(c, RSP, 16))
	require.Equal(t, []byte{0x48, 0x81, 0xec, 0x10, 0x00, 0x00, 0x00}, c.Bytes())
}

func TestSeedMovMR64RspBase(t *testing.T) {
	c := NewCursor()
	require.NoError(t, MovMR64(c, MemB(RSP), RCX))
	require.Equal(t, []byte{0x48, 0x89, 0x0c, 0x24}, c.Bytes())
}

func TestSeedMovMR64RspDisp8(t *testing.T) {
	c := NewCursor()
	require.NoError(t, MovMR64(c, MemBD(RSP, 8), RDX))
	require.Equal(t, []byte{0x48, 0x89, 0x54, 0x24, 0x08}, c.Bytes())
}

func TestSeedIncM64NoBase(t *testing.T) {
	c := NewCursor()
	require.NoError(t, IncM64(c, MemD(0x3456)))
	require.Equal(t, []byte{0x48, 0xff, 0x04, 0x25, 0x56, 0x34, 0x00, 0x00}, c.Bytes())
}

func TestSeedIncM64Rbp(t *testing.T) {
	c := NewCursor()
	require.NoError(t, IncM64(c, MemB(RBP)))
	require.Equal(t, []byte{0x48, 0xff, 0x45, 0x00}, c.Bytes())
}

func TestSeedIncM64R12(t *testing.T) {
	c := NewCursor()
	require.NoError(t, IncM64(c, MemB(R12)))
	require.Equal(t, []byte{0x49, 0xff, 0x04, 0x24}, c.Bytes())
}

func TestSeedShlR64One(t *testing.T) {
	c := NewCursor()
	require.NoError(t, ShlR64One(c, RAX))
	require.Equal(t, []byte{0x48, 0xd1, 0xe0}, c.Bytes())
}

func TestSeedLeaR64(t *testing.T) {
	c := NewCursor()
	require.NoError(t, LeaR64(c, RCX, MemBID(RAX, RBX, 4, 0x10)))
	require.Equal(t, []byte{0x48, 0x8d, 0x4c, 0x98, 0x10}, c.Bytes())
}
