package x64write

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddRR32RegisterDirection(t *testing.T) {
	c := NewCursor()
	require.NoError(t, AddRR32(c, EAX, ECX))
	// 01 /r, Ev,Gv: reg=ecx(1) rm=eax(0) -> mod=11 reg=001 rm=000 = C8
	require.Equal(t, []byte{0x01, 0xc8}, c.Bytes())
}

func TestAddMI32(t *testing.T) {
	c := NewCursor()
	require.NoError(t, AddMI32(c, MemB(RAX), 100))
	require.Equal(t, []byte{0x81, 0x00, 0x64, 0x00, 0x00, 0x00}, c.Bytes())
}

func TestCmpR64I8Shortcut(t *testing.T) {
	c := NewCursor()
	require.NoError(t, CmpR64I8(c, RBX, -1))
	require.Equal(t, []byte{0x48, 0x83, 0xfb, 0xff}, c.Bytes())
}

func TestShrR32CL(t *testing.T) {
	c := NewCursor()
	require.NoError(t, ShrR32CL(c, EDX))
	require.Equal(t, []byte{0xd3, 0xea}, c.Bytes())
}

func TestAdcxR64(t *testing.T) {
	c := NewCursor()
	require.NoError(t, AdcxR64(c, RAX, R8))
	require.Equal(t, []byte{0x66, 0x49, 0x0f, 0x38, 0xf6, 0xc0}, c.Bytes())
}

func TestPopR64WithRexB(t *testing.T) {
	c := NewCursor()
	require.NoError(t, PopR64(c, R9))
	require.Equal(t, []byte{0x41, 0x59}, c.Bytes())
}

func TestLeaR32NoBase(t *testing.T) {
	c := NewCursor()
	require.NoError(t, LeaR32(c, EAX, MemD(0x1000)))
	require.Equal(t, []byte{0x8d, 0x04, 0x25, 0x00, 0x10, 0x00, 0x00}, c.Bytes())
}
