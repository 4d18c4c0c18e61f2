package x64write

// Cursor is the caller-owned output buffer. It grows like a bytes.Buffer
// rather than requiring a pre-sized 15-byte window; callers that already
// have a fixed-capacity slice can pass it to NewCursorBytes and rely on
// Go's append growth semantics not reallocating within capacity.
//
// Every encoding entry point validates its operands before writing any
// bytes, so a call that returns an error never appends anything: a failed
// call leaves the buffer exactly as it found it.
type Cursor struct {
	buf []byte
}

// NewCursor returns an empty Cursor ready to receive encoded instructions.
func NewCursor() *Cursor {
	return &Cursor{buf: make([]byte, 0, 64)}
}

// NewCursorBytes wraps an existing slice (typically len 0, with spare
// capacity) as a Cursor, so callers can reuse a buffer across calls.
func NewCursorBytes(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Bytes returns the bytes written so far.
func (c *Cursor) Bytes() []byte { return c.buf }

// Len returns the current write position.
func (c *Cursor) Len() int { return len(c.buf) }

func (c *Cursor) writeByte(b byte) { c.buf = append(c.buf, b) }

func (c *Cursor) writeBytes(bs ...byte) { c.buf = append(c.buf, bs...) }

// writeLE16 appends v as two little-endian bytes (or big-endian, under the
// byteswap build tag; see byteswap_off.go / byteswap_on.go).
func (c *Cursor) writeLE16(v uint16) {
	var b [2]byte
	putLE16(b[:], v)
	c.buf = append(c.buf, b[:]...)
}

// writeLE32 appends v as four little-endian bytes.
func (c *Cursor) writeLE32(v uint32) {
	var b [4]byte
	putLE32(b[:], v)
	c.buf = append(c.buf, b[:]...)
}

// writeLE64 appends v as eight little-endian bytes.
func (c *Cursor) writeLE64(v uint64) {
	var b [8]byte
	putLE64(b[:], v)
	c.buf = append(c.buf, b[:]...)
}

// writeOpcode appends a 1-, 2- or 3-byte opcode packed into the low bytes of
// op, high byte first. Two-byte opcodes are conventionally packed as
// 0x0Fxx, three-byte as 0x0F38xx or 0x0F3Axx, so a non-zero byte at bits
// 16-23 implies a 3-byte opcode, non-zero at bits 8-15 (with zero above)
// implies 2-byte, otherwise 1-byte. This mirrors how the teacher writes
// opcodes as literal []byte{0x0f, 0x38, 0xf6}-shaped slices; op just packs
// that slice into a single integer so kernels can take it as one value.
func (c *Cursor) writeOpcode(op uint32) {
	switch {
	case op > 0xffff:
		c.writeBytes(byte(op>>16), byte(op>>8), byte(op))
	case op > 0xff:
		c.writeBytes(byte(op>>8), byte(op))
	default:
		c.writeByte(byte(op))
	}
}

// rex bit positions, independent of each other and ORed together, matching
// the teacher's rexPrefix constants in internal/asm/amd64/impl.go.
const (
	rexW     = 1 << 3
	rexR     = 1 << 2
	rexX     = 1 << 1
	rexB     = 1 << 0
	rexForce = 1 << 7 // out-of-band: "emit even if otherwise empty"
)

// writeREX emits 0x40|W R X B iff any of w, r, x, b or force is set; it is a
// no-op otherwise (spec.md §4.2).
func (c *Cursor) writeREX(w, r, x, b, force bool) {
	var bits byte
	if w {
		bits |= rexW
	}
	if r {
		bits |= rexR
	}
	if x {
		bits |= rexX
	}
	if b {
		bits |= rexB
	}
	if bits != 0 || force {
		c.writeByte(0x40 | bits)
	}
}

// writeVEX2 emits the two-byte VEX prefix (C5 xx): usable only when
// REX.X, REX.B and REX.W would all be zero and the opcode map is 0F.
// r, vvvv are taken un-inverted; this inverts them per the SDM's "ones'
// complement" convention, grounded on wdamron-x64's emitVexXop (b1/b2
// packing with (^reg.Num())&8<<... for the equivalent 3-byte form).
func (c *Cursor) writeVEX2(r bool, vvvv uint8, l bool, pp uint8) {
	b2 := pp & 0x3
	if l {
		b2 |= 1 << 2
	}
	b2 |= (^vvvv & 0xf) << 3
	if !r {
		b2 |= 1 << 7
	}
	c.writeBytes(0xc5, b2)
}

// writeVEX3 emits the three-byte VEX prefix (C4 xx xx).
func (c *Cursor) writeVEX3(r, x, b bool, mmmmm uint8, w bool, vvvv uint8, l bool, pp uint8) {
	b1 := mmmmm & 0x1f
	if !r {
		b1 |= 1 << 7
	}
	if !x {
		b1 |= 1 << 6
	}
	if !b {
		b1 |= 1 << 5
	}
	b2 := pp & 0x3
	if l {
		b2 |= 1 << 2
	}
	b2 |= (^vvvv & 0xf) << 3
	if w {
		b2 |= 1 << 7
	}
	c.writeBytes(0xc4, b1, b2)
}

// writeVEX picks the 2-byte form when x, b and w are all zero and mmmmm is
// the plain 0F map (the only map the 2-byte form can express), and the
// 3-byte form otherwise, per spec.md §4.2.
func (c *Cursor) writeVEX(r, x, b bool, mmmmm uint8, w bool, vvvv uint8, l bool, pp uint8) {
	if !x && !b && !w && mmmmm == 0x01 {
		c.writeVEX2(r, vvvv, l, pp)
		return
	}
	c.writeVEX3(r, x, b, mmmmm, w, vvvv, l, pp)
}

// writeEVEX emits the four-byte EVEX prefix (62 xx xx xx), per the layout in
// spec.md §4.2 / §4.5: P0 holds the inverted R/X/B/R' bits and the 2-bit
// opcode-map selector; P1 holds W, inverted vvvv, and pp; P2 holds the
// zeroing flag, LL (vector length), broadcast/rc bit, inverted V', and the
// opmask register. Grounded on the AVX-512 register file (zmm0..31, k0..k7)
// documented in xyproto-vibe67's reg.go/kmask.go, which motivates the R'/V'
// high-bit extension this prefix carries and the teacher's REX never needs.
func (c *Cursor) writeEVEX(r, x, b, rPrime bool, mm uint8, w bool, vvvv uint8, pp uint8, z bool, ll uint8, bcast bool, vPrime bool, aaa uint8) {
	p0 := mm & 0x3
	if !r {
		p0 |= 1 << 7
	}
	if !x {
		p0 |= 1 << 6
	}
	if !b {
		p0 |= 1 << 5
	}
	if !rPrime {
		p0 |= 1 << 4
	}

	p1 := pp & 0x3
	p1 |= 1 << 2
	p1 |= (^vvvv & 0xf) << 3
	if w {
		p1 |= 1 << 7
	}

	p2 := aaa & 0x7
	if !vPrime {
		p2 |= 1 << 3
	}
	if bcast {
		p2 |= 1 << 4
	}
	p2 |= (ll & 0x3) << 5
	if z {
		p2 |= 1 << 7
	}

	c.writeBytes(0x62, p0, p1, p2)
}
