package x64write

import "math/bits"

// dispForm is the displacement-form selector of spec.md §4.3.
type dispForm uint8

const (
	dispNone dispForm = iota
	dispDisp8
	dispDisp32
)

// selectDispForm chooses none/disp8/disp32 for a base register whose low 3
// bits are baseLow3. none is only legal when the displacement is zero and
// baseLow3 != 5: 5 collides with the RIP-relative / no-base special
// encodings and must be promoted to an explicit disp8=0 (the [rbp]/[r13]
// corner case in spec.md §4.3).
func selectDispForm(disp int32, baseLow3 uint8) dispForm {
	if disp == 0 && baseLow3 != 5 {
		return dispNone
	}
	if disp >= -128 && disp <= 127 {
		return dispDisp8
	}
	return dispDisp32
}

// sibScaleBits encodes an index scale of 1/2/4/8 into the 2-bit SIB.scale
// field. The scale is assumed already validated (see checkMemory in
// validate_on.go); any other
// value indicates a bug in the caller, not a user-facing error, so this
// panics rather than threading another error return through every kernel.
func sibScaleBits(scale uint8) uint8 {
	switch scale {
	case 1:
		return 0
	case 2:
		return 1
	case 4:
		return 2
	case 8:
		return 3
	default:
		panic("x64write: invalid SIB scale")
	}
}

// writeModRMMemory emits the ModRM byte, optional SIB byte and optional
// displacement for a memory operand placed in the r/m field, with regField
// (already reduced to its low 3 bits) in the reg field. It implements the
// three addressing cases of spec.md §4.3 exactly, including the [rbp]/[r13],
// [rsp]/[r12] and bare-[disp32] corner cases.
//
// m's fields must already have passed checkMemory; this function only ever
// looks at the low 3 bits of base/index, trusting the caller (the REX/VEX/
// EVEX writer, invoked earlier in the kernel) to have supplied the
// extension bits for indices >= 8.
func (c *Cursor) writeModRMMemory(regField uint8, m Memory) {
	r7 := regField & 7
	base, basePresent := m.baseReg()
	index, scale, indexPresent := m.indexReg()

	if !basePresent {
		// Case B: no base. [disp32] or [index*scale + disp32].
		c.writeByte((r7 << 3) | 0b100)
		if indexPresent {
			c.writeByte((sibScaleBits(scale) << 6) | ((index & 7) << 3) | 0b101)
		} else {
			c.writeByte(0x25) // scale=00, index=100 (none), base=101 (no base, disp32)
		}
		c.writeLE32(uint32(m.displacement))
		return
	}

	b7 := base & 7
	df := selectDispForm(m.displacement, b7)

	if indexPresent {
		c.writeByte((uint8(df) << 6) | (r7 << 3) | 0b100)
		c.writeByte((sibScaleBits(scale) << 6) | ((index & 7) << 3) | b7)
	} else if b7 == 4 {
		// [rsp]/[r12]: ModRM alone would select SIB, so one is required
		// even without an index, with "no index" encoded as 0x24.
		c.writeByte((uint8(df) << 6) | (r7 << 3) | 0b100)
		c.writeByte(0x24)
	} else {
		c.writeByte((uint8(df) << 6) | (r7 << 3) | b7)
	}

	switch df {
	case dispNone:
	case dispDisp8:
		c.writeByte(byte(int8(m.displacement)))
	case dispDisp32:
		c.writeLE32(uint32(m.displacement))
	}
}

// writeModRMRegister emits the register-direct ModRM byte (mod=11) for an
// r/m operand that is itself a register rather than memory, used by the
// rr/ri kernels.
func (c *Cursor) writeModRMRegister(regField, rm uint8) {
	c.writeByte(0b11_000_000 | ((regField & 7) << 3) | (rm & 7))
}

// log2Scale is used by checkMemory (validate_on.go) to check index scales are powers of two
// in {1,2,4,8} without duplicating the switch in sibScaleBits.
func log2Scale(scale uint8) (shift int, ok bool) {
	if scale == 0 || bits.OnesCount8(scale) != 1 {
		return 0, false
	}
	shift = bits.TrailingZeros8(scale)
	return shift, shift <= 3
}
