package x64write

// Memory is a memory operand: base + index*scale + displacement, with an
// optional 32-bit address-size override. The effective address is
//
//	(baseScale != 0 ? base : 0) + (indexScale != 0 ? index*indexScale : 0) + disp
//
// Fields are 4-bit register indices (0..15); only GPR64 indices are legal
// bases/indices outside of AddrSize32 mode, where they're taken as GPR32.
// The zero value is the same as MemD(0), the absolute address [0]. Build
// other operands with the constructors below: invariants are only
// guaranteed for values built through them, per spec.md §4.1.
type Memory struct {
	base        uint8
	index       uint8
	baseScale   uint8 // 0 or 1
	indexScale  uint8 // 0, 1, 2, 4 or 8
	addrSize32  bool
	displacement int32
}

// MemB builds [base].
func MemB(base Gpr64) Memory {
	return Memory{base: uint8(base) & 0xf, baseScale: 1}
}

// MemI builds [index*scale].
func MemI(index Gpr64, scale uint8) Memory {
	return Memory{index: uint8(index) & 0xf, indexScale: scale}
}

// MemD builds [disp].
func MemD(disp int32) Memory {
	return Memory{displacement: disp}
}

// MemBI builds [base + index*scale].
func MemBI(base, index Gpr64, scale uint8) Memory {
	return Memory{base: uint8(base) & 0xf, baseScale: 1, index: uint8(index) & 0xf, indexScale: scale}
}

// MemBD builds [base + disp].
func MemBD(base Gpr64, disp int32) Memory {
	return Memory{base: uint8(base) & 0xf, baseScale: 1, displacement: disp}
}

// MemID builds [index*scale + disp].
func MemID(index Gpr64, scale uint8, disp int32) Memory {
	return Memory{index: uint8(index) & 0xf, indexScale: scale, displacement: disp}
}

// MemBID builds [base + index*scale + disp], the general form.
func MemBID(base, index Gpr64, scale uint8, disp int32) Memory {
	return Memory{
		base: uint8(base) & 0xf, baseScale: 1,
		index: uint8(index) & 0xf, indexScale: scale,
		displacement: disp,
	}
}

// Addr32 returns m with the 32-bit address-size override enabled: base and
// index are then interpreted as GPR32 indices and a 0x67 prefix is emitted.
func (m Memory) Addr32() Memory {
	m.addrSize32 = true
	return m
}

func (m Memory) baseReg() (idx uint8, present bool) {
	return m.base, m.baseScale != 0
}

func (m Memory) indexReg() (idx uint8, scale uint8, present bool) {
	return m.index, m.indexScale, m.indexScale != 0
}
