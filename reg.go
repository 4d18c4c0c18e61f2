package x64write

// Gpr8 is an 8-bit general-purpose register index.
//
// 0x00..0x0f address al,cl,dl,bl,ah,ch,dh,bh,r8b..r15b in that order, matching
// the ModRM/REX encoding order used throughout the Intel SDM. 0x14..0x17
// address spl,bpl,sil,dil, which require a REX prefix (even an otherwise-empty
// one) to be reachable at all; without REX those ModRM bits mean ah..bh.
type Gpr8 uint8

// Gpr16 is a 16-bit general-purpose register index, 0..15 (ax..r15w).
type Gpr16 uint8

// Gpr32 is a 32-bit general-purpose register index, 0..15 (eax..r15d).
type Gpr32 uint8

// Gpr64 is a 64-bit general-purpose register index, 0..15 (rax..r15).
type Gpr64 uint8

// Xmm is a 128-bit vector register index, 0..31 (xmm0..xmm31). Indices 16..31
// require EVEX; only 0..15 are reachable under legacy SSE or VEX.
type Xmm uint8

// Ymm is a 256-bit vector register index, 0..31 (ymm0..ymm31).
type Ymm uint8

// Zmm is a 512-bit vector register index, 0..31 (zmm0..zmm31). ZMM is always
// EVEX-only; there is no legacy or VEX encoding of a 512-bit operation.
type Zmm uint8

// GPR64 names, in ModRM/REX.B encoding order.
const (
	RAX Gpr64 = iota
	RCX
	RDX
	RBX
	RSP
	RBP
	RSI
	RDI
	R8
	R9
	R10
	R11
	R12
	R13
	R14
	R15
)

// GPR32 names, same encoding order as the 64-bit family.
const (
	EAX Gpr32 = iota
	ECX
	EDX
	EBX
	ESP
	EBP
	ESI
	EDI
	R8D
	R9D
	R10D
	R11D
	R12D
	R13D
	R14D
	R15D
)

// GPR16 names, same encoding order.
const (
	AX Gpr16 = iota
	CX
	DX
	BX
	SP
	BP
	SI
	DI
	R8W
	R9W
	R10W
	R11W
	R12W
	R13W
	R14W
	R15W
)

// GPR8 names. AL..R15B occupy 0x00..0x0f; AH..BH alias 0x04..0x07 and are
// mutually exclusive with any REX-requiring operand in the same instruction
// (see checkGpr8Conflict). SPL..DIL occupy 0x14..0x17 and always require REX.
const (
	AL Gpr8 = iota
	CL
	DL
	BL
	AH
	CH
	DH
	BH
	R8B
	R9B
	R10B
	R11B
	R12B
	R13B
	R14B
	R15B
)

const (
	SPL Gpr8 = 0x14 + iota
	BPL
	SIL
	DIL
)

// XMM/YMM/ZMM names, 0..15. Registers 16..31 (EVEX-only) are referred to by
// numeric conversion, e.g. Xmm(17).
const (
	XMM0 Xmm = iota
	XMM1
	XMM2
	XMM3
	XMM4
	XMM5
	XMM6
	XMM7
	XMM8
	XMM9
	XMM10
	XMM11
	XMM12
	XMM13
	XMM14
	XMM15
)

const (
	YMM0 Ymm = iota
	YMM1
	YMM2
	YMM3
	YMM4
	YMM5
	YMM6
	YMM7
	YMM8
	YMM9
	YMM10
	YMM11
	YMM12
	YMM13
	YMM14
	YMM15
)

const (
	ZMM0 Zmm = iota
	ZMM1
	ZMM2
	ZMM3
	ZMM4
	ZMM5
	ZMM6
	ZMM7
	ZMM8
	ZMM9
	ZMM10
	ZMM11
	ZMM12
	ZMM13
	ZMM14
	ZMM15
)

// isHighByte reports whether g addresses ah, ch, dh or bh (0x04..0x07): the
// encoding that a REX prefix on any operand in the instruction would turn
// into spl, bpl, sil or dil instead.
func (g Gpr8) isHighByte() bool {
	return g >= 0x04 && g <= 0x07
}

// needsRex reports whether encoding g at all (regardless of other operands)
// forces a REX prefix: r8b..r15b by index range, spl/bpl/sil/dil by the
// 0x14..0x17 band used to disambiguate them from ah..bh.
func (g Gpr8) needsRex() bool {
	return g >= 0x08 && g <= 0x0f || g >= 0x14 && g <= 0x17
}

// index returns the 4-bit register index used in ModRM/REX/SIB fields.
// spl/bpl/sil/dil share the low nibble with ah/ch/dh/bh; REX selects between
// them, so the low 3 bits are what matters for this field.
func (g Gpr8) index() uint8 {
	if g >= 0x14 {
		return uint8(g) - 0x14 + 0x04
	}
	return uint8(g)
}

func (g Gpr8) extended() bool  { return uint8(g)&0x08 != 0 && g < 0x14 }
func (g Gpr16) extended() bool { return uint8(g)&0x08 != 0 }
func (g Gpr32) extended() bool { return uint8(g)&0x08 != 0 }
func (g Gpr64) extended() bool { return uint8(g)&0x08 != 0 }
func (r Xmm) extended() bool   { return uint8(r)&0x08 != 0 }
func (r Ymm) extended() bool   { return uint8(r)&0x08 != 0 }
func (r Zmm) extended() bool   { return uint8(r)&0x08 != 0 }

// high reports whether the vector register index needs the EVEX-only
// extension bit (R'/X'/V', bit 4 of a 5-bit index).
func (r Xmm) high() bool { return uint8(r)&0x10 != 0 }
func (r Ymm) high() bool { return uint8(r)&0x10 != 0 }
func (r Zmm) high() bool { return uint8(r)&0x10 != 0 }
