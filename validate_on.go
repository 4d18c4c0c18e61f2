//go:build !x64write_novalidate

package x64write

// checkMemory enforces the memory-operand invariants of spec.md §3: index
// scales must be a legal SIB scale (1, 2, 4 or 8), and RSP can never be
// encoded as an index register (index field 100 with no REX.X means "no
// index"; R12, which shares that 3-bit field but sets REX.X, is fine).
func checkMemory(m Memory) error {
	index, scale, present := m.indexReg()
	if !present {
		return nil
	}
	if _, ok := log2Scale(scale); !ok {
		return errInvalidMemory("index scale must be 1, 2, 4 or 8")
	}
	if index == uint8(RSP) {
		return errInvalidMemory("rsp cannot be used as an index register")
	}
	return nil
}

// checkGpr8Conflict enforces the mutual exclusion between ah/ch/dh/bh and any
// operand that forces a REX prefix, in the same instruction (spec.md §3):
// a REX prefix repurposes that ModRM/opcode-extension nibble to select
// spl/bpl/sil/dil instead, so the two encodings are unrepresentable together.
func checkGpr8Conflict(hasHighByte, needsRex bool) error {
	if hasHighByte && needsRex {
		return errInvalidGpr8Combination()
	}
	return nil
}

// checkImmediateRange enforces that value fits in a signed field of the
// given width. arithRI and arithMI call it for their native-width imm8/
// imm16/imm32 operands; the 0x83 shortcut entry points take an int8 and do
// not call it.
func checkImmediateRange(value int64, bits int) error {
	lo := -(int64(1) << (bits - 1))
	hi := int64(1)<<(bits-1) - 1
	if value < lo || value > hi {
		return errImmediateRange(value, bits)
	}
	return nil
}

// checkGpr8Range, checkGpr16Range, checkGpr32Range and checkGpr64Range
// enforce the register-index ranges of spec.md §4.4/C4, matching the
// original C++'s X64W_VALIDATE_R: al..r15b occupy 0x00..0x0f, spl..dil
// occupy 0x14..0x17, and the 0x10..0x13 gap between them is invalid; every
// wider GPR family is a plain 0..15 index.
func checkGpr8Range(g Gpr8) error {
	v := uint8(g)
	if v <= 0x0f || (v >= 0x14 && v <= 0x17) {
		return nil
	}
	return errInvalidRegister("gpr8", int(v))
}

func checkGpr16Range(g Gpr16) error {
	if uint8(g) <= 0x0f {
		return nil
	}
	return errInvalidRegister("gpr16", int(g))
}

func checkGpr32Range(g Gpr32) error {
	if uint8(g) <= 0x0f {
		return nil
	}
	return errInvalidRegister("gpr32", int(g))
}

func checkGpr64Range(g Gpr64) error {
	if uint8(g) <= 0x0f {
		return nil
	}
	return errInvalidRegister("gpr64", int(g))
}

// checkVecRange enforces the 0..31 index range shared by Xmm/Ymm/Zmm; kind
// names the register family for the error message.
func checkVecRange(kind string, idx uint8) error {
	if idx <= 0x1f {
		return nil
	}
	return errInvalidRegister(kind, int(idx))
}
