package x64write

// shiftOp is a Group 2 shift/rotate operation; its value is the ModRM
// /digit shared by the D0/D1/D2/D3/C0/C1 opcode family.
type shiftOp uint8

const (
	opRol shiftOp = iota
	opRor
	opRcl
	opRcr
	opShl // SAL is the same opcode/digit as SHL
	opShr
	_ // digit 6 is an undocumented SAL alias, not exposed
	opSar
)

func (op shiftOp) ext() uint8 { return uint8(op) }

func shiftR1(c *Cursor, op shiftOp, bits int, rm regOperand, highByte, rexForce bool) error {
	s := sizingFor(bits)
	s.rexForce = rexForce
	opcode := uint32(0xd1)
	if bits == 8 {
		opcode = 0xd0
	}
	return instrR(c, s, opcode, op.ext(), rm, highByte)
}

func shiftRImm8(c *Cursor, op shiftOp, bits int, rm regOperand, imm uint8, highByte, rexForce bool) error {
	s := sizingFor(bits)
	s.rexForce = rexForce
	opcode := uint32(0xc1)
	if bits == 8 {
		opcode = 0xc0
	}
	return instrRI(c, s, opcode, op.ext(), rm, int64(imm), 8, highByte)
}

func shiftRCL(c *Cursor, op shiftOp, bits int, rm regOperand, highByte, rexForce bool) error {
	s := sizingFor(bits)
	s.rexForce = rexForce
	opcode := uint32(0xd3)
	if bits == 8 {
		opcode = 0xd2
	}
	return instrR(c, s, opcode, op.ext(), rm, highByte)
}

func shiftM1(c *Cursor, op shiftOp, bits int, mem Memory) error {
	opcode := uint32(0xd1)
	if bits == 8 {
		opcode = 0xd0
	}
	return instrM(c, sizingFor(bits), opcode, op.ext(), mem)
}

func shiftMImm8(c *Cursor, op shiftOp, bits int, mem Memory, imm uint8) error {
	opcode := uint32(0xc1)
	if bits == 8 {
		opcode = 0xc0
	}
	return instrMI(c, sizingFor(bits), opcode, op.ext(), mem, int64(imm), 8)
}

func shiftMCL(c *Cursor, op shiftOp, bits int, mem Memory) error {
	opcode := uint32(0xd3)
	if bits == 8 {
		opcode = 0xd2
	}
	return instrM(c, sizingFor(bits), opcode, op.ext(), mem)
}

// ShlR32Imm8/ShlR32CL and their siblings are the exported Group 2 entry
// points. Only the shapes below have named wrappers: SHL/SHR/SAR register by
// imm8 and by CL at 32 and 64 bits, SHL register by one at 32 and 64 bits,
// ROL/ROR/RCL/RCR register by imm8 at 32 bits, SHL 8-bit register by imm8
// and by CL, and a few SHL/SHR memory forms. There are no 16-bit shift
// entry points, no by-one form for SHR or SAR, and no separate SAL entry
// points (SAL shares SHL's encoding).

func ShlR32Imm8(c *Cursor, dst Gpr32, imm uint8) error {
	return shiftRImm8(c, opShl, 32, gpr32Operand(dst), imm, false, false)
}
func ShlR64Imm8(c *Cursor, dst Gpr64, imm uint8) error {
	return shiftRImm8(c, opShl, 64, gpr64Operand(dst), imm, false, false)
}
func ShlR32CL(c *Cursor, dst Gpr32) error {
	return shiftRCL(c, opShl, 32, gpr32Operand(dst), false, false)
}
func ShlR64CL(c *Cursor, dst Gpr64) error {
	return shiftRCL(c, opShl, 64, gpr64Operand(dst), false, false)
}
func ShlR32One(c *Cursor, dst Gpr32) error { return shiftR1(c, opShl, 32, gpr32Operand(dst), false, false) }
func ShlR64One(c *Cursor, dst Gpr64) error { return shiftR1(c, opShl, 64, gpr64Operand(dst), false, false) }

func ShrR32Imm8(c *Cursor, dst Gpr32, imm uint8) error {
	return shiftRImm8(c, opShr, 32, gpr32Operand(dst), imm, false, false)
}
func ShrR64Imm8(c *Cursor, dst Gpr64, imm uint8) error {
	return shiftRImm8(c, opShr, 64, gpr64Operand(dst), imm, false, false)
}
func ShrR32CL(c *Cursor, dst Gpr32) error {
	return shiftRCL(c, opShr, 32, gpr32Operand(dst), false, false)
}
func ShrR64CL(c *Cursor, dst Gpr64) error {
	return shiftRCL(c, opShr, 64, gpr64Operand(dst), false, false)
}

func SarR32Imm8(c *Cursor, dst Gpr32, imm uint8) error {
	return shiftRImm8(c, opSar, 32, gpr32Operand(dst), imm, false, false)
}
func SarR64Imm8(c *Cursor, dst Gpr64, imm uint8) error {
	return shiftRImm8(c, opSar, 64, gpr64Operand(dst), imm, false, false)
}
func SarR32CL(c *Cursor, dst Gpr32) error {
	return shiftRCL(c, opSar, 32, gpr32Operand(dst), false, false)
}
func SarR64CL(c *Cursor, dst Gpr64) error {
	return shiftRCL(c, opSar, 64, gpr64Operand(dst), false, false)
}

func RolR32Imm8(c *Cursor, dst Gpr32, imm uint8) error {
	return shiftRImm8(c, opRol, 32, gpr32Operand(dst), imm, false, false)
}
func RorR32Imm8(c *Cursor, dst Gpr32, imm uint8) error {
	return shiftRImm8(c, opRor, 32, gpr32Operand(dst), imm, false, false)
}
func RclR32Imm8(c *Cursor, dst Gpr32, imm uint8) error {
	return shiftRImm8(c, opRcl, 32, gpr32Operand(dst), imm, false, false)
}
func RcrR32Imm8(c *Cursor, dst Gpr32, imm uint8) error {
	return shiftRImm8(c, opRcr, 32, gpr32Operand(dst), imm, false, false)
}

func ShlR8Imm8(c *Cursor, dst Gpr8, imm uint8) error {
	d, high, rex := gpr8Info(dst)
	return shiftRImm8(c, opShl, 8, d, imm, high, rex)
}
func ShlR8CL(c *Cursor, dst Gpr8) error {
	d, high, rex := gpr8Info(dst)
	return shiftRCL(c, opShl, 8, d, high, rex)
}

func ShlM32Imm8(c *Cursor, dst Memory, imm uint8) error { return shiftMImm8(c, opShl, 32, dst, imm) }
func ShlM64Imm8(c *Cursor, dst Memory, imm uint8) error { return shiftMImm8(c, opShl, 64, dst, imm) }
func ShlM32CL(c *Cursor, dst Memory) error              { return shiftMCL(c, opShl, 32, dst) }
func ShrM32CL(c *Cursor, dst Memory) error              { return shiftMCL(c, opShr, 32, dst) }
