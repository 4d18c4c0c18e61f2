package x64write

// arithOp is a Group 1 ALU operation. Its numeric value doubles as both the
// ModRM /digit used by the immediate-form opcodes (80/81/83 /digit) and,
// multiplied by 8, the base of the four register-form opcodes, exactly as
// the Intel SDM lays out the ADD/OR/ADC/SBB/AND/SUB/XOR/CMP opcode maps.
type arithOp uint8

const (
	opAdd arithOp = iota
	opOr
	opAdc
	opSbb
	opAnd
	opSub
	opXor
	opCmp
)

func (op arithOp) ext() uint8 { return uint8(op) }

// rmReg8/rmReg/regRm8/regRm are the four register-form opcode bases:
// Eb,Gb / Ev,Gv / Gb,Eb / Gv,Ev in SDM notation.
func (op arithOp) rmReg8() uint32 { return uint32(op)*8 + 0x00 }
func (op arithOp) rmReg() uint32  { return uint32(op)*8 + 0x01 }
func (op arithOp) regRm8() uint32 { return uint32(op)*8 + 0x02 }
func (op arithOp) regRm() uint32  { return uint32(op)*8 + 0x03 }

func sizingFor(bits int) sizing {
	switch bits {
	case 16:
		return sizing{opsize16: true}
	case 64:
		return sizing{w: true}
	default:
		return sizing{}
	}
}

// arithRR encodes dst = dst OP src using the Ev,Gv opcode (dst in the ModRM
// r/m field, src in reg): the canonical register,register form. highByte and
// rexForce only matter for 8-bit operands; other sizes pass false, false.
func arithRR(c *Cursor, op arithOp, bits int, dst, src regOperand, highByte, rexForce bool) error {
	opcode := op.rmReg()
	if bits == 8 {
		opcode = op.rmReg8()
	}
	s := sizingFor(bits)
	s.rexForce = rexForce
	return instrRR(c, s, opcode, src, dst, highByte)
}

// arithMR encodes memory = memory OP reg (dst in memory, src the register).
func arithMR(c *Cursor, op arithOp, bits int, dst Memory, src regOperand) error {
	opcode := op.rmReg()
	if bits == 8 {
		opcode = op.rmReg8()
	}
	return instrRM(c, sizingFor(bits), opcode, src, dst, false)
}

// arithRM encodes dst = dst OP memory (dst the register, src in memory).
func arithRM(c *Cursor, op arithOp, bits int, dst regOperand, src Memory) error {
	opcode := op.regRm()
	if bits == 8 {
		opcode = op.regRm8()
	}
	return instrRM(c, sizingFor(bits), opcode, dst, src, false)
}

// arithRI encodes dst = dst OP imm using the native-width immediate opcode
// (0x80 for 8-bit, 0x81 for 16/32-bit; a 64-bit dst still takes a 32-bit
// sign-extended immediate, there being no wider Group 1 immediate form).
// Testable property 3 (spec.md §8) requires the entry point named, not an
// auto-chosen shorter encoding, to decide the opcode: callers who want the
// 0x83 shortcut call arithRIShort explicitly instead.
func arithRI(c *Cursor, op arithOp, bits int, dst regOperand, imm int64, highByte, rexForce bool) error {
	s := sizingFor(bits)
	s.rexForce = rexForce
	switch bits {
	case 8:
		if err := checkImmediateRange(imm, 8); err != nil {
			return err
		}
		return instrRI(c, s, 0x80, op.ext(), dst, imm, 8, highByte)
	case 16:
		if err := checkImmediateRange(imm, 16); err != nil {
			return err
		}
		return instrRI(c, s, 0x81, op.ext(), dst, imm, 16, highByte)
	default:
		if err := checkImmediateRange(imm, 32); err != nil {
			return err
		}
		return instrRI(c, s, 0x81, op.ext(), dst, imm, 32, highByte)
	}
}

// arithRIShort encodes dst = dst OP imm8 (sign-extended to the operand
// width) via the 0x83 shortcut. There is no 8-bit form of this shortcut: an
// 8-bit destination has only the one immediate opcode, 0x80.
func arithRIShort(c *Cursor, op arithOp, bits int, dst regOperand, imm int8, highByte, rexForce bool) error {
	s := sizingFor(bits)
	s.rexForce = rexForce
	return instrRI(c, s, 0x83, op.ext(), dst, int64(imm), 8, highByte)
}

// arithMI is arithRI's memory,immediate counterpart.
func arithMI(c *Cursor, op arithOp, bits int, dst Memory, imm int64) error {
	s := sizingFor(bits)
	switch bits {
	case 8:
		if err := checkImmediateRange(imm, 8); err != nil {
			return err
		}
		return instrMI(c, s, 0x80, op.ext(), dst, imm, 8)
	case 16:
		if err := checkImmediateRange(imm, 16); err != nil {
			return err
		}
		return instrMI(c, s, 0x81, op.ext(), dst, imm, 16)
	default:
		if err := checkImmediateRange(imm, 32); err != nil {
			return err
		}
		return instrMI(c, s, 0x81, op.ext(), dst, imm, 32)
	}
}

// arithMIShort is arithRIShort's memory,immediate counterpart (0x83 /digit).
func arithMIShort(c *Cursor, op arithOp, bits int, dst Memory, imm int8) error {
	return instrMI(c, sizingFor(bits), 0x83, op.ext(), dst, int64(imm), 8)
}
