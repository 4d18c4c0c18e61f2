package x64write

// MOV has four shapes: register,register (0x8A/0x8B Gb,Eb / Gv,Ev, dst in
// reg field), register,memory (same opcodes), memory,register (0x88/0x89
// Eb,Gb / Ev,Gv, dst in r/m field) and register/memory,imm (0xC6/0xC7 /0,
// used for the 8/16/32-bit register and memory forms), plus the 64-bit
// register,imm64 form (0xB8+rd, MovRI64), which carries a full 8-byte
// immediate rather than the sign-extended 32-bit immediate every other
// mnemonic uses. The 0xB0+rb short form is not used. Register,register MOV always
// goes through the Gv,Ev opcode with dst in reg and src in r/m, matching how
// every disassembler renders it, rather than the equally-legal Ev,Gv form.

func MovRR8(c *Cursor, dst, src Gpr8) error {
	d, dHigh, dRex := gpr8Info(dst)
	s, sHigh, sRex := gpr8Info(src)
	return instrRR(c, sizing{rexForce: dRex || sRex}, 0x8a, d, s, dHigh || sHigh)
}
func MovRR16(c *Cursor, dst, src Gpr16) error {
	return instrRR(c, sizingFor(16), 0x8b, gpr16Operand(dst), gpr16Operand(src), false)
}
func MovRR32(c *Cursor, dst, src Gpr32) error {
	return instrRR(c, sizingFor(32), 0x8b, gpr32Operand(dst), gpr32Operand(src), false)
}
func MovRR64(c *Cursor, dst, src Gpr64) error {
	return instrRR(c, sizingFor(64), 0x8b, gpr64Operand(dst), gpr64Operand(src), false)
}

func MovRM8(c *Cursor, dst Gpr8, src Memory) error {
	d, dHigh, dRex := gpr8Info(dst)
	s := sizingFor(8)
	s.rexForce = dRex
	return instrRM(c, s, 0x8a, d, src, dHigh)
}
func MovRM16(c *Cursor, dst Gpr16, src Memory) error {
	return instrRM(c, sizingFor(16), 0x8b, gpr16Operand(dst), src, false)
}
func MovRM32(c *Cursor, dst Gpr32, src Memory) error {
	return instrRM(c, sizingFor(32), 0x8b, gpr32Operand(dst), src, false)
}
func MovRM64(c *Cursor, dst Gpr64, src Memory) error {
	return instrRM(c, sizingFor(64), 0x8b, gpr64Operand(dst), src, false)
}

func MovMR8(c *Cursor, dst Memory, src Gpr8) error {
	s, sHigh, sRex := gpr8Info(src)
	sz := sizingFor(8)
	sz.rexForce = sRex
	return instrRM(c, sz, 0x88, s, dst, sHigh)
}
func MovMR16(c *Cursor, dst Memory, src Gpr16) error {
	return instrRM(c, sizingFor(16), 0x89, gpr16Operand(src), dst, false)
}
func MovMR32(c *Cursor, dst Memory, src Gpr32) error {
	return instrRM(c, sizingFor(32), 0x89, gpr32Operand(src), dst, false)
}
func MovMR64(c *Cursor, dst Memory, src Gpr64) error {
	return instrRM(c, sizingFor(64), 0x89, gpr64Operand(src), dst, false)
}

func MovRI8(c *Cursor, dst Gpr8, imm int8) error {
	d, dHigh, dRex := gpr8Info(dst)
	s := sizingFor(8)
	s.rexForce = dRex
	return instrRI(c, s, 0xc6, 0, d, int64(imm), 8, dHigh)
}
func MovRI16(c *Cursor, dst Gpr16, imm int16) error {
	return instrRI(c, sizingFor(16), 0xc7, 0, gpr16Operand(dst), int64(imm), 16, false)
}
func MovRI32(c *Cursor, dst Gpr32, imm int32) error {
	return instrRI(c, sizingFor(32), 0xc7, 0, gpr32Operand(dst), int64(imm), 32, false)
}

// MovRI64 encodes the B8+rd opcode+rd form, the only GPR instruction that
// takes a full 64-bit immediate rather than a sign-extended 32-bit one.
func MovRI64(c *Cursor, dst Gpr64, imm int64) error {
	if err := instrRegInOpcode(c, sizingFor(64), 0xb8, gpr64Operand(dst)); err != nil {
		return err
	}
	c.writeLE64(uint64(imm))
	return nil
}

func MovMI8(c *Cursor, dst Memory, imm int8) error {
	return instrMI(c, sizingFor(8), 0xc6, 0, dst, int64(imm), 8)
}
func MovMI16(c *Cursor, dst Memory, imm int16) error {
	return instrMI(c, sizingFor(16), 0xc7, 0, dst, int64(imm), 16)
}
func MovMI32(c *Cursor, dst Memory, imm int32) error {
	return instrMI(c, sizingFor(32), 0xc7, 0, dst, int64(imm), 32)
}
