package x64write

// PUSH/POP default to a 64-bit operand in long mode; REX.W is redundant for
// them (the SDM specifies it has no effect), so these never set sizing.w.
// 16-bit forms use the 0x66 operand-size override instead.

func PushR64(c *Cursor, src Gpr64) error {
	return instrRegInOpcode(c, sizing{}, 0x50, gpr64Operand(src))
}

func PushR16(c *Cursor, src Gpr16) error {
	return instrRegInOpcode(c, sizing{opsize16: true}, 0x50, gpr16Operand(src))
}

func PushM64(c *Cursor, src Memory) error { return instrM(c, sizing{}, 0xff, 6, src) }

func PushImm32(c *Cursor, imm int32) error {
	c.writeByte(0x68)
	c.writeLE32(uint32(imm))
	return nil
}

func PushImm8(c *Cursor, imm int8) error {
	c.writeByte(0x6a)
	c.writeByte(byte(imm))
	return nil
}

func PopR64(c *Cursor, dst Gpr64) error {
	return instrRegInOpcode(c, sizing{}, 0x58, gpr64Operand(dst))
}

func PopR16(c *Cursor, dst Gpr16) error {
	return instrRegInOpcode(c, sizing{opsize16: true}, 0x58, gpr16Operand(dst))
}

func PopM64(c *Cursor, dst Memory) error { return instrM(c, sizing{}, 0x8f, 0, dst) }
