package x64write

// Adcx is ADCX r32/64, r/m32/64: 66 0F 38 F6 /r. The 0x66 here is a
// mandatory prefix fixed by the opcode, not an operand-size override, but it
// occupies the same wire position instrRR's sizing.opsize16 already emits,
// so it's expressed the same way.

func AdcxR32(c *Cursor, dst, src Gpr32) error {
	return instrRR(c, sizing{opsize16: true}, 0x0f38f6, gpr32Operand(dst), gpr32Operand(src), false)
}
func AdcxR64(c *Cursor, dst, src Gpr64) error {
	return instrRR(c, sizing{opsize16: true, w: true}, 0x0f38f6, gpr64Operand(dst), gpr64Operand(src), false)
}
func AdcxRM32(c *Cursor, dst Gpr32, src Memory) error {
	return instrRM(c, sizing{opsize16: true}, 0x0f38f6, gpr32Operand(dst), src, false)
}
func AdcxRM64(c *Cursor, dst Gpr64, src Memory) error {
	return instrRM(c, sizing{opsize16: true, w: true}, 0x0f38f6, gpr64Operand(dst), src, false)
}
