package x64write

// ADDPD predates AVX: a plain SSE2 instruction with a mandatory 0x66 prefix
// and no VEX encoding at all, restricted to xmm0-15.
func AddpdXX(c *Cursor, dst, src Xmm) error {
	return instrSSE(c, 0x66, 0x0f58, xmmOperand(dst), xmmOperand(src))
}
func AddpdXM(c *Cursor, dst Xmm, src Memory) error {
	return instrSSEMem(c, 0x66, 0x0f58, xmmOperand(dst), src)
}

// VADDPD is ADDPD's AVX form: VEX.NDS.128/256.66.0F.WIG 58 /r, with a third,
// non-destructive source register. Register indices 16-31 (EVEX only)
// escalate automatically to the four-byte EVEX prefix inside vexRRR/vexRRM.
func VaddpdXXX(c *Cursor, dst, src1, src2 Xmm) error {
	return vexRRR(c, 0x01, false, 0x01, len128, 0x58, xmmOperand(dst), xmmOperand(src1), xmmOperand(src2))
}
func VaddpdXXM(c *Cursor, dst, src1 Xmm, src2 Memory) error {
	return vexRRM(c, 0x01, false, 0x01, len128, 0x58, xmmOperand(dst), xmmOperand(src1), src2)
}
func VaddpdYYY(c *Cursor, dst, src1, src2 Ymm) error {
	return vexRRR(c, 0x01, false, 0x01, len256, 0x58, ymmOperand(dst), ymmOperand(src1), ymmOperand(src2))
}
func VaddpdYYM(c *Cursor, dst, src1 Ymm, src2 Memory) error {
	return vexRRM(c, 0x01, false, 0x01, len256, 0x58, ymmOperand(dst), ymmOperand(src1), src2)
}
func VaddpdZZZ(c *Cursor, dst, src1, src2 Zmm) error {
	return vexRRR(c, 0x01, false, 0x01, len512, 0x58, zmmOperand(dst), zmmOperand(src1), zmmOperand(src2))
}
func VaddpdZZM(c *Cursor, dst, src1 Zmm, src2 Memory) error {
	return vexRRM(c, 0x01, false, 0x01, len512, 0x58, zmmOperand(dst), zmmOperand(src1), src2)
}
