package x64write

// LeaR16/32/64 encode LEA (0x8D /r): the address computed from mem is
// loaded into dst without any memory access taking place.

func LeaR16(c *Cursor, dst Gpr16, mem Memory) error {
	return instrRM(c, sizingFor(16), 0x8d, gpr16Operand(dst), mem, false)
}
func LeaR32(c *Cursor, dst Gpr32, mem Memory) error {
	return instrRM(c, sizingFor(32), 0x8d, gpr32Operand(dst), mem, false)
}
func LeaR64(c *Cursor, dst Gpr64, mem Memory) error {
	return instrRM(c, sizingFor(64), 0x8d, gpr64Operand(dst), mem, false)
}
