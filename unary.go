package x64write

// Group 3 (F6/F7 /digit: not=2, neg=3, mul=4, imul=5, div=6, idiv=7) and
// Group 5 (FE/FF /digit: inc=0, dec=1) unary instructions share the same
// single-register-or-memory-operand shape as instrR/instrM, with no second
// operand and no immediate.

const (
	group3Not  = 2
	group3Neg  = 3
	group3Mul  = 4
	group3IMul = 5
	group3Div  = 6
	group3IDiv = 7

	group5Inc = 0
	group5Dec = 1
)

func unaryR(c *Cursor, opcode8, opcode uint32, ext uint8, bits int, rm regOperand, highByte, rexForce bool) error {
	s := sizingFor(bits)
	s.rexForce = rexForce
	op := opcode
	if bits == 8 {
		op = opcode8
	}
	return instrR(c, s, op, ext, rm, highByte)
}

func unaryM(c *Cursor, opcode8, opcode uint32, ext uint8, bits int, mem Memory) error {
	op := opcode
	if bits == 8 {
		op = opcode8
	}
	return instrM(c, sizingFor(bits), op, ext, mem)
}

func NotR32(c *Cursor, dst Gpr32) error {
	return unaryR(c, 0xf6, 0xf7, group3Not, 32, gpr32Operand(dst), false, false)
}
func NotR64(c *Cursor, dst Gpr64) error {
	return unaryR(c, 0xf6, 0xf7, group3Not, 64, gpr64Operand(dst), false, false)
}
func NotM32(c *Cursor, dst Memory) error { return unaryM(c, 0xf6, 0xf7, group3Not, 32, dst) }

func NegR32(c *Cursor, dst Gpr32) error {
	return unaryR(c, 0xf6, 0xf7, group3Neg, 32, gpr32Operand(dst), false, false)
}
func NegR64(c *Cursor, dst Gpr64) error {
	return unaryR(c, 0xf6, 0xf7, group3Neg, 64, gpr64Operand(dst), false, false)
}
func NegM32(c *Cursor, dst Memory) error { return unaryM(c, 0xf6, 0xf7, group3Neg, 32, dst) }

// MulR32/MulR64 encode unsigned multiply of RAX/EAX by the operand
// (MUL r/m, the one-operand form; the result is written to
// RDX:RAX/EDX:EAX implicitly and is not represented in the Go signature).
func MulR32(c *Cursor, src Gpr32) error {
	return unaryR(c, 0xf6, 0xf7, group3Mul, 32, gpr32Operand(src), false, false)
}
func MulR64(c *Cursor, src Gpr64) error {
	return unaryR(c, 0xf6, 0xf7, group3Mul, 64, gpr64Operand(src), false, false)
}

// DivR32/DivR64 encode unsigned divide of RDX:RAX/EDX:EAX by the operand.
func DivR32(c *Cursor, src Gpr32) error {
	return unaryR(c, 0xf6, 0xf7, group3Div, 32, gpr32Operand(src), false, false)
}
func DivR64(c *Cursor, src Gpr64) error {
	return unaryR(c, 0xf6, 0xf7, group3Div, 64, gpr64Operand(src), false, false)
}

func IMulR32(c *Cursor, src Gpr32) error {
	return unaryR(c, 0xf6, 0xf7, group3IMul, 32, gpr32Operand(src), false, false)
}
func IDivR32(c *Cursor, src Gpr32) error {
	return unaryR(c, 0xf6, 0xf7, group3IDiv, 32, gpr32Operand(src), false, false)
}

func IncR32(c *Cursor, dst Gpr32) error {
	return unaryR(c, 0xfe, 0xff, group5Inc, 32, gpr32Operand(dst), false, false)
}
func IncR64(c *Cursor, dst Gpr64) error {
	return unaryR(c, 0xfe, 0xff, group5Inc, 64, gpr64Operand(dst), false, false)
}
func IncM32(c *Cursor, dst Memory) error { return unaryM(c, 0xfe, 0xff, group5Inc, 32, dst) }
func IncM64(c *Cursor, dst Memory) error { return unaryM(c, 0xfe, 0xff, group5Inc, 64, dst) }

func DecR32(c *Cursor, dst Gpr32) error {
	return unaryR(c, 0xfe, 0xff, group5Dec, 32, gpr32Operand(dst), false, false)
}
func DecR64(c *Cursor, dst Gpr64) error {
	return unaryR(c, 0xfe, 0xff, group5Dec, 64, gpr64Operand(dst), false, false)
}
func DecM32(c *Cursor, dst Memory) error { return unaryM(c, 0xfe, 0xff, group5Dec, 32, dst) }
func DecM64(c *Cursor, dst Memory) error { return unaryM(c, 0xfe, 0xff, group5Dec, 64, dst) }

func NotM64(c *Cursor, dst Memory) error { return unaryM(c, 0xf6, 0xf7, group3Not, 64, dst) }
func NegM64(c *Cursor, dst Memory) error { return unaryM(c, 0xf6, 0xf7, group3Neg, 64, dst) }
