package x64write

// sizing bundles the legacy-prefix and REX inputs shared by every kernel.
// w selects REX.W (64-bit operand size); opsize16 selects the 0x66 operand-
// size override; addr32 selects the 0x67 address-size override, meaningful
// only when the instruction has a memory operand; rexForce requests an
// otherwise-empty REX byte, needed to reach spl/bpl/sil/dil (see Gpr8).
// Callers never need to set addr32 themselves for a memory operand: instrM/
// instrMI/instrRM OR it in from Memory.addrSize32 before emitting prefixes.
type sizing struct {
	w        bool
	opsize16 bool
	addr32   bool
	rexForce bool
}

// regOperand is a resolved 4-bit register index together with whether it
// needs a REX extension bit (R8..R15, or a vector register's high half is
// handled separately in vex.go). Mnemonic entry points build these from the
// typed Gpr8/16/32/64 values so the kernels themselves stay size-agnostic.
// err carries a range-check failure from the g*Operand constructor below
// (nil under x64write_novalidate): every kernel that accepts a regOperand
// checks it before emitting any byte, so an out-of-range register index is
// reported as an error rather than silently folded into a valid encoding.
type regOperand struct {
	idx uint8
	ext bool
	err error
}

func gpr8Operand(g Gpr8) (regOperand, bool) {
	return regOperand{idx: g.index(), ext: g.extended(), err: checkGpr8Range(g)}, g.needsRex()
}

// gpr8Info additionally reports isHighByte, so call sites that combine two
// Gpr8 operands can OR both needsRex and both isHighByte before calling
// checkGpr8Conflict.
func gpr8Info(g Gpr8) (ro regOperand, highByte, needsRex bool) {
	ro, needsRex = gpr8Operand(g)
	return ro, g.isHighByte(), needsRex
}
func gpr16Operand(g Gpr16) regOperand {
	return regOperand{idx: uint8(g) & 0xf, ext: g.extended(), err: checkGpr16Range(g)}
}
func gpr32Operand(g Gpr32) regOperand {
	return regOperand{idx: uint8(g) & 0xf, ext: g.extended(), err: checkGpr32Range(g)}
}
func gpr64Operand(g Gpr64) regOperand {
	return regOperand{idx: uint8(g) & 0xf, ext: g.extended(), err: checkGpr64Range(g)}
}

// regErr returns the first non-nil range error among the given operands, if
// any; kernels call this before writing any byte.
func regErr(ops ...regOperand) error {
	for _, op := range ops {
		if op.err != nil {
			return op.err
		}
	}
	return nil
}

func extBit(idx uint8) bool { return idx&0x8 != 0 }

func memoryExtBits(m Memory) (extX, extB bool) {
	if idx, _, present := m.indexReg(); present {
		extX = extBit(idx)
	}
	if idx, present := m.baseReg(); present {
		extB = extBit(idx)
	}
	return
}

func (c *Cursor) writeLegacyPrefixes(s sizing, hasMemory bool) {
	if hasMemory && s.addr32 {
		c.writeByte(0x67)
	}
	if s.opsize16 {
		c.writeByte(0x66)
	}
}

func writeImmediate(c *Cursor, imm int64, bits int) {
	switch bits {
	case 8:
		c.writeByte(byte(imm))
	case 16:
		c.writeLE16(uint16(imm))
	case 32:
		c.writeLE32(uint32(imm))
	case 64:
		c.writeLE64(uint64(imm))
	default:
		panic("x64write: invalid immediate width")
	}
}

// instrR encodes a single register operand carried in the ModRM r/m field
// (mod=11), with a fixed opcode-extension digit in the ModRM reg field. This
// is the shape of the Group 3/5 unary instructions (not, neg, mul, div, inc,
// dec, push r/m, pop r/m).
func instrR(c *Cursor, s sizing, opcode uint32, ext uint8, rm regOperand, hasHighByte bool) error {
	if err := regErr(rm); err != nil {
		return err
	}
	if err := checkGpr8Conflict(hasHighByte, s.rexForce || rm.ext); err != nil {
		return err
	}
	c.writeLegacyPrefixes(s, false)
	c.writeREX(s.w, false, false, rm.ext, s.rexForce)
	c.writeOpcode(opcode)
	c.writeModRMRegister(ext, rm.idx)
	return nil
}

// instrM encodes a single memory operand in the ModRM r/m field, with a
// fixed opcode-extension digit in the reg field (inc m32, push m64, ...).
func instrM(c *Cursor, s sizing, opcode uint32, ext uint8, mem Memory) error {
	if err := checkMemory(mem); err != nil {
		return err
	}
	extX, extB := memoryExtBits(mem)
	s.addr32 = s.addr32 || mem.addrSize32
	c.writeLegacyPrefixes(s, true)
	c.writeREX(s.w, false, extX, extB, s.rexForce)
	c.writeOpcode(opcode)
	c.writeModRMMemory(ext, mem)
	return nil
}

// instrRI encodes a register r/m operand followed by an immediate, with a
// fixed opcode-extension digit in the reg field (arithmetic r/m, imm forms;
// test r/m, imm; shift r/m, imm8).
func instrRI(c *Cursor, s sizing, opcode uint32, ext uint8, rm regOperand, imm int64, immBits int, hasHighByte bool) error {
	if err := regErr(rm); err != nil {
		return err
	}
	if err := checkGpr8Conflict(hasHighByte, s.rexForce || rm.ext); err != nil {
		return err
	}
	c.writeLegacyPrefixes(s, false)
	c.writeREX(s.w, false, false, rm.ext, s.rexForce)
	c.writeOpcode(opcode)
	c.writeModRMRegister(ext, rm.idx)
	writeImmediate(c, imm, immBits)
	return nil
}

// instrMI encodes a memory r/m operand followed by an immediate.
func instrMI(c *Cursor, s sizing, opcode uint32, ext uint8, mem Memory, imm int64, immBits int) error {
	if err := checkMemory(mem); err != nil {
		return err
	}
	extX, extB := memoryExtBits(mem)
	s.addr32 = s.addr32 || mem.addrSize32
	c.writeLegacyPrefixes(s, true)
	c.writeREX(s.w, false, extX, extB, s.rexForce)
	c.writeOpcode(opcode)
	c.writeModRMMemory(ext, mem)
	writeImmediate(c, imm, immBits)
	return nil
}

// instrRR encodes two register operands: reg in the ModRM reg field, rm in
// the ModRM r/m field (mod=11). Which one is logically source or
// destination is up to the opcode the caller passes; the ModRM shape is
// identical either way.
func instrRR(c *Cursor, s sizing, opcode uint32, reg, rm regOperand, hasHighByte bool) error {
	if err := regErr(reg, rm); err != nil {
		return err
	}
	if err := checkGpr8Conflict(hasHighByte, s.rexForce || reg.ext || rm.ext); err != nil {
		return err
	}
	c.writeLegacyPrefixes(s, false)
	c.writeREX(s.w, reg.ext, false, rm.ext, s.rexForce)
	c.writeOpcode(opcode)
	c.writeModRMRegister(reg.idx, rm.idx)
	return nil
}

// instrRM encodes a register operand in the ModRM reg field and a memory
// operand in the r/m field.
func instrRM(c *Cursor, s sizing, opcode uint32, reg regOperand, mem Memory, hasHighByte bool) error {
	if err := regErr(reg); err != nil {
		return err
	}
	if err := checkMemory(mem); err != nil {
		return err
	}
	extX, extB := memoryExtBits(mem)
	if err := checkGpr8Conflict(hasHighByte, s.rexForce || reg.ext || extX || extB); err != nil {
		return err
	}
	s.addr32 = s.addr32 || mem.addrSize32
	c.writeLegacyPrefixes(s, true)
	c.writeREX(s.w, reg.ext, extX, extB, s.rexForce)
	c.writeOpcode(opcode)
	c.writeModRMMemory(reg.idx, mem)
	return nil
}

// instrRegInOpcode encodes the opcode+rd form (push r64, pop r64, the
// mov r64, imm64 family): no ModRM byte, the register is folded into the
// low 3 bits of the opcode's last byte.
func instrRegInOpcode(c *Cursor, s sizing, opcode uint32, rd regOperand) error {
	if err := regErr(rd); err != nil {
		return err
	}
	c.writeLegacyPrefixes(s, false)
	c.writeREX(s.w, false, false, rd.ext, s.rexForce)
	c.writeOpcode(opcode&^0x7 | uint32(rd.idx&0x7))
	return nil
}
