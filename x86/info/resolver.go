package info

import "github.com/colorfulnotion/x86info/x86"

var op1Accesses = [op1InfoCount]OpAccess{
	Op1None:        AccessNone,
	Op1Read:        AccessRead,
	Op1CondRead:    AccessCondRead,
	Op1Write:       AccessWrite,
	Op1CondWrite:   AccessCondWrite,
	Op1ReadWrite:   AccessReadWrite,
	Op1NoMemAccess: AccessNoMemAccess,
	Op1ReadP3:      AccessRead,
}

var op2Accesses = [op2InfoCount]OpAccess{
	Op2None:      AccessNone,
	Op2Read:      AccessRead,
	Op2Write:     AccessWrite,
	Op2ReadWrite: AccessReadWrite,
}

func op0Access(in *x86.Instruction, info OpInfo0) OpAccess {
	switch info {
	case Op0Read:
		return AccessRead
	case Op0Write:
		if in.MergingMasking() {
			if in.Op0Kind() == x86.OpKindRegister {
				return AccessReadWrite
			}
			return AccessCondWrite
		}
		return AccessWrite
	case Op0WriteForce:
		return AccessWrite
	case Op0CondWrite:
		return AccessCondWrite
	case Op0CondWrite32_ReadWrite64:
		if in.CodeSize().Is64() {
			return AccessReadWrite
		}
		return AccessCondWrite
	case Op0ReadWrite:
		return AccessReadWrite
	case Op0ReadCondWrite:
		return AccessReadCondWrite
	case Op0NoMemAccess:
		return AccessNoMemAccess
	case Op0WriteMem_ReadWriteReg:
		if in.Op0Kind() == x86.OpKindRegister && in.Op1Kind() == x86.OpKindRegister &&
			in.Op0Register() == in.Op1Register() {
			return AccessReadWrite
		}
		return AccessWrite
	}
	return AccessNone
}

// baselineAccesses decodes the operand access classes of d for in. Operands
// past the operand count are None and NoMemAccess on a register operand is a
// plain read.
func baselineAccesses(in *x86.Instruction, d Descriptor) [x86.MaxOpCount]OpAccess {
	var acc [x86.MaxOpCount]OpAccess
	n := in.OpCount()
	for op := 0; op < n; op++ {
		switch op {
		case 0:
			acc[0] = op0Access(in, d.Op0())
		case 1:
			acc[1] = op1Accesses[d.Op1()]
		case 2:
			acc[2] = op2Accesses[d.Op2()]
		case 3:
			if d.Op3() == Op3Read {
				acc[3] = AccessRead
			}
		case 4:
			if d.Op4() == Op4Read {
				acc[4] = AccessRead
			}
		}
		if acc[op] == AccessNoMemAccess && in.OpKind(op) == x86.OpKindRegister {
			acc[op] = AccessRead
		}
	}
	return acc
}

// collector accumulates usages in the order they are found.
type collector struct {
	in   *x86.Instruction
	desc Descriptor
	opts Options

	is64          bool
	zeroExtendVec bool

	regs []UsedRegister
	mem  []UsedMemory
}

func (c *collector) reset(in *x86.Instruction, d Descriptor, opts Options) {
	c.in, c.desc, c.opts = in, d, opts
	c.is64 = in.CodeSize().Is64()
	c.zeroExtendVec = d.Encoding().ZeroExtendsVectorRegs()
	c.regs = c.regs[:0]
	c.mem = c.mem[:0]
}

// addRegister records reg. A write to a 32-bit GPR in 64-bit code, or to an
// XMM/YMM register under VEX, EVEX or XOP, clears the upper bits and is
// recorded against the full register.
func (c *collector) addRegister(reg x86.Register, access OpAccess) {
	if c.opts.NoRegisterUsage || reg == x86.None {
		return
	}
	if access.Writes() {
		switch {
		case reg.IsGPR32() && c.is64:
			reg = reg.FullRegister()
		case (reg.IsXMM() || reg.IsYMM()) && c.zeroExtendVec:
			reg = reg.FullRegister()
		}
	}
	c.regs = append(c.regs, UsedRegister{Register: reg, Access: access})
}

func (c *collector) addMemory(m UsedMemory) {
	if c.opts.NoMemoryUsage {
		return
	}
	c.mem = append(c.mem, m)
}

func (c *collector) addSegment(seg x86.Register) {
	if seg == x86.None || segmentElided(c.in, seg) {
		return
	}
	c.addRegister(seg, AccessRead)
}

// addOperands emits the usages of every operand that is accessed and not
// suppressed by p.
func (c *collector) addOperands(acc [x86.MaxOpCount]OpAccess, p *PatchSet) {
	in := c.in
	for op := 0; op < in.OpCount(); op++ {
		access := acc[op]
		if access == AccessNone || p.IsSuppressed(op) {
			continue
		}
		switch kind := in.OpKind(op); {
		case kind == x86.OpKindRegister:
			reg, err := in.OpRegister(op)
			if err != nil || reg == x86.None {
				continue
			}
			if op == 1 && c.desc.Op1() == Op1ReadP3 {
				first := reg - x86.Register(reg.Number()&3)
				for i := x86.Register(0); i < 4; i++ {
					c.addRegister(first+i, AccessRead)
				}
				continue
			}
			c.addRegister(reg, access)
		case kind == x86.OpKindMemory64:
			seg := in.MemorySegment()
			c.addMemory(UsedMemory{
				Segment:      seg,
				Scale:        1,
				Displacement: in.MemoryDisplacement64(),
				MemorySize:   in.MemorySize(),
				Access:       access,
				AddressSize:  8,
			})
			c.addSegment(seg)
		case kind == x86.OpKindMemory:
			c.addMemoryOperand(access, p.MemoryBias)
		case kind.IsStringMemory():
			seg, ptr, asz := stringMemory(in, kind)
			c.addMemory(UsedMemory{
				Segment:     seg,
				Base:        ptr,
				Scale:       1,
				MemorySize:  in.MemorySize(),
				Access:      access,
				AddressSize: asz,
			})
			c.addSegment(seg)
			c.addRegister(ptr, AccessRead)
		}
	}
}

// addMemoryOperand emits the explicit [base+index*scale+displ] operand.
// NoMemAccess only reads the address registers.
func (c *collector) addMemoryOperand(access OpAccess, bias uint64) {
	in := c.in
	seg := in.MemorySegment()
	base, index := in.MemoryBase(), in.MemoryIndex()
	asz := in.MemoryAddressSize()

	var displ uint64
	if base.IsIP() {
		displ = in.IPRelativeMemoryAddress()
		asz = base.Size()
		base = x86.None
	} else {
		displ = extendDisplacement(in, asz) + bias
		displ &= addressMask(asz)
	}

	if access != AccessNoMemAccess {
		c.addMemory(UsedMemory{
			Segment:      seg,
			Base:         base,
			Index:        index,
			Scale:        in.MemoryIndexScale(),
			Displacement: displ,
			MemorySize:   in.MemorySize(),
			Access:       access,
			AddressSize:  asz,
			VsibSize:     c.desc.Vsib().Size(),
		})
		c.addSegment(seg)
	}
	c.addRegister(base, AccessRead)
	c.addRegister(index, AccessRead)
}

// extendDisplacement sign-extends a 32-bit displacement for 64-bit
// addressing and truncates it otherwise.
func extendDisplacement(in *x86.Instruction, addrSize int) uint64 {
	switch addrSize {
	case 2:
		return uint64(uint16(in.MemoryDisplacement32()))
	case 4:
		return uint64(in.MemoryDisplacement32())
	}
	if in.MemoryDisplSize() == 8 {
		return in.MemoryDisplacement64()
	}
	return uint64(int64(int32(in.MemoryDisplacement32())))
}

// addOpmask emits the k1..k7 predicate register.
func (c *collector) addOpmask() {
	if !c.in.HasOpMask() {
		return
	}
	access := AccessRead
	if c.desc.OpmaskReadWrite() {
		access = AccessReadWrite
	}
	c.addRegister(c.in.OpMask(), access)
}

func (c *collector) addPatch(p *PatchSet) {
	for _, u := range p.Registers {
		c.addRegister(u.Register, u.Access)
	}
	for _, m := range p.Memory {
		c.addMemory(m)
	}
}
