package info

import "github.com/colorfulnotion/x86info/x86"

// PatchSet is the diff a special-case handler applies to the generic result.
// The assembler overrides operand accesses, skips the usages of suppressed
// operands, then appends Registers and Memory after the operand usages.
type PatchSet struct {
	// Access replaces the access of operand i when bit i of Overridden is set.
	Access     [x86.MaxOpCount]OpAccess
	Overridden uint8
	// Suppressed operands report their access but the patch supplies their
	// register and memory usages.
	Suppressed uint8

	Registers []UsedRegister
	Memory    []UsedMemory

	Rflags    RflagsInfo
	HasRflags bool

	// MemoryBias is added to the displacement of the explicit memory operand.
	MemoryBias uint64
}

// Reset empties the patch, keeping the slice capacity.
func (p *PatchSet) Reset() {
	regs, mem := p.Registers[:0], p.Memory[:0]
	*p = PatchSet{Registers: regs, Memory: mem}
}

func (p *PatchSet) IsEmpty() bool {
	return p.Overridden == 0 && p.Suppressed == 0 && len(p.Registers) == 0 &&
		len(p.Memory) == 0 && !p.HasRflags && p.MemoryBias == 0
}

func (p *PatchSet) SetAccess(op int, access OpAccess) {
	p.Access[op] = access
	p.Overridden |= 1 << op
}

// AccessOverride returns the replacement access of op, if any.
func (p *PatchSet) AccessOverride(op int) (OpAccess, bool) {
	if p.Overridden&(1<<op) == 0 {
		return AccessNone, false
	}
	return p.Access[op], true
}

func (p *PatchSet) Suppress(op int) { p.Suppressed |= 1 << op }

func (p *PatchSet) IsSuppressed(op int) bool { return p.Suppressed&(1<<op) != 0 }

func (p *PatchSet) AddRegister(reg x86.Register, access OpAccess) {
	p.Registers = append(p.Registers, UsedRegister{Register: reg, Access: access})
}

func (p *PatchSet) AddMemory(m UsedMemory) {
	p.Memory = append(p.Memory, m)
}

func (p *PatchSet) SetRflags(r RflagsInfo) {
	p.Rflags = r
	p.HasRflags = true
}

// ComputePatch runs the special-case handler of in's code and returns its
// diff. The patch is empty for codes without a handler.
func ComputePatch(in *x86.Instruction) PatchSet {
	var p PatchSet
	d := DescriptorOf(in.Code())
	runHandler(in, d, baselineAccesses(in, d), &p)
	return p
}

func runHandler(in *x86.Instruction, d Descriptor, acc [x86.MaxOpCount]OpAccess, p *PatchSet) {
	h := d.Handler()
	if h == HandlerNone || h >= handlerCount {
		return
	}
	hc := handlerContext{in: in, arg: d.HandlerArg(), access: acc}
	handlers[h](&hc, p)
}
