package info

import (
	"fmt"

	"github.com/colorfulnotion/x86info/x86"
)

// HandlerID selects the special-case handler of a code.
type HandlerID uint8

const (
	HandlerNone HandlerID = iota
	HandlerPush
	HandlerPop
	HandlerPopRm
	HandlerPusha
	HandlerPopa
	HandlerEnter
	HandlerLeave
	HandlerIret
	HandlerString
	HandlerXlat
	HandlerFixedRegs
	HandlerShiftImm
	HandlerClearReg
	HandlerClearVec3
	HandlerXstore
	HandlerXcrypt
	HandlerXsha
	HandlerMontmul
	HandlerLlwpcb
	HandlerSvm
	HandlerMonitor
	HandlerEncls
	HandlerSyscall
	HandlerSysenter
	HandlerClzero
	HandlerInvlpga
	HandlerMovdir64b
	HandlerUmonitor

	handlerCount
)

var handlerNames = [handlerCount]string{
	"None", "Push", "Pop", "PopRm", "Pusha", "Popa", "Enter", "Leave", "Iret", "String", "Xlat",
	"FixedRegs", "ShiftImm", "ClearReg", "ClearVec3", "Xstore", "Xcrypt", "Xsha", "Montmul",
	"Llwpcb", "Svm", "Monitor", "Encls", "Syscall", "Sysenter", "Clzero", "Invlpga", "Movdir64b",
	"Umonitor",
}

func (h HandlerID) String() string {
	if h < handlerCount {
		return handlerNames[h]
	}
	return fmt.Sprintf("HandlerID(%d)", uint8(h))
}

// handlerContext is the read-only input of a handler: the instruction, the
// descriptor argument and the baseline operand accesses.
type handlerContext struct {
	in     *x86.Instruction
	arg    uint8
	access [x86.MaxOpCount]OpAccess
}

type handlerFunc func(hc *handlerContext, p *PatchSet)

var handlers = [handlerCount]handlerFunc{
	HandlerNone:      func(*handlerContext, *PatchSet) {},
	HandlerPush:      handlePush,
	HandlerPop:       handlePop,
	HandlerPopRm:     handlePopRm,
	HandlerPusha:     handlePusha,
	HandlerPopa:      handlePopa,
	HandlerEnter:     handleEnter,
	HandlerLeave:     handleLeave,
	HandlerIret:      handleIret,
	HandlerString:    handleString,
	HandlerXlat:      handleXlat,
	HandlerFixedRegs: handleFixedRegs,
	HandlerShiftImm:  handleShiftImm,
	HandlerClearReg:  handleClearReg,
	HandlerClearVec3: handleClearVec3,
	HandlerXstore:    handleXstore,
	HandlerXcrypt:    handleXcrypt,
	HandlerXsha:      handleXsha,
	HandlerMontmul:   handleMontmul,
	HandlerLlwpcb:    handleLlwpcb,
	HandlerSvm:       handleSvm,
	HandlerMonitor:   handleMonitor,
	HandlerEncls:     handleEncls,
	HandlerSyscall:   handleSyscall,
	HandlerSysenter:  handleSysenter,
	HandlerClzero:    handleClzero,
	HandlerInvlpga:   handleInvlpga,
	HandlerMovdir64b: handleMovdir64b,
	HandlerUmonitor:  handleUmonitor,
}

// stackArg packs an element size and a slot count into a handler argument.
func stackArg(size, count int) uint8 { return uint8(size | count<<4) }

func unpackStackArg(arg uint8) (size, count int) {
	size, count = int(arg&0xF), int(arg>>4)
	if count == 0 {
		count = 1
	}
	return size, count
}

func sizedMemory(size int) x86.MemorySize {
	switch size {
	case 1:
		return x86.MemorySizeUInt8
	case 2:
		return x86.MemorySizeUInt16
	case 4:
		return x86.MemorySizeUInt32
	case 8:
		return x86.MemorySizeUInt64
	}
	return x86.MemorySizeUnknown
}

func addressMask(addrSize int) uint64 {
	switch addrSize {
	case 2:
		return 0xFFFF
	case 4:
		return 0xFFFF_FFFF
	}
	return ^uint64(0)
}

// addSegment adds a segment register usage unless the segment has a zero
// base in 64-bit code.
func addSegment(in *x86.Instruction, p *PatchSet, seg x86.Register, access OpAccess) {
	if segmentElided(in, seg) {
		return
	}
	p.AddRegister(seg, access)
}

func segmentElided(in *x86.Instruction, seg x86.Register) bool {
	return in.CodeSize().Is64() && seg != x86.FS && seg != x86.GS
}

// overrideSegment returns the segment prefix, or def without one.
func overrideSegment(in *x86.Instruction, def x86.Register) x86.Register {
	if seg := in.SegmentPrefix(); seg != x86.None {
		return seg
	}
	return def
}

// stackSlot is an SS-relative access at base+displ of an element of size
// bytes.
func stackSlot(in *x86.Instruction, base x86.Register, displ int64, size int, access OpAccess) UsedMemory {
	_, spSize := in.StackPointer()
	return UsedMemory{
		Segment:      x86.SS,
		Base:         base,
		Scale:        1,
		Displacement: uint64(displ) & addressMask(spSize),
		MemorySize:   sizedMemory(size),
		Access:       access,
		AddressSize:  spSize,
	}
}

// pointerMemory is a seg:[reg] access with the address size of reg.
func pointerMemory(seg, reg x86.Register, size x86.MemorySize, access OpAccess) UsedMemory {
	return UsedMemory{
		Segment:     seg,
		Base:        reg,
		Scale:       1,
		MemorySize:  size,
		Access:      access,
		AddressSize: reg.Size(),
	}
}

// handlePush covers push, pushf and near/far call: count elements of size
// bytes are written below the stack pointer.
func handlePush(hc *handlerContext, p *PatchSet) {
	size, count := unpackStackArg(hc.arg)
	sp, _ := hc.in.StackPointer()
	for i := 1; i <= count; i++ {
		p.AddMemory(stackSlot(hc.in, sp, -int64(size*i), size, AccessWrite))
	}
	addSegment(hc.in, p, x86.SS, AccessRead)
	p.AddRegister(sp, AccessReadWrite)
}

// handlePop covers pop, popf and near/far ret.
func handlePop(hc *handlerContext, p *PatchSet) {
	size, count := unpackStackArg(hc.arg)
	sp, _ := hc.in.StackPointer()
	for i := 0; i < count; i++ {
		p.AddMemory(stackSlot(hc.in, sp, int64(size*i), size, AccessRead))
	}
	addSegment(hc.in, p, x86.SS, AccessRead)
	p.AddRegister(sp, AccessReadWrite)
}

// handlePopRm is pop with an r/m destination. A stack pointer based
// destination address is computed after the increment.
func handlePopRm(hc *handlerContext, p *PatchSet) {
	handlePop(hc, p)
	in := hc.in
	if in.Op0Kind() == x86.OpKindMemory && in.MemoryBase().FullRegister() == x86.RSP {
		size, _ := unpackStackArg(hc.arg)
		p.MemoryBias = uint64(size)
	}
}

func handlePusha(hc *handlerContext, p *PatchSet) {
	size := int(hc.arg)
	sp, _ := hc.in.StackPointer()
	for i := 0; i < 8; i++ {
		p.AddMemory(stackSlot(hc.in, sp, -int64(size*(i+1)), size, AccessWrite))
	}
	for i := 0; i < 8; i++ {
		if reg := x86.GPR(i, size); reg.FullRegister() != x86.RSP {
			p.AddRegister(reg, AccessRead)
		}
	}
	addSegment(hc.in, p, x86.SS, AccessRead)
	p.AddRegister(sp, AccessReadWrite)
}

// popaOrder is the register number written by each popped slot; the stack
// pointer slot is read and discarded.
var popaOrder = [8]int{7, 6, 5, -1, 3, 2, 1, 0}

func handlePopa(hc *handlerContext, p *PatchSet) {
	size := int(hc.arg)
	sp, _ := hc.in.StackPointer()
	for i := 0; i < 8; i++ {
		p.AddMemory(stackSlot(hc.in, sp, int64(size*i), size, AccessRead))
	}
	for _, n := range popaOrder {
		if n >= 0 {
			p.AddRegister(x86.GPR(n, size), AccessWrite)
		}
	}
	addSegment(hc.in, p, x86.SS, AccessRead)
	p.AddRegister(sp, AccessReadWrite)
}

// handleEnter pushes the frame pointer, copies level-1 frame pointers from
// the old frame and pushes the new frame pointer when level > 0.
func handleEnter(hc *handlerContext, p *PatchSet) {
	in := hc.in
	size := int(hc.arg)
	sp, spSize := in.StackPointer()
	bp := x86.GPR(5, spSize)
	level := int(in.Immediate8_2nd() & 0x1F)

	p.AddMemory(stackSlot(in, sp, -int64(size), size, AccessWrite))
	for i := 1; i < level; i++ {
		p.AddMemory(stackSlot(in, bp, -int64(size*i), size, AccessRead))
		p.AddMemory(stackSlot(in, sp, -int64(size*(i+1)), size, AccessWrite))
	}
	if level > 0 {
		p.AddMemory(stackSlot(in, sp, -int64(size*(level+1)), size, AccessWrite))
	}
	addSegment(in, p, x86.SS, AccessRead)
	p.AddRegister(sp, AccessReadWrite)
	p.AddRegister(bp, AccessReadWrite)
}

// handleLeave copies the frame pointer to the stack pointer and pops the
// frame pointer.
func handleLeave(hc *handlerContext, p *PatchSet) {
	in := hc.in
	size := int(hc.arg)
	sp, spSize := in.StackPointer()
	bp := x86.GPR(5, spSize)
	p.AddMemory(stackSlot(in, bp, 0, size, AccessRead))
	addSegment(in, p, x86.SS, AccessRead)
	p.AddRegister(bp, AccessReadWrite)
	p.AddRegister(sp, AccessWrite)
}

// handleIret pops ip, cs and flags, plus sp and ss in 64-bit code.
func handleIret(hc *handlerContext, p *PatchSet) {
	count := 3
	if hc.in.CodeSize().Is64() {
		count = 5
	}
	hc.arg = stackArg(int(hc.arg), count)
	handlePop(hc, p)
}

// stringMemory returns the segment, pointer register and address size of a
// string memory operand kind.
func stringMemory(in *x86.Instruction, kind x86.OpKind) (seg, ptr x86.Register, addrSize int) {
	addrSize = kind.StringAddressSize()
	switch kind {
	case x86.OpKindMemorySegSI, x86.OpKindMemorySegESI, x86.OpKindMemorySegRSI:
		return overrideSegment(in, x86.DS), x86.GPR(6, addrSize), addrSize
	case x86.OpKindMemorySegDI, x86.OpKindMemorySegEDI, x86.OpKindMemorySegRDI:
		return overrideSegment(in, x86.DS), x86.GPR(7, addrSize), addrSize
	}
	return x86.ES, x86.GPR(7, addrSize), addrSize
}

// handleString covers stos, lods, movs, cmps, scas, ins and outs. With a rep
// prefix every access is conditional, the memory size is unknown and the
// counter is ReadCondWrite; without one the pointers are ReadWrite.
func handleString(hc *handlerContext, p *PatchSet) {
	in := hc.in
	rep := in.HasAnyRepPrefix()
	addrSize := 0
	for op := 0; op < in.OpCount(); op++ {
		acc := hc.access[op]
		if rep {
			acc = acc.Conditional()
			p.SetAccess(op, acc)
		}
		kind := in.OpKind(op)
		if !kind.IsStringMemory() {
			continue
		}
		p.Suppress(op)
		seg, ptr, asz := stringMemory(in, kind)
		addrSize = asz
		size := in.MemorySize()
		if rep {
			size = x86.MemorySizeUnknown
		}
		p.AddMemory(UsedMemory{Segment: seg, Base: ptr, Scale: 1, MemorySize: size, Access: acc, AddressSize: asz})

		if rep {
			addSegment(in, p, seg, AccessCondRead)
			p.AddRegister(ptr, AccessCondRead)
			p.AddRegister(ptr, AccessCondWrite)
		} else {
			addSegment(in, p, seg, AccessRead)
			p.AddRegister(ptr, AccessReadWrite)
		}
	}
	if rep && addrSize != 0 {
		p.AddRegister(x86.GPR(1, addrSize), AccessReadCondWrite)
	}
}

// handleXlat reads seg:[xBX + AL] and writes AL.
func handleXlat(hc *handlerContext, p *PatchSet) {
	in := hc.in
	base := in.MemoryBase()
	if base == x86.None {
		base = x86.GPR(3, in.CodeSize().AddressSize())
	}
	seg := in.MemorySegment()
	p.Suppress(0)
	p.AddMemory(UsedMemory{
		Segment:     seg,
		Base:        base,
		Index:       x86.AL,
		Scale:       1,
		MemorySize:  x86.MemorySizeUInt8,
		Access:      hc.access[0],
		AddressSize: base.Size(),
	})
	addSegment(in, p, seg, AccessRead)
	p.AddRegister(base, AccessRead)
	p.AddRegister(x86.AL, AccessReadWrite)
}

func handleFixedRegs(hc *handlerContext, p *PatchSet) {
	for _, u := range fixedRegisters[hc.in.Code()] {
		p.AddRegister(u.Register, u.Access)
	}
}

// Shift count masks of shift and rotate by immediate forms.
const (
	shiftMask1F uint8 = iota
	shiftMask3F
	shiftMod9
	shiftMod17
)

// shiftArg packs the count operand index and mask kind.
func shiftArg(countOp int, mask uint8) uint8 { return uint8(countOp<<2) | mask }

// handleShiftImm leaves the flags untouched when the masked count is zero.
func handleShiftImm(hc *handlerContext, p *PatchSet) {
	in := hc.in
	op := int(hc.arg >> 2)
	if op >= in.OpCount() || in.OpKind(op) != x86.OpKindImmediate8 {
		return
	}
	count := in.Immediate8()
	switch hc.arg & 3 {
	case shiftMask1F:
		count &= 0x1F
	case shiftMask3F:
		count &= 0x3F
	case shiftMod9:
		count = (count & 0x1F) % 9
	case shiftMod17:
		count = (count & 0x1F) % 17
	}
	if count == 0 {
		p.SetRflags(RflagsInfoNone)
	}
}

// handleClearReg recognizes op r,r forms that clear the register without
// depending on its value. The argument is the resulting RflagsInfo.
func handleClearReg(hc *handlerContext, p *PatchSet) {
	in := hc.in
	if in.Op0Kind() != x86.OpKindRegister || in.Op1Kind() != x86.OpKindRegister {
		return
	}
	if in.Op0Register() != in.Op1Register() {
		return
	}
	p.SetAccess(0, AccessWrite)
	p.SetAccess(1, AccessNone)
	p.SetRflags(RflagsInfo(hc.arg))
}

// handleClearVec3 recognizes vpxor-like dst, src, src forms. A merge masked
// form still reads the destination and is left alone.
func handleClearVec3(hc *handlerContext, p *PatchSet) {
	in := hc.in
	if in.MergingMasking() || in.Op1Kind() != x86.OpKindRegister || in.Op2Kind() != x86.OpKindRegister {
		return
	}
	if in.Op1Register() != in.Op2Register() {
		return
	}
	p.SetAccess(0, AccessWrite)
	p.SetAccess(1, AccessNone)
	p.SetAccess(2, AccessNone)
}

// handleXstore stores random bytes at ES:[xDI], rep repeating xCX times.
func handleXstore(hc *handlerContext, p *PatchSet) {
	in := hc.in
	asz := int(hc.arg)
	di := x86.GPR(7, asz)
	if in.HasRepPrefix() {
		p.AddMemory(pointerMemory(x86.ES, di, x86.MemorySizeUnknown, AccessCondWrite))
		addSegment(in, p, x86.ES, AccessCondRead)
		p.AddRegister(di, AccessReadCondWrite)
		p.AddRegister(x86.GPR(1, asz), AccessReadCondWrite)
	} else {
		p.AddMemory(pointerMemory(x86.ES, di, x86.MemorySizeUnknown, AccessWrite))
		addSegment(in, p, x86.ES, AccessRead)
		p.AddRegister(di, AccessReadWrite)
	}
	p.AddRegister(x86.EDX, AccessRead)
	p.AddRegister(x86.EAX, AccessWrite)
}

// xcryptArg packs the address size and whether the mode chains an IV.
func xcryptArg(addrSize int, iv bool) uint8 {
	if iv {
		return uint8(addrSize) | 0x10
	}
	return uint8(addrSize)
}

// handleXcrypt covers rep xcrypt{ecb,cbc,ctr,cfb,ofb}: xCX blocks from
// ES:[xSI] to ES:[xDI] with the key at [xBX], control word at [xDX] and IV
// at [xAX].
func handleXcrypt(hc *handlerContext, p *PatchSet) {
	in := hc.in
	asz := int(hc.arg & 0xF)
	iv := hc.arg&0x10 != 0
	ax, cx, dx, bx := x86.GPR(0, asz), x86.GPR(1, asz), x86.GPR(2, asz), x86.GPR(3, asz)
	si, di := x86.GPR(6, asz), x86.GPR(7, asz)

	p.AddMemory(pointerMemory(x86.ES, si, x86.MemorySizeUnknown, AccessCondRead))
	p.AddMemory(pointerMemory(x86.ES, di, x86.MemorySizeUnknown, AccessCondWrite))
	p.AddMemory(pointerMemory(x86.ES, bx, x86.MemorySizeUnknown, AccessRead))
	p.AddMemory(pointerMemory(x86.ES, dx, x86.MemorySizeUInt128, AccessRead))
	if iv {
		p.AddMemory(pointerMemory(x86.ES, ax, x86.MemorySizeUInt128, AccessReadCondWrite))
	}
	addSegment(in, p, x86.ES, AccessRead)
	p.AddRegister(cx, AccessReadCondWrite)
	p.AddRegister(si, AccessReadCondWrite)
	p.AddRegister(di, AccessReadCondWrite)
	p.AddRegister(bx, AccessRead)
	p.AddRegister(dx, AccessRead)
	if iv {
		p.AddRegister(ax, AccessReadCondWrite)
	}
}

// handleXsha hashes xCX bytes at ES:[xSI] into the state at ES:[xDI].
func handleXsha(hc *handlerContext, p *PatchSet) {
	in := hc.in
	asz := int(hc.arg)
	ax, cx := x86.GPR(0, asz), x86.GPR(1, asz)
	si, di := x86.GPR(6, asz), x86.GPR(7, asz)
	p.AddMemory(pointerMemory(x86.ES, si, x86.MemorySizeUnknown, AccessCondRead))
	p.AddMemory(pointerMemory(x86.ES, di, x86.MemorySizeUnknown, AccessReadWrite))
	addSegment(in, p, x86.ES, AccessRead)
	p.AddRegister(cx, AccessReadCondWrite)
	p.AddRegister(si, AccessReadCondWrite)
	p.AddRegister(di, AccessRead)
	p.AddRegister(ax, AccessReadCondWrite)
}

// handleMontmul multiplies the operands at ES:[xSI] in place.
func handleMontmul(hc *handlerContext, p *PatchSet) {
	in := hc.in
	asz := int(hc.arg)
	si := x86.GPR(6, asz)
	p.AddMemory(pointerMemory(x86.ES, si, x86.MemorySizeUnknown, AccessReadWrite))
	addSegment(in, p, x86.ES, AccessRead)
	p.AddRegister(si, AccessRead)
	p.AddRegister(x86.GPR(1, asz), AccessReadWrite)
	p.AddRegister(x86.EAX, AccessWrite)
	p.AddRegister(x86.EDX, AccessWrite)
}

// handleLlwpcb reads the lightweight profiling control block at DS:[reg].
func handleLlwpcb(hc *handlerContext, p *PatchSet) {
	in := hc.in
	reg := in.Op0Register()
	p.AddMemory(pointerMemory(x86.DS, reg, x86.MemorySizeUnknown, AccessRead))
	addSegment(in, p, x86.DS, AccessRead)
}

// handleSvm covers vmload, vmsave and vmrun: xAX holds a physical address.
func handleSvm(hc *handlerContext, p *PatchSet) {
	p.AddRegister(x86.GPR(0, int(hc.arg)), AccessRead)
}

// handleMonitor covers monitor and monitorx: arm seg:[xAX] with extensions
// in ECX and hints in EDX.
func handleMonitor(hc *handlerContext, p *PatchSet) {
	in := hc.in
	ax := x86.GPR(0, int(hc.arg))
	seg := overrideSegment(in, x86.DS)
	p.AddMemory(pointerMemory(seg, ax, x86.MemorySizeUnknown, AccessRead))
	addSegment(in, p, seg, AccessRead)
	p.AddRegister(ax, AccessRead)
	p.AddRegister(x86.ECX, AccessRead)
	p.AddRegister(x86.EDX, AccessRead)
}

// handleEncls covers encls and pconfig: the leaf in EAX returns a status,
// leaf operands in xBX, xCX and xDX are read per leaf.
func handleEncls(hc *handlerContext, p *PatchSet) {
	size := 4
	if hc.in.CodeSize().Is64() {
		size = 8
	}
	p.AddRegister(x86.EAX, AccessReadCondWrite)
	p.AddRegister(x86.GPR(3, size), AccessCondRead)
	p.AddRegister(x86.GPR(1, size), AccessCondRead)
	p.AddRegister(x86.GPR(2, size), AccessCondRead)
}

// handleSyscall saves the return address in xCX, and rflags in R11 in 64-bit
// code.
func handleSyscall(hc *handlerContext, p *PatchSet) {
	if hc.in.CodeSize().Is64() {
		p.AddRegister(x86.RCX, AccessWrite)
		p.AddRegister(x86.R11, AccessWrite)
		return
	}
	p.AddRegister(x86.ECX, AccessWrite)
}

func handleSysenter(hc *handlerContext, p *PatchSet) {
	sp, _ := hc.in.StackPointer()
	p.AddRegister(sp, AccessWrite)
}

// handleClzero zeroes the cache line at seg:[xAX].
func handleClzero(hc *handlerContext, p *PatchSet) {
	in := hc.in
	ax := x86.GPR(0, int(hc.arg))
	seg := overrideSegment(in, x86.DS)
	p.AddMemory(pointerMemory(seg, ax, x86.MemorySizeUInt512, AccessWrite))
	addSegment(in, p, seg, AccessRead)
	p.AddRegister(ax, AccessRead)
}

func handleInvlpga(hc *handlerContext, p *PatchSet) {
	p.AddRegister(x86.GPR(0, int(hc.arg)), AccessRead)
	p.AddRegister(x86.ECX, AccessRead)
}

// handleMovdir64b writes 64 bytes at ES:[reg], reg being operand 0.
func handleMovdir64b(hc *handlerContext, p *PatchSet) {
	in := hc.in
	reg := in.Op0Register()
	p.AddMemory(pointerMemory(x86.ES, reg, x86.MemorySizeUInt512, AccessWrite))
	addSegment(in, p, x86.ES, AccessRead)
}

// handleUmonitor arms seg:[reg], reg being operand 0.
func handleUmonitor(hc *handlerContext, p *PatchSet) {
	in := hc.in
	reg := in.Op0Register()
	seg := overrideSegment(in, x86.DS)
	p.AddMemory(pointerMemory(seg, reg, x86.MemorySizeUnknown, AccessRead))
	addSegment(in, p, seg, AccessRead)
}

func regs(pairs ...UsedRegister) []UsedRegister { return pairs }

func r(reg x86.Register, access OpAccess) UsedRegister {
	return UsedRegister{Register: reg, Access: access}
}

// fixedRegisters lists the implicit registers of codes using
// HandlerFixedRegs, in ISA operand order.
var fixedRegisters = map[x86.Code][]UsedRegister{
	x86.MUL_RM8:   regs(r(x86.AL, AccessRead), r(x86.AX, AccessWrite)),
	x86.MUL_RM16:  regs(r(x86.AX, AccessReadWrite), r(x86.DX, AccessWrite)),
	x86.MUL_RM32:  regs(r(x86.EAX, AccessReadWrite), r(x86.EDX, AccessWrite)),
	x86.MUL_RM64:  regs(r(x86.RAX, AccessReadWrite), r(x86.RDX, AccessWrite)),
	x86.IMUL_RM8:  regs(r(x86.AL, AccessRead), r(x86.AX, AccessWrite)),
	x86.IMUL_RM32: regs(r(x86.EAX, AccessReadWrite), r(x86.EDX, AccessWrite)),
	x86.IMUL_RM64: regs(r(x86.RAX, AccessReadWrite), r(x86.RDX, AccessWrite)),
	x86.DIV_RM8:   regs(r(x86.AX, AccessReadWrite)),
	x86.DIV_RM16:  regs(r(x86.AX, AccessReadWrite), r(x86.DX, AccessReadWrite)),
	x86.DIV_RM32:  regs(r(x86.EAX, AccessReadWrite), r(x86.EDX, AccessReadWrite)),
	x86.DIV_RM64:  regs(r(x86.RAX, AccessReadWrite), r(x86.RDX, AccessReadWrite)),
	x86.IDIV_RM8:  regs(r(x86.AX, AccessReadWrite)),
	x86.IDIV_RM32: regs(r(x86.EAX, AccessReadWrite), r(x86.EDX, AccessReadWrite)),
	x86.IDIV_RM64: regs(r(x86.RAX, AccessReadWrite), r(x86.RDX, AccessReadWrite)),

	x86.MULX_R32_R32_RM32: regs(r(x86.EDX, AccessRead)),
	x86.MULX_R64_R64_RM64: regs(r(x86.RDX, AccessRead)),

	x86.CBW:  regs(r(x86.AL, AccessRead), r(x86.AX, AccessWrite)),
	x86.CWDE: regs(r(x86.AX, AccessRead), r(x86.EAX, AccessWrite)),
	x86.CDQE: regs(r(x86.EAX, AccessRead), r(x86.RAX, AccessWrite)),
	x86.CWD:  regs(r(x86.AX, AccessRead), r(x86.DX, AccessWrite)),
	x86.CDQ:  regs(r(x86.EAX, AccessRead), r(x86.EDX, AccessWrite)),
	x86.CQO:  regs(r(x86.RAX, AccessRead), r(x86.RDX, AccessWrite)),

	x86.CMPXCHG_RM8_R8:   regs(r(x86.AL, AccessReadCondWrite)),
	x86.CMPXCHG_RM16_R16: regs(r(x86.AX, AccessReadCondWrite)),
	x86.CMPXCHG_RM32_R32: regs(r(x86.EAX, AccessReadCondWrite)),
	x86.CMPXCHG_RM64_R64: regs(r(x86.RAX, AccessReadCondWrite)),
	x86.CMPXCHG8B_M64: regs(r(x86.EDX, AccessReadCondWrite), r(x86.EAX, AccessReadCondWrite),
		r(x86.ECX, AccessCondRead), r(x86.EBX, AccessCondRead)),
	x86.CMPXCHG16B_M128: regs(r(x86.RDX, AccessReadCondWrite), r(x86.RAX, AccessReadCondWrite),
		r(x86.RCX, AccessCondRead), r(x86.RBX, AccessCondRead)),

	x86.CPUID:  regs(r(x86.EAX, AccessReadWrite), r(x86.ECX, AccessReadWrite), r(x86.EDX, AccessWrite), r(x86.EBX, AccessWrite)),
	x86.RDTSC:  regs(r(x86.EAX, AccessWrite), r(x86.EDX, AccessWrite)),
	x86.RDTSCP: regs(r(x86.EAX, AccessWrite), r(x86.EDX, AccessWrite), r(x86.ECX, AccessWrite)),
	x86.XGETBV: regs(r(x86.ECX, AccessRead), r(x86.EDX, AccessWrite), r(x86.EAX, AccessWrite)),
	x86.XSETBV: regs(r(x86.ECX, AccessRead), r(x86.EDX, AccessRead), r(x86.EAX, AccessRead)),
	x86.RDMSR:  regs(r(x86.ECX, AccessRead), r(x86.EDX, AccessWrite), r(x86.EAX, AccessWrite)),
	x86.WRMSR:  regs(r(x86.ECX, AccessRead), r(x86.EDX, AccessRead), r(x86.EAX, AccessRead)),
	x86.LAHF:   regs(r(x86.AH, AccessWrite)),
	x86.SAHF:   regs(r(x86.AH, AccessRead)),
	x86.MWAIT:  regs(r(x86.EAX, AccessRead), r(x86.ECX, AccessRead)),
	x86.MWAITX: regs(r(x86.EAX, AccessRead), r(x86.ECX, AccessRead), r(x86.EBX, AccessCondRead)),
	x86.VMFUNC: regs(r(x86.EAX, AccessRead), r(x86.ECX, AccessRead)),

	x86.JCXZ_REL8_16:      regs(r(x86.CX, AccessRead)),
	x86.JECXZ_REL8_32:     regs(r(x86.ECX, AccessRead)),
	x86.JECXZ_REL8_64:     regs(r(x86.ECX, AccessRead)),
	x86.JRCXZ_REL8_64:     regs(r(x86.RCX, AccessRead)),
	x86.LOOP_REL8_16_CX:   regs(r(x86.CX, AccessReadWrite)),
	x86.LOOP_REL8_32_ECX:  regs(r(x86.ECX, AccessReadWrite)),
	x86.LOOP_REL8_64_RCX:  regs(r(x86.RCX, AccessReadWrite)),
	x86.LOOPE_REL8_64_RCX: regs(r(x86.RCX, AccessReadWrite)),

	x86.SYSEXITD: regs(r(x86.ECX, AccessRead), r(x86.EDX, AccessRead), r(x86.ESP, AccessWrite)),
	x86.SYSEXITQ: regs(r(x86.RCX, AccessRead), r(x86.RDX, AccessRead), r(x86.RSP, AccessWrite)),
	x86.SYSRETD:  regs(r(x86.ECX, AccessRead)),
	x86.SYSRETQ:  regs(r(x86.RCX, AccessRead), r(x86.R11, AccessRead)),
}
