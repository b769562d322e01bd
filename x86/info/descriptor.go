package info

import "github.com/colorfulnotion/x86info/x86"

// Per-operand access classes stored in a descriptor. Operand 0 has the
// richest set; the resolver turns each into an OpAccess once the operand
// kind and instruction context are known.
type (
	OpInfo0 uint8
	OpInfo1 uint8
	OpInfo2 uint8
	OpInfo3 uint8
	OpInfo4 uint8
)

const (
	Op0None OpInfo0 = iota
	Op0Read
	Op0Write
	Op0CondWrite
	Op0CondWrite32_ReadWrite64
	Op0ReadWrite
	Op0ReadCondWrite
	Op0NoMemAccess
	Op0WriteMem_ReadWriteReg
	Op0WriteForce

	op0InfoCount
)

const (
	Op1None OpInfo1 = iota
	Op1Read
	Op1CondRead
	Op1Write
	Op1CondWrite
	Op1ReadWrite
	Op1NoMemAccess
	// Op1ReadP3 reads a register and the next three registers of its
	// group of four.
	Op1ReadP3

	op1InfoCount
)

const (
	Op2None OpInfo2 = iota
	Op2Read
	Op2Write
	Op2ReadWrite

	op2InfoCount
)

const (
	Op3None OpInfo3 = iota
	Op3Read
)

const (
	Op4None OpInfo4 = iota
	Op4Read
)

// VsibClass is the element size of a VSIB index vector.
type VsibClass uint8

const (
	VsibNone VsibClass = iota
	Vsib32
	Vsib64
)

// Size returns the index element size in bytes, 0 for VsibNone.
func (v VsibClass) Size() int {
	switch v {
	case Vsib32:
		return 4
	case Vsib64:
		return 8
	}
	return 0
}

// Word A layout.
const (
	op0Shift      = 0
	op0Mask       = 0xF
	op1Shift      = 4
	op1Mask       = 0x7
	op2Shift      = 7
	op2Mask       = 0x3
	op3Shift      = 9
	op3Mask       = 0x1
	op4Shift      = 10
	op4Mask       = 0x1
	rflagsShift   = 11
	rflagsMask    = 0x3F
	flowShift     = 17
	flowMask      = 0xF
	encodingShift = 21
	encodingMask  = 0x7
	cpuidShift    = 24
	cpuidMask     = 0xFF
)

// Word B layout.
const (
	handlerShift  = 0
	handlerMask   = 0xFF
	opmaskRWShift = 8
	vsibShift     = 9
	vsibMask      = 0x3
	argShift      = 11
	argMask       = 0xFF
)

// Descriptor is the packed per-code table entry: word A holds operand access
// classes and scalar facts, word B the special-case handler and its flags.
type Descriptor struct {
	A uint32
	B uint32
}

func (d Descriptor) Op0() OpInfo0               { return OpInfo0(d.A >> op0Shift & op0Mask) }
func (d Descriptor) Op1() OpInfo1               { return OpInfo1(d.A >> op1Shift & op1Mask) }
func (d Descriptor) Op2() OpInfo2               { return OpInfo2(d.A >> op2Shift & op2Mask) }
func (d Descriptor) Op3() OpInfo3               { return OpInfo3(d.A >> op3Shift & op3Mask) }
func (d Descriptor) Op4() OpInfo4               { return OpInfo4(d.A >> op4Shift & op4Mask) }
func (d Descriptor) Rflags() RflagsInfo         { return RflagsInfo(d.A >> rflagsShift & rflagsMask) }
func (d Descriptor) FlowControl() FlowControl   { return FlowControl(d.A >> flowShift & flowMask) }
func (d Descriptor) Encoding() EncodingKind     { return EncodingKind(d.A >> encodingShift & encodingMask) }
func (d Descriptor) CpuidFeature() CpuidFeature { return CpuidFeature(d.A >> cpuidShift & cpuidMask) }
func (d Descriptor) Handler() HandlerID         { return HandlerID(d.B >> handlerShift & handlerMask) }
func (d Descriptor) OpmaskReadWrite() bool      { return d.B>>opmaskRWShift&1 != 0 }
func (d Descriptor) Vsib() VsibClass            { return VsibClass(d.B >> vsibShift & vsibMask) }

// HandlerArg is the handler parameter, for example an operand size.
func (d Descriptor) HandlerArg() uint8 { return uint8(d.B >> argShift & argMask) }

var descriptors [x86.CodeCount]Descriptor

// DescriptorOf returns the table entry for code, the zero Descriptor for an
// invalid code.
func DescriptorOf(code x86.Code) Descriptor {
	if !code.IsValid() {
		return Descriptor{}
	}
	return descriptors[code]
}

// descBuilder provides a fluent interface for defining descriptors
type descBuilder struct {
	code x86.Code
}

// def starts the descriptor of code. Every setter writes through to the
// table, so the chain order does not matter.
func def(code x86.Code) *descBuilder {
	descriptors[code] = Descriptor{}
	return &descBuilder{code: code}
}

func (b *descBuilder) setA(shift, mask uint32, v uint32) *descBuilder {
	d := &descriptors[b.code]
	d.A = d.A&^(mask<<shift) | (v&mask)<<shift
	return b
}

func (b *descBuilder) setB(shift, mask uint32, v uint32) *descBuilder {
	d := &descriptors[b.code]
	d.B = d.B&^(mask<<shift) | (v&mask)<<shift
	return b
}

// Ops sets operand 0 and 1 classes; use Op2/Op3/Op4 for the rest.
func (b *descBuilder) Ops(op0 OpInfo0, op1 OpInfo1) *descBuilder {
	b.setA(op0Shift, op0Mask, uint32(op0))
	return b.setA(op1Shift, op1Mask, uint32(op1))
}

func (b *descBuilder) Op0(op OpInfo0) *descBuilder { return b.setA(op0Shift, op0Mask, uint32(op)) }
func (b *descBuilder) Op2(op OpInfo2) *descBuilder { return b.setA(op2Shift, op2Mask, uint32(op)) }
func (b *descBuilder) Op3(op OpInfo3) *descBuilder { return b.setA(op3Shift, op3Mask, uint32(op)) }
func (b *descBuilder) Op4(op OpInfo4) *descBuilder { return b.setA(op4Shift, op4Mask, uint32(op)) }

func (b *descBuilder) Rflags(r RflagsInfo) *descBuilder {
	return b.setA(rflagsShift, rflagsMask, uint32(r))
}

func (b *descBuilder) Flow(f FlowControl) *descBuilder {
	return b.setA(flowShift, flowMask, uint32(f))
}

func (b *descBuilder) Enc(e EncodingKind) *descBuilder {
	return b.setA(encodingShift, encodingMask, uint32(e))
}

func (b *descBuilder) Cpuid(c CpuidFeature) *descBuilder {
	return b.setA(cpuidShift, cpuidMask, uint32(c))
}

func (b *descBuilder) Handler(h HandlerID, arg uint8) *descBuilder {
	b.setB(handlerShift, handlerMask, uint32(h))
	return b.setB(argShift, argMask, uint32(arg))
}

func (b *descBuilder) OpmaskRW() *descBuilder { return b.setB(opmaskRWShift, 1, 1) }

func (b *descBuilder) Vsib(v VsibClass) *descBuilder { return b.setB(vsibShift, vsibMask, uint32(v)) }
