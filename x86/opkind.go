package x86

import "fmt"

// OpKind is the kind of an instruction operand.
type OpKind uint8

const (
	OpKindRegister OpKind = iota
	OpKindNearBranch16
	OpKindNearBranch32
	OpKindNearBranch64
	OpKindFarBranch16
	OpKindFarBranch32
	OpKindImmediate8
	OpKindImmediate8_2nd
	OpKindImmediate16
	OpKindImmediate32
	OpKindImmediate64
	OpKindImmediate8to16
	OpKindImmediate8to32
	OpKindImmediate8to64
	OpKindImmediate32to64
	OpKindMemorySegSI
	OpKindMemorySegESI
	OpKindMemorySegRSI
	OpKindMemorySegDI
	OpKindMemorySegEDI
	OpKindMemorySegRDI
	OpKindMemoryESDI
	OpKindMemoryESEDI
	OpKindMemoryESRDI
	OpKindMemory64
	OpKindMemory

	opKindCount
)

var opKindNames = [opKindCount]string{
	"Register",
	"NearBranch16", "NearBranch32", "NearBranch64",
	"FarBranch16", "FarBranch32",
	"Immediate8", "Immediate8_2nd", "Immediate16", "Immediate32", "Immediate64",
	"Immediate8to16", "Immediate8to32", "Immediate8to64", "Immediate32to64",
	"MemorySegSI", "MemorySegESI", "MemorySegRSI",
	"MemorySegDI", "MemorySegEDI", "MemorySegRDI",
	"MemoryESDI", "MemoryESEDI", "MemoryESRDI",
	"Memory64", "Memory",
}

func (k OpKind) String() string {
	if k < opKindCount {
		return opKindNames[k]
	}
	return fmt.Sprintf("OpKind(%d)", uint8(k))
}

func (k OpKind) IsValid() bool { return k < opKindCount }

func (k OpKind) IsImmediate() bool {
	return OpKindImmediate8 <= k && k <= OpKindImmediate32to64
}

func (k OpKind) IsNearBranch() bool {
	return OpKindNearBranch16 <= k && k <= OpKindNearBranch64
}

func (k OpKind) IsFarBranch() bool {
	return k == OpKindFarBranch16 || k == OpKindFarBranch32
}

// IsStringMemory reports whether k is one of the implicit seg:[xSI]/[xDI]
// memory operands used by string and mask-move instructions.
func (k OpKind) IsStringMemory() bool {
	return OpKindMemorySegSI <= k && k <= OpKindMemoryESRDI
}

func (k OpKind) IsMemory() bool {
	return k == OpKindMemory || k == OpKindMemory64 || k.IsStringMemory()
}

// StringAddressSize returns the address size in bytes encoded by a string
// memory operand kind, 0 for other kinds.
func (k OpKind) StringAddressSize() int {
	switch k {
	case OpKindMemorySegSI, OpKindMemorySegDI, OpKindMemoryESDI:
		return 2
	case OpKindMemorySegESI, OpKindMemorySegEDI, OpKindMemoryESEDI:
		return 4
	case OpKindMemorySegRSI, OpKindMemorySegRDI, OpKindMemoryESRDI:
		return 8
	}
	return 0
}

// CodeSize is the bitness of the code an instruction was decoded in.
type CodeSize uint8

const (
	CodeSizeUnknown CodeSize = iota
	CodeSize16
	CodeSize32
	CodeSize64
)

func (c CodeSize) String() string {
	switch c {
	case CodeSize16:
		return "16"
	case CodeSize32:
		return "32"
	case CodeSize64:
		return "64"
	}
	return "unknown"
}

// Is64 reports whether 64-bit semantics apply. Unknown is treated as 64-bit.
func (c CodeSize) Is64() bool { return c == CodeSize64 || c == CodeSizeUnknown }

// CodeSizeFromBitness maps 16/32/64 to a CodeSize, anything else to Unknown.
func CodeSizeFromBitness(bitness int) CodeSize {
	switch bitness {
	case 16:
		return CodeSize16
	case 32:
		return CodeSize32
	case 64:
		return CodeSize64
	}
	return CodeSizeUnknown
}

// RoundingControl is the EVEX static rounding mode.
type RoundingControl uint8

const (
	RoundingNone RoundingControl = iota
	RoundToNearest
	RoundDown
	RoundUp
	RoundTowardZero
)

func (rc RoundingControl) String() string {
	switch rc {
	case RoundToNearest:
		return "rn-sae"
	case RoundDown:
		return "rd-sae"
	case RoundUp:
		return "ru-sae"
	case RoundTowardZero:
		return "rz-sae"
	}
	return "none"
}

// AddressSize returns the default address size in bytes. Unknown is 64-bit.
func (c CodeSize) AddressSize() int {
	switch c {
	case CodeSize16:
		return 2
	case CodeSize32:
		return 4
	}
	return 8
}

func (k OpKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }
