// Package x86 models a single decoded or hand-built x86/x64 instruction.
package x86

import "fmt"

// Register is an architectural register. The zero value is None.
type Register uint8

const (
	None Register = iota

	// 8-bit
	AL
	CL
	DL
	BL
	AH
	CH
	DH
	BH
	SPL
	BPL
	SIL
	DIL
	R8L
	R9L
	R10L
	R11L
	R12L
	R13L
	R14L
	R15L

	// 16-bit
	AX
	CX
	DX
	BX
	SP
	BP
	SI
	DI
	R8W
	R9W
	R10W
	R11W
	R12W
	R13W
	R14W
	R15W

	// 32-bit
	EAX
	ECX
	EDX
	EBX
	ESP
	EBP
	ESI
	EDI
	R8D
	R9D
	R10D
	R11D
	R12D
	R13D
	R14D
	R15D

	// 64-bit
	RAX
	RCX
	RDX
	RBX
	RSP
	RBP
	RSI
	RDI
	R8
	R9
	R10
	R11
	R12
	R13
	R14
	R15

	EIP
	RIP

	ES
	CS
	SS
	DS
	FS
	GS

	ST0
	ST1
	ST2
	ST3
	ST4
	ST5
	ST6
	ST7

	MM0
	MM1
	MM2
	MM3
	MM4
	MM5
	MM6
	MM7

	XMM0
	XMM1
	XMM2
	XMM3
	XMM4
	XMM5
	XMM6
	XMM7
	XMM8
	XMM9
	XMM10
	XMM11
	XMM12
	XMM13
	XMM14
	XMM15
	XMM16
	XMM17
	XMM18
	XMM19
	XMM20
	XMM21
	XMM22
	XMM23
	XMM24
	XMM25
	XMM26
	XMM27
	XMM28
	XMM29
	XMM30
	XMM31

	YMM0
	YMM1
	YMM2
	YMM3
	YMM4
	YMM5
	YMM6
	YMM7
	YMM8
	YMM9
	YMM10
	YMM11
	YMM12
	YMM13
	YMM14
	YMM15
	YMM16
	YMM17
	YMM18
	YMM19
	YMM20
	YMM21
	YMM22
	YMM23
	YMM24
	YMM25
	YMM26
	YMM27
	YMM28
	YMM29
	YMM30
	YMM31

	ZMM0
	ZMM1
	ZMM2
	ZMM3
	ZMM4
	ZMM5
	ZMM6
	ZMM7
	ZMM8
	ZMM9
	ZMM10
	ZMM11
	ZMM12
	ZMM13
	ZMM14
	ZMM15
	ZMM16
	ZMM17
	ZMM18
	ZMM19
	ZMM20
	ZMM21
	ZMM22
	ZMM23
	ZMM24
	ZMM25
	ZMM26
	ZMM27
	ZMM28
	ZMM29
	ZMM30
	ZMM31

	K0
	K1
	K2
	K3
	K4
	K5
	K6
	K7

	RegisterCount int = iota
)

const vmmCount = 32

var registerNames = [...]string{
	"none",
	"al", "cl", "dl", "bl", "ah", "ch", "dh", "bh", "spl", "bpl", "sil", "dil",
	"r8l", "r9l", "r10l", "r11l", "r12l", "r13l", "r14l", "r15l",
	"ax", "cx", "dx", "bx", "sp", "bp", "si", "di",
	"r8w", "r9w", "r10w", "r11w", "r12w", "r13w", "r14w", "r15w",
	"eax", "ecx", "edx", "ebx", "esp", "ebp", "esi", "edi",
	"r8d", "r9d", "r10d", "r11d", "r12d", "r13d", "r14d", "r15d",
	"rax", "rcx", "rdx", "rbx", "rsp", "rbp", "rsi", "rdi",
	"r8", "r9", "r10", "r11", "r12", "r13", "r14", "r15",
	"eip", "rip",
	"es", "cs", "ss", "ds", "fs", "gs",
	"st0", "st1", "st2", "st3", "st4", "st5", "st6", "st7",
	"mm0", "mm1", "mm2", "mm3", "mm4", "mm5", "mm6", "mm7",
}

func (r Register) String() string {
	switch {
	case int(r) < len(registerNames):
		return registerNames[r]
	case r.IsXMM():
		return fmt.Sprintf("xmm%d", r-XMM0)
	case r.IsYMM():
		return fmt.Sprintf("ymm%d", r-YMM0)
	case r.IsZMM():
		return fmt.Sprintf("zmm%d", r-ZMM0)
	case r.IsK():
		return fmt.Sprintf("k%d", r-K0)
	}
	return fmt.Sprintf("Register(%d)", uint8(r))
}

// IsValid reports whether r is None or a member of the enumeration.
func (r Register) IsValid() bool { return int(r) < RegisterCount }

func (r Register) IsGPR8() bool  { return AL <= r && r <= R15L }
func (r Register) IsGPR16() bool { return AX <= r && r <= R15W }
func (r Register) IsGPR32() bool { return EAX <= r && r <= R15D }
func (r Register) IsGPR64() bool { return RAX <= r && r <= R15 }
func (r Register) IsGPR() bool   { return AL <= r && r <= R15 }

func (r Register) IsIP() bool        { return r == EIP || r == RIP }
func (r Register) IsSegment() bool   { return ES <= r && r <= GS }
func (r Register) IsST() bool        { return ST0 <= r && r <= ST7 }
func (r Register) IsMM() bool        { return MM0 <= r && r <= MM7 }
func (r Register) IsXMM() bool       { return XMM0 <= r && r <= XMM31 }
func (r Register) IsYMM() bool       { return YMM0 <= r && r <= YMM31 }
func (r Register) IsZMM() bool       { return ZMM0 <= r && r <= ZMM31 }
func (r Register) IsVectorReg() bool { return XMM0 <= r && r <= ZMM31 }
func (r Register) IsK() bool         { return K0 <= r && r <= K7 }

// Number returns the register's index within its family. AH..BH return 4..7,
// matching their ModRM encoding.
func (r Register) Number() int {
	switch {
	case r.IsGPR8():
		if r >= AH && r <= BH {
			return int(r-AH) + 4
		}
		return int(r.FullRegister() - RAX)
	case r.IsGPR16():
		return int(r - AX)
	case r.IsGPR32():
		return int(r - EAX)
	case r.IsGPR64():
		return int(r - RAX)
	case r.IsSegment():
		return int(r - ES)
	case r.IsST():
		return int(r - ST0)
	case r.IsMM():
		return int(r - MM0)
	case r.IsVectorReg():
		return int(r-XMM0) % vmmCount
	case r.IsK():
		return int(r - K0)
	}
	return 0
}

// Size returns the register width in bytes, 0 for None.
func (r Register) Size() int {
	switch {
	case r.IsGPR8():
		return 1
	case r.IsGPR16(), r.IsSegment():
		return 2
	case r.IsGPR32(), r == EIP:
		return 4
	case r.IsGPR64(), r == RIP, r.IsMM(), r.IsK():
		return 8
	case r.IsST():
		return 10
	case r.IsXMM():
		return 16
	case r.IsYMM():
		return 32
	case r.IsZMM():
		return 64
	}
	return 0
}

// FullRegister returns the widest register aliasing r: RAX for AL/AH/AX/EAX,
// ZMMn for XMMn/YMMn, RIP for EIP. Other registers are returned unchanged.
func (r Register) FullRegister() Register {
	switch {
	case r.IsGPR8():
		if r >= AH && r <= BH {
			return RAX + (r - AH)
		}
		if r >= SPL {
			return RSP + (r - SPL)
		}
		return RAX + (r - AL)
	case r.IsGPR16():
		return RAX + (r - AX)
	case r.IsGPR32():
		return RAX + (r - EAX)
	case r == EIP:
		return RIP
	case r.IsVectorReg():
		return ZMM0 + Register(r.Number())
	}
	return r
}

// FullRegister32 is like FullRegister but maps general purpose registers to
// their 32-bit alias.
func (r Register) FullRegister32() Register {
	full := r.FullRegister()
	if full.IsGPR64() {
		return EAX + (full - RAX)
	}
	if full == RIP {
		return EIP
	}
	return full
}

// GPR returns the general purpose register with the given number (0..15) and
// width in bytes (1, 2, 4 or 8). Byte registers 4..7 are SPL..DIL.
func GPR(number, size int) Register {
	if number < 0 || number > 15 {
		return None
	}
	switch size {
	case 1:
		if number < 4 {
			return AL + Register(number)
		}
		return SPL + Register(number-4)
	case 2:
		return AX + Register(number)
	case 4:
		return EAX + Register(number)
	case 8:
		return RAX + Register(number)
	}
	return None
}

func (r Register) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

var registersByName map[string]Register

func init() {
	registersByName = make(map[string]Register, RegisterCount)
	for r := Register(0); int(r) < RegisterCount; r++ {
		registersByName[r.String()] = r
	}
}

// RegisterByName looks up a register by its lower case name.
func RegisterByName(name string) (Register, bool) {
	r, ok := registersByName[name]
	return r, ok
}
