package info

import (
	"fmt"
	"strings"
)

// OpAccess is how an instruction accesses an operand, register or memory
// location.
type OpAccess uint8

const (
	AccessNone OpAccess = iota
	AccessRead
	AccessCondRead
	AccessWrite
	AccessCondWrite
	AccessReadWrite
	AccessReadCondWrite
	// AccessNoMemAccess means a memory operand is not accessed; only its
	// address registers are read.
	AccessNoMemAccess

	opAccessCount
)

var opAccessNames = [opAccessCount]string{
	"None", "Read", "CondRead", "Write", "CondWrite", "ReadWrite", "ReadCondWrite", "NoMemAccess",
}

func (a OpAccess) String() string {
	if a < opAccessCount {
		return opAccessNames[a]
	}
	return fmt.Sprintf("OpAccess(%d)", uint8(a))
}

func (a OpAccess) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// Reads reports whether the access includes a possible read.
func (a OpAccess) Reads() bool {
	switch a {
	case AccessRead, AccessCondRead, AccessReadWrite, AccessReadCondWrite:
		return true
	}
	return false
}

// Writes reports whether the access includes a possible write.
func (a OpAccess) Writes() bool {
	switch a {
	case AccessWrite, AccessCondWrite, AccessReadWrite, AccessReadCondWrite:
		return true
	}
	return false
}

// Conditional returns the access made when the instruction may not execute
// it at all, as with a rep prefix and a zero count.
func (a OpAccess) Conditional() OpAccess {
	switch a {
	case AccessRead:
		return AccessCondRead
	case AccessWrite:
		return AccessCondWrite
	case AccessReadWrite:
		return AccessReadCondWrite
	}
	return a
}

// RflagsBits is a set of status and control flags.
type RflagsBits uint16

const (
	RflagsOF RflagsBits = 1 << iota
	RflagsSF
	RflagsZF
	RflagsAF
	RflagsCF
	RflagsPF
	RflagsDF
	RflagsIF
	RflagsAC

	RflagsNone RflagsBits = 0
)

var rflagsBitNames = []string{"of", "sf", "zf", "af", "cf", "pf", "df", "if", "ac"}

func (b RflagsBits) String() string {
	if b == 0 {
		return "-"
	}
	var names []string
	for i, n := range rflagsBitNames {
		if b&(1<<i) != 0 {
			names = append(names, n)
		}
	}
	return strings.Join(names, ",")
}

func (b RflagsBits) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

// RflagsInfo classifies the rflags effect of an instruction. The name lists
// flags Read, Written, Cleared, Set and Undefined using the letters
// a(f) c(f) d(f) i(f) o(f) p(f) s(f) z(f).
type RflagsInfo uint8

const (
	RflagsInfoNone RflagsInfo = iota
	RflagsR_c
	RflagsR_z
	RflagsR_d
	RflagsR_c_W_c
	RflagsR_c_W_acopsz
	RflagsR_c_W_c_U_o
	RflagsR_acpsz
	RflagsR_acopszdi
	RflagsR_d_W_acopsz
	RflagsW_acopsz
	RflagsW_aopsz
	RflagsW_acpsz
	RflagsW_cpsz_U_ao
	RflagsW_copsz_U_a
	RflagsW_c_U_o
	RflagsW_co_U_apsz
	RflagsW_z
	RflagsW_psz_C_co_U_a
	RflagsW_acopszdi
	RflagsU_acopsz
	RflagsC_c
	RflagsS_c
	RflagsC_d
	RflagsS_d
	RflagsC_cos_S_pz_U_a
	RflagsC_acos_S_pz

	rflagsInfoCount
)

type rflagsEffect struct {
	name      string
	read      RflagsBits
	undefined RflagsBits
	written   RflagsBits
	cleared   RflagsBits
	set       RflagsBits
}

const (
	flagsACOPSZ = RflagsAF | RflagsCF | RflagsOF | RflagsPF | RflagsSF | RflagsZF
	flagsAll    = flagsACOPSZ | RflagsDF | RflagsIF | RflagsAC
)

var rflagsEffects = [rflagsInfoCount]rflagsEffect{
	RflagsInfoNone:       {name: "None"},
	RflagsR_c:            {name: "R_c", read: RflagsCF},
	RflagsR_z:            {name: "R_z", read: RflagsZF},
	RflagsR_d:            {name: "R_d", read: RflagsDF},
	RflagsR_c_W_c:        {name: "R_c_W_c", read: RflagsCF, written: RflagsCF},
	RflagsR_c_W_acopsz:   {name: "R_c_W_acopsz", read: RflagsCF, written: flagsACOPSZ},
	RflagsR_c_W_c_U_o:    {name: "R_c_W_c_U_o", read: RflagsCF, written: RflagsCF, undefined: RflagsOF},
	RflagsR_acpsz:        {name: "R_acpsz", read: flagsACOPSZ &^ RflagsOF},
	RflagsR_acopszdi:     {name: "R_acopszdi", read: flagsAll},
	RflagsR_d_W_acopsz:   {name: "R_d_W_acopsz", read: RflagsDF, written: flagsACOPSZ},
	RflagsW_acopsz:       {name: "W_acopsz", written: flagsACOPSZ},
	RflagsW_aopsz:        {name: "W_aopsz", written: flagsACOPSZ &^ RflagsCF},
	RflagsW_acpsz:        {name: "W_acpsz", written: flagsACOPSZ &^ RflagsOF},
	RflagsW_cpsz_U_ao:    {name: "W_cpsz_U_ao", written: RflagsCF | RflagsPF | RflagsSF | RflagsZF, undefined: RflagsAF | RflagsOF},
	RflagsW_copsz_U_a:    {name: "W_copsz_U_a", written: flagsACOPSZ &^ RflagsAF, undefined: RflagsAF},
	RflagsW_c_U_o:        {name: "W_c_U_o", written: RflagsCF, undefined: RflagsOF},
	RflagsW_co_U_apsz:    {name: "W_co_U_apsz", written: RflagsCF | RflagsOF, undefined: RflagsAF | RflagsPF | RflagsSF | RflagsZF},
	RflagsW_z:            {name: "W_z", written: RflagsZF},
	RflagsW_psz_C_co_U_a: {name: "W_psz_C_co_U_a", written: RflagsPF | RflagsSF | RflagsZF, cleared: RflagsCF | RflagsOF, undefined: RflagsAF},
	RflagsW_acopszdi:     {name: "W_acopszdi", written: flagsAll},
	RflagsU_acopsz:       {name: "U_acopsz", undefined: flagsACOPSZ},
	RflagsC_c:            {name: "C_c", cleared: RflagsCF},
	RflagsS_c:            {name: "S_c", set: RflagsCF},
	RflagsC_d:            {name: "C_d", cleared: RflagsDF},
	RflagsS_d:            {name: "S_d", set: RflagsDF},
	RflagsC_cos_S_pz_U_a: {name: "C_cos_S_pz_U_a", cleared: RflagsCF | RflagsOF | RflagsSF, set: RflagsPF | RflagsZF, undefined: RflagsAF},
	RflagsC_acos_S_pz:    {name: "C_acos_S_pz", cleared: RflagsAF | RflagsCF | RflagsOF | RflagsSF, set: RflagsPF | RflagsZF},
}

func (r RflagsInfo) String() string {
	if r < rflagsInfoCount {
		return rflagsEffects[r].name
	}
	return fmt.Sprintf("RflagsInfo(%d)", uint8(r))
}

func (r RflagsInfo) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

func (r RflagsInfo) effect() rflagsEffect {
	if r < rflagsInfoCount {
		return rflagsEffects[r]
	}
	return rflagsEffect{}
}

func (r RflagsInfo) Read() RflagsBits      { return r.effect().read }
func (r RflagsInfo) Undefined() RflagsBits { return r.effect().undefined }
func (r RflagsInfo) Written() RflagsBits   { return r.effect().written }
func (r RflagsInfo) Cleared() RflagsBits   { return r.effect().cleared }
func (r RflagsInfo) Set() RflagsBits       { return r.effect().set }

// Modified is every flag the instruction may change.
func (r RflagsInfo) Modified() RflagsBits {
	e := r.effect()
	return e.undefined | e.written | e.cleared | e.set
}

// FlowControl classifies how an instruction changes the instruction pointer.
type FlowControl uint8

const (
	FlowNext FlowControl = iota
	FlowUnconditionalBranch
	FlowIndirectBranch
	FlowConditionalBranch
	FlowReturn
	FlowCall
	FlowIndirectCall
	FlowInterrupt
	FlowXbeginXabortXend
	FlowException

	flowControlCount
)

var flowControlNames = [flowControlCount]string{
	"Next", "UnconditionalBranch", "IndirectBranch", "ConditionalBranch", "Return",
	"Call", "IndirectCall", "Interrupt", "XbeginXabortXend", "Exception",
}

func (f FlowControl) String() string {
	if f < flowControlCount {
		return flowControlNames[f]
	}
	return fmt.Sprintf("FlowControl(%d)", uint8(f))
}

func (f FlowControl) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// EncodingKind is the instruction encoding family.
type EncodingKind uint8

const (
	EncodingLegacy EncodingKind = iota
	EncodingVEX
	EncodingEVEX
	EncodingXOP
	Encoding3DNow

	encodingKindCount
)

var encodingNames = [encodingKindCount]string{"Legacy", "VEX", "EVEX", "XOP", "3DNow"}

func (e EncodingKind) String() string {
	if e < encodingKindCount {
		return encodingNames[e]
	}
	return fmt.Sprintf("EncodingKind(%d)", uint8(e))
}

func (e EncodingKind) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

// ZeroExtendsVectorRegs reports whether writes to XMM/YMM registers clear
// the upper bits of the full vector register.
func (e EncodingKind) ZeroExtendsVectorRegs() bool {
	return e == EncodingVEX || e == EncodingEVEX || e == EncodingXOP
}

// CpuidFeature is the CPU feature an instruction requires.
type CpuidFeature uint8

const (
	CpuidINTEL8086 CpuidFeature = iota
	CpuidINTEL186
	CpuidINTEL286
	CpuidINTEL386
	CpuidINTEL486
	CpuidX64
	CpuidCPUID
	CpuidCMOV
	CpuidCMPXCHG8B
	CpuidCMPXCHG16B
	CpuidTSC
	CpuidRDTSCP
	CpuidMSR
	CpuidMMX
	CpuidSSE
	CpuidSSE2
	CpuidCLFSH
	CpuidXSAVE
	CpuidAVX
	CpuidAVX2
	CpuidAVX512F
	CpuidAVX512_4FMAPS
	CpuidAVX512_4VNNIW
	CpuidFMA4
	CpuidXOP
	Cpuid3DNOW
	CpuidBMI2
	CpuidMONITOR
	CpuidMONITORX
	CpuidPADLOCK_RNG
	CpuidPADLOCK_ACE
	CpuidPADLOCK_PHE
	CpuidPADLOCK_PMM
	CpuidLWP
	CpuidSVM
	CpuidSGX1
	CpuidVMX
	CpuidPCONFIG
	CpuidSYSCALL
	CpuidSEP
	CpuidCLZERO
	CpuidMOVDIR64B
	CpuidWAITPKG

	cpuidFeatureCount
)

var cpuidNames = [cpuidFeatureCount]string{
	"INTEL8086", "INTEL186", "INTEL286", "INTEL386", "INTEL486", "X64", "CPUID", "CMOV",
	"CMPXCHG8B", "CMPXCHG16B", "TSC", "RDTSCP", "MSR", "MMX", "SSE", "SSE2", "CLFSH", "XSAVE",
	"AVX", "AVX2", "AVX512F", "AVX512_4FMAPS", "AVX512_4VNNIW", "FMA4", "XOP", "3DNOW", "BMI2",
	"MONITOR", "MONITORX", "PADLOCK_RNG", "PADLOCK_ACE", "PADLOCK_PHE", "PADLOCK_PMM", "LWP",
	"SVM", "SGX1", "VMX", "PCONFIG", "SYSCALL", "SEP", "CLZERO", "MOVDIR64B", "WAITPKG",
}

func (c CpuidFeature) String() string {
	if c < cpuidFeatureCount {
		return cpuidNames[c]
	}
	return fmt.Sprintf("CpuidFeature(%d)", uint8(c))
}

func (c CpuidFeature) MarshalText() ([]byte, error) { return []byte(c.String()), nil }
