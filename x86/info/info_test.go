package info

import (
	"encoding/json"
	"testing"

	"github.com/colorfulnotion/x86info/x86"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// build returns an instruction of code in code size cs after applying each
// setter.
func build(t *testing.T, code x86.Code, cs x86.CodeSize, setters ...func(in *x86.Instruction) error) *x86.Instruction {
	t.Helper()
	in, err := x86.NewInstruction(code)
	require.NoError(t, err)
	in.SetCodeSize(cs)
	for _, set := range setters {
		require.NoError(t, set(&in))
	}
	return &in
}

func reg(op int, r x86.Register) func(*x86.Instruction) error {
	return func(in *x86.Instruction) error { return in.SetRegisterOp(op, r) }
}

func kind(op int, k x86.OpKind) func(*x86.Instruction) error {
	return func(in *x86.Instruction) error { return in.SetOpKind(op, k) }
}

func imm8(op int, v uint8) func(*x86.Instruction) error {
	return func(in *x86.Instruction) error {
		if err := in.SetOpKind(op, x86.OpKindImmediate8); err != nil {
			return err
		}
		return in.SetImmediate(op, uint64(v))
	}
}

// mem sets operand op to [base+index*scale+displ].
func mem(op int, base, index x86.Register, scale int, displ uint32) func(*x86.Instruction) error {
	return func(in *x86.Instruction) error {
		if err := in.SetOpKind(op, x86.OpKindMemory); err != nil {
			return err
		}
		if err := in.SetMemoryBase(base); err != nil {
			return err
		}
		if err := in.SetMemoryIndex(index); err != nil {
			return err
		}
		if err := in.SetMemoryIndexScale(scale); err != nil {
			return err
		}
		in.SetMemoryDisplacement32(displ)
		if displ != 0 {
			return in.SetMemoryDisplSize(4)
		}
		return nil
	}
}

func ur(r x86.Register, a OpAccess) UsedRegister { return UsedRegister{Register: r, Access: a} }

func TestAddMemoryRegister64(t *testing.T) {
	in := build(t, x86.ADD_RM8_R8, x86.CodeSize64, mem(0, x86.RBX, x86.None, 1, 0), reg(1, x86.CL))
	ii := Info(in, Options{})

	assert.Equal(t, AccessReadWrite, ii.OpAccess(0))
	assert.Equal(t, AccessRead, ii.OpAccess(1))
	assert.Equal(t, []UsedMemory{{
		Segment:     x86.DS,
		Base:        x86.RBX,
		Scale:       1,
		MemorySize:  x86.MemorySizeUInt8,
		Access:      AccessReadWrite,
		AddressSize: 8,
	}}, ii.UsedMemory())
	assert.Equal(t, []UsedRegister{ur(x86.RBX, AccessRead), ur(x86.CL, AccessRead)}, ii.UsedRegisters())
	assert.Equal(t, RflagsW_acopsz, ii.RflagsInfo())
	assert.Equal(t, FlowNext, ii.FlowControl())
}

func TestPushRegister32(t *testing.T) {
	in := build(t, x86.PUSH_R32, x86.CodeSize32, reg(0, x86.EBX))
	ii := Info(in, Options{})

	assert.Equal(t, []UsedRegister{
		ur(x86.EBX, AccessRead),
		ur(x86.SS, AccessRead),
		ur(x86.ESP, AccessReadWrite),
	}, ii.UsedRegisters())
	assert.Equal(t, []UsedMemory{{
		Segment:      x86.SS,
		Base:         x86.ESP,
		Scale:        1,
		Displacement: 0xFFFF_FFFC,
		MemorySize:   x86.MemorySizeUInt32,
		Access:       AccessWrite,
		AddressSize:  4,
	}}, ii.UsedMemory())
}

func TestRepStosb64(t *testing.T) {
	in := build(t, x86.STOSB_M8_AL, x86.CodeSize64, kind(0, x86.OpKindMemoryESRDI), reg(1, x86.AL))
	in.SetHasRepPrefix(true)
	ii := Info(in, Options{})

	assert.Equal(t, AccessCondWrite, ii.OpAccess(0))
	assert.Equal(t, AccessCondRead, ii.OpAccess(1))
	assert.Equal(t, []UsedRegister{
		ur(x86.AL, AccessCondRead),
		ur(x86.RDI, AccessCondRead),
		ur(x86.RDI, AccessCondWrite),
		ur(x86.RCX, AccessReadCondWrite),
	}, ii.UsedRegisters())
	assert.Equal(t, []UsedMemory{{
		Segment:     x86.ES,
		Base:        x86.RDI,
		Scale:       1,
		MemorySize:  x86.MemorySizeUnknown,
		Access:      AccessCondWrite,
		AddressSize: 8,
	}}, ii.UsedMemory())
	assert.Equal(t, RflagsR_d, ii.RflagsInfo())
}

func TestStosbWithoutRep(t *testing.T) {
	in := build(t, x86.STOSB_M8_AL, x86.CodeSize32, kind(0, x86.OpKindMemoryESEDI), reg(1, x86.AL))
	ii := Info(in, Options{})

	assert.Equal(t, AccessWrite, ii.OpAccess(0))
	assert.Equal(t, []UsedRegister{
		ur(x86.AL, AccessRead),
		ur(x86.ES, AccessRead),
		ur(x86.EDI, AccessReadWrite),
	}, ii.UsedRegisters())
	require.Len(t, ii.UsedMemory(), 1)
	assert.Equal(t, x86.MemorySizeUInt8, ii.UsedMemory()[0].MemorySize)
	assert.Equal(t, 4, ii.UsedMemory()[0].AddressSize)
}

func TestShiftByZeroKeepsFlags(t *testing.T) {
	for _, tc := range []struct {
		code  x86.Code
		count uint8
		want  RflagsInfo
	}{
		{x86.SHL_RM32_IMM8, 0, RflagsInfoNone},
		{x86.SHL_RM32_IMM8, 32, RflagsInfoNone},
		{x86.SHL_RM32_IMM8, 1, RflagsW_cpsz_U_ao},
		{x86.SHL_RM64_IMM8, 32, RflagsW_cpsz_U_ao},
		{x86.SHL_RM64_IMM8, 64, RflagsInfoNone},
		{x86.RCL_RM8_IMM8, 9, RflagsInfoNone},
		{x86.RCL_RM8_IMM8, 10, RflagsR_c_W_c_U_o},
		{x86.RCR_RM16_IMM8, 17, RflagsInfoNone},
	} {
		in := build(t, tc.code, x86.CodeSize64, reg(0, x86.GPR(0, 4)), imm8(1, tc.count))
		ii := Info(in, Options{})
		assert.Equal(t, tc.want, ii.RflagsInfo(), "%s, %d", tc.code, tc.count)
	}
}

func TestShldImmediateCount(t *testing.T) {
	in := build(t, x86.SHLD_RM32_R32_IMM8, x86.CodeSize32, reg(0, x86.EAX), reg(1, x86.EDX), imm8(2, 0x20))
	assert.Equal(t, RflagsInfoNone, Info(in, Options{}).RflagsInfo())
}

func TestXorClearsRegister(t *testing.T) {
	in := build(t, x86.XOR_RM32_R32, x86.CodeSize32, reg(0, x86.EAX), reg(1, x86.EAX))
	ii := Info(in, Options{})
	assert.Equal(t, AccessWrite, ii.OpAccess(0))
	assert.Equal(t, AccessNone, ii.OpAccess(1))
	assert.Equal(t, []UsedRegister{ur(x86.EAX, AccessWrite)}, ii.UsedRegisters())
	assert.Equal(t, RflagsC_cos_S_pz_U_a, ii.RflagsInfo())

	in.SetCodeSize(x86.CodeSize64)
	ii = Info(in, Options{})
	assert.Equal(t, []UsedRegister{ur(x86.RAX, AccessWrite)}, ii.UsedRegisters())

	in = build(t, x86.XOR_RM32_R32, x86.CodeSize64, reg(0, x86.EAX), reg(1, x86.ECX))
	ii = Info(in, Options{})
	assert.Equal(t, []UsedRegister{ur(x86.RAX, AccessReadWrite), ur(x86.ECX, AccessRead)}, ii.UsedRegisters())
	assert.Equal(t, RflagsW_psz_C_co_U_a, ii.RflagsInfo())
}

func TestSubClearsRegister(t *testing.T) {
	in := build(t, x86.SUB_R64_RM64, x86.CodeSize64, reg(0, x86.R10), reg(1, x86.R10))
	ii := Info(in, Options{})
	assert.Equal(t, []UsedRegister{ur(x86.R10, AccessWrite)}, ii.UsedRegisters())
	assert.Equal(t, RflagsC_acos_S_pz, ii.RflagsInfo())
}

func TestInfoIsIdempotent(t *testing.T) {
	in := build(t, x86.VPGATHERDD_ZMM_K1_VM32Z, x86.CodeSize64,
		reg(0, x86.ZMM1), mem(1, x86.RAX, x86.ZMM2, 4, 0x40))
	require.NoError(t, in.SetOpMask(x86.K1))

	first := Info(in, Options{})
	second := Info(in, Options{})
	assert.Equal(t, first, second)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCmpxchg8b32(t *testing.T) {
	in := build(t, x86.CMPXCHG8B_M64, x86.CodeSize32, mem(0, x86.ESI, x86.None, 1, 0))
	ii := Info(in, Options{})

	assert.Equal(t, []UsedRegister{
		ur(x86.DS, AccessRead),
		ur(x86.ESI, AccessRead),
		ur(x86.EDX, AccessReadCondWrite),
		ur(x86.EAX, AccessReadCondWrite),
		ur(x86.ECX, AccessCondRead),
		ur(x86.EBX, AccessCondRead),
	}, ii.UsedRegisters())
	require.Len(t, ii.UsedMemory(), 1)
	assert.Equal(t, AccessReadCondWrite, ii.UsedMemory()[0].Access)
	assert.Equal(t, RflagsW_z, ii.RflagsInfo())
	assert.Equal(t, CpuidCMPXCHG8B, ii.CpuidFeature())
}

func TestEveryCodeIsTotal(t *testing.T) {
	f := NewFactory()
	for c := x86.Code(0); int(c) < x86.CodeCount; c++ {
		for _, cs := range []x86.CodeSize{x86.CodeSizeUnknown, x86.CodeSize16, x86.CodeSize32, x86.CodeSize64} {
			in, err := x86.NewInstruction(c)
			require.NoError(t, err)
			in.SetCodeSize(cs)

			var ii *InstructionInfo
			require.NotPanics(t, func() { ii = f.Info(&in, Options{}) }, c.String())
			assert.Equal(t, c.OpCount(), ii.OpCount(), c.String())
			for op := c.OpCount(); op < x86.MaxOpCount; op++ {
				assert.Equal(t, AccessNone, ii.OpAccess(op), "%s op%d", c, op)
			}
		}
	}
}

func TestPseudoCodesUseNothing(t *testing.T) {
	for _, c := range []x86.Code{x86.INVALID, x86.DECLAREBYTE, x86.DECLAREWORD, x86.DECLAREDWORD, x86.DECLAREQWORD} {
		in := build(t, c, x86.CodeSize64)
		ii := Info(in, Options{})
		assert.Empty(t, ii.UsedRegisters(), c.String())
		assert.Empty(t, ii.UsedMemory(), c.String())
		assert.Equal(t, FlowNext, ii.FlowControl(), c.String())
		assert.Equal(t, RflagsInfoNone, ii.RflagsInfo(), c.String())
	}
}

func TestMergeMasking(t *testing.T) {
	in := build(t, x86.VPADDD_XMM_K1Z_XMM_XMMM128B32, x86.CodeSize64,
		reg(0, x86.XMM1), reg(1, x86.XMM2), reg(2, x86.XMM3))
	require.NoError(t, in.SetOpMask(x86.K1))

	ii := Info(in, Options{})
	assert.Equal(t, AccessReadWrite, ii.OpAccess(0))
	assert.Equal(t, []UsedRegister{
		ur(x86.ZMM1, AccessReadWrite),
		ur(x86.XMM2, AccessRead),
		ur(x86.XMM3, AccessRead),
		ur(x86.K1, AccessRead),
	}, ii.UsedRegisters())

	in.SetZeroingMasking(true)
	ii = Info(in, Options{})
	assert.Equal(t, AccessWrite, ii.OpAccess(0))
	assert.Equal(t, ur(x86.ZMM1, AccessWrite), ii.UsedRegisters()[0])

	require.NoError(t, in.SetOpMask(x86.K0))
	in.SetZeroingMasking(false)
	ii = Info(in, Options{})
	assert.Equal(t, AccessWrite, ii.OpAccess(0))
	assert.Len(t, ii.UsedRegisters(), 3, "k0 is not a mask")
}

func TestMaskedStoreIsConditional(t *testing.T) {
	in := build(t, x86.VMOVUPS_ZMMM512_K1Z_ZMM, x86.CodeSize64, mem(0, x86.RDI, x86.None, 1, 0), reg(1, x86.ZMM5))
	require.NoError(t, in.SetOpMask(x86.K2))
	ii := Info(in, Options{})
	assert.Equal(t, AccessCondWrite, ii.OpAccess(0))
	require.Len(t, ii.UsedMemory(), 1)
	assert.Equal(t, AccessCondWrite, ii.UsedMemory()[0].Access)
}

func TestMaskedCompareForcesWrite(t *testing.T) {
	in := build(t, x86.VPCMPEQD_KR_K1_ZMM_ZMMM512B32, x86.CodeSize64,
		reg(0, x86.K3), reg(1, x86.ZMM1), reg(2, x86.ZMM2))
	require.NoError(t, in.SetOpMask(x86.K1))
	ii := Info(in, Options{})
	assert.Equal(t, AccessWrite, ii.OpAccess(0))
	assert.Equal(t, ur(x86.K3, AccessWrite), ii.UsedRegisters()[0])
}

func TestCmovAccessDependsOnMode(t *testing.T) {
	in := build(t, x86.CMOVE_R32_RM32, x86.CodeSize32, reg(0, x86.EAX), reg(1, x86.EBX))
	ii := Info(in, Options{})
	assert.Equal(t, AccessCondWrite, ii.OpAccess(0))
	assert.Equal(t, ur(x86.EAX, AccessCondWrite), ii.UsedRegisters()[0])
	assert.Equal(t, RflagsZF, ii.RflagsRead())

	in.SetCodeSize(x86.CodeSize64)
	ii = Info(in, Options{})
	assert.Equal(t, AccessReadWrite, ii.OpAccess(0))
	assert.Equal(t, ur(x86.RAX, AccessReadWrite), ii.UsedRegisters()[0])
}

func TestMovssSameRegister(t *testing.T) {
	in := build(t, x86.MOVSS_XMMM32_XMM, x86.CodeSize64, reg(0, x86.XMM1), reg(1, x86.XMM1))
	assert.Equal(t, AccessReadWrite, Info(in, Options{}).OpAccess(0))

	in = build(t, x86.MOVSS_XMMM32_XMM, x86.CodeSize64, reg(0, x86.XMM1), reg(1, x86.XMM2))
	ii := Info(in, Options{})
	assert.Equal(t, AccessWrite, ii.OpAccess(0))
	assert.Equal(t, ur(x86.XMM1, AccessWrite), ii.UsedRegisters()[0], "legacy SSE keeps the upper bits")
}

func TestLeaReadsOnlyAddressRegisters(t *testing.T) {
	in := build(t, x86.LEA_R64_M, x86.CodeSize64, reg(0, x86.RAX), mem(1, x86.RBX, x86.RCX, 4, 8))
	ii := Info(in, Options{})
	assert.Equal(t, AccessNoMemAccess, ii.OpAccess(1))
	assert.Empty(t, ii.UsedMemory())
	assert.Equal(t, []UsedRegister{
		ur(x86.RAX, AccessWrite),
		ur(x86.RBX, AccessRead),
		ur(x86.RCX, AccessRead),
	}, ii.UsedRegisters())
}

func TestNopRegisterOperandIsRead(t *testing.T) {
	in := build(t, x86.NOP_RM32, x86.CodeSize32, reg(0, x86.EAX))
	ii := Info(in, Options{})
	assert.Equal(t, AccessRead, ii.OpAccess(0))
	assert.Equal(t, []UsedRegister{ur(x86.EAX, AccessRead)}, ii.UsedRegisters())
}

func TestRipRelative(t *testing.T) {
	in := build(t, x86.MOV_R64_RM64, x86.CodeSize64, reg(0, x86.RAX), mem(1, x86.RIP, x86.None, 1, 0x10))
	in.SetNextIP(0x1000)
	ii := Info(in, Options{})
	assert.Equal(t, []UsedRegister{ur(x86.RAX, AccessWrite)}, ii.UsedRegisters())
	require.Len(t, ii.UsedMemory(), 1)
	m := ii.UsedMemory()[0]
	assert.Equal(t, x86.None, m.Base)
	assert.Equal(t, uint64(0x1010), m.Displacement)
	assert.Equal(t, 8, m.AddressSize)
}

func TestAddressSizeMasksDisplacement(t *testing.T) {
	in := build(t, x86.MOV_R32_RM32, x86.CodeSize64, reg(0, x86.EAX), mem(1, x86.EBX, x86.None, 1, 0xFFFF_FFFC))
	ii := Info(in, Options{})
	require.Len(t, ii.UsedMemory(), 1)
	assert.Equal(t, uint64(0xFFFF_FFFC), ii.UsedMemory()[0].Displacement)
	assert.Equal(t, 4, ii.UsedMemory()[0].AddressSize)

	in = build(t, x86.MOV_R64_RM64, x86.CodeSize64, reg(0, x86.RAX), mem(1, x86.RBX, x86.None, 1, 0xFFFF_FFFC))
	ii = Info(in, Options{})
	assert.Equal(t, uint64(0xFFFF_FFFF_FFFF_FFFC), ii.UsedMemory()[0].Displacement)
}

func TestMoffs64WithSegmentOverride(t *testing.T) {
	in := build(t, x86.MOV_RAX_MOFFS64, x86.CodeSize64, reg(0, x86.RAX), kind(1, x86.OpKindMemory64))
	in.SetMemoryDisplacement64(0x7FFF_0000_1000)
	require.NoError(t, in.SetSegmentPrefix(x86.FS))
	ii := Info(in, Options{})

	assert.Equal(t, []UsedRegister{ur(x86.RAX, AccessWrite), ur(x86.FS, AccessRead)}, ii.UsedRegisters())
	assert.Equal(t, []UsedMemory{{
		Segment:      x86.FS,
		Scale:        1,
		Displacement: 0x7FFF_0000_1000,
		MemorySize:   x86.MemorySizeUInt64,
		Access:       AccessRead,
		AddressSize:  8,
	}}, ii.UsedMemory())
}

func TestSegmentKeptOutside64(t *testing.T) {
	in := build(t, x86.MOV_R32_RM32, x86.CodeSize32, reg(0, x86.EAX), mem(1, x86.EBP, x86.None, 1, 8))
	ii := Info(in, Options{})
	assert.Equal(t, []UsedRegister{
		ur(x86.EAX, AccessWrite),
		ur(x86.SS, AccessRead),
		ur(x86.EBP, AccessRead),
	}, ii.UsedRegisters())
}

func TestReadP3(t *testing.T) {
	in := build(t, x86.V4FMADDPS_ZMM_K1Z_ZMMP3_M128, x86.CodeSize64,
		reg(0, x86.ZMM0), reg(1, x86.ZMM6), mem(2, x86.RAX, x86.None, 1, 0))
	ii := Info(in, Options{})
	assert.Equal(t, []UsedRegister{
		ur(x86.ZMM0, AccessReadWrite),
		ur(x86.ZMM4, AccessRead),
		ur(x86.ZMM5, AccessRead),
		ur(x86.ZMM6, AccessRead),
		ur(x86.ZMM7, AccessRead),
		ur(x86.RAX, AccessRead),
	}, ii.UsedRegisters())
}

func TestVsibGather(t *testing.T) {
	in := build(t, x86.VPGATHERDD_XMM_VM32X_XMM, x86.CodeSize64,
		reg(0, x86.XMM1), mem(1, x86.RAX, x86.XMM2, 4, 0), reg(2, x86.XMM3))
	ii := Info(in, Options{})

	require.Len(t, ii.UsedMemory(), 1)
	m := ii.UsedMemory()[0]
	assert.Equal(t, 4, m.VsibSize)
	assert.Equal(t, x86.XMM2, m.Index)
	assert.Equal(t, AccessCondRead, m.Access)
	assert.Equal(t, []UsedRegister{
		ur(x86.ZMM1, AccessReadCondWrite),
		ur(x86.RAX, AccessRead),
		ur(x86.XMM2, AccessRead),
		ur(x86.ZMM3, AccessReadWrite),
	}, ii.UsedRegisters())
}

func TestOpmaskReadWriteGather(t *testing.T) {
	in := build(t, x86.VPGATHERDD_ZMM_K1_VM32Z, x86.CodeSize64, reg(0, x86.ZMM1), mem(1, x86.RAX, x86.ZMM2, 4, 0))
	require.NoError(t, in.SetOpMask(x86.K1))
	regs := Info(in, Options{}).UsedRegisters()
	assert.Equal(t, ur(x86.K1, AccessReadWrite), regs[len(regs)-1])
}

func TestClearVec3(t *testing.T) {
	in := build(t, x86.VPXOR_XMM_XMM_XMMM128, x86.CodeSize64, reg(0, x86.XMM0), reg(1, x86.XMM1), reg(2, x86.XMM1))
	ii := Info(in, Options{})
	assert.Equal(t, AccessNone, ii.OpAccess(1))
	assert.Equal(t, AccessNone, ii.OpAccess(2))
	assert.Equal(t, []UsedRegister{ur(x86.ZMM0, AccessWrite)}, ii.UsedRegisters())

	in = build(t, x86.VPXORD_ZMM_K1Z_ZMM_ZMMM512B32, x86.CodeSize64, reg(0, x86.ZMM0), reg(1, x86.ZMM1), reg(2, x86.ZMM1))
	require.NoError(t, in.SetOpMask(x86.K1))
	ii = Info(in, Options{})
	assert.Equal(t, AccessReadWrite, ii.OpAccess(0), "merge masking keeps the destination")
	assert.Equal(t, AccessRead, ii.OpAccess(2))

	in.SetZeroingMasking(true)
	ii = Info(in, Options{})
	assert.Equal(t, AccessWrite, ii.OpAccess(0), "zeroing masking still clears")
	assert.Equal(t, AccessNone, ii.OpAccess(1))
	assert.Equal(t, AccessNone, ii.OpAccess(2))
	assert.Equal(t, []UsedRegister{ur(x86.ZMM0, AccessWrite), ur(x86.K1, AccessRead)}, ii.UsedRegisters())
}

func TestOptions(t *testing.T) {
	in := build(t, x86.ADD_RM64_R64, x86.CodeSize64, mem(0, x86.RBX, x86.None, 1, 0), reg(1, x86.RCX))

	ii := Info(in, Options{NoRegisterUsage: true})
	assert.Empty(t, ii.UsedRegisters())
	assert.Len(t, ii.UsedMemory(), 1)

	ii = Info(in, Options{NoMemoryUsage: true})
	assert.Empty(t, ii.UsedMemory())
	assert.Len(t, ii.UsedRegisters(), 2)
	assert.Equal(t, AccessReadWrite, ii.OpAccess(0))
}

func TestFactoryReusesBuffers(t *testing.T) {
	f := NewFactory()
	add := build(t, x86.ADD_RM32_R32, x86.CodeSize32, reg(0, x86.EAX), reg(1, x86.ECX))
	push := build(t, x86.PUSH_R32, x86.CodeSize32, reg(0, x86.EDX))

	first := f.Info(add, Options{})
	kept := first.Clone()
	assert.Equal(t, Info(add, Options{}), kept)

	second := f.Info(push, Options{})
	assert.Same(t, first, second)
	assert.Equal(t, x86.EDX, first.UsedRegisters()[0].Register, "result is overwritten by the next call")
	assert.Equal(t, x86.EAX, kept.UsedRegisters()[0].Register)
}

func TestFlowAndEncoding(t *testing.T) {
	for _, tc := range []struct {
		code x86.Code
		flow FlowControl
		enc  EncodingKind
	}{
		{x86.CALL_REL32_64, FlowCall, EncodingLegacy},
		{x86.CALL_RM64, FlowIndirectCall, EncodingLegacy},
		{x86.JMP_RM64, FlowIndirectBranch, EncodingLegacy},
		{x86.JE_REL8_64, FlowConditionalBranch, EncodingLegacy},
		{x86.RETNQ, FlowReturn, EncodingLegacy},
		{x86.INT3, FlowInterrupt, EncodingLegacy},
		{x86.UD2, FlowException, EncodingLegacy},
		{x86.VPCMOV_XMM_XMM_XMMM128_XMM, FlowNext, EncodingXOP},
		{x86.PFADD_MM_MMM64, FlowNext, Encoding3DNow},
		{x86.VADDPS_ZMM_K1Z_ZMM_ZMMM512B32_ER, FlowNext, EncodingEVEX},
	} {
		ii := Info(build(t, tc.code, x86.CodeSize64), Options{})
		assert.Equal(t, tc.flow, ii.FlowControl(), tc.code.String())
		assert.Equal(t, tc.enc, ii.Encoding(), tc.code.String())
	}
}

func TestInfoJSON(t *testing.T) {
	in := build(t, x86.PUSH_R64, x86.CodeSize64, reg(0, x86.RBP))
	in.SetLen(1)
	in.SetIP(0x401000)
	out, err := json.Marshal(NewReport(in, Options{}))
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, "push_r64", got["code"])
	assert.Equal(t, "64", got["code_size"])
	info := got["info"].(map[string]interface{})
	assert.Equal(t, []interface{}{"Read"}, info["op_accesses"])
	regs := info["used_registers"].([]interface{})
	require.Len(t, regs, 2)
	assert.Equal(t, map[string]interface{}{"register": "rbp", "access": "Read"}, regs[0])
	mems := info["used_memory"].([]interface{})
	require.Len(t, mems, 1)
	assert.Equal(t, "ss", mems[0].(map[string]interface{})["segment"])

	rep := NewReport(in, Options{NoMemoryUsage: true})
	assert.Empty(t, rep.Info.UsedMemory())
	assert.Equal(t, []UsedRegister{ur(x86.RBP, AccessRead), ur(x86.RSP, AccessReadWrite)}, NewReport(in, Options{}).Info.UsedRegisters())
}

func TestVirtualAddress(t *testing.T) {
	values := map[x86.Register]uint64{
		x86.RBX: 0x1000,
		x86.RCX: 0x10,
		x86.FS:  0x7000_0000,
		x86.BX:  0xFFF0,
		x86.SI:  0x20,
	}
	get := func(r x86.Register, elem, size int) (uint64, bool) {
		if r == x86.XMM2 {
			// dwords 0x10, -1
			return []uint64{0x10, 0xFFFF_FFFF}[elem], true
		}
		v, ok := values[r]
		return v, ok
	}

	m := UsedMemory{Segment: x86.FS, Base: x86.RBX, Index: x86.RCX, Scale: 8, Displacement: 4, AddressSize: 8}
	addr, ok := m.VirtualAddress(0, get)
	require.True(t, ok)
	assert.Equal(t, uint64(0x7000_0000+0x1000+0x80+4), addr)

	m = UsedMemory{Base: x86.BX, Index: x86.SI, Scale: 1, AddressSize: 2}
	addr, ok = m.VirtualAddress(0, get)
	require.True(t, ok)
	assert.Equal(t, uint64(0x10), addr, "16-bit addresses wrap")

	m = UsedMemory{Base: x86.RBX, Index: x86.XMM2, Scale: 4, AddressSize: 8, VsibSize: 4}
	addr, ok = m.VirtualAddress(1, get)
	require.True(t, ok)
	assert.Equal(t, uint64(0x1000-4), addr)

	m = UsedMemory{Base: x86.RDX, AddressSize: 8}
	_, ok = m.VirtualAddress(0, get)
	assert.False(t, ok)
}

func TestUsageStrings(t *testing.T) {
	assert.Equal(t, "rax:ReadWrite", ur(x86.RAX, AccessReadWrite).String())
	m := UsedMemory{Segment: x86.DS, Base: x86.RBX, Index: x86.RCX, Scale: 4, Displacement: 0x10,
		MemorySize: x86.MemorySizeUInt32, Access: AccessRead}
	assert.Equal(t, "ds:[rbx+rcx*4+0x10];uint32;Read", m.String())
	assert.Equal(t, "es:[0x0];unknown;Write", UsedMemory{Segment: x86.ES, Access: AccessWrite}.String())
}
