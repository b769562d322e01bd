package x86

import (
	"errors"
	"testing"

	"github.com/colorfulnotion/x86info/x86errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInstructionInvalidCode(t *testing.T) {
	_, err := NewInstruction(Code(CodeCount))
	assert.True(t, errors.Is(err, x86errors.ErrInvalidCode))

	in, err := NewInstruction(ADD_RM32_R32)
	require.NoError(t, err)
	assert.Equal(t, 2, in.OpCount())
	assert.Error(t, in.SetCode(Code(0xFFFF)))
	assert.Equal(t, ADD_RM32_R32, in.Code(), "failed SetCode must not change the code")
}

func TestOperandIndexErrors(t *testing.T) {
	in, err := NewInstruction(PUSH_R32)
	require.NoError(t, err)

	err = in.SetOpKind(1, OpKindRegister)
	assert.True(t, errors.Is(err, x86errors.ErrOperandIndexOutOfRange))
	_, err = in.OpRegister(-1)
	assert.True(t, errors.Is(err, x86errors.ErrOperandIndexOutOfRange))
	assert.True(t, errors.Is(in.SetOpKind(0, OpKind(200)), x86errors.ErrWrongOperandKind))
}

func TestOperand4IsImmediate8Only(t *testing.T) {
	in, err := NewInstruction(VPERMIL2PS_XMM_XMM_XMMM128_XMM_IMM4)
	require.NoError(t, err)
	require.Equal(t, 5, in.OpCount())

	assert.True(t, errors.Is(in.SetOpKind(4, OpKindRegister), x86errors.ErrWrongOperandKind))
	require.NoError(t, in.SetOpKind(4, OpKindImmediate8))
	assert.True(t, errors.Is(in.SetOpRegister(4, XMM1), x86errors.ErrInvalidRegister))
	assert.NoError(t, in.SetOpRegister(4, None))
	assert.Equal(t, None, in.Op4Register())
}

func TestImmediateAccessors(t *testing.T) {
	in, err := NewInstruction(ADD_RM64_IMM8)
	require.NoError(t, err)
	require.NoError(t, in.SetRegisterOp(0, RAX))

	_, err = in.Immediate(0)
	assert.True(t, errors.Is(err, x86errors.ErrWrongOperandKind), "register operand has no immediate")

	require.NoError(t, in.SetOpKind(1, OpKindImmediate8to64))
	require.NoError(t, in.SetImmediate(1, 0xF0))
	v, err := in.Immediate(1)
	require.NoError(t, err)
	assert.Equal(t, uint64(0xFFFF_FFFF_FFFF_FFF0), v)
	assert.Equal(t, int64(-16), in.Immediate8to64())

	require.NoError(t, in.SetOpKind(1, OpKindImmediate32to64))
	in.SetImmediate32to64(-2)
	v, err = in.Immediate(1)
	require.NoError(t, err)
	assert.Equal(t, uint64(0xFFFF_FFFF_FFFF_FFFE), v)
}

func TestRegisterOperand(t *testing.T) {
	in, err := NewInstruction(MOV_RM64_R64)
	require.NoError(t, err)
	require.NoError(t, in.SetRegisterOp(0, RBX))
	require.NoError(t, in.SetRegisterOp(1, R12))

	reg, err := in.OpRegister(1)
	require.NoError(t, err)
	assert.Equal(t, R12, reg)
	assert.True(t, errors.Is(in.SetOpRegister(0, Register(250)), x86errors.ErrInvalidRegister))

	require.NoError(t, in.SetOpKind(0, OpKindMemory))
	_, err = in.OpRegister(0)
	assert.True(t, errors.Is(err, x86errors.ErrWrongOperandKind))
}

func TestMemoryOperand(t *testing.T) {
	in, err := NewInstruction(MOV_R32_RM32)
	require.NoError(t, err)
	in.SetCodeSize(CodeSize32)

	require.NoError(t, in.SetMemoryBase(EBP))
	assert.Equal(t, SS, in.MemorySegment())
	require.NoError(t, in.SetSegmentPrefix(FS))
	assert.Equal(t, FS, in.MemorySegment())
	assert.Error(t, in.SetSegmentPrefix(EAX))

	assert.Equal(t, 4, in.MemoryAddressSize())
	require.NoError(t, in.SetMemoryBase(BX))
	assert.Equal(t, 2, in.MemoryAddressSize())

	assert.True(t, errors.Is(in.SetMemoryIndexScale(3), x86errors.ErrInvalidMemoryOperand))
	require.NoError(t, in.SetMemoryIndexScale(8))
	assert.Equal(t, 8, in.MemoryIndexScale())
	assert.True(t, errors.Is(in.SetMemoryDisplSize(3), x86errors.ErrInvalidMemoryOperand))
	assert.Error(t, in.SetMemoryBase(XMM0))
	assert.NoError(t, in.SetMemoryIndex(ZMM3))
}

func TestMemoryAddressSizeFromDisplacement(t *testing.T) {
	in, err := NewInstruction(MOV_R32_RM32)
	require.NoError(t, err)

	in.SetCodeSize(CodeSize64)
	assert.Equal(t, 8, in.MemoryAddressSize())
	require.NoError(t, in.SetMemoryDisplSize(4))
	assert.Equal(t, 8, in.MemoryAddressSize())

	in.SetCodeSize(CodeSize16)
	assert.Equal(t, 4, in.MemoryAddressSize())
	require.NoError(t, in.SetMemoryDisplSize(2))
	assert.Equal(t, 2, in.MemoryAddressSize())
}

func TestIPRelativeAddress(t *testing.T) {
	in, err := NewInstruction(MOV_R64_RM64)
	require.NoError(t, err)
	require.NoError(t, in.SetMemoryBase(RIP))
	in.SetMemoryDisplacement32(0xFFFF_FFF0)
	in.SetNextIP(0x1000)
	assert.True(t, in.IsIPRelativeMemoryOperand())
	assert.Equal(t, uint64(0xFF0), in.IPRelativeMemoryAddress())

	require.NoError(t, in.SetMemoryBase(EIP))
	in.SetMemoryDisplacement32(0x20)
	in.SetNextIP(0xFFFF_FFF0)
	assert.Equal(t, uint64(0x10), in.IPRelativeMemoryAddress())
}

func TestEqualIgnoresLength(t *testing.T) {
	a, err := NewInstruction(XOR_RM32_R32)
	require.NoError(t, err)
	require.NoError(t, a.SetRegisterOp(0, EAX))
	require.NoError(t, a.SetRegisterOp(1, EAX))
	a.SetCodeSize(CodeSize32)
	a.SetNextIP(0x401002)

	b := a
	b.SetLen(2)
	assert.True(t, a.Equal(&b))
	assert.Equal(t, a.Hash(), b.Hash())

	b.SetHasLockPrefix(true)
	assert.False(t, a.Equal(&b))
	assert.NotEqual(t, a.Hash(), b.Hash())
}

func TestIPAndLength(t *testing.T) {
	var in Instruction
	in.SetLen(3)
	in.SetIP(0x1000)
	assert.Equal(t, uint64(0x1003), in.NextIP())
	assert.Equal(t, uint64(0x1000), in.IP())
	assert.Equal(t, INVALID, in.Code())
	assert.Equal(t, 0, in.OpCount())
}

func TestStackPointer(t *testing.T) {
	var in Instruction
	for _, tc := range []struct {
		cs   CodeSize
		reg  Register
		size int
	}{
		{CodeSize16, SP, 2},
		{CodeSize32, ESP, 4},
		{CodeSize64, RSP, 8},
		{CodeSizeUnknown, RSP, 8},
	} {
		in.SetCodeSize(tc.cs)
		reg, size := in.StackPointer()
		assert.Equal(t, tc.reg, reg, tc.cs.String())
		assert.Equal(t, tc.size, size, tc.cs.String())
	}
}

func TestOpMask(t *testing.T) {
	in, err := NewInstruction(VPADDD_XMM_K1Z_XMM_XMMM128B32)
	require.NoError(t, err)
	assert.Error(t, in.SetOpMask(EAX))
	require.NoError(t, in.SetOpMask(K0))
	assert.False(t, in.HasOpMask())
	require.NoError(t, in.SetOpMask(K3))
	assert.True(t, in.MergingMasking())
	in.SetZeroingMasking(true)
	assert.False(t, in.MergingMasking())

	assert.Error(t, in.SetRoundingControl(RoundingControl(9)))
	require.NoError(t, in.SetRoundingControl(RoundDown))
	assert.Equal(t, "rd-sae", in.RoundingControl().String())
}

func TestBroadcastMemorySize(t *testing.T) {
	in, err := NewInstruction(VPXORD_ZMM_K1Z_ZMM_ZMMM512B32)
	require.NoError(t, err)
	assert.Equal(t, MemorySizePacked512_Int32, in.MemorySize())
	in.SetIsBroadcast(true)
	assert.Equal(t, MemorySizeBroadcast512_Int32, in.MemorySize())
	assert.Equal(t, 4, in.MemorySize().Size())
	assert.True(t, in.MemorySize().IsBroadcast())
}
