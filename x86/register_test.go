package x86

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFullRegister(t *testing.T) {
	tests := []struct {
		reg, full, full32 Register
	}{
		{AL, RAX, EAX},
		{AH, RAX, EAX},
		{BH, RBX, EBX},
		{SPL, RSP, ESP},
		{R9L, R9, R9D},
		{DI, RDI, EDI},
		{R15D, R15, R15D},
		{EIP, RIP, EIP},
		{XMM17, ZMM17, ZMM17},
		{YMM3, ZMM3, ZMM3},
		{K2, K2, K2},
		{FS, FS, FS},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.full, tc.reg.FullRegister(), tc.reg.String())
		assert.Equal(t, tc.full32, tc.reg.FullRegister32(), tc.reg.String())
	}
}

func TestGPR(t *testing.T) {
	assert.Equal(t, AL, GPR(0, 1))
	assert.Equal(t, SPL, GPR(4, 1))
	assert.Equal(t, R8L, GPR(8, 1))
	assert.Equal(t, CX, GPR(1, 2))
	assert.Equal(t, EDI, GPR(7, 4))
	assert.Equal(t, R11, GPR(11, 8))
	assert.Equal(t, None, GPR(16, 8))
	assert.Equal(t, None, GPR(0, 3))
}

func TestRegisterNumberAndSize(t *testing.T) {
	assert.Equal(t, 4, AH.Number())
	assert.Equal(t, 4, SPL.Number())
	assert.Equal(t, 13, R13L.Number())
	assert.Equal(t, 31, ZMM31.Number())
	assert.Equal(t, 5, YMM5.Number())

	assert.Equal(t, 1, BH.Size())
	assert.Equal(t, 2, GS.Size())
	assert.Equal(t, 16, XMM0.Size())
	assert.Equal(t, 64, ZMM9.Size())
	assert.Equal(t, 0, None.Size())
}

func TestRegisterNames(t *testing.T) {
	for r := Register(0); int(r) < RegisterCount; r++ {
		got, ok := RegisterByName(r.String())
		assert.True(t, ok, r.String())
		assert.Equal(t, r, got)
	}
	assert.Equal(t, "xmm12", XMM12.String())
	assert.Equal(t, "k7", K7.String())
	assert.False(t, Register(RegisterCount).IsValid())
}

func TestCodeTable(t *testing.T) {
	for c := Code(0); int(c) < CodeCount; c++ {
		assert.LessOrEqual(t, c.OpCount(), MaxOpCount, c.String())
		got, ok := CodeByName(c.String())
		assert.True(t, ok, c.String())
		assert.Equal(t, c, got)
	}
	assert.Equal(t, 0, INVALID.OpCount())
	assert.Equal(t, "add", ADD_RM8_R8.Mnemonic())
	assert.Equal(t, "cpuid", CPUID.Mnemonic())
	assert.True(t, DECLAREWORD.IsDeclareData())
	assert.False(t, NOP.IsDeclareData())
	assert.True(t, VADDPS_ZMM_K1Z_ZMM_ZMMM512B32_ER.SupportsBroadcast())
	assert.False(t, ADD_RM8_R8.SupportsBroadcast())

	c, ok := CodeByName("CMPXCHG8B_M64")
	assert.True(t, ok)
	assert.Equal(t, CMPXCHG8B_M64, c)
	_, ok = CodeByName("frobnicate")
	assert.False(t, ok)
}

func TestOpKindClasses(t *testing.T) {
	assert.True(t, OpKindMemoryESRDI.IsStringMemory())
	assert.True(t, OpKindMemory64.IsMemory())
	assert.False(t, OpKindImmediate8.IsMemory())
	assert.True(t, OpKindImmediate8_2nd.IsImmediate())
	assert.Equal(t, 4, OpKindMemorySegESI.StringAddressSize())
	assert.Equal(t, 0, OpKindMemory.StringAddressSize())
	assert.Equal(t, CodeSize32, CodeSizeFromBitness(32))
	assert.Equal(t, CodeSizeUnknown, CodeSizeFromBitness(8))
	assert.True(t, CodeSizeUnknown.Is64())
}
