package decoder

import (
	"errors"
	"strings"
	"testing"

	"github.com/colorfulnotion/x86info/x86"
	"github.com/colorfulnotion/x86info/x86/info"
	"github.com/colorfulnotion/x86info/x86errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, bitness int, ip uint64, code ...byte) x86.Instruction {
	t.Helper()
	in, err := Decode(code, bitness, ip)
	require.NoError(t, err)
	assert.Equal(t, len(code), in.Len())
	return in
}

func TestDecodeForms(t *testing.T) {
	tests := []struct {
		name    string
		bitness int
		code    []byte
		want    x86.Code
	}{
		{"add eax,ecx", 64, []byte{0x01, 0xC8}, x86.ADD_RM32_R32},
		{"add eax,ecx reversed", 64, []byte{0x03, 0xC1}, x86.ADD_R32_RM32},
		{"add [rbx],rax", 64, []byte{0x48, 0x01, 0x03}, x86.ADD_RM64_R64},
		{"push rax", 64, []byte{0x50}, x86.PUSH_R64},
		{"push ebx", 32, []byte{0x53}, x86.PUSH_R32},
		{"rep stosb", 64, []byte{0xF3, 0xAA}, x86.STOSB_M8_AL},
		{"int3", 64, []byte{0xCC}, x86.INT3},
		{"int 0x80", 32, []byte{0xCD, 0x80}, x86.INT_IMM8},
		{"ret", 64, []byte{0xC3}, x86.RETNQ},
		{"ret 8", 32, []byte{0xC2, 0x08, 0x00}, x86.RETND_IMM16},
		{"nop", 64, []byte{0x90}, x86.NOP},
		{"cpuid", 64, []byte{0x0F, 0xA2}, x86.CPUID},
		{"xor eax,eax", 32, []byte{0x31, 0xC0}, x86.XOR_RM32_R32},
		{"lea rax,[rbx+8]", 64, []byte{0x48, 0x8D, 0x43, 0x08}, x86.LEA_R64_M},
		{"shl eax,1", 32, []byte{0xD1, 0xE0}, x86.SHL_RM32_1},
		{"shl eax,cl", 32, []byte{0xD3, 0xE0}, x86.SHL_RM32_CL},
		{"leave", 64, []byte{0xC9}, x86.LEAVEQ},
		{"cdq", 32, []byte{0x99}, x86.CDQ},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := decode(t, tc.bitness, 0, tc.code...)
			assert.Equal(t, tc.want, in.Code())
			assert.Equal(t, x86.CodeSizeFromBitness(tc.bitness), in.CodeSize())
		})
	}
}

func TestDecodeRegisters(t *testing.T) {
	in := decode(t, 64, 0, 0x01, 0xC8)
	assert.Equal(t, x86.EAX, in.Op0Register())
	assert.Equal(t, x86.ECX, in.Op1Register())

	in = decode(t, 64, 0, 0x4D, 0x01, 0xC8)
	assert.Equal(t, x86.ADD_RM64_R64, in.Code())
	assert.Equal(t, x86.R8, in.Op0Register())
	assert.Equal(t, x86.R9, in.Op1Register())
}

func TestDecodeMemoryOperand(t *testing.T) {
	in := decode(t, 64, 0, 0x48, 0x01, 0x03)
	assert.Equal(t, x86.OpKindMemory, in.Op0Kind())
	assert.Equal(t, x86.RBX, in.MemoryBase())
	assert.Equal(t, x86.None, in.MemoryIndex())
	assert.Equal(t, 0, in.MemoryDisplSize())
	assert.Equal(t, x86.RAX, in.Op1Register())

	in = decode(t, 32, 0, 0x8B, 0x44, 0x8B, 0x10)
	assert.Equal(t, x86.MOV_R32_RM32, in.Code())
	assert.Equal(t, x86.EBX, in.MemoryBase())
	assert.Equal(t, x86.ECX, in.MemoryIndex())
	assert.Equal(t, 4, in.MemoryIndexScale())
	assert.Equal(t, uint32(0x10), in.MemoryDisplacement32())
	assert.Equal(t, 1, in.MemoryDisplSize())
}

func TestDecodeRipRelative(t *testing.T) {
	in := decode(t, 64, 0x1000, 0x8B, 0x05, 0x10, 0x00, 0x00, 0x00)
	assert.Equal(t, x86.MOV_R32_RM32, in.Code())
	assert.True(t, in.IsIPRelativeMemoryOperand())
	assert.Equal(t, uint64(0x1016), in.IPRelativeMemoryAddress())
}

func TestDecodeSegmentOverride(t *testing.T) {
	in := decode(t, 32, 0, 0x64, 0x8B, 0x03)
	assert.Equal(t, x86.FS, in.SegmentPrefix())
	assert.Equal(t, x86.FS, in.MemorySegment())

	in = decode(t, 32, 0, 0x8B, 0x03)
	assert.Equal(t, x86.None, in.SegmentPrefix())
	assert.Equal(t, x86.DS, in.MemorySegment())
}

func TestDecodeImmediates(t *testing.T) {
	in := decode(t, 64, 0, 0x6A, 0xFF)
	assert.Equal(t, x86.PUSHQ_IMM8, in.Code())
	assert.Equal(t, x86.OpKindImmediate8to64, in.Op0Kind())
	assert.Equal(t, int64(-1), in.Immediate8to64())

	in = decode(t, 32, 0, 0xB8, 0x78, 0x56, 0x34, 0x12)
	assert.Equal(t, x86.MOV_R32_IMM32, in.Code())
	assert.Equal(t, x86.OpKindImmediate32, in.Op1Kind())
	assert.Equal(t, uint32(0x12345678), in.Immediate32())

	in = decode(t, 64, 0, 0x48, 0xB8, 0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01)
	assert.Equal(t, x86.MOV_R64_IMM64, in.Code())
	assert.Equal(t, x86.OpKindImmediate64, in.Op1Kind())
	assert.Equal(t, uint64(0x0102030405060708), in.Immediate64())

	in = decode(t, 64, 0, 0x48, 0x83, 0xC4, 0xF8)
	assert.Equal(t, x86.ADD_RM64_IMM8, in.Code())
	assert.Equal(t, x86.OpKindImmediate8to64, in.Op1Kind())
	v, err := in.Immediate(1)
	require.NoError(t, err)
	assert.Equal(t, uint64(0xFFFF_FFFF_FFFF_FFF8), v)

	in = decode(t, 32, 0, 0xC8, 0x10, 0x00, 0x02)
	assert.Equal(t, x86.ENTERD_IMM16_IMM8, in.Code())
	assert.Equal(t, x86.OpKindImmediate16, in.Op0Kind())
	assert.Equal(t, x86.OpKindImmediate8_2nd, in.Op1Kind())
	assert.Equal(t, uint16(0x10), in.Immediate16())
	assert.Equal(t, uint8(2), in.Immediate8_2nd())
}

func TestDecodeBranches(t *testing.T) {
	in := decode(t, 64, 0x2000, 0xEB, 0xFE)
	assert.Equal(t, x86.JMP_REL8_64, in.Code())
	assert.Equal(t, x86.OpKindNearBranch64, in.Op0Kind())
	assert.Equal(t, uint64(0x2000), in.NearBranch64())

	in = decode(t, 32, 0x1000, 0xE8, 0x00, 0x01, 0x00, 0x00)
	assert.Equal(t, x86.CALL_REL32_32, in.Code())
	assert.Equal(t, x86.OpKindNearBranch32, in.Op0Kind())
	assert.Equal(t, uint32(0x1105), in.NearBranch32())

	in = decode(t, 64, 0, 0xE2, 0x10)
	assert.Equal(t, x86.LOOP_REL8_64_RCX, in.Code())
	assert.Equal(t, uint64(0x12), in.NearBranch64())
}

func TestDecodeStringOperands(t *testing.T) {
	in := decode(t, 64, 0, 0xF3, 0xAA)
	assert.True(t, in.HasRepPrefix())
	assert.Equal(t, x86.OpKindMemoryESRDI, in.Op0Kind())
	assert.Equal(t, x86.AL, in.Op1Register())

	in = decode(t, 32, 0, 0x64, 0xA4)
	assert.Equal(t, x86.MOVSB_M8_M8, in.Code())
	assert.Equal(t, x86.OpKindMemoryESEDI, in.Op0Kind())
	assert.Equal(t, x86.OpKindMemorySegESI, in.Op1Kind())
	assert.Equal(t, x86.FS, in.SegmentPrefix())
	assert.False(t, in.HasRepPrefix())
}

func TestDecodeLockPrefix(t *testing.T) {
	in := decode(t, 64, 0, 0xF0, 0x48, 0x0F, 0xB1, 0x0B)
	assert.Equal(t, x86.CMPXCHG_RM64_R64, in.Code())
	assert.True(t, in.HasLockPrefix())
	assert.Equal(t, x86.RBX, in.MemoryBase())
	assert.Equal(t, x86.RCX, in.Op1Register())
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode([]byte{0x90}, 8, 0)
	assert.True(t, errors.Is(err, x86errors.ErrInvalidBitness))

	_, err = Decode(nil, 64, 0)
	assert.True(t, errors.Is(err, x86errors.ErrDecode))

	_, err = Decode([]byte{0xD9, 0xE8}, 64, 0)
	assert.True(t, errors.Is(err, x86errors.ErrUnsupportedInstruction))
	assert.Contains(t, err.Error(), "fld1")

	_, err = DecodeAll([]byte{0x90}, 0, 0)
	assert.True(t, errors.Is(err, x86errors.ErrInvalidBitness))
}

func TestDecodeAll(t *testing.T) {
	steps, err := DecodeAll([]byte{0x90, 0xCC, 0xD9, 0xE8, 0xC3}, 64, 0x400000)
	require.NoError(t, err)
	require.Len(t, steps, 4)

	assert.Equal(t, x86.NOP, steps[0].Instruction.Code())
	assert.Equal(t, x86.INT3, steps[1].Instruction.Code())
	assert.Equal(t, uint64(0x400001), steps[1].Instruction.IP())
	assert.True(t, errors.Is(steps[2].Err, x86errors.ErrUnsupportedInstruction))
	assert.Equal(t, 2, steps[2].Offset)
	assert.Equal(t, []byte{0xD9, 0xE8}, steps[2].Bytes)
	assert.Equal(t, x86.RETNQ, steps[3].Instruction.Code())
	assert.Equal(t, 4, steps[3].Offset)
}

func TestDisassemble(t *testing.T) {
	out, err := Disassemble([]byte{0x50, 0xC3}, 64, 0x1000)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "0x1000: 50"))
	assert.Contains(t, lines[0], "push rax")
	assert.True(t, strings.HasPrefix(lines[1], "0x1001: c3"))
}

func TestDecodedInfo(t *testing.T) {
	in := decode(t, 64, 0, 0xF3, 0xAA)
	ii := info.Info(&in, info.Options{})
	assert.Contains(t, ii.UsedRegisters(), info.UsedRegister{Register: x86.RCX, Access: info.AccessReadCondWrite})
	require.Len(t, ii.UsedMemory(), 1)
	assert.Equal(t, x86.ES, ii.UsedMemory()[0].Segment)
	assert.Equal(t, x86.RDI, ii.UsedMemory()[0].Base)
	assert.Equal(t, info.AccessCondWrite, ii.UsedMemory()[0].Access)

	in = decode(t, 64, 0, 0x48, 0x01, 0x03)
	ii = info.Info(&in, info.Options{})
	require.Len(t, ii.UsedMemory(), 1)
	assert.Equal(t, "ds:[rbx];uint64;ReadWrite", ii.UsedMemory()[0].String())
}
