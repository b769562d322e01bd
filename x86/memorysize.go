package x86

import "fmt"

// MemorySize is the size and element layout of a memory operand.
type MemorySize uint8

const (
	MemorySizeUnknown MemorySize = iota
	MemorySizeUInt8
	MemorySizeUInt16
	MemorySizeUInt32
	MemorySizeUInt64
	MemorySizeUInt128
	MemorySizeUInt256
	MemorySizeUInt512
	MemorySizeInt8
	MemorySizeInt16
	MemorySizeInt32
	MemorySizeInt64
	MemorySizeFloat32
	MemorySizeFloat64
	MemorySizePacked128_Float32
	MemorySizePacked256_Float32
	MemorySizePacked512_Float32
	MemorySizePacked128_Int32
	MemorySizePacked256_Int32
	MemorySizePacked512_Int32
	MemorySizePacked128_UInt64
	MemorySizeBroadcast128_Int32
	MemorySizeBroadcast256_Int32
	MemorySizeBroadcast512_Int32
	MemorySizeBroadcast512_Float32
	MemorySizeBroadcast128_UInt64
	MemorySizeSegPtr16
	MemorySizeSegPtr32
	MemorySizeFword6

	memorySizeCount
)

type memorySizeInfo struct {
	name        string
	size        int
	elementSize int
	broadcast   bool
}

var memorySizeInfos = [memorySizeCount]memorySizeInfo{
	MemorySizeUnknown:              {"unknown", 0, 0, false},
	MemorySizeUInt8:                {"uint8", 1, 1, false},
	MemorySizeUInt16:               {"uint16", 2, 2, false},
	MemorySizeUInt32:               {"uint32", 4, 4, false},
	MemorySizeUInt64:               {"uint64", 8, 8, false},
	MemorySizeUInt128:              {"uint128", 16, 16, false},
	MemorySizeUInt256:              {"uint256", 32, 32, false},
	MemorySizeUInt512:              {"uint512", 64, 64, false},
	MemorySizeInt8:                 {"int8", 1, 1, false},
	MemorySizeInt16:                {"int16", 2, 2, false},
	MemorySizeInt32:                {"int32", 4, 4, false},
	MemorySizeInt64:                {"int64", 8, 8, false},
	MemorySizeFloat32:              {"float32", 4, 4, false},
	MemorySizeFloat64:              {"float64", 8, 8, false},
	MemorySizePacked128_Float32:    {"packed128_float32", 16, 4, false},
	MemorySizePacked256_Float32:    {"packed256_float32", 32, 4, false},
	MemorySizePacked512_Float32:    {"packed512_float32", 64, 4, false},
	MemorySizePacked128_Int32:      {"packed128_int32", 16, 4, false},
	MemorySizePacked256_Int32:      {"packed256_int32", 32, 4, false},
	MemorySizePacked512_Int32:      {"packed512_int32", 64, 4, false},
	MemorySizePacked128_UInt64:     {"packed128_uint64", 16, 8, false},
	MemorySizeBroadcast128_Int32:   {"broadcast128_int32", 4, 4, true},
	MemorySizeBroadcast256_Int32:   {"broadcast256_int32", 4, 4, true},
	MemorySizeBroadcast512_Int32:   {"broadcast512_int32", 4, 4, true},
	MemorySizeBroadcast512_Float32: {"broadcast512_float32", 4, 4, true},
	MemorySizeBroadcast128_UInt64:  {"broadcast128_uint64", 8, 8, true},
	MemorySizeSegPtr16:             {"segptr16", 4, 4, false},
	MemorySizeSegPtr32:             {"segptr32", 6, 6, false},
	MemorySizeFword6:               {"fword6", 6, 6, false},
}

func (m MemorySize) String() string {
	if m < memorySizeCount {
		return memorySizeInfos[m].name
	}
	return fmt.Sprintf("MemorySize(%d)", uint8(m))
}

// Size returns the number of bytes accessed, 0 when unknown. A broadcast
// memory size accesses a single element.
func (m MemorySize) Size() int {
	if m < memorySizeCount {
		return memorySizeInfos[m].size
	}
	return 0
}

// ElementSize returns the size of one element in bytes.
func (m MemorySize) ElementSize() int {
	if m < memorySizeCount {
		return memorySizeInfos[m].elementSize
	}
	return 0
}

func (m MemorySize) IsBroadcast() bool {
	return m < memorySizeCount && memorySizeInfos[m].broadcast
}

func (m MemorySize) MarshalText() ([]byte, error) { return []byte(m.String()), nil }
