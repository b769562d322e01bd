package x86

import (
	"fmt"
	"strings"
)

//go:generate python3 ../scripts/gen/codes.py

// Code identifies one instruction form (mnemonic plus operand shape).
type Code uint16

type codeInfo struct {
	name     string
	opCount  int
	memSize  MemorySize
	bcstSize MemorySize
}

func (c Code) IsValid() bool { return int(c) < CodeCount }

func (c Code) String() string {
	if c.IsValid() {
		return codeTable[c].name
	}
	return fmt.Sprintf("Code(%d)", uint16(c))
}

// OpCount returns the number of operands of instructions with this code.
func (c Code) OpCount() int {
	if c.IsValid() {
		return codeTable[c].opCount
	}
	return 0
}

// MemorySize returns the memory operand size, using the broadcast element
// size when bcst is set and the form supports broadcasting.
func (c Code) MemorySize(bcst bool) MemorySize {
	if !c.IsValid() {
		return MemorySizeUnknown
	}
	ci := &codeTable[c]
	if bcst && ci.bcstSize != MemorySizeUnknown {
		return ci.bcstSize
	}
	return ci.memSize
}

// SupportsBroadcast reports whether the memory operand has an embedded
// broadcast form.
func (c Code) SupportsBroadcast() bool {
	return c.IsValid() && codeTable[c].bcstSize != MemorySizeUnknown
}

// IsDeclareData reports whether c is one of the db/dw/dd/dq pseudo codes.
func (c Code) IsDeclareData() bool {
	return DECLAREBYTE <= c && c <= DECLAREQWORD
}

// Mnemonic returns the lower case mnemonic, the name up to the first
// operand shape.
func (c Code) Mnemonic() string {
	name := c.String()
	if i := strings.IndexByte(name, '_'); i > 0 {
		return name[:i]
	}
	return name
}

var codesByName map[string]Code

func init() {
	codesByName = make(map[string]Code, CodeCount)
	for i := 0; i < CodeCount; i++ {
		codesByName[codeTable[i].name] = Code(i)
	}
}

// CodeByName looks up a code by its table name, case-insensitively.
func CodeByName(name string) (Code, bool) {
	c, ok := codesByName[strings.ToLower(name)]
	return c, ok
}

func (c Code) MarshalText() ([]byte, error) { return []byte(c.String()), nil }
