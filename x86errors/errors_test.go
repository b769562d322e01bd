package x86errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorParts(t *testing.T) {
	tests := []struct {
		err      error
		code     string
		name     string
		codeName string
	}{
		{ErrInvalidCode, "I1", "InvalidCode", "I1_InvalidCode"},
		{ErrOperandIndexOutOfRange, "I2", "OperandIndexOutOfRange", "I2_OperandIndexOutOfRange"},
		{ErrWrongOperandKind, "I3", "WrongOperandKind", "I3_WrongOperandKind"},
		{ErrDecode, "D2", "Decode", "D2_Decode"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.code, GetErrorCode(tc.err))
			assert.Equal(t, tc.name, GetErrorName(tc.err))
			assert.Equal(t, tc.codeName, GetErrorCodeWithName(tc.err))
		})
	}
}

func TestWrappedError(t *testing.T) {
	err := fmt.Errorf("%w: operand 3 of add_rm8_r8", ErrOperandIndexOutOfRange)
	assert.Equal(t, ErrOperandIndexOutOfRange, Sentinel(err))
	assert.Equal(t, "I2", GetErrorCode(err))
	assert.Equal(t, "OperandIndexOutOfRange", GetErrorName(err))

	outer := fmt.Errorf("console line: %w", fmt.Errorf("%w: 8", ErrInvalidBitness))
	assert.Equal(t, "D3_InvalidBitness", GetErrorCodeWithName(outer))
}

func TestNilAndPlainErrors(t *testing.T) {
	assert.Equal(t, "", GetErrorName(nil))
	assert.Equal(t, "", GetErrorCode(nil))
	assert.Nil(t, Sentinel(nil))
	plain := errors.New("boom")
	assert.Equal(t, "boom", GetErrorName(plain))
	assert.Equal(t, "", GetErrorCodeWithName(plain))
}

func TestAllUnique(t *testing.T) {
	codes := map[string]bool{}
	names := map[string]bool{}
	for _, err := range All {
		code, name, desc := split(err)
		assert.False(t, codes[code], code)
		assert.False(t, names[name], name)
		assert.NotEmpty(t, desc, name)
		codes[code], names[name] = true, true
		assert.Equal(t, err, Sentinel(err))
	}
	assert.Len(t, codes, len(All))
}
