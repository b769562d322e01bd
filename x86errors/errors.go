package x86errors

import (
	"errors"
	"strings"
)

// Instruction (I) Errors
var (
	ErrInvalidCode            = errors.New("I1|InvalidCode: Code is outside the known opcode space.")
	ErrOperandIndexOutOfRange = errors.New("I2|OperandIndexOutOfRange: Operand index is not below the operand count.")
	ErrWrongOperandKind       = errors.New("I3|WrongOperandKind: Operand kind does not support the requested accessor.")
	ErrInvalidRegister        = errors.New("I4|InvalidRegister: Register is outside the enumeration or not allowed here.")
	ErrInvalidMemoryOperand   = errors.New("I5|InvalidMemoryOperand: Memory operand scale or displacement size is not encodable.")
)

// Decoder (D) Errors
var (
	ErrUnsupportedInstruction = errors.New("D1|UnsupportedInstruction: Decoded instruction has no form in the code table.")
	ErrDecode                 = errors.New("D2|Decode: Byte stream could not be decoded.")
	ErrInvalidBitness         = errors.New("D3|InvalidBitness: Bitness must be 16, 32 or 64.")
)

// All lists every sentinel in code order.
var All = []error{
	ErrInvalidCode,
	ErrOperandIndexOutOfRange,
	ErrWrongOperandKind,
	ErrInvalidRegister,
	ErrInvalidMemoryOperand,
	ErrUnsupportedInstruction,
	ErrDecode,
	ErrInvalidBitness,
}

// Sentinel returns the entry of All that err wraps, or nil.
func Sentinel(err error) error {
	for _, s := range All {
		if errors.Is(err, s) {
			return s
		}
	}
	return nil
}

// split breaks a sentinel message "CODE|Name: description" into its parts.
func split(s error) (code, name, desc string) {
	code, rest, _ := strings.Cut(s.Error(), "|")
	name, desc, _ = strings.Cut(rest, ":")
	return code, name, strings.TrimSpace(desc)
}

// GetErrorCode returns the code of the sentinel err wraps, such as "D3".
func GetErrorCode(err error) string {
	s := Sentinel(err)
	if s == nil {
		return ""
	}
	code, _, _ := split(s)
	return code
}

// GetErrorName returns the name of the sentinel err wraps. Errors outside
// this package are returned as their message.
func GetErrorName(err error) string {
	if err == nil {
		return ""
	}
	s := Sentinel(err)
	if s == nil {
		return err.Error()
	}
	_, name, _ := split(s)
	return name
}

// GetErrorCodeWithName returns "Code_Name", or "" when err wraps no sentinel.
func GetErrorCodeWithName(err error) string {
	s := Sentinel(err)
	if s == nil {
		return ""
	}
	code, name, _ := split(s)
	return code + "_" + name
}
