package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/colorfulnotion/x86info/x86"
	"github.com/colorfulnotion/x86info/x86/decoder"
	"github.com/colorfulnotion/x86info/x86/info"
	"github.com/colorfulnotion/x86info/x86errors"
)

// config holds the flags shared by every subcommand.
type config struct {
	Bitness     int
	IP          uint64
	LogLevel    string
	LogModules  string
	NoRegisters bool
	NoMemory    bool
}

var cfg = config{Bitness: 64, LogLevel: "info"}

func (c *config) validate() error {
	switch c.Bitness {
	case 16, 32, 64:
		return nil
	}
	return fmt.Errorf("%w: %d", x86errors.ErrInvalidBitness, c.Bitness)
}

func (c *config) options() info.Options {
	return info.Options{NoRegisterUsage: c.NoRegisters, NoMemoryUsage: c.NoMemory}
}

// parseHex accepts bytes as "48 01 03", "480103", "0x48,0x01,0x03" or any
// mix of those.
func parseHex(args ...string) ([]byte, error) {
	s := strings.Join(args, " ")
	s = strings.ReplaceAll(s, "0x", " ")
	s = strings.ReplaceAll(s, "0X", " ")
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', ',', ':', '\n', '\r':
			return -1
		}
		return r
	}, s)
	if s == "" {
		return nil, fmt.Errorf("no instruction bytes")
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("bad hex bytes %q: %w", s, err)
	}
	return b, nil
}

// decodeReport decodes the first instruction of code and computes its info.
func decodeReport(code []byte, c *config) (x86.Instruction, info.Report, error) {
	in, err := decoder.Decode(code, c.Bitness, c.IP)
	if err != nil {
		return x86.Instruction{}, info.Report{}, err
	}
	return in, info.NewReport(&in, c.options()), nil
}

// errorLine formats a failure for the terminal, tagged with its error code
// when it wraps a known sentinel.
func errorLine(err error) string {
	if tag := x86errors.GetErrorCodeWithName(err); tag != "" {
		return fmt.Sprintf("❌ [%s] %v", tag, err)
	}
	return fmt.Sprintf("❌ %v", err)
}
