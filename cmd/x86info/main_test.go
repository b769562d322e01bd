package main

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/colorfulnotion/x86info/x86"
	"github.com/colorfulnotion/x86info/x86/info"
	"github.com/colorfulnotion/x86info/x86errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   []string
		want []byte
	}{
		{[]string{"48 01 03"}, []byte{0x48, 0x01, 0x03}},
		{[]string{"480103"}, []byte{0x48, 0x01, 0x03}},
		{[]string{"0x48,0x01", "0X03"}, []byte{0x48, 0x01, 0x03}},
		{[]string{"f3", "aa"}, []byte{0xF3, 0xAA}},
	}
	for _, tc := range tests {
		got, err := parseHex(tc.in...)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
	}
	for _, bad := range []string{"", "zz", "4"} {
		_, err := parseHex(bad)
		assert.Error(t, err, bad)
	}
}

func TestConfigValidate(t *testing.T) {
	c := config{Bitness: 8}
	assert.True(t, errors.Is(c.validate(), x86errors.ErrInvalidBitness))
	c.Bitness = 16
	assert.NoError(t, c.validate())

	c.NoMemory = true
	assert.Equal(t, info.Options{NoMemoryUsage: true}, c.options())
}

func TestErrorLine(t *testing.T) {
	err := fmt.Errorf("bad hex: %w", fmt.Errorf("%w: 8", x86errors.ErrInvalidBitness))
	assert.Equal(t, "❌ [D3_InvalidBitness] bad hex: D3|InvalidBitness: Bitness must be 16, 32 or 64.: 8", errorLine(err))
	assert.Equal(t, "❌ unknown sort key", errorLine(errors.New("unknown sort key")))
}

func TestDecodeReport(t *testing.T) {
	c := config{Bitness: 64, IP: 0x1000}
	in, rep, err := decodeReport([]byte{0x50}, &c)
	require.NoError(t, err)
	assert.Equal(t, x86.PUSH_R64, in.Code())
	assert.Equal(t, uint64(0x1000), rep.IP)
	assert.Equal(t, 1, rep.Length)
	assert.NotEmpty(t, rep.Info.UsedMemory())

	c.NoMemory = true
	_, rep, err = decodeReport([]byte{0x50}, &c)
	require.NoError(t, err)
	assert.Empty(t, rep.Info.UsedMemory())
	assert.NotEmpty(t, rep.Info.UsedRegisters())
	assert.Equal(t, info.Info(&in, info.Options{NoMemoryUsage: true}), rep.Info)
}

func TestReportTree(t *testing.T) {
	c := config{Bitness: 64}
	_, rep, err := decodeReport([]byte{0x50}, &c)
	require.NoError(t, err)
	out := reportTree(rep).String()
	for _, want := range []string{"push_r64", "operands", "op0: Read", "registers", "rax:Read", "rsp:ReadWrite", "memory", "flow: Next", "encoding: Legacy"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "read:", "push has no flag effects")
}

func TestDiffReports(t *testing.T) {
	c := config{Bitness: 64}
	rep, err := reportJSON("f3 aa", &c)
	require.NoError(t, err)
	plain, err := reportJSON("aa", &c)
	require.NoError(t, err)

	for _, format := range []string{"ascii", "inline"} {
		_, same, err := diffReports(rep, rep, format, false)
		require.NoError(t, err, format)
		assert.True(t, same, format)

		out, same, err := diffReports(rep, plain, format, false)
		require.NoError(t, err, format)
		assert.False(t, same, format)
		assert.Contains(t, out, "rcx", format)
	}

	_, _, err = diffReports(rep, plain, "side-by-side", false)
	assert.Error(t, err)
}

func TestListCodes(t *testing.T) {
	rows := listCodes("pushf", "", "", "code")
	require.Len(t, rows, 3)
	assert.Equal(t, x86.PUSHFW, rows[0].Code)
	assert.Equal(t, x86.PUSHFQ, rows[2].Code)

	rows = listCodes("PUSHF", "", "", "name")
	require.Len(t, rows, 3)
	assert.Equal(t, []x86.Code{x86.PUSHFD, x86.PUSHFQ, x86.PUSHFW}, []x86.Code{rows[0].Code, rows[1].Code, rows[2].Code})

	rows = listCodes("", "", "evex", "code")
	require.NotEmpty(t, rows)
	for _, r := range rows {
		assert.Equal(t, info.EncodingEVEX, r.Encoding, r.Code.String())
	}

	rows = listCodes("", "x64", "", "code")
	require.NotEmpty(t, rows)
	for _, r := range rows {
		assert.Equal(t, info.CpuidX64, r.Cpuid, r.Code.String())
	}
	assert.Empty(t, listCodes("frobnicate", "", "", "code"))
}

func TestConsoleEval(t *testing.T) {
	var out bytes.Buffer
	con := &console{cfg: config{Bitness: 64}, out: &out}

	assert.True(t, con.eval("bits 32"))
	assert.Equal(t, 32, con.cfg.Bitness)
	assert.True(t, con.eval("bits 8"))
	assert.Equal(t, 32, con.cfg.Bitness)
	assert.Contains(t, out.String(), "❌ [D3_InvalidBitness]")

	assert.True(t, con.eval("ip 0x1000"))
	assert.Equal(t, uint64(0x1000), con.cfg.IP)
	assert.Equal(t, "x86info[32 0x1000]> ", con.prompt())

	out.Reset()
	assert.True(t, con.eval("53"))
	assert.Contains(t, out.String(), "push_r32")
	assert.Contains(t, out.String(), "ebx:Read")
	assert.Equal(t, uint64(0x1001), con.cfg.IP, "ip advances past the decoded instruction")

	out.Reset()
	assert.True(t, con.eval("REGS off"))
	assert.True(t, con.cfg.NoRegisters)
	assert.True(t, con.eval("53"))
	assert.NotContains(t, out.String(), "registers")

	out.Reset()
	assert.True(t, con.eval("dis 50 c3"))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "push eax")

	out.Reset()
	assert.True(t, con.eval("d9 e8"))
	assert.Contains(t, out.String(), "[D1_UnsupportedInstruction]")

	assert.True(t, con.eval(""))
	assert.False(t, con.eval("exit"))
}

func TestBuildDataflow(t *testing.T) {
	code := []byte{
		0x48, 0x89, 0xC3, // mov rbx, rax
		0x48, 0x01, 0xD8, // add rax, rbx
		0xD9, 0xE8, // fld1
		0x74, 0x00, // je
	}
	c := config{Bitness: 64, IP: 0x400000}
	nodes, edges, err := buildDataflow(code, &c)
	require.NoError(t, err)
	require.Len(t, nodes, 4)

	assert.Equal(t, []string{"rax"}, nodes[0].Reads)
	assert.Equal(t, []string{"rbx"}, nodes[0].Writes)
	assert.True(t, nodes[2].Skipped)
	assert.True(t, strings.HasPrefix(nodes[1].Name, "0x400003 "))

	assert.Equal(t, []flowEdge{
		{From: 0, To: 1, Via: "rbx"},
		{From: 1, To: 3, Via: "rflags"},
	}, edges)

	var html bytes.Buffer
	require.NoError(t, renderDataflow(&html, "test", nodes, edges))
	assert.Contains(t, html.String(), "echarts")

	_, _, err = buildDataflow(code, &config{Bitness: 7})
	assert.True(t, errors.Is(err, x86errors.ErrInvalidBitness))
}
