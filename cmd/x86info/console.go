package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	log "github.com/colorfulnotion/x86info/log"
	"github.com/colorfulnotion/x86info/x86/decoder"
	"github.com/colorfulnotion/x86info/x86errors"
	"github.com/spf13/cobra"
)

const consoleHelp = `commands:
  <hex bytes>       decode and print usage info
  bits 16|32|64     set the code size
  ip <addr>         set the instruction address
  dis <hex bytes>   disassemble a byte stream
  regs on|off       toggle register usage
  mem on|off        toggle memory usage
  exit              leave the console`

// console evaluates one line at a time against its own copy of the config.
type console struct {
	cfg config
	out io.Writer
}

// eval runs one console line. It returns false when the console should exit.
func (c *console) eval(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}
	name := strings.ToLower(fields[0])
	switch name {
	case "exit", "quit":
		return false
	case "help", "?":
		fmt.Fprintln(c.out, consoleHelp)
	case "bits":
		if len(fields) != 2 {
			fmt.Fprintln(c.out, "usage: bits 16|32|64")
			break
		}
		next := c.cfg
		n, err := strconv.Atoi(fields[1])
		next.Bitness = n
		if err == nil {
			err = next.validate()
		}
		if err != nil {
			fmt.Fprintln(c.out, errorLine(err))
			break
		}
		c.cfg = next
	case "ip":
		if len(fields) != 2 {
			fmt.Fprintln(c.out, "usage: ip <addr>")
			break
		}
		ip, err := strconv.ParseUint(fields[1], 0, 64)
		if err != nil {
			fmt.Fprintln(c.out, errorLine(err))
			break
		}
		c.cfg.IP = ip
	case "regs", "mem":
		if len(fields) != 2 || (fields[1] != "on" && fields[1] != "off") {
			fmt.Fprintf(c.out, "usage: %s on|off\n", name)
			break
		}
		off := fields[1] == "off"
		if name == "regs" {
			c.cfg.NoRegisters = off
		} else {
			c.cfg.NoMemory = off
		}
	case "dis":
		code, err := parseHex(fields[1:]...)
		if err == nil {
			var listing string
			if listing, err = decoder.Disassemble(code, c.cfg.Bitness, c.cfg.IP); err == nil {
				fmt.Fprint(c.out, listing)
			}
		}
		if err != nil {
			fmt.Fprintln(c.out, errorLine(err))
		}
	default:
		code, err := parseHex(fields...)
		if err == nil {
			var in decodedReport
			if in, err = decodeLine(code, &c.cfg); err == nil {
				fmt.Fprintln(c.out, in.tree)
				c.cfg.IP = in.nextIP
			}
		}
		if err != nil {
			log.Debug(log.CliMonitoring, "console line failed", "line", line, "code", x86errors.GetErrorCode(err), "err", err)
			fmt.Fprintln(c.out, errorLine(err))
		}
	}
	return true
}

type decodedReport struct {
	tree   string
	nextIP uint64
}

func decodeLine(code []byte, c *config) (decodedReport, error) {
	in, rep, err := decodeReport(code, c)
	if err != nil {
		return decodedReport{}, err
	}
	return decodedReport{tree: reportTree(rep).String(), nextIP: in.NextIP()}, nil
}

func (c *console) prompt() string {
	return fmt.Sprintf("x86info[%d %#x]> ", c.cfg.Bitness, c.cfg.IP)
}

func newConsoleCmd() *cobra.Command {
	var historyFile string
	cmd := &cobra.Command{
		Use:   "console",
		Short: "Interactive instruction info console",
		RunE: func(cmd *cobra.Command, args []string) error {
			con := &console{cfg: cfg, out: os.Stdout}
			rl, err := readline.NewEx(&readline.Config{
				Prompt:      con.prompt(),
				HistoryFile: historyFile,
			})
			if err != nil {
				return fmt.Errorf("failed to start readline: %w", err)
			}
			defer rl.Close()

			fmt.Println("✅ x86info console started, type 'help' for commands")
			for {
				line, err := rl.Readline()
				if err != nil {
					break
				}
				if !con.eval(strings.TrimSpace(line)) {
					break
				}
				rl.SetPrompt(con.prompt())
			}
			fmt.Println("🔴 Exiting x86info console.")
			return nil
		},
	}
	cmd.Flags().StringVar(&historyFile, "history", filepath.Join(os.TempDir(), "x86info_history.txt"), "readline history file")
	return cmd
}
