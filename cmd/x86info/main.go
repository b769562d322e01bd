// x86info reports the registers, memory, flags and control flow used by x86
// and x64 instructions.
package main

import (
	"fmt"
	"os"
	"strings"

	log "github.com/colorfulnotion/x86info/log"
	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "x86info",
		Short: "x86/x64 instruction register and memory usage",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			if err := log.InitLogger(cfg.LogLevel); err != nil {
				return err
			}
			log.EnableModules(cfg.LogModules)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	pf := rootCmd.PersistentFlags()
	pf.IntVar(&cfg.Bitness, "bitness", 64, "code size in bits: 16, 32 or 64")
	pf.Uint64Var(&cfg.IP, "ip", 0, "address of the first instruction")
	pf.StringVar(&cfg.LogLevel, "log-level", "info", "log level: trace, debug, info, warn, error")
	pf.StringVar(&cfg.LogModules, "log-modules", "", fmt.Sprintf("comma separated log modules (%s or all)", strings.Join(log.KnownModules(), ", ")))
	pf.BoolVar(&cfg.NoRegisters, "no-registers", false, "omit used registers")
	pf.BoolVar(&cfg.NoMemory, "no-memory", false, "omit used memory")

	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("x86info %s (commit %s, built %s)\n", Version, Commit, BuildTime)
		},
	}

	rootCmd.AddCommand(newInfoCmd(), newDiffCmd(), newCodesCmd(), newConsoleCmd(), newGraphCmd(), versionCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorLine(err))
		os.Exit(1)
	}
}
