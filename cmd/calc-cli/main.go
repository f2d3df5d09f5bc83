// SPDX-License-Identifier: Apache-2.0
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"calc/internal/document"
)

var log = commonlog.GetLogger("calc.cli")

// errFailed signals that diagnostics were already printed.
var errFailed = errors.New("evaluation failed")

type options struct {
	engineName string
	noColor    bool
	verbose    bool

	engine document.Engine
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "calc",
		Short: "Evaluate arithmetic expressions",
		Long: `Evaluate arithmetic expressions made of integers, decimals,
+ - * /, unary minus and parentheses.

Examples:
  # Evaluate a single expression
  calc eval "2 + 3 * 4"

  # Show the syntax tree as well
  calc eval --tree "(2 + 3) * 4"

  # Evaluate every line of a file with the participle grammar
  calc run --engine participle totals.calc`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.noColor {
				color.NoColor = true
			}

			verbosity := 0
			if opts.verbose {
				verbosity = 2
			}
			commonlog.Configure(verbosity, nil)

			engine, err := document.EngineByName(opts.engineName)
			if err != nil {
				return err
			}
			opts.engine = engine
			log.Debugf("using %s engine", opts.engineName)
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.engineName, "engine", "handwritten",
		"parser engine ("+strings.Join(document.EngineNames, ", ")+")")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newEvalCmd(opts), newRunCmd(opts), newReplCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			color.New(color.FgRed).Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
