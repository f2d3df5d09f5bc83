package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"calc/internal/ast"
	"calc/internal/document"
	calcerrors "calc/internal/errors"
	"calc/repl"
)

func newEvalCmd(opts *options) *cobra.Command {
	var showTree bool

	cmd := &cobra.Command{
		Use:   "eval <expression...>",
		Short: "Evaluate one expression given on the command line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			source := strings.Join(args, " ")

			result := document.EvaluateLine(document.Line{Number: 1, Text: source}, opts.engine)
			if !result.OK() {
				printFailure(out, "<expression>", source, result)
				return errFailed
			}

			if showTree {
				fmt.Fprintf(out, "%s\n\n%s\n\n", ast.Source(result.Tree), ast.Display(result.Tree, 0))
			}
			fmt.Fprintf(out, "answer = %v\n", result.Value)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showTree, "tree", "t", false, "print the syntax tree before the answer")
	return cmd
}

func newRunCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run <file.calc>",
		Short: "Evaluate every expression line of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			path := args[0]

			source, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("[%s] failed to read file: %w", calcerrors.ErrorInput, err)
			}

			startTime := time.Now()
			results := document.Evaluate(string(source), opts.engine)
			duration := formatDuration(time.Since(startTime))
			log.Debugf("evaluated %d lines of %s in %s", len(results), path, duration)

			for _, result := range results {
				if result.OK() {
					fmt.Fprintf(out, "%d: %v\n", result.Line.Number, result.Value)
					continue
				}
				printFailure(out, path, string(source), result)
			}

			if failed := document.Failed(results); failed > 0 {
				color.New(color.FgRed).Fprintf(out, "%d of %d expressions failed after %s\n", failed, len(results), duration)
				return errFailed
			}

			color.New(color.FgGreen).Fprintf(out, "Successfully evaluated %s in %s\n", path, duration)
			return nil
		},
	}
}

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive read-eval-print loop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt := cmd.InOrStdin() == os.Stdin && term.IsTerminal(int(os.Stdin.Fd()))
			repl.Start(cmd.InOrStdin(), cmd.OutOrStdout(), repl.Options{Prompt: prompt})
			return nil
		},
	}
}

func printFailure(out io.Writer, path, source string, result document.Result) {
	if result.Diagnostic != nil {
		reporter := calcerrors.NewErrorReporter(path, source)
		fmt.Fprint(out, reporter.FormatError(*result.Diagnostic))
		return
	}
	color.New(color.FgRed).Fprintf(out, "%s:%d: %v\n", path, result.Line.Number, result.Err)
}
