// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"

	"calc/internal/ast"
	calcerrors "calc/internal/errors"
	"calc/internal/parser"
)

const PROMPT = "> "

var log = commonlog.GetLogger("calc.repl")

type Options struct {
	// Prompt prints PROMPT before every line; off when input is piped.
	Prompt bool
}

// Start reads expressions line by line until in is exhausted, printing the
// tree and the answer for each. A failed line never affects the next.
func Start(in io.Reader, out io.Writer, opts Options) {
	scanner := bufio.NewScanner(in)
	p := parser.New("")
	failed := color.New(color.FgRed, color.Bold).SprintFunc()

	for {
		if opts.Prompt {
			fmt.Fprint(out, PROMPT)
		}

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				log.Errorf("failed to read input: %s", err)
				fmt.Fprintln(out, failed("Failed to read input:"), err)
			}
			return
		}

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		p.SetSource(line)
		tree, err := p.Parse()
		if err != nil {
			log.Debugf("rejected %q: %s", line, err)
			fmt.Fprintln(out, failed("Failed to parse:"), err)

			var diagnosable calcerrors.Diagnosable
			if errors.As(err, &diagnosable) {
				fmt.Fprintf(out, "  %s\n  %s\n", line, calcerrors.FormatMarker(diagnosable.Diagnostic()))
			}
			continue
		}

		fmt.Fprintf(out, "\n%s\n\n", ast.Display(tree, 0))
		fmt.Fprintf(out, "answer = %v\n\n", ast.Evaluate(tree))
	}
}
