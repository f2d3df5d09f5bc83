// Package document handles .calc documents: plain text with one independent
// expression per line. Blank lines and lines starting with '#' are skipped.
package document

import (
	"errors"
	"fmt"
	"strings"

	"calc/grammar"
	"calc/internal/ast"
	calcerrors "calc/internal/errors"
	"calc/internal/parser"
)

// Engine turns one expression into a tree.
type Engine func(source string) (ast.Node, error)

var (
	Handwritten Engine = parser.Parse
	Participle  Engine = grammar.Parse
)

// EngineNames lists the names EngineByName accepts.
var EngineNames = []string{"handwritten", "participle"}

// EngineByName resolves an engine from its command-line name.
func EngineByName(name string) (Engine, error) {
	switch name {
	case "handwritten", "":
		return Handwritten, nil
	case "participle":
		return Participle, nil
	default:
		return nil, fmt.Errorf("unknown engine %q (want one of %s)", name, strings.Join(EngineNames, ", "))
	}
}

// Line is one expression of a document.
type Line struct {
	Number int // 1-based
	Text   string
}

// Split returns the expression lines of a document.
func Split(source string) []Line {
	var lines []Line
	for i, text := range strings.Split(source, "\n") {
		text = strings.TrimRight(text, "\r")
		trimmed := strings.TrimSpace(text)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		lines = append(lines, Line{Number: i + 1, Text: text})
	}
	return lines
}

// Result is the outcome of one line.
type Result struct {
	Line       Line
	Tree       ast.Node
	Value      float64
	Err        error
	Diagnostic *calcerrors.CompilerError
}

// OK reports whether the line parsed.
func (r Result) OK() bool {
	return r.Err == nil
}

// EvaluateLine parses and evaluates a single line.
func EvaluateLine(line Line, engine Engine) Result {
	tree, err := engine(line.Text)
	if err != nil {
		result := Result{Line: line, Err: err}
		var diagnosable calcerrors.Diagnosable
		if errors.As(err, &diagnosable) {
			d := diagnosable.Diagnostic().OnLine(line.Number)
			result.Diagnostic = &d
		}
		return result
	}
	return Result{Line: line, Tree: tree, Value: ast.Evaluate(tree)}
}

// Evaluate runs every expression line of the document through engine.
// A failing line does not stop the others.
func Evaluate(source string, engine Engine) []Result {
	lines := Split(source)
	results := make([]Result, 0, len(lines))
	for _, line := range lines {
		results = append(results, EvaluateLine(line, engine))
	}
	return results
}

// Failed counts the results that did not parse.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.OK() {
			n++
		}
	}
	return n
}
