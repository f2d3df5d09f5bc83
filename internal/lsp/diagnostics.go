package lsp

import (
	"unicode/utf16"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"calc/internal/document"
	calcerrors "calc/internal/errors"
)

// ConvertResults turns the failed lines of a document into LSP diagnostics.
// The slice is never nil so that an empty list clears earlier diagnostics.
func ConvertResults(results []document.Result) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}

	for _, result := range results {
		if result.OK() {
			continue
		}

		if result.Diagnostic == nil {
			diagnostics = append(diagnostics, protocol.Diagnostic{
				Range:    lineRange(result.Line),
				Severity: ptrSeverity(protocol.DiagnosticSeverityError),
				Source:   ptrString("calc"),
				Message:  result.Err.Error(),
			})
			continue
		}

		diagnostics = append(diagnostics, ConvertDiagnostic(*result.Diagnostic, result.Line.Text))
	}

	return diagnostics
}

// ConvertDiagnostic maps a compiler error on the given line text to an LSP
// diagnostic. Columns are converted from characters to UTF-16 code units.
func ConvertDiagnostic(err calcerrors.CompilerError, text string) protocol.Diagnostic {
	length := err.Length
	if length <= 0 {
		length = 1
	}

	line := uint32(err.Position.Line - 1) // Convert to 0-based indexing
	column := err.Position.Column - 1

	source := "calc-parser"
	if calcerrors.GetErrorCategory(err.Code) == "Lexer" {
		source = "calc-scanner"
	}

	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: line, Character: utf16Offset(text, column)},
			End:   protocol.Position{Line: line, Character: utf16Offset(text, column+length)},
		},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Code:     &protocol.IntegerOrString{Value: err.Code},
		Source:   ptrString(source),
		Message:  err.Message,
	}
}

func lineRange(line document.Line) protocol.Range {
	n := uint32(line.Number - 1)
	return protocol.Range{
		Start: protocol.Position{Line: n, Character: 0},
		End:   protocol.Position{Line: n, Character: utf16Len(line.Text)},
	}
}

// utf16Offset converts a character offset within text to UTF-16 code units,
// the unit LSP positions are measured in. Offsets past the end count one
// unit per missing character.
func utf16Offset(text string, chars int) uint32 {
	var units uint32
	for _, r := range text {
		if chars <= 0 {
			return units
		}
		units += uint32(utf16.RuneLen(r))
		chars--
	}
	if chars > 0 {
		units += uint32(chars)
	}
	return units
}

func utf16Len(text string) uint32 {
	var units uint32
	for _, r := range text {
		units += uint32(utf16.RuneLen(r))
	}
	return units
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
