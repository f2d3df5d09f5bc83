package errors

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func init() {
	color.NoColor = true
}

func TestErrorReporter(t *testing.T) {
	source := "1 + 2\n(3 * 4\n5 / 6"

	reporter := NewErrorReporter("test.calc", source)

	err := NewDiagnostic(ErrorTokenMismatch, "expected RParen, got EOF at position 6", 6).
		WithHelp("close the parenthesis opened earlier").
		Build().
		OnLine(2)
	formatted := reporter.FormatError(err)

	assert.Contains(t, formatted, "error["+ErrorTokenMismatch+"]")
	assert.Contains(t, formatted, "expected RParen, got EOF")
	assert.Contains(t, formatted, "test.calc:2:7")
	assert.Contains(t, formatted, "(3 * 4")
	assert.Contains(t, formatted, "help: close the parenthesis")
	assert.NotContains(t, formatted, "5 / 6")
}

func TestDiagnosticBuilder(t *testing.T) {
	err := NewDiagnostic(ErrorMalformedDecimal, "malformed decimal literal '3.' at position 4", 4).
		WithLength(2).
		WithNote("a decimal point must be followed by a digit").
		Build()

	assert.Equal(t, Error, err.Level)
	assert.Equal(t, ErrorMalformedDecimal, err.Code)
	assert.Equal(t, Position{Line: 1, Column: 5, Offset: 4}, err.Position)
	assert.Equal(t, 2, err.Length)
	assert.Len(t, err.Notes, 1)
}

func TestErrorMarkerCreation(t *testing.T) {
	reporter := NewErrorReporter("test.calc", "12 + 3.")

	marker := reporter.createMarker(6, 2, Error)

	assert.Equal(t, 5, strings.Count(marker, " "))
	assert.Equal(t, 2, strings.Count(marker, "^"))
	assert.Equal(t, "     ^^", FormatMarker(CompilerError{Position: Position{Column: 6}, Length: 2}))
}

func TestMarkerMinimumLength(t *testing.T) {
	assert.Equal(t, "^", FormatMarker(CompilerError{Position: Position{Column: 1}}))
}

func TestErrorLevels(t *testing.T) {
	reporter := NewErrorReporter("test.calc", "1")
	pos := Position{Line: 1, Column: 1}

	errorFormatted := reporter.FormatError(CompilerError{Level: Error, Message: "test error", Position: pos})
	warningFormatted := reporter.FormatError(CompilerError{Level: Warning, Message: "test warning", Position: pos})

	assert.Contains(t, errorFormatted, "error:")
	assert.Contains(t, warningFormatted, "warning:")
}

func TestErrorCategories(t *testing.T) {
	tests := []struct {
		code     string
		category string
	}{
		{ErrorUnrecognisedChar, "Lexer"},
		{ErrorMalformedDecimal, "Lexer"},
		{ErrorUnexpectedToken, "Parser"},
		{ErrorTokenMismatch, "Parser"},
		{ErrorGrammar, "Parser"},
		{ErrorInput, "Tooling"},
		{"E0001", "Unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.category, GetErrorCategory(tt.code), tt.code)
	}

	assert.Equal(t, "Unknown error code", GetErrorDescription("E9999"))
	assert.NotEqual(t, "Unknown error code", GetErrorDescription(ErrorMalformedDecimal))
}
