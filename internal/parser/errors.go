package parser

import (
	"fmt"

	calcerrors "calc/internal/errors"
)

// ScanErrorKind distinguishes the lexical failures.
type ScanErrorKind int

const (
	UnrecognisedChar ScanErrorKind = iota
	MalformedDecimal
)

// ScanError is a lexical error raised by the Tokeniser.
type ScanError struct {
	Kind    ScanErrorKind
	Char    rune   // the offending character, for UnrecognisedChar
	Literal string // the partial literal, for MalformedDecimal
	Pos     int
	Length  int
}

func (e *ScanError) Error() string {
	switch e.Kind {
	case MalformedDecimal:
		return fmt.Sprintf("malformed decimal literal '%s' at position %d", e.Literal, e.Pos)
	default:
		return fmt.Sprintf("unrecognised character '%c' at position %d", e.Char, e.Pos)
	}
}

// Diagnostic converts the error for the reporter and the language server.
func (e *ScanError) Diagnostic() calcerrors.CompilerError {
	switch e.Kind {
	case MalformedDecimal:
		return calcerrors.NewDiagnostic(calcerrors.ErrorMalformedDecimal, e.Error(), e.Pos).
			WithLength(e.Length).
			WithHelp(fmt.Sprintf("add a digit after the decimal point, e.g. '%s0'", e.Literal)).
			Build()
	default:
		return calcerrors.NewDiagnostic(calcerrors.ErrorUnrecognisedChar, e.Error(), e.Pos).
			WithLength(e.Length).
			WithNote("expressions may only contain digits, '.', '+', '-', '*', '/', '(', ')' and whitespace").
			Build()
	}
}

// ParseErrorKind distinguishes the syntax failures.
type ParseErrorKind int

const (
	// TokenMismatch is raised when a specific token kind was required.
	TokenMismatch ParseErrorKind = iota
	// UnexpectedToken is raised when a token cannot start an operand.
	UnexpectedToken
)

// ParseError is a syntax error raised by the Parser.
type ParseError struct {
	Kind     ParseErrorKind
	Expected TokenKind // only meaningful for TokenMismatch
	Found    Token
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case UnexpectedToken:
		return fmt.Sprintf("unexpected token %s at position %d", e.Found, e.Found.Pos)
	default:
		return fmt.Sprintf("expected %s, got %s at position %d", e.Expected, e.Found.Kind, e.Found.Pos)
	}
}

// Pos returns the offset of the offending token.
func (e *ParseError) Pos() int {
	return e.Found.Pos
}

// Diagnostic converts the error for the reporter and the language server.
func (e *ParseError) Diagnostic() calcerrors.CompilerError {
	code := calcerrors.ErrorTokenMismatch
	if e.Kind == UnexpectedToken {
		code = calcerrors.ErrorUnexpectedToken
	}

	b := calcerrors.NewDiagnostic(code, e.Error(), e.Found.Pos).WithLength(e.Found.Len())
	switch {
	case e.Kind == TokenMismatch && e.Expected == RParen:
		b.WithHelp("add ')' to close the parenthesis")
	case e.Found.Kind == EOF:
		b.WithHelp("the expression ends too early, a number or '(' is missing")
	}
	return b.Build()
}
