package errors

// Error codes for the calc toolchain.
// These codes are used in error messages and diagnostics
// to provide consistent error identification across the CLI, REPL and language server.
//
// Error code ranges:
// E0100-E0149: Lexical errors
// E0150-E0199: Syntax errors
// E0900-E0999: Reserved for tooling errors

const (
	// E0100: A character outside the expression alphabet
	ErrorUnrecognisedChar = "E0100"

	// E0101: A decimal point that is not followed by a digit, e.g. `3.`
	ErrorMalformedDecimal = "E0101"

	// E0150: A token that cannot start an operand
	ErrorUnexpectedToken = "E0150"

	// E0151: The parser expected one token kind and found another
	ErrorTokenMismatch = "E0151"

	// E0152: Syntax error reported by the reference grammar
	ErrorGrammar = "E0152"

	// E0900: Input could not be read
	ErrorInput = "E0900"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorUnrecognisedChar:
		return "Character is not part of any token"
	case ErrorMalformedDecimal:
		return "Decimal point must be followed by at least one digit"
	case ErrorUnexpectedToken:
		return "Token cannot start a number, negation or parenthesised expression"
	case ErrorTokenMismatch:
		return "Token does not match the kind required at this point"
	case ErrorGrammar:
		return "Expression does not match the reference grammar"
	case ErrorInput:
		return "Input could not be read"
	default:
		return "Unknown error code"
	}
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case code >= "E0100" && code < "E0150":
		return "Lexer"
	case code >= "E0150" && code < "E0200":
		return "Parser"
	case code >= "E0900" && code < "E1000":
		return "Tooling"
	default:
		return "Unknown"
	}
}
