package grammar

import (
	"fmt"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	calcerrors "calc/internal/errors"
)

var parser = buildParser()

func buildParser() *participle.Parser[Expression] {
	p, err := participle.Build[Expression](
		participle.Lexer(CalcLexer),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)
	if err != nil {
		panic(fmt.Errorf("failed to build parser: %w", err))
	}

	return p
}

// SyntaxError wraps a participle lexing or parsing failure.
// Pos is participle's position, in bytes; Offset counts characters like the
// hand-written parser does.
type SyntaxError struct {
	Message string
	Pos     lexer.Position
	Offset  int
	err     error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at position %d", e.Message, e.Offset)
}

func (e *SyntaxError) Unwrap() error {
	return e.err
}

// Diagnostic converts the error for the reporter and the language server.
func (e *SyntaxError) Diagnostic() calcerrors.CompilerError {
	return calcerrors.NewDiagnostic(calcerrors.ErrorGrammar, e.Error(), e.Offset).Build()
}

// ParseExpression parses source into the participle grammar tree.
// The whole input must form one expression.
func ParseExpression(source string) (*Expression, error) {
	expr, err := parser.ParseString("", source)
	if err != nil {
		pe, ok := err.(participle.Error)
		if !ok {
			return nil, &SyntaxError{Message: err.Error(), err: err}
		}
		pos := pe.Position()
		return nil, &SyntaxError{Message: pe.Message(), Pos: pos, Offset: charOffset(source, pos.Offset), err: err}
	}
	return expr, nil
}

// charOffset converts a byte offset into source to a character offset.
func charOffset(source string, byteOffset int) int {
	if byteOffset <= 0 {
		return 0
	}
	if byteOffset > len(source) {
		byteOffset = len(source)
	}
	return utf8.RuneCountInString(source[:byteOffset])
}
