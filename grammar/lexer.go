package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var CalcLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Decimal literals must come before integers so "3.14" is one token
		{Name: "Float", Pattern: `[0-9]+\.[0-9]+`, Action: nil},

		// Integer literals
		{Name: "Int", Pattern: `[0-9]+`, Action: nil},

		// Operators and brackets
		{Name: "Operator", Pattern: `[-+*/()]`, Action: nil},

		// Whitespace, the same set unicode.IsSpace accepts
		{Name: "Whitespace", Pattern: `[\s\v\x{0085}\p{Z}]+`, Action: nil},
	},
})
