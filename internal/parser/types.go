package parser

// TokenKind represents the different types of tokens found within an expression.
type TokenKind int

const (
	// Empty is the placeholder lookahead before the tokeniser has been invoked.
	Empty TokenKind = iota
	EOF

	// Literals
	IntLiteral
	FloatLiteral

	// Operators
	Add
	Sub
	Mult
	Div

	// Brackets
	LParen
	RParen
)

var tokenKindNames = [...]string{
	Empty:        "Empty",
	EOF:          "EOF",
	IntLiteral:   "IntLiteral",
	FloatLiteral: "FloatLiteral",
	Add:          "Add",
	Sub:          "Sub",
	Mult:         "Mult",
	Div:          "Div",
	LParen:       "LParen",
	RParen:       "RParen",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(tokenKindNames) {
		return "TokenKind(?)"
	}
	return tokenKindNames[k]
}

// IsLiteral reports whether tokens of this kind carry a Value.
func (k TokenKind) IsLiteral() bool {
	return k == IntLiteral || k == FloatLiteral
}

// Token is an individual component of an expression, such as a number or a symbol.
type Token struct {
	Kind  TokenKind
	Value string // literal text, only set for IntLiteral and FloatLiteral
	Pos   int    // 0-based character offset of the first character
}

// Len returns the number of characters the token covers.
func (t Token) Len() int {
	switch {
	case t.Kind.IsLiteral():
		return len(t.Value)
	case t.Kind == EOF || t.Kind == Empty:
		return 0
	default:
		return 1
	}
}

func (t Token) String() string {
	if t.Kind.IsLiteral() {
		return t.Kind.String() + "(" + t.Value + ")"
	}
	return t.Kind.String()
}
