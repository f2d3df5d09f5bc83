package parser

import (
	"unicode"
)

// eof is returned by the cursor once it runs past the end of the source.
const eof rune = 0

var singleCharTokens = map[rune]TokenKind{
	'+': Add,
	'-': Sub,
	'*': Mult,
	'/': Div,
	'(': LParen,
	')': RParen,
}

// Tokeniser splits an expression into tokens, one per NextToken call.
// It has no reset: a new expression needs a new Tokeniser.
type Tokeniser struct {
	source  []rune
	charPos int
}

func NewTokeniser(source string) *Tokeniser {
	return &Tokeniser{source: []rune(source)}
}

// Pos returns the offset of the next unread character.
func (t *Tokeniser) Pos() int {
	return t.charPos
}

func (t *Tokeniser) currentChar() rune {
	if t.charPos >= len(t.source) {
		return eof
	}
	return t.source[t.charPos]
}

func (t *Tokeniser) advance() {
	if t.charPos < len(t.source) {
		t.charPos++
	}
}

func (t *Tokeniser) digits() string {
	start := t.charPos
	for isDigit(t.currentChar()) {
		t.advance()
	}
	return string(t.source[start:t.charPos])
}

// NextToken returns the next token in the stream. End of input yields an EOF
// token, repeatedly; only malformed input produces an error.
func (t *Tokeniser) NextToken() (Token, error) {
	for t.charPos < len(t.source) && unicode.IsSpace(t.currentChar()) {
		t.advance()
	}

	c := t.currentChar()
	if t.charPos >= len(t.source) {
		return Token{Kind: EOF, Pos: t.charPos}, nil
	}

	if isDigit(c) {
		return t.scanNumber()
	}

	if kind, ok := singleCharTokens[c]; ok {
		pos := t.charPos
		t.advance()
		return Token{Kind: kind, Pos: pos}, nil
	}

	return Token{}, &ScanError{Kind: UnrecognisedChar, Char: c, Pos: t.charPos, Length: 1}
}

func (t *Tokeniser) scanNumber() (Token, error) {
	start := t.charPos
	whole := t.digits()

	if t.currentChar() != '.' {
		return Token{Kind: IntLiteral, Value: whole, Pos: start}, nil
	}

	t.advance()
	fraction := t.digits()
	if fraction == "" {
		literal := whole + "."
		return Token{}, &ScanError{
			Kind:    MalformedDecimal,
			Literal: literal,
			Pos:     start,
			Length:  len(literal),
		}
	}

	return Token{Kind: FloatLiteral, Value: whole + "." + fraction, Pos: start}, nil
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}
