package lsp

import (
	"calc/internal/document"
	"calc/internal/parser"
)

// SemanticTokenTypes is the legend advertised to clients
var SemanticTokenTypes = []string{
	"number",
	"operator",
}

// SemanticTokenModifiers is empty; calc tokens carry no modifiers
var SemanticTokenModifiers = []string{}

const (
	tokenTypeNumber = iota
	tokenTypeOperator
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int // index into SemanticTokenTypes
	TokenModifiers int // bitmask
}

// collectSemanticTokens runs the tokeniser over every expression line.
// A line with a lexical error contributes the tokens before the error.
func collectSemanticTokens(text string) []SemanticToken {
	var tokens []SemanticToken

	for _, line := range document.Split(text) {
		tokeniser := parser.NewTokeniser(line.Text)
		for {
			tok, err := tokeniser.NextToken()
			if err != nil || tok.Kind == parser.EOF {
				break
			}

			tokenType := tokenTypeOperator
			if tok.Kind.IsLiteral() {
				tokenType = tokenTypeNumber
			}

			start := utf16Offset(line.Text, tok.Pos)
			tokens = append(tokens, SemanticToken{
				Line:      uint32(line.Number - 1),
				StartChar: start,
				Length:    utf16Offset(line.Text, tok.Pos+tok.Len()) - start,
				TokenType: tokenType,
			})
		}
	}

	return tokens
}

// encodeSemanticTokens encodes tokens into the LSP wire format
// (delta-line, delta-start compression).
func encodeSemanticTokens(tokens []SemanticToken) []uint32 {
	data := []uint32{}
	var prevLine, prevStart uint32

	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		} else {
			deltaStart = token.StartChar
		}

		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}

	return data
}
