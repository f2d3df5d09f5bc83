package parser

import (
	"errors"
	"testing"
)

func collect(t *testing.T, input string) []Token {
	t.Helper()

	tokeniser := NewTokeniser(input)
	var tokens []Token
	for {
		tok, err := tokeniser.NextToken()
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", input, err)
		}
		tokens = append(tokens, tok)
		if tok.Kind == EOF {
			return tokens
		}
	}
}

func TestOperatorsAndBrackets(t *testing.T) {
	input := `+-*/()`
	expected := []TokenKind{Add, Sub, Mult, Div, LParen, RParen, EOF}

	tokens := collect(t, input)

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}

	for i, exp := range expected {
		if tokens[i].Kind != exp {
			t.Errorf("expected %s, got %s", exp, tokens[i].Kind)
		}
		if tokens[i].Pos != i {
			t.Errorf("expected %s at position %d, got %d", exp, i, tokens[i].Pos)
		}
		if tokens[i].Value != "" {
			t.Errorf("expected no value for %s, got %q", exp, tokens[i].Value)
		}
	}
}

func TestNumbers(t *testing.T) {
	input := "42 0 3.14 007 10.05"
	expected := []Token{
		{Kind: IntLiteral, Value: "42", Pos: 0},
		{Kind: IntLiteral, Value: "0", Pos: 3},
		{Kind: FloatLiteral, Value: "3.14", Pos: 5},
		{Kind: IntLiteral, Value: "007", Pos: 10},
		{Kind: FloatLiteral, Value: "10.05", Pos: 14},
		{Kind: EOF, Pos: 19},
	}

	tokens := collect(t, input)

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}
	for i, exp := range expected {
		if tokens[i] != exp {
			t.Errorf("token %d: expected %+v, got %+v", i, exp, tokens[i])
		}
	}
}

func TestMixedExpression(t *testing.T) {
	input := "12.5*(3 - -4)/ 7"
	expected := []Token{
		{Kind: FloatLiteral, Value: "12.5", Pos: 0},
		{Kind: Mult, Pos: 4},
		{Kind: LParen, Pos: 5},
		{Kind: IntLiteral, Value: "3", Pos: 6},
		{Kind: Sub, Pos: 8},
		{Kind: Sub, Pos: 10},
		{Kind: IntLiteral, Value: "4", Pos: 11},
		{Kind: RParen, Pos: 12},
		{Kind: Div, Pos: 13},
		{Kind: IntLiteral, Value: "7", Pos: 15},
		{Kind: EOF, Pos: 16},
	}

	tokens := collect(t, input)

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}
	for i, exp := range expected {
		if tokens[i] != exp {
			t.Errorf("token %d: expected %+v, got %+v", i, exp, tokens[i])
		}
	}
}

func TestWhitespaceAndEOF(t *testing.T) {
	tokeniser := NewTokeniser(" \t 7 \n")

	tok, err := tokeniser.NextToken()
	if err != nil || tok.Kind != IntLiteral || tok.Pos != 3 {
		t.Fatalf("expected IntLiteral at 3, got %+v (%v)", tok, err)
	}

	// EOF is a normal token and keeps coming back.
	for i := 0; i < 3; i++ {
		tok, err = tokeniser.NextToken()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tok.Kind != EOF || tok.Pos != 6 {
			t.Errorf("expected EOF at 6, got %+v", tok)
		}
	}
	if tokeniser.Pos() != 6 {
		t.Errorf("cursor moved past the end: %d", tokeniser.Pos())
	}
}

func TestEmptyInput(t *testing.T) {
	tokens := collect(t, "")

	if len(tokens) != 1 || tokens[0].Kind != EOF || tokens[0].Pos != 0 {
		t.Errorf("expected a single EOF, got %+v", tokens)
	}
}

func TestUnrecognisedCharacter(t *testing.T) {
	tokeniser := NewTokeniser("1 & 2")

	if _, err := tokeniser.NextToken(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := tokeniser.NextToken()
	var scanErr *ScanError
	if !errors.As(err, &scanErr) {
		t.Fatalf("expected a ScanError, got %v", err)
	}
	if scanErr.Kind != UnrecognisedChar || scanErr.Char != '&' || scanErr.Pos != 2 {
		t.Errorf("unexpected error details: %+v", scanErr)
	}
	if err.Error() != "unrecognised character '&' at position 2" {
		t.Errorf("unexpected message: %s", err)
	}
}

func TestUnrecognisedMultiByteCharacter(t *testing.T) {
	tokeniser := NewTokeniser("1 + é")

	var err error
	for i := 0; i < 3 && err == nil; i++ {
		_, err = tokeniser.NextToken()
	}

	var scanErr *ScanError
	if !errors.As(err, &scanErr) {
		t.Fatalf("expected a ScanError, got %v", err)
	}
	if scanErr.Char != 'é' || scanErr.Pos != 4 {
		t.Errorf("expected 'é' at character 4, got %q at %d", scanErr.Char, scanErr.Pos)
	}
}

func TestMalformedDecimal(t *testing.T) {
	tests := []struct {
		input   string
		literal string
		pos     int
	}{
		{"3.", "3.", 0},
		{"1 + 12.", "12.", 4},
		{"3.x", "3.", 0},
		{"(4. )", "4.", 1},
	}

	for _, tt := range tests {
		tokeniser := NewTokeniser(tt.input)

		var err error
		for i := 0; i < 5 && err == nil; i++ {
			_, err = tokeniser.NextToken()
		}

		var scanErr *ScanError
		if !errors.As(err, &scanErr) {
			t.Fatalf("%q: expected a ScanError, got %v", tt.input, err)
		}
		if scanErr.Kind != MalformedDecimal {
			t.Errorf("%q: expected MalformedDecimal, got %v", tt.input, scanErr.Kind)
		}
		if scanErr.Literal != tt.literal || scanErr.Pos != tt.pos {
			t.Errorf("%q: expected '%s' at %d, got '%s' at %d", tt.input, tt.literal, tt.pos, scanErr.Literal, scanErr.Pos)
		}
	}
}

func TestLeadingDotIsUnrecognised(t *testing.T) {
	_, err := NewTokeniser(".5").NextToken()

	var scanErr *ScanError
	if !errors.As(err, &scanErr) || scanErr.Kind != UnrecognisedChar || scanErr.Char != '.' {
		t.Errorf("expected '.' to be unrecognised, got %v", err)
	}
}

func TestTokenKindStrings(t *testing.T) {
	expected := map[TokenKind]string{
		Empty: "Empty", EOF: "EOF", IntLiteral: "IntLiteral", FloatLiteral: "FloatLiteral",
		Add: "Add", Sub: "Sub", Mult: "Mult", Div: "Div", LParen: "LParen", RParen: "RParen",
	}

	for kind, name := range expected {
		if kind.String() != name {
			t.Errorf("expected %s, got %s", name, kind)
		}
	}
}
