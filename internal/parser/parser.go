package parser

import "calc/internal/ast"

// Parser builds an abstract syntax tree out of an expression.
//
// Grammar:
//
//	<expr>      ::= <mult_expr> ((Add | Sub) <mult_expr>)*
//	<mult_expr> ::= <entity> ((Mult | Div) <entity>)*
//	<entity>    ::= IntLiteral | FloatLiteral | Sub <entity> | LParen <expr> RParen
//
// The parser keeps exactly one token of lookahead.
type Parser struct {
	tokeniser    *Tokeniser
	currentToken Token
}

func New(source string) *Parser {
	return &Parser{
		tokeniser:    NewTokeniser(source),
		currentToken: Token{Kind: Empty},
	}
}

// Parse parses a single expression with a fresh parser.
func Parse(source string) (ast.Node, error) {
	return New(source).Parse()
}

// SetSource replaces the expression to parse, discarding any tokeniser state.
func (p *Parser) SetSource(source string) {
	p.tokeniser = NewTokeniser(source)
}

// Parse is the entry point of the parser. Tokens after a complete
// expression are left unread.
func (p *Parser) Parse() (ast.Node, error) {
	tok, err := p.tokeniser.NextToken()
	if err != nil {
		return nil, err
	}
	p.currentToken = tok

	return p.expr()
}

// eat checks that the lookahead is of the expected kind and moves to the next token.
func (p *Parser) eat(kind TokenKind) error {
	if p.currentToken.Kind != kind {
		return &ParseError{Kind: TokenMismatch, Expected: kind, Found: p.currentToken}
	}

	tok, err := p.tokeniser.NextToken()
	if err != nil {
		return err
	}
	p.currentToken = tok
	return nil
}

func (p *Parser) entity() (ast.Node, error) {
	tok := p.currentToken

	switch tok.Kind {
	case IntLiteral:
		if err := p.eat(IntLiteral); err != nil {
			return nil, err
		}
		return &ast.IntLiteral{Value: tok.Value}, nil

	case FloatLiteral:
		if err := p.eat(FloatLiteral); err != nil {
			return nil, err
		}
		return &ast.FloatLiteral{Value: tok.Value}, nil

	case Sub:
		if err := p.eat(Sub); err != nil {
			return nil, err
		}
		right, err := p.entity()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Right: right, Op: ast.Sub}, nil

	case LParen:
		// Parentheses only shape the tree, they have no node of their own.
		if err := p.eat(LParen); err != nil {
			return nil, err
		}
		node, err := p.expr()
		if err != nil {
			return nil, err
		}
		if err := p.eat(RParen); err != nil {
			return nil, err
		}
		return node, nil
	}

	return nil, &ParseError{Kind: UnexpectedToken, Found: tok}
}

var (
	additiveOps       = map[TokenKind]ast.Op{Add: ast.Add, Sub: ast.Sub}
	multiplicativeOps = map[TokenKind]ast.Op{Mult: ast.Mult, Div: ast.Div}
)

func (p *Parser) expr() (ast.Node, error) {
	return p.binary(p.multExpr, additiveOps)
}

func (p *Parser) multExpr() (ast.Node, error) {
	return p.binary(p.entity, multiplicativeOps)
}

// binary folds operand (op operand)* into a left-associative chain of BinOps.
func (p *Parser) binary(operand func() (ast.Node, error), ops map[TokenKind]ast.Op) (ast.Node, error) {
	node, err := operand()
	if err != nil {
		return nil, err
	}

	for {
		op, ok := ops[p.currentToken.Kind]
		if !ok {
			return node, nil
		}
		if err := p.eat(p.currentToken.Kind); err != nil {
			return nil, err
		}

		right, err := operand()
		if err != nil {
			return nil, err
		}
		node = &ast.BinOp{Left: node, Right: right, Op: op}
	}
}
