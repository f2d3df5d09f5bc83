package grammar

import (
	"calc/internal/ast"
)

// Parse parses source and lowers it into the same tree the hand-written
// parser produces, so both engines evaluate and display identically.
func Parse(source string) (ast.Node, error) {
	expr, err := ParseExpression(source)
	if err != nil {
		return nil, err
	}
	return expr.Node(), nil
}

var operators = map[string]ast.Op{
	"+": ast.Add,
	"-": ast.Sub,
	"*": ast.Mult,
	"/": ast.Div,
}

// Node folds the chain into left-associative BinOps.
func (e *Expression) Node() ast.Node {
	node := e.Left.Node()
	for _, r := range e.Rest {
		node = &ast.BinOp{Left: node, Right: r.Term.Node(), Op: operators[r.Operator]}
	}
	return node
}

func (t *Term) Node() ast.Node {
	node := t.Left.Node()
	for _, r := range t.Rest {
		node = &ast.BinOp{Left: node, Right: r.Factor.Node(), Op: operators[r.Operator]}
	}
	return node
}

func (f *Factor) Node() ast.Node {
	switch {
	case f.Float != nil:
		return &ast.FloatLiteral{Value: *f.Float}
	case f.Int != nil:
		return &ast.IntLiteral{Value: *f.Int}
	case f.Negated != nil:
		return &ast.UnaryOp{Right: f.Negated.Node(), Op: ast.Sub}
	default:
		return f.Subexpression.Node()
	}
}
