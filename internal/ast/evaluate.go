package ast

import (
	"fmt"
	"strconv"
)

// Evaluate reduces the tree to a number, children first.
//
// Arithmetic follows IEEE-754: dividing by zero gives an infinity or NaN.
// Literal text that does not parse means the tokeniser produced a bad token,
// which is a programming error and panics.
func Evaluate(n Node) float64 {
	switch n := n.(type) {
	case *BinOp:
		left, right := Evaluate(n.Left), Evaluate(n.Right)
		switch n.Op {
		case Add:
			return left + right
		case Sub:
			return left - right
		case Mult:
			return left * right
		case Div:
			return left / right
		}
		panic(fmt.Sprintf("ast: invalid binary operator %d", int(n.Op)))
	case *UnaryOp:
		if n.Op == Sub {
			return -Evaluate(n.Right)
		}
		return Evaluate(n.Right)
	case *IntLiteral:
		return mustParse(n.Value, INT_LITERAL)
	case *FloatLiteral:
		return mustParse(n.Value, FLOAT_LITERAL)
	default:
		panic(fmt.Sprintf("ast: cannot evaluate %T", n))
	}
}

func mustParse(text string, kind NodeType) float64 {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		panic(fmt.Sprintf("ast: %s value %q is not a number: %v", kind, text, err))
	}
	return v
}
