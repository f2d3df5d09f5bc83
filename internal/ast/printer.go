package ast

import (
	"fmt"
	"strings"
)

// DisplayIndentation is the number of spaces Display emits per depth level.
const DisplayIndentation = 4

func indent(depth int) string {
	return strings.Repeat(" ", depth*DisplayIndentation)
}

// Display renders the tree as a nested debugging dump:
//
//	BinOp {
//	    left: IntLiteral {
//	        value: 1
//	    }
//	    right: IntLiteral {
//	        value: 2
//	    }
//	    op: Add
//	}
//
// The first line is never indented because, below the root, it is inlined
// after the parent's attribute name.
func Display(n Node, depth int) string {
	var b strings.Builder
	attr := indent(depth + 1)

	switch n := n.(type) {
	case *BinOp:
		b.WriteString("BinOp {\n")
		b.WriteString(fmt.Sprintf("%sleft: %s\n", attr, Display(n.Left, depth+1)))
		b.WriteString(fmt.Sprintf("%sright: %s\n", attr, Display(n.Right, depth+1)))
		b.WriteString(fmt.Sprintf("%sop: %s\n", attr, n.Op))
	case *UnaryOp:
		b.WriteString("UnaryOp {\n")
		b.WriteString(fmt.Sprintf("%sright: %s\n", attr, Display(n.Right, depth+1)))
		b.WriteString(fmt.Sprintf("%sop: %s\n", attr, n.Op))
	case *IntLiteral:
		b.WriteString("IntLiteral {\n")
		b.WriteString(fmt.Sprintf("%svalue: %s\n", attr, n.Value))
	case *FloatLiteral:
		b.WriteString("FloatLiteral {\n")
		b.WriteString(fmt.Sprintf("%svalue: %s\n", attr, n.Value))
	default:
		return fmt.Sprintf("<invalid node %T>", n)
	}

	b.WriteString(indent(depth) + "}")
	return b.String()
}

// Source renders the tree back to a fully parenthesised expression,
// e.g. "((1 + 2) * -3)", to show how an input was grouped.
func Source(n Node) string {
	switch n := n.(type) {
	case *BinOp:
		return fmt.Sprintf("(%s %s %s)", Source(n.Left), n.Op.Symbol(), Source(n.Right))
	case *UnaryOp:
		return n.Op.Symbol() + Source(n.Right)
	case *IntLiteral:
		return n.Value
	case *FloatLiteral:
		return n.Value
	default:
		return "?"
	}
}
