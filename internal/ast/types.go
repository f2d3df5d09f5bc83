package ast

// NodeType identifies the variant of a Node.
type NodeType int

const (
	ILLEGAL NodeType = iota
	BIN_OP
	UNARY_OP
	INT_LITERAL
	FLOAT_LITERAL
)

var nodeTypeNames = [...]string{
	ILLEGAL:       "Illegal",
	BIN_OP:        "BinOp",
	UNARY_OP:      "UnaryOp",
	INT_LITERAL:   "IntLiteral",
	FLOAT_LITERAL: "FloatLiteral",
}

func (t NodeType) String() string {
	if t < 0 || int(t) >= len(nodeTypeNames) {
		return "Illegal"
	}
	return nodeTypeNames[t]
}

// Op represents the mathematical operations used in BinOp and UnaryOp.
type Op int

const (
	Add Op = iota
	Sub
	Mult
	Div
)

func (op Op) String() string {
	switch op {
	case Add:
		return "Add"
	case Sub:
		return "Sub"
	case Mult:
		return "Mult"
	case Div:
		return "Div"
	default:
		return "Op(?)"
	}
}

// Symbol returns the source character of the operator.
func (op Op) Symbol() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mult:
		return "*"
	case Div:
		return "/"
	default:
		return "?"
	}
}
