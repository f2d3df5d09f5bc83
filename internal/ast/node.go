package ast

// Node is one of *BinOp, *UnaryOp, *IntLiteral or *FloatLiteral.
// The set is closed: the unexported marker keeps other packages from adding variants.
type Node interface {
	NodeType() NodeType
	Evaluate() float64
	String() string
	isNode()
}

// BinOp represents a binary operation
// Example: "1 + 1", "(2 - 3) * 4"
type BinOp struct {
	Left  Node
	Right Node
	Op    Op
}

// UnaryOp represents an operation with only a right-hand side.
// Only Sub has an effect; Add is accepted and leaves the value unchanged.
// Example: "-3", "--(1 + 2)"
type UnaryOp struct {
	Right Node
	Op    Op
}

// IntLiteral holds the source text of an integer constant
// Example: "3", "100"
type IntLiteral struct {
	Value string
}

// FloatLiteral holds the source text of a decimal constant
// Example: "3.14", "1.234"
type FloatLiteral struct {
	Value string
}

func (*BinOp) NodeType() NodeType        { return BIN_OP }
func (*UnaryOp) NodeType() NodeType      { return UNARY_OP }
func (*IntLiteral) NodeType() NodeType   { return INT_LITERAL }
func (*FloatLiteral) NodeType() NodeType { return FLOAT_LITERAL }

func (n *BinOp) Evaluate() float64        { return Evaluate(n) }
func (n *UnaryOp) Evaluate() float64      { return Evaluate(n) }
func (n *IntLiteral) Evaluate() float64   { return Evaluate(n) }
func (n *FloatLiteral) Evaluate() float64 { return Evaluate(n) }

func (n *BinOp) String() string        { return Display(n, 0) }
func (n *UnaryOp) String() string      { return Display(n, 0) }
func (n *IntLiteral) String() string   { return Display(n, 0) }
func (n *FloatLiteral) String() string { return Display(n, 0) }

func (*BinOp) isNode()        {}
func (*UnaryOp) isNode()      {}
func (*IntLiteral) isNode()   {}
func (*FloatLiteral) isNode() {}
