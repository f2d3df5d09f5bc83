package grammar

// Expression is a chain of terms joined by + or -.
type Expression struct {
	Left *Term     `@@`
	Rest []*OpTerm `@@*`
}

type OpTerm struct {
	Operator string `@("+" | "-")`
	Term     *Term  `@@`
}

// Term is a chain of factors joined by * or /.
type Term struct {
	Left *Factor     `@@`
	Rest []*OpFactor `@@*`
}

type OpFactor struct {
	Operator string  `@("*" | "/")`
	Factor   *Factor `@@`
}

// Factor is a literal, a negated factor or a parenthesised expression.
type Factor struct {
	Float         *string     `  @Float`
	Int           *string     `| @Int`
	Negated       *Factor     `| "-" @@`
	Subexpression *Expression `| "(" @@ ")"`
}
