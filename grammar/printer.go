package grammar

import (
	"strings"
)

func (e *Expression) String() string {
	var b strings.Builder
	b.WriteString(e.Left.String())
	for _, r := range e.Rest {
		b.WriteString(" " + r.Operator + " " + r.Term.String())
	}
	return b.String()
}

func (t *Term) String() string {
	var b strings.Builder
	b.WriteString(t.Left.String())
	for _, r := range t.Rest {
		b.WriteString(" " + r.Operator + " " + r.Factor.String())
	}
	return b.String()
}

func (f *Factor) String() string {
	switch {
	case f.Float != nil:
		return *f.Float
	case f.Int != nil:
		return *f.Int
	case f.Negated != nil:
		return "-" + f.Negated.String()
	case f.Subexpression != nil:
		return "(" + f.Subexpression.String() + ")"
	default:
		return ""
	}
}
