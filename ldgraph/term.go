package ldgraph

import (
	"strconv"
	"strings"
)

// TermKind identifies exported RDF term types.
type TermKind uint8

const (
	// TermIRI represents an IRI term.
	TermIRI TermKind = iota
	// TermBlankNode represents a blank node term.
	TermBlankNode
	// TermLiteral represents a literal term.
	TermLiteral
)

// Term is a value that can appear in an exported statement.
type Term interface {
	Kind() TermKind
	String() string
}

// IRI represents an RDF IRI.
type IRI struct {
	// Value is the IRI string value.
	Value string
}

// Kind returns TermIRI.
func (i IRI) Kind() TermKind { return TermIRI }

// String returns the IRI value.
func (i IRI) String() string { return i.Value }

// BlankNode represents an RDF blank node.
type BlankNode struct {
	// ID is the blank node label without the "_:" prefix.
	ID string
}

// Kind returns TermBlankNode.
func (b BlankNode) Kind() TermKind { return TermBlankNode }

// String returns the blank node identifier prefixed with "_:".
func (b BlankNode) String() string { return "_:" + b.ID }

// Literal represents an exported RDF literal.
type Literal struct {
	// Lexical is the lexical form of the literal.
	Lexical string
	// Datatype is the datatype IRI, if any.
	Datatype IRI
	// Lang is the language tag, if any.
	Lang string
}

// Kind returns TermLiteral.
func (l Literal) Kind() TermKind { return TermLiteral }

// String returns a string representation of the literal.
func (l Literal) String() string {
	if l.Lang != "" {
		return strconv.Quote(l.Lexical) + "@" + l.Lang
	}
	if l.Datatype.Value != "" {
		return strconv.Quote(l.Lexical) + "^^<" + l.Datatype.Value + ">"
	}
	return strconv.Quote(l.Lexical)
}

// Quad is one exported statement. G is always nil: a built graph has a
// single default graph.
type Quad struct {
	S Term
	P IRI
	O Term
	G Term
}

// nodeTerm maps a node identifier to an IRI or blank node.
func nodeTerm(id string) Term {
	if label, ok := strings.CutPrefix(id, "_:"); ok {
		return BlankNode{ID: label}
	}
	return IRI{Value: id}
}

// literalTerm converts a stored literal to its exported form.
func literalTerm(v Value) Literal {
	switch value := v.(type) {
	case LangLiteral:
		return Literal{Lexical: value.Lexical, Lang: value.Language}
	case TypedLiteral:
		return Literal{Lexical: value.Lexical, Datatype: IRI{Value: value.Type}}
	default:
		return Literal{Lexical: v.Value()}
	}
}

// blankNodeGenerator hands out sequential blank node labels for nodes
// described without an "@id".
type blankNodeGenerator struct {
	counter int
}

func newBlankNodeGenerator() *blankNodeGenerator {
	return &blankNodeGenerator{}
}

// next returns the next label in the form "_:b1", "_:b2", ...
func (g *blankNodeGenerator) next() string {
	g.counter++
	return BlankNode{ID: "b" + strconv.Itoa(g.counter)}.String()
}
