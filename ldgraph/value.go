package ldgraph

import (
	"fmt"
	"strconv"
)

const (
	// XSDNamespace is the XML Schema datatype namespace.
	XSDNamespace = "http://www.w3.org/2001/XMLSchema#"
	// XSDString is the implicit datatype of plain literals.
	XSDString = XSDNamespace + "string"
	// XSDBoolean is the implicit datatype of native booleans.
	XSDBoolean = XSDNamespace + "boolean"
	// XSDInteger is the implicit datatype of native integral numbers.
	XSDInteger = XSDNamespace + "integer"
	// XSDDouble is the implicit datatype of native non-integral numbers.
	XSDDouble = XSDNamespace + "double"
	// RDFLangString is the implicit datatype of language-tagged literals.
	RDFLangString = "http://www.w3.org/1999/02/22-rdf-syntax-ns#langString"
	// RDFType is the predicate used to export node types.
	RDFType = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
)

// ValueKind identifies the variant of a Value.
type ValueKind uint8

const (
	// KindPlain is an untagged string literal.
	KindPlain ValueKind = iota
	// KindLangString is a language-tagged literal.
	KindLangString
	// KindTyped is a literal with an explicit or implicit datatype.
	KindTyped
	// KindReference is a reference to another node.
	KindReference
)

func (k ValueKind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindLangString:
		return "lang-string"
	case KindTyped:
		return "typed"
	case KindReference:
		return "reference"
	default:
		return fmt.Sprintf("ValueKind(%d)", uint8(k))
	}
}

// Value is one classified property value. The set of implementations is
// closed: PlainLiteral, LangLiteral, TypedLiteral and Reference.
type Value interface {
	Kind() ValueKind
	// Value returns the lexical form, or the target identifier of a Reference.
	Value() string
	// Datatype returns the datatype IRI. Plain literals report XSDString and
	// language-tagged literals report RDFLangString.
	Datatype() string
	// Lang returns the language tag, if any.
	Lang() string
	String() string

	isValue()
}

// PlainLiteral is a string literal without language or datatype.
type PlainLiteral struct {
	Lexical string
}

func (PlainLiteral) isValue() {}

// Kind returns KindPlain.
func (PlainLiteral) Kind() ValueKind { return KindPlain }

// Value returns the lexical form.
func (l PlainLiteral) Value() string { return l.Lexical }

// Datatype returns XSDString.
func (PlainLiteral) Datatype() string { return XSDString }

// Lang returns the empty string.
func (PlainLiteral) Lang() string { return "" }

func (l PlainLiteral) String() string { return strconv.Quote(l.Lexical) }

// LangLiteral is a language-tagged string literal.
type LangLiteral struct {
	Lexical  string
	Language string
}

func (LangLiteral) isValue() {}

// Kind returns KindLangString.
func (LangLiteral) Kind() ValueKind { return KindLangString }

// Value returns the lexical form.
func (l LangLiteral) Value() string { return l.Lexical }

// Datatype returns RDFLangString.
func (LangLiteral) Datatype() string { return RDFLangString }

// Lang returns the language tag.
func (l LangLiteral) Lang() string { return l.Language }

func (l LangLiteral) String() string { return strconv.Quote(l.Lexical) + "@" + l.Language }

// TypedLiteral is a literal with a datatype. Native JSON booleans and
// numbers are stored as typed literals with an XSD datatype.
type TypedLiteral struct {
	Lexical string
	// Type is the datatype, resolved through the document context.
	Type string
}

func (TypedLiteral) isValue() {}

// Kind returns KindTyped.
func (TypedLiteral) Kind() ValueKind { return KindTyped }

// Value returns the lexical form.
func (l TypedLiteral) Value() string { return l.Lexical }

// Datatype returns the datatype IRI.
func (l TypedLiteral) Datatype() string { return l.Type }

// Lang returns the empty string.
func (TypedLiteral) Lang() string { return "" }

func (l TypedLiteral) String() string { return strconv.Quote(l.Lexical) + "^^<" + l.Type + ">" }

// Reference points at another node by identifier. References are stored as
// edges, never as property values.
type Reference struct {
	ID string
}

func (Reference) isValue() {}

// Kind returns KindReference.
func (Reference) Kind() ValueKind { return KindReference }

// Value returns the target identifier.
func (r Reference) Value() string { return r.ID }

// Datatype returns the empty string.
func (Reference) Datatype() string { return "" }

// Lang returns the empty string.
func (Reference) Lang() string { return "" }

func (r Reference) String() string { return "<" + r.ID + ">" }
