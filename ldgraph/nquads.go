package ldgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Quads exports the graph as statements in node-record order. For each
// node the types come first, then literal properties and outgoing edges,
// each sorted by name. Stored names are exported through Graph.IRI and
// identifiers that are not absolute IRIs are placed under Vocab. Incoming
// edges are derived and not exported.
func (g *Graph) Quads() []Quad {
	var quads []Quad
	for _, id := range g.order {
		n := g.nodes[id]
		subject := g.nodeTerm(id)
		for _, t := range n.types {
			quads = append(quads, Quad{S: subject, P: IRI{Value: RDFType}, O: IRI{Value: g.IRI(t)}})
		}
		for _, name := range sortedKeys(n.properties) {
			pred := IRI{Value: g.IRI(name)}
			for _, v := range n.properties[name] {
				quads = append(quads, Quad{S: subject, P: pred, O: g.literalTerm(v)})
			}
		}
		for _, name := range sortedKeys(n.outgoing) {
			pred := IRI{Value: g.IRI(name)}
			for _, target := range n.outgoing[name] {
				quads = append(quads, Quad{S: subject, P: pred, O: g.nodeTerm(target)})
			}
		}
	}
	return quads
}

func (g *Graph) nodeTerm(id string) Term {
	term := nodeTerm(id)
	if iri, ok := term.(IRI); ok {
		return IRI{Value: g.absolute(iri.Value)}
	}
	return term
}

func (g *Graph) literalTerm(v Value) Literal {
	lit := literalTerm(v)
	if lit.Datatype.Value != "" {
		lit.Datatype.Value = g.absolute(lit.Datatype.Value)
	}
	return lit
}

// WriteNQuads writes the graph as N-Quads.
func (g *Graph) WriteNQuads(w io.Writer) error {
	enc := newNQuadsEncoder(w)
	for _, q := range g.Quads() {
		if err := enc.Write(q); err != nil {
			return err
		}
	}
	return enc.Close()
}

type nqEncoder struct {
	writer *bufio.Writer
	err    error
}

func newNQuadsEncoder(w io.Writer) *nqEncoder {
	return &nqEncoder{writer: bufio.NewWriter(w)}
}

func (e *nqEncoder) Write(q Quad) error {
	if e.err != nil {
		return e.err
	}
	if q.S == nil || q.P.Value == "" || q.O == nil {
		return fmt.Errorf("nquads: missing statement fields")
	}
	line := renderTerm(q.S) + " " + renderIRI(q.P) + " " + renderTerm(q.O)
	if q.G != nil {
		line += " " + renderTerm(q.G)
	}
	line += " .\n"
	_, err := e.writer.WriteString(line)
	if err != nil {
		e.err = err
	}
	return err
}

func (e *nqEncoder) Close() error {
	if e.err != nil {
		return e.err
	}
	return e.writer.Flush()
}

func renderIRI(iri IRI) string {
	return "<" + escapeIRI(iri.Value) + ">"
}

// escapeIRI writes the characters IRIREF excludes as UCHAR escapes.
func escapeIRI(s string) string {
	if !strings.ContainsFunc(s, illegalIRIRune) {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		if illegalIRIRune(r) {
			fmt.Fprintf(&b, `\u%04X`, r)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func illegalIRIRune(r rune) bool {
	if r <= 0x20 {
		return true
	}
	return strings.ContainsRune(`<>"{}|^`+"`"+`\`, r)
}

func renderTerm(term Term) string {
	switch value := term.(type) {
	case IRI:
		return renderIRI(value)
	case BlankNode:
		return value.String()
	case Literal:
		quoted := `"` + escapeLiteral(value.Lexical) + `"`
		if value.Lang != "" {
			return quoted + "@" + value.Lang
		}
		if value.Datatype.Value != "" && value.Datatype.Value != XSDString {
			return quoted + "^^" + renderIRI(value.Datatype)
		}
		return quoted
	default:
		return ""
	}
}

var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// escapeLiteral applies the N-Quads string escapes (ECHAR).
func escapeLiteral(s string) string {
	return literalEscaper.Replace(s)
}
