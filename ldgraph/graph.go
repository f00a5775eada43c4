package ldgraph

import (
	"fmt"
	"slices"
)

// Graph is an immutable resource graph built by Build. It is safe for
// concurrent use by multiple readers.
type Graph struct {
	nodes    map[string]*node
	order    []string
	iris     map[string]string
	contexts []Context
	vocab    string
	edges    int
}

// ByID returns the resource with the given identifier.
func (g *Graph) ByID(id string) (Resource, error) {
	if _, ok := g.nodes[id]; !ok {
		return Resource{}, fmt.Errorf("%w: %s", ErrResourceNotInGraph, id)
	}
	return Resource{id: id, graph: g}, nil
}

// Has reports whether the graph holds a node record for id.
func (g *Graph) Has(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// All returns one resource per node record, in node-record order.
func (g *Graph) All() []Resource {
	out := make([]Resource, len(g.order))
	for i, id := range g.order {
		out[i] = Resource{id: id, graph: g}
	}
	return out
}

// ByType returns the resources for which IsA(typeName) holds, in
// node-record order.
func (g *Graph) ByType(typeName string) []Resource {
	var out []Resource
	for _, id := range g.order {
		if g.nodes[id].isA(typeName) {
			out = append(out, Resource{id: id, graph: g})
		}
	}
	return out
}

// IDs returns the node identifiers in node-record order: described nodes in
// the order they first appear, then reference-only nodes in the order they
// were first referenced.
func (g *Graph) IDs() []string {
	return append([]string(nil), g.order...)
}

// Len returns the number of node records.
func (g *Graph) Len() int { return len(g.order) }

// EdgeCount returns the number of reference edges in the graph.
func (g *Graph) EdgeCount() int { return g.edges }

// Contexts returns the context of each input document, in input order.
func (g *Graph) Contexts() []Context {
	out := make([]Context, len(g.contexts))
	for i, ctx := range g.contexts {
		out[i] = ctx.clone()
	}
	return out
}

// IRI returns the expanded IRI recorded for a stored property or type name
// the first time it was parsed. Unknown names stand for themselves. A result
// that is not an absolute IRI is placed under Vocab.
func (g *Graph) IRI(name string) string {
	if iri, ok := g.iris[name]; ok {
		return g.absolute(iri)
	}
	return g.absolute(name)
}

// Vocab returns the namespace used for names that are not absolute IRIs.
func (g *Graph) Vocab() string { return g.vocab }

func (g *Graph) absolute(iri string) string {
	if hasScheme(iri) {
		return iri
	}
	return g.vocab + iri
}

// hasScheme reports whether s starts with an IRI scheme followed by ':'.
func hasScheme(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case i > 0 && (c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.'):
		case i > 0 && c == ':':
			return true
		default:
			return false
		}
	}
	return false
}

func (n *node) isA(typeName string) bool {
	return slices.Contains(n.types, typeName)
}
