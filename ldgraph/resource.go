package ldgraph

import (
	"fmt"
	"sort"
)

// Resource is a cursor over one node of a Graph. It holds only the
// identifier and the graph, so it is cheap to copy. Two resources are equal
// (==) exactly when they share identifier and graph.
type Resource struct {
	id    string
	graph *Graph
}

// ID returns the node identifier.
func (r Resource) ID() string { return r.id }

// Graph returns the graph the resource belongs to.
func (r Resource) Graph() *Graph { return r.graph }

// Equal reports whether r and other denote the same node of the same graph.
func (r Resource) Equal(other Resource) bool { return r == other }

func (r Resource) String() string { return r.id }

// record returns the node record; the zero Resource has an empty one.
func (r Resource) record() *node {
	if r.graph != nil {
		if n, ok := r.graph.nodes[r.id]; ok {
			return n
		}
	}
	return newNode(r.id)
}

// Get returns the first value of property.
func (r Resource) Get(property string) (Value, error) {
	values := r.record().properties[property]
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrPropertyNotFound, property)
	}
	return values[0], nil
}

// GetAll returns every value of property in document order, or an empty
// slice if there is none.
func (r Resource) GetAll(property string) []Value {
	values := r.record().properties[property]
	out := make([]Value, len(values))
	copy(out, values)
	return out
}

// Has reports whether the resource has at least one value for property.
func (r Resource) Has(property string) bool {
	return len(r.record().properties[property]) > 0
}

// Count returns the number of values of property.
func (r Resource) Count(property string) int {
	return len(r.record().properties[property])
}

// Out follows the first outgoing edge labeled property.
func (r Resource) Out(property string) (Resource, error) {
	targets := r.record().outgoing[property]
	if len(targets) == 0 {
		return Resource{}, fmt.Errorf("outgoing %w: %s", ErrRelationNotFound, property)
	}
	return Resource{id: targets[0], graph: r.graph}, nil
}

// OutAll follows every outgoing edge labeled property, in document order.
func (r Resource) OutAll(property string) []Resource {
	return r.cursors(r.record().outgoing[property])
}

// HasOut reports whether an outgoing edge labeled property exists.
func (r Resource) HasOut(property string) bool {
	return len(r.record().outgoing[property]) > 0
}

// In follows the first incoming edge labeled property back to its source.
func (r Resource) In(property string) (Resource, error) {
	sources := r.record().incoming[property]
	if len(sources) == 0 {
		return Resource{}, fmt.Errorf("incoming %w: %s", ErrRelationNotFound, property)
	}
	return Resource{id: sources[0], graph: r.graph}, nil
}

// InAll returns the sources of every incoming edge labeled property, in the
// order the edges were recorded.
func (r Resource) InAll(property string) []Resource {
	return r.cursors(r.record().incoming[property])
}

// HasIn reports whether an incoming edge labeled property exists.
func (r Resource) HasIn(property string) bool {
	return len(r.record().incoming[property]) > 0
}

// IsA reports whether typeName is one of the resource's types.
func (r Resource) IsA(typeName string) bool {
	return r.record().isA(typeName)
}

// Types returns the resource's type names in document order.
func (r Resource) Types() []string {
	return append([]string(nil), r.record().types...)
}

// Properties returns the sorted names of the resource's literal properties.
func (r Resource) Properties() []string {
	return sortedKeys(r.record().properties)
}

// Relations returns the sorted names of the resource's outgoing edges.
func (r Resource) Relations() []string {
	return sortedKeys(r.record().outgoing)
}

// InverseRelations returns the sorted names of the resource's incoming edges.
func (r Resource) InverseRelations() []string {
	return sortedKeys(r.record().incoming)
}

func (r Resource) cursors(ids []string) []Resource {
	out := make([]Resource, len(ids))
	for i, id := range ids {
		out[i] = Resource{id: id, graph: r.graph}
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
