package ldgraph

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"sort"
	"strconv"
	"strings"
)

// node is the record of one resource identifier.
type node struct {
	id         string
	types      []string
	properties map[string][]Value
	outgoing   map[string][]string
	incoming   map[string][]string
}

func newNode(id string) *node {
	return &node{
		id:         id,
		properties: map[string][]Value{},
		outgoing:   map[string][]string{},
		incoming:   map[string][]string{},
	}
}

// pendingEdge is an inverse edge recorded while parsing. owner is the
// description that produced it; the edge is dropped if that description
// is later overwritten.
type pendingEdge struct {
	target   string
	property string
	source   string
	owner    *node
}

type builder struct {
	opts     Options
	nodes    map[string]*node
	order    []string
	pending  []pendingEdge
	iris     map[string]string
	contexts []Context
	blank    *blankNodeGenerator
	doc      int

	// conflicts holds expansions already reported as sharing a stored name.
	conflicts map[string]bool
}

// Parse builds a graph from documents using default options.
func Parse(docs ...map[string]interface{}) (*Graph, error) {
	return Build(docs)
}

// Build parses every document into one graph and materializes the inverse
// edges of all references. Each document is parsed against its own
// "@context". On error no graph is returned.
func Build(docs []map[string]interface{}, opts ...Option) (*Graph, error) {
	b := &builder{
		opts:      buildOptions(opts),
		nodes:     map[string]*node{},
		iris:      map[string]string{},
		conflicts: map[string]bool{},
		blank:     newBlankNodeGenerator(),
	}
	for i, doc := range docs {
		b.doc = i
		if err := b.parseDocument(doc); err != nil {
			return nil, err
		}
	}
	edges, err := b.mergeInverseEdges()
	if err != nil {
		return nil, err
	}
	b.opts.Logger.Debug("graph built",
		"documents", len(docs),
		"nodes", len(b.order),
		"edges", edges)

	return &Graph{
		nodes:    b.nodes,
		order:    b.order,
		iris:     b.iris,
		contexts: b.contexts,
		vocab:    b.opts.Vocab,
		edges:    edges,
	}, nil
}

func (b *builder) parseDocument(doc map[string]interface{}) error {
	if doc == nil {
		return fmt.Errorf("%w: document %d is null", ErrInvalidDocument, b.doc)
	}
	ctx := NewContext(doc["@context"])
	b.contexts = append(b.contexts, ctx)

	graph, ok := doc["@graph"]
	if !ok || graph == nil {
		if err := b.parseNode(ctx, doc); err != nil {
			return err
		}
		b.opts.Logger.Debug("document parsed", "document", b.doc, "nodes", 1)
		return nil
	}

	var members []interface{}
	switch value := graph.(type) {
	case []interface{}:
		members = value
	case map[string]interface{}:
		members = []interface{}{value}
	default:
		return fmt.Errorf("%w: document %d: @graph must be an array of node objects", ErrInvalidDocument, b.doc)
	}
	for i, member := range members {
		obj, ok := member.(map[string]interface{})
		if !ok {
			return fmt.Errorf("%w: document %d: @graph member %d is not a node object", ErrInvalidDocument, b.doc, i)
		}
		if err := b.parseNode(ctx, obj); err != nil {
			return err
		}
	}
	b.opts.Logger.Debug("document parsed", "document", b.doc, "nodes", len(members))
	return nil
}

func (b *builder) parseNode(ctx Context, obj map[string]interface{}) error {
	id, err := b.nodeID(obj)
	if err != nil {
		return err
	}
	rec, err := b.record(id)
	if err != nil {
		return err
	}

	// Sorted keys keep edge recording deterministic when two keys share a
	// short form.
	keys := make([]string, 0, len(obj))
	for key := range obj {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		raw := obj[key]
		switch key {
		case "@id", "@context":
		case "@type":
			if err := b.parseTypes(ctx, rec, raw); err != nil {
				return err
			}
		default:
			if err := b.parseProperty(ctx, rec, key, raw); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *builder) nodeID(obj map[string]interface{}) (string, error) {
	raw, ok := obj["@id"]
	if !ok {
		return b.blank.next(), nil
	}
	id, ok := raw.(string)
	if !ok || id == "" {
		return "", malformed(b.doc, "", "@id", raw)
	}
	return id, nil
}

// record returns the node record that the next description of id writes to.
func (b *builder) record(id string) (*node, error) {
	prev, exists := b.nodes[id]
	if !exists {
		if err := b.checkNodeLimit(); err != nil {
			return nil, err
		}
		rec := newNode(id)
		b.nodes[id] = rec
		b.order = append(b.order, id)
		return rec, nil
	}

	b.opts.Logger.Warn("resource redescribed",
		"id", id,
		"document", b.doc,
		"policy", b.opts.Redescribe.String())
	if b.opts.Redescribe == RedescribeMerge {
		return prev, nil
	}
	rec := newNode(id)
	b.nodes[id] = rec
	return rec, nil
}

func (b *builder) checkNodeLimit() error {
	if b.opts.MaxNodes > 0 && len(b.order) >= b.opts.MaxNodes {
		return fmt.Errorf("%w (%d)", ErrNodeLimitExceeded, b.opts.MaxNodes)
	}
	return nil
}

// name returns the stored form of a property or type name and remembers its
// expanded IRI for export.
func (b *builder) name(raw string, ctx Context) string {
	expanded := Resolve(raw, ctx)
	stored := ShortForm(raw)
	if b.opts.ExpandNames {
		stored = expanded
	}
	first, ok := b.iris[stored]
	switch {
	case !ok:
		b.iris[stored] = expanded
	case first != expanded && !b.conflicts[expanded]:
		b.conflicts[expanded] = true
		b.opts.Logger.Warn("name expansion conflict",
			"name", stored,
			"exported", first,
			"ignored", expanded,
			"document", b.doc)
	}
	return stored
}

func (b *builder) parseTypes(ctx Context, rec *node, raw interface{}) error {
	var names []string
	switch value := raw.(type) {
	case string:
		names = []string{value}
	case []interface{}:
		for _, item := range value {
			str, ok := item.(string)
			if !ok {
				return malformed(b.doc, rec.id, "@type", raw)
			}
			names = append(names, str)
		}
	default:
		return malformed(b.doc, rec.id, "@type", raw)
	}

	// A merged description only contributes types not seen before.
	known := rec.types
	for _, t := range names {
		name := b.name(t, ctx)
		if slices.Contains(known, name) {
			continue
		}
		rec.types = append(rec.types, name)
	}
	return nil
}

func (b *builder) parseProperty(ctx Context, rec *node, key string, raw interface{}) error {
	name := b.name(key, ctx)
	items, ok := raw.([]interface{})
	if !ok {
		return b.addValue(ctx, rec, key, name, raw)
	}
	for _, item := range items {
		if err := b.addValue(ctx, rec, key, name, item); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) addValue(ctx Context, rec *node, key, name string, raw interface{}) error {
	value, ok := classify(raw, ctx)
	if !ok {
		return malformed(b.doc, rec.id, key, raw)
	}
	ref, isRef := value.(Reference)
	if !isRef {
		rec.properties[name] = append(rec.properties[name], value)
		return nil
	}
	rec.outgoing[name] = append(rec.outgoing[name], ref.ID)
	b.pending = append(b.pending, pendingEdge{
		target:   ref.ID,
		property: name,
		source:   rec.id,
		owner:    rec,
	})
	return nil
}

// mergeInverseEdges turns the pending edges into incoming edge tables,
// creating records for reference-only nodes. It returns the number of
// edges materialized.
func (b *builder) mergeInverseEdges() (int, error) {
	edges := 0
	for _, edge := range b.pending {
		target, err := b.target(edge.target)
		if err != nil {
			return 0, err
		}
		// An overwritten description keeps its targets but not their edges.
		if b.nodes[edge.source] != edge.owner {
			continue
		}
		target.incoming[edge.property] = append(target.incoming[edge.property], edge.source)
		edges++
	}
	b.pending = nil
	return edges, nil
}

// target returns the record for a referenced identifier, creating a
// reference-only record when the identifier was never described.
func (b *builder) target(id string) (*node, error) {
	if rec, ok := b.nodes[id]; ok {
		return rec, nil
	}
	if err := b.checkNodeLimit(); err != nil {
		return nil, err
	}
	rec := newNode(id)
	b.nodes[id] = rec
	b.order = append(b.order, id)
	return rec, nil
}

// classify maps one raw JSON value to a Value. Lists are handled by the
// caller; a nested list is not a valid value.
func classify(raw interface{}, ctx Context) (Value, bool) {
	switch value := raw.(type) {
	case string:
		return PlainLiteral{Lexical: value}, true
	case map[string]interface{}:
		return classifyObject(value, ctx)
	default:
		return nativeLiteral(raw)
	}
}

func classifyObject(obj map[string]interface{}, ctx Context) (Value, bool) {
	if raw, ok := obj["@value"]; ok {
		return classifyValueObject(obj, raw, ctx)
	}
	if id, ok := obj["@id"].(string); ok && id != "" {
		return Reference{ID: id}, true
	}
	return nil, false
}

func classifyValueObject(obj map[string]interface{}, raw interface{}, ctx Context) (Value, bool) {
	if rawLang, ok := obj["@language"]; ok {
		lexical, ok := raw.(string)
		lang, langOK := rawLang.(string)
		if !ok || !langOK {
			return nil, false
		}
		return LangLiteral{Lexical: lexical, Language: lang}, true
	}
	if rawType, ok := obj["@type"]; ok {
		datatype, ok := rawType.(string)
		if !ok {
			return nil, false
		}
		lexical, ok := lexicalForm(raw)
		if !ok {
			return nil, false
		}
		return TypedLiteral{Lexical: lexical, Type: Resolve(datatype, ctx)}, true
	}
	if lexical, ok := raw.(string); ok {
		return PlainLiteral{Lexical: lexical}, true
	}
	return nativeLiteral(raw)
}

// nativeLiteral converts a JSON boolean or number into a typed literal.
func nativeLiteral(raw interface{}) (Value, bool) {
	switch value := raw.(type) {
	case bool:
		return TypedLiteral{Lexical: strconv.FormatBool(value), Type: XSDBoolean}, true
	case float64:
		return floatLiteral(value), true
	case float32:
		return floatLiteral(float64(value)), true
	case int:
		return TypedLiteral{Lexical: strconv.Itoa(value), Type: XSDInteger}, true
	case int64:
		return TypedLiteral{Lexical: strconv.FormatInt(value, 10), Type: XSDInteger}, true
	case int32:
		return TypedLiteral{Lexical: strconv.FormatInt(int64(value), 10), Type: XSDInteger}, true
	case json.Number:
		if !strings.ContainsAny(value.String(), ".eE") {
			return TypedLiteral{Lexical: value.String(), Type: XSDInteger}, true
		}
		f, err := value.Float64()
		if err != nil {
			return nil, false
		}
		return floatLiteral(f), true
	}
	return nil, false
}

func floatLiteral(f float64) TypedLiteral {
	if f == math.Trunc(f) && !math.IsInf(f, 0) && math.Abs(f) < 1e21 {
		return TypedLiteral{Lexical: strconv.FormatFloat(f, 'f', -1, 64), Type: XSDInteger}
	}
	return TypedLiteral{Lexical: strconv.FormatFloat(f, 'E', -1, 64), Type: XSDDouble}
}

// lexicalForm renders the "@value" of a typed value object.
func lexicalForm(raw interface{}) (string, bool) {
	if str, ok := raw.(string); ok {
		return str, true
	}
	lit, ok := nativeLiteral(raw)
	if !ok {
		return "", false
	}
	return lit.Value(), true
}
