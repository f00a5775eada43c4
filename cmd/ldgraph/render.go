package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/geoknoesis/ldgraph-go/ldgraph"
)

func render(w io.Writer, g *ldgraph.Graph, cfg *Config) error {
	switch {
	case cfg.ID != "":
		r, err := g.ByID(cfg.ID)
		if err != nil {
			return err
		}
		return describe(w, r)
	case cfg.Type != "":
		for _, r := range g.ByType(cfg.Type) {
			if _, err := fmt.Fprintln(w, r.ID()); err != nil {
				return err
			}
		}
		return nil
	}

	switch cfg.Format {
	case formatNQuads:
		return g.WriteNQuads(w)
	case formatCanonical:
		out, err := g.Canonical()
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	case formatJSONLD:
		doc, err := g.Compact(mergedContext(g))
		if err != nil {
			return err
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	default:
		return summarize(w, g)
	}
}

// summarize prints node and edge counts followed by the count of each type.
func summarize(w io.Writer, g *ldgraph.Graph) error {
	counts := map[string]int{}
	for _, r := range g.All() {
		for _, t := range r.Types() {
			counts[t]++
		}
	}
	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}
	sort.Strings(types)

	var b strings.Builder
	fmt.Fprintf(&b, "nodes: %d\nedges: %d\n", g.Len(), g.EdgeCount())
	for _, t := range types {
		fmt.Fprintf(&b, "type %s: %d\n", t, counts[t])
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// describe prints one resource with its types, literals and edges.
func describe(w io.Writer, r ldgraph.Resource) error {
	var b strings.Builder
	b.WriteString(r.ID())
	b.WriteByte('\n')
	if types := r.Types(); len(types) > 0 {
		fmt.Fprintf(&b, "  a %s\n", strings.Join(types, ", "))
	}
	for _, p := range r.Properties() {
		for _, v := range r.GetAll(p) {
			fmt.Fprintf(&b, "  %s: %s\n", p, v)
		}
	}
	for _, p := range r.Relations() {
		for _, target := range r.OutAll(p) {
			fmt.Fprintf(&b, "  %s -> %s\n", p, target.ID())
		}
	}
	for _, p := range r.InverseRelations() {
		for _, source := range r.InAll(p) {
			fmt.Fprintf(&b, "  %s <- %s\n", p, source.ID())
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// mergedContext combines the document contexts; later documents win. Without
// a default prefix the graph's vocab is used, so names exported under it
// compact back to their short form.
func mergedContext(g *ldgraph.Graph) ldgraph.Context {
	merged := ldgraph.Context{}
	for _, ctx := range g.Contexts() {
		for prefix, ns := range ctx {
			merged[prefix] = ns
		}
	}
	if _, ok := merged[ldgraph.DefaultPrefix]; !ok {
		merged[ldgraph.DefaultPrefix] = g.Vocab()
	}
	return merged
}
