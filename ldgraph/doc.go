// Package ldgraph builds a navigable in-memory resource graph from JSON-LD
// style documents.
//
// Copyright 2026 Geoknoesis LLC (www.geoknoesis.com)
//
// It focuses on reading linked data as plain objects rather than triples:
//   - Build: Build() and Parse() turn decoded documents into an immutable Graph.
//   - Read: ReadDocuments() and ParseReader() decode JSON input first.
//   - Navigate: Graph.ByID(), Graph.All() and Graph.ByType() return Resource
//     cursors with literal accessors (Get, GetAll, Has, Count) and edge
//     accessors in both directions (Out, OutAll, HasOut, In, InAll, HasIn).
//   - Export: Graph.Quads(), Graph.WriteNQuads(), Graph.Canonical() and
//     Graph.Compact().
//
// Every reference {"@id": ...} produces an outgoing edge on its subject and
// an incoming edge on its target, so a graph can be walked backwards even
// though the source documents only state one direction. Identifiers that are
// only ever referenced still get a node record.
//
// Property and type names are stored in short form, the part after the last
// ':', '#' or '/'. Only datatypes of typed literals are expanded through the
// document "@context". OptExpandNames stores expanded names instead.
//
// Example:
//
//	g, err := ldgraph.Parse(
//	    map[string]interface{}{"@id": "urn:a", "name": "Joe", "loves": map[string]interface{}{"@id": "urn:b"}},
//	    map[string]interface{}{"@id": "urn:b", "name": "Jane"},
//	)
//	if err != nil {
//	    // handle error
//	}
//	b, _ := g.ByID("urn:b")
//	lover, _ := b.In("loves")
//	name, _ := lover.Get("name") // "Joe"
//
// When two descriptions share an identifier the last one wins by default;
// OptRedescribe(RedescribeMerge) appends them instead.
//
// A Graph is never mutated after Build returns and may be read from many
// goroutines at once.
package ldgraph
