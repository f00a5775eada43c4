package ldgraph

import (
	"bytes"
	"fmt"

	ld "github.com/piprate/json-gold/ld"
)

const nquadsFormat = "application/n-quads"

// Canonical returns the graph as canonical N-Quads (URDNA2015). Two graphs
// holding the same statements produce the same output regardless of input
// order or blank node labels.
func (g *Graph) Canonical() (string, error) {
	dataset, err := g.dataset()
	if err != nil {
		return "", err
	}
	api := ld.NewJsonLdApi()
	opts := ld.NewJsonLdOptions("")
	opts.Format = nquadsFormat
	opts.Algorithm = ld.AlgorithmURDNA2015
	normalized, err := api.Normalize(dataset, opts)
	if err != nil {
		return "", err
	}
	value, ok := normalized.(string)
	if !ok {
		return "", fmt.Errorf("ldgraph: unexpected normalization result %T", normalized)
	}
	return value, nil
}

// Compact converts the graph to a JSON-LD document compacted against ctx.
func (g *Graph) Compact(ctx Context) (map[string]interface{}, error) {
	nquads, err := g.nquads()
	if err != nil {
		return nil, err
	}
	proc := ld.NewJsonLdProcessor()
	opts := ld.NewJsonLdOptions("")
	opts.Format = nquadsFormat
	expanded, err := proc.FromRDF(nquads, opts)
	if err != nil {
		return nil, err
	}

	var compacted interface{}
	compacted, err = proc.Compact(expanded, jsonldContext(ctx), ld.NewJsonLdOptions(""))
	if err != nil {
		return nil, err
	}
	doc, ok := compacted.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("ldgraph: unexpected compaction result %T", compacted)
	}
	return doc, nil
}

func (g *Graph) nquads() (string, error) {
	var buf bytes.Buffer
	if err := g.WriteNQuads(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (g *Graph) dataset() (*ld.RDFDataset, error) {
	nquads, err := g.nquads()
	if err != nil {
		return nil, err
	}
	serializer := &ld.NQuadRDFSerializer{}
	return serializer.Parse(nquads)
}

// jsonldContext renders ctx as a JSON-LD "@context" value.
func jsonldContext(ctx Context) map[string]interface{} {
	out := make(map[string]interface{}, len(ctx))
	for prefix, ns := range ctx {
		if prefix == DefaultPrefix {
			out["@vocab"] = ns
			continue
		}
		out[prefix] = ns
	}
	return map[string]interface{}{"@context": out}
}
