package ldgraph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalIgnoresOrderAndBlankLabels(t *testing.T) {
	g1 := mustParse(t,
		`{"@id": "http://example.org/a", "http://example.org/name": "A", "http://example.org/knows": {"@id": "_:x"}}`,
		`{"@id": "_:x", "http://example.org/name": "X"}`,
	)
	g2 := mustParse(t,
		`{"@id": "_:other", "http://example.org/name": "X"}`,
		`{"@id": "http://example.org/a", "http://example.org/knows": {"@id": "_:other"}, "http://example.org/name": "A"}`,
	)

	c1, err := g1.Canonical()
	require.NoError(t, err)
	c2, err := g2.Canonical()
	require.NoError(t, err)

	assert.Equal(t, c1, c2)
	assert.Contains(t, c1, `<http://example.org/a> <http://example.org/knows> _:c14n0 .`)
	assert.Contains(t, c1, `_:c14n0 <http://example.org/name> "X" .`)
	assert.Equal(t, 3, strings.Count(c1, "\n"))
}

func TestCanonicalDiffersForDifferentGraphs(t *testing.T) {
	g1 := mustParse(t, `{"@id": "http://example.org/a", "http://example.org/name": "A"}`)
	g2 := mustParse(t, `{"@id": "http://example.org/a", "http://example.org/name": "B"}`)

	c1, err := g1.Canonical()
	require.NoError(t, err)
	c2, err := g2.Canonical()
	require.NoError(t, err)
	assert.NotEqual(t, c1, c2)
}

func TestCompact(t *testing.T) {
	g := mustParse(t, `{
		"@context": {"ex": "http://example.org/"},
		"@id": "http://example.org/a",
		"ex:name": "Ann"
	}`)

	out, err := g.Compact(Context{"ex": "http://example.org/"})
	require.NoError(t, err)
	assert.Equal(t, "Ann", out["ex:name"])
	assert.Contains(t, out, "@context")
}

func TestJSONLDContext(t *testing.T) {
	got := jsonldContext(Context{DefaultPrefix: "http://v/", "ex": "http://e/"})
	assert.Equal(t, map[string]interface{}{
		"@context": map[string]interface{}{"@vocab": "http://v/", "ex": "http://e/"},
	}, got)
}

func TestCanonicalWithoutContext(t *testing.T) {
	g := mustParse(t,
		`{"@id": "urn:a", "name": "Joe", "loves": {"@id": "urn:b"}}`,
		`{"@id": "urn:b", "name": "Jane", "loves": {"@id": "urn:a"}}`,
	)

	out, err := g.Canonical()
	require.NoError(t, err)
	assert.Contains(t, out, `<urn:a> <urn:ldgraph:loves> <urn:b> .`)
	assert.Contains(t, out, `<urn:b> <urn:ldgraph:name> "Jane" .`)
	assert.Equal(t, 4, strings.Count(out, "\n"))
}

func TestCanonicalEscapedIdentifier(t *testing.T) {
	g := mustParse(t, `{"@id": "http://ex/has space", "http://ex/p": "v"}`)

	out, err := g.Canonical()
	require.NoError(t, err)
	assert.NotContains(t, out, "has space")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestCompactWithoutContext(t *testing.T) {
	g := mustParse(t, `{"@id": "urn:a", "name": "Joe"}`)

	expanded, err := g.Compact(Context{})
	require.NoError(t, err)
	assert.Equal(t, "Joe", expanded["urn:ldgraph:name"])

	out, err := g.Compact(Context{DefaultPrefix: g.Vocab()})
	require.NoError(t, err)
	assert.Equal(t, "urn:a", out["@id"])
	assert.Equal(t, "Joe", out["name"])
}

func TestCompactRoundTripDocuments(t *testing.T) {
	g := mustParse(t,
		`{"@id": "urn:a", "name": "Joe", "loves": {"@id": "urn:b"}}`,
		`{"@id": "urn:b", "name": "Jane", "loves": {"@id": "urn:a"}}`,
	)

	out, err := g.Compact(Context{DefaultPrefix: g.Vocab()})
	require.NoError(t, err)
	nodes, ok := out["@graph"].([]interface{})
	require.True(t, ok)
	assert.Len(t, nodes, 2)
}
