package ldgraph

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteNQuads(t *testing.T) {
	g := mustParse(t, `{
		"@context": {"ex": "http://example.org/"},
		"@id": "http://example.org/a",
		"@type": "ex:Person",
		"ex:name": "Ann \"the\" first\nline",
		"ex:age": 42,
		"ex:motto": {"@value": "carpe diem", "@language": "la"},
		"ex:knows": [{"@id": "http://example.org/b"}, {"@id": "_:friend"}]
	}`)

	var buf bytes.Buffer
	require.NoError(t, g.WriteNQuads(&buf))

	want := `<http://example.org/a> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://example.org/Person> .
<http://example.org/a> <http://example.org/age> "42"^^<http://www.w3.org/2001/XMLSchema#integer> .
<http://example.org/a> <http://example.org/motto> "carpe diem"@la .
<http://example.org/a> <http://example.org/name> "Ann \"the\" first\nline" .
<http://example.org/a> <http://example.org/knows> <http://example.org/b> .
<http://example.org/a> <http://example.org/knows> _:friend .
`
	assert.Equal(t, want, buf.String())
}

func TestQuadsSkipIncomingEdges(t *testing.T) {
	g := mustParse(t, `{"@id": "urn:a", "urn:rel": {"@id": "urn:b"}}`)
	quads := g.Quads()
	require.Len(t, quads, 1)
	assert.Equal(t, IRI{Value: "urn:a"}, quads[0].S)
	assert.Equal(t, IRI{Value: "urn:rel"}, quads[0].P)
	assert.Equal(t, IRI{Value: "urn:b"}, quads[0].O)
	assert.Nil(t, quads[0].G)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteNQuadsPropagatesWriterError(t *testing.T) {
	g := mustParse(t, `{"@id": "urn:a", "urn:p": "v"}`)
	err := g.WriteNQuads(failingWriter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestNQuadsEncoderRejectsIncompleteQuad(t *testing.T) {
	enc := newNQuadsEncoder(&bytes.Buffer{})
	assert.Error(t, enc.Write(Quad{S: IRI{Value: "urn:a"}}))
}

func TestWriteNQuadsWithoutContext(t *testing.T) {
	g := mustParse(t,
		`{"@id": "urn:a", "name": "Joe", "loves": {"@id": "urn:b"}}`,
		`{"@id": "urn:b", "name": "Jane"}`,
	)

	var buf bytes.Buffer
	require.NoError(t, g.WriteNQuads(&buf))

	want := `<urn:a> <urn:ldgraph:name> "Joe" .
<urn:a> <urn:ldgraph:loves> <urn:b> .
<urn:b> <urn:ldgraph:name> "Jane" .
`
	assert.Equal(t, want, buf.String())
}

func TestQuadsRelativeIdentifiersUseVocab(t *testing.T) {
	docs := []map[string]interface{}{
		doc(t, `{"@id": "a", "@type": "Person", "size": {"@value": "9", "@type": "shoeSize"}, "next": {"@id": "_:n"}}`),
	}
	g, err := Build(docs, OptVocab("http://example.org/v#"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, g.WriteNQuads(&buf))

	want := `<http://example.org/v#a> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://example.org/v#Person> .
<http://example.org/v#a> <http://example.org/v#size> "9"^^<http://example.org/v#shoeSize> .
<http://example.org/v#a> <http://example.org/v#next> _:n .
`
	assert.Equal(t, want, buf.String())

	// Stored identifiers are not rewritten.
	assert.True(t, g.Has("a"))
	assert.Equal(t, "http://example.org/v#", g.Vocab())
}

func TestRenderIRIEscapesIllegalCharacters(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"http://ex/plain", "<http://ex/plain>"},
		{"http://ex/has space", `<http://ex/has\u0020space>`},
		{"http://ex/a>b", `<http://ex/a\u003Eb>`},
		{`http://ex/"q"`, `<http://ex/\u0022q\u0022>`},
		{"http://ex/x\\y", `<http://ex/x\u005Cy>`},
		{"http://ex/tab\there", `<http://ex/tab\u0009here>`},
		{"http://ex/café", "<http://ex/café>"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, renderIRI(IRI{Value: tt.in}))
		})
	}
}

func TestWriteNQuadsEscapesIdentifiers(t *testing.T) {
	g := mustParse(t, `{"@id": "http://ex/has space", "http://ex/p": "v"}`)

	var buf bytes.Buffer
	require.NoError(t, g.WriteNQuads(&buf))
	assert.Equal(t, "<http://ex/has\\u0020space> <http://ex/p> \"v\" .\n", buf.String())
}
