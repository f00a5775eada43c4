package ldgraph

import "testing"

func TestValueVariants(t *testing.T) {
	plain := PlainLiteral{Lexical: "plain"}
	if plain.Kind() != KindPlain || plain.Datatype() != XSDString || plain.Lang() != "" {
		t.Fatalf("unexpected plain literal: %v %s %q", plain.Kind(), plain.Datatype(), plain.Lang())
	}
	if plain.String() != `"plain"` {
		t.Fatalf("unexpected plain string: %s", plain.String())
	}

	lang := LangLiteral{Lexical: "hi", Language: "en"}
	if lang.Kind() != KindLangString || lang.Datatype() != RDFLangString || lang.Lang() != "en" {
		t.Fatalf("unexpected lang literal: %v %s %q", lang.Kind(), lang.Datatype(), lang.Lang())
	}
	if lang.String() != `"hi"@en` {
		t.Fatalf("unexpected lang string: %s", lang.String())
	}

	typed := TypedLiteral{Lexical: "1", Type: "http://example.org/int"}
	if typed.Kind() != KindTyped || typed.Datatype() != "http://example.org/int" {
		t.Fatalf("unexpected typed literal: %v %s", typed.Kind(), typed.Datatype())
	}
	if typed.String() != `"1"^^<http://example.org/int>` {
		t.Fatalf("unexpected typed string: %s", typed.String())
	}

	ref := Reference{ID: "urn:x"}
	if ref.Kind() != KindReference || ref.Value() != "urn:x" || ref.Datatype() != "" {
		t.Fatalf("unexpected reference: %v %s", ref.Kind(), ref.Value())
	}
	if ref.String() != "<urn:x>" {
		t.Fatalf("unexpected reference string: %s", ref.String())
	}
}

func TestValueKindString(t *testing.T) {
	if KindLangString.String() != "lang-string" {
		t.Fatalf("unexpected kind name: %s", KindLangString)
	}
	if ValueKind(9).String() != "ValueKind(9)" {
		t.Fatalf("unexpected unknown kind name: %s", ValueKind(9))
	}
}

func TestTermStrings(t *testing.T) {
	if nodeTerm("_:b1").String() != "_:b1" || nodeTerm("_:b1").Kind() != TermBlankNode {
		t.Fatalf("expected blank node term")
	}
	if nodeTerm("urn:x").Kind() != TermIRI {
		t.Fatalf("expected IRI term")
	}
	lit := literalTerm(LangLiteral{Lexical: "hei", Language: "nb"})
	if lit.String() != `"hei"@nb` {
		t.Fatalf("unexpected literal term: %s", lit.String())
	}
	lit = literalTerm(TypedLiteral{Lexical: "1", Type: XSDInteger})
	if lit.Datatype.Value != XSDInteger {
		t.Fatalf("unexpected datatype: %s", lit.Datatype.Value)
	}
}
