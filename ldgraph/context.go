package ldgraph

import "strings"

// DefaultPrefix is the context key of the default vocabulary.
const DefaultPrefix = ""

// Context maps prefixes to namespaces. The empty prefix holds the default
// vocabulary.
type Context map[string]string

// NewContext builds a Context from a raw "@context" value.
//
// A string becomes the default vocabulary. An object is used as the prefix
// table directly, with "@vocab" standing for the default vocabulary. Entries
// whose value is not a string (expanded term definitions) and every other
// shape are ignored.
func NewContext(raw interface{}) Context {
	ctx := Context{}
	switch value := raw.(type) {
	case string:
		ctx[DefaultPrefix] = value
	case map[string]interface{}:
		for key, ns := range value {
			str, ok := ns.(string)
			if !ok {
				continue
			}
			if key == "@vocab" {
				key = DefaultPrefix
			}
			ctx[key] = str
		}
	case map[string]string:
		for key, ns := range value {
			if key == "@vocab" {
				key = DefaultPrefix
			}
			ctx[key] = ns
		}
	}
	return ctx
}

// Resolve expands a prefixed name through ctx.
//
// The name is split on its first colon; a name without a colon has the
// default prefix. If the prefix maps to a non-empty namespace the result is
// namespace + local part, otherwise name is returned unchanged.
func Resolve(name string, ctx Context) string {
	prefix, local := DefaultPrefix, name
	if i := strings.IndexByte(name, ':'); i >= 0 {
		prefix, local = name[:i], name[i+1:]
	}
	if ns := ctx[prefix]; ns != "" {
		return ns + local
	}
	return name
}

// ShortForm returns the part of name after its last ':', '#' or '/'.
// A name without any of them is returned whole.
func ShortForm(name string) string {
	if i := strings.LastIndexAny(name, ":#/"); i >= 0 {
		return name[i+1:]
	}
	return name
}

// ShortForms applies ShortForm to each name, preserving order.
func ShortForms(names []string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = ShortForm(name)
	}
	return out
}

// Resolve expands name through the context.
func (c Context) Resolve(name string) string { return Resolve(name, c) }

// clone returns an independent copy of the context.
func (c Context) clone() Context {
	out := make(Context, len(c))
	for key, ns := range c {
		out[key] = ns
	}
	return out
}
