package ldgraph

import (
	"fmt"
	"log/slog"
	"strings"
)

// RedescribePolicy decides what happens when a node identifier is described
// more than once across the input documents.
type RedescribePolicy uint8

const (
	// RedescribeOverwrite keeps only the last description. Properties, types,
	// outgoing edges and the inverse edges produced by earlier descriptions
	// are discarded, so no target keeps an incoming edge its source no longer
	// states. Targets referenced only by a discarded description still get a
	// node record, with no incoming edges.
	RedescribeOverwrite RedescribePolicy = iota
	// RedescribeMerge appends every description in document order. Duplicate
	// type names are dropped.
	RedescribeMerge
)

func (p RedescribePolicy) String() string {
	switch p {
	case RedescribeOverwrite:
		return "overwrite"
	case RedescribeMerge:
		return "merge"
	default:
		return fmt.Sprintf("RedescribePolicy(%d)", uint8(p))
	}
}

// ParseRedescribePolicy parses "overwrite" or "merge" (case-insensitive).
// The empty string selects RedescribeOverwrite.
func ParseRedescribePolicy(s string) (RedescribePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "overwrite":
		return RedescribeOverwrite, nil
	case "merge":
		return RedescribeMerge, nil
	default:
		return 0, fmt.Errorf("ldgraph: unknown redescribe policy %q", s)
	}
}

// DefaultVocab is the namespace exported names fall back to when they do not
// expand to an absolute IRI.
const DefaultVocab = "urn:ldgraph:"

// Option configures build and read behavior.
type Option func(*Options)

// Options configures the graph builder and the document reader.
type Options struct {
	// ExpandNames stores property and type names expanded through the
	// document context instead of their short form.
	ExpandNames bool
	// Redescribe selects the policy for identifiers described more than once.
	Redescribe RedescribePolicy
	// Vocab is prepended to names and identifiers that are not absolute IRIs
	// when the graph is exported. Empty means DefaultVocab.
	Vocab string

	// Security limits for untrusted input. Zero means unlimited.
	MaxNodes      int
	MaxInputBytes int64

	// Logger receives build diagnostics. Nil discards them.
	Logger *slog.Logger
}

func defaultOptions() Options {
	return Options{
		Redescribe: RedescribeOverwrite,
		Vocab:      DefaultVocab,
	}
}

func buildOptions(opts []Option) Options {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.Vocab == "" {
		options.Vocab = DefaultVocab
	}
	if options.Logger == nil {
		options.Logger = slog.New(slog.DiscardHandler)
	}
	return options
}

// Option helpers

// OptExpandNames stores property and type names in expanded form.
func OptExpandNames() Option {
	return func(opts *Options) {
		opts.ExpandNames = true
	}
}

// OptRedescribe sets the redescribe policy.
func OptRedescribe(policy RedescribePolicy) Option {
	return func(opts *Options) {
		opts.Redescribe = policy
	}
}

// OptVocab sets the namespace used to export names that are not absolute.
func OptVocab(iri string) Option {
	return func(opts *Options) {
		opts.Vocab = iri
	}
}

// OptMaxNodes limits the number of node records in a built graph.
func OptMaxNodes(maxNodes int) Option {
	return func(opts *Options) {
		opts.MaxNodes = maxNodes
	}
}

// OptMaxInputBytes limits the number of bytes the reader consumes.
func OptMaxInputBytes(maxBytes int64) Option {
	return func(opts *Options) {
		opts.MaxInputBytes = maxBytes
	}
}

// OptLogger sets the logger used for build diagnostics.
func OptLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}
