package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/geoknoesis/ldgraph-go/ldgraph"
)

// ExitError carries the process exit code for a failed invocation.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Output formats.
const (
	formatSummary   = "summary"
	formatNQuads    = "nquads"
	formatCanonical = "canonical"
	formatJSONLD    = "jsonld"
)

// parseArgs processes command-line arguments. It returns the effective
// configuration, whether the program should exit cleanly, or an ExitError.
func parseArgs(args []string, output io.Writer) (*Config, bool, error) {
	flagSet := flag.NewFlagSet("ldgraph", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
ldgraph - build a navigable resource graph from JSON-LD documents.

Usage:
  ldgraph [options] FILE...

Arguments:
  FILE
    JSON-LD document(s). Each file may hold several concatenated JSON values
    or an array of documents. Use "-" for standard input.

Options:
`)
		flagSet.PrintDefaults()
	}

	configPath := flagSet.String("config", "", "Path to a YAML configuration file.")
	format := flagSet.String("format", formatSummary, "Output: 'summary', 'nquads', 'canonical' or 'jsonld'.")
	id := flagSet.String("id", "", "Describe the resource with this identifier.")
	typeName := flagSet.String("type", "", "List the resources of this type.")
	expandNames := flagSet.Bool("expand-names", false, "Store property and type names expanded through the context.")
	redescribe := flagSet.String("redescribe", "", "Policy for identifiers described twice: 'overwrite' or 'merge'.")
	vocab := flagSet.String("vocab", "", "Namespace for exported names that are not absolute IRIs (default \""+ldgraph.DefaultVocab+"\").")
	maxNodes := flagSet.Int("max-nodes", 0, "Maximum number of nodes, 0 is unlimited.")
	maxInputBytes := flagSet.Int64("max-input-bytes", 0, "Maximum bytes read per input, 0 is unlimited.")
	logLevel := flagSet.String("log-level", "", "Logging level: 'debug', 'info', 'warn' or 'error'.")
	logFormat := flagSet.String("log-format", "", "Log output format: 'text' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	cfg := defaultConfig()
	if *configPath != "" {
		loaded, err := loadConfigFile(*configPath)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		cfg = loaded
	}

	// Flags set explicitly override the configuration file.
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "expand-names":
			cfg.ExpandNames = *expandNames
		case "redescribe":
			cfg.Redescribe = *redescribe
		case "vocab":
			cfg.Vocab = *vocab
		case "max-nodes":
			cfg.MaxNodes = *maxNodes
		case "max-input-bytes":
			cfg.MaxInputBytes = *maxInputBytes
		case "log-level":
			cfg.LogLevel = *logLevel
		case "log-format":
			cfg.LogFormat = *logFormat
		}
	})
	cfg.Format = strings.ToLower(*format)
	cfg.ID = *id
	cfg.Type = *typeName
	cfg.Inputs = flagSet.Args()

	if len(cfg.Inputs) == 0 {
		flagSet.Usage()
		return nil, true, nil
	}
	if err := cfg.validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	return cfg, false, nil
}
