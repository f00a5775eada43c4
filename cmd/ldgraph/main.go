package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/geoknoesis/ldgraph-go/ldgraph"
)

// main is the entrypoint for the ldgraph command.
func main() {
	if err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run loads the input documents, builds the graph and renders the requested
// view of it.
func run(stdin io.Reader, stdout, stderr io.Writer, args []string) error {
	cfg, shouldExit, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := setupLogger(cfg.LogLevel, cfg.LogFormat, stderr)
	opts, err := cfg.options(logger)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}

	docs, err := loadDocuments(stdin, cfg.Inputs, opts, logger)
	if err != nil {
		return err
	}
	g, err := ldgraph.Build(docs, opts...)
	if err != nil {
		return fmt.Errorf("build failed [%s]: %w", ldgraph.Code(err), err)
	}
	logger.Info("graph loaded", "inputs", len(cfg.Inputs), "documents", len(docs), "nodes", g.Len())

	return render(stdout, g, cfg)
}

// loadDocuments reads every input; "-" reads standard input.
func loadDocuments(stdin io.Reader, inputs []string, opts []ldgraph.Option, logger *slog.Logger) ([]map[string]interface{}, error) {
	var docs []map[string]interface{}
	for _, input := range inputs {
		read, err := readInput(stdin, input, opts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", input, err)
		}
		logger.Debug("input read", "input", input, "documents", len(read))
		docs = append(docs, read...)
	}
	return docs, nil
}

func readInput(stdin io.Reader, input string, opts []ldgraph.Option) ([]map[string]interface{}, error) {
	if input == "-" {
		return ldgraph.ReadDocuments(stdin, opts...)
	}
	f, err := os.Open(input)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ldgraph.ReadDocuments(f, opts...)
}
