package ldgraph

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a programmatic error code for error handling.
type ErrorCode string

const (
	// ErrCodeMalformedValue indicates a property value with an unrecognized shape.
	ErrCodeMalformedValue ErrorCode = "MALFORMED_VALUE"
	// ErrCodeInvalidDocument indicates a document that is not a node object or node list.
	ErrCodeInvalidDocument ErrorCode = "INVALID_DOCUMENT"
	// ErrCodeResourceNotInGraph indicates a lookup of an unknown identifier.
	ErrCodeResourceNotInGraph ErrorCode = "RESOURCE_NOT_IN_GRAPH"
	// ErrCodePropertyNotFound indicates a literal accessor on a missing property.
	ErrCodePropertyNotFound ErrorCode = "PROPERTY_NOT_FOUND"
	// ErrCodeRelationNotFound indicates a reference accessor on a missing edge.
	ErrCodeRelationNotFound ErrorCode = "RELATION_NOT_FOUND"
	// ErrCodeNodeLimitExceeded indicates that the configured node limit was exceeded.
	ErrCodeNodeLimitExceeded ErrorCode = "NODE_LIMIT_EXCEEDED"
	// ErrCodeInputTooLarge indicates that the reader input exceeded the configured limit.
	ErrCodeInputTooLarge ErrorCode = "INPUT_TOO_LARGE"
	// ErrCodeUnknown is returned for errors that did not originate in this package.
	ErrCodeUnknown ErrorCode = "UNKNOWN"
)

var (
	// ErrMalformedValue indicates a property value that cannot be parsed.
	ErrMalformedValue = errors.New("cannot parse property")
	// ErrInvalidDocument indicates a document with an unsupported top-level shape.
	ErrInvalidDocument = errors.New("invalid document")
	// ErrResourceNotInGraph indicates a lookup of an identifier with no node record.
	ErrResourceNotInGraph = errors.New("resource not in graph")
	// ErrPropertyNotFound indicates that a resource has no value for a property.
	ErrPropertyNotFound = errors.New("property not defined for resource")
	// ErrRelationNotFound indicates that a resource has no edge for a property.
	ErrRelationNotFound = errors.New("relation not defined for resource")
	// ErrNodeLimitExceeded indicates that the maximum number of node records was exceeded.
	ErrNodeLimitExceeded = errors.New("ldgraph: maximum number of nodes exceeded")
	// ErrInputTooLarge indicates that the input exceeded MaxInputBytes.
	ErrInputTooLarge = errors.New("ldgraph: input exceeds configured limit")
)

// Code returns the error code for an error.
// Returns empty string for nil errors.
func Code(err error) ErrorCode {
	if err == nil {
		return ""
	}
	switch {
	case errors.Is(err, ErrMalformedValue):
		return ErrCodeMalformedValue
	case errors.Is(err, ErrInvalidDocument):
		return ErrCodeInvalidDocument
	case errors.Is(err, ErrResourceNotInGraph):
		return ErrCodeResourceNotInGraph
	case errors.Is(err, ErrPropertyNotFound):
		return ErrCodePropertyNotFound
	case errors.Is(err, ErrRelationNotFound):
		return ErrCodeRelationNotFound
	case errors.Is(err, ErrNodeLimitExceeded):
		return ErrCodeNodeLimitExceeded
	case errors.Is(err, ErrInputTooLarge):
		return ErrCodeInputTooLarge
	}
	return ErrCodeUnknown
}

// MalformedValueError provides structured context for a value the builder
// could not classify.
type MalformedValueError struct {
	Document int    // 0-based index of the input document
	Node     string // Identifier of the node being parsed
	Property string // Property (or keyword) holding the value
	Raw      string // JSON excerpt of the offending value
	Err      error  // Underlying error
}

func (e *MalformedValueError) Error() string {
	var msg strings.Builder
	fmt.Fprintf(&msg, "document %d", e.Document)
	if e.Node != "" {
		fmt.Fprintf(&msg, ", node %s", e.Node)
	}
	msg.WriteString(": ")
	msg.WriteString(e.Err.Error())
	if e.Property != "" {
		fmt.Fprintf(&msg, " %q", e.Property)
	}
	if e.Raw != "" {
		msg.WriteString(": ")
		msg.WriteString(e.Raw)
	}
	return msg.String()
}

func (e *MalformedValueError) Unwrap() error { return e.Err }

// malformed reports raw as an unparseable value of property.
func malformed(doc int, node, property string, raw interface{}) error {
	return &MalformedValueError{
		Document: doc,
		Node:     node,
		Property: property,
		Raw:      excerpt(raw),
		Err:      ErrMalformedValue,
	}
}

// excerpt renders raw as JSON, truncated to a readable length.
func excerpt(raw interface{}) string {
	const maxExcerptLen = 80

	data, err := json.Marshal(raw)
	if err != nil {
		return fmt.Sprintf("%v", raw)
	}
	if len(data) > maxExcerptLen {
		return string(data[:maxExcerptLen]) + "..."
	}
	return string(data)
}
