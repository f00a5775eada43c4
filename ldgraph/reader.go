package ldgraph

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ReadDocuments decodes a stream of JSON values into documents. Each value
// is either a document object or an array of document objects. Numbers are
// kept as json.Number so integer lexical forms survive unchanged.
func ReadDocuments(r io.Reader, opts ...Option) ([]map[string]interface{}, error) {
	options := buildOptions(opts)
	if options.MaxInputBytes > 0 {
		r = &limitedReader{r: r, remaining: options.MaxInputBytes}
	}

	dec := json.NewDecoder(r)
	dec.UseNumber()

	var docs []map[string]interface{}
	for index := 0; ; index++ {
		var data interface{}
		err := dec.Decode(&data)
		if err == io.EOF {
			return docs, nil
		}
		if err != nil {
			if errors.Is(err, ErrInputTooLarge) {
				return nil, fmt.Errorf("%w (%d bytes)", ErrInputTooLarge, options.MaxInputBytes)
			}
			return nil, fmt.Errorf("%w: value %d: %v", ErrInvalidDocument, index, err)
		}
		switch value := data.(type) {
		case map[string]interface{}:
			docs = append(docs, value)
		case []interface{}:
			for i, item := range value {
				obj, ok := item.(map[string]interface{})
				if !ok {
					return nil, fmt.Errorf("%w: value %d: element %d is not an object", ErrInvalidDocument, index, i)
				}
				docs = append(docs, obj)
			}
		default:
			return nil, fmt.Errorf("%w: value %d is not an object or array", ErrInvalidDocument, index)
		}
	}
}

// ParseReader reads every document from r and builds one graph from them.
func ParseReader(r io.Reader, opts ...Option) (*Graph, error) {
	docs, err := ReadDocuments(r, opts...)
	if err != nil {
		return nil, err
	}
	return Build(docs, opts...)
}

// limitedReader fails with ErrInputTooLarge once more than remaining bytes
// have been requested past the limit.
type limitedReader struct {
	r         io.Reader
	remaining int64
}

func (l *limitedReader) Read(p []byte) (int, error) {
	if l.remaining <= 0 {
		// Probe for one more byte to tell a clean EOF from an overflow.
		var probe [1]byte
		n, err := l.r.Read(probe[:])
		if n > 0 {
			return 0, ErrInputTooLarge
		}
		return 0, err
	}
	if int64(len(p)) > l.remaining {
		p = p[:l.remaining]
	}
	n, err := l.r.Read(p)
	l.remaining -= int64(n)
	return n, err
}
