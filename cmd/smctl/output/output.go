package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is an output format of describe results.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// the SDK attaches it to every response. It is about transport, not about the resource.
const resultMetadata = "ResultMetadata"

var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat parses an output format name. Empty string is JSON.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", JSON:
		return JSON, nil
	case YAML:
		return YAML, nil
	default:
		return "", fmt.Errorf("%w: %s (json or yaml)", ErrUnknownFormat, s)
	}
}

// Encoder writes values as a stream of documents in a Format.
type Encoder struct {
	format Format
	json   *json.Encoder
	yaml   *yaml.Encoder
}

func NewEncoder(w io.Writer, format Format) *Encoder {
	e := &Encoder{format: format}
	switch format {
	case YAML:
		y := yaml.NewEncoder(w)
		y.SetIndent(2)
		e.yaml = y
	default:
		j := json.NewEncoder(w)
		j.SetIndent("", "    ")
		j.SetEscapeHTML(false)
		e.json = j
	}
	return e
}

// Encode writes v as a document.
//
// v is written with the field names of its JSON encoding.
// If v is an object having "ResultMetadata", the field is dropped.
func (e *Encoder) Encode(v any) error {
	doc, err := normalize(v)
	if err != nil {
		return err
	}
	if e.yaml != nil {
		return e.yaml.Encode(doc)
	}
	return e.json.Encode(doc)
}

// Close flushes buffered documents, if any.
func (e *Encoder) Close() error {
	if e.yaml != nil {
		return e.yaml.Close()
	}
	return nil
}

func normalize(v any) (any, error) {
	buf := new(bytes.Buffer)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	dec := json.NewDecoder(buf)
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if m, ok := doc.(map[string]any); ok {
		delete(m, resultMetadata)
	}
	return numbers(doc), nil
}

// numbers replaces json.Number in doc with int64 or float64.
func numbers(doc any) any {
	switch d := doc.(type) {
	case map[string]any:
		for k, v := range d {
			d[k] = numbers(v)
		}
		return d
	case []any:
		for i, v := range d {
			d[i] = numbers(v)
		}
		return d
	case json.Number:
		if i, err := d.Int64(); err == nil {
			return i
		}
		if f, err := d.Float64(); err == nil {
			return f
		}
		return d.String()
	default:
		return d
	}
}
