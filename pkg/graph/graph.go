// Package graph serializes discovered module graphs to JSON.
//
// The pipeline uses it as the discovery-cache payload; the CLI uses it
// for --format json graph export. Output is deterministic: nodes are
// sorted by ID, edges keep per-module source order.
package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/filerank/pkg/source"
)

// Marshal converts a module list to indented JSON bytes.
func Marshal(modules []source.Module) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(modules, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write encodes a module list as JSON to w.
func Write(modules []source.Module, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromModules(modules)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Read decodes a JSON graph from r into a module list.
func Read(r io.Reader) ([]source.Module, error) {
	var g Graph
	if err := json.NewDecoder(r).Decode(&g); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return ToModules(g), nil
}

// Unmarshal decodes JSON bytes into a module list.
func Unmarshal(data []byte) ([]source.Module, error) {
	return Read(bytes.NewReader(data))
}
