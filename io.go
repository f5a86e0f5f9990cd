package jdiff

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// ReadFile parses the JSON document stored at path
func ReadFile(path string) (interface{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newOpenInputError(path, err)
	}
	defer f.Close()

	v, err := Decode(bufio.NewReader(f))
	if err != nil {
		return nil, newParseInputError(path, err)
	}
	return v, nil
}

// Decode reads exactly one JSON document from r. numbers are decoded as
// json.Number so they are written back out as they were read
func Decode(r io.Reader) (interface{}, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = fmt.Errorf("unexpected data after document at offset %d", dec.InputOffset())
		}
		return nil, err
	}
	return v, nil
}

// Encode writes v to w as indented JSON followed by a newline. absent is
// written as null
func Encode(w io.Writer, v interface{}, present bool) error {
	if !present {
		v = nil
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// WriteFile encodes v and stores it at path, replacing any existing file
func WriteFile(path string, v interface{}, present bool) error {
	buf := &bytes.Buffer{}
	if err := Encode(buf, v, present); err != nil {
		return newEncodeOutputError(path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return newWriteOutputError(path, err)
	}
	return nil
}

// Output names one of the projections written for a comparison
type Output struct {
	Name   string
	Path   string
	Filter Filter
}

// Outputs lists the projections persisted for an output prefix, in the order
// they are written:
//   <prefix>_eq.json
//   <prefix>_diff_ab.json
//   <prefix>_diff_ba.json
func Outputs(prefix string) []Output {
	return []Output{
		{Name: "eq", Path: prefix + "_eq.json", Filter: EqualFilter},
		{Name: "diff_ab", Path: prefix + "_diff_ab.json", Filter: DiffABFilter},
		{Name: "diff_ba", Path: prefix + "_diff_ba.json", Filter: DiffBAFilter},
	}
}

// WriteProjections projects d through each of the standard filters & writes
// the results next to prefix. It stops at the first failure, outputs written
// before the failure are left in place
func WriteProjections(prefix string, d *Delta) error {
	return writeProjections(prefix, d, discardLogger())
}

func writeProjections(prefix string, d *Delta, log *slog.Logger) error {
	for _, out := range Outputs(prefix) {
		v, ok := Project(d, out.Filter)
		if err := WriteFile(out.Path, v, ok); err != nil {
			return err
		}
		log.Debug("wrote output", "name", out.Name, "path", out.Path, "empty", !ok)
	}
	return nil
}
