// Package iojson reads and writes the JSON documents beacon commands accept
// on stdin or a file and print with --format json.
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Error is the document written to the error stream when a value cannot be
// encoded.
type Error struct {
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

func encodeError(msg string, cause error) string {
	bits, err := json.Marshal(Error{Message: msg, Data: map[string]any{"json_error": cause.Error()}})
	if err != nil {
		// both strings are escaped by Marshal, so this only happens on a broken writer
		return fmt.Sprintf(`{"message":%q}`, msg)
	}
	return string(bits)
}

// WriteWith writes obj to w as indented JSON. Encoding failures are reported
// on ew instead.
func WriteWith(w io.Writer, ew io.Writer, obj any) error {
	bits, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		_, werr := fmt.Fprintln(ew, encodeError("encode output", err))
		if werr != nil {
			return werr
		}
		return fmt.Errorf("encode output: %w", err)
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}

// Write calls WriteWith with [os.Stdout] and [os.Stderr].
func Write(obj any) error {
	return WriteWith(os.Stdout, os.Stderr, obj)
}
