package quotegen

import (
	"bytes"
	"encoding/base64"
	"io"
	"os"
	"path/filepath"
)

// Result holds an exported PDF and provides helpers for common output
// formats such as raw bytes, base64 encoding, and streaming readers.
//
// A Result is returned by every successful export. It is safe to call
// its methods multiple times; the underlying data is never modified.
type Result struct {
	data     []byte
	filename string
}

// NewResult wraps already-produced PDF bytes with a suggested filename.
// The export pipeline builds Results itself; this exists for callers
// (and tests) that feed pre-rendered documents through Result helpers.
func NewResult(data []byte, filename string) *Result {
	return &Result{data: data, filename: filename}
}

// Bytes returns the raw PDF content.
func (r *Result) Bytes() []byte {
	return r.data
}

// Filename returns the suggested output filename, derived from the
// client name and document number with non-word characters collapsed,
// e.g. "Jane_Doe_Q-1001.pdf".
func (r *Result) Filename() string {
	return r.filename
}

// Base64 returns the PDF encoded as a standard base64 string (RFC 4648).
// This is useful for embedding in JSON payloads or uploading to services
// that accept base64-encoded content.
func (r *Result) Base64() string {
	return base64.StdEncoding.EncodeToString(r.data)
}

// Reader returns a [*bytes.Reader] over the PDF content.
func (r *Result) Reader() *bytes.Reader {
	return bytes.NewReader(r.data)
}

// WriteTo writes the full PDF content to w. It implements [io.WriterTo].
func (r *Result) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(r.data)
	return int64(n), err
}

// WriteToFile writes the PDF to the file at path, creating it if needed.
func (r *Result) WriteToFile(path string, perm os.FileMode) error {
	return os.WriteFile(path, r.data, perm)
}

// Save writes the PDF into dir under its suggested filename and returns
// the full path.
func (r *Result) Save(dir string) (string, error) {
	path := filepath.Join(dir, r.filename)
	if err := r.WriteToFile(path, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// Len returns the size of the PDF in bytes.
func (r *Result) Len() int {
	return len(r.data)
}
