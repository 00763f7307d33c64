package quotegen_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	quotegen "github.com/elevateestimator/quotegenerator"
)

var samplePDF = []byte("%PDF-1.4\nfake body for result helpers\n%%EOF")

func TestResult_Accessors(t *testing.T) {
	res := quotegen.NewResult(samplePDF, "Jane_Doe_Q-1001.pdf")

	if !bytes.Equal(res.Bytes(), samplePDF) {
		t.Error("Bytes() does not round-trip")
	}
	if res.Len() != len(samplePDF) {
		t.Errorf("Len() = %d, want %d", res.Len(), len(samplePDF))
	}
	if res.Filename() != "Jane_Doe_Q-1001.pdf" {
		t.Errorf("Filename() = %q", res.Filename())
	}
}

func TestResult_Base64(t *testing.T) {
	res := quotegen.NewResult(samplePDF, "out.pdf")

	b64 := res.Base64()
	if len(b64) == 0 {
		t.Fatal("Base64 returned empty string")
	}
	// base64 of %PDF- starts with JVBER
	if b64[:5] != "JVBER" {
		t.Errorf("Base64 does not start with expected PDF prefix, got %s...", b64[:10])
	}
}

func TestResult_Reader(t *testing.T) {
	res := quotegen.NewResult(samplePDF, "out.pdf")

	r := res.Reader()
	if r.Len() != res.Len() {
		t.Errorf("Reader().Len() = %d, want %d", r.Len(), res.Len())
	}
}

func TestResult_WriteTo(t *testing.T) {
	res := quotegen.NewResult(samplePDF, "out.pdf")

	var buf bytes.Buffer
	n, err := res.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if n != int64(len(samplePDF)) {
		t.Errorf("WriteTo wrote %d bytes, want %d", n, len(samplePDF))
	}
	if !bytes.Equal(buf.Bytes(), samplePDF) {
		t.Error("WriteTo content mismatch")
	}
}

func TestResult_WriteToFile(t *testing.T) {
	res := quotegen.NewResult(samplePDF, "out.pdf")

	path := filepath.Join(t.TempDir(), "out.pdf")
	if err := res.WriteToFile(path, 0o644); err != nil {
		t.Fatalf("WriteToFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, samplePDF) {
		t.Error("written file content mismatch")
	}
}

func TestResult_Save(t *testing.T) {
	res := quotegen.NewResult(samplePDF, "Client_Quote.pdf")

	dir := t.TempDir()
	path, err := res.Save(dir)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if want := filepath.Join(dir, "Client_Quote.pdf"); path != want {
		t.Errorf("Save path = %q, want %q", path, want)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("saved file missing: %v", err)
	}
}
