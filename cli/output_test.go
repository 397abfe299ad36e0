package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestLineWriter(t *testing.T) {
	var buf bytes.Buffer
	lw := newLineWriter(&buf)
	if lw.autoFlush {
		t.Fatal("newLineWriter() autoFlush = true for a buffer")
	}

	for _, line := range []string{"one", "", "  three  "} {
		if err := lw.WriteLine(line); err != nil {
			t.Fatalf("WriteLine() unexpected error: %v", err)
		}
	}
	if buf.Len() != 0 {
		t.Errorf("WriteLine() flushed %q before Flush()", buf.String())
	}
	if err := lw.Flush(); err != nil {
		t.Fatalf("Flush() unexpected error: %v", err)
	}
	if got, want := buf.String(), "one\n\n  three  \n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestIsTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	if err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	defer f.Close()

	if isTerminal(f) {
		t.Errorf("isTerminal() = true for a regular file")
	}
	if isTerminal(&bytes.Buffer{}) {
		t.Errorf("isTerminal() = true for a buffer")
	}
}
