package cli

import (
	"bufio"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// lineWriter prints one match per line. Output is buffered unless it goes to
// a terminal, where each line is flushed as soon as it is written.
type lineWriter struct {
	w         *bufio.Writer
	autoFlush bool
}

func newLineWriter(w io.Writer) *lineWriter {
	return &lineWriter{
		w:         bufio.NewWriter(w),
		autoFlush: isTerminal(w),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (lw *lineWriter) WriteLine(line string) error {
	if _, err := lw.w.WriteString(line); err != nil {
		return err
	}
	if err := lw.w.WriteByte('\n'); err != nil {
		return err
	}
	if lw.autoFlush {
		return lw.w.Flush()
	}
	return nil
}

func (lw *lineWriter) Flush() error {
	return lw.w.Flush()
}
