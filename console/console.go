// Package console turns the platform's one-byte-at-a-time output into an io.Writer.
package console

import (
	"fmt"

	"github.com/vkngwrapper/arsenal/framealloc/platform"
)

// Writer sends everything written to it through Platform.PutChar
type Writer struct {
	platform platform.Platform
}

func NewWriter(p platform.Platform) *Writer {
	return &Writer{platform: p}
}

// Write never fails: the console has no way to report a dropped byte.
func (w *Writer) Write(p []byte) (int, error) {
	for _, c := range p {
		w.platform.PutChar(c)
	}
	return len(p), nil
}

func (w *Writer) WriteString(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		w.platform.PutChar(s[i])
	}
	return len(s), nil
}

func (w *Writer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}

func (w *Writer) Println(args ...any) {
	_, _ = fmt.Fprintln(w, args...)
}
