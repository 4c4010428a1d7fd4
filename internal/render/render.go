// Package render turns an assembled document into text, Markdown, HTML or
// styled terminal output. Renderers only lay out the generated text; they
// never change it.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mrsinham/physioreport/internal/document"
)

// Format is an output format name.
type Format string

const (
	Text     Format = "text"
	Markdown Format = "markdown"
	HTML     Format = "html"
	Terminal Format = "terminal"
)

// ErrUnsupportedFormat is returned for an unknown format name.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Formats returns every supported format.
func Formats() []Format {
	return []Format{Text, Markdown, HTML, Terminal}
}

var aliases = map[string]Format{
	"txt":  Text,
	"md":   Markdown,
	"htm":  HTML,
	"term": Terminal,
}

// ParseFormat resolves a format name or common alias, ignoring case.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, f := range Formats() {
		if string(f) == name {
			return f, nil
		}
	}
	if f, ok := aliases[name]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Render writes doc to w in format f.
func Render(w io.Writer, doc document.Document, f Format) error {
	switch f {
	case Text:
		return writeText(w, doc)
	case Markdown:
		return writeMarkdown(w, doc)
	case HTML:
		return writeHTML(w, doc)
	case Terminal:
		_, err := io.WriteString(w, TerminalString(doc, 0))
		return err
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
}

// String renders doc to a string.
func String(doc document.Document, f Format) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, doc, f); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// errWriter keeps the first write error so that renderers can write
// line after line and check once.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

func (e *errWriter) println(s string) {
	e.printf("%s\n", s)
}
