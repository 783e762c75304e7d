package encoder

import (
	"io"
	"strings"
)

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// Escape replaces the characters that can't appear verbatim in XML
// character data.
func Escape(s string) string {
	return textEscaper.Replace(s)
}

func writeEscaped(w io.Writer, s string) error {
	if !strings.ContainsAny(s, "&<>") {
		_, err := io.WriteString(w, s)
		return err
	}
	_, err := textEscaper.WriteString(w, s)
	return err
}
