package xmlfmt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Declaration is emitted as the first line of every serialized document.
const Declaration = "<?xml version='1.0' encoding='UTF-8'?>"

var (
	// Whitespace in attribute values is escaped numerically so every
	// attribute stays on one physical line for Reflow to re-tokenize.
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"\n", "&#10;",
		"\t", "&#09;",
		"\r", "&#13;",
	)
	textEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
)

// WriteIndented serializes the element tree with an XML declaration, one
// element per line, and two spaces of indentation per nesting level.
// Attributes are written inline in insertion order; Reflow is responsible for
// splitting and alphabetizing them.
func WriteIndented(el *Element, w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, Declaration)
	writeElement(bw, el, 0)
	return bw.Flush()
}

func writeElement(bw *bufio.Writer, el *Element, depth int) {
	indent := strings.Repeat("  ", depth)

	bw.WriteString(indent)
	bw.WriteByte('<')
	bw.WriteString(el.Tag)
	for _, a := range el.Attrs {
		fmt.Fprintf(bw, ` %s="%s"`, a.Name, attrEscaper.Replace(a.Value))
	}

	if len(el.Children) == 0 && el.Text == "" {
		bw.WriteString(" />\n")
		return
	}

	bw.WriteByte('>')

	if len(el.Children) == 0 {
		bw.WriteString(textEscaper.Replace(el.Text))
		fmt.Fprintf(bw, "</%s>\n", el.Tag)
		return
	}

	bw.WriteByte('\n')
	if el.Text != "" {
		fmt.Fprintf(bw, "%s  %s\n", indent, textEscaper.Replace(el.Text))
	}
	for _, child := range el.Children {
		writeElement(bw, child, depth+1)
	}
	fmt.Fprintf(bw, "%s</%s>\n", indent, el.Tag)
}
