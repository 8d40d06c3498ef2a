package xmlfmt

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrMalformedAttrText indicates an opening-tag line whose attribute text
	// could not be fully consumed as name="value" pairs.
	ErrMalformedAttrText = errors.New("malformed attribute text")

	// ErrDuplicateAttr indicates the same attribute name appearing twice on
	// one tag.
	ErrDuplicateAttr = errors.New("duplicate attribute name")
)

var (
	startAttrTagExpr = regexp.MustCompile(`^(\s*)<([-_a-zA-Z0-9]+)\s`)
	attrExpr         = regexp.MustCompile(`^\s*(\w+)="([^"]*)"`)
	attrsDoneExpr    = regexp.MustCompile(`^\s*(/?)>$`)
)

// Prettify serializes the element tree and reflows every opening tag so each
// attribute sits on its own line, alphabetized by name.
func Prettify(el *Element, w io.Writer) error {
	var buf bytes.Buffer
	if err := WriteIndented(el, &buf); err != nil {
		return err
	}
	return Reflow(&buf, w)
}

// Reflow re-tokenizes serialized XML text line by line.  Lines opening a tag
// with inline attributes are split into the bare tag, one line per attribute
// in alphabetical order indented two spaces deeper, and a closing marker;
// self-closing tags are expanded into paired open/close tags.  All other
// lines pass through untouched.
//
// The upstream writer is trusted to emit single-line, non-nested attribute
// lists; input which defeats the attribute grammar (an embedded quote or `>`
// in a value, a repeated attribute name) is a fatal error rather than
// something to paper over.
func Reflow(r io.Reader, w io.Writer) error {
	var (
		scanner = bufio.NewScanner(r)
		bw      = bufio.NewWriter(w)
	)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if err := reflowLine(bw, line); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return bw.Flush()
}

func reflowLine(bw *bufio.Writer, line string) error {
	m := startAttrTagExpr.FindStringSubmatch(line)
	if m == nil {
		fmt.Fprintln(bw, line)
		return nil
	}

	var (
		indent   = m[1]
		tag      = m[2]
		attrText = strings.TrimRight(line[len(m[0]):], " \t")
		attrs    = map[string]string{}
	)

	done := attrsDoneExpr.FindStringSubmatch(attrText)
	for done == nil {
		am := attrExpr.FindStringSubmatch(attrText)
		if am == nil {
			return errors.Wrapf(ErrMalformedAttrText, "chomping attrs in %q", line)
		}
		name, value := am[1], am[2]
		if _, dup := attrs[name]; dup {
			return errors.Wrapf(ErrDuplicateAttr, "%q on tag <%s>", name, tag)
		}
		attrs[name] = value

		attrText = attrText[len(am[0]):]
		done = attrsDoneExpr.FindStringSubmatch(attrText)
	}
	selfEnding := done[1] == "/"

	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(bw, "%s<%s\n", indent, tag)
	for _, name := range names {
		fmt.Fprintf(bw, "%s  %s=\"%s\"\n", indent, name, attrs[name])
	}
	if selfEnding {
		fmt.Fprintf(bw, "%s></%s>\n", indent, tag)
	} else {
		fmt.Fprintf(bw, "%s>\n", indent)
	}
	return nil
}
