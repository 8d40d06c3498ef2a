package xmlfmt

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Element is the minimal XML tree this package operates on: a tag name,
// attributes in insertion order, child elements, and optional direct text.
type Element struct {
	Tag      string
	Attrs    []Attr
	Children []*Element
	Text     string
}

// Attr is a single name="value" attribute pair.
type Attr struct {
	Name  string
	Value string
}

// NewElement returns an element with the given tag and no attributes.
func NewElement(tag string) *Element {
	el := &Element{
		Tag: tag,
	}
	return el
}

// SetAttr appends or replaces the named attribute.
func (el *Element) SetAttr(name string, value string) {
	for i, a := range el.Attrs {
		if a.Name == name {
			el.Attrs[i].Value = value
			return
		}
	}
	el.Attrs = append(el.Attrs, Attr{Name: name, Value: value})
}

// Append adds child as the last child of el and returns child.
func (el *Element) Append(child *Element) *Element {
	el.Children = append(el.Children, child)
	return child
}

// AppendText adds a child element containing only text, e.g. <Credits>..</Credits>.
func (el *Element) AppendText(tag string, text string) *Element {
	child := NewElement(tag)
	child.Text = text
	return el.Append(child)
}

// Parse builds an Element tree from XML input.
//
// Namespace prefixes are not preserved; WTML documents do not use them.
// Surrounding whitespace in character data is discarded since the writer
// regenerates indentation from scratch.
func Parse(r io.Reader) (*Element, error) {
	dec := xml.NewDecoder(r)

	var (
		stack []*Element
		root  *Element
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if root != nil && len(stack) == 0 {
				return nil, fmt.Errorf("unexpected second root element <%s>", t.Name.Local)
			}
			el := NewElement(t.Name.Local)
			for _, a := range t.Attr {
				el.Attrs = append(el.Attrs, Attr{Name: a.Name.Local, Value: a.Value})
			}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			} else {
				root = el
			}
			stack = append(stack, el)

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}

		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			if s := strings.TrimSpace(string(t)); s != "" {
				stack[len(stack)-1].Text += s
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("document contains no elements")
	}
	return root, nil
}
