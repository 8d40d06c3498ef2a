package wtml

import (
	"encoding/xml"
	"os"

	"github.com/pkg/errors"
	"github.com/ssor/bom"

	"github.com/Carifio24/wwt-core-catalogs/xmlfmt"
)

// Folder is the grouping element of a WTML document.  Child order across
// kinds is not preserved; the catalog re-sorts everything deterministically
// on rewrite, so nothing downstream depends on it.
type Folder struct {
	Name       string `xml:"Name,attr"`
	Group      string `xml:"Group,attr"`
	Browseable bool   `xml:"Browseable,attr"`
	Searchable bool   `xml:"Searchable,attr"`

	Folders   []*Folder   `xml:"Folder"`
	ImageSets []*ImageSet `xml:"ImageSet"`
	Places    []*Place    `xml:"Place"`
}

// NewFolder returns a named folder with the WTML defaults applied.
func NewFolder(name string) *Folder {
	f := &Folder{
		Name:       name,
		Group:      "Explorer",
		Browseable: true,
		Searchable: true,
	}
	return f
}

// UnmarshalXML decodes a <Folder> element, filling in WTML defaults for
// absent attributes before delegating to the standard decoder.
func (f *Folder) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	type folder Folder
	tmp := folder(*NewFolder(""))
	if err := d.DecodeElement(&tmp, &start); err != nil {
		return err
	}
	*f = Folder(tmp)
	return nil
}

// ParseFolder decodes a WTML document from raw bytes, tolerating a leading
// UTF-8 byte-order mark (catalog files in the wild frequently carry one).
func ParseFolder(data []byte) (*Folder, error) {
	f := &Folder{}
	if err := xml.Unmarshal(bom.CleanBom(data), f); err != nil {
		return nil, err
	}
	return f, nil
}

// ParseFolderFile reads and decodes the WTML document at path.
func ParseFolderFile(path string) (*Folder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := ParseFolder(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %v", path)
	}
	return f, nil
}

// Walk visits every node of the folder tree depth-first, starting with the
// folder itself, invoking fn for each folder, imageset, and place.  A nested
// place's imagesets are not visited separately; they belong to the place.
func (f *Folder) Walk(fn func(item interface{}) error) error {
	if err := fn(f); err != nil {
		return err
	}
	for _, is := range f.ImageSets {
		if err := fn(is); err != nil {
			return err
		}
	}
	for _, p := range f.Places {
		if err := fn(p); err != nil {
			return err
		}
	}
	for _, sub := range f.Folders {
		if err := sub.Walk(fn); err != nil {
			return err
		}
	}
	return nil
}

// XMLElement renders the folder and its children as an element tree suitable
// for the attribute-sorting serializer.
func (f *Folder) XMLElement() *xmlfmt.Element {
	el := xmlfmt.NewElement("Folder")
	el.SetAttr("Name", f.Name)
	el.SetAttr("Group", f.Group)
	el.SetAttr("Browseable", formatBool(f.Browseable))
	el.SetAttr("Searchable", formatBool(f.Searchable))

	for _, sub := range f.Folders {
		el.Append(sub.XMLElement())
	}
	for _, is := range f.ImageSets {
		el.Append(is.XMLElement())
	}
	for _, p := range f.Places {
		el.Append(p.XMLElement())
	}
	return el
}
