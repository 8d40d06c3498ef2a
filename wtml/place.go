package wtml

import (
	"encoding/xml"

	"github.com/pkg/errors"

	"github.com/Carifio24/wwt-core-catalogs/xmlfmt"
)

// Place describes a named point of interest, optionally paired with up to
// three imagesets: a study image, and foreground/background context layers.
// The nested imagesets are full records here; the catalog distills them down
// to URL references at storage time.
type Place struct {
	Name           string      `xml:"Name,attr"`
	DataSetType    DataSetType `xml:"DataSetType,attr"`
	RAHr           float64     `xml:"RA,attr"`
	DecDeg         float64     `xml:"Dec,attr"`
	Latitude       float64     `xml:"Lat,attr"`
	Longitude      float64     `xml:"Lng,attr"`
	Constellation  string      `xml:"Constellation,attr"`
	Classification string      `xml:"Classification,attr"`
	Magnitude      float64     `xml:"Magnitude,attr"`
	Distance       float64     `xml:"Distance,attr"`
	AngularSize    float64     `xml:"AngularSize,attr"`
	ZoomLevel      float64     `xml:"ZoomLevel,attr"`
	RotationDeg    float64     `xml:"Rotation,attr"`
	Angle          float64     `xml:"Angle,attr"`
	Opacity        float64     `xml:"Opacity,attr"`
	DomeAlt        float64     `xml:"DomeAlt,attr"`
	DomeAz         float64     `xml:"DomeAz,attr"`
	MSRCommunityID int         `xml:"MSRCommunityId,attr"`
	MSRComponentID int         `xml:"MSRComponentId,attr"`
	Permission     int         `xml:"Permission,attr"`
	Thumbnail      string      `xml:"Thumbnail,attr"`
	Annotation     string      `xml:"Annotation,attr"`

	ImageSet           *ImageSet `xml:"ImageSet"`
	ForegroundImageSet *ImageSet `xml:"ForegroundImageSet>ImageSet"`
	BackgroundImageSet *ImageSet `xml:"BackgroundImageSet>ImageSet"`
}

// NewPlace returns a place with the WTML defaults applied.  Opacity defaults
// to fully opaque, not zero.
func NewPlace() *Place {
	p := &Place{
		DataSetType: Sky,
		Opacity:     100,
	}
	return p
}

// UnmarshalXML decodes a <Place> element, filling in WTML defaults for absent
// attributes before delegating to the standard decoder.  An unknown
// DataSetType is a decode error, not a record.
func (p *Place) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	type place Place
	tmp := place(*NewPlace())
	if err := d.DecodeElement(&tmp, &start); err != nil {
		return err
	}
	if _, err := ParseDataSetType(string(tmp.DataSetType)); err != nil {
		return errors.Wrapf(err, "place %q", tmp.Name)
	}
	*p = Place(tmp)
	return nil
}

// XMLElement renders the place, including any nested imagesets, as an element
// tree suitable for the attribute-sorting serializer.
func (p *Place) XMLElement() *xmlfmt.Element {
	el := xmlfmt.NewElement("Place")

	el.SetAttr("Name", p.Name)
	el.SetAttr("DataSetType", string(p.DataSetType))
	el.SetAttr("RA", formatFloat(p.RAHr))
	el.SetAttr("Dec", formatFloat(p.DecDeg))
	el.SetAttr("Lat", formatFloat(p.Latitude))
	el.SetAttr("Lng", formatFloat(p.Longitude))
	if p.Constellation != "" {
		el.SetAttr("Constellation", p.Constellation)
	}
	if p.Classification != "" {
		el.SetAttr("Classification", p.Classification)
	}
	el.SetAttr("Magnitude", formatFloat(p.Magnitude))
	el.SetAttr("Distance", formatFloat(p.Distance))
	el.SetAttr("AngularSize", formatFloat(p.AngularSize))
	el.SetAttr("ZoomLevel", formatFloat(p.ZoomLevel))
	el.SetAttr("Rotation", formatFloat(p.RotationDeg))
	el.SetAttr("Angle", formatFloat(p.Angle))
	el.SetAttr("Opacity", formatFloat(p.Opacity))
	el.SetAttr("DomeAlt", formatFloat(p.DomeAlt))
	el.SetAttr("DomeAz", formatFloat(p.DomeAz))
	el.SetAttr("MSRCommunityId", formatInt(p.MSRCommunityID))
	el.SetAttr("MSRComponentId", formatInt(p.MSRComponentID))
	el.SetAttr("Permission", formatInt(p.Permission))
	if p.Thumbnail != "" {
		el.SetAttr("Thumbnail", p.Thumbnail)
	}
	if p.Annotation != "" {
		el.SetAttr("Annotation", p.Annotation)
	}

	if p.ImageSet != nil {
		el.Append(p.ImageSet.XMLElement())
	}
	if p.ForegroundImageSet != nil {
		el.Append(xmlfmt.NewElement("ForegroundImageSet")).
			Append(p.ForegroundImageSet.XMLElement())
	}
	if p.BackgroundImageSet != nil {
		el.Append(xmlfmt.NewElement("BackgroundImageSet")).
			Append(p.BackgroundImageSet.XMLElement())
	}

	return el
}
