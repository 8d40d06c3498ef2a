package wtml

import (
	"encoding/xml"
	"strconv"

	"github.com/pkg/errors"

	"github.com/Carifio24/wwt-core-catalogs/xmlfmt"
)

// ImageSet describes a single image layer.  The Url is its identity: the
// catalog tooling deduplicates and cross-references imagesets by Url alone.
type ImageSet struct {
	Name               string      `xml:"Name,attr"`
	Url                string      `xml:"Url,attr"`
	AltUrl             string      `xml:"AltUrl,attr"`
	DemUrl             string      `xml:"DemUrl,attr"`
	DataSetType        DataSetType `xml:"DataSetType,attr"`
	ReferenceFrame     string      `xml:"ReferenceFrame,attr"`
	BandPass           Bandpass    `xml:"BandPass,attr"`
	Projection         Projection  `xml:"Projection,attr"`
	BaseTileLevel      int         `xml:"BaseTileLevel,attr"`
	TileLevels         int         `xml:"TileLevels,attr"`
	BaseDegreesPerTile float64     `xml:"BaseDegreesPerTile,attr"`
	FileType           string      `xml:"FileType,attr"`
	BottomsUp          bool        `xml:"BottomsUp,attr"`
	QuadTreeMap        string      `xml:"QuadTreeMap,attr"`
	CenterX            float64     `xml:"CenterX,attr"`
	CenterY            float64     `xml:"CenterY,attr"`
	OffsetX            float64     `xml:"OffsetX,attr"`
	OffsetY            float64     `xml:"OffsetY,attr"`
	RotationDeg        float64     `xml:"Rotation,attr"`
	WidthFactor        int         `xml:"WidthFactor,attr"`
	Sparse             bool        `xml:"Sparse,attr"`
	ElevationModel     bool        `xml:"ElevationModel,attr"`
	StockSet           bool        `xml:"StockSet,attr"`
	Generic            bool        `xml:"Generic,attr"`
	MeanRadius         float64     `xml:"MeanRadius,attr"`

	Credits      string `xml:"Credits"`
	CreditsUrl   string `xml:"CreditsUrl"`
	ThumbnailUrl string `xml:"ThumbnailUrl"`
	Description  string `xml:"Description"`
}

// NewImageSet returns an imageset with the WTML defaults applied.
func NewImageSet() *ImageSet {
	is := &ImageSet{
		DataSetType: Sky,
		BandPass:    Visible,
		Projection:  SkyImage,
		FileType:    ".png",
		WidthFactor: 2,
		Sparse:      true,
	}
	return is
}

// UnmarshalXML decodes an <ImageSet> element, filling in WTML defaults for
// absent attributes before delegating to the standard decoder.  Enum-valued
// attributes are validated; an unknown value is a decode error, not a record.
func (is *ImageSet) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	type imageSet ImageSet
	tmp := imageSet(*NewImageSet())
	if err := d.DecodeElement(&tmp, &start); err != nil {
		return err
	}
	if _, err := ParseDataSetType(string(tmp.DataSetType)); err != nil {
		return errors.Wrapf(err, "imageset %q", tmp.Url)
	}
	if tmp.BandPass != "" {
		if _, err := ParseBandpass(string(tmp.BandPass)); err != nil {
			return errors.Wrapf(err, "imageset %q", tmp.Url)
		}
	}
	if _, err := ParseProjection(string(tmp.Projection)); err != nil {
		return errors.Wrapf(err, "imageset %q", tmp.Url)
	}
	*is = ImageSet(tmp)
	return nil
}

// XMLElement renders the imageset as an element tree suitable for the
// attribute-sorting serializer.
func (is *ImageSet) XMLElement() *xmlfmt.Element {
	el := xmlfmt.NewElement("ImageSet")

	el.SetAttr("Name", is.Name)
	el.SetAttr("Url", is.Url)
	if is.AltUrl != "" {
		el.SetAttr("AltUrl", is.AltUrl)
	}
	if is.DemUrl != "" {
		el.SetAttr("DemUrl", is.DemUrl)
	}
	el.SetAttr("DataSetType", string(is.DataSetType))
	if is.ReferenceFrame != "" {
		el.SetAttr("ReferenceFrame", is.ReferenceFrame)
	}
	if is.BandPass != "" {
		el.SetAttr("BandPass", string(is.BandPass))
	}
	el.SetAttr("Projection", string(is.Projection))
	el.SetAttr("BaseTileLevel", strconv.Itoa(is.BaseTileLevel))
	el.SetAttr("TileLevels", strconv.Itoa(is.TileLevels))
	el.SetAttr("BaseDegreesPerTile", formatFloat(is.BaseDegreesPerTile))
	el.SetAttr("FileType", is.FileType)
	el.SetAttr("BottomsUp", formatBool(is.BottomsUp))
	if is.QuadTreeMap != "" {
		el.SetAttr("QuadTreeMap", is.QuadTreeMap)
	}
	el.SetAttr("CenterX", formatFloat(is.CenterX))
	el.SetAttr("CenterY", formatFloat(is.CenterY))
	el.SetAttr("OffsetX", formatFloat(is.OffsetX))
	el.SetAttr("OffsetY", formatFloat(is.OffsetY))
	el.SetAttr("Rotation", formatFloat(is.RotationDeg))
	el.SetAttr("WidthFactor", strconv.Itoa(is.WidthFactor))
	el.SetAttr("Sparse", formatBool(is.Sparse))
	el.SetAttr("ElevationModel", formatBool(is.ElevationModel))
	el.SetAttr("StockSet", formatBool(is.StockSet))
	el.SetAttr("Generic", formatBool(is.Generic))
	if is.MeanRadius != 0 {
		el.SetAttr("MeanRadius", formatFloat(is.MeanRadius))
	}

	if is.Credits != "" {
		el.AppendText("Credits", is.Credits)
	}
	if is.CreditsUrl != "" {
		el.AppendText("CreditsUrl", is.CreditsUrl)
	}
	if is.ThumbnailUrl != "" {
		el.AppendText("ThumbnailUrl", is.ThumbnailUrl)
	}
	if is.Description != "" {
		el.AppendText("Description", is.Description)
	}

	return el
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatInt(v int) string {
	return strconv.Itoa(v)
}

// formatBool renders booleans in the WTML capitalized style.
func formatBool(v bool) string {
	if v {
		return "True"
	}
	return "False"
}
