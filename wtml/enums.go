package wtml

import (
	"fmt"

	"github.com/Carifio24/wwt-core-catalogs/pkg/contains"
)

// DataSetType classifies the coordinate regime of an imageset or place.
type DataSetType string

const (
	Earth    DataSetType = "Earth"
	Planet   DataSetType = "Planet"
	Sky      DataSetType = "Sky"
	Panorama DataSetType = "Panorama"
	Survey   DataSetType = "Survey"
	Sandbox  DataSetType = "Sandbox"
)

var dataSetTypes = []string{
	string(Earth),
	string(Planet),
	string(Sky),
	string(Panorama),
	string(Survey),
	string(Sandbox),
}

// ParseDataSetType validates s against the known data-set types.
func ParseDataSetType(s string) (DataSetType, error) {
	if !contains.String(dataSetTypes, s) {
		return "", fmt.Errorf("unrecognized DataSetType %q", s)
	}
	return DataSetType(s), nil
}

// Bandpass identifies the segment of the electromagnetic spectrum an imageset
// covers.
type Bandpass string

const (
	Gamma         Bandpass = "Gamma"
	HydrogenAlpha Bandpass = "HydrogenAlpha"
	IR            Bandpass = "IR"
	Microwave     Bandpass = "Microwave"
	Radio         Bandpass = "Radio"
	Ultraviolet   Bandpass = "Ultraviolet"
	Visible       Bandpass = "Visible"
	VisibleNight  Bandpass = "VisibleNight"
	XRay          Bandpass = "XRay"
)

var bandpasses = []string{
	string(Gamma),
	string(HydrogenAlpha),
	string(IR),
	string(Microwave),
	string(Radio),
	string(Ultraviolet),
	string(Visible),
	string(VisibleNight),
	string(XRay),
}

// ParseBandpass validates s against the known bandpasses.
func ParseBandpass(s string) (Bandpass, error) {
	if !contains.String(bandpasses, s) {
		return "", fmt.Errorf("unrecognized Bandpass %q", s)
	}
	return Bandpass(s), nil
}

// Projection identifies the pixelization scheme of an imageset.
type Projection string

const (
	Equirectangular Projection = "Equirectangular"
	Healpix         Projection = "Healpix"
	Mercator        Projection = "Mercator"
	Plotted         Projection = "Plotted"
	SkyImage        Projection = "SkyImage"
	Spherical       Projection = "Spherical"
	Tan             Projection = "Tan"
	Toast           Projection = "Toast"
)

var projections = []string{
	string(Equirectangular),
	string(Healpix),
	string(Mercator),
	string(Plotted),
	string(SkyImage),
	string(Spherical),
	string(Tan),
	string(Toast),
}

// ParseProjection validates s against the known projections.
func ParseProjection(s string) (Projection, error) {
	if !contains.String(projections, s) {
		return "", fmt.Errorf("unrecognized Projection %q", s)
	}
	return Projection(s), nil
}
