package wtml

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Carifio24/wwt-core-catalogs/xmlfmt"
)

const sampleWTML = `<?xml version='1.0' encoding='UTF-8'?>
<Folder Browseable="True" Group="Explorer" Name="outer" Searchable="True">
  <ImageSet Url="http://example.org/solo/{0}" Name="Solo" DataSetType="Sky" BandPass="Radio" TileLevels="5" Sparse="False">
    <Credits>Example Observatory</Credits>
    <ThumbnailUrl>http://example.org/solo/thumb.jpg</ThumbnailUrl>
  </ImageSet>
  <Place Name="M31" DataSetType="Sky" RA="0.712" Dec="41.269" Constellation="AND" ZoomLevel="6">
    <ForegroundImageSet>
      <ImageSet Url="http://example.org/m31/{0}" Name="M31 layer" DataSetType="Sky" />
    </ForegroundImageSet>
  </Place>
  <Folder Name="inner">
    <Place Name="Mare Tranquillitatis" DataSetType="Planet" Lat="8.35" Lng="30.66" Opacity="40" />
  </Folder>
</Folder>
`

func TestParseFolder(t *testing.T) {
	f, err := ParseFolder([]byte(sampleWTML))
	if err != nil {
		t.Fatal(err)
	}

	if expected, actual := "outer", f.Name; actual != expected {
		t.Errorf("Expected name=%v but actual=%v", expected, actual)
	}
	if expected, actual := 1, len(f.ImageSets); actual != expected {
		t.Fatalf("Expected imageset count=%v but actual=%v", expected, actual)
	}
	if expected, actual := 1, len(f.Places); actual != expected {
		t.Fatalf("Expected place count=%v but actual=%v", expected, actual)
	}
	if expected, actual := 1, len(f.Folders); actual != expected {
		t.Fatalf("Expected subfolder count=%v but actual=%v", expected, actual)
	}

	is := f.ImageSets[0]
	if expected, actual := Radio, is.BandPass; actual != expected {
		t.Errorf("Expected bandpass=%v but actual=%v", expected, actual)
	}
	if is.Sparse {
		t.Error("Expected Sparse=False to be honored")
	}
	if expected, actual := "Example Observatory", is.Credits; actual != expected {
		t.Errorf("Expected credits=%v but actual=%v", expected, actual)
	}
	// Attributes absent from the document keep their WTML defaults.
	if expected, actual := ".png", is.FileType; actual != expected {
		t.Errorf("Expected default file type=%v but actual=%v", expected, actual)
	}

	p := f.Places[0]
	if p.ForegroundImageSet == nil {
		t.Fatal("Expected a foreground imageset")
	}
	if expected, actual := "http://example.org/m31/{0}", p.ForegroundImageSet.Url; actual != expected {
		t.Errorf("Expected foreground url=%v but actual=%v", expected, actual)
	}
	// Opacity defaults to fully opaque when the attribute is absent.
	if expected, actual := float64(100), p.Opacity; actual != expected {
		t.Errorf("Expected opacity=%v but actual=%v", expected, actual)
	}

	inner := f.Folders[0].Places[0]
	if expected, actual := float64(40), inner.Opacity; actual != expected {
		t.Errorf("Expected opacity=%v but actual=%v", expected, actual)
	}
	if expected, actual := float64(30.66), inner.Longitude; actual != expected {
		t.Errorf("Expected longitude=%v but actual=%v", expected, actual)
	}
}

func TestParseFolderToleratesBOM(t *testing.T) {
	data := append([]byte{0xef, 0xbb, 0xbf}, []byte(sampleWTML)...)
	f, err := ParseFolder(data)
	if err != nil {
		t.Fatal(err)
	}
	if expected, actual := "outer", f.Name; actual != expected {
		t.Errorf("Expected name=%v but actual=%v", expected, actual)
	}
}

func TestParseFolderRejectsUnknownEnumValues(t *testing.T) {
	testCases := []struct {
		doc      string
		expected string
	}{
		{`<Folder><ImageSet Url="http://x/{0}" DataSetType="Galaxy" /></Folder>`, "DataSetType"},
		{`<Folder><ImageSet Url="http://x/{0}" BandPass="Xray" /></Folder>`, "Bandpass"},
		{`<Folder><ImageSet Url="http://x/{0}" Projection="Gnomonic" /></Folder>`, "Projection"},
		{`<Folder><Place Name="M31" DataSetType="Nebula" /></Folder>`, "DataSetType"},
	}
	for i, testCase := range testCases {
		_, err := ParseFolder([]byte(testCase.doc))
		if err == nil {
			t.Errorf("[i=%v] Expected an error for doc=%q", i, testCase.doc)
			continue
		}
		if !strings.Contains(err.Error(), testCase.expected) {
			t.Errorf("[i=%v] Expected error mentioning %v but actual=%v", i, testCase.expected, err)
		}
	}
}

func TestWalkVisitsEveryNode(t *testing.T) {
	f, err := ParseFolder([]byte(sampleWTML))
	if err != nil {
		t.Fatal(err)
	}

	var folders, imagesets, places int
	if err := f.Walk(func(item interface{}) error {
		switch item.(type) {
		case *Folder:
			folders++
		case *ImageSet:
			imagesets++
		case *Place:
			places++
		}
		return nil
	}); err != nil {
		t.Fatal(err)
	}

	if expected, actual := 2, folders; actual != expected {
		t.Errorf("Expected folders=%v but actual=%v", expected, actual)
	}
	// The place's nested imageset belongs to the place, not the walk.
	if expected, actual := 1, imagesets; actual != expected {
		t.Errorf("Expected imagesets=%v but actual=%v", expected, actual)
	}
	if expected, actual := 2, places; actual != expected {
		t.Errorf("Expected places=%v but actual=%v", expected, actual)
	}
}

func TestFolderXMLElementRoundTrip(t *testing.T) {
	f, err := ParseFolder([]byte(sampleWTML))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := xmlfmt.Prettify(f.XMLElement(), &buf); err != nil {
		t.Fatal(err)
	}

	reparsed, err := ParseFolder(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}

	if expected, actual := len(f.ImageSets), len(reparsed.ImageSets); actual != expected {
		t.Errorf("Expected imageset count=%v but actual=%v", expected, actual)
	}
	if expected, actual := f.Places[0].RAHr, reparsed.Places[0].RAHr; actual != expected {
		t.Errorf("Expected ra=%v but actual=%v", expected, actual)
	}
	if expected, actual := f.Folders[0].Places[0].Opacity, reparsed.Folders[0].Places[0].Opacity; actual != expected {
		t.Errorf("Expected opacity=%v but actual=%v", expected, actual)
	}
}
