package main

import (
	"path/filepath"
	"strings"

	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Carifio24/wwt-core-catalogs/catalog"
	"github.com/Carifio24/wwt-core-catalogs/pkg/unique"
	"github.com/Carifio24/wwt-core-catalogs/wtml"
)

var MemProfile bool

var ingestCmd = &cobra.Command{
	Use:   "ingest WTML-PATH",
	Short: "Merge one WTML catalog document into the catalogs",
	Long:  "Walks an external WTML document, merging its imagesets and places into the existing catalogs, then rewrites both catalog directories",
	Args:  cobra.MinimumNArgs(1),
	PreRun: func(_ *cobra.Command, _ []string) {
		initLogging()
	},
	Run: func(cmd *cobra.Command, args []string) {
		if MemProfile {
			p := profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook)
			defer p.Stop()
		}
		if err := ingest(args[0]); err != nil {
			log.Fatalf("main: %s", err)
		}
	},
}

func ingest(wtmlPath string) error {
	catName := strings.TrimSuffix(filepath.Base(wtmlPath), filepath.Ext(wtmlPath))
	log.WithField("catalog", catName).Info("Ingesting WTML document")

	doc, err := wtml.ParseFolderFile(wtmlPath)
	if err != nil {
		return err
	}

	idb, err := catalog.LoadImagesetDatabase(ImagesetsDir)
	if err != nil {
		return err
	}
	pdb, err := catalog.LoadPlaceDatabase(PlacesDir)
	if err != nil {
		return err
	}

	var (
		numImagesets int
		numPlaces    int
		dataSetTypes []string
	)
	if err := doc.Walk(func(item interface{}) error {
		switch node := item.(type) {
		case *wtml.ImageSet:
			idb.Add(node)
			numImagesets++
			dataSetTypes = append(dataSetTypes, string(node.DataSetType))
		case *wtml.Place:
			pdb.Ingest(node, idb)
			numPlaces++
			dataSetTypes = append(dataSetTypes, string(node.DataSetType))
		}
		return nil
	}); err != nil {
		return err
	}

	log.WithField("imagesets", numImagesets).
		WithField("places", numPlaces).
		WithField("data-set-types", strings.Join(unique.StringsSorted(dataSetTypes), ",")).
		Info("Walked document")

	if err := idb.Rewrite(); err != nil {
		return err
	}
	if err := pdb.Rewrite(); err != nil {
		return err
	}

	log.WithField("imagesets", idb.Len()).WithField("places", pdb.Len()).Info("Ingest finished")
	return nil
}
