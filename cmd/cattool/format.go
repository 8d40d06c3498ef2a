package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Carifio24/wwt-core-catalogs/catalog"
)

var formatImagesetsCmd = &cobra.Command{
	Use:   "format-imagesets",
	Short: "Reshard the imageset catalog in place",
	Long:  "Reloads the imageset catalog, recomputes shard membership, and rewrites every shard file with normalized attribute formatting",
	PreRun: func(_ *cobra.Command, _ []string) {
		initLogging()
	},
	Run: func(cmd *cobra.Command, args []string) {
		idb, err := catalog.LoadImagesetDatabase(ImagesetsDir)
		if err != nil {
			log.Fatalf("main: %s", err)
		}
		log.WithField("imagesets", idb.Len()).Info("Loaded imageset catalog")

		if err := idb.Rewrite(); err != nil {
			log.Fatalf("main: %s", err)
		}
		log.WithField("shards", len(idb.ShardCounts())).Info("Imageset catalog rewritten")
	},
}

var formatPlacesCmd = &cobra.Command{
	Use:   "format-places",
	Short: "Reshard the place catalog in place",
	Long:  "Reloads the place catalog, recomputes shard membership, and rewrites every shard file in sorted multi-document YAML form",
	PreRun: func(_ *cobra.Command, _ []string) {
		initLogging()
	},
	Run: func(cmd *cobra.Command, args []string) {
		pdb, err := catalog.LoadPlaceDatabase(PlacesDir)
		if err != nil {
			log.Fatalf("main: %s", err)
		}
		log.WithField("places", pdb.Len()).Info("Loaded place catalog")

		if err := pdb.Rewrite(); err != nil {
			log.Fatalf("main: %s", err)
		}
		log.WithField("shards", len(pdb.ShardCounts())).Info("Place catalog rewritten")
	},
}
