package main

import (
	"os"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Carifio24/wwt-core-catalogs/catalog"
)

var statsCmd = &cobra.Command{
	Use:     "statistics",
	Aliases: []string{"stats", "stat", "st"},
	Short:   "Shard counts per catalog",
	Long:    "Displays the shard key and record count breakdown of both catalogs",
	PreRun: func(_ *cobra.Command, _ []string) {
		initLogging()
	},
	Run: func(cmd *cobra.Command, args []string) {
		idb, err := catalog.LoadImagesetDatabase(ImagesetsDir)
		if err != nil {
			log.Fatalf("main: %s", err)
		}
		pdb, err := catalog.LoadPlaceDatabase(PlacesDir)
		if err != nil {
			log.Fatalf("main: %s", err)
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Catalog", "Shard key", "Records"})
		appendCounts(table, "imagesets", idb.ShardCounts())
		appendCounts(table, "places", pdb.ShardCounts())
		table.Render()
	},
}

func appendCounts(table *tablewriter.Table, name string, counts map[string]int) {
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		table.Append([]string{name, key, strconv.Itoa(counts[key])})
	}
}
