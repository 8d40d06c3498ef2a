package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ssor/bom"

	"github.com/Carifio24/wwt-core-catalogs/xmlfmt"
)

var prettifyCmd = &cobra.Command{
	Use:   "prettify XML-PATH",
	Short: "Normalize one XML file's attribute formatting to stdout",
	Args:  cobra.MinimumNArgs(1),
	PreRun: func(_ *cobra.Command, _ []string) {
		initLogging()
	},
	Run: func(cmd *cobra.Command, args []string) {
		f, err := os.Open(args[0])
		if err != nil {
			log.Fatalf("main: %s", err)
		}
		defer f.Close()

		r, err := bom.NewReaderWithoutBom(f)
		if err != nil {
			log.Fatalf("main: %s", err)
		}

		el, err := xmlfmt.Parse(r)
		if err != nil {
			log.Fatalf("main: %s", err)
		}
		if err := xmlfmt.Prettify(el, os.Stdout); err != nil {
			log.Fatalf("main: %s", err)
		}
	},
}
