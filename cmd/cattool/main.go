package main

import (
	"github.com/onrik/logrus/filename"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	ImagesetsDir = "imagesets"
	PlacesDir    = "places"
	Quiet        bool
	Verbose      bool
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&Quiet, "quiet", "q", false, "Activate quiet log output")
	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "v", false, "Activate verbose log output")
	rootCmd.PersistentFlags().StringVarP(&ImagesetsDir, "imagesets-dir", "i", ImagesetsDir, "Path to the imageset catalog directory")
	rootCmd.PersistentFlags().StringVarP(&PlacesDir, "places-dir", "p", PlacesDir, "Path to the place catalog directory")

	ingestCmd.Flags().BoolVarP(&MemProfile, "mem-profile", "m", false, "Activate memory profile capture")

	rootCmd.AddCommand(formatImagesetsCmd)
	rootCmd.AddCommand(formatPlacesCmd)
	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(prettifyCmd)
	rootCmd.AddCommand(statsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cattool",
	Short: "Curation tool for the WWT core dataset catalogs",
	Long:  "Maintains the flat-file imageset and place catalogs: reshards them into deterministically-keyed files and normalizes their on-disk text form",
	PreRun: func(_ *cobra.Command, _ []string) {
		initLogging()
	},
	Run: func(cmd *cobra.Command, args []string) {
		log.Info("See -h/--help for usage information")
	},
}

func initLogging() {
	level := log.InfoLevel
	if Verbose {
		log.AddHook(filename.NewHook())
		level = log.DebugLevel
	}
	if Quiet {
		level = log.ErrorLevel
	}
	log.SetLevel(level)
}
