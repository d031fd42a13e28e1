package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/fragredirect/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "fragredirect",
	Short: "Redirect legacy service-page anchors to per-member documentation pages",
	Long: `fragredirect rewrites old deep links such as
  reference/services/s3.html#S3.Client.delete_bucket
into the per-member page layout
  reference/services/s3/client/delete_bucket.html

It resolves single URLs, scans a documentation tree for legacy links, checks
lists of old URLs against a local build, and serves the redirect endpoint plus
the browser shim that calls it.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
