package cmd

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/fragredirect/internal/redirect"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <url>...",
	Short: "Print where legacy anchor URLs redirect to",
	Long: `Resolves each URL the way the browser shim would and prints the new
location, or the URL followed by "(unchanged)" when no redirect applies.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, raw := range args {
			u, err := url.Parse(raw)
			if err != nil {
				return fmt.Errorf("parsing %q: %w", raw, err)
			}
			nav := redirect.WriterNavigator{W: out, Base: u}
			ok, err := redirect.New(redirect.URLLocation{URL: u}, nav).Run()
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintf(out, "%s (unchanged)\n", raw)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
