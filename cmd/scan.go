package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/fragredirect/internal/links"
	"github.com/ziadkadry99/fragredirect/internal/log"
	"github.com/ziadkadry99/fragredirect/internal/walker"
)

var (
	scanJSON          bool
	scanFailOnMissing bool
)

var scanCmd = &cobra.Command{
	Use:   "scan [dir]",
	Short: "Find legacy service anchors in a documentation tree",
	Long: `Walks HTML and Markdown pages under dir (default: docs_dir from the config),
reports every link the redirector would rewrite, the link to use instead, and
whether the new page exists.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		root := cfg.DocsDir
		if len(args) == 1 {
			root = args[0]
		}

		files, err := walker.Walk(walker.Config{
			RootDir: root,
			Include: cfg.Include,
			Exclude: cfg.Exclude,
		})
		if err != nil {
			return fmt.Errorf("walking %s: %w", root, err)
		}
		logger := log.WithComponent("scan")
		logger.Debug().Str("root", root).Int("pages", len(files)).Msg("walked docs tree")

		findings, err := links.Scan(root, files)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		missing := 0
		for _, f := range findings {
			if !f.Exists {
				missing++
			}
		}

		if scanJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if findings == nil {
				findings = []links.Finding{}
			}
			if err := enc.Encode(findings); err != nil {
				return err
			}
		} else {
			for _, f := range findings {
				status := "ok"
				if !f.Exists {
					status = "MISSING"
				}
				fmt.Fprintf(out, "%-7s %s: %s -> %s\n", status, f.File, f.Link, f.Replacement)
			}
			fmt.Fprintf(out, "\n%d pages scanned, %d legacy links, %d missing targets\n", len(files), len(findings), missing)
		}

		if scanFailOnMissing && missing > 0 {
			return fmt.Errorf("%d legacy links point at missing pages", missing)
		}
		return nil
	},
}

func init() {
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "print findings as JSON")
	scanCmd.Flags().BoolVar(&scanFailOnMissing, "fail-on-missing", false, "exit non-zero when a target page is missing")
	rootCmd.AddCommand(scanCmd)
}
