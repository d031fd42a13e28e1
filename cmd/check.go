package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/fragredirect/internal/links"
	"github.com/ziadkadry99/fragredirect/internal/progress"
)

var (
	checkInput       string
	checkDocsDir     string
	checkStripPrefix string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check a list of legacy URLs against a local documentation build",
	Long: `Reads legacy URLs (one per line, "#" comments allowed) from --input or stdin,
resolves each one and verifies that the new page exists under the docs
directory. Exits non-zero when any redirect target is missing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		docsDir := cfg.DocsDir
		if checkDocsDir != "" {
			docsDir = checkDocsDir
		}

		var in io.Reader = cmd.InOrStdin()
		if checkInput != "" && checkInput != "-" {
			f, err := os.Open(checkInput)
			if err != nil {
				return fmt.Errorf("opening input: %w", err)
			}
			defer f.Close()
			in = f
		}

		urls, err := links.ReadURLList(in)
		if err != nil {
			return err
		}

		reporter := progress.NewReporter("Checking legacy URLs", cmd.ErrOrStderr())
		reporter.Start(len(urls))

		var results []links.URLResult
		for i, raw := range urls {
			res, err := links.CheckURL(docsDir, checkStripPrefix, raw)
			if err != nil {
				reporter.Finish()
				return err
			}
			results = append(results, res)
			reporter.Update(i+1, raw)
		}
		reporter.Finish()

		out := cmd.OutOrStdout()
		redirected, missing := 0, 0
		for _, res := range results {
			if !res.Redirected {
				continue
			}
			redirected++
			if !res.Exists {
				missing++
				fmt.Fprintf(out, "MISSING %s -> %s\n", res.URL, res.Target)
			}
		}
		fmt.Fprintf(out, "%d URLs, %d redirected, %d missing targets\n", len(results), redirected, missing)

		if missing > 0 {
			return fmt.Errorf("%d redirect targets missing under %s", missing, docsDir)
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().StringVarP(&checkInput, "input", "i", "", "file with one legacy URL per line (default: stdin)")
	checkCmd.Flags().StringVar(&checkDocsDir, "docs", "", "built docs directory (default: docs_dir from config)")
	checkCmd.Flags().StringVar(&checkStripPrefix, "strip-prefix", "", "URL path prefix to drop before looking in the docs directory, e.g. /en/latest")
	rootCmd.AddCommand(checkCmd)
}
