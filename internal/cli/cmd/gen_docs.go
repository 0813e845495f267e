package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/bnema/zoomlevels/internal/infrastructure/config"
)

const dirPerm = 0o755

var (
	genDocsOutputDir string
	genDocsFormat    string
)

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Generate man pages or markdown for every command",
	Long: `Generate documentation from the command tree.

Formats:
  man       groff manual pages, installed to $XDG_DATA_HOME/man/man1 by default
  markdown  one markdown file per command, written to ./docs by default

Run 'mandb' afterwards if 'man zoomlevels' does not find the page.

Examples:
  zoomlevels gen-docs
  zoomlevels gen-docs --format markdown --output ./site/cli`,
	Args: cobra.NoArgs,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "Output directory for generated docs")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "Output format: man, markdown")
}

func runGenDocs(cmd *cobra.Command, _ []string) error {
	if genDocsFormat != "man" && genDocsFormat != "markdown" {
		return fmt.Errorf("unsupported format %q (use: man, markdown)", genDocsFormat)
	}

	outputDir := genDocsOutputDir
	if outputDir == "" {
		if genDocsFormat == "man" {
			manDir, err := config.GetManDir()
			if err != nil {
				return fmt.Errorf("resolve man directory: %w", err)
			}
			outputDir = manDir
		} else {
			outputDir = "./docs"
		}
	}

	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// Reproducible output: no "Auto generated by" footer.
	rootCmd.DisableAutoGenTag = true

	out := cmd.OutOrStdout()
	if genDocsFormat == "man" {
		if err := generateManPages(outputDir); err != nil {
			return err
		}
		fmt.Fprintf(out, "Installed man pages to %s\n", outputDir)
		listGenerated(out, outputDir, ".1")
		return nil
	}

	if err := doc.GenMarkdownTree(rootCmd, outputDir); err != nil {
		return fmt.Errorf("generate markdown docs: %w", err)
	}
	fmt.Fprintf(out, "Generated markdown docs in %s\n", outputDir)
	listGenerated(out, outputDir, ".md")
	return nil
}

func generateManPages(outputDir string) error {
	now := time.Now()
	header := &doc.GenManHeader{
		Title:   "ZOOMLEVELS",
		Section: "1",
		Source:  "zoomlevels " + buildInfo.Version,
		Manual:  "zoomlevels Manual",
		Date:    &now,
	}
	if err := doc.GenManTree(rootCmd, header, outputDir); err != nil {
		return fmt.Errorf("generate man pages: %w", err)
	}
	return nil
}

func listGenerated(out io.Writer, dir, ext string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ext {
			fmt.Fprintf(out, "  - %s\n", e.Name())
		}
	}
}
