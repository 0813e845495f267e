package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/zoomlevels/internal/cli"
	"github.com/bnema/zoomlevels/internal/cli/styles"
)

const stdinName = "-"

var replayParallel int

var replayCmd = &cobra.Command{
	Use:   "replay [files...]",
	Short: "Replay recorded zoom events through the snapper",
	Long: `Replay JSON-lines zoom events and print the correction for each one.

Each line is an event such as:
  {"zoom": 3, "current": 2.5, "immediately": false}

"current" is the in-flight zoom when the event fired. When it is omitted the
previous correction is treated as settled. Blank lines and lines starting
with # are ignored.

Every file gets its own viewport and snapper; files are replayed in parallel.
With no file, or with "-", events are read from stdin.

Examples:
  zoomlevels replay session.jsonl
  cat session.jsonl | zoomlevels replay
  zoomlevels replay a.jsonl b.jsonl --parallel 2`,
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().IntVarP(&replayParallel, "parallel", "j", 0, "files replayed at once (default GOMAXPROCS)")
}

func runReplay(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		args = []string{stdinName}
	}

	sources := make([]cli.ReplaySource, 0, len(args))
	for _, name := range args {
		if name == stdinName {
			sources = append(sources, cli.ReplaySource{Name: stdinName, Reader: cmd.InOrStdin()})
			continue
		}
		f, err := os.Open(name)
		if err != nil {
			return fmt.Errorf("open replay file: %w", err)
		}
		defer f.Close()
		sources = append(sources, cli.ReplaySource{Name: name, Reader: f})
	}

	results, err := app.NewReplayer(replayParallel).Run(app.Ctx(), sources)
	if err != nil {
		return err
	}

	printReplay(cmd.OutOrStdout(), styles.NewZoomRenderer(app.Theme), results)
	return nil
}

func printReplay(out io.Writer, renderer *styles.ZoomRenderer, results []cli.ReplayResult) {
	events, snapped := 0, 0
	for _, result := range results {
		for _, line := range result.Lines {
			fmt.Fprintln(out, renderer.RenderReplayLine(line))
		}
		events += len(result.Lines)
		snapped += result.Snapped()
	}
	fmt.Fprintln(out, renderer.RenderReplaySummary(events, snapped, len(results)))
}
