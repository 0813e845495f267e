package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bnema/zoomlevels/internal/cli/model"
	"github.com/bnema/zoomlevels/internal/logging"
)

var (
	simStep  float64
	simWatch bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Explore snapping interactively",
	Long: `Open a terminal simulator of the configured viewport with snapping attached.

Keys:
  +  zoom in by --step        -  zoom out by --step
  h  go home                  i  toggle animated/immediate zoom
  ?  help                     q  quit

With --watch, edits to the config file's levels are applied live.`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	rootCmd.AddCommand(simCmd)
	simCmd.Flags().Float64Var(&simStep, "step", 1.5, "zoom factor per key press (> 1)")
	simCmd.Flags().BoolVarP(&simWatch, "watch", "w", true, "reapply levels when the config file changes")
}

func runSim(_ *cobra.Command, _ []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}

	// Log lines would tear the alternate screen.
	ctx := logging.WithContext(app.Ctx(), zerolog.Nop())

	vp, err := app.NewViewport("sim")
	if err != nil {
		return err
	}
	controller, err := app.NewSnapper(ctx, vp)
	if err != nil {
		return err
	}
	defer controller.Close(ctx)

	p := tea.NewProgram(model.NewSimModel(ctx, app.Theme, vp, controller, simStep), tea.WithAltScreen())

	if simWatch {
		if err := app.WatchLevels(ctx, controller, func() { p.Send(model.LevelsReloadedMsg{}) }); err != nil {
			return fmt.Errorf("watch config: %w", err)
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run simulator: %w", err)
	}
	return nil
}
