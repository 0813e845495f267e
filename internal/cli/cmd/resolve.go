package cmd

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bnema/zoomlevels/internal/application/usecase"
	"github.com/bnema/zoomlevels/internal/cli"
	"github.com/bnema/zoomlevels/internal/cli/styles"
	"github.com/bnema/zoomlevels/internal/domain/entity"
)

var (
	resolveUp     bool
	resolveDown   bool
	resolveLevels []float64
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <zoom>",
	Short: "Print the level a viewport zoom snaps to",
	Long: `Resolve a viewport-space zoom against the permitted levels.

--up picks the lowest level above the zoom (zooming in), --down the highest
level below it (zooming out). The result is clamped to the simulated
viewport's zoom bounds.

Examples:
  zoomlevels resolve 3 --up                     # Configured levels
  zoomlevels resolve 3 --down --levels 0.25,0.5 # Ad-hoc levels`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().BoolVar(&resolveUp, "up", false, "snap towards higher zoom")
	resolveCmd.Flags().BoolVar(&resolveDown, "down", false, "snap towards lower zoom")
	resolveCmd.Flags().Float64SliceVar(&resolveLevels, "levels", nil, "image-space levels to use instead of the config")
	resolveCmd.MarkFlagsMutuallyExclusive("up", "down")
	resolveCmd.MarkFlagsOneRequired("up", "down")
}

func runResolve(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}
	ctx := app.Ctx()

	zoom, err := parseZoom(args[0])
	if err != nil {
		return err
	}

	vp, err := app.NewViewport("resolve")
	if err != nil {
		return err
	}

	selection := app.LevelSelection()
	if cmd.Flags().Changed("levels") {
		selection = usecase.LevelSelection{Levels: resolveLevels}
	}
	levels, err := usecase.NewSnapperController(vp, app.Profiles).ResolveLevels(ctx, selection)
	if err != nil {
		return err
	}

	snapper, err := usecase.NewZoomSnapper(ctx, usecase.ZoomSnapperConfig{Viewport: vp, Levels: levels})
	if err != nil {
		return err
	}

	direction := entity.ZoomDirectionIn
	snapped := snapper.ResolveUpperLevel(zoom)
	if resolveDown {
		direction = entity.ZoomDirectionOut
		snapped = snapper.ResolveLowerLevel(zoom)
	}

	renderer := styles.NewZoomRenderer(app.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderResolution(zoom, cli.Round(snapped), direction))
	return nil
}

func parseZoom(value string) (float64, error) {
	zoom, err := strconv.ParseFloat(value, 64)
	if err != nil || !(zoom > 0) || math.IsInf(zoom, 0) {
		return 0, fmt.Errorf("zoom must be a positive number (got %q)", value)
	}
	return zoom, nil
}
