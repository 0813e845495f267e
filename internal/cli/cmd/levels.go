package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/zoomlevels/internal/application/usecase"
	"github.com/bnema/zoomlevels/internal/cli"
	"github.com/bnema/zoomlevels/internal/cli/styles"
	"github.com/bnema/zoomlevels/internal/domain/entity"
)

var levelsProfile string

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the permitted zoom levels",
	Long: `List the normalized permitted levels in image space and in the simulated
viewport's space. Levels the viewport bounds cannot reach are flagged.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func init() {
	rootCmd.AddCommand(levelsCmd)
	levelsCmd.Flags().StringVarP(&levelsProfile, "profile", "p", "", "list a stored profile instead of the config")
}

func runLevels(cmd *cobra.Command, _ []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}
	ctx := app.Ctx()

	vp, err := app.NewViewport("levels")
	if err != nil {
		return err
	}

	selection := app.LevelSelection()
	if levelsProfile != "" {
		selection = usecase.LevelSelection{Profile: levelsProfile}
	}
	raw, err := usecase.NewSnapperController(vp, app.Profiles).ResolveLevels(ctx, selection)
	if err != nil {
		return err
	}
	levels, err := entity.NewPermittedLevels(raw)
	if err != nil {
		return err
	}

	source := "config"
	if selection.Profile != "" {
		source = "profile " + selection.Profile
	}

	renderer := styles.NewZoomRenderer(app.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderLevels(cli.LevelRows(vp, levels.Values()), source))
	return nil
}
