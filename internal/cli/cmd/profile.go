package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/zoomlevels/internal/cli/styles"
)

var profileCmd = &cobra.Command{
	Use:     "profile",
	Aliases: []string{"profiles"},
	Short:   "Manage stored zoom level profiles",
	Long: `Profiles are named level sets kept in the local database.
Set zoom.profile in the config file to snap with a profile instead of zoom.levels.`,
}

var profileSaveCmd = &cobra.Command{
	Use:   "save <name> [levels...]",
	Short: "Create or replace a profile",
	Long: `Save a profile. Levels are image-space factors; they are sorted and
deduplicated before storage. A profile without levels disables snapping.

Examples:
  zoomlevels profile save slides 0.25 0.5 1 2`,
	Args: cobra.MinimumNArgs(1),
	RunE: runProfileSave,
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored profiles",
	Args:  cobra.NoArgs,
	RunE:  runProfileList,
}

var profileShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a stored profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileShow,
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a stored profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileDelete,
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSaveCmd, profileListCmd, profileShowCmd, profileDeleteCmd)
}

func runProfileSave(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}

	levels := make([]float64, 0, len(args)-1)
	for _, arg := range args[1:] {
		level, err := parseZoom(arg)
		if err != nil {
			return err
		}
		levels = append(levels, level)
	}

	profile, err := app.Profiles.Save(app.Ctx(), args[0], levels)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewProfilesRenderer(app.Theme).RenderSaved(profile))
	return nil
}

func runProfileList(cmd *cobra.Command, _ []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}

	profiles, err := app.Profiles.List(app.Ctx())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewProfilesRenderer(app.Theme).RenderList(profiles))
	return nil
}

func runProfileShow(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}

	profile, err := app.Profiles.Get(app.Ctx(), args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewProfilesRenderer(app.Theme).RenderProfile(profile))
	return nil
}

func runProfileDelete(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}

	if err := app.Profiles.Delete(app.Ctx(), args[0]); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewProfilesRenderer(app.Theme).RenderDeleted(args[0]))
	return nil
}
