package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/zoomlevels/internal/application/usecase"
	"github.com/bnema/zoomlevels/internal/cli/styles"
	"github.com/bnema/zoomlevels/internal/infrastructure/config"
)

var (
	configSchemaWrite bool
	configKeysSection string
	configKeysJSON    bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long:  `Show where configuration lives, the effective values and every supported key.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file location",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of config.toml",
	Long: `Print the JSON schema of config.toml, for editor completion and validation.
With --write the schema is saved as config.schema.json next to the config file.`,
	Args: cobra.NoArgs,
	RunE: runConfigSchema,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as JSON",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List every configuration key with its default",
	Args:  cobra.NoArgs,
	RunE:  runConfigKeys,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configSchemaCmd, configShowCmd, configKeysCmd)
	configSchemaCmd.Flags().BoolVarP(&configSchemaWrite, "write", "w", false, "write config.schema.json next to the config file")
	configKeysCmd.Flags().StringVarP(&configKeysSection, "section", "s", "", "only list one section (zoom, viewport, logging, database, profiles)")
	configKeysCmd.Flags().BoolVar(&configKeysJSON, "json", false, "output as JSON")
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}

	path := app.Manager.GetConfigFile()
	renderer := styles.NewConfigRenderer(app.Theme)
	out := cmd.OutOrStdout()

	_, statErr := os.Stat(path)
	fmt.Fprint(out, renderer.RenderPath(path, !errors.Is(statErr, fs.ErrNotExist)))
	if statErr != nil && !errors.Is(statErr, fs.ErrNotExist) {
		fmt.Fprint(out, renderer.RenderError(statErr))
	}
	fmt.Fprintf(out, "  %s %s\n", app.Theme.Subtle.Render("database"), app.Config.Database.Path)
	if logFile := app.Config.Logging.File; logFile != "" {
		fmt.Fprintf(out, "  %s %s\n", app.Theme.Subtle.Render("log file"), logFile)
	} else if def, err := config.GetLogFile(); err == nil {
		fmt.Fprintf(out, "  %s %s\n", app.Theme.Subtle.Render("log file"), app.Theme.Subtle.Render("disabled (suggested "+def+")"))
	}
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}

	if configSchemaWrite {
		path, err := config.WriteSchemaFile(app.Manager.GetConfigFile())
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), styles.NewConfigRenderer(app.Theme).RenderSchemaWritten(path))
		return nil
	}

	data, err := config.GenerateSchema()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(app.Config, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func runConfigKeys(cmd *cobra.Command, _ []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}

	result, err := app.ConfigSchema.Execute(app.Ctx(), usecase.GetConfigSchemaInput{Section: configKeysSection})
	if err != nil {
		return err
	}

	renderer := styles.NewConfigSchemaRenderer(app.Theme)
	if configKeysJSON {
		out, err := renderer.RenderJSON(result.Keys)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(result.Keys))
	return nil
}
