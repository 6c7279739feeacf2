package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algostep/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
	Long: `Show or initialize the algostep configuration.

Configuration is stored in ~/.algostep/config.yaml. Fields missing from the
file keep their defaults.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := getConfig().Marshal()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", getConfig().Path(), data)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Long: `Write the built-in defaults to the config path.

An existing file is only replaced with --force.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force && fileExists(getConfig().Path()) {
			return fmt.Errorf("%s already exists (use --force to overwrite)", getConfig().Path())
		}
		cfg := config.Default()
		cfg.SetPath(getConfig().Path())
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", cfg.Path())
		return nil
	},
}

func init() {
	configInitCmd.Flags().Bool("force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
}
