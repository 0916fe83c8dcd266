// file: cmd/config.go
// version: 1.0.0
// guid: e5c22a94-3911-4608-8703-2ae573c61844

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jdfalk/folio/internal/config"
)

var (
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Inspect or write the configuration file",
	}

	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.Marshal(config.AppConfig)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("path")
			force, _ := cmd.Flags().GetBool("force")
			if path == "" {
				path = config.DefaultConfigPath()
			}
			if err := config.SaveConfigToFile(config.AppConfig, path, force); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("wrote "+path))
			return nil
		},
	}
)

func init() {
	configInitCmd.Flags().String("path", "", "destination (default is $HOME/"+config.DefaultConfigName+")")
	configInitCmd.Flags().Bool("force", false, "overwrite an existing file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
