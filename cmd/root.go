// file: cmd/root.go
// version: 2.0.0
// guid: 6a7b8c9d-0e1f-2a3b-4c5d-6e7f8a9b0c1d

package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jdfalk/folio/internal/config"
	"github.com/jdfalk/folio/internal/content"
	"github.com/jdfalk/folio/internal/loader"
)

var cfgFile string
var contentDir string
var language string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Serve and search a bilingual portfolio catalog",
	Long: `Folio loads portfolio projects, experiences and pages from a content
directory, localizes them to English or Japanese, and serves ranked fuzzy
search over them via HTTP, MCP or the command line.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.InitConfig()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/"+config.DefaultConfigName+")")
	rootCmd.PersistentFlags().StringVar(&contentDir, "content", "content", "content directory")
	rootCmd.PersistentFlags().StringVar(&language, "lang", "en", "display language (en or ja)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(configCmd)
}

// bindFlags connects flags to their viper keys. It runs from initConfig
// so every subcommand's flags are already defined.
func bindFlags() {
	viper.BindPFlag("content_dir", rootCmd.PersistentFlags().Lookup("content"))
	viper.BindPFlag("default_language", rootCmd.PersistentFlags().Lookup("lang"))

	viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
	viper.BindPFlag("server.host", serveCmd.Flags().Lookup("host"))
	viper.BindPFlag("server.read_timeout", serveCmd.Flags().Lookup("read-timeout"))
	viper.BindPFlag("server.write_timeout", serveCmd.Flags().Lookup("write-timeout"))
	viper.BindPFlag("server.idle_timeout", serveCmd.Flags().Lookup("idle-timeout"))
}

func initConfig() {
	bindFlags()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(strings.TrimSuffix(config.DefaultConfigName, ".yaml"))
	}

	viper.SetEnvPrefix(config.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// stdout may be an MCP transport, so this goes to the log
	if err := viper.ReadInConfig(); err == nil {
		log.Printf("[INFO] Using config file: %s", viper.ConfigFileUsed())
	}
}

// loadCatalog reads the configured content directory.
func loadCatalog(opts ...loader.Option) (*content.Catalog, *loader.Report, error) {
	dir := config.AppConfig.ContentDir
	catalog, report, err := loader.Load(dir, opts...)
	if err != nil {
		return nil, report, fmt.Errorf("load %s: %w", dir, err)
	}
	return catalog, report, nil
}
