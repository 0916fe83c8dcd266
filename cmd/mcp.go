// file: cmd/mcp.go
// version: 1.0.0
// guid: 5dcebaa3-e26b-45b6-991d-ed18745f88eb

package cmd

import (
	"fmt"
	"log"
	"sync/atomic"

	"github.com/spf13/cobra"

	"github.com/jdfalk/folio/internal/config"
	"github.com/jdfalk/folio/internal/content"
	"github.com/jdfalk/folio/internal/mcptools"
	"github.com/jdfalk/folio/internal/server"
)

// mcpCmd serves the catalog tools over stdio
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve catalog search as MCP tools over stdio",
	Long: `Run an MCP server on stdin/stdout exposing search_content,
get_content and list_content. Logs go to stderr.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, report, err := loadCatalog()
		if err != nil {
			return err
		}
		log.Printf("[INFO] Loaded %d files from %s", len(report.Files), report.Dir)

		var current atomic.Pointer[content.Catalog]
		current.Store(catalog)

		if watch, _ := cmd.Flags().GetBool("watch"); watch || config.AppConfig.WatchContent {
			w, err := watchContent(config.AppConfig.ContentDir, current.Store, nil)
			if err != nil {
				return fmt.Errorf("failed to watch content: %w", err)
			}
			defer w.Stop()
		}

		s := mcptools.NewServer("folio", server.Version, current.Load, config.AppConfig.DefaultLanguage)
		return mcptools.ServeStdio(s)
	},
}

func init() {
	mcpCmd.Flags().Bool("watch", false, "reload content when files change")
}
