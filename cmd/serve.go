// file: cmd/serve.go
// version: 1.0.0
// guid: 6e61d1f4-18ba-4694-a253-d1b56fe5b101

package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/jdfalk/folio/internal/config"
	"github.com/jdfalk/folio/internal/content"
	"github.com/jdfalk/folio/internal/loader"
	"github.com/jdfalk/folio/internal/metrics"
	"github.com/jdfalk/folio/internal/server"
	"github.com/jdfalk/folio/internal/watcher"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start the HTTP API server. With --watch the content directory is
reloaded whenever a content file changes; a bundle that fails validation
is logged and the previous catalog stays published.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, report, err := loadCatalog()
		if err != nil {
			return err
		}
		log.Printf("[INFO] Loaded %d files from %s", len(report.Files), report.Dir)

		srv := server.NewServer(catalog, serverOptions(config.AppConfig))

		if watch, _ := cmd.Flags().GetBool("watch"); watch || config.AppConfig.WatchContent {
			w, err := watchContent(config.AppConfig.ContentDir, srv.Reload, srv.ReportReloadError)
			if err != nil {
				return fmt.Errorf("failed to watch content: %w", err)
			}
			defer w.Stop()
		}

		s := config.AppConfig.Server
		return srv.Start(server.ServerConfig{
			Host:         s.Host,
			Port:         s.Port,
			ReadTimeout:  s.ReadTimeout,
			WriteTimeout: s.WriteTimeout,
			IdleTimeout:  s.IdleTimeout,
		})
	},
}

func init() {
	serveCmd.Flags().Int("port", 8080, "port to run the web server on")
	serveCmd.Flags().String("host", "localhost", "host to bind the web server to")
	serveCmd.Flags().Duration("read-timeout", 15*time.Second, "read timeout (e.g. 15s, 1m)")
	serveCmd.Flags().Duration("write-timeout", 15*time.Second, "write timeout (e.g. 15s, 1m)")
	serveCmd.Flags().Duration("idle-timeout", 60*time.Second, "idle timeout (e.g. 60s, 2m)")
	serveCmd.Flags().Bool("watch", false, "reload content when files change")
}

func serverOptions(cfg config.Config) server.Options {
	return server.Options{
		DefaultLanguage:    cfg.DefaultLanguage,
		CacheTTL:           cfg.Search.CacheTTL,
		CacheSize:          cfg.Search.CacheSize,
		RateLimitPerMinute: cfg.Search.RateLimitPerMinute,
		RateLimitBurst:     cfg.Search.RateLimitBurst,
		DefaultLimit:       cfg.Search.DefaultLimit,
	}
}

// watchContent reloads dir on every settled change and hands each valid
// catalog to publish. Invalid bundles are logged and passed to reject,
// which may be nil.
func watchContent(dir string, publish func(*content.Catalog), reject func(error)) (*watcher.Watcher, error) {
	w := watcher.New(func(root string) {
		reloadContent(root, publish, reject)
	}, watcher.DefaultDebounce, loader.IsContentFile)
	if err := w.Start(dir); err != nil {
		return nil, err
	}
	log.Printf("[INFO] Watching %s for content changes", dir)
	return w, nil
}

func reloadContent(dir string, publish func(*content.Catalog), reject func(error)) bool {
	catalog, report, err := loader.Load(dir)
	if err != nil {
		metrics.IncReloadFailed()
		log.Printf("[ERROR] Content reload failed, keeping previous catalog: %v", err)
		if reject != nil {
			reject(err)
		}
		return false
	}
	metrics.IncReloadSucceeded()
	log.Printf("[INFO] Reloaded %d files from %s", len(report.Files), dir)
	publish(catalog)
	return true
}
