package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/soorajms0707/soorajms/internal/content"
	"github.com/soorajms0707/soorajms/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio over HTTP",
	Long: `Serves the portfolio page under the configured base path along with its
static assets and public files. When a content file is given it is watched
and the page is re-rendered from the new content on change.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		store, err := content.NewStore(appConfig.ContentFile)
		if err != nil {
			return err
		}

		go func() {
			if err := store.Watch(ctx, logger); err != nil {
				logger.Error("content watcher stopped", "error", err)
			}
		}()

		return server.New(appConfig, store, logger).Run(ctx)
	},
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (default 8080, or $PORT)")
	rootCmd.AddCommand(serveCmd)
}
