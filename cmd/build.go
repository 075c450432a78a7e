package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/soorajms0707/soorajms/internal/build"
	"github.com/soorajms0707/soorajms/internal/content"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the portfolio as static files",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := content.Load(appConfig.ContentFile)
		if err != nil {
			return err
		}
		_, err = build.Run(appConfig, p, time.Now(), logger)
		return err
	},
}

func init() {
	buildCmd.Flags().String("out", "", "output directory (default \"dist\")")
	rootCmd.AddCommand(buildCmd)
}
