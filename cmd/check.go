package cmd

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/soorajms0707/soorajms/internal/content"
	"github.com/soorajms0707/soorajms/internal/page"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify navigation anchors and simulate scrolling",
	Long: `Renders the page, checks that every navigation link and scroll target
resolves to exactly one element, then scrolls a simulated viewport through
the page to confirm each section reveals once and the progress indicator
stays monotonic and bounded.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := content.Load(appConfig.ContentFile)
		if err != nil {
			return err
		}

		var buf bytes.Buffer
		if err := page.Render(&buf, p, page.OptionsFrom(appConfig, time.Now())); err != nil {
			return fmt.Errorf("render page: %w", err)
		}

		report, err := page.Check(&buf)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "sections:    %d (%s)\n", len(report.Sections), strings.Join(report.Sections, ", "))
		fmt.Fprintf(out, "nav links:   %d\n", report.NavLinks)
		fmt.Fprintf(out, "revealed:    %d\n", report.Revealed)
		fmt.Fprintf(out, "frames:      %d\n", report.Frames)
		fmt.Fprintf(out, "final scale: %.3f\n", report.FinalScale)
		fmt.Fprintln(out, "ok")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
