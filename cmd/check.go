// file: cmd/check.go
// version: 1.0.0
// guid: 9ac578dc-fb2f-4955-b8fb-7b1184b53ac5

package cmd

import (
	"errors"
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/jdfalk/folio/internal/config"
	"github.com/jdfalk/folio/internal/content"
	"github.com/jdfalk/folio/internal/loader"
)

// checkCmd validates a content directory without serving it
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the content directory",
	Long: `Read every content and overlay file, report problems, and print
record counts. Exits non-zero when the bundle would be rejected, or on any
warning when --strict is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		strict, _ := cmd.Flags().GetBool("strict")
		quiet, _ := cmd.Flags().GetBool("quiet")
		dir := config.AppConfig.ContentDir

		files, err := loader.Files(dir)
		if err != nil {
			return err
		}

		var opts []loader.Option
		if !quiet {
			bar := progressbar.NewOptions(len(files),
				progressbar.OptionSetWriter(cmd.ErrOrStderr()),
				progressbar.OptionSetDescription("reading content"),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)
			defer bar.Finish()
			opts = append(opts, loader.WithProgress(func(string) { _ = bar.Add(1) }))
		}

		out := cmd.OutOrStdout()
		_, report, err := loader.Load(dir, opts...)
		for _, w := range report.Warnings {
			fmt.Fprintln(out, warningStyle.Render("warning: ")+w)
		}
		if err != nil {
			fmt.Fprintln(out, errorStyle.Render("invalid: ")+err.Error())
			return errors.New("content check failed")
		}

		for _, kind := range content.Kinds() {
			fmt.Fprintf(out, "%-12s %d\n", kind.Plural(), report.Counts[kind])
		}
		if strict && len(report.Warnings) > 0 {
			return fmt.Errorf("content check failed: %d warnings", len(report.Warnings))
		}
		fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("ok: %d files in %s", len(report.Files), dir)))
		return nil
	},
}

func init() {
	checkCmd.Flags().Bool("strict", false, "treat warnings as errors")
	checkCmd.Flags().BoolP("quiet", "q", false, "hide the progress bar")
}
