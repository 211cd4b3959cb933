package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/athena-testimages/internal/image"
	"github.com/jmylchreest/athena-testimages/internal/render"
)

// newVerifyCmd represents the verify command.
func newVerifyCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "verify PATH",
		Short: "Check that a manifest or directory lists valid test images",
		Long: `Check every image listed in a manifest file, or every image in a directory.

Manifest lines starting with '#' and blank lines are ignored, matching how the
Athena CLI reads image lists. Each entry must be a non-empty 448x448 JPEG and
must appear only once.

Examples:
  athena-testimages > list.txt
  athena-testimages verify list.txt

  athena-testimages verify images/`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := opts.logger.Named("verify")

			paths, err := image.GatherImagePaths(args[0])
			if err != nil {
				return err
			}

			report := image.Verify(paths, render.Width, render.Height, func(path string, err error) {
				if err != nil {
					logger.Debug("rejected", "path", path, "error", err)
					return
				}
				logger.Debug("ok", "path", path)
			})

			out := cmd.OutOrStdout()
			if !report.OK() {
				table := NewTable("PATH", "REASON")
				for _, f := range report.Failures {
					table.AddRow(f.Path, f.Err.Error())
				}
				fmt.Fprint(out, table.Render())
				return fmt.Errorf("%d of %d images failed verification", len(report.Failures), report.Checked)
			}

			fmt.Fprintf(out, "Verified %d images\n", report.Checked)
			return nil
		},
	}
}
