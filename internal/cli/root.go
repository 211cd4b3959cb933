// Package cli provides the command-line interface for athena-testimages.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/athena-testimages/internal/version"
)

// rootOptions holds the global flags shared by every command.
type rootOptions struct {
	verbose bool
	quiet   bool
	logger  hclog.Logger
}

// NewRootCmd builds the command tree. Running the root command generates images.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	gen := &generateOptions{}

	rootCmd := &cobra.Command{
		Use:   "athena-testimages",
		Short: "Generate placeholder JPEG images for classifier testing",
		Long: `athena-testimages writes a batch of simple 448x448 JPEG images (a coloured
background, a white shape and the image index) and prints their paths, one per
line, to standard output.

The output is meant to be redirected to a file and passed to the Athena CLI as
an image list. Lines starting with '#' are comments.

Examples:
  # Generate 1000 images into ./images
  athena-testimages > my_imagefile.txt
  athena-cli classify -i my_imagefile.txt

  # Generate 50 images into /tmp/fixtures
  athena-testimages -n 50 -o /tmp/fixtures

  # Keep generating until interrupted
  athena-testimages -n -1

  # Check a generated list
  athena-testimages verify my_imagefile.txt`,
		Version:      version.Short(),
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.verbose && opts.quiet {
				return fmt.Errorf("--verbose and --quiet are mutually exclusive")
			}
			opts.logger = newLogger(cmd.ErrOrStderr(), opts.verbose, opts.quiet)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, gen)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "only log errors to stderr")
	registerGenerateFlags(rootCmd.Flags(), gen)

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newGenerateCmd(opts))
	rootCmd.AddCommand(newVerifyCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// newLogger builds the diagnostics logger. Diagnostics always go to w (stderr)
// so that stdout carries only the manifest.
func newLogger(w io.Writer, verbose, quiet bool) hclog.Logger {
	level := hclog.Warn
	switch {
	case verbose:
		level = hclog.Debug
	case quiet:
		level = hclog.Error
	}

	color := hclog.ColorOff
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) { // #nosec G115 -- file descriptors fit in int
		color = hclog.AutoColor
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "athena-testimages",
		Output: w,
		Level:  level,
		Color:  color,
	})
}

// newVersionCmd represents the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
