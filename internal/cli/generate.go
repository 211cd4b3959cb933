package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/athena-testimages/internal/generator"
)

// generateOptions holds the generation flags.
type generateOptions struct {
	count     int
	outputDir string
}

// registerGenerateFlags adds the generation flags to fs.
func registerGenerateFlags(fs *pflag.FlagSet, gen *generateOptions) {
	fs.IntVarP(&gen.count, "num", "n", generator.DefaultCount, "number of images to generate (negative runs until interrupted)")
	fs.StringVarP(&gen.outputDir, "output", "o", generator.DefaultOutputDir, "output directory")
}

// newGenerateCmd returns the explicit form of the root command's default action.
func newGenerateCmd(opts *rootOptions) *cobra.Command {
	gen := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate test images and print their paths",
		Long: `Generate numbered 448x448 JPEG test images and print one path per line.

Header, progress and footer lines start with '#'. A negative --num writes
images until the process is interrupted; no footer is printed in that mode.

Re-running into the same directory overwrites existing images and removes
test_image_NNNN.jpg files beyond the requested count.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, gen)
		},
	}
	registerGenerateFlags(cmd.Flags(), gen)
	return cmd
}

// runGenerate executes a generation run with the manifest on the command's stdout.
func runGenerate(cmd *cobra.Command, opts *rootOptions, gen *generateOptions) error {
	logger := opts.logger.Named("generator")

	g := generator.New(generator.Options{
		OutputDir: gen.outputDir,
		Out:       cmd.OutOrStdout(),
		Logger:    logger,
	})

	return g.Run(cmd.Context(), gen.count)
}
