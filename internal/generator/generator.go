// Package generator writes batches of placeholder JPEG images and the
// manifest listing them.
package generator

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/image/font"

	"github.com/jmylchreest/athena-testimages/internal/colour"
	"github.com/jmylchreest/athena-testimages/internal/render"
)

// DefaultCount and DefaultOutputDir are the CLI defaults.
const (
	DefaultCount     = 1000
	DefaultOutputDir = "images"
)

// Options configures a Generator.
type Options struct {
	// OutputDir receives the image files. Created if missing.
	OutputDir string

	// Out receives the manifest. Defaults to io.Discard.
	Out io.Writer

	// Logger receives diagnostics. Defaults to a null logger.
	Logger hclog.Logger

	// Rand picks background colours. Nil uses the package-level source.
	Rand *rand.Rand

	// FaceLoader supplies the preferred label face. Nil selects render.GoRegular.
	FaceLoader render.FaceLoader
}

// Generator produces numbered placeholder images sequentially.
type Generator struct {
	dir        string
	manifest   manifest
	logger     hclog.Logger
	rand       *rand.Rand
	faceLoader render.FaceLoader
}

// New creates a Generator from opts.
func New(opts Options) *Generator {
	g := &Generator{
		dir:        opts.OutputDir,
		manifest:   manifest{w: opts.Out},
		logger:     opts.Logger,
		rand:       opts.Rand,
		faceLoader: opts.FaceLoader,
	}
	if g.dir == "" {
		g.dir = DefaultOutputDir
	}
	if g.manifest.w == nil {
		g.manifest.w = io.Discard
	}
	if g.logger == nil {
		g.logger = hclog.NewNullLogger()
	}
	if g.faceLoader == nil {
		g.faceLoader = render.GoRegular
	}
	return g
}

// OutputDir returns the directory images are written to.
func (g *Generator) OutputDir() string {
	return g.dir
}

// Run generates count images. A negative count runs until ctx is cancelled,
// which then ends the run without error. A bounded run that is cancelled
// returns the context error.
func (g *Generator) Run(ctx context.Context, count int) error {
	unbounded := count < 0
	total := count
	if unbounded {
		total = math.MaxInt
	}

	if err := os.MkdirAll(g.dir, 0o755); err != nil { // #nosec G301 - images are meant to be readable by other tools
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	face, ok, err := render.LoadFace(g.faceLoader)
	if !ok {
		g.logger.Debug("preferred label face unavailable, using fallback", "error", err)
	}

	if unbounded {
		err = g.manifest.unboundedHeader()
	} else {
		err = g.manifest.header(count)
	}
	if err != nil {
		return err
	}

	g.logger.Debug("generating images", "dir", g.dir, "count", count, "unbounded", unbounded)

	for i := 0; i < total; i++ {
		if err := ctx.Err(); err != nil {
			if unbounded {
				g.logger.Info("generation stopped", "generated", i)
				return nil
			}
			return fmt.Errorf("generation interrupted after %d images: %w", i, err)
		}

		path, err := g.generate(i, face)
		if err != nil {
			return err
		}
		if err := g.manifest.path(path); err != nil {
			return err
		}
		if (i+1)%ProgressInterval == 0 {
			if err := g.manifest.progress(i + 1); err != nil {
				return err
			}
		}
	}

	if unbounded {
		return nil
	}

	if err := g.pruneFrom(count); err != nil {
		return err
	}
	return g.manifest.footer(count, g.dir)
}

// generate renders and writes the image for index, returning its path.
func (g *Generator) generate(index int, face font.Face) (string, error) {
	bg := colour.Pick(g.rand)
	img := render.Image(index, bg.RGB.Colour(), face)

	path := filepath.Join(g.dir, FileName(index))
	if err := render.WriteJPEG(path, img); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	g.logger.Trace("wrote image", "path", path, "shape", render.ShapeFor(index), "background", bg.String())
	return path, nil
}

// pruneFrom removes generated images left by an earlier, larger run.
// Only files matching FileName with an index >= count are touched.
func (g *Generator) pruneFrom(count int) error {
	entries, err := os.ReadDir(g.dir)
	if err != nil {
		return fmt.Errorf("failed to read output directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		index, ok := ParseFileName(entry.Name())
		if !ok || index < count {
			continue
		}
		path := filepath.Join(g.dir, entry.Name())
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to remove stale image %s: %w", path, err)
		}
		g.logger.Debug("removed stale image", "path", path)
	}
	return nil
}
