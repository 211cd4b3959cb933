package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// LabelSize is the point size of the preferred label face at 72 DPI.
const LabelSize = 11

// FaceLoader acquires the preferred label face.
type FaceLoader func() (font.Face, error)

// errNoLoader is reported when LoadFace is given a nil loader.
var errNoLoader = errors.New("no face loader configured")

// GoRegular loads the bundled Go Regular TrueType face at LabelSize.
func GoRegular() (font.Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Go Regular: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    LabelSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Go Regular face: %w", err)
	}
	return face, nil
}

// FallbackFace is the built-in bitmap face used when the preferred face is unavailable.
func FallbackFace() font.Face {
	return basicfont.Face7x13
}

// LoadFace tries load and reports whether the preferred face was obtained.
// On failure it returns FallbackFace, false and the load error for logging;
// the error is informational and never needs to be propagated.
func LoadFace(load FaceLoader) (font.Face, bool, error) {
	if load == nil {
		return FallbackFace(), false, errNoLoader
	}
	face, err := load()
	if err != nil || face == nil {
		if err == nil {
			err = errors.New("face loader returned no face")
		}
		return FallbackFace(), false, err
	}
	return face, true, nil
}

// DrawLabel draws text in c with its top-left corner at (x, y).
func DrawLabel(dst *image.RGBA, face font.Face, x, y int, text string, c color.Color) {
	if face == nil {
		face = FallbackFace()
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(x),
			Y: fixed.I(y) + face.Metrics().Ascent,
		},
	}
	d.DrawString(text)
}
