// Package render draws the placeholder images and encodes them as JPEG.
package render

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"io"
	"os"
	"strconv"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
)

const (
	// Width and Height are the fixed canvas dimensions.
	Width  = 448
	Height = 448

	// JPEGQuality is the encoder quality for every generated image.
	JPEGQuality = 85

	// LabelX and LabelY are the top-left corner of the index label.
	LabelX = 10
	LabelY = 10
)

var (
	// ShapeColour fills the decorative shape.
	ShapeColour = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	// LabelColour is used for the index label.
	LabelColour = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// NewCanvas allocates a Width x Height canvas filled with bg.
func NewCanvas(bg color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return img
}

// Image renders the placeholder for index: bg fill, the shape for the index and
// the decimal index label drawn with face.
func Image(index int, bg color.Color, face font.Face) *image.RGBA {
	img := NewCanvas(bg)
	DrawShape(img, ShapeFor(index), ShapeColour)
	DrawLabel(img, face, LabelX, LabelY, strconv.Itoa(index), LabelColour)
	return img
}

// EncodeJPEG writes img to w as a JPEG at JPEGQuality.
func EncodeJPEG(w io.Writer, img image.Image) error {
	if err := jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return fmt.Errorf("failed to encode JPEG: %w", err)
	}
	return nil
}

// WriteJPEG encodes img to path, replacing any existing file.
func WriteJPEG(path string, img image.Image) error {
	f, err := os.Create(path) // #nosec G304 - output path is built by the generator
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}

	bw := bufio.NewWriter(f)
	if err := EncodeJPEG(bw, img); err != nil {
		_ = f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write image file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close image file: %w", err)
	}
	return nil
}
