// Package colour provides the fixed background palette used for generated images.
package colour

import (
	"fmt"
	"image/color"
	"math/rand/v2"
)

// RGB is an opaque 8-bit colour.
type RGB struct {
	R, G, B uint8
}

// Hex returns the RGB color as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// Colour returns the opaque color.RGBA equivalent.
func (rgb RGB) Colour() color.RGBA {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// NamedColour is a palette entry.
type NamedColour struct {
	Name string
	RGB  RGB
}

// String returns "Name (#rrggbb)".
func (n NamedColour) String() string {
	return fmt.Sprintf("%s (%s)", n.Name, n.RGB.Hex())
}

var palette = [...]NamedColour{
	{Name: "Red", RGB: RGB{255, 0, 0}},
	{Name: "Green", RGB: RGB{0, 255, 0}},
	{Name: "Blue", RGB: RGB{0, 0, 255}},
	{Name: "Yellow", RGB: RGB{255, 255, 0}},
	{Name: "Magenta", RGB: RGB{255, 0, 255}},
	{Name: "Cyan", RGB: RGB{0, 255, 255}},
	{Name: "Orange", RGB: RGB{255, 128, 0}},
	{Name: "Purple", RGB: RGB{128, 0, 255}},
	{Name: "Pink", RGB: RGB{255, 192, 203}},
	{Name: "Dark Green", RGB: RGB{0, 128, 0}},
	{Name: "Gray", RGB: RGB{128, 128, 128}},
	{Name: "Black", RGB: RGB{0, 0, 0}},
	{Name: "White", RGB: RGB{255, 255, 255}},
	{Name: "Maroon", RGB: RGB{128, 0, 0}},
	{Name: "Teal", RGB: RGB{0, 128, 128}},
	{Name: "Olive", RGB: RGB{128, 128, 0}},
	{Name: "Navy", RGB: RGB{0, 0, 128}},
	{Name: "Chocolate", RGB: RGB{210, 105, 30}},
	{Name: "Gold", RGB: RGB{255, 215, 0}},
	{Name: "Steel Blue", RGB: RGB{70, 130, 180}},
}

// Pick returns a palette entry chosen uniformly at random from r.
// A nil r uses the package-level source.
func Pick(r *rand.Rand) NamedColour {
	if r == nil {
		return palette[rand.IntN(len(palette))] // #nosec G404 -- colour choice is not security sensitive
	}
	return palette[r.IntN(len(palette))]
}
