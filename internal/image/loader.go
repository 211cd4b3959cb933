// Package image provides utilities for locating and validating generated images.
package image

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"os"
	"path/filepath"
	"slices"
	"strings"

	_ "golang.org/x/image/bmp"  // Register BMP format
	_ "golang.org/x/image/tiff" // Register TIFF format
	_ "golang.org/x/image/webp" // Register WebP format
)

// ValidateImage checks that path is a non-empty regular file that decodes as
// a JPEG of the given dimensions. Only the header is decoded.
func ValidateImage(path string, width, height int) error {
	if path == "" {
		return fmt.Errorf("image path cannot be empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("image file not found: %s", path)
		}
		return fmt.Errorf("failed to stat image file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", path)
	}
	if info.Size() == 0 {
		return fmt.Errorf("image file is empty: %s", path)
	}

	config, format, err := decodeConfig(path)
	if err != nil {
		return err
	}
	if format != "jpeg" {
		return fmt.Errorf("expected jpeg, got %s", format)
	}
	if config.Width != width || config.Height != height {
		return fmt.Errorf("expected %dx%d, got %dx%d", width, height, config.Width, config.Height)
	}

	return nil
}

// SupportedImageExtensions returns the extensions the classifier client accepts.
// Every listed format has a registered decoder, so a non-JPEG entry is
// reported by name rather than as an unknown format.
func SupportedImageExtensions() []string {
	return []string{".jpg", ".jpeg", ".png", ".bmp", ".gif", ".tiff", ".webp"}
}

// isImageFile checks if a file has a supported image extension.
func isImageFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return slices.Contains(SupportedImageExtensions(), ext)
}

// ScanDirectoryForImages scans a directory and returns all image files in name order.
// It does not recurse into subdirectories, but follows symlinks.
func ScanDirectoryForImages(dirPath string) ([]string, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var imageFiles []string
	for _, entry := range entries {
		fullPath := filepath.Join(dirPath, entry.Name())

		// For symlinks, stat the target to determine if it's a file.
		info, err := os.Stat(fullPath)
		if err != nil {
			// Skip entries we can't stat (broken symlinks, permission issues).
			continue
		}

		if info.IsDir() {
			continue
		}

		if isImageFile(entry.Name()) {
			imageFiles = append(imageFiles, fullPath)
		}
	}

	if len(imageFiles) == 0 {
		return nil, fmt.Errorf("no supported image files found in directory: %s", dirPath)
	}

	return imageFiles, nil
}

// decodeConfig reads the format and dimensions of the image at path without
// decoding the pixel data.
func decodeConfig(path string) (image.Config, string, error) {
	file, err := os.Open(path) // #nosec G304 - manifest entries are intended to be read
	if err != nil {
		return image.Config{}, "", fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	config, format, err := image.DecodeConfig(file)
	if err != nil {
		return image.Config{}, "", fmt.Errorf("unsupported or invalid image format: %w", err)
	}
	return config, format, nil
}
