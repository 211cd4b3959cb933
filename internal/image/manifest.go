package image

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadManifest returns the image paths listed in r, one per line.
// Blank lines and lines starting with '#' are ignored.
func ReadManifest(r io.Reader) ([]string, error) {
	var paths []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		paths = append(paths, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return paths, nil
}

// GatherImagePaths resolves path to a list of images. A directory is scanned
// for supported image files; a file is read as a manifest.
func GatherImagePaths(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("path does not exist: %s", path)
		}
		return nil, fmt.Errorf("failed to access path: %w", err)
	}

	if info.IsDir() {
		return ScanDirectoryForImages(path)
	}

	f, err := os.Open(path) // #nosec G304 - User-specified manifest, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer f.Close()

	paths, err := ReadManifest(f)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no image paths found in manifest: %s", path)
	}
	return paths, nil
}
