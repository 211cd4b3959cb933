package generator

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
)

// ProgressInterval is the number of images between progress comments.
const ProgressInterval = 100

var fileNamePattern = regexp.MustCompile(`^test_image_(\d{4,})\.jpg$`)

// FileName returns the image file name for index, zero-padded to four digits.
func FileName(index int) string {
	return fmt.Sprintf("test_image_%04d.jpg", index)
}

// ParseFileName returns the index encoded in a generated file name. Only the
// exact names FileName produces are accepted, so "test_image_00001.jpg" is
// not treated as index 1.
func ParseFileName(name string) (int, bool) {
	m := fileNamePattern.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	index, err := strconv.Atoi(m[1])
	if err != nil || FileName(index) != name {
		return 0, false
	}
	return index, true
}

// manifest writes the line-oriented output consumed by the classifier CLI.
// Comment lines start with '#'.
type manifest struct {
	w io.Writer
}

func (m manifest) line(format string, args ...any) error {
	if _, err := fmt.Fprintf(m.w, format+"\n", args...); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

func (m manifest) header(count int) error {
	return m.line("# Image Test file with %d images", count)
}

func (m manifest) unboundedHeader() error {
	return m.line("# Image Test file with unlimited images (infinite mode)")
}

func (m manifest) path(p string) error {
	return m.line("%s", p)
}

func (m manifest) progress(generated int) error {
	return m.line("# Generated %d images...", generated)
}

func (m manifest) footer(count int, dir string) error {
	return m.line("# Successfully generated %d test images in %s", count, dir)
}
