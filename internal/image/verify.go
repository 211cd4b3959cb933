package image

import "errors"

// Failure records why a listed image was rejected.
type Failure struct {
	Path string
	Err  error
}

// Report summarises a verification pass.
type Report struct {
	Checked  int
	Failures []Failure
}

// OK reports whether every entry passed.
func (r Report) OK() bool {
	return len(r.Failures) == 0
}

// Verify validates each path with ValidateImage and flags duplicate entries.
// The visit callback, if non-nil, is invoked once per path with its result.
func Verify(paths []string, width, height int, visit func(path string, err error)) Report {
	report := Report{}
	seen := make(map[string]struct{}, len(paths))

	for _, path := range paths {
		report.Checked++

		var err error
		if _, dup := seen[path]; dup {
			err = errors.New("duplicate entry")
		} else {
			seen[path] = struct{}{}
			err = ValidateImage(path, width, height)
		}

		if err != nil {
			report.Failures = append(report.Failures, Failure{Path: path, Err: err})
		}
		if visit != nil {
			visit(path, err)
		}
	}

	return report
}
