package subtitle

import "errors"

// ErrUnsupportedFormat is returned for extensions with no registered extractor.
var ErrUnsupportedFormat = errors.New("unsupported subtitle format")

// Extractor pulls the dialogue text out of a subtitle file, in file order,
// joined by single spaces.
type Extractor interface {
	Extract(path string) (string, error)
}

// Registry is an Extractor that dispatches on file extension.
type Registry interface {
	Extractor
	Register(ext string, e Extractor)
	Supported() []string
}
