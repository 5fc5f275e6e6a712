package downloader

import (
	"errors"
	"fmt"
)

// ErrDownloadFailed reports that the downloader could not be run or exited non-zero.
var ErrDownloadFailed = errors.New("download failed")

// FailedError carries the downloader's captured output alongside the cause.
type FailedError struct {
	Err    error
	Stdout string
	Stderr string
}

func (e *FailedError) Error() string {
	return fmt.Sprintf("%v: %v", ErrDownloadFailed, e.Err)
}

func (e *FailedError) Unwrap() error {
	return e.Err
}

func (e *FailedError) Is(target error) bool {
	return target == ErrDownloadFailed
}
