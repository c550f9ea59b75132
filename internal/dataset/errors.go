package dataset

import (
	"errors"
	"fmt"
)

// ErrDataUnavailable is matched by every load failure: missing file,
// unreadable content, or a header without the identifying columns.
var ErrDataUnavailable = errors.New("dataset unavailable")

type DataUnavailableError struct {
	Path string
	Err  error
}

func (e *DataUnavailableError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("dataset unavailable: %v", e.Err)
	}
	return fmt.Sprintf("dataset %q unavailable: %v", e.Path, e.Err)
}

func (e *DataUnavailableError) Unwrap() error {
	return e.Err
}

func (e *DataUnavailableError) Is(target error) bool {
	return target == ErrDataUnavailable
}

func unavailable(path string, err error) error {
	return &DataUnavailableError{Path: path, Err: err}
}
