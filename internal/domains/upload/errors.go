package upload

import "errors"

var (
	ErrMissingFile = errors.New("missing file")
	ErrNotImage    = errors.New("only image uploads are allowed")
	ErrTooLarge    = errors.New("file exceeds the size limit")
)
