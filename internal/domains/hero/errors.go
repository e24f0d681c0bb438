package hero

import "errors"

var ErrSlideNotFound = errors.New("hero slide not found")
