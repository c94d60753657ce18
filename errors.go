package pathstore

import "errors"

// ErrPathNotAbsolute is returned when a path given to the store is not
// rooted at the top of the hierarchy.
var ErrPathNotAbsolute = errors.New("path must be absolute")
