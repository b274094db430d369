package appointment

import "errors"

// ErrNotFound is returned by the store when a referenced record does not
// exist. Use cases translate it into the entity-specific business error.
var ErrNotFound = errors.New("not found")
