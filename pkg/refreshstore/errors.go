package refreshstore

import "errors"

// ErrNotFound is returned when a token does not exist in the store.
var ErrNotFound = errors.New("refreshstore: token not found")

// ErrDuplicate is returned when inserting a token string that already
// exists.
var ErrDuplicate = errors.New("refreshstore: duplicate token")
