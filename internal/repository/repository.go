// Package repository wraps the four collections with the find/insert/
// update/delete primitives the handlers compose. Handlers depend on the
// interfaces; the Mongo implementations live alongside them.
package repository

import "errors"

// ErrDuplicate is returned when an insert collides with a uniqueness
// constraint (wishlist pair index, users email index).
var ErrDuplicate = errors.New("duplicate document")
