package node

import (
	"errors"
	"fmt"
)

// Structural errors returned by Store operations
// Returned errors wrap one of these with the offending id, match with errors.Is
var (
	ErrDuplicateID      = errors.New("duplicate node id")
	ErrNotFound         = errors.New("node not found")
	ErrParentNotFound   = errors.New("parent not found")
	ErrParentIsWidget   = errors.New("parent is a widget")
	ErrCannotRemoveRoot = errors.New("cannot remove root")
	ErrTypeMismatch     = errors.New("node type mismatch")
	ErrInvalidID        = errors.New("invalid node id")
	ErrInvalidNode      = errors.New("invalid node")
)

func wrapID(err error, id ID) error {
	return fmt.Errorf("%w: %q", err, string(id))
}
