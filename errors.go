package ccui

import (
	"github.com/lixenwraith/ccui/node"
	"github.com/lixenwraith/ccui/protocol"
)

// ID names a node; unique within a document
type ID = node.ID

// RootID is the implicit top-level container every document starts with
const RootID = node.RootID

// Errors returned by document and handle operations, match with errors.Is
var (
	ErrDuplicateID      = node.ErrDuplicateID
	ErrNotFound         = node.ErrNotFound
	ErrParentNotFound   = node.ErrParentNotFound
	ErrParentIsWidget   = node.ErrParentIsWidget
	ErrCannotRemoveRoot = node.ErrCannotRemoveRoot
	ErrTypeMismatch     = node.ErrTypeMismatch
	ErrInvalidID        = node.ErrInvalidID
	ErrInvalidNode      = node.ErrInvalidNode
	ErrChannelClosed    = protocol.ErrChannelClosed
)
