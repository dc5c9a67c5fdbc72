// Package protocol defines the messages handles send to the render loop and the
// mailbox that carries them.
package protocol

import (
	"github.com/lixenwraith/ccui/node"
	"github.com/lixenwraith/ccui/style"
	"github.com/lixenwraith/ccui/widget"
)

// Command is a message for the render loop
// The set is closed: only types in this package implement it
type Command interface {
	command()
	// Target returns the id the command addresses, empty for Stop
	Target() node.ID
}

// AddWidget inserts a widget node under Parent
type AddWidget struct {
	Parent node.ID
	ID     node.ID
	Widget widget.Widget
	Style  style.Style
}

// AddContainer inserts a container node under Parent
type AddContainer struct {
	Parent node.ID
	ID     node.ID
	Style  style.Style
}

// RemoveNode deletes a node and its subtree
type RemoveNode struct {
	ID node.ID
}

// UpdateStyle replaces a node's style
type UpdateStyle struct {
	ID    node.ID
	Style style.Style
}

// UpdateWidget replaces a widget node's payload
type UpdateWidget struct {
	ID     node.ID
	Widget widget.Widget
}

// GetNode asks for a copy of a node
// Reply must have capacity 1; the loop sends exactly once or closes it unanswered
type GetNode struct {
	ID    node.ID
	Reply chan Reply
}

// Stop asks the loop to shut down after the commands before it
type Stop struct{}

// Reply answers a GetNode
type Reply struct {
	View node.View
	Err  error
}

// NewGetNode creates a query with a ready reply channel
func NewGetNode(id node.ID) GetNode {
	return GetNode{ID: id, Reply: make(chan Reply, 1)}
}

func (AddWidget) command()    {}
func (AddContainer) command() {}
func (RemoveNode) command()   {}
func (UpdateStyle) command()  {}
func (UpdateWidget) command() {}
func (GetNode) command()      {}
func (Stop) command()         {}

func (c AddWidget) Target() node.ID    { return c.ID }
func (c AddContainer) Target() node.ID { return c.ID }
func (c RemoveNode) Target() node.ID   { return c.ID }
func (c UpdateStyle) Target() node.ID  { return c.ID }
func (c UpdateWidget) Target() node.ID { return c.ID }
func (c GetNode) Target() node.ID      { return c.ID }
func (Stop) Target() node.ID           { return "" }

// Name returns a short command name for logs and metrics
func Name(c Command) string {
	switch c.(type) {
	case AddWidget:
		return "add_widget"
	case AddContainer:
		return "add_container"
	case RemoveNode:
		return "remove"
	case UpdateStyle:
		return "update_style"
	case UpdateWidget:
		return "update_widget"
	case GetNode:
		return "get_node"
	case Stop:
		return "stop"
	default:
		return "unknown"
	}
}
