// Package node holds the ID-indexed UI tree.
//
// A Store is not safe for concurrent use: it is owned by the render loop, every
// other goroutine reaches it through commands. Views handed out by Lookup are
// detached copies.
package node

import (
	"github.com/lixenwraith/ccui/style"
	"github.com/lixenwraith/ccui/widget"
)

// ID names a node, unique within a tree
type ID string

// RootID is the container created with every store, it cannot be removed
const RootID ID = "root"

// Kind tags the node variant
type Kind uint8

const (
	KindContainer Kind = iota
	KindWidget
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindContainer:
		return "container"
	case KindWidget:
		return "widget"
	default:
		return "unknown"
	}
}

// Node is the value inserted into a store
type Node struct {
	Kind   Kind
	Style  style.Style
	Widget widget.Widget // KindWidget only
}

// Container returns a container node
func Container(st style.Style) Node {
	return Node{Kind: KindContainer, Style: st}
}

// Widget returns a widget node
func Widget(w widget.Widget, st style.Style) Node {
	return Node{Kind: KindWidget, Style: st, Widget: w}
}

// View is a read-only copy of a stored node
type View struct {
	ID       ID
	Parent   ID // empty for root
	Kind     Kind
	Style    style.Style
	Widget   widget.Widget
	Children []ID
}

// IsContainer reports whether the view is a container
func (v View) IsContainer() bool {
	return v.Kind == KindContainer
}

// Snapshot is the read-only surface the painter sees
type Snapshot interface {
	Root() ID
	Lookup(id ID) (View, bool)
	Len() int
}

// Mutation is an in-place change applied by Store.Update
type Mutation interface {
	apply(e *entry) error
}

// SetStyle replaces the style of any node
type SetStyle struct {
	Style style.Style
}

func (m SetStyle) apply(e *entry) error {
	e.style = m.Style
	return nil
}

// SetWidget replaces the payload of a widget node
type SetWidget struct {
	Widget widget.Widget
}

func (m SetWidget) apply(e *entry) error {
	switch e.kind {
	case KindWidget:
		if m.Widget == nil {
			return wrapID(ErrInvalidNode, e.id)
		}
		e.widget = m.Widget
		return nil
	case KindContainer:
		return wrapID(ErrTypeMismatch, e.id)
	default:
		return wrapID(ErrInvalidNode, e.id)
	}
}
