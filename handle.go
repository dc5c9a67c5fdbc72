package ccui

import (
	"fmt"

	"github.com/lixenwraith/ccui/protocol"
	"github.com/lixenwraith/ccui/style"
	"github.com/lixenwraith/ccui/widget"
)

// ContainerHandle addresses a container by id
// Handles are plain values: copies are interchangeable, and all of them go stale
// together once the id is removed. Commands through a stale handle are dropped by the loop
type ContainerHandle struct {
	id  ID
	doc *Document
}

// ID returns the container id
func (h ContainerHandle) ID() ID {
	return h.id
}

// AddWidget adds a widget as the last child of this container
// The widget's StyleHint is used as its initial style when it has one
func (h ContainerHandle) AddWidget(id ID, w widget.Widget) (WidgetHandle, error) {
	if id == "" {
		return WidgetHandle{}, ErrInvalidID
	}
	if w == nil {
		return WidgetHandle{}, fmt.Errorf("%w: nil widget for %q", ErrInvalidNode, string(id))
	}
	err := h.doc.send(protocol.AddWidget{
		Parent: h.id,
		ID:     id,
		Widget: w,
		Style:  widget.HintFor(w),
	})
	if err != nil {
		return WidgetHandle{}, err
	}
	return WidgetHandle{id: id, doc: h.doc}, nil
}

// AddContainer adds a container as the last child of this container
func (h ContainerHandle) AddContainer(id ID, st style.Style) (ContainerHandle, error) {
	if id == "" {
		return ContainerHandle{}, ErrInvalidID
	}
	if err := h.doc.send(protocol.AddContainer{Parent: h.id, ID: id, Style: st}); err != nil {
		return ContainerHandle{}, err
	}
	return ContainerHandle{id: id, doc: h.doc}, nil
}

// SetStyle replaces the container's style
func (h ContainerHandle) SetStyle(st style.Style) error {
	return h.doc.SetStyle(h.id, st)
}

// Remove deletes the container and everything under it
func (h ContainerHandle) Remove() error {
	return h.doc.Remove(h.id)
}

// WidgetHandle addresses a widget by id; widgets have no children
type WidgetHandle struct {
	id  ID
	doc *Document
}

// ID returns the widget id
func (h WidgetHandle) ID() ID {
	return h.id
}

// Update replaces the widget payload
func (h WidgetHandle) Update(w widget.Widget) error {
	return h.doc.UpdateWidget(h.id, w)
}

// SetStyle replaces the widget's style
func (h WidgetHandle) SetStyle(st style.Style) error {
	return h.doc.SetStyle(h.id, st)
}

// Remove deletes the widget
func (h WidgetHandle) Remove() error {
	return h.doc.Remove(h.id)
}
