package node

import (
	"slices"

	"github.com/lixenwraith/ccui/style"
	"github.com/lixenwraith/ccui/widget"
)

// entry is the stored form of a node
type entry struct {
	id       ID
	parent   ID
	kind     Kind
	style    style.Style
	widget   widget.Widget
	children []ID
}

func (e *entry) view() View {
	return View{
		ID:       e.id,
		Parent:   e.parent,
		Kind:     e.kind,
		Style:    e.style,
		Widget:   e.widget,
		Children: slices.Clone(e.children),
	}
}

// Store maps ids to nodes and keeps parent/child links
// Every failed operation leaves the store unchanged
type Store struct {
	nodes map[ID]*entry
}

// NewStore creates a store holding only the root container
func NewStore(rootStyle style.Style) *Store {
	s := &Store{nodes: make(map[ID]*entry, 64)}
	s.nodes[RootID] = &entry{id: RootID, kind: KindContainer, style: rootStyle}
	return s
}

// Root returns the root id
func (s *Store) Root() ID {
	return RootID
}

// Len returns the number of nodes including root
func (s *Store) Len() int {
	return len(s.nodes)
}

// Contains reports whether id is present
func (s *Store) Contains(id ID) bool {
	_, ok := s.nodes[id]
	return ok
}

// Insert appends a new node to parent's children
func (s *Store) Insert(parent, id ID, n Node) error {
	if id == "" {
		return wrapID(ErrInvalidID, id)
	}
	switch n.Kind {
	case KindWidget:
		if n.Widget == nil {
			return wrapID(ErrInvalidNode, id)
		}
	case KindContainer:
		if n.Widget != nil {
			return wrapID(ErrInvalidNode, id)
		}
	default:
		return wrapID(ErrInvalidNode, id)
	}
	if s.Contains(id) {
		return wrapID(ErrDuplicateID, id)
	}
	p, ok := s.nodes[parent]
	if !ok {
		return wrapID(ErrParentNotFound, parent)
	}
	if p.kind != KindContainer {
		return wrapID(ErrParentIsWidget, parent)
	}

	s.nodes[id] = &entry{
		id:     id,
		parent: parent,
		kind:   n.Kind,
		style:  n.Style,
		widget: n.Widget,
	}
	p.children = append(p.children, id)
	return nil
}

// Remove deletes id and its whole subtree, returns the number of nodes removed
func (s *Store) Remove(id ID) (int, error) {
	if id == RootID {
		return 0, wrapID(ErrCannotRemoveRoot, id)
	}
	e, ok := s.nodes[id]
	if !ok {
		return 0, wrapID(ErrNotFound, id)
	}

	if p, ok := s.nodes[e.parent]; ok {
		p.children = slices.DeleteFunc(p.children, func(c ID) bool { return c == id })
	}

	removed := 0
	stack := []ID{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if ce, ok := s.nodes[cur]; ok {
			stack = append(stack, ce.children...)
			delete(s.nodes, cur)
			removed++
		}
	}
	return removed, nil
}

// Update applies a mutation in place, node identity and position are unchanged
func (s *Store) Update(id ID, m Mutation) error {
	if m == nil {
		return wrapID(ErrInvalidNode, id)
	}
	e, ok := s.nodes[id]
	if !ok {
		return wrapID(ErrNotFound, id)
	}
	return m.apply(e)
}

// Lookup returns a detached copy of the node
func (s *Store) Lookup(id ID) (View, bool) {
	e, ok := s.nodes[id]
	if !ok {
		return View{}, false
	}
	return e.view(), true
}

// Walk visits nodes depth-first in child order starting at root
// Returning false from fn skips the node's subtree
func (s *Store) Walk(fn func(v View, depth int) bool) {
	s.walk(RootID, 0, fn)
}

func (s *Store) walk(id ID, depth int, fn func(View, int) bool) {
	e, ok := s.nodes[id]
	if !ok {
		return
	}
	if !fn(e.view(), depth) {
		return
	}
	for _, c := range e.children {
		s.walk(c, depth+1, fn)
	}
}
