package node

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lixenwraith/ccui/style"
	"github.com/lixenwraith/ccui/widget"
)

func text(s string) Node {
	return Widget(widget.NewText(s), style.New())
}

func mustInsert(t *testing.T, s *Store, parent, id ID, n Node) {
	t.Helper()
	if err := s.Insert(parent, id, n); err != nil {
		t.Fatalf("Insert(%q, %q) failed: %v", parent, id, err)
	}
}

func children(t *testing.T, s *Store, id ID) []ID {
	t.Helper()
	v, ok := s.Lookup(id)
	if !ok {
		t.Fatalf("Lookup(%q) failed", id)
	}
	return v.Children
}

// TestNewStoreHasRoot verifies the root container exists from the start
func TestNewStoreHasRoot(t *testing.T) {
	s := NewStore(style.Row())
	v, ok := s.Lookup(RootID)
	if !ok {
		t.Fatal("Expected root to exist")
	}
	if v.Kind != KindContainer {
		t.Errorf("Expected root to be a container, got %v", v.Kind)
	}
	if v.Style.Direction != style.DirectionRow {
		t.Errorf("Expected root style to be kept, got %v", v.Style.Direction)
	}
	if v.Parent != "" {
		t.Errorf("Expected root to have no parent, got %q", v.Parent)
	}
	if s.Len() != 1 || s.Root() != RootID {
		t.Errorf("Expected single root node, got len %d root %q", s.Len(), s.Root())
	}
}

// TestInsertPreservesOrder verifies children keep insertion order
func TestInsertPreservesOrder(t *testing.T) {
	s := NewStore(style.New())
	mustInsert(t, s, RootID, "title", text("Hello"))
	mustInsert(t, s, RootID, "row", Container(style.Row()))
	mustInsert(t, s, "row", "left", text("L"))
	mustInsert(t, s, "row", "right", text("R"))

	if diff := cmp.Diff([]ID{"title", "row"}, children(t, s, RootID)); diff != "" {
		t.Errorf("Root children mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]ID{"left", "right"}, children(t, s, "row")); diff != "" {
		t.Errorf("Row children mismatch (-want +got):\n%s", diff)
	}
	v, _ := s.Lookup("left")
	if v.Parent != "row" || v.Kind != KindWidget {
		t.Errorf("Expected widget under row, got parent %q kind %v", v.Parent, v.Kind)
	}
}

// TestInsertErrors verifies every rejected insert leaves the store unchanged
func TestInsertErrors(t *testing.T) {
	tests := []struct {
		name   string
		parent ID
		id     ID
		node   Node
		want   error
	}{
		{"duplicate", RootID, "a", text("again"), ErrDuplicateID},
		{"duplicate root", RootID, RootID, Container(style.New()), ErrDuplicateID},
		{"missing parent", "ghost", "b", text("b"), ErrParentNotFound},
		{"widget parent", "a", "b", text("b"), ErrParentIsWidget},
		{"empty id", RootID, "", text("b"), ErrInvalidID},
		{"widget without payload", RootID, "b", Node{Kind: KindWidget}, ErrInvalidNode},
		{"container with payload", RootID, "b", Node{Kind: KindContainer, Widget: widget.NewText("x")}, ErrInvalidNode},
		{"unknown kind", RootID, "b", Node{Kind: Kind(9)}, ErrInvalidNode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore(style.New())
			mustInsert(t, s, RootID, "a", text("first"))

			err := s.Insert(tt.parent, tt.id, tt.node)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, err)
			}
			if s.Len() != 2 {
				t.Errorf("Expected store unchanged (2 nodes), got %d", s.Len())
			}
			if diff := cmp.Diff([]ID{"a"}, children(t, s, RootID)); diff != "" {
				t.Errorf("Root children changed (-want +got):\n%s", diff)
			}
			v, _ := s.Lookup("a")
			if got := v.Widget.(widget.Text).Content; got != "first" {
				t.Errorf("Expected original widget kept, got %q", got)
			}
		})
	}
}

// TestErrorsCarryID verifies wrapped errors name the offending id
func TestErrorsCarryID(t *testing.T) {
	s := NewStore(style.New())
	err := s.Insert("missing", "x", text("x"))
	if got, want := err.Error(), fmt.Sprintf("%v: %q", ErrParentNotFound, "missing"); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

// TestRemoveSubtree verifies removal deletes descendants and unlinks from parent
func TestRemoveSubtree(t *testing.T) {
	s := NewStore(style.New())
	mustInsert(t, s, RootID, "title", text("T"))
	mustInsert(t, s, RootID, "row", Container(style.Row()))
	mustInsert(t, s, "row", "left", text("L"))
	mustInsert(t, s, "row", "inner", Container(style.New()))
	mustInsert(t, s, "inner", "deep", text("D"))
	mustInsert(t, s, RootID, "footer", text("F"))

	n, err := s.Remove("row")
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if n != 4 {
		t.Errorf("Expected 4 nodes removed, got %d", n)
	}
	for _, id := range []ID{"row", "left", "inner", "deep"} {
		if s.Contains(id) {
			t.Errorf("Expected %q to be gone", id)
		}
	}
	if diff := cmp.Diff([]ID{"title", "footer"}, children(t, s, RootID)); diff != "" {
		t.Errorf("Root children mismatch (-want +got):\n%s", diff)
	}
	if s.Len() != 3 {
		t.Errorf("Expected 3 nodes left, got %d", s.Len())
	}

	if _, err := s.Remove("row"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound on second remove, got %v", err)
	}
	if err := s.Update("left", SetStyle{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound updating removed node, got %v", err)
	}
}

// TestRemoveRoot verifies root is protected
func TestRemoveRoot(t *testing.T) {
	s := NewStore(style.New())
	mustInsert(t, s, RootID, "a", text("a"))

	if _, err := s.Remove(RootID); !errors.Is(err, ErrCannotRemoveRoot) {
		t.Fatalf("Expected ErrCannotRemoveRoot, got %v", err)
	}
	if s.Len() != 2 {
		t.Errorf("Expected store unchanged, got %d nodes", s.Len())
	}
}

// TestReAddAfterRemove verifies an id can be reused once removed
func TestReAddAfterRemove(t *testing.T) {
	s := NewStore(style.New())
	mustInsert(t, s, RootID, "a", Container(style.New()))
	mustInsert(t, s, "a", "child", text("c"))
	if _, err := s.Remove("a"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	mustInsert(t, s, RootID, "a", text("new"))

	v, ok := s.Lookup("a")
	if !ok || v.Kind != KindWidget {
		t.Fatalf("Expected re-added widget, got %+v", v)
	}
	if len(v.Children) != 0 {
		t.Errorf("Expected no children on re-added node, got %v", v.Children)
	}
}

// TestUpdate verifies in-place mutations and variant checks
func TestUpdate(t *testing.T) {
	s := NewStore(style.New())
	mustInsert(t, s, RootID, "box", Container(style.New()))
	mustInsert(t, s, "box", "w", text("old"))
	mustInsert(t, s, RootID, "after", text("z"))

	if err := s.Update("box", SetStyle{Style: style.Row().WithGap(2)}); err != nil {
		t.Fatalf("SetStyle on container failed: %v", err)
	}
	v, _ := s.Lookup("box")
	if v.Style.Direction != style.DirectionRow || v.Style.Gap != 2 {
		t.Errorf("Expected updated style, got %+v", v.Style)
	}
	if diff := cmp.Diff([]ID{"w"}, v.Children); diff != "" {
		t.Errorf("Expected children kept (-want +got):\n%s", diff)
	}

	if err := s.Update("w", SetWidget{Widget: widget.NewText("new")}); err != nil {
		t.Fatalf("SetWidget failed: %v", err)
	}
	v, _ = s.Lookup("w")
	if got := v.Widget.(widget.Text).Content; got != "new" {
		t.Errorf("Expected new content, got %q", got)
	}

	if err := s.Update("box", SetWidget{Widget: widget.NewText("x")}); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Expected ErrTypeMismatch, got %v", err)
	}
	if err := s.Update("w", SetWidget{}); !errors.Is(err, ErrInvalidNode) {
		t.Errorf("Expected ErrInvalidNode for nil widget, got %v", err)
	}
	if err := s.Update("w", nil); !errors.Is(err, ErrInvalidNode) {
		t.Errorf("Expected ErrInvalidNode for nil mutation, got %v", err)
	}
	if err := s.Update("nope", SetStyle{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}

	if diff := cmp.Diff([]ID{"box", "after"}, children(t, s, RootID)); diff != "" {
		t.Errorf("Expected positions unchanged (-want +got):\n%s", diff)
	}
}

// TestLookupIsDetached verifies views do not alias store state
func TestLookupIsDetached(t *testing.T) {
	s := NewStore(style.New())
	mustInsert(t, s, RootID, "a", text("a"))
	mustInsert(t, s, RootID, "b", text("b"))

	v, _ := s.Lookup(RootID)
	v.Children[0] = "mutated"

	if diff := cmp.Diff([]ID{"a", "b"}, children(t, s, RootID)); diff != "" {
		t.Errorf("Store changed through view (-want +got):\n%s", diff)
	}
	if _, ok := s.Lookup("missing"); ok {
		t.Error("Expected lookup of missing id to fail")
	}
}

// TestWalkOrder verifies depth-first pre-order traversal
func TestWalkOrder(t *testing.T) {
	s := NewStore(style.New())
	mustInsert(t, s, RootID, "a", Container(style.New()))
	mustInsert(t, s, "a", "a1", text("1"))
	mustInsert(t, s, "a", "a2", text("2"))
	mustInsert(t, s, RootID, "b", Container(style.New()))
	mustInsert(t, s, "b", "b1", text("3"))

	type visit struct {
		ID    ID
		Depth int
	}
	var got []visit
	s.Walk(func(v View, depth int) bool {
		got = append(got, visit{v.ID, depth})
		return v.ID != "b"
	})

	want := []visit{{RootID, 0}, {"a", 1}, {"a1", 2}, {"a2", 2}, {"b", 1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Walk order mismatch (-want +got):\n%s", diff)
	}
}

// TestKindString covers kind names
func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindContainer, "container"},
		{KindWidget, "widget"},
		{Kind(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
