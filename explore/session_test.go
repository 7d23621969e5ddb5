package explore

import (
	"testing"
)

func testSession(t *testing.T, o fakeObject) *Session {
	t.Helper()
	return NewSession(o, "root", Options{Provider: newFakeProvider()})
}

func TestEnterAndLeavePreserveNodeState(t *testing.T) {
	s := testSession(t, fakeObject{
		"inner": fakeObject{"p": 1, "q": 2, "r": 3},
		"other": 7,
	})
	s.Current().MoveDown(5) // select "other"... list is [inner other]; cursor=1
	s.Current().MoveUp()    // back to "inner"
	node, ok, err := s.Enter()
	if err != nil || !ok {
		t.Fatalf("enter: ok=%v err=%v", ok, err)
	}
	if node.Path() != "root.inner" {
		t.Fatalf("entered path = %q", node.Path())
	}
	node.MoveDown(5)
	if !s.Leave() {
		t.Fatalf("leave failed")
	}
	if s.Current().Path() != "root" {
		t.Fatalf("current after leave = %q", s.Current().Path())
	}
	// Re-entering reuses the same node, cursor position included.
	again, _, err := s.Enter()
	if err != nil {
		t.Fatalf("re-enter: %v", err)
	}
	if again != node {
		t.Fatalf("re-enter built a fresh node")
	}
	if again.Cursor(Public) != 1 {
		t.Fatalf("child cursor = %d, want 1", again.Cursor(Public))
	}
}

func TestLeaveAtRootIsRefused(t *testing.T) {
	s := testSession(t, fakeObject{"a": 1})
	if s.Leave() {
		t.Fatalf("left the root")
	}
	if s.Depth() != 0 {
		t.Fatalf("depth = %d, want 0", s.Depth())
	}
}

func TestJumpToWalksAndPositionsCursors(t *testing.T) {
	s := testSession(t, fakeObject{
		"alpha": fakeObject{"_deep": fakeObject{"leaf": 1}, "x": 2},
		"beta":  3,
	})
	node, err := s.JumpTo("root.alpha._deep")
	if err != nil {
		t.Fatalf("jump: %v", err)
	}
	if node.Path() != "root.alpha._deep" {
		t.Fatalf("jump target = %q", node.Path())
	}
	if s.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", s.Depth())
	}
	if name, _ := s.Root().SelectedName(); name != "alpha" {
		t.Fatalf("root selection = %q, want alpha", name)
	}
	mid := s.trail[1]
	if mid.ActiveCategory() != Private {
		t.Fatalf("jump through a private member did not switch category")
	}
	if name, _ := mid.SelectedName(); name != "_deep" {
		t.Fatalf("mid selection = %q, want _deep", name)
	}
}

func TestJumpToRejectsUnknownSegments(t *testing.T) {
	s := testSession(t, fakeObject{"a": fakeObject{"b": 1}})
	before := s.Current()
	if _, err := s.JumpTo("root.a.nope"); err == nil {
		t.Fatalf("jump to unknown segment succeeded")
	}
	if s.Current() != before {
		t.Fatalf("failed jump moved the session")
	}
}
