package explore

import (
	"fmt"
	"strings"
)

// Session is one browsing session over a node tree: the root node plus
// the trail of nodes the user has drilled into. Navigation state lives
// on the nodes themselves, so leaving and re-entering an attribute
// lands on the cursor position it had before.
//
// A session belongs to a single goroutine; concurrent browsing of the
// same value needs a session (and node tree) per viewer.
type Session struct {
	trail []*Node
}

// NewSession wraps value in a root node labelled with label.
func NewSession(value any, label string, opts Options) *Session {
	if strings.TrimSpace(label) == "" {
		label = "root"
	}
	return &Session{trail: []*Node{NewNode(value, label, opts)}}
}

// Root returns the root node.
func (s *Session) Root() *Node { return s.trail[0] }

// Current returns the node being browsed.
func (s *Session) Current() *Node { return s.trail[len(s.trail)-1] }

// Depth returns how many levels deep the session is, 0 at the root.
func (s *Session) Depth() int { return len(s.trail) - 1 }

// Enter drills into the attribute under the cursor. The bool result is
// false when the current node has no selection.
func (s *Session) Enter() (*Node, bool, error) {
	child, ok, err := s.Current().SelectedChild()
	if !ok || err != nil {
		return nil, ok, err
	}
	s.trail = append(s.trail, child)
	return child, true, nil
}

// Leave steps back to the parent node. Reports false at the root.
func (s *Session) Leave() bool {
	if len(s.trail) <= 1 {
		return false
	}
	s.trail = s.trail[:len(s.trail)-1]
	return true
}

// JumpTo re-expands the dotted path from the root and makes its target
// the current node, positioning each cursor along the way. The path may
// include or omit the root label.
func (s *Session) JumpTo(path string) (*Node, error) {
	root := s.Root()
	parts := strings.Split(strings.TrimSpace(path), ".")
	if len(parts) > 0 && parts[0] == root.Path() {
		parts = parts[1:]
	}
	trail := []*Node{root}
	node := root
	for _, name := range parts {
		if name == "" {
			return nil, fmt.Errorf("jump to %q: empty path segment", path)
		}
		if !node.Select(name) {
			return nil, fmt.Errorf("jump to %q: %q is not a member of %s", path, name, node.Path())
		}
		child, err := node.Expand(name)
		if err != nil {
			return nil, fmt.Errorf("jump to %q: %w", path, err)
		}
		trail = append(trail, child)
		node = child
	}
	s.trail = trail
	return node, nil
}
