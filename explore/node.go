// Package explore holds the navigation core of the object browser: a
// tree of nodes, one per browsed value, each tracking its own attribute
// lists, cursors, scroll windows and lazily expanded children.
package explore

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jask/objbrowse/inspect"
)

// Category selects which attribute list is being browsed.
type Category int

const (
	Public Category = iota
	Private
)

func (c Category) String() string {
	if c == Private {
		return "private"
	}
	return "public"
}

// Sentinels shown when reflection has nothing to offer. Absence of doc
// or source is an expected outcome, never an error.
const (
	DocMissing    = "no documentation"
	SourceMissing = "source unavailable"
)

// weakrefMember is a back-reference pseudo-member some runtimes expose
// as an ordinary name. It carries nothing inspectable and never appears
// in either attribute list.
const weakrefMember = "__weakref__"

// ErrUnknownMember is returned by Expand for names outside the node's
// member list.
var ErrUnknownMember = errors.New("unknown member")

// Options is the per-tree wiring shared by every node: the reflection
// provider and the pretty-printer used for value previews.
type Options struct {
	Provider inspect.Provider
	// Print renders a value into multi-line display text. Defaults to
	// fmt's Go-syntax representation.
	Print func(any) string
}

func (o *Options) normalize() {
	if o.Print == nil {
		o.Print = func(v any) string { return fmt.Sprintf("%#v", v) }
	}
}

// Node wraps one live value together with the browsing state for its
// attribute lists. Child nodes are created lazily by Expand and cached
// by name, which is what keeps cyclic object graphs from causing
// unbounded recursion: no node ever constructs children it was not
// asked for.
type Node struct {
	value any
	path  string
	opts  *Options

	names  [2][]string // indexed by Category
	active Category
	cursor [2]int
	offset [2]int

	children map[string]*Node

	typeLabel string
	doc       string
	source    string
	hasSource bool

	preview     string
	previewDone bool
}

// NewNode wraps value as a root node. The path is a display label for
// how the node was reached, conventionally the variable name.
func NewNode(value any, path string, opts Options) *Node {
	opts.normalize()
	return newNode(value, path, &opts)
}

func newNode(value any, path string, opts *Options) *Node {
	n := &Node{
		value:    value,
		path:     path,
		opts:     opts,
		children: make(map[string]*Node),
	}
	var public, private []string
	for _, name := range opts.Provider.Members(value) {
		if name == weakrefMember {
			continue
		}
		if strings.HasPrefix(name, "_") {
			private = append(private, name)
		} else {
			public = append(public, name)
		}
	}
	sort.Strings(public)
	sort.Strings(private)
	n.names[Public] = public
	n.names[Private] = private

	n.typeLabel = opts.Provider.TypeOf(value)
	if doc, ok := opts.Provider.DocOf(value); ok && strings.TrimSpace(doc) != "" {
		n.doc = doc
	} else {
		n.doc = DocMissing
	}
	if src, ok := opts.Provider.SourceOf(value); ok {
		n.source = src
		n.hasSource = true
	} else {
		n.source = SourceMissing
	}
	return n
}

// Value returns the wrapped live value.
func (n *Node) Value() any { return n.value }

// Path returns the dotted-path display label for this node.
func (n *Node) Path() string { return n.path }

// TypeLabel returns the display label of the value's runtime type.
func (n *Node) TypeLabel() string { return n.typeLabel }

// HasSource reports whether real source text was found for the value.
func (n *Node) HasSource() bool { return n.hasSource }

// Names returns the attribute names in the given category, sorted.
func (n *Node) Names(c Category) []string { return n.names[c] }

// Len returns the number of attributes in the given category.
func (n *Node) Len(c Category) int { return len(n.names[c]) }

// ActiveCategory returns the category currently being browsed.
func (n *Node) ActiveCategory() Category { return n.active }

// Cursor returns the selection index for the given category.
func (n *Node) Cursor(c Category) int { return n.cursor[c] }

// Offset returns the scroll offset for the given category.
func (n *Node) Offset(c Category) int { return n.offset[c] }

// SwitchCategory changes which list is browsed. Cursor and scroll state
// of both categories survive the switch untouched.
func (n *Node) SwitchCategory(c Category) {
	n.active = c
}

// ToggleCategory flips between the public and private lists.
func (n *Node) ToggleCategory() {
	if n.active == Public {
		n.active = Private
	} else {
		n.active = Public
	}
}

// MoveDown advances the selection in the active list. The scroll window
// only advances once the cursor passes offset+panelHeight; this is one
// row later than a keep-in-view rule and is kept deliberately.
func (n *Node) MoveDown(panelHeight int) {
	c := n.active
	if len(n.names[c]) == 0 {
		return
	}
	if n.cursor[c] < len(n.names[c])-1 {
		n.cursor[c]++
		if n.cursor[c] > n.offset[c]+panelHeight {
			n.offset[c]++
		}
	}
}

// MoveUp retreats the selection in the active list.
func (n *Node) MoveUp() {
	c := n.active
	if len(n.names[c]) == 0 {
		return
	}
	if n.cursor[c] > 0 {
		n.cursor[c]--
		if n.cursor[c] < n.offset[c] {
			n.offset[c]--
		}
	}
}

// MoveTop jumps the selection to the first attribute.
func (n *Node) MoveTop() {
	c := n.active
	if len(n.names[c]) == 0 {
		return
	}
	n.cursor[c] = 0
	n.offset[c] = 0
}

// MoveBottom jumps the selection to the last attribute.
func (n *Node) MoveBottom(panelHeight int) {
	c := n.active
	if len(n.names[c]) == 0 {
		return
	}
	n.cursor[c] = len(n.names[c]) - 1
	n.offset[c] = maxInt(0, n.cursor[c]-panelHeight)
}

// EnsureVisible clamps the active scroll window so the selection is on
// screen. Used after panel resizes and jumps, not by normal movement.
func (n *Node) EnsureVisible(panelHeight int) {
	c := n.active
	if len(n.names[c]) == 0 {
		return
	}
	if panelHeight < 0 {
		panelHeight = 0
	}
	if n.cursor[c] > n.offset[c]+panelHeight {
		n.offset[c] = n.cursor[c] - panelHeight
	}
	if n.cursor[c] < n.offset[c] {
		n.offset[c] = n.cursor[c]
	}
}

// SelectedName returns the attribute under the cursor in the active
// list, or false if that list is empty.
func (n *Node) SelectedName() (string, bool) {
	c := n.active
	if len(n.names[c]) == 0 {
		return "", false
	}
	return n.names[c][n.cursor[c]], true
}

// Select moves the cursor of the appropriate category onto name,
// switching the active category if needed. Reports whether name is a
// member of this node.
func (n *Node) Select(name string) bool {
	c := Public
	if strings.HasPrefix(name, "_") {
		c = Private
	}
	idx := sort.SearchStrings(n.names[c], name)
	if idx >= len(n.names[c]) || n.names[c][idx] != name {
		return false
	}
	n.active = c
	n.cursor[c] = idx
	if n.offset[c] > idx {
		n.offset[c] = idx
	}
	return true
}

// Expand returns the child node for name, constructing and caching it
// on first use. Repeated calls with the same name return the identical
// node, cursor state and all. A failed attribute fetch leaves no entry
// behind, so a later Expand retries.
func (n *Node) Expand(name string) (*Node, error) {
	if child, ok := n.children[name]; ok {
		return child, nil
	}
	if !n.isMember(name) {
		return nil, fmt.Errorf("expand %q: %w", name, ErrUnknownMember)
	}
	value, err := n.opts.Provider.Member(n.value, name)
	if err != nil {
		return nil, fmt.Errorf("expand %q: %w", name, err)
	}
	child := newNode(value, n.path+"."+name, n.opts)
	n.children[name] = child
	return child, nil
}

// SelectedChild expands the attribute under the cursor. The bool result
// is false when the active list is empty, in which case no expansion is
// attempted.
func (n *Node) SelectedChild() (*Node, bool, error) {
	name, ok := n.SelectedName()
	if !ok {
		return nil, false, nil
	}
	child, err := n.Expand(name)
	if err != nil {
		return nil, true, err
	}
	return child, true, nil
}

func (n *Node) isMember(name string) bool {
	for c := range n.names {
		for _, have := range n.names[c] {
			if have == name {
				return true
			}
		}
	}
	return false
}

// AttrRow is one line of the attribute-list projection.
type AttrRow struct {
	Name     string
	Selected bool
}

// VisibleRows projects the active list from the scroll offset, at most
// height rows, marking the row under the cursor.
func (n *Node) VisibleRows(height int) []AttrRow {
	c := n.active
	names := n.names[c]
	if height <= 0 || n.offset[c] >= len(names) {
		return nil
	}
	end := n.offset[c] + height
	if end > len(names) {
		end = len(names)
	}
	rows := make([]AttrRow, 0, end-n.offset[c])
	for i := n.offset[c]; i < end; i++ {
		rows = append(rows, AttrRow{Name: names[i], Selected: i == n.cursor[c]})
	}
	return rows
}

// Counter renders the "(position/total)" label for the active list.
func (n *Node) Counter() string {
	c := n.active
	if len(n.names[c]) == 0 {
		return "(0/0)"
	}
	return fmt.Sprintf("(%d/%d)", n.cursor[c]+1, len(n.names[c]))
}

// Preview returns the pretty-printed value, truncated to height lines
// unless fullscreen. The full rendering is computed once per node.
func (n *Node) Preview(height int, fullscreen bool) string {
	if !n.previewDone {
		n.preview = n.opts.Print(n.value)
		n.previewDone = true
	}
	if fullscreen {
		return n.preview
	}
	return firstLines(n.preview, height)
}

// Doc returns the value's documentation, truncated to height lines
// unless fullscreen. Values without documentation yield DocMissing.
func (n *Node) Doc(height int, fullscreen bool) string {
	if fullscreen {
		return n.doc
	}
	return firstLines(n.doc, height)
}

// Source returns the value's defining source text, truncated to height
// lines unless fullscreen. Values without recoverable source yield
// SourceMissing in both modes.
func (n *Node) Source(height int, fullscreen bool) string {
	if !n.hasSource {
		return SourceMissing
	}
	if fullscreen {
		return n.source
	}
	return firstLines(n.source, height)
}

func firstLines(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
