// Package inspect supplies the reflection capabilities the browser core
// depends on: listing an object's members, fetching a member's current
// value, and looking up type labels, documentation and source text.
//
// Allowed here:
// - the Provider contract and the reflect-based implementation
// - source/doc lookup for function values
//
// Not allowed here:
// - navigation state, rendering, or anything terminal-related
package inspect

import "errors"

// ErrNoMember is returned by Member for names the value does not expose.
var ErrNoMember = errors.New("no such member")

// Provider is the capability set the browser needs from the host runtime.
// Absent documentation or source text is a normal outcome and is signalled
// with ok=false, never with an error.
type Provider interface {
	// Members lists every member name discoverable on value.
	Members(value any) []string
	// Member fetches the current value of the named member.
	Member(value any, name string) (any, error)
	// TypeOf renders a display label for the value's runtime type.
	TypeOf(value any) string
	// DocOf returns documentation associated with the value, if any.
	DocOf(value any) (string, bool)
	// SourceOf returns the source text that defines the value, if any.
	SourceOf(value any) (string, bool)
}
