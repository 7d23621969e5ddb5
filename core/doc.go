// Package core contains app-wide contracts and state orchestration for
// the object browser.
//
// Allowed here:
// - model routing, message contracts, the key registry
// - the browse view and modal screens (filter, history, help, fullscreen)
//
// Not allowed here:
// - low-level widget rendering primitives (widgets package)
// - navigation-state bookkeeping (explore package)
package core
