// Package objbrowse is an interactive terminal browser for live Go
// values: point it at any object and walk its fields, methods and map
// entries, inspecting each attribute's type, documentation, source text
// and a pretty-printed preview.
//
//	cfg := loadMyConfig()
//	if err := objbrowse.Explore(cfg, objbrowse.WithLabel("cfg")); err != nil {
//		log.Fatal(err)
//	}
package objbrowse

import (
	"github.com/jask/objbrowse/core"
	"github.com/jask/objbrowse/internal/config"
	"github.com/jask/objbrowse/internal/history"
)

type options struct {
	label      string
	useHistory bool
}

// Option adjusts how Explore runs.
type Option func(*options)

// WithLabel names the root object in the breadcrumb and in recorded
// paths. The default label is "root".
func WithLabel(label string) Option {
	return func(o *options) { o.label = label }
}

// WithoutHistory skips the on-disk visit history for this session.
func WithoutHistory() Option {
	return func(o *options) { o.useHistory = false }
}

// Explore opens the browser over value and blocks until the user quits.
func Explore(value any, opts ...Option) error {
	o := options{label: "root", useHistory: true}
	for _, opt := range opts {
		opt(&o)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var store *history.Store
	if o.useHistory && cfg.History.Enabled {
		// History is a convenience; browse on without it if the
		// database cannot be opened.
		store, _ = history.Open(cfg.History.Path)
	}
	if store != nil {
		defer store.Close()
	}

	return core.Run(value, o.label, cfg, store)
}
