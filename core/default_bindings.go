package core

import "strings"

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"q", "ctrl+c"}, Action: "quit", Description: "quit", Scopes: []string{ScopeBrowse}},
		{Keys: []string{"j", "down"}, Action: "move-down", Description: "down", Scopes: []string{ScopeBrowse}},
		{Keys: []string{"k", "up"}, Action: "move-up", Description: "up", Scopes: []string{ScopeBrowse}},
		{Keys: []string{"g", "home"}, Action: "move-top", Description: "top", Scopes: []string{ScopeBrowse}},
		{Keys: []string{"G", "end"}, Action: "move-bottom", Description: "bottom", Scopes: []string{ScopeBrowse}},
		{Keys: []string{"tab"}, Action: "toggle-category", Description: "public/private", Scopes: []string{ScopeBrowse}},
		{Keys: []string{"enter", "l", "right"}, Action: "enter", Description: "drill in", Scopes: []string{ScopeBrowse}},
		{Keys: []string{"esc", "h", "left", "backspace"}, Action: "parent", Description: "go up", Scopes: []string{ScopeBrowse}},
		{Keys: []string{"p"}, Action: "mode-preview", Description: "preview", Scopes: []string{ScopeBrowse}},
		{Keys: []string{"d"}, Action: "mode-doc", Description: "docs", Scopes: []string{ScopeBrowse}},
		{Keys: []string{"s"}, Action: "mode-source", Description: "source", Scopes: []string{ScopeBrowse}},
		{Keys: []string{"o"}, Action: "mode-overview", Description: "overview", Scopes: []string{ScopeBrowse}},
		{Keys: []string{"f"}, Action: "fullscreen", Description: "fullscreen", Scopes: []string{ScopeBrowse}},
		{Keys: []string{">"}, Action: "pane-wider", Description: "wider list", Scopes: []string{ScopeBrowse}},
		{Keys: []string{"<"}, Action: "pane-narrower", Description: "narrower list", Scopes: []string{ScopeBrowse}},
		{Keys: []string{"/"}, Action: "open-filter", Description: "filter", Scopes: []string{ScopeBrowse}},
		{Keys: []string{"b"}, Action: "bookmark", Description: "bookmark", Scopes: []string{ScopeBrowse}},
		{Keys: []string{"H"}, Action: "open-history", Description: "history", Scopes: []string{ScopeBrowse}},
		{Keys: []string{"?"}, Action: "open-help", Description: "help", Scopes: []string{ScopeBrowse}},
		{Keys: []string{"esc"}, Action: "close", Description: "close", Scopes: []string{ScopeFilter, ScopeHistory, ScopeHelp, ScopeFullscreen}},
		{Keys: []string{"enter"}, Action: "select", Description: "select", Scopes: []string{ScopeFilter, ScopeHistory}},
	}
}

// DefaultKeybindingsByAction reduces bindings to a first-wins action map,
// the shape used for config overrides.
func DefaultKeybindingsByAction(bindings []KeyBinding) map[string][]string {
	out := make(map[string][]string, len(bindings))
	for _, b := range bindings {
		if strings.TrimSpace(b.Action) == "" || len(b.Keys) == 0 {
			continue
		}
		if _, exists := out[b.Action]; exists {
			continue
		}
		out[b.Action] = append([]string(nil), b.Keys...)
	}
	return out
}

// ApplyActionKeybindings swaps in per-action key overrides, leaving
// untouched actions on their defaults.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out
}
