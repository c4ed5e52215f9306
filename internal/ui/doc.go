// Package ui is tutordesk's Bubble Tea terminal interface.
//
// Model is the single UI-state object. It holds the shared *state.Store (the
// last fetched list plus fetch sequencing), the add/edit modal
// (state.Editor) and the pending delete (state.DeleteConfirm). Every network
// call runs as a tea.Cmd and comes back as a message, so handlers never race
// each other.
//
// Layers, top to bottom: help and log overlays, the add/edit form, the delete
// prompts, the search box, and finally the list. A key press goes to the
// topmost open layer only.
//
// Writes follow one rule: success shows a toast and reloads the list with the
// current search and published filter; failure shows a toast and leaves the
// list alone. Search edits are debounced with a sequence-tagged tea.Tick so
// a burst of keystrokes issues a single fetch.
//
// Files:
//
//   - model.go: Model, Options, Update/View and key routing
//   - actions.go: list and write commands, result handling
//   - search.go: debounced search and the published-only filter
//   - form.go, confirm.go: add/edit modal and delete prompts
//   - table.go, header.go, detail.go: rendering
//   - toast.go: stacked, self-expiring notifications
//   - logs.go, help.go: overlays
//   - theme.go, style_helpers.go, keys.go: look and bindings
package ui
