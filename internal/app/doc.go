// Package app is the composition root for tutordesk.
//
// Run loads config.toml and prefs.toml, builds the tutorials HTTP client
// and the shared state.Store, then hands them to the Bubble Tea UI. When
// refresh_interval is set, a background poller re-runs the current query on
// that cadence through the same store, so results are sequenced against
// fetches the UI issues itself.
//
//	Run()
//	  ├─> config.Load()         settings (api_url, timeouts, debounce)
//	  ├─> tea.LogToFile()       when log_file is set, otherwise discard
//	  ├─> prefs.Load()          theme and detail pane
//	  ├─> tutorials.NewClient() REST client
//	  ├─> StartPoller()         optional background reloads
//	  └─> ui.Run()              blocks until quit or signal
//
// Export performs a single list request and writes the result as HTML,
// plain text, JSON or PDF, for scripting and reports.
//
// Errors from configuration and client construction are fatal. Fetch
// failures while the UI runs are logged and surfaced as toasts; the last
// good list stays on screen.
package app
