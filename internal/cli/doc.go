// Package cli defines the tutordesk command line. The root command starts
// the TUI; export writes the list once as HTML, text, JSON or PDF.
package cli
