// Package logtail reads the tail of tutordesk's own log file for the in-app
// log overlay.
//
// Read keeps a ring buffer of the last maxLines lines, so memory stays
// bounded however large the file grows. Lines come back oldest first. A
// missing file is not an error; logging may simply not have written yet.
//
// Classify maps a line to a Severity so the overlay can colour failures.
package logtail
