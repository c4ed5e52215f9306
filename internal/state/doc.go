// Package state holds the client-side state of tutordesk: the last fetched
// tutorial list, the add/edit modal and the pending delete.
//
// # Core Types
//
// Store:
//   - Last successfully fetched list plus the query that produced it
//   - Sequences list fetches with a monotonically increasing number
//   - Keeps the previous list on failure and records the error
//
// Editor:
//   - The add/edit modal as an explicit state machine
//   - Closed, Create and Edit(id), with the editing cursor inside Edit
//   - Validates the title and produces a Submission on save
//
// DeleteConfirm:
//   - Idle or awaiting confirmation for one id
//
// Stats:
//   - Total, published and unpublished counts of a list
//
// # Fetch Sequencing
//
//	seq := store.Begin(query)       // before the request goes out
//	list, err := client.List(ctx, query)
//	if err != nil {
//		store.Fail(seq, err)    // false when a newer fetch exists
//	} else {
//		store.Apply(seq, query, list)
//	}
//
// Only the newest issued fetch may change the store. A response that arrives
// after a newer fetch was issued is dropped, so a slow search result can never
// replace a faster, later one.
//
// Background refreshes call Latest instead of Begin: they reuse the newest
// number, so a foreground fetch begun meanwhile supersedes them, and they
// never supersede a foreground fetch.
//
// # Update Semantics
//
//	// Success case: replace the list wholesale
//	→ snapshot.Tutorials = list
//	→ snapshot.LastError = nil
//
//	// Error case: keep the old list, record the error
//	→ snapshot.Tutorials = <unchanged>
//	→ snapshot.LastError = err
//
// Snapshots are deep copies; the UI can never mutate the stored list.
//
// # Testing Considerations
//
// Every type is ready to use as a zero value.
package state
