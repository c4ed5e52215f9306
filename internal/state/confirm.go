package state

// DeleteConfirm tracks a single-record delete awaiting confirmation.
// The zero value is idle.
type DeleteConfirm struct {
	pending  int64
	awaiting bool
}

// Request moves to awaiting confirmation for id.
func (d *DeleteConfirm) Request(id int64) {
	d.pending = id
	d.awaiting = true
}

// Pending returns the id awaiting confirmation.
func (d *DeleteConfirm) Pending() (int64, bool) {
	return d.pending, d.awaiting
}

// Confirm consumes the pending id and returns to idle.
func (d *DeleteConfirm) Confirm() (int64, bool) {
	if !d.awaiting {
		return 0, false
	}
	id := d.pending
	d.pending = 0
	d.awaiting = false
	return id, true
}

// Cancel returns to idle without deleting.
func (d *DeleteConfirm) Cancel() {
	d.pending = 0
	d.awaiting = false
}
