package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/tutordesk/internal/tutorials"
)

// Snapshot represents the latest list available to the UI.
type Snapshot struct {
	Tutorials           []tutorials.Tutorial
	Loaded              bool
	Query               tutorials.Query
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
}

// IsOffline returns true when the API has failed several fetches in a row.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Stats summarises the snapshot's list.
func (s Snapshot) Stats() Stats {
	return ComputeStats(s.Tutorials)
}

// Store holds the last successfully fetched list and sequences fetches so a
// slow response can never overwrite a newer one.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
	query    tutorials.Query
	issued   uint64
}

// Begin records that a fetch for q is about to be issued and returns its
// sequence number. The query becomes the one reloads reuse.
func (s *Store) Begin(q tutorials.Query) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.issued++
	s.query = q
	return s.issued
}

// Latest returns the newest issued sequence number and its query without
// issuing a new fetch. Background refreshes apply their result under this
// number, so any fetch begun in the meantime supersedes them and they never
// supersede one.
func (s *Store) Latest() (uint64, tutorials.Query) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.issued, s.query
}

// Current reports whether seq belongs to the newest issued fetch.
func (s *Store) Current(seq uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return seq == s.issued
}

// Apply replaces the list with the result of fetch seq. It returns false and
// leaves the store untouched when a newer fetch has been issued since.
func (s *Store) Apply(seq uint64, q tutorials.Query, list []tutorials.Tutorial) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.issued {
		return false
	}
	s.snapshot.Tutorials = cloneTutorials(list)
	s.snapshot.Loaded = true
	s.snapshot.Query = q
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
	return true
}

// Fail records a failed fetch. The previous list is kept. Stale failures are
// ignored and reported as false.
func (s *Store) Fail(seq uint64, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.issued {
		return false
	}
	s.snapshot.LastError = err
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures++
	return true
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Tutorials = cloneTutorials(s.snapshot.Tutorials)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneTutorials(items []tutorials.Tutorial) []tutorials.Tutorial {
	if len(items) == 0 {
		return nil
	}
	dup := make([]tutorials.Tutorial, len(items))
	copy(dup, items)
	return dup
}
