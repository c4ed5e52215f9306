package state

import "github.com/five82/tutordesk/internal/tutorials"

// Stats are the three summary counters shown above the table.
type Stats struct {
	Total       int
	Published   int
	Unpublished int
}

// ComputeStats counts list. A nil or empty list yields zeroes.
func ComputeStats(list []tutorials.Tutorial) Stats {
	var s Stats
	for _, t := range list {
		s.Total++
		if t.Published {
			s.Published++
		}
	}
	s.Unpublished = s.Total - s.Published
	return s
}
