package app

import (
	"context"
	"log"
	"time"

	"github.com/five82/tutordesk/internal/state"
	"github.com/five82/tutordesk/internal/tutorials"
)

// StartPoller launches a background goroutine that re-runs the most recent
// query at a fixed cadence. It returns immediately. A non-positive interval
// disables polling.
func StartPoller(ctx context.Context, store *state.Store, svc tutorials.Service, interval time.Duration) {
	if interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				_ = refresh(ctx, store, svc)
			}
		}
	}()
}

// refresh re-runs the store's latest query under its existing sequence
// number. A fetch issued by the UI while the poll is in flight wins; the
// poll result is then discarded.
func refresh(ctx context.Context, store *state.Store, svc tutorials.Service) error {
	seq, query := store.Latest()
	list, err := svc.List(ctx, query)
	if err != nil {
		if store.Fail(seq, err) {
			log.Printf("poll failed: %v", err)
		} else {
			log.Printf("poll superseded: %v", err)
		}
		return err
	}
	store.Apply(seq, query, list)
	return nil
}
