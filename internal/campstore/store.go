package campstore

import (
	"context"
	"fmt"
	"sync"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"

	"io.mapleapps.campquest/internal/camp"
)

const campsCollection = "camps"

// Store mirrors the Firestore camps collection in memory. Every snapshot
// from the backing collection replaces the whole record list (last write
// wins, no partial updates) and is pushed to subscribers.
type Store struct {
	client *firestore.Client
	logger *zap.SugaredLogger

	mu      sync.RWMutex
	records []camp.CampRecord
	subs    []chan []camp.CampRecord
}

func NewStore(client *firestore.Client, logger *zap.SugaredLogger) *Store {
	return &Store{
		client: client,
		logger: logger,
	}
}

// Records returns the current full record list. The returned slice is a
// copy; callers may filter it freely.
func (s *Store) Records() []camp.CampRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := make([]camp.CampRecord, len(s.records))
	copy(records, s.records)
	return records
}

// Subscribe returns a channel receiving the full record list on every
// collection change. Slow subscribers drop updates rather than block the
// listener.
func (s *Store) Subscribe() <-chan []camp.CampRecord {
	ch := make(chan []camp.CampRecord, 1)
	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()
	return ch
}

// Listen blocks consuming collection snapshots until the context is
// cancelled or the listener fails.
func (s *Store) Listen(ctx context.Context) error {
	snapshots := s.client.Collection(campsCollection).Snapshots(ctx)
	defer snapshots.Stop()

	for {
		snapshot, err := snapshots.Next()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("camps snapshot listener failed: %w", err)
		}

		records, err := s.decodeSnapshot(snapshot)
		if err != nil {
			s.logger.Errorw("failed to decode camps snapshot", "error", err)
			continue
		}

		s.Replace(records)
		s.logger.Infow("camps collection refreshed", "records", len(records))
	}
}

func (s *Store) decodeSnapshot(snapshot *firestore.QuerySnapshot) ([]camp.CampRecord, error) {
	var records []camp.CampRecord
	for {
		doc, err := snapshot.Documents.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var record camp.CampRecord
		if err := doc.DataTo(&record); err != nil {
			s.logger.Warnw("skipping malformed camp document", "doc", doc.Ref.ID, "error", err)
			continue
		}
		if record.CampID == "" {
			record.CampID = doc.Ref.ID
		}
		record.Category = RemapCategory(record.Category)
		records = append(records, record)
	}
	return records, nil
}

// Replace swaps in a full new record list and pushes it to subscribers.
// The snapshot listener calls this on every collection change; tests seed
// the store through it directly.
func (s *Store) Replace(records []camp.CampRecord) {
	s.mu.Lock()
	s.records = records
	subs := make([]chan []camp.CampRecord, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- records:
		default:
		}
	}
}

// RemapCategory folds legacy category labels stored on older documents into
// the current category set.
func RemapCategory(category string) string {
	switch category {
	case "General":
		return "Arts"
	case "STEAM", "STEM":
		return "Science"
	case "Support", "Leadership":
		return "Education"
	}
	return category
}
