package itineraries

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	// Create stores rec and returns it with ID and CreatedAt set.
	Create(ctx context.Context, rec *Record) (*Record, error)
	// ListByUser returns the user's records, newest first.
	ListByUser(ctx context.Context, userID string) ([]Record, error)
}

type InMemoryRepository struct {
	mu     sync.RWMutex
	byUser map[string][]stored
	seq    uint64
	now    func() time.Time
}

// stored remembers insertion order to break CreatedAt ties.
type stored struct {
	rec Record
	seq uint64
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{byUser: make(map[string][]stored), now: time.Now}
}

func (r *InMemoryRepository) Create(ctx context.Context, rec *Record) (*Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	out := *rec
	out.ID = uuid.NewString()
	out.CreatedAt = r.now().UTC()

	r.byUser[out.UserID] = append(r.byUser[out.UserID], stored{rec: out, seq: r.seq})
	return &out, nil
}

func (r *InMemoryRepository) ListByUser(ctx context.Context, userID string) ([]Record, error) {
	r.mu.RLock()
	items := make([]stored, len(r.byUser[userID]))
	copy(items, r.byUser[userID])
	r.mu.RUnlock()

	sort.Slice(items, func(i, j int) bool {
		if !items[i].rec.CreatedAt.Equal(items[j].rec.CreatedAt) {
			return items[i].rec.CreatedAt.After(items[j].rec.CreatedAt)
		}
		return items[i].seq > items[j].seq
	})

	out := make([]Record, len(items))
	for i, it := range items {
		out[i] = it.rec
	}
	return out, nil
}
