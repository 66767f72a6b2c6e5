package memory

import (
	"context"
	"sync"

	"thestream/internal/domain"
)

// callRegistry keeps invitations in a slice guarded by one mutex.
// Invitations are copied in and out so callers never share the stored values.
// State lives for the lifetime of the process.
type callRegistry struct {
	mu          sync.Mutex
	invitations []domain.CallInvitation
}

// NewCallRegistry returns an empty in-memory CallRegistry.
func NewCallRegistry() domain.CallRegistry {
	return &callRegistry{}
}

func (r *callRegistry) Start(_ context.Context, inv *domain.CallInvitation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invitations = append(r.invitations, *inv)
	return nil
}

func (r *callRegistry) ListFor(_ context.Context, user string) ([]*domain.CallInvitation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*domain.CallInvitation{}
	for _, inv := range r.invitations {
		if inv.To == user {
			c := inv
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *callRegistry) End(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.invitations[:0]
	for _, inv := range r.invitations {
		if inv.ID != id {
			kept = append(kept, inv)
		}
	}
	// zero the tail so removed entries don't linger in the backing array
	clear(r.invitations[len(kept):])
	r.invitations = kept
	return nil
}

// Len reports the number of stored invitations, duplicates included.
func (r *callRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.invitations)
}
