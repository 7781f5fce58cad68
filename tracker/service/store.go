package tracker

import (
	"sync"

	"github.com/hearthbot/hearth/tracker/service/domain"
)

// Store holds the tracked bills for the life of the process. Records are
// keyed by the posted message's ID; there is no removal. Find and All return
// copies, and MarkPaid performs the only mutation, so callers never hold a
// reference into the store while the lock is released.
type Store interface {
	Insert(bill *domain.Bill)
	Find(id string) (domain.Bill, bool)
	All() []domain.Bill
	MarkPaid(id string) (domain.Bill, bool)
}

// MemoryStore is the in-memory Store. A single coarse lock serializes
// inserts, lookups and the paid-flag mutation; contention is inherently low.
type MemoryStore struct {
	mu    sync.Mutex
	bills map[string]*domain.Bill
	order []string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		bills: make(map[string]*domain.Bill),
	}
}

func (s *MemoryStore) Insert(bill *domain.Bill) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.bills[bill.ID]; !exists {
		s.order = append(s.order, bill.ID)
	}
	stored := *bill
	s.bills[bill.ID] = &stored
}

func (s *MemoryStore) Find(id string) (domain.Bill, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bill, ok := s.bills[id]
	if !ok {
		return domain.Bill{}, false
	}
	return *bill, true
}

// All returns the bills in insertion order.
func (s *MemoryStore) All() []domain.Bill {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := make([]domain.Bill, 0, len(s.order))
	for _, id := range s.order {
		all = append(all, *s.bills[id])
	}
	return all
}

// MarkPaid sets the paid flag and returns the updated record. The flag never
// transitions back; marking an already-paid bill is a no-op that still
// reports the record as found.
func (s *MemoryStore) MarkPaid(id string) (domain.Bill, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bill, ok := s.bills[id]
	if !ok {
		return domain.Bill{}, false
	}
	bill.Paid = true
	return *bill, true
}
