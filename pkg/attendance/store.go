package attendance

import "sync"

// Store keeps the parsed attendance records per course. Uploads are
// rare and small; records live in memory until the next upload replaces
// them.
type Store struct {
	mu       sync.RWMutex
	byCourse map[int64]Record
}

// NewStore creates an empty attendance store.
func NewStore() *Store {
	return &Store{byCourse: make(map[int64]Record)}
}

// Put replaces the course's attendance record.
func (s *Store) Put(courseID int64, record Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byCourse[courseID] = record
}

// Get returns the course's attendance record, or nil when none was
// uploaded.
func (s *Store) Get(courseID int64) Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byCourse[courseID]
}
