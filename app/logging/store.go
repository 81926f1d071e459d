package logging

import "sync"

// DefaultMaxLen is the default capacity of a Store.
const DefaultMaxLen = 10000

// Store holds a bounded history of log entries in memory for the UI.
// It is thread-safe. When the capacity is exceeded the oldest entries
// are evicted.
type Store struct {
	mu      sync.Mutex
	entries []LogEntry
	maxLen  int
}

// NewStore creates a new Store with the given capacity. A maxLen of
// zero or less falls back to DefaultMaxLen.
func NewStore(maxLen int) *Store {
	initial := 1024
	if maxLen <= 0 {
		maxLen = DefaultMaxLen
	}
	if maxLen < initial {
		initial = maxLen
	}
	return &Store{
		entries: make([]LogEntry, 0, initial),
		maxLen:  maxLen,
	}
}

// Push appends a new entry as the most recent record, evicting the
// oldest entries if the store would exceed its capacity.
func (s *Store) Push(level LogLevel, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, LogEntry{Level: level, Message: message})
	if len(s.entries) > s.maxLen {
		s.entries = s.entries[len(s.entries)-s.maxLen:]
	}
}

// Clear removes all entries.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = s.entries[:0]
}

// Len returns the current number of retained entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// MaxLen returns the store's capacity.
func (s *Store) MaxLen() int {
	return s.maxLen
}

// ForEachFiltered traverses the retained entries from most recent to
// oldest, invoking visit for every entry whose level is at least min.
// It returns the number of entries visited. The store lock is held for
// the duration of the traversal; visit must not call back into the
// store.
func (s *Store) ForEachFiltered(min LogLevel, visit func(LogLevel, string)) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for i := len(s.entries) - 1; i >= 0; i-- {
		e := s.entries[i]
		if e.Level < min {
			continue
		}
		visit(e.Level, e.Message)
		count++
	}
	return count
}
