package groupid

import "sync"

// Stack is a LIFO sequence of group IDs. The zero value is an empty stack
// ready for use.
type Stack struct {
	mu      sync.Mutex
	entries []string
}

// Push places id on top of the stack. Empty and duplicate IDs are accepted.
func (s *Stack) Push(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, id)
	return len(s.entries)
}

// Peek returns the top entry without removing it.
func (s *Stack) Peek() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.entries) == 0 {
		return "", false
	}
	return s.entries[len(s.entries)-1], true
}

// Pop removes and returns the top entry.
func (s *Stack) Pop() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.entries)
	if n == 0 {
		return "", false
	}
	id := s.entries[n-1]
	s.entries[n-1] = ""
	s.entries = s.entries[:n-1]
	return id, true
}

// Len returns the number of entries.
func (s *Stack) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Snapshot returns a copy of the entries ordered bottom to top.
func (s *Stack) Snapshot() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.entries) == 0 {
		return nil
	}
	out := make([]string, len(s.entries))
	copy(out, s.entries)
	return out
}
