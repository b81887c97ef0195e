package store

import (
	"strconv"
	"sync"
)

// User is a JSON object supplied by the client at create time. No schema is
// enforced beyond being a JSON object; the server only ever sets the "id"
// field.
type User map[string]any

// Store is a thread-safe, in-memory user store shared by all sessions for
// the process lifetime. Keys are decimal string representations of integers
// and always equal the stringified "id" assigned at insert time, except for
// seed entries which may carry no "id" at all.
type Store struct {
	mu    sync.Mutex
	users map[string]User
}

// New creates a store pre-populated with the given seed entries. The seed
// map is used as-is, so callers must not retain it.
func New(seed map[string]User) *Store {
	if seed == nil {
		seed = make(map[string]User)
	}
	return &Store{users: seed}
}

// PlaintextSeed is the initial content of the plaintext variant: a single
// echo entry under key "1".
func PlaintextSeed() map[string]User {
	return map[string]User{
		"1": {"echo": "HelloWorld"},
	}
}

// TLSSeed is the initial content of the TLS variant: two users.
func TLSSeed() map[string]User {
	return map[string]User{
		"1": {"id": 1, "name": "Alice"},
		"2": {"id": 2, "name": "Bob"},
	}
}

// List returns all stored users. Iteration order is map order and therefore
// unspecified.
func (s *Store) List() []User {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	return out
}

// Get returns the user stored under id, or false when absent.
func (s *Store) Get(id string) (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	return u, ok
}

// Insert assigns the next id to u and stores it. The id is the store size
// plus one at the moment of insertion; allocation and insertion happen under
// one lock so the rule holds under concurrent creates. The policy is
// order-dependent and can collide with out-of-sequence seed keys; that is
// the documented contract, not an oversight to fix here.
func (s *Store) Insert(u User) User {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := len(s.users) + 1
	u["id"] = id
	s.users[strconv.Itoa(id)] = u
	return u
}

// Len returns the current number of stored users.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}
