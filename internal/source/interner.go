package source

import (
	"slices"
	"sync"
)

// StringID is an interned string handle. The zero value, NoStringID, always
// maps to the empty string.
type StringID uint32

const NoStringID StringID = 0

// Interner deduplicates identifier text so HIR/MIR/LIR nodes can carry a
// cheap, comparable handle instead of a string. Safe for concurrent use,
// since the lexer and parallel per-file verification both intern names.
type Interner struct {
	mu    sync.RWMutex
	byID  []string
	index map[string]StringID
}

// NewInterner creates an Interner pre-seeded with NoStringID -> "".
func NewInterner() *Interner {
	return &Interner{
		byID:  []string{""},
		index: map[string]StringID{"": 0},
	}
}

// Intern returns the StringID for s, allocating one if s was not seen before.
func (in *Interner) Intern(s string) StringID {
	in.mu.RLock()
	if id, ok := in.index[s]; ok {
		in.mu.RUnlock()
		return id
	}
	in.mu.RUnlock()

	cpy := string([]byte(s)) // detach from caller's backing array

	in.mu.Lock()
	defer in.mu.Unlock()
	if id, ok := in.index[cpy]; ok {
		return id
	}
	id := StringID(len(in.byID))
	in.byID = append(in.byID, cpy)
	in.index[cpy] = id
	return id
}

// InternBytes interns b without requiring the caller to allocate a string
// first when the string is not already present.
func (in *Interner) InternBytes(b []byte) StringID {
	return in.Intern(string(b))
}

// Lookup returns the string for id, or ("", false) if id is out of range.
func (in *Interner) Lookup(id StringID) (string, bool) {
	in.mu.RLock()
	defer in.mu.RUnlock()
	if int(id) < 0 || int(id) >= len(in.byID) {
		return "", false
	}
	return in.byID[id], true
}

// Has reports whether id was allocated by this interner.
func (in *Interner) Has(id StringID) bool {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return int(id) >= 0 && int(id) < len(in.byID)
}

// MustLookup returns the string for id, panicking if id is invalid.
func (in *Interner) MustLookup(id StringID) string {
	s, ok := in.Lookup(id)
	if !ok {
		panic("source: invalid string ID")
	}
	return s
}

// Len returns the number of distinct strings interned, including NoStringID.
func (in *Interner) Len() int {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return len(in.byID)
}

// Snapshot returns a copy of every interned string, indexed by StringID.
func (in *Interner) Snapshot() []string {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return slices.Clone(in.byID)
}
