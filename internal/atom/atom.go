// Package atom implements a process-wide interned-string table (§5:
// "Interned string table (Atom) is process-wide with lifecycle
// init-on-first-use; mutation is through a global lock; lookups on the hot
// path use a pre-interned handle"). Used for npc_type names, TSC event
// labels, and other small repeated strings so hot-path comparisons are a
// pointer compare instead of a string compare.
package atom

import "sync"

// Atom is a handle to an interned string. The zero value is not a valid
// Atom; always obtain one through New or NewString.
type Atom struct {
	entry *entry
}

type entry struct {
	value string
}

var (
	mu    sync.Mutex
	table = make(map[string]*entry)
)

// New interns data, returning a handle equal to any other Atom interned
// from the same string content.
func New(data string) Atom {
	mu.Lock()
	defer mu.Unlock()
	if e, ok := table[data]; ok {
		return Atom{e}
	}
	e := &entry{value: data}
	table[data] = e
	return Atom{e}
}

// NewString is an alias of New kept for parity with the source's
// new()/new_str() pair (the Rust original distinguishes &'static str from
// owned String; Go strings are already immutable and copy-free to intern).
func NewString(data string) Atom { return New(data) }

// String returns the interned string value.
func (a Atom) String() string {
	if a.entry == nil {
		return ""
	}
	return a.entry.value
}

// Equal reports whether two atoms were interned from equal content. Because
// interning is deduplicated, this is a pointer comparison.
func (a Atom) Equal(b Atom) bool { return a.entry == b.entry }

// Count returns the number of distinct strings interned so far (debugger
// introspection / tests only).
func Count() int {
	mu.Lock()
	defer mu.Unlock()
	return len(table)
}
