// Package visibility tracks which series of a chart are hidden.
package visibility

import (
	"sort"
)

// Set is a set of hidden series names.
type Set map[string]struct{}

func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Clone returns an independent copy.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}

// Names returns the members in sorted order.
func (s Set) Names() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Tracker owns the hidden set of one chart. The index column is protected
// and can never be hidden.
type Tracker struct {
	protected string
	hidden    Set
}

func NewTracker(indexHeader string) *Tracker {
	return &Tracker{protected: indexHeader, hidden: Set{}}
}

// FromSet builds a tracker holding a copy of hidden.
func FromSet(indexHeader string, hidden Set) *Tracker {
	t := NewTracker(indexHeader)
	for name := range hidden {
		if name != indexHeader {
			t.hidden[name] = struct{}{}
		}
	}
	return t
}

// Toggle flips name and reports whether it is now hidden.
func (t *Tracker) Toggle(name string) bool {
	if name == t.protected {
		return false
	}
	if t.hidden.Has(name) {
		delete(t.hidden, name)
		return false
	}
	t.hidden[name] = struct{}{}
	return true
}

func (t *Tracker) IsHidden(name string) bool {
	return t.hidden.Has(name)
}

// Snapshot returns a copy that later toggles do not affect.
func (t *Tracker) Snapshot() Set {
	return t.hidden.Clone()
}

func (t *Tracker) Hidden() []string {
	return t.hidden.Names()
}

func (t *Tracker) Len() int { return len(t.hidden) }

// Clear shows every series again.
func (t *Tracker) Clear() {
	t.hidden = Set{}
}
