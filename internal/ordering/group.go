package ordering

import (
	"strings"

	"github.com/ahrav/go-feedback/internal/domain"
)

// OrderedMap is an associative container whose iteration order is the
// insertion order of first occurrence. Groupings built from a sorted response
// sequence therefore present groups in exactly the order the chosen
// comparator produced, never re-sorted by a secondary pass.
type OrderedMap[K comparable, V any] struct {
	keys   []K
	index  map[K]int
	values []V
}

// NewOrderedMap creates an empty ordered map.
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{index: make(map[K]int)}
}

// Len returns the number of entries.
func (m *OrderedMap[K, V]) Len() int { return len(m.keys) }

// Keys returns the keys in insertion order.
func (m *OrderedMap[K, V]) Keys() []K {
	out := make([]K, len(m.keys))
	copy(out, m.keys)
	return out
}

// Get returns the value for a key.
func (m *OrderedMap[K, V]) Get(k K) (V, bool) {
	if i, ok := m.index[k]; ok {
		return m.values[i], true
	}
	var zero V
	return zero, false
}

// Set inserts or replaces the value for a key. A new key is appended to the
// iteration order; an existing key keeps its position.
func (m *OrderedMap[K, V]) Set(k K, v V) {
	if i, ok := m.index[k]; ok {
		m.values[i] = v
		return
	}
	m.index[k] = len(m.keys)
	m.keys = append(m.keys, k)
	m.values = append(m.values, v)
}

// GetOrCreate returns the value for a key, inserting the result of the
// factory on first occurrence.
func (m *OrderedMap[K, V]) GetOrCreate(k K, create func() V) V {
	if i, ok := m.index[k]; ok {
		return m.values[i]
	}
	v := create()
	m.Set(k, v)
	return v
}

// Each visits entries in insertion order.
func (m *OrderedMap[K, V]) Each(fn func(k K, v V)) {
	for i, k := range m.keys {
		fn(k, m.values[i])
	}
}

// NameTeamKey is the composite grouping key for display-name views: the
// participant's display name plus their team. Keys are compared field-wise,
// not via the rendered composite string.
type NameTeamKey struct {
	Name string
	Team string
}

// Display renders the "name (team)" composite. The team suffix is suppressed
// for anonymous, unknown, and nobody names and for an empty team, so
// pseudonym rows never leak team membership.
func (k NameTeamKey) Display() string {
	return AppendTeamName(k.Name, k.Team)
}

// AppendTeamName composes a display name with its team suffix, applying the
// same suppression rules as NameTeamKey.Display.
func AppendTeamName(name, team string) string {
	if strings.Contains(name, "Anonymous") || name == domain.UnknownUserText ||
		name == domain.NobodyText || team == "" {
		return name
	}
	return name + " (" + team + ")"
}
