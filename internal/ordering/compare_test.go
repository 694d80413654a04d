package ordering

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ahrav/go-feedback/internal/domain"
)

func TestCompareNames(t *testing.T) {
	tests := []struct {
		name     string
		n1, n2   string
		v1, v2   bool
		wantSign int
	}{
		{"both hidden compare equal", "Alice", "Bob", false, false, 0},
		{"both hidden even when names equal", "Alice", "Alice", false, false, 0},
		{"hidden sorts after visible", "Alice", "Bob", false, true, 1},
		{"visible sorts before hidden", "Alice", "Bob", true, false, -1},
		{"ordinary names lexicographic", "Alice", "Bob", true, true, -1},
		{"equal visible names", "Alice", "Alice", true, true, 0},
		{"nobody marker first", domain.NobodyMarker, "Aardvark", true, true, -1},
		{"team marker last", domain.TeamMarker, "Zed", true, true, 1},
		{"nobody before team marker", domain.NobodyMarker, domain.TeamMarker, true, true, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompareNames(tt.n1, tt.n2, tt.v1, tt.v2)
			assert.Equal(t, tt.wantSign, sign(got))
			// Antisymmetry with swapped arguments.
			assert.Equal(t, -tt.wantSign, sign(CompareNames(tt.n2, tt.n1, tt.v2, tt.v1)))
		})
	}
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

func TestOrderedMap_InsertionOrder(t *testing.T) {
	m := NewOrderedMap[string, int]()
	m.Set("b", 1)
	m.Set("a", 2)
	m.Set("c", 3)
	m.Set("a", 4) // replacement keeps position

	assert.Equal(t, []string{"b", "a", "c"}, m.Keys())
	assert.Equal(t, 3, m.Len())

	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 4, v)

	_, ok = m.Get("z")
	assert.False(t, ok)

	var visited []string
	m.Each(func(k string, _ int) { visited = append(visited, k) })
	assert.Equal(t, []string{"b", "a", "c"}, visited)
}

func TestOrderedMap_GetOrCreate(t *testing.T) {
	m := NewOrderedMap[string, []int]()
	first := m.GetOrCreate("k", func() []int { return []int{1} })
	assert.Equal(t, []int{1}, first)

	again := m.GetOrCreate("k", func() []int { return []int{99} })
	assert.Equal(t, []int{1}, again, "existing value wins over the factory")
}

func TestAppendTeamName(t *testing.T) {
	tests := []struct {
		name   string
		person string
		team   string
		want   string
	}{
		{"ordinary name gets team suffix", "Alice Zimmer", "Team A", "Alice Zimmer (Team A)"},
		{"anonymous never shows team", "Anonymous Student 42", "Team A", "Anonymous Student 42"},
		{"unknown user suppressed", domain.UnknownUserText, "Team A", domain.UnknownUserText},
		{"nobody suppressed", domain.NobodyText, "Team A", domain.NobodyText},
		{"empty team suppressed", "Alice Zimmer", "", "Alice Zimmer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AppendTeamName(tt.person, tt.team))
			assert.Equal(t, tt.want, NameTeamKey{Name: tt.person, Team: tt.team}.Display())
		})
	}
}
