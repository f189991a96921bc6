package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/beacon/internal/core/host"
)

func TestSelectElements(t *testing.T) {
	ids := []host.ElementID{
		"resources/campus-police",
		"emergency/crisis-line",
		"courses/first-aid",
		"stats/incidents-resolved",
	}

	tests := []struct {
		name     string
		patterns []string
		want     []host.ElementID
	}{
		{
			name:     "single prefix",
			patterns: []string{"courses/*"},
			want:     []host.ElementID{"courses/first-aid"},
		},
		{
			name:     "keeps input order",
			patterns: []string{"courses/*", "resources/*"},
			want:     []host.ElementID{"resources/campus-police", "courses/first-aid"},
		},
		{
			name:     "double star",
			patterns: []string{"**"},
			want:     ids,
		},
		{
			name:     "alternation",
			patterns: []string{"{emergency,stats}/*"},
			want:     []host.ElementID{"emergency/crisis-line", "stats/incidents-resolved"},
		},
		{
			name:     "no patterns",
			patterns: nil,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SelectElements(ids, tt.patterns)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelectElements_InvalidPattern(t *testing.T) {
	_, err := SelectElements([]host.ElementID{"a/b"}, []string{"a/[b"})
	assert.Error(t, err)
}

func TestCardElements_Unique(t *testing.T) {
	seen := make(map[host.ElementID]bool)
	for _, id := range CardElements() {
		assert.False(t, seen[id], "duplicate element %s", id)
		seen[id] = true
	}
	assert.Len(t, seen, len(Resources())+len(EmergencyContacts())+len(Courses()))
}
