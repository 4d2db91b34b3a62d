package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lyra-docs/lyra/internal/content"
)

func TestEntriesFollowCatalogOrder(t *testing.T) {
	p := NewPanel(content.Default())
	entries := p.Entries("code-explainer")

	require.Len(t, entries, 3)
	ids := []string{entries[0].ID, entries[1].ID, entries[2].ID}
	assert.Equal(t, []string{"api-cheatsheet", "code-explainer", "spa-blueprint"}, ids)

	var active []string
	for _, e := range entries {
		if e.Active {
			active = append(active, e.ID)
		}
	}
	assert.Equal(t, []string{"code-explainer"}, active)
	assert.Equal(t, "/sections/code-explainer", Href(entries[1].ID))
}

func TestEntriesWithUnknownActive(t *testing.T) {
	for _, e := range NewPanel(content.Default()).Entries("nope") {
		assert.False(t, e.Active)
	}
}

func TestStateDefaultsToFirstSection(t *testing.T) {
	s := NewState(content.Default())
	assert.Equal(t, "api-cheatsheet", s.Active())
	assert.Equal(t, "API Cheatsheet", s.Section().Title)
}

func TestSelect(t *testing.T) {
	s := NewState(content.Default())

	require.NoError(t, s.Select("spa-blueprint"))
	assert.Equal(t, "spa-blueprint", s.Active())

	// Selecting the active entry is a no-op.
	require.NoError(t, s.Select("spa-blueprint"))
	assert.Equal(t, "spa-blueprint", s.Active())
}

func TestSelectUnknownLeavesStateUnchanged(t *testing.T) {
	s := NewState(content.Default())
	require.NoError(t, s.Select("code-explainer"))

	err := s.Select("missing")
	assert.ErrorIs(t, err, ErrUnknownSection)
	assert.Equal(t, "code-explainer", s.Active())
}
