package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sectionIDs(c *SiteContent) []string {
	ids := make([]string, 0, len(c.ActiveSections))
	for _, s := range c.ActiveSections {
		ids = append(ids, s.ID)
	}
	return ids
}

func TestAppendSection(t *testing.T) {
	content := DefaultContent()

	next, section := content.AppendSection(SectionWeather, "")
	require.Len(t, next.ActiveSections, 7)
	assert.Equal(t, section, next.ActiveSections[6])
	assert.Equal(t, SectionWeather, section.Type)
	assert.NotEmpty(t, section.ID)
	assert.Empty(t, section.CustomID)

	// The custom reference only sticks to custom sections.
	_, custom := content.AppendSection(SectionCustom, "mod-1")
	assert.Equal(t, "mod-1", custom.CustomID)
	_, plain := content.AppendSection(SectionHero, "mod-1")
	assert.Empty(t, plain.CustomID)
}

func TestMoveSection(t *testing.T) {
	content := DefaultContent()

	tests := []struct {
		name  string
		index int
		dir   MoveDirection
		moved bool
		order []string
	}{
		{"down swaps with next", 0, MoveDown, true, []string{"2", "1", "3", "4", "5", "6"}},
		{"up swaps with previous", 2, MoveUp, true, []string{"1", "3", "2", "4", "5", "6"}},
		{"first up is a no-op", 0, MoveUp, false, []string{"1", "2", "3", "4", "5", "6"}},
		{"last down is a no-op", 5, MoveDown, false, []string{"1", "2", "3", "4", "5", "6"}},
		{"negative index is a no-op", -1, MoveDown, false, []string{"1", "2", "3", "4", "5", "6"}},
		{"index past end is a no-op", 6, MoveUp, false, []string{"1", "2", "3", "4", "5", "6"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			next, moved := content.MoveSection(tc.index, tc.dir)
			assert.Equal(t, tc.moved, moved)
			assert.Equal(t, tc.order, sectionIDs(next))
		})
	}
}

func TestMoveSectionIsItsOwnInverse(t *testing.T) {
	content := DefaultContent()

	down, moved := content.MoveSection(2, MoveDown)
	require.True(t, moved)
	back, moved := down.MoveSection(3, MoveUp)
	require.True(t, moved)
	assert.Equal(t, sectionIDs(content), sectionIDs(back))
}

func TestRemoveSection(t *testing.T) {
	content := DefaultContent()

	next, found := content.RemoveSection("3")
	require.True(t, found)
	assert.Equal(t, []string{"1", "2", "4", "5", "6"}, sectionIDs(next))
	assert.Len(t, content.ActiveSections, 6)

	unchanged, found := content.RemoveSection("missing")
	assert.False(t, found)
	assert.Equal(t, sectionIDs(content), sectionIDs(unchanged))
}

func TestSectionTypeValid(t *testing.T) {
	for _, valid := range []SectionType{
		SectionHero, SectionAdvisor, SectionLibrary, SectionIssues,
		SectionContact, SectionStats, SectionCustom, SectionWeather,
	} {
		assert.True(t, valid.Valid(), string(valid))
	}
	assert.False(t, SectionType("banner").Valid())
	assert.False(t, SectionType("").Valid())
}
