package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSnapshot_DropsLaterDuplicateIDs(t *testing.T) {
	snap := NewSnapshot([]MenuItem{
		{ID: "p1", Name: "Paneer Tikka", Price: 250},
		{ID: "p2", Name: "Masala Dosa", Price: 120},
		{ID: "p1", Name: "Paneer Tikka (duplicate)", Price: 999},
	}, nil)

	require.Equal(t, 2, snap.Len())

	item, ok := snap.Item("p1")
	require.True(t, ok)
	assert.Equal(t, "Paneer Tikka", item.Name)
	assert.Equal(t, 250.0, item.Price)
}

func TestSnapshot_ItemLookup(t *testing.T) {
	snap := NewSnapshot([]MenuItem{{ID: "p1", Name: "Paneer Tikka"}}, nil)

	_, ok := snap.Item("missing")
	assert.False(t, ok)

	item, ok := snap.Item("p1")
	assert.True(t, ok)
	assert.Equal(t, "Paneer Tikka", item.Name)
}

func TestEmptySnapshot(t *testing.T) {
	snap := EmptySnapshot()
	assert.Equal(t, 0, snap.Len())
	assert.Empty(t, snap.Items())
	assert.Empty(t, snap.Categories())

	_, ok := snap.Item("p1")
	assert.False(t, ok)
}

func TestSnapshot_PreservesOrder(t *testing.T) {
	snap := NewSnapshot([]MenuItem{
		{ID: "p3", Name: "C"},
		{ID: "p1", Name: "A"},
		{ID: "p2", Name: "B"},
	}, []Category{{ID: "c1", Name: "Starters"}})

	names := make([]string, 0, snap.Len())
	for _, item := range snap.Items() {
		names = append(names, item.Name)
	}
	assert.Equal(t, []string{"C", "A", "B"}, names)
	require.Len(t, snap.Categories(), 1)
	assert.Equal(t, "Starters", snap.Categories()[0].Name)
}
