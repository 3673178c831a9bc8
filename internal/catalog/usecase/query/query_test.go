package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshfarm/storefront/internal/catalog/domain"
	"github.com/freshfarm/storefront/internal/catalog/store"
)

func testCatalog() *store.Store {
	s := store.New()
	s.Replace(domain.NewSnapshot([]domain.MenuItem{
		{ID: "p1", Name: "Paneer Tikka", Cuisine: "North Indian", Available: true},
		{ID: "p2", Name: "Masala Dosa", Cuisine: "South Indian", Available: true},
		{ID: "p3", Name: "Paneer Butter Masala", Cuisine: "North Indian", Available: false},
	}, []domain.Category{
		{ID: "c1", Name: "Starters"},
		{ID: "c2", Name: "Mains"},
	}))
	return s
}

func TestGetItemHandler(t *testing.T) {
	h := NewGetItemHandler(testCatalog())

	item, err := h.Handle(GetItemQuery{ID: "p2"})
	require.NoError(t, err)
	assert.Equal(t, "Masala Dosa", item.Name)

	_, err = h.Handle(GetItemQuery{ID: "missing"})
	assert.Error(t, err)

	_, err = h.Handle(GetItemQuery{})
	assert.Error(t, err)
}

func TestListMenuHandler_NoFilterReturnsAll(t *testing.T) {
	h := NewListMenuHandler(testCatalog())

	items := h.Handle(ListMenuQuery{})
	assert.Len(t, items, 3)
}

func TestListMenuHandler_Filters(t *testing.T) {
	h := NewListMenuHandler(testCatalog())

	north := h.Handle(ListMenuQuery{Cuisine: "North Indian"})
	require.Len(t, north, 2)

	available := h.Handle(ListMenuQuery{AvailableOnly: true})
	require.Len(t, available, 2)

	both := h.Handle(ListMenuQuery{Cuisine: "North Indian", AvailableOnly: true})
	require.Len(t, both, 1)
	assert.Equal(t, "Paneer Tikka", both[0].Name)
}

func TestSearchMenuHandler_CaseInsensitiveSubstring(t *testing.T) {
	h := NewSearchMenuHandler(testCatalog())

	matches := h.Handle(SearchMenuQuery{Term: "paneer"})
	require.Len(t, matches, 2)

	matches = h.Handle(SearchMenuQuery{Term: "DOSA"})
	require.Len(t, matches, 1)
	assert.Equal(t, "Masala Dosa", matches[0].Name)

	matches = h.Handle(SearchMenuQuery{Term: "biryani"})
	assert.Empty(t, matches)
}

func TestSearchMenuHandler_EmptyTermMatchesNothing(t *testing.T) {
	h := NewSearchMenuHandler(testCatalog())

	assert.Nil(t, h.Handle(SearchMenuQuery{Term: ""}))
	assert.Nil(t, h.Handle(SearchMenuQuery{Term: "   "}))
}

func TestListCategoriesHandler(t *testing.T) {
	h := NewListCategoriesHandler(testCatalog())

	categories := h.Handle()
	require.Len(t, categories, 2)
	assert.Equal(t, "Starters", categories[0].Name)
}
