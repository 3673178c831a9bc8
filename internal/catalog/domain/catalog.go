package domain

// MenuItem represents one dish on the restaurant menu, as served by the
// upstream restaurant API.
type MenuItem struct {
	ID             string  `json:"_id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Price          float64 `json:"price"`
	ImageURL       string  `json:"imageUrl"`
	Available      bool    `json:"available"`
	Cuisine        string  `json:"crusine"`
	Weight         string  `json:"weight"`
	Calories       string  `json:"calories"`
	RestaurantName string  `json:"restaurantName"`
}

// Category represents a menu category
type Category struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// Snapshot is an immutable point-in-time view of the catalog. Item IDs are
// unique within a snapshot.
type Snapshot struct {
	items      []MenuItem
	categories []Category
	byID       map[string]MenuItem
}

// NewSnapshot builds a snapshot from the fetched menu and categories.
// Later duplicates of an item ID are discarded.
func NewSnapshot(items []MenuItem, categories []Category) *Snapshot {
	byID := make(map[string]MenuItem, len(items))
	deduped := make([]MenuItem, 0, len(items))
	for _, item := range items {
		if _, ok := byID[item.ID]; ok {
			continue
		}
		byID[item.ID] = item
		deduped = append(deduped, item)
	}

	return &Snapshot{
		items:      deduped,
		categories: categories,
		byID:       byID,
	}
}

// EmptySnapshot returns a snapshot with no items, used until the first
// catalog fetch completes.
func EmptySnapshot() *Snapshot {
	return NewSnapshot(nil, nil)
}

// Item looks up a menu item by ID.
func (s *Snapshot) Item(id string) (MenuItem, bool) {
	item, ok := s.byID[id]
	return item, ok
}

// Items returns all menu items in the snapshot.
func (s *Snapshot) Items() []MenuItem {
	return s.items
}

// Categories returns all categories in the snapshot.
func (s *Snapshot) Categories() []Category {
	return s.categories
}

// Len returns the number of menu items.
func (s *Snapshot) Len() int {
	return len(s.items)
}
