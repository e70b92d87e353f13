package entity

type MenuItem struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Price       int64  `json:"price"` // base price, centavos

	CustomizationGroups []CustomizationGroup `json:"customizationGroups,omitempty"`
}

// GroupByID returns the item's customization group with the given id.
func (m MenuItem) GroupByID(id string) (CustomizationGroup, bool) {
	for _, g := range m.CustomizationGroups {
		if g.ID == id {
			return g, true
		}
	}
	return CustomizationGroup{}, false
}

type MenuCategory struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	CoverImage string     `json:"coverImage,omitempty"`
	Items      []MenuItem `json:"items"`
}
