package entity

// GroupSelection registra as opções escolhidas de um grupo, na ordem do menu.
type GroupSelection struct {
	GroupID   string                `json:"groupId"`
	GroupName string                `json:"groupName"`
	Options   []CustomizationOption `json:"options"`
}

// CartItem is a frozen customization snapshot ready to order. Selections and
// UnitPrice never change after commit; editing replaces the entry wholesale.
// Only Quantity is adjusted in place.
type CartItem struct {
	CartItemID string `json:"cartItemId"`
	MenuItemID int    `json:"menuItemId"`
	Name       string `json:"name"`
	Image      string `json:"image"`

	Quantity int    `json:"quantity"`
	Notes    string `json:"notes,omitempty"`

	BasePrice int64 `json:"basePrice"`
	UnitPrice int64 `json:"unitPrice"` // base + soma dos deltas das opções

	Selections []GroupSelection `json:"selections"`
}

func (ci CartItem) Total() int64 {
	return ci.UnitPrice * int64(ci.Quantity)
}
