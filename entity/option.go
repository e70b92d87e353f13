package entity

// CustomizationOption é uma opção individual dentro de um grupo (tamanho,
// acompanhamento, carne). Price is a delta in centavos and may be negative
// (e.g. smaller size).
type CustomizationOption struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Sentinel bool   `json:"sentinel,omitempty"`
}

// MaxRule overrides a group's selection ceiling based on another group's
// current choice: when the governing group's single selection is OptionID,
// the ceiling is Expanded, otherwise Default.
type MaxRule struct {
	GroupID  string `json:"groupId"`
	OptionID int    `json:"optionId"`
	Expanded int    `json:"expanded"`
	Default  int    `json:"default"`
}

type CustomizationGroup struct {
	ID      string                `json:"id"`
	Name    string                `json:"name"`
	Min     int                   `json:"min"`
	Max     int                   `json:"max"`
	Options []CustomizationOption `json:"options"`

	// MaxRule, when set, makes the effective max depend on another group.
	MaxRule *MaxRule `json:"maxRule,omitempty"`

	// HiddenUntil names a group that must have a selection before this one
	// is shown. Display only; validity rules apply either way.
	HiddenUntil string `json:"hiddenUntil,omitempty"`
}

// OptionByID returns the group's option with the given id.
func (g CustomizationGroup) OptionByID(id int) (CustomizationOption, bool) {
	for _, o := range g.Options {
		if o.ID == id {
			return o, true
		}
	}
	return CustomizationOption{}, false
}
