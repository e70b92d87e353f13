package services

import (
	"fmt"

	"github.com/AV-automacoes/restaurante-bom-prato/entity"
	"github.com/google/uuid"
)

// Session acompanha a montagem de um item do cardápio: quais opções estão
// marcadas em cada grupo, quantidade e observações. As regras de cardinalidade
// são aplicadas no momento do toggle; uma tentativa acima do limite é
// simplesmente ignorada, nunca truncada.
type Session struct {
	item      entity.MenuItem
	editingID string // cartItemId em modo edição, "" ao criar

	quantity int
	notes    string

	// group ID -> opções escolhidas, na ordem em que foram marcadas
	selected map[string][]entity.CustomizationOption
}

func NewSession(item entity.MenuItem) *Session {
	return &Session{
		item:     item,
		quantity: 1,
		selected: make(map[string][]entity.CustomizationOption),
	}
}

// NewEditSession reabre um item do carrinho: as escolhas, a quantidade e as
// observações voltam exatamente como foram confirmadas.
func NewEditSession(item entity.MenuItem, existing entity.CartItem) *Session {
	s := NewSession(item)
	s.editingID = existing.CartItemID
	s.quantity = existing.Quantity
	s.notes = existing.Notes
	for _, sel := range existing.Selections {
		opts := make([]entity.CustomizationOption, len(sel.Options))
		copy(opts, sel.Options)
		s.selected[sel.GroupID] = opts
	}
	return s
}

func (s *Session) Item() entity.MenuItem { return s.item }

func (s *Session) SetQuantity(q int) {
	if q < 1 {
		q = 1
	}
	s.quantity = q
}

func (s *Session) Quantity() int { return s.quantity }

func (s *Session) SetNotes(n string) { s.notes = n }

func (s *Session) Notes() string { return s.notes }

// Selected returns a copy of the group's current selection.
func (s *Session) Selected(groupID string) []entity.CustomizationOption {
	cur := s.selected[groupID]
	out := make([]entity.CustomizationOption, len(cur))
	copy(out, cur)
	return out
}

func (s *Session) IsSelected(groupID string, optionID int) bool {
	for _, o := range s.selected[groupID] {
		if o.ID == optionID {
			return true
		}
	}
	return false
}

// Toggle marca ou desmarca uma opção. Chamar com um grupo ou opção que não
// pertence ao item é erro de programação e causa panic.
func (s *Session) Toggle(groupID string, optionID int) {
	group, ok := s.item.GroupByID(groupID)
	if !ok {
		panic(fmt.Sprintf("customization: group %q does not belong to item %d", groupID, s.item.ID))
	}
	opt, ok := group.OptionByID(optionID)
	if !ok {
		panic(fmt.Sprintf("customization: option %d does not belong to group %q", optionID, groupID))
	}

	cur := s.selected[group.ID]
	switch {
	case s.IsSelected(group.ID, opt.ID):
		// desmarcar é sempre permitido
		s.selected[group.ID] = removeOption(cur, opt.ID)

	case group.Max == 1:
		// grupo tipo "radio": substitui a escolha
		s.selected[group.ID] = []entity.CustomizationOption{opt}

	case opt.Sentinel:
		// "Sem carne" fica sozinho no grupo
		s.selected[group.ID] = []entity.CustomizationOption{opt}

	default:
		kept := withoutSentinel(cur)
		if len(kept) < s.effectiveMax(group) {
			s.selected[group.ID] = append(kept, opt)
		}
		// grupo cheio: nada muda
	}

	s.enforceGoverned(group.ID)
}

// effectiveMax resolve o teto do grupo, que pode depender da escolha de outro
// grupo (tamanho -> carnes).
func (s *Session) effectiveMax(g entity.CustomizationGroup) int {
	if g.MaxRule == nil {
		return g.Max
	}
	gov := s.selected[g.MaxRule.GroupID]
	if len(gov) == 1 && gov[0].ID == g.MaxRule.OptionID {
		return g.MaxRule.Expanded
	}
	return g.MaxRule.Default
}

// enforceGoverned limpa grupos dependentes que ficaram acima do novo teto
// depois que o grupo governante mudou. A escolha volta vazia, não é cortada.
func (s *Session) enforceGoverned(changedGroupID string) {
	for _, g := range s.item.CustomizationGroups {
		if g.MaxRule == nil || g.MaxRule.GroupID != changedGroupID {
			continue
		}
		if len(s.selected[g.ID]) > s.effectiveMax(g) {
			delete(s.selected, g.ID)
		}
	}
}

// Valid verifica min <= escolhas <= teto efetivo para todos os grupos do item,
// inclusive os que ainda estão escondidos na tela.
func (s *Session) Valid() bool {
	return len(s.UnsatisfiedGroups()) == 0
}

// UnsatisfiedGroups lists the names of groups whose selection count is outside
// [min, effective max].
func (s *Session) UnsatisfiedGroups() []string {
	var out []string
	for _, g := range s.item.CustomizationGroups {
		n := len(s.selected[g.ID])
		if n < g.Min || n > s.effectiveMax(g) {
			out = append(out, g.Name)
		}
	}
	return out
}

// UnitPrice soma o preço base com os deltas das opções marcadas.
func (s *Session) UnitPrice() int64 {
	price := s.item.Price
	for _, opts := range s.selected {
		for _, o := range opts {
			price += o.Price
		}
	}
	return price
}

// Total é linear na quantidade.
func (s *Session) Total() int64 {
	return s.UnitPrice() * int64(s.quantity)
}

// VisibleGroups filtra os grupos para exibição: um grupo com HiddenUntil só
// aparece depois que o grupo governante tem escolha. A validade não muda.
func (s *Session) VisibleGroups() []entity.CustomizationGroup {
	var out []entity.CustomizationGroup
	for _, g := range s.item.CustomizationGroups {
		if g.HiddenUntil != "" && len(s.selected[g.HiddenUntil]) == 0 {
			continue
		}
		out = append(out, g)
	}
	return out
}

// Commit congela a sessão em um item de carrinho. Falha com ValidationError
// apontando os grupos insatisfeitos.
func (s *Session) Commit() (entity.CartItem, error) {
	if missing := s.UnsatisfiedGroups(); len(missing) > 0 {
		return entity.CartItem{}, &ValidationError{Fields: missing}
	}

	id := s.editingID
	if id == "" {
		id = uuid.NewString()
	}

	var sels []entity.GroupSelection
	for _, g := range s.item.CustomizationGroups {
		cur := s.selected[g.ID]
		if len(cur) == 0 {
			continue
		}
		opts := make([]entity.CustomizationOption, len(cur))
		copy(opts, cur)
		sels = append(sels, entity.GroupSelection{GroupID: g.ID, GroupName: g.Name, Options: opts})
	}

	return entity.CartItem{
		CartItemID: id,
		MenuItemID: s.item.ID,
		Name:       s.item.Name,
		Image:      s.item.Image,
		Quantity:   s.quantity,
		Notes:      s.notes,
		BasePrice:  s.item.Price,
		UnitPrice:  s.UnitPrice(),
		Selections: sels,
	}, nil
}

func removeOption(opts []entity.CustomizationOption, id int) []entity.CustomizationOption {
	out := opts[:0:0]
	for _, o := range opts {
		if o.ID != id {
			out = append(out, o)
		}
	}
	return out
}

func withoutSentinel(opts []entity.CustomizationOption) []entity.CustomizationOption {
	out := opts[:0:0]
	for _, o := range opts {
		if !o.Sentinel {
			out = append(out, o)
		}
	}
	return out
}

// ----- montagem a partir de requisição HTTP -----

type SelectionIn struct {
	GroupID   string `json:"groupId" binding:"required"`
	OptionIDs []int  `json:"optionIds"`
}

type CustomizeIn struct {
	Quantity   int           `json:"quantity"`
	Notes      string        `json:"notes"`
	Selections []SelectionIn `json:"selections"`
}

// BuildCartItem reproduz a sequência de toggles enviada pelo cliente e
// confirma a sessão. Grupo ou opção desconhecidos viram ValidationError (não
// panic: entrada externa). Uma opção recusada por grupo cheio também falha.
func BuildCartItem(item entity.MenuItem, editingID string, in *CustomizeIn) (entity.CartItem, error) {
	s := NewSession(item)
	s.editingID = editingID
	s.SetQuantity(in.Quantity)
	s.SetNotes(in.Notes)

	for _, sel := range in.Selections {
		group, ok := item.GroupByID(sel.GroupID)
		if !ok {
			return entity.CartItem{}, &ValidationError{Fields: []string{"selections." + sel.GroupID}}
		}
		for _, optID := range sel.OptionIDs {
			if _, ok := group.OptionByID(optID); !ok {
				return entity.CartItem{}, &ValidationError{Fields: []string{"selections." + sel.GroupID}}
			}
			s.Toggle(group.ID, optID)
			if !s.IsSelected(group.ID, optID) {
				// recusado pela regra de cardinalidade
				return entity.CartItem{}, &ValidationError{Fields: []string{group.Name}}
			}
		}
	}

	return s.Commit()
}
