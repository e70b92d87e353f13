package services

import (
	"strings"

	"github.com/AV-automacoes/restaurante-bom-prato/configs"
	"github.com/AV-automacoes/restaurante-bom-prato/entity"
	"go.uber.org/zap"
)

// MenuService expõe o cardápio como função pura do dia da semana.
type MenuService struct {
	log *zap.Logger
}

func NewMenuService(log *zap.Logger) *MenuService {
	s := &MenuService{log: log}
	s.checkCatalog()
	return s
}

// ForDay retorna o cardápio do dia (0=domingo usa o de segunda).
func (s *MenuService) ForDay(day int) []entity.MenuCategory {
	return configs.MenuForDay(day)
}

// Search filtra itens por nome ou descrição, mantendo só categorias com
// resultado.
func (s *MenuService) Search(day int, query string) []entity.MenuCategory {
	cats := s.ForDay(day)
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return cats
	}
	var out []entity.MenuCategory
	for _, cat := range cats {
		var items []entity.MenuItem
		for _, it := range cat.Items {
			if strings.Contains(strings.ToLower(it.Name), q) ||
				strings.Contains(strings.ToLower(it.Description), q) {
				items = append(items, it)
			}
		}
		if len(items) > 0 {
			cat.Items = items
			out = append(out, cat)
		}
	}
	return out
}

// FindItem localiza um item do cardápio do dia pelo id.
func (s *MenuService) FindItem(day, itemID int) (entity.MenuItem, bool) {
	for _, cat := range s.ForDay(day) {
		for _, it := range cat.Items {
			if it.ID == itemID {
				return it, true
			}
		}
	}
	return entity.MenuItem{}, false
}

// checkCatalog avisa se algum item pode ter preço unitário negativo no pior
// caso (deltas negativos maiores que o preço base). O motor não faz clamp;
// o dado é que precisa estar certo.
func (s *MenuService) checkCatalog() {
	for day := 1; day <= 6; day++ {
		for _, cat := range configs.MenuForDay(day) {
			for _, it := range cat.Items {
				if worst := worstCaseUnitPrice(it); worst < 0 {
					s.log.Warn("menu item can price below zero",
						zap.Int("day", day),
						zap.Int("itemId", it.ID),
						zap.Int64("worstCase", worst))
				}
			}
		}
	}
}

// worstCaseUnitPrice soma ao preço base os deltas negativos mais extremos que
// cada grupo permite dentro do próprio teto.
func worstCaseUnitPrice(it entity.MenuItem) int64 {
	price := it.Price
	for _, g := range it.CustomizationGroups {
		var negatives []int64
		for _, o := range g.Options {
			if o.Price < 0 {
				negatives = append(negatives, o.Price)
			}
		}
		// ordena decrescente em valor absoluto
		for i := 0; i < len(negatives); i++ {
			for j := i + 1; j < len(negatives); j++ {
				if negatives[j] < negatives[i] {
					negatives[i], negatives[j] = negatives[j], negatives[i]
				}
			}
		}
		max := g.Max
		if max > len(negatives) {
			max = len(negatives)
		}
		for i := 0; i < max; i++ {
			price += negatives[i]
		}
	}
	return price
}
