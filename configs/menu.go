package configs

import (
	"github.com/AV-automacoes/restaurante-bom-prato/entity"
)

// Cardápio estático do restaurante. Preços em centavos.

const (
	GroupTamanho = "tamanho"
	GroupMenu    = "menu"
	GroupSaladas = "saladas"
	GroupCarnes  = "carnes"

	MarmitexItemID = 1

	OptionMarmitexGrande  = 1001
	OptionMarmitexPequena = 1002
	OptionSemCarne        = 301
)

func opt(id int, name string) entity.CustomizationOption {
	return entity.CustomizationOption{ID: id, Name: name}
}

type dailyMenu struct {
	menu   []entity.CustomizationOption
	salads []entity.CustomizationOption
	meats  []entity.CustomizationOption
}

func semCarne() entity.CustomizationOption {
	return entity.CustomizationOption{ID: OptionSemCarne, Name: "Sem carne", Sentinel: true}
}

// segunda a sábado; domingo cai no cardápio de segunda
func dailyMenus() map[int]dailyMenu {
	return map[int]dailyMenu{
		1: {
			menu:   []entity.CustomizationOption{opt(101, "Arroz"), opt(102, "Feijão de caldo"), opt(103, "Macarrão"), opt(104, "Abobrinha")},
			salads: []entity.CustomizationOption{opt(201, "Alface"), opt(202, "Beterraba"), opt(203, "Repolho"), opt(204, "Tomate"), opt(205, "Pepino")},
			meats:  []entity.CustomizationOption{semCarne(), opt(302, "Frango ao molho"), opt(303, "Frango frito"), opt(304, "Bife")},
		},
		2: {
			menu:   []entity.CustomizationOption{opt(101, "Arroz"), opt(102, "Feijão de caldo"), opt(105, "Tropeiro"), opt(103, "Macarrão"), opt(106, "Chuchu")},
			salads: []entity.CustomizationOption{opt(201, "Alface"), opt(202, "Beterraba"), opt(203, "Repolho"), opt(204, "Tomate"), opt(205, "Pepino")},
			meats:  []entity.CustomizationOption{semCarne(), opt(305, "Castelão"), opt(303, "Frango frito"), opt(306, "Bife de pernil"), opt(307, "Frango Assado")},
		},
		3: {
			menu:   []entity.CustomizationOption{opt(101, "Arroz"), opt(102, "Feijão de caldo"), opt(107, "Feijoada"), opt(103, "Macarrão"), opt(108, "Batata frita"), opt(109, "Moranga")},
			salads: []entity.CustomizationOption{opt(201, "Alface"), opt(206, "Couve"), opt(207, "Chuchu c/ cenoura"), opt(204, "Tomate"), opt(208, "Tabule")},
			meats:  []entity.CustomizationOption{semCarne(), opt(303, "Frango frito"), opt(307, "Frango Assado")},
		},
		4: {
			menu:   []entity.CustomizationOption{opt(101, "Arroz"), opt(102, "Feijão de caldo"), opt(110, "Tutu de feijão"), opt(103, "Macarrão"), opt(111, "Angu"), opt(112, "Jiló")},
			salads: []entity.CustomizationOption{opt(201, "Alface"), opt(205, "Pepino"), opt(209, "Couve flor c/ brócolis"), opt(204, "Tomate"), opt(210, "Cenoura c/ chuchu"), opt(211, "Abacaxi")},
			meats:  []entity.CustomizationOption{semCarne(), opt(303, "Frango frito"), opt(307, "Frango Assado"), opt(304, "Bife")},
		},
		5: {
			menu:   []entity.CustomizationOption{opt(101, "Arroz"), opt(102, "Feijão de caldo"), opt(107, "Feijoada"), opt(103, "Macarrão"), opt(108, "Batata frita"), opt(113, "Salpicão")},
			salads: []entity.CustomizationOption{opt(201, "Alface"), opt(206, "Couve"), opt(212, "Beterraba ralada"), opt(204, "Tomate")},
			meats:  []entity.CustomizationOption{semCarne(), opt(303, "Frango frito"), opt(302, "Frango em molho"), opt(304, "Bife"), opt(308, "Linguiça")},
		},
		6: {
			menu:   []entity.CustomizationOption{opt(101, "Arroz"), opt(102, "Feijão de caldo"), opt(107, "Feijoada"), opt(103, "Macarrão"), opt(114, "Farofa"), opt(113, "Salpicão")},
			salads: []entity.CustomizationOption{opt(201, "Alface"), opt(206, "Couve"), opt(204, "Tomate"), opt(213, "Vinagrete")},
			meats:  []entity.CustomizationOption{semCarne(), opt(303, "Frango frito"), opt(307, "Frango Assado"), opt(308, "Linguiça"), opt(309, "Carne de porco")},
		},
	}
}

func staticWaters() entity.MenuCategory {
	return entity.MenuCategory{
		ID:         "aguas",
		Name:       "Águas",
		CoverImage: "https://i.imgur.com/8AIHAR8.jpeg",
		Items: []entity.MenuItem{
			{ID: 11, Name: "Água sem Gás 500ml", Image: "https://i.imgur.com/HWrakNT.jpeg", Price: 300},
			{ID: 12, Name: "Água com Gás 500ml", Image: "https://i.imgur.com/TIVLzUP.png", Price: 400},
		},
	}
}

func staticJuices() entity.MenuCategory {
	return entity.MenuCategory{
		ID:         "sucos",
		Name:       "Sucos",
		CoverImage: "https://i.imgur.com/uKxcqeO.jpeg",
		Items: []entity.MenuItem{
			{ID: 13, Name: "Suco Natural Laranja 500ml", Description: "Feito com laranjas frescas.", Image: "https://i.imgur.com/LAnD0wl.png", Price: 700},
			{ID: 14, Name: "Suco Natural Limão 500ml", Description: "Refrescante e feito na hora.", Image: "https://i.imgur.com/uUYqr0Q.jpeg", Price: 600},
		},
	}
}

func flavorGroup(id string, options ...entity.CustomizationOption) entity.CustomizationGroup {
	return entity.CustomizationGroup{ID: id, Name: "Sabor", Min: 1, Max: 1, Options: options}
}

func staticSoftDrinks() entity.MenuCategory {
	return entity.MenuCategory{
		ID:         "refrigerantes",
		Name:       "Refrigerantes",
		CoverImage: "https://i.imgur.com/QQNyAJw.jpg",
		Items: []entity.MenuItem{
			{ID: 21, Name: "COCA-COLA 2L", Image: "https://i.imgur.com/qxQBA17.jpeg", Price: 1400},
			{ID: 22, Name: "COCA-COLA ZERO 2 LITROS", Image: "https://i.imgur.com/2Laipu8.png", Price: 1400},
			{
				ID: 23, Name: "Refrigerantes 2L", Description: "Escolha o seu sabor preferido.",
				Image: "https://i.imgur.com/yukfYB5.jpeg", Price: 1200,
				CustomizationGroups: []entity.CustomizationGroup{
					flavorGroup("sabor_2l", opt(601, "Guarana"), opt(602, "Fanta Uva"), opt(603, "Fanta Laranja"), opt(604, "Sprite"), opt(605, "Pepsi")),
				},
			},
			{ID: 26, Name: "H2O Sabores / Sprite Fresh 500ml", Description: "H2O SABORES / SPRITE FRESH 500ML", Image: "https://i.imgur.com/7RxF1iF.png", Price: 800},
			{
				ID: 27, Name: "Refrigerantes Lata 350ml", Description: "Escolha o seu sabor preferido.",
				Image: "https://i.imgur.com/qzJFVdu.png", Price: 600,
				CustomizationGroups: []entity.CustomizationGroup{
					flavorGroup("sabor_lata", opt(701, "Coca"), opt(702, "Coca Zero"), opt(703, "Guarana"), opt(704, "Fanta Laranja"), opt(705, "Sprite"), opt(706, "Pepsi")),
				},
			},
			{
				ID: 28, Name: "Refri 600ml", Description: "Escolha o seu sabor preferido.",
				Image: "https://i.imgur.com/LTFpXtD.png", Price: 800,
				CustomizationGroups: []entity.CustomizationGroup{
					flavorGroup("sabor_600ml", opt(801, "Coca"), opt(802, "Coca Zero"), opt(803, "Sprite"), opt(804, "Fanta Laranja")),
				},
			},
		},
	}
}

// MenuForDay monta o cardápio de um dia da semana (0=domingo ... 6=sábado).
// Returns fresh copies; callers may not share or mutate catalog state.
func MenuForDay(day int) []entity.MenuCategory {
	key := day
	if key <= 0 || key > 6 {
		key = 1
	}
	today, ok := dailyMenus()[key]
	if !ok {
		today = dailyMenus()[1]
	}

	marmitex := entity.MenuCategory{
		ID:         "monte-sua-marmitex",
		Name:       "Monte sua Marmitex",
		CoverImage: "https://i.imgur.com/ctkdy1S.jpeg",
		Items: []entity.MenuItem{
			{
				ID:          MarmitexItemID,
				Name:        "Marmitex a sua escolha",
				Description: "Escolha o tamanho, os acompanhamentos, salada e carne para montar a marmita perfeita para a sua fome.",
				Image:       "https://i.imgur.com/D9sSqoo.jpeg",
				Price:       2100, // preço base da grande
				CustomizationGroups: []entity.CustomizationGroup{
					{
						ID: GroupTamanho, Name: "Tamanho", Min: 1, Max: 1,
						Options: []entity.CustomizationOption{
							{ID: OptionMarmitexGrande, Name: "Marmitex Grande"},
							{ID: OptionMarmitexPequena, Name: "Marmitex Pequena", Price: -300}, // R$ 18,00
						},
					},
					{ID: GroupMenu, Name: "Menu", Min: 1, Max: 5, Options: today.menu, HiddenUntil: GroupTamanho},
					{ID: GroupSaladas, Name: "Saladas", Min: 1, Max: 5, Options: today.salads, HiddenUntil: GroupTamanho},
					{
						ID: GroupCarnes, Name: "Carnes", Min: 1, Max: 2, Options: today.meats,
						HiddenUntil: GroupTamanho,
						MaxRule: &entity.MaxRule{
							GroupID:  GroupTamanho,
							OptionID: OptionMarmitexGrande,
							Expanded: 2,
							Default:  1,
						},
					},
				},
			},
		},
	}

	return []entity.MenuCategory{marmitex, staticWaters(), staticJuices(), staticSoftDrinks()}
}
