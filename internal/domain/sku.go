// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// Category é a categoria de marca à qual um SKU pertence
type Category string

const (
	CategoryKiteGlow      Category = "Kite Glow"
	CategoryBurqAction    Category = "Burq Action"
	CategoryVero          Category = "Vero"
	CategoryWashingPowder Category = "Washing Powder"
	CategoryDWB           Category = "DWB"
	CategoryMatch         Category = "Match"
)

// Categories lista as categorias conhecidas na ordem de exibição
var Categories = []Category{
	CategoryKiteGlow,
	CategoryBurqAction,
	CategoryVero,
	CategoryWashingPowder,
	CategoryDWB,
	CategoryMatch,
}

func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// SKU é uma entrada estática do catálogo.
// UnitsPerDozen igual a 0 indica que o SKU não aceita entrada em dúzias.
type SKU struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Category       Category `json:"category"`
	UnitsPerCarton int      `json:"units_per_carton"`
	UnitsPerDozen  int      `json:"units_per_dozen"`
	PricePerCarton float64  `json:"price_per_carton,omitempty"`
}

func (s SKU) AllowsDozens() bool {
	return s.UnitsPerDozen > 0
}

// Catalog é a lista imutável de SKUs carregada na inicialização
type Catalog []SKU

func (c Catalog) Find(id string) (SKU, bool) {
	for _, sku := range c {
		if sku.ID == id {
			return sku, true
		}
	}
	return SKU{}, false
}

func (c Catalog) ByCategory(category Category) []SKU {
	skus := make([]SKU, 0)
	for _, sku := range c {
		if sku.Category == category {
			skus = append(skus, sku)
		}
	}
	return skus
}

type CatalogResponse struct {
	Categories []Category `json:"categories"`
	SKUs       Catalog    `json:"skus"`
}

// DefaultCatalog devolve o catálogo de produtos vendido pelos order bookers.
// Washing Powder não tem SKUs ativos, mas continua como categoria de meta.
func DefaultCatalog() Catalog {
	return Catalog{
		{ID: "kg-10", Name: "Kite Rs 10", Category: CategoryKiteGlow, UnitsPerCarton: 144, UnitsPerDozen: 12, PricePerCarton: 1440},
		{ID: "kg-20", Name: "Kite Rs 20", Category: CategoryKiteGlow, UnitsPerCarton: 96, UnitsPerDozen: 12, PricePerCarton: 1920},
		{ID: "kg-50", Name: "Kite Rs 50", Category: CategoryKiteGlow, UnitsPerCarton: 48, UnitsPerDozen: 12, PricePerCarton: 2400},
		{ID: "kg-99", Name: "Kite Rs 99", Category: CategoryKiteGlow, UnitsPerCarton: 24, UnitsPerDozen: 12, PricePerCarton: 2376},
		{ID: "kg-05kg", Name: "Kite 0.5kg", Category: CategoryKiteGlow, UnitsPerCarton: 24, UnitsPerDozen: 0, PricePerCarton: 3600},
		{ID: "kg-1kg", Name: "Kite 1kg", Category: CategoryKiteGlow, UnitsPerCarton: 12, UnitsPerDozen: 0, PricePerCarton: 3600},
		{ID: "kg-2kg", Name: "Kite 2kg", Category: CategoryKiteGlow, UnitsPerCarton: 6, UnitsPerDozen: 0, PricePerCarton: 3600},

		{ID: "ba-10", Name: "Burq Rs 10", Category: CategoryBurqAction, UnitsPerCarton: 204, UnitsPerDozen: 12, PricePerCarton: 2040},
		{ID: "ba-20", Name: "Burq Rs 20", Category: CategoryBurqAction, UnitsPerCarton: 96, UnitsPerDozen: 12, PricePerCarton: 1920},
		{ID: "ba-50", Name: "Burq Rs 50", Category: CategoryBurqAction, UnitsPerCarton: 48, UnitsPerDozen: 12, PricePerCarton: 2400},
		{ID: "ba-99", Name: "Burq Rs 99", Category: CategoryBurqAction, UnitsPerCarton: 24, UnitsPerDozen: 12, PricePerCarton: 2376},
		{ID: "ba-1kg", Name: "Burq 1kg", Category: CategoryBurqAction, UnitsPerCarton: 12, UnitsPerDozen: 0, PricePerCarton: 3600},
		{ID: "ba-23kg", Name: "Burq 2.3kg", Category: CategoryBurqAction, UnitsPerCarton: 6, UnitsPerDozen: 0, PricePerCarton: 3600},

		{ID: "v-5kg", Name: "Vero 5kg", Category: CategoryVero, UnitsPerCarton: 4, UnitsPerDozen: 0, PricePerCarton: 4000},
		{ID: "v-20kg", Name: "Vero 20kg", Category: CategoryVero, UnitsPerCarton: 1, UnitsPerDozen: 0, PricePerCarton: 16000},

		{ID: "dwb-reg", Name: "Regular", Category: CategoryDWB, UnitsPerCarton: 48, UnitsPerDozen: 12, PricePerCarton: 4800},
		{ID: "dwb-large", Name: "Large", Category: CategoryDWB, UnitsPerCarton: 36, UnitsPerDozen: 12, PricePerCarton: 5400},
		{ID: "dwb-long", Name: "Long Bar", Category: CategoryDWB, UnitsPerCarton: 36, UnitsPerDozen: 12, PricePerCarton: 5400},
		{ID: "dwb-super", Name: "Super Bar", Category: CategoryDWB, UnitsPerCarton: 36, UnitsPerDozen: 12, PricePerCarton: 5400},
		{ID: "dwb-new", Name: "New DWB", Category: CategoryDWB, UnitsPerCarton: 36, UnitsPerDozen: 12, PricePerCarton: 5400},

		{ID: "m-large", Name: "Large", Category: CategoryMatch, UnitsPerCarton: 10, UnitsPerDozen: 12, PricePerCarton: 1000},
		{ID: "m-classic", Name: "Classic", Category: CategoryMatch, UnitsPerCarton: 10, UnitsPerDozen: 12, PricePerCarton: 1000},
		{ID: "m-regular", Name: "Regular", Category: CategoryMatch, UnitsPerCarton: 20, UnitsPerDozen: 12, PricePerCarton: 2000},
		{ID: "m-slim", Name: "Slim", Category: CategoryMatch, UnitsPerCarton: 20, UnitsPerDozen: 12, PricePerCarton: 2000},
	}
}
