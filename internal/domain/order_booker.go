package domain

// OrderBooker é o vendedor de rota. Contact é o identificador único usado nos pedidos e metas.
type OrderBooker struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Contact     string   `json:"contact"`
	Town        string   `json:"town"`
	Distributor string   `json:"distributor"`
	TSM         string   `json:"tsm"`
	TotalShops  int      `json:"total_shops"`
	Routes      []string `json:"routes"`
}

func (ob *OrderBooker) HasRoute(route string) bool {
	for _, r := range ob.Routes {
		if r == route {
			return true
		}
	}
	return false
}

type SaveOrderBookerRequest struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Contact     string   `json:"contact"`
	Town        string   `json:"town"`
	Distributor string   `json:"distributor"`
	TSM         string   `json:"tsm"`
	TotalShops  int      `json:"total_shops"`
	Routes      []string `json:"routes"`
}

// BrandTarget é a meta em caixas de um order booker para uma categoria
type BrandTarget struct {
	ID            int64    `json:"id"`
	OBContact     string   `json:"ob_contact"`
	Category      Category `json:"brand_name"`
	TargetCartons float64  `json:"target_ctn"`
}

// TargetRegistry indexa as metas por contato e categoria
type TargetRegistry map[string]map[Category]float64

func NewTargetRegistry(targets []*BrandTarget) TargetRegistry {
	registry := make(TargetRegistry)
	for _, target := range targets {
		if target == nil {
			continue
		}
		if _, exists := registry[target.OBContact]; !exists {
			registry[target.OBContact] = make(map[Category]float64)
		}
		registry[target.OBContact][target.Category] = target.TargetCartons
	}
	return registry
}

// AppSetting é uma configuração chave/valor editável pelo admin
type AppSetting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
