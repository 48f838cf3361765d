package reporting

import (
	"sort"
	"strings"
	"time"

	"github.com/vfg2006/order-booker-api/internal/domain"
	"github.com/vfg2006/order-booker-api/pkg/utils"
)

// Window é um intervalo inclusivo de datas. Limites nil deixam o intervalo aberto.
type Window struct {
	Start *time.Time
	End   *time.Time
}

// IsBounded indica se a janela tem pelo menos um limite
func (w Window) IsBounded() bool {
	return w.Start != nil || w.End != nil
}

// Contains compara apenas a parte de data
func (w Window) Contains(date time.Time) bool {
	day := dateOnly(date)
	if w.Start != nil && day.Before(dateOnly(*w.Start)) {
		return false
	}
	if w.End != nil && day.After(dateOnly(*w.End)) {
		return false
	}
	return true
}

// TodayWindow cobre apenas o dia de now
func TodayWindow(now time.Time) Window {
	today := dateOnly(now)
	return Window{Start: &today, End: &today}
}

// MonthToDateWindow cobre do primeiro dia do mês de now até now
func MonthToDateWindow(now time.Time) Window {
	today := dateOnly(now)
	firstDay := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	return Window{Start: &firstDay, End: &today}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FilterByWindow seleciona os pedidos cuja data cai na janela.
// Pedidos sem data válida só entram quando a janela não tem limites.
func FilterByWindow(orders []*domain.Order, window Window) []*domain.Order {
	filtered := make([]*domain.Order, 0, len(orders))
	for _, order := range orders {
		if order == nil {
			continue
		}

		if !window.IsBounded() {
			filtered = append(filtered, order)
			continue
		}

		date, ok := order.ParsedDate()
		if !ok {
			continue
		}

		if window.Contains(date) {
			filtered = append(filtered, order)
		}
	}
	return filtered
}

// SumCategoryTotals soma o vetor de realização de todos os pedidos
func SumCategoryTotals(orders []*domain.Order, catalog domain.Catalog) domain.CategoryTotals {
	totals := domain.NewCategoryTotals()
	for _, order := range orders {
		if order == nil {
			continue
		}
		totals.Add(domain.CalculateCategoryTotals(order, catalog))
	}
	return totals
}

// TargetFor devolve a meta do order booker na categoria, 0 quando não existe
func TargetFor(obContact string, category domain.Category, registry domain.TargetRegistry) float64 {
	targets, exists := registry[obContact]
	if !exists {
		return 0
	}
	return targets[category]
}

// TotalTargetFor soma as metas de todas as categorias do order booker
func TotalTargetFor(obContact string, registry domain.TargetRegistry) float64 {
	total := 0.0
	for _, category := range domain.Categories {
		total += TargetFor(obContact, category, registry)
	}
	return total
}

// Percentage devolve achievement/target*100 com duas casas, ou 0 para metas não positivas
func Percentage(achievement, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(achievement / target * 100)
}

// RollupByOrderBooker agrupa os pedidos por order booker. Todo order booker do diretório
// aparece no resultado, mesmo sem pedidos; contatos sem cadastro entram com os dados do pedido.
// O resultado é ordenado pela realização total, do maior para o menor.
func RollupByOrderBooker(
	orders []*domain.Order,
	catalog domain.Catalog,
	orderBookers []*domain.OrderBooker,
	registry domain.TargetRegistry,
) []*domain.OrderBookerAchievement {
	rollups := make([]*domain.OrderBookerAchievement, 0, len(orderBookers))
	byContact := make(map[string]*domain.OrderBookerAchievement, len(orderBookers))

	for _, ob := range orderBookers {
		if ob == nil {
			continue
		}
		if _, exists := byContact[ob.Contact]; exists {
			continue
		}

		rollup := newOrderBookerAchievement(ob.Contact, ob.Name, ob.Town, ob.TSM)
		byContact[ob.Contact] = rollup
		rollups = append(rollups, rollup)
	}

	for _, order := range orders {
		if order == nil {
			continue
		}

		rollup, exists := byContact[order.OBContact]
		if !exists {
			rollup = newOrderBookerAchievement(order.OBContact, order.OrderBooker, order.Town, order.TSM)
			byContact[order.OBContact] = rollup
			rollups = append(rollups, rollup)
		}

		rollup.CategoryTotals.Add(domain.CalculateCategoryTotals(order, catalog))
		rollup.OrderCount++

		rollup.Visits.Add(domain.VisitCounts{
			Total:      order.TotalShops,
			Visited:    order.VisitedShops,
			Productive: order.ProductiveShops,
		})

		for category, shops := range order.CategoryProductiveShops {
			rollup.CategoryProductiveShops[category] += shops
		}
	}

	for _, rollup := range rollups {
		rollup.TotalAchievement = rollup.CategoryTotals.Sum()
		rollup.TotalTarget = TotalTargetFor(rollup.OBContact, registry)
		rollup.Percentage = Percentage(rollup.TotalAchievement, rollup.TotalTarget)
	}

	sort.SliceStable(rollups, func(i, j int) bool {
		return rollups[i].TotalAchievement > rollups[j].TotalAchievement
	})

	return rollups
}

func newOrderBookerAchievement(contact, name, town, tsm string) *domain.OrderBookerAchievement {
	categoryShops := make(map[domain.Category]int, len(domain.Categories))
	for _, category := range domain.Categories {
		categoryShops[category] = 0
	}

	return &domain.OrderBookerAchievement{
		OBContact:               contact,
		Name:                    name,
		Town:                    town,
		TSM:                     tsm,
		CategoryTotals:          domain.NewCategoryTotals(),
		CategoryProductiveShops: categoryShops,
	}
}

// RollupByTSM agrupa as realizações dos order bookers pelo TSM responsável.
// OBCount conta os order bookers distintos do TSM, com ou sem pedidos na janela.
func RollupByTSM(
	orders []*domain.Order,
	catalog domain.Catalog,
	orderBookers []*domain.OrderBooker,
	registry domain.TargetRegistry,
) []*domain.TSMAchievement {
	sellers := RollupByOrderBooker(orders, catalog, orderBookers, registry)

	rollups := make([]*domain.TSMAchievement, 0)
	byTSM := make(map[string]*domain.TSMAchievement)

	for _, seller := range sellers {
		tsm := strings.TrimSpace(seller.TSM)
		if tsm == "" {
			tsm = domain.TSMUnassigned
		}

		rollup, exists := byTSM[tsm]
		if !exists {
			rollup = &domain.TSMAchievement{
				TSM:            tsm,
				CategoryTotals: domain.NewCategoryTotals(),
			}
			byTSM[tsm] = rollup
			rollups = append(rollups, rollup)
		}

		rollup.OBCount++
		rollup.CategoryTotals.Add(seller.CategoryTotals)
		rollup.TotalTarget += seller.TotalTarget
	}

	for _, rollup := range rollups {
		rollup.TotalAchievement = rollup.CategoryTotals.Sum()
		rollup.Percentage = Percentage(rollup.TotalAchievement, rollup.TotalTarget)
	}

	sort.SliceStable(rollups, func(i, j int) bool {
		return rollups[i].TotalAchievement > rollups[j].TotalAchievement
	})

	return rollups
}

// RollupByRoute agrupa os pedidos pela rota. Pedidos sem rota ficam em RouteUnknown.
func RollupByRoute(orders []*domain.Order, catalog domain.Catalog) []*domain.RouteAchievement {
	rollups := make([]*domain.RouteAchievement, 0)
	byRoute := make(map[string]*domain.RouteAchievement)

	for _, order := range orders {
		if order == nil {
			continue
		}

		route := strings.TrimSpace(order.Route)
		if route == "" {
			route = domain.RouteUnknown
		}

		rollup, exists := byRoute[route]
		if !exists {
			rollup = &domain.RouteAchievement{Route: route}
			byRoute[route] = rollup
			rollups = append(rollups, rollup)
		}

		rollup.Achievement += domain.CalculateCategoryTotals(order, catalog).Sum()
		rollup.OrderCount++
		rollup.Visits.Add(domain.VisitCounts{
			Total:      order.TotalShops,
			Visited:    order.VisitedShops,
			Productive: order.ProductiveShops,
		})
	}

	sort.SliceStable(rollups, func(i, j int) bool {
		return rollups[i].Achievement > rollups[j].Achievement
	})

	return rollups
}

// Summarize monta o resumo global. As metas consideradas são todas as do registro recebido.
func Summarize(
	orders []*domain.Order,
	catalog domain.Catalog,
	registry domain.TargetRegistry,
) *domain.AchievementSummary {
	totals := SumCategoryTotals(orders, catalog)

	summary := &domain.AchievementSummary{
		Categories: make([]domain.CategoryAchievement, 0, len(domain.Categories)),
	}

	for _, category := range domain.Categories {
		target := 0.0
		for contact := range registry {
			target += TargetFor(contact, category, registry)
		}

		summary.Categories = append(summary.Categories, domain.CategoryAchievement{
			Category:    category,
			Target:      target,
			Achievement: totals[category],
			Percentage:  Percentage(totals[category], target),
		})

		summary.TotalTarget += target
	}

	for _, order := range orders {
		if order == nil {
			continue
		}
		summary.OrderCount++
		summary.Visits.Add(domain.VisitCounts{
			Total:      order.TotalShops,
			Visited:    order.VisitedShops,
			Productive: order.ProductiveShops,
		})
	}

	summary.TotalAchievement = totals.Sum()
	summary.Percentage = Percentage(summary.TotalAchievement, summary.TotalTarget)

	return summary
}
