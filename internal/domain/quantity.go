package domain

// CategoryTotals guarda o total em caixas equivalentes por categoria
type CategoryTotals map[Category]float64

// Sum soma todas as categorias
func (t CategoryTotals) Sum() float64 {
	total := 0.0
	for _, value := range t {
		total += value
	}
	return total
}

// Add acumula os valores de outro vetor de totais
func (t CategoryTotals) Add(other CategoryTotals) {
	for category, value := range other {
		t[category] += value
	}
}

// NewCategoryTotals cria um vetor zerado com todas as categorias conhecidas
func NewCategoryTotals() CategoryTotals {
	totals := make(CategoryTotals, len(Categories))
	for _, category := range Categories {
		totals[category] = 0
	}
	return totals
}

// NormalizedQuantity converte caixas, dúzias e unidades em caixas equivalentes:
// (cartons*unitsPerCarton + dozens*unitsPerDozen + pieces) / unitsPerCarton.
// SKUs sem tamanho de caixa resultam em 0.
func NormalizedQuantity(item OrderItem, sku SKU) float64 {
	if sku.UnitsPerCarton == 0 {
		return 0
	}

	pieces := item.Cartons*sku.UnitsPerCarton + item.Dozens*sku.UnitsPerDozen + item.Pieces
	return float64(pieces) / float64(sku.UnitsPerCarton)
}

// CategoryTotal soma as caixas equivalentes de todos os SKUs da categoria
func CategoryTotal(order *Order, category Category, catalog Catalog) float64 {
	total := 0.0
	for _, sku := range catalog {
		if sku.Category != category {
			continue
		}
		total += NormalizedQuantity(order.Item(sku.ID), sku)
	}
	return total
}

// CalculateCategoryTotals devolve o vetor de realização de um pedido
func CalculateCategoryTotals(order *Order, catalog Catalog) CategoryTotals {
	totals := NewCategoryTotals()
	for _, category := range Categories {
		totals[category] = CategoryTotal(order, category, catalog)
	}
	return totals
}
