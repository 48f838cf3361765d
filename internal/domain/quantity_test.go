package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizedQuantity(t *testing.T) {
	kg10 := SKU{ID: "kg-10", Category: CategoryKiteGlow, UnitsPerCarton: 144, UnitsPerDozen: 12}
	vero := SKU{ID: "v-5kg", Category: CategoryVero, UnitsPerCarton: 4, UnitsPerDozen: 0}

	tests := []struct {
		name     string
		item     OrderItem
		sku      SKU
		expected float64
	}{
		{
			name:     "Caixas, dúzias e unidades combinadas",
			item:     OrderItem{Cartons: 2, Dozens: 3, Pieces: 6},
			sku:      kg10,
			expected: 330.0 / 144.0,
		},
		{
			name:     "Item zerado",
			item:     OrderItem{},
			sku:      kg10,
			expected: 0,
		},
		{
			name:     "Somente unidades",
			item:     OrderItem{Pieces: 72},
			sku:      kg10,
			expected: 0.5,
		},
		{
			name:     "SKU sem dúzias ignora o multiplicador",
			item:     OrderItem{Cartons: 1, Pieces: 2},
			sku:      vero,
			expected: 1.5,
		},
		{
			name:     "SKU sem tamanho de caixa resulta em zero",
			item:     OrderItem{Cartons: 5, Dozens: 5, Pieces: 5},
			sku:      SKU{ID: "loose", Category: CategoryMatch, UnitsPerCarton: 0, UnitsPerDozen: 12},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, NormalizedQuantity(tt.item, tt.sku), 1e-9)
		})
	}
}

func TestNormalizedQuantity_Formula(t *testing.T) {
	for _, sku := range DefaultCatalog() {
		for c := 0; c <= 3; c++ {
			for d := 0; d <= 3; d++ {
				for p := 0; p <= 3; p++ {
					item := OrderItem{Cartons: c, Dozens: d, Pieces: p}
					expected := float64(c*sku.UnitsPerCarton+d*sku.UnitsPerDozen+p) / float64(sku.UnitsPerCarton)
					assert.InDelta(t, expected, NormalizedQuantity(item, sku), 1e-9, "sku %s item %+v", sku.ID, item)
				}
			}
		}
	}
}

func TestCategoryTotal(t *testing.T) {
	catalog := DefaultCatalog()

	order := &Order{
		Items: map[string]OrderItem{
			"kg-10":   {SKUID: "kg-10", Cartons: 2, Dozens: 3, Pieces: 6},
			"kg-1kg":  {SKUID: "kg-1kg", Cartons: 1},
			"ba-10":   {SKUID: "ba-10", Cartons: 4},
			"unknown": {SKUID: "unknown", Cartons: 99},
		},
	}

	t.Run("Soma apenas os SKUs da categoria", func(t *testing.T) {
		expected := NormalizedQuantity(order.Items["kg-10"], mustFind(t, catalog, "kg-10")) +
			NormalizedQuantity(order.Items["kg-1kg"], mustFind(t, catalog, "kg-1kg"))

		assert.InDelta(t, expected, CategoryTotal(order, CategoryKiteGlow, catalog), 1e-9)
		assert.InDelta(t, 4.0, CategoryTotal(order, CategoryBurqAction, catalog), 1e-9)
	})

	t.Run("Categoria sem itens resulta em zero", func(t *testing.T) {
		assert.Equal(t, 0.0, CategoryTotal(order, CategoryVero, catalog))
		assert.Equal(t, 0.0, CategoryTotal(order, CategoryWashingPowder, catalog))
	})

	t.Run("Pedido sem itens", func(t *testing.T) {
		assert.Equal(t, 0.0, CategoryTotal(&Order{}, CategoryKiteGlow, catalog))
	})

	t.Run("Alterar outra categoria não afeta o total", func(t *testing.T) {
		before := CategoryTotal(order, CategoryKiteGlow, catalog)

		changed := &Order{Items: map[string]OrderItem{}}
		for id, item := range order.Items {
			changed.Items[id] = item
		}
		changed.Items["m-slim"] = OrderItem{SKUID: "m-slim", Cartons: 10}

		assert.Equal(t, before, CategoryTotal(changed, CategoryKiteGlow, catalog))
	})
}

func TestCalculateCategoryTotals(t *testing.T) {
	catalog := DefaultCatalog()
	order := &Order{
		Items: map[string]OrderItem{
			"kg-10":  {Cartons: 1},
			"v-20kg": {Cartons: 3},
			"m-slim": {Dozens: 5},
		},
	}

	totals := CalculateCategoryTotals(order, catalog)

	require.Len(t, totals, len(Categories))
	assert.InDelta(t, 1.0, totals[CategoryKiteGlow], 1e-9)
	assert.InDelta(t, 3.0, totals[CategoryVero], 1e-9)
	assert.InDelta(t, 3.0, totals[CategoryMatch], 1e-9)
	assert.Equal(t, 0.0, totals[CategoryDWB])
	assert.InDelta(t, 7.0, totals.Sum(), 1e-9)
}

func TestCategoryTotals_Add(t *testing.T) {
	totals := NewCategoryTotals()
	totals.Add(CategoryTotals{CategoryKiteGlow: 1, CategoryDWB: 2})
	totals.Add(CategoryTotals{CategoryKiteGlow: 3})

	assert.Equal(t, 4.0, totals[CategoryKiteGlow])
	assert.Equal(t, 2.0, totals[CategoryDWB])
	assert.Equal(t, 6.0, totals.Sum())
}

func TestOrder_ParsedDate(t *testing.T) {
	tests := []struct {
		date string
		ok   bool
	}{
		{"2024-03-15", true},
		{" 2024-03-15 ", true},
		{"", false},
		{"15/03/2024", false},
		{"2024-02-30", false},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			_, ok := (&Order{Date: tt.date}).ParsedDate()
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestNewTargetRegistry(t *testing.T) {
	registry := NewTargetRegistry([]*BrandTarget{
		{OBContact: "P-01", Category: CategoryKiteGlow, TargetCartons: 10},
		{OBContact: "P-01", Category: CategoryDWB, TargetCartons: 4},
		{OBContact: "P-02", Category: CategoryKiteGlow, TargetCartons: 7},
		nil,
	})

	assert.Len(t, registry, 2)
	assert.Equal(t, 10.0, registry["P-01"][CategoryKiteGlow])
	assert.Equal(t, 4.0, registry["P-01"][CategoryDWB])
	assert.Equal(t, 7.0, registry["P-02"][CategoryKiteGlow])
}

func TestCatalog(t *testing.T) {
	catalog := DefaultCatalog()

	for _, sku := range catalog {
		assert.Greater(t, sku.UnitsPerCarton, 0, sku.ID)
		assert.True(t, sku.Category.IsValid(), sku.ID)
	}

	kg05, ok := catalog.Find("kg-05kg")
	require.True(t, ok)
	assert.False(t, kg05.AllowsDozens())

	_, ok = catalog.Find("nope")
	assert.False(t, ok)

	assert.Empty(t, catalog.ByCategory(CategoryWashingPowder))
	assert.Len(t, catalog.ByCategory(CategoryVero), 2)
	assert.False(t, Category("Soap").IsValid())
}

func mustFind(t *testing.T, catalog Catalog, id string) SKU {
	t.Helper()
	sku, ok := catalog.Find(id)
	require.True(t, ok, id)
	return sku
}
