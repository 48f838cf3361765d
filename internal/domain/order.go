package domain

import (
	"strings"
	"time"
)

// OrderItem é a quantidade digitada para um SKU
type OrderItem struct {
	SKUID   string `json:"sku_id"`
	Cartons int    `json:"cartons"`
	Dozens  int    `json:"dozens"`
	Pieces  int    `json:"pieces"`
}

func (i OrderItem) IsZero() bool {
	return i.Cartons == 0 && i.Dozens == 0 && i.Pieces == 0
}

// Order é um pedido enviado por um order booker. Date segue o formato YYYY-MM-DD.
type Order struct {
	ID                      int64                `json:"id"`
	Reference               string               `json:"reference"`
	Date                    string               `json:"date"`
	TSM                     string               `json:"tsm"`
	Town                    string               `json:"town"`
	Distributor             string               `json:"distributor"`
	OrderBooker             string               `json:"order_booker"`
	OBContact               string               `json:"ob_contact"`
	Route                   string               `json:"route"`
	TotalShops              int                  `json:"total_shops"`
	VisitedShops            int                  `json:"visited_shops"`
	ProductiveShops         int                  `json:"productive_shops"`
	CategoryProductiveShops map[Category]int     `json:"category_productive_shops"`
	Items                   map[string]OrderItem `json:"items"`
	SubmittedAt             time.Time            `json:"submitted_at"`
}

// ParsedDate devolve a data do pedido e false quando ela está ausente ou inválida
func (o *Order) ParsedDate() (time.Time, bool) {
	if o == nil || strings.TrimSpace(o.Date) == "" {
		return time.Time{}, false
	}

	date, err := time.Parse(time.DateOnly, strings.TrimSpace(o.Date))
	if err != nil {
		return time.Time{}, false
	}

	return date, true
}

// Item devolve a entrada do SKU, zerada quando não existe
func (o *Order) Item(skuID string) OrderItem {
	if o == nil || o.Items == nil {
		return OrderItem{SKUID: skuID}
	}

	item, exists := o.Items[skuID]
	if !exists {
		return OrderItem{SKUID: skuID}
	}

	return item
}

// VisitCounts acumula as visitas a lojas de uma rota
type VisitCounts struct {
	Total      int `json:"total"`
	Visited    int `json:"visited"`
	Productive int `json:"productive"`
}

func (v *VisitCounts) Add(other VisitCounts) {
	v.Total += other.Total
	v.Visited += other.Visited
	v.Productive += other.Productive
}

// SubmitOrderRequest é o corpo recebido no envio de um pedido
type SubmitOrderRequest struct {
	DraftID                 string               `json:"draft_id,omitempty"`
	Date                    string               `json:"date"`
	OBContact               string               `json:"ob_contact"`
	Route                   string               `json:"route"`
	TotalShops              int                  `json:"total_shops"`
	VisitedShops            int                  `json:"visited_shops"`
	ProductiveShops         int                  `json:"productive_shops"`
	CategoryProductiveShops map[Category]int     `json:"category_productive_shops"`
	Items                   map[string]OrderItem `json:"items"`
}

type SubmitOrderResponse struct {
	ID             int64          `json:"id"`
	Reference      string         `json:"reference"`
	SubmittedAt    time.Time      `json:"submitted_at"`
	CategoryTotals CategoryTotals `json:"category_totals"`
	GrandTotal     float64        `json:"grand_total"`
	Message        string         `json:"message"`
}

// OrderFilters filtra a consulta de pedidos. Campos nil ou vazios são ignorados.
type OrderFilters struct {
	OBContact string
	TSM       string
	StartDate *time.Time
	EndDate   *time.Time
}

// Draft é um pedido em andamento salvo no servidor
type Draft struct {
	ID        string    `json:"id"`
	Data      *Order    `json:"data"`
	UpdatedAt time.Time `json:"updated_at"`
}
