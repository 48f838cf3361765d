package domain

import "time"

// RouteUnknown agrupa os pedidos sem rota registrada
const RouteUnknown = "Unknown"

// TSMUnassigned agrupa os order bookers sem TSM
const TSMUnassigned = "Unassigned"

const (
	WindowToday = "today"
	WindowMTD   = "mtd"
	WindowAll   = "all"
)

// ReportFilters são os filtros aceitos pelos relatórios
type ReportFilters struct {
	Window    string     `json:"window,omitempty"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	OBContact string     `json:"ob_contact,omitempty"`
	TSM       string     `json:"tsm,omitempty"`
}

type CategoryAchievement struct {
	Category    Category `json:"category"`
	Target      float64  `json:"target"`
	Achievement float64  `json:"achievement"`
	Percentage  float64  `json:"percentage"`
}

// AchievementSummary é o resumo global de realização contra as metas
type AchievementSummary struct {
	Categories       []CategoryAchievement `json:"categories"`
	TotalAchievement float64               `json:"total_achievement"`
	TotalTarget      float64               `json:"total_target"`
	Percentage       float64               `json:"percentage"`
	Visits           VisitCounts           `json:"visits"`
	OrderCount       int                   `json:"order_count"`
}

type OrderBookerAchievement struct {
	OBContact               string           `json:"ob_contact"`
	Name                    string           `json:"name"`
	Town                    string           `json:"town"`
	TSM                     string           `json:"tsm"`
	CategoryTotals          CategoryTotals   `json:"category_totals"`
	TotalAchievement        float64          `json:"total_achievement"`
	TotalTarget             float64          `json:"total_target"`
	Percentage              float64          `json:"percentage"`
	Visits                  VisitCounts      `json:"visits"`
	CategoryProductiveShops map[Category]int `json:"category_productive_shops"`
	OrderCount              int              `json:"order_count"`
}

type TSMAchievement struct {
	TSM              string         `json:"tsm"`
	OBCount          int            `json:"ob_count"`
	CategoryTotals   CategoryTotals `json:"category_totals"`
	TotalAchievement float64        `json:"total_achievement"`
	TotalTarget      float64        `json:"total_target"`
	Percentage       float64        `json:"percentage"`
}

type RouteAchievement struct {
	Route       string      `json:"route"`
	Achievement float64     `json:"achievement"`
	Visits      VisitCounts `json:"visits"`
	OrderCount  int         `json:"order_count"`
}

// Dashboard reúne as visões de hoje, do mês corrente e da janela pedida
type Dashboard struct {
	Date         string              `json:"date"`
	Today        *AchievementSummary `json:"today"`
	MonthToDate  *AchievementSummary `json:"month_to_date"`
	Selected     *AchievementSummary `json:"selected"`
	Filters      *ReportFilters      `json:"filters"`
	GeneratedAt  time.Time           `json:"generated_at"`
	WorkingDays  int                 `json:"working_days,omitempty"`
	OrderBookers int                 `json:"order_bookers"`
}
