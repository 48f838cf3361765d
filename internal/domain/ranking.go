package domain

import "time"

type OBRankingResponse struct {
	Month      string          `json:"month"`
	Ranking    []OBRankingItem `json:"ranking"`
	LastUpdate time.Time       `json:"last_update"`
}

// OBRankingItem é a posição mensal de um order booker pela realização acumulada no mês
type OBRankingItem struct {
	ID               int64     `json:"id"`
	OBContact        string    `json:"ob_contact"`
	Month            string    `json:"month"` // Formato mm-yyyy (ex: 01-2024)
	Name             string    `json:"name"`
	TSM              string    `json:"tsm"`
	Achievement      float64   `json:"achievement"`
	Target           float64   `json:"target"`
	Percentage       float64   `json:"percentage"`
	Position         int       `json:"position"`
	PositionChange   int       `json:"position_change"` // Valor positivo = subiu, negativo = desceu, 0 = manteve
	PreviousPosition int       `json:"previous_position"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
