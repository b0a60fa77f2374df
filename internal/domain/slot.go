package domain

import "strings"

const (
	StatusHot    = "hot"
	StatusActive = "active"
	StatusCold   = "cold"
)

// KnownCategories is the set of categories offered by the admin form. The store accepts any value.
var KnownCategories = []string{"Fortune", "Mahjong", "Temático", "Clássico", "Jackpot"}

type Slot struct {
	ID          uint   `json:"id"`
	Nome        string `json:"nome"`
	Categoria   string `json:"categoria"`
	Imagem      string `json:"imagem"`
	Porcentagem int    `json:"porcentagem"`
	Jogadores   int    `json:"jogadores"`
	Ativo       bool   `json:"ativo"`
}

// Status classifies a slot by its payout percentage.
func (s Slot) Status() string {
	switch {
	case s.Porcentagem > 85:
		return StatusHot
	case s.Porcentagem > 70:
		return StatusActive
	default:
		return StatusCold
	}
}

// SlotPatch holds the fields of a partial update. Nil fields are left untouched.
type SlotPatch struct {
	Nome        *string
	Categoria   *string
	Imagem      *string
	Porcentagem *int
	Jogadores   *int
	Ativo       *bool
}

type SlotFilter struct {
	Search    string
	Categoria string
	Status    string
}

func (f SlotFilter) Match(s Slot) bool {
	if f.Search != "" && !strings.Contains(strings.ToLower(s.Nome), strings.ToLower(f.Search)) {
		return false
	}
	if f.Categoria != "" && !strings.EqualFold(f.Categoria, "todos") && !strings.EqualFold(f.Categoria, s.Categoria) {
		return false
	}
	if f.Status != "" && !strings.EqualFold(f.Status, s.Status()) {
		return false
	}

	return true
}

type SlotStats struct {
	TotalSlots   int     `json:"total_slots"`
	TotalPlayers int     `json:"total_players"`
	AverageRTP   float64 `json:"average_rtp"`
	HotSlots     int     `json:"hot_slots"`
}
