package models

import "strconv"

// Market status codes as reported by mercado/status.
const (
	MarketOpen        = 1
	MarketClosed      = 2
	MarketUpdating    = 3
	MarketMaintenance = 4
	MarketEndOfSeason = 6
)

type MarketStatus struct {
	CurrentRound int
	StatusCode   int
	Season       int
	TeamsCount   int
	Closing      *MarketClosing
}

type MarketClosing struct {
	Day    int
	Month  int
	Year   int
	Hour   int
	Minute int
}

func MarketStatusFrom(p Payload) MarketStatus {
	status := MarketStatus{
		CurrentRound: p.Int("rodada_atual"),
		StatusCode:   p.Int("status_mercado"),
		Season:       p.Int("temporada"),
		TeamsCount:   p.Int("times_escalados"),
	}

	if f := p.Map("fechamento"); f != nil {
		status.Closing = &MarketClosing{
			Day:    f.Int("dia"),
			Month:  f.Int("mes"),
			Year:   f.Int("ano"),
			Hour:   f.Int("hora"),
			Minute: f.Int("minuto"),
		}
	}

	return status
}

func (s MarketStatus) StatusLabel() string {
	switch s.StatusCode {
	case MarketOpen:
		return "Aberto"
	case MarketClosed:
		return "Fechado"
	case MarketUpdating:
		return "Em atualização"
	case MarketMaintenance:
		return "Em manutenção"
	case MarketEndOfSeason:
		return "Fim de temporada"
	default:
		return "Desconhecido"
	}
}

type MatchSummary struct {
	HomeClub  string
	AwayClub  string
	HomeScore *int
	AwayScore *int
	Venue     string
	Date      string
}

// PartialScore is one player's in-progress score for the current round.
type PartialScore struct {
	Nickname string
	Club     string
	Points   float64
}

func MatchSummariesFrom(p Payload) []MatchSummary {
	clubs := p.Map("clubes")
	var matches []MatchSummary

	for _, item := range p.List("partidas") {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		match := Payload(m)
		summary := MatchSummary{
			HomeClub: ClubAbbreviation(clubs, match.Int("clube_casa_id")),
			AwayClub: ClubAbbreviation(clubs, match.Int("clube_visitante_id")),
			Venue:    match.String("local"),
			Date:     match.String("partida_data"),
		}
		if v, ok := match["placar_oficial_mandante"].(float64); ok {
			home := int(v)
			summary.HomeScore = &home
		}
		if v, ok := match["placar_oficial_visitante"].(float64); ok {
			away := int(v)
			summary.AwayScore = &away
		}
		matches = append(matches, summary)
	}

	return matches
}

// ClubAbbreviation resolves a club id against a clubes lookup object, which
// upstream keys by the stringified id.
func ClubAbbreviation(clubs Payload, id int) string {
	if club := clubs.Map(strconv.Itoa(id)); club != nil {
		return club.String("abreviacao")
	}
	for _, v := range clubs {
		m, ok := v.(map[string]any)
		if !ok {
			continue
		}
		club := Payload(m)
		if club.Int("id") == id {
			return club.String("abreviacao")
		}
	}
	return "?"
}
