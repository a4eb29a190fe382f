package models

import (
	"encoding/json"
	"testing"
)

func TestMarketStatusFrom(t *testing.T) {
	var p Payload
	raw := `{"rodada_atual": 3, "status_mercado": 1, "temporada": 2024, "times_escalados": 1000,
		"fechamento": {"dia": 20, "mes": 4, "ano": 2024, "hora": 14, "minuto": 5}}`
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("error parsing status: %v", err)
	}

	status := MarketStatusFrom(p)
	if status.CurrentRound != 3 || status.Season != 2024 || status.TeamsCount != 1000 {
		t.Errorf("unexpected status: %+v", status)
	}
	if status.StatusLabel() != "Aberto" {
		t.Errorf("expected Aberto, got %s", status.StatusLabel())
	}
	if status.Closing == nil {
		t.Fatalf("closing should have been set")
	}
	if *status.Closing != (MarketClosing{Day: 20, Month: 4, Year: 2024, Hour: 14, Minute: 5}) {
		t.Errorf("unexpected closing: %+v", *status.Closing)
	}
}

func TestMarketStatusLabel(t *testing.T) {
	tests := map[int]string{
		MarketOpen:        "Aberto",
		MarketClosed:      "Fechado",
		MarketUpdating:    "Em atualização",
		MarketMaintenance: "Em manutenção",
		MarketEndOfSeason: "Fim de temporada",
		99:                "Desconhecido",
	}

	for code, want := range tests {
		if got := (MarketStatus{StatusCode: code}).StatusLabel(); got != want {
			t.Errorf("status %d: expected %s, got %s", code, want, got)
		}
	}
}

func TestMatchSummariesFrom(t *testing.T) {
	var p Payload
	raw := `{"partidas": [
		{"clube_casa_id": 262, "clube_visitante_id": 275, "local": "Maracanã", "partida_data": "2024-04-20 16:00:00",
		 "placar_oficial_mandante": 2, "placar_oficial_visitante": 0},
		{"clube_casa_id": 275, "clube_visitante_id": 999, "placar_oficial_mandante": null}
	], "clubes": {"262": {"id": 262, "abreviacao": "FLA"}, "275": {"id": 275, "abreviacao": "PAL"}}}`
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("error parsing matches: %v", err)
	}

	matches := MatchSummariesFrom(p)
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}

	first := matches[0]
	if first.HomeClub != "FLA" || first.AwayClub != "PAL" || first.Venue != "Maracanã" {
		t.Errorf("unexpected first match: %+v", first)
	}
	if first.HomeScore == nil || *first.HomeScore != 2 || first.AwayScore == nil || *first.AwayScore != 0 {
		t.Errorf("unexpected score for first match")
	}

	second := matches[1]
	if second.AwayClub != "?" {
		t.Errorf("unknown club should be ?, got %s", second.AwayClub)
	}
	if second.HomeScore != nil || second.AwayScore != nil {
		t.Errorf("unplayed match should have no score")
	}
}
