package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/omarshaarawi/cartolabot/internal/api/cartola"
	"github.com/omarshaarawi/cartolabot/internal/models"
)

const (
	DefaultTopPlayers = 5
	maxSearchResults  = 5
	maxPartialScores  = 10
)

type CartolaService struct {
	api cartola.API
}

func NewCartolaService(api cartola.API) *CartolaService {
	return &CartolaService{api: api}
}

func (s *CartolaService) GetMarketStatus(ctx context.Context) (string, error) {
	payload, err := s.api.GetMarketStatus(ctx)
	if err != nil {
		return "", fmt.Errorf("error fetching market status: %w", err)
	}
	status := models.MarketStatusFrom(payload)

	var sb strings.Builder
	sb.WriteString("🏟️ *Mercado Cartola*\n\n")
	sb.WriteString(fmt.Sprintf("Rodada atual: %d\n", status.CurrentRound))
	sb.WriteString(fmt.Sprintf("Status: %s\n", status.StatusLabel()))
	if status.Closing != nil && status.StatusCode == models.MarketOpen {
		c := status.Closing
		sb.WriteString(fmt.Sprintf("Fecha em: %02d/%02d/%d às %02d:%02d\n", c.Day, c.Month, c.Year, c.Hour, c.Minute))
	}
	if status.TeamsCount > 0 {
		sb.WriteString(fmt.Sprintf("Times escalados: %d\n", status.TeamsCount))
	}

	return sb.String(), nil
}

// GetRounds renders one round, or the whole calendar when round is 0 or out
// of range.
func (s *CartolaService) GetRounds(ctx context.Context, round int) (string, error) {
	rounds, err := s.api.GetRounds(ctx, round)
	if err != nil {
		return "", fmt.Errorf("error fetching rounds: %w", err)
	}

	var sb strings.Builder
	if len(rounds) == 1 {
		r := rounds[0]
		sb.WriteString(fmt.Sprintf("📅 *Rodada %d*\n\n", r.ID()))
		sb.WriteString(fmt.Sprintf("Início: %s\nFim: %s\n", r.Start(), r.End()))
		return sb.String(), nil
	}

	sb.WriteString("📅 *Rodadas*\n\n")
	for _, r := range rounds {
		sb.WriteString(fmt.Sprintf("%d. %s → %s\n", r.ID(), r.Start(), r.End()))
	}

	return sb.String(), nil
}

func (s *CartolaService) GetMatches(ctx context.Context, round int) (string, error) {
	payload, err := s.api.GetRoundMatches(ctx, round)
	if err != nil {
		return "", fmt.Errorf("error fetching matches: %w", err)
	}

	matches := models.MatchSummariesFrom(payload)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("⚽ *Partidas da rodada %d*\n\n", payload.Int("rodada")))

	if len(matches) == 0 {
		sb.WriteString("Nenhuma partida encontrada.")
		return sb.String(), nil
	}

	for _, m := range matches {
		if m.HomeScore != nil && m.AwayScore != nil {
			sb.WriteString(fmt.Sprintf("*%s* %d x %d *%s*\n", m.HomeClub, *m.HomeScore, *m.AwayScore, m.AwayClub))
		} else {
			sb.WriteString(fmt.Sprintf("*%s* x *%s*\n", m.HomeClub, m.AwayClub))
		}
		if m.Date != "" || m.Venue != "" {
			sb.WriteString(fmt.Sprintf("   %s - %s\n", m.Date, m.Venue))
		}
	}

	return sb.String(), nil
}

// GetTopPlayers lists the n most expensive players, most expensive first.
func (s *CartolaService) GetTopPlayers(ctx context.Context, n int) (string, error) {
	players, err := s.api.TopExpensivePlayers(ctx, n)
	if err != nil {
		return "", fmt.Errorf("error fetching top players: %w", err)
	}

	table, err := s.api.PlayerTable(ctx)
	if err != nil {
		return "", fmt.Errorf("error fetching player table: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("💰 *Top %d jogadores mais caros*\n\n", len(players)))

	rank := 1
	for i := len(players) - 1; i >= 0; i-- {
		p := players[i]
		sb.WriteString(fmt.Sprintf("%d. *%s* (%s - %s) C$ %.2f\n",
			rank,
			p.Nickname(),
			table.PositionName(p.PositionID()),
			table.ClubAbbreviation(p.ClubID()),
			p.Price()))
		rank++
	}

	return sb.String(), nil
}

func (s *CartolaService) FindPlayer(ctx context.Context, name string) (string, error) {
	players, err := s.api.SearchPlayers(ctx, name)
	if err != nil {
		return "", fmt.Errorf("error searching players: %w", err)
	}

	if len(players) == 0 {
		return fmt.Sprintf("🔍 Nenhum jogador encontrado para '%s'.", name), nil
	}

	table, err := s.api.PlayerTable(ctx)
	if err != nil {
		return "", fmt.Errorf("error fetching player table: %w", err)
	}

	best := players[0]
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("*%s* (%s - %s)\n",
		best.Nickname(),
		table.PositionName(best.PositionID()),
		table.ClubAbbreviation(best.ClubID())))
	sb.WriteString("━━━━━━━━━━━━━━━━\n")
	sb.WriteString(fmt.Sprintf("Preço: C$ %.2f\n", best.Price()))
	sb.WriteString(fmt.Sprintf("Média: %.2f pts\n", best.Average()))

	if len(players) > 1 {
		sb.WriteString("\nOutros resultados:\n")
		for i, p := range players[1:] {
			if i >= maxSearchResults-1 {
				break
			}
			sb.WriteString(fmt.Sprintf("  • %s (%s) C$ %.2f\n", p.Nickname(), table.ClubAbbreviation(p.ClubID()), p.Price()))
		}
	}

	return sb.String(), nil
}

func (s *CartolaService) GetRoundPartial(ctx context.Context) (string, error) {
	payload, err := s.api.GetRoundPartial(ctx)
	if err != nil {
		return "", fmt.Errorf("error fetching partial scores: %w", err)
	}

	scores := partialScores(payload)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📊 *Parciais da rodada %d*\n\n", payload.Int("rodada")))

	if len(scores) == 0 {
		sb.WriteString("Nenhuma pontuação disponível no momento.")
		return sb.String(), nil
	}

	for i, score := range scores {
		if i >= maxPartialScores {
			break
		}
		sb.WriteString(fmt.Sprintf("%d. %s (%s) %.2f pts\n", i+1, score.Nickname, score.Club, score.Points))
	}

	return sb.String(), nil
}

// partialScores flattens the atletas object of atletas/pontuados, highest
// score first.
func partialScores(payload models.Payload) []models.PartialScore {
	clubs := payload.Map("clubes")
	athletes := payload.Map("atletas")

	scores := make([]models.PartialScore, 0, len(athletes))
	for _, v := range athletes {
		m, ok := v.(map[string]any)
		if !ok {
			continue
		}
		a := models.Payload(m)
		scores = append(scores, models.PartialScore{
			Nickname: a.String("apelido"),
			Club:     models.ClubAbbreviation(clubs, a.Int("clube_id")),
			Points:   a.Float("pontuacao"),
		})
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Points != scores[j].Points {
			return scores[i].Points > scores[j].Points
		}
		return scores[i].Nickname < scores[j].Nickname
	})

	return scores
}

func (s *CartolaService) GetHighlights(ctx context.Context) (string, error) {
	highlights, err := s.api.GetMarketHighlights(ctx)
	if err != nil {
		return "", fmt.Errorf("error fetching market highlights: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("⭐ *Mais escalados*\n\n")

	if len(highlights) == 0 {
		sb.WriteString("Nenhum destaque disponível.")
		return sb.String(), nil
	}

	for i, h := range highlights {
		sb.WriteString(fmt.Sprintf("%d. *%s* (%s - %s) %d escalações\n",
			i+1,
			h.Map("Atleta").String("apelido"),
			h.String("posicao"),
			h.String("clube_nome"),
			h.Int("escalacoes")))
	}

	return sb.String(), nil
}

// RefreshPlayers drops the cached player table so prices are refetched on
// the next lookup.
func (s *CartolaService) RefreshPlayers() {
	s.api.InvalidatePlayers()
	slog.Info("Player table invalidated")
}
