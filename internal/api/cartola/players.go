package cartola

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/omarshaarawi/cartolabot/internal/models"
)

// GetPlayers returns the raw atletas/mercado payload. It is never cached.
func (c *Client) GetPlayers(ctx context.Context) (models.Payload, error) {
	return c.getPayload(ctx, ResourcePlayers, "players")
}

// PlayerTable is a snapshot of the player market in fetch order.
type PlayerTable struct {
	rows      []models.Player
	clubs     models.Payload
	positions models.Payload
}

// NewPlayerTable builds a table from an atletas/mercado payload.
func NewPlayerTable(market models.Payload) *PlayerTable {
	return &PlayerTable{
		rows:      models.PlayersFromList(market.List("atletas")),
		clubs:     market.Map("clubes"),
		positions: market.Map("posicoes"),
	}
}

func (t *PlayerTable) Len() int {
	return len(t.rows)
}

func (t *PlayerTable) Rows() []models.Player {
	rows := make([]models.Player, len(t.rows))
	copy(rows, t.rows)
	return rows
}

// SortedByPrice returns the rows in ascending preco_num order. Ties keep
// fetch order.
func (t *PlayerTable) SortedByPrice() []models.Player {
	rows := t.Rows()
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Price() < rows[j].Price()
	})
	return rows
}

func (t *PlayerTable) ClubAbbreviation(clubID int) string {
	return models.ClubAbbreviation(t.clubs, clubID)
}

func (t *PlayerTable) PositionName(positionID int) string {
	if pos := t.positions.Map(strconv.Itoa(positionID)); pos != nil {
		return strings.ToUpper(pos.String("abreviacao"))
	}
	return "?"
}

// PlayerTable returns the cached player table, fetching it on first use.
// Concurrent first callers share a single fetch. A failed fetch leaves the
// cache empty.
func (c *Client) PlayerTable(ctx context.Context) (*PlayerTable, error) {
	c.playersMu.Lock()
	defer c.playersMu.Unlock()

	if c.players != nil {
		return c.players, nil
	}

	market, err := c.GetPlayers(ctx)
	if err != nil {
		return nil, err
	}

	c.players = NewPlayerTable(market)
	c.logger.Info("Player table loaded", "players", c.players.Len())
	return c.players, nil
}

// InvalidatePlayers drops the cached player table so the next tabular call
// sees current prices.
func (c *Client) InvalidatePlayers() {
	c.playersMu.Lock()
	defer c.playersMu.Unlock()
	c.players = nil
}

// TopExpensivePlayers sorts the table ascending by price and returns its
// last n rows, so the most expensive player comes last. A negative n drops
// the first -n rows instead.
func (c *Client) TopExpensivePlayers(ctx context.Context, n int) ([]models.Player, error) {
	table, err := c.PlayerTable(ctx)
	if err != nil {
		return nil, err
	}
	return tail(table.SortedByPrice(), n), nil
}

func tail(rows []models.Player, n int) []models.Player {
	switch {
	case n == 0:
		return []models.Player{}
	case n < 0:
		if -n >= len(rows) {
			return []models.Player{}
		}
		return rows[-n:]
	case n >= len(rows):
		return rows
	default:
		return rows[len(rows)-n:]
	}
}

// SearchPlayers fuzzy-matches name against player nicknames, ignoring case
// and accents. Closest matches come first.
func (c *Client) SearchPlayers(ctx context.Context, name string) ([]models.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: empty player name", ErrInvalidArgument)
	}

	table, err := c.PlayerTable(ctx)
	if err != nil {
		return nil, err
	}

	nicknames := make([]string, len(table.rows))
	for i, p := range table.rows {
		nicknames[i] = p.Nickname()
	}

	ranks := fuzzy.RankFindNormalizedFold(name, nicknames)
	sort.Stable(ranks)

	found := make([]models.Player, 0, len(ranks))
	for _, r := range ranks {
		found = append(found, table.rows[r.OriginalIndex])
	}
	return found, nil
}
