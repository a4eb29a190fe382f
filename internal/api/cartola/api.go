package cartola

import (
	"context"

	"github.com/omarshaarawi/cartolabot/internal/models"
)

// API is the set of Cartola accessors the rest of the bot depends on.
type API interface {
	GetMarketStatus(ctx context.Context) (models.Payload, error)
	GetMarketHighlights(ctx context.Context) ([]models.Payload, error)
	GetRounds(ctx context.Context, round int) ([]models.Round, error)
	GetRoundMatches(ctx context.Context, round int) (models.Payload, error)
	GetRoundPartial(ctx context.Context) (models.Payload, error)
	GetClubs(ctx context.Context) (models.Payload, error)
	GetPlayerStatus(ctx context.Context) (models.Payload, error)
	GetPlayers(ctx context.Context) (models.Payload, error)
	PlayerTable(ctx context.Context) (*PlayerTable, error)
	TopExpensivePlayers(ctx context.Context, n int) ([]models.Player, error)
	SearchPlayers(ctx context.Context, name string) ([]models.Player, error)
	InvalidatePlayers()
}

var _ API = (*Client)(nil)
