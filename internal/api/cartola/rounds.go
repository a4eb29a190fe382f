package cartola

import (
	"context"
	"fmt"

	"github.com/omarshaarawi/cartolabot/internal/models"
)

// GetRounds fetches every round of the season. A positive round number
// narrows the result to that single round (1-indexed). Zero means "all
// rounds". Negative or too-large numbers are not errors: a warning is
// logged and the full list is returned.
func (c *Client) GetRounds(ctx context.Context, round int) ([]models.Round, error) {
	var rounds []models.Round
	if err := c.FetchJSON(ctx, c.endpoints.URL(ResourceRounds), &rounds); err != nil {
		return nil, fmt.Errorf("fetching rounds: %w", err)
	}

	switch {
	case round == 0:
		return rounds, nil
	case round > len(rounds):
		c.logger.Warn("Round out of range, returning all rounds", "round", round, "total", len(rounds))
		return rounds, nil
	case round < 0:
		c.logger.Warn("Negative round number, returning all rounds", "round", round)
		return rounds, nil
	}

	return []models.Round{rounds[round-1]}, nil
}
