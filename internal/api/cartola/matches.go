package cartola

import (
	"context"
	"fmt"

	"github.com/omarshaarawi/cartolabot/internal/models"
)

// GetRoundMatches returns the matches of the given round, or of the next
// round when round is zero. Round numbers are passed through unchecked.
func (c *Client) GetRoundMatches(ctx context.Context, round int) (models.Payload, error) {
	endpoint := c.endpoints.URL(ResourceMatches)
	if round != 0 {
		endpoint = c.endpoints.MatchesForRound(round)
	}

	var matches models.Payload
	if err := c.FetchJSON(ctx, endpoint, &matches); err != nil {
		return nil, fmt.Errorf("fetching matches: %w", err)
	}
	return matches, nil
}
