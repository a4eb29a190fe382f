package cartola

import (
	"context"
	"fmt"

	"github.com/omarshaarawi/cartolabot/internal/models"
)

func (c *Client) GetMarketStatus(ctx context.Context) (models.Payload, error) {
	return c.getPayload(ctx, ResourceMarketStatus, "market status")
}

func (c *Client) GetMarketHighlights(ctx context.Context) ([]models.Payload, error) {
	var highlights []models.Payload
	if err := c.FetchJSON(ctx, c.endpoints.URL(ResourceMarketHighlights), &highlights); err != nil {
		return nil, fmt.Errorf("fetching market highlights: %w", err)
	}
	return highlights, nil
}

func (c *Client) GetClubs(ctx context.Context) (models.Payload, error) {
	return c.getPayload(ctx, ResourceClubs, "clubs")
}

func (c *Client) GetPlayerStatus(ctx context.Context) (models.Payload, error) {
	return c.getPayload(ctx, ResourcePlayerStatus, "player status")
}

// GetRoundPartial returns the in-progress scores of the current round.
func (c *Client) GetRoundPartial(ctx context.Context) (models.Payload, error) {
	return c.getPayload(ctx, ResourceRoundPartial, "round partial")
}

func (c *Client) getPayload(ctx context.Context, r Resource, what string) (models.Payload, error) {
	var p models.Payload
	if err := c.FetchJSON(ctx, c.endpoints.URL(r), &p); err != nil {
		return nil, fmt.Errorf("fetching %s: %w", what, err)
	}
	return p, nil
}
