package mockcartola

import (
	"context"

	"github.com/omarshaarawi/cartolabot/internal/api/cartola"
	"github.com/omarshaarawi/cartolabot/internal/models"
	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

var _ cartola.API = (*Client)(nil)

func (c *Client) GetMarketStatus(ctx context.Context) (models.Payload, error) {
	args := c.Called(ctx)
	return payload(args.Get(0)), args.Error(1)
}

func (c *Client) GetMarketHighlights(ctx context.Context) ([]models.Payload, error) {
	args := c.Called(ctx)

	var res []models.Payload
	if args.Get(0) != nil {
		res = args.Get(0).([]models.Payload)
	}

	return res, args.Error(1)
}

func (c *Client) GetRounds(ctx context.Context, round int) ([]models.Round, error) {
	args := c.Called(ctx, round)

	var res []models.Round
	if args.Get(0) != nil {
		res = args.Get(0).([]models.Round)
	}

	return res, args.Error(1)
}

func (c *Client) GetRoundMatches(ctx context.Context, round int) (models.Payload, error) {
	args := c.Called(ctx, round)
	return payload(args.Get(0)), args.Error(1)
}

func (c *Client) GetRoundPartial(ctx context.Context) (models.Payload, error) {
	args := c.Called(ctx)
	return payload(args.Get(0)), args.Error(1)
}

func (c *Client) GetClubs(ctx context.Context) (models.Payload, error) {
	args := c.Called(ctx)
	return payload(args.Get(0)), args.Error(1)
}

func (c *Client) GetPlayerStatus(ctx context.Context) (models.Payload, error) {
	args := c.Called(ctx)
	return payload(args.Get(0)), args.Error(1)
}

func (c *Client) GetPlayers(ctx context.Context) (models.Payload, error) {
	args := c.Called(ctx)
	return payload(args.Get(0)), args.Error(1)
}

func (c *Client) PlayerTable(ctx context.Context) (*cartola.PlayerTable, error) {
	args := c.Called(ctx)

	var res *cartola.PlayerTable
	if args.Get(0) != nil {
		res = args.Get(0).(*cartola.PlayerTable)
	}

	return res, args.Error(1)
}

func (c *Client) TopExpensivePlayers(ctx context.Context, n int) ([]models.Player, error) {
	args := c.Called(ctx, n)

	var res []models.Player
	if args.Get(0) != nil {
		res = args.Get(0).([]models.Player)
	}

	return res, args.Error(1)
}

func (c *Client) SearchPlayers(ctx context.Context, name string) ([]models.Player, error) {
	args := c.Called(ctx, name)

	var res []models.Player
	if args.Get(0) != nil {
		res = args.Get(0).([]models.Player)
	}

	return res, args.Error(1)
}

func (c *Client) InvalidatePlayers() {
	c.Called()
}

func payload(v any) models.Payload {
	if v == nil {
		return nil
	}
	return v.(models.Payload)
}
