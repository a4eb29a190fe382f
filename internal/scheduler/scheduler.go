package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/omarshaarawi/cartolabot/internal/repository"
	"github.com/omarshaarawi/cartolabot/internal/service"
)

const jobTimeout = 30 * time.Second

type Scheduler struct {
	s              gocron.Scheduler
	cartolaService *service.CartolaService
	subscriptions  repository.Subscriptions
	sendMessage    func(chatID int64, text string) error
	playersTTL     time.Duration
}

func NewScheduler(
	cartolaService *service.CartolaService,
	subscriptions repository.Subscriptions,
	sendMessage func(chatID int64, text string) error,
	timezone string,
	playersTTL time.Duration,
) (*Scheduler, error) {
	location, err := time.LoadLocation(timezone)
	if err != nil {
		slog.Error("Failed to load location, using UTC", "timezone", timezone, "error", err)
		location = time.UTC
	}

	s, err := gocron.NewScheduler(
		gocron.WithLocation(location),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	if playersTTL <= 0 {
		playersTTL = time.Hour
	}

	return &Scheduler{
		s:              s,
		cartolaService: cartolaService,
		subscriptions:  subscriptions,
		sendMessage:    sendMessage,
		playersTTL:     playersTTL,
	}, nil
}

func (s *Scheduler) Start() error {
	var err error

	// Player prices change while the market is open
	_, err = s.s.NewJob(
		gocron.DurationJob(s.playersTTL),
		gocron.NewTask(s.cartolaService.RefreshPlayers),
	)
	if err != nil {
		return fmt.Errorf("failed to create refresh players job: %w", err)
	}

	// Market status - every day 9:00
	_, err = s.s.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(9, 0, 0))),
		gocron.NewTask(s.sendMarketStatus),
	)
	if err != nil {
		return fmt.Errorf("failed to create market status job: %w", err)
	}

	// Top players - Friday 10:00
	_, err = s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Friday), gocron.NewAtTimes(gocron.NewAtTime(10, 0, 0))),
		gocron.NewTask(s.sendTopPlayers),
	)
	if err != nil {
		return fmt.Errorf("failed to create top players job: %w", err)
	}

	// Next round matches - Saturday 12:00
	_, err = s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Saturday), gocron.NewAtTimes(gocron.NewAtTime(12, 0, 0))),
		gocron.NewTask(s.sendMatches),
	)
	if err != nil {
		return fmt.Errorf("failed to create matches job: %w", err)
	}

	// Partial scores - Sunday 21:00
	_, err = s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Sunday), gocron.NewAtTimes(gocron.NewAtTime(21, 0, 0))),
		gocron.NewTask(s.sendRoundPartial),
	)
	if err != nil {
		return fmt.Errorf("failed to create partial scores job: %w", err)
	}

	s.s.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) sendMarketStatus() {
	s.run("market status", s.cartolaService.GetMarketStatus)
}

func (s *Scheduler) sendTopPlayers() {
	s.run("top players", func(ctx context.Context) (string, error) {
		return s.cartolaService.GetTopPlayers(ctx, service.DefaultTopPlayers)
	})
}

func (s *Scheduler) sendMatches() {
	s.run("matches", func(ctx context.Context) (string, error) {
		return s.cartolaService.GetMatches(ctx, 0)
	})
}

func (s *Scheduler) sendRoundPartial() {
	s.run("partial scores", s.cartolaService.GetRoundPartial)
}

func (s *Scheduler) run(name string, report func(context.Context) (string, error)) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	text, err := report(ctx)
	if err != nil {
		slog.Error("Failed to build report", "report", name, "error", err)
		return
	}
	s.broadcast(ctx, text)
}

func (s *Scheduler) broadcast(ctx context.Context, text string) {
	chatIDs, err := s.subscriptions.ChatIDs(ctx)
	if err != nil {
		slog.Error("Failed to list subscriptions", "error", err)
		return
	}

	for _, chatID := range chatIDs {
		if err := s.sendMessage(chatID, text); err != nil {
			slog.Error("Failed to send broadcast", "chat_id", chatID, "error", err)
		}
	}
}
