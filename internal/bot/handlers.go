package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/omarshaarawi/cartolabot/internal/repository"
	"github.com/omarshaarawi/cartolabot/internal/service"
)

const helpText = "Comandos disponíveis:\n" +
	"/status - Status do mercado\n" +
	"/rodada [n] - Calendário ou uma rodada\n" +
	"/partidas [n] - Partidas da próxima rodada ou da rodada n\n" +
	"/top [n] - Jogadores mais caros (padrão 5)\n" +
	"/jogador <nome> - Buscar um jogador\n" +
	"/parciais - Parciais da rodada\n" +
	"/destaques - Mais escalados\n" +
	"/assinar - Receber os relatórios agendados\n" +
	"/cancelar - Parar de receber os relatórios"

type Handler struct {
	cartolaService *service.CartolaService
	subscriptions  repository.Subscriptions
}

func NewHandler(cartolaService *service.CartolaService, subscriptions repository.Subscriptions) *Handler {
	return &Handler{cartolaService: cartolaService, subscriptions: subscriptions}
}

func (h *Handler) HandleCommand(ctx context.Context, update tgbotapi.Update) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")
	command := strings.ToLower(update.Message.Command())
	args := strings.TrimSpace(update.Message.CommandArguments())
	msg.ParseMode = tgbotapi.ModeMarkdown

	switch command {
	case "start":
		msg.Text = "Bem-vindo ao CartolaBot! Use /help para ver os comandos."
	case "help":
		msg.Text = helpText
	case "status":
		h.reply(&msg, "Erro ao buscar o status do mercado", func() (string, error) {
			return h.cartolaService.GetMarketStatus(ctx)
		})
	case "rodada":
		h.handleNumbered(ctx, &msg, args, "/rodada [n]", "Erro ao buscar as rodadas", h.cartolaService.GetRounds)
	case "partidas":
		h.handleNumbered(ctx, &msg, args, "/partidas [n]", "Erro ao buscar as partidas", h.cartolaService.GetMatches)
	case "top":
		h.handleTop(ctx, &msg, args)
	case "jogador":
		h.handlePlayer(ctx, &msg, args)
	case "parciais":
		h.reply(&msg, "Erro ao buscar as parciais", func() (string, error) {
			return h.cartolaService.GetRoundPartial(ctx)
		})
	case "destaques":
		h.reply(&msg, "Erro ao buscar os destaques", func() (string, error) {
			return h.cartolaService.GetHighlights(ctx)
		})
	case "assinar":
		h.handleSubscribe(ctx, &msg)
	case "cancelar":
		h.handleUnsubscribe(ctx, &msg)
	default:
		msg.Text = "Comando desconhecido. Use /help para ver os comandos."
	}

	return msg
}

func (h *Handler) reply(msg *tgbotapi.MessageConfig, errPrefix string, fn func() (string, error)) {
	text, err := fn()
	if err != nil {
		slog.Error(errPrefix, "error", err)
		msg.Text = fmt.Sprintf("%s: %v", errPrefix, err)
		msg.ParseMode = ""
		return
	}
	msg.Text = text
}

// handleNumbered runs a report that takes an optional round number. No
// argument means round 0.
func (h *Handler) handleNumbered(ctx context.Context, msg *tgbotapi.MessageConfig, args, usage, errPrefix string, report func(context.Context, int) (string, error)) {
	round := 0
	if args != "" {
		n, err := strconv.Atoi(args)
		if err != nil {
			msg.Text = fmt.Sprintf("Número de rodada inválido. Uso: %s", usage)
			return
		}
		round = n
	}

	h.reply(msg, errPrefix, func() (string, error) {
		return report(ctx, round)
	})
}

func (h *Handler) handleTop(ctx context.Context, msg *tgbotapi.MessageConfig, args string) {
	n := service.DefaultTopPlayers
	if args != "" {
		parsed, err := strconv.Atoi(args)
		if err != nil || parsed <= 0 {
			msg.Text = "Informe um número positivo. Uso: /top [n]"
			return
		}
		n = parsed
	}

	h.reply(msg, "Erro ao buscar os jogadores", func() (string, error) {
		return h.cartolaService.GetTopPlayers(ctx, n)
	})
}

func (h *Handler) handlePlayer(ctx context.Context, msg *tgbotapi.MessageConfig, args string) {
	if args == "" {
		msg.Text = "Informe o nome do jogador. Uso: /jogador <nome>"
		return
	}

	h.reply(msg, "Erro ao buscar o jogador", func() (string, error) {
		return h.cartolaService.FindPlayer(ctx, args)
	})
}

func (h *Handler) handleSubscribe(ctx context.Context, msg *tgbotapi.MessageConfig) {
	if err := h.subscriptions.Subscribe(ctx, msg.ChatID); err != nil {
		slog.Error("Error subscribing chat", "chat_id", msg.ChatID, "error", err)
		msg.Text = "Não foi possível assinar os relatórios. Tente novamente."
		return
	}
	msg.Text = "✅ Chat inscrito nos relatórios agendados."
}

func (h *Handler) handleUnsubscribe(ctx context.Context, msg *tgbotapi.MessageConfig) {
	if err := h.subscriptions.Unsubscribe(ctx, msg.ChatID); err != nil {
		slog.Error("Error unsubscribing chat", "chat_id", msg.ChatID, "error", err)
		msg.Text = "Não foi possível cancelar a inscrição. Tente novamente."
		return
	}
	msg.Text = "Inscrição cancelada."
}
