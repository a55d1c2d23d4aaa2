package handler

import (
	"context"
	"strings"
	"time"

	"capbot/internal/core/domain"
	"capbot/internal/core/port"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
)

// Callback routes quick-action callback queries. Tokens are keyed into the
// registry by their prefix: select_2 → "select", regenerate → "regenerate".
type Callback struct {
	registry port.CommandRegistry
	timeout  time.Duration
}

func NewCallback(registry port.CommandRegistry, timeout time.Duration) *Callback {
	return &Callback{registry: registry, timeout: timeout}
}

func (h *Callback) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	query := update.CallbackQuery
	if query == nil {
		return
	}

	if _, err := b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: query.ID,
	}); err != nil {
		log.Warn().Err(err).Msg("failed to answer callback query")
	}

	msg := query.Message.Message
	if msg == nil {
		log.Debug().Str("token", query.Data).Msg("callback query without accessible message")
		return
	}

	h.Dispatch(&domain.Message{
		ID:           msg.ID,
		ChatID:       msg.Chat.ID,
		UserID:       query.From.ID,
		Username:     getUserNameFromMessage(&query.From),
		CallbackData: query.Data,
	})
}

// Dispatch resolves the handler for a quick-action token and fires it.
func (h *Callback) Dispatch(m *domain.Message) {
	key := strings.SplitN(m.CallbackData, "_", 2)[0]

	commandHandler, err := h.registry.Get(key)
	if err != nil {
		log.Debug().Str("token", m.CallbackData).Msg("no handler for quick-action")
		return
	}

	go func() {
		if err := commandHandler.Respond(context.Background(), h.timeout, m); err != nil {
			log.Err(err).Str("token", m.CallbackData).Msg("failed to respond to quick-action")
		}
	}()
}
