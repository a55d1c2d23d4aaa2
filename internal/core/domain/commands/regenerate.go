package commands

import (
	"context"
	"time"

	"capbot/internal/core/domain"
	"capbot/internal/core/port"
	"capbot/internal/core/service"

	"github.com/rs/zerolog/log"
)

// Regenerate re-runs generation on the last stored submission. It backs both
// the /regenerate command and the "Regenerate All" quick-action.
type Regenerate struct {
	generator port.CaptionGenerator
	sender    port.TextSender
	sessions  port.SessionStore
	limiter   service.Limiter
	command   string
}

func NewRegenerate(generator port.CaptionGenerator,
	sender port.TextSender,
	sessions port.SessionStore,
	limiter service.Limiter,
	command string) *Regenerate {
	return &Regenerate{generator: generator,
		sender:   sender,
		sessions: sessions,
		limiter:  limiter,
		command:  command}
}

func (h *Regenerate) GetCommand() string {
	return h.command
}

func (h *Regenerate) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	l := log.With().
		Int("messageId", message.ID).
		Int64("chatId", message.ChatID).
		Int64("userId", message.UserID).
		Str("command", h.GetCommand()).
		Logger()

	l.Info().Msg("handling request")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	session := h.sessions.Get(message.UserID)
	session.Lock()
	defer session.Unlock()

	if !h.limiter.Admit(session) {
		l.Debug().Msg("rate limited")
		_, err := h.sender.SendMessageReply(ctx, message, rateLimited)
		return err
	}

	if len(session.LastContent) == 0 {
		l.Debug().Msg("no previous input stored")
		_, err := h.sender.SendMessageReply(ctx, message, noPriorInput)
		return err
	}

	go h.sender.SendChatAction(ctx, message.ChatID, domain.Typing)

	if _, err := h.sender.SendMessageReply(ctx, message, regenerating); err != nil {
		l.Warn().Err(err).Msg("failed to send progress reply")
	}

	captions := h.generator.Generate(ctx, session.LastContent, session.Platform)
	session.LastCaptions = captions
	session.EditingIndex = domain.NoEditing

	l.Debug().Msg("captions regenerated")

	return replyWithCaptions(ctx, h.sender, message, session.Platform, captions)
}
