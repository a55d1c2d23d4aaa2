package commands

import (
	"context"
	"time"

	"capbot/internal/core/domain"
	"capbot/internal/core/port"
	"capbot/internal/core/service"

	"github.com/rs/zerolog/log"
)

// Edit marks one caption of the last generation result as being edited and
// prompts the user for a free-form reply. The reply itself is consumed by
// the Submission handler.
type Edit struct {
	sender   port.TextSender
	sessions port.SessionStore
	command  string
}

func NewEdit(sender port.TextSender, sessions port.SessionStore, command string) *Edit {
	return &Edit{sender: sender, sessions: sessions, command: command}
}

func (h *Edit) GetCommand() string {
	return h.command
}

func (h *Edit) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	l := log.With().
		Int("messageId", message.ID).
		Int64("chatId", message.ChatID).
		Int64("userId", message.UserID).
		Str("token", message.CallbackData).
		Logger()

	l.Info().Msg("handling edit request")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	idx, err := parseActionIndex(message.CallbackData)
	if err != nil || idx < 1 || idx > service.CaptionCount {
		l.Debug().Err(err).Int("index", idx).Msg("edit index out of range")
		return h.sender.EditMessageText(ctx, message, invalidSelection)
	}

	session := h.sessions.Get(message.UserID)
	session.Lock()
	defer session.Unlock()

	session.EditingIndex = idx - 1

	return h.sender.EditMessageText(ctx, message, editPrompt)
}
