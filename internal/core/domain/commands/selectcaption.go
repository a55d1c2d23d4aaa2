package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"capbot/internal/core/domain"
	"capbot/internal/core/port"

	"github.com/rs/zerolog/log"
)

// Select confirms one caption of the last generation result. The keyboard
// message is edited into the final output; the stored captions stay so the
// user can re-select.
type Select struct {
	sender   port.TextSender
	sessions port.SessionStore
	command  string
}

func NewSelect(sender port.TextSender, sessions port.SessionStore, command string) *Select {
	return &Select{sender: sender, sessions: sessions, command: command}
}

func (h *Select) GetCommand() string {
	return h.command
}

func (h *Select) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	l := log.With().
		Int("messageId", message.ID).
		Int64("chatId", message.ChatID).
		Int64("userId", message.UserID).
		Str("token", message.CallbackData).
		Logger()

	l.Info().Msg("handling selection")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	session := h.sessions.Get(message.UserID)
	session.Lock()
	defer session.Unlock()

	if len(session.LastCaptions) == 0 {
		l.Debug().Msg("no captions stored")
		return h.sender.EditMessageText(ctx, message, noCaptions)
	}

	idx, err := parseActionIndex(message.CallbackData)
	if err != nil || idx < 1 || idx > len(session.LastCaptions) {
		l.Debug().Err(err).Int("index", idx).Msg("selection out of range")
		return h.sender.EditMessageText(ctx, message, invalidSelection)
	}

	selected := session.LastCaptions[idx-1]

	return h.sender.EditMessageText(ctx, message,
		selectedCaption+"\n"+domain.FormatCaption(selected))
}

// parseActionIndex extracts the 1-based option index from a quick-action
// token such as "select_2".
func parseActionIndex(token string) (int, error) {
	parts := strings.SplitN(token, "_", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("no index in token %q", token)
	}

	return strconv.Atoi(parts[1])
}
