package commands

import (
	"context"
	"strings"
	"time"

	"capbot/internal/core/domain"
	"capbot/internal/core/port"

	"github.com/rs/zerolog/log"
)

// Platform sets the target platform for subsequent generations. The value
// persists in the session until changed; unknown names fall back to the
// default prompt clause at generation time.
type Platform struct {
	sender   port.TextSender
	sessions port.SessionStore
	command  string
}

func NewPlatform(sender port.TextSender, sessions port.SessionStore, command string) *Platform {
	return &Platform{sender: sender, sessions: sessions, command: command}
}

func (h *Platform) GetCommand() string {
	return h.command
}

func (h *Platform) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	l := log.With().
		Int("messageId", message.ID).
		Int64("chatId", message.ChatID).
		Int64("userId", message.UserID).
		Str("command", h.GetCommand()).
		Logger()

	l.Info().Msg("handling request")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	platform := strings.ToLower(strings.TrimSpace(domain.ParseCommandArgs(message.Text)))
	if platform == "" {
		_, err := h.sender.SendMessageReply(ctx, message, platformUsage)
		return err
	}

	session := h.sessions.Get(message.UserID)
	session.Lock()
	session.Platform = platform
	session.Unlock()

	l.Debug().Str("platform", platform).Msg("platform updated")

	_, err := h.sender.SendMessageReply(ctx, message,
		platformConfirmed+domain.CapitalizePlatform(platform))
	return err
}
