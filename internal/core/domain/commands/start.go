package commands

import (
	"context"
	"time"

	"capbot/internal/core/domain"
	"capbot/internal/core/port"
)

const welcome = "✨ Advanced Caption Bot\n\n" +
	"Send text, an image, or a video. I'll generate 3 scroll-stopping captions!\n\n" +
	"Commands:\n" +
	"/platform <name> - Set target platform (e.g., /platform instagram)\n" +
	"/regenerate - Regenerate captions for your last input\n" +
	"/help - Show this message"

// Start replies with the usage text. Registered for both /start and /help.
type Start struct {
	sender  port.TextSender
	command string
}

func NewStart(sender port.TextSender, command string) *Start {
	return &Start{sender: sender, command: command}
}

func (h *Start) GetCommand() string {
	return h.command
}

func (h *Start) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	_, err := h.sender.SendMessageReply(ctx, message, welcome)
	return err
}
