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

// Message routes inbound updates: slash commands go through the registry,
// everything else falls through to the submission handler.
type Message struct {
	registry    port.CommandRegistry
	submissions port.Command
	timeout     time.Duration
}

func NewMessage(registry port.CommandRegistry, submissions port.Command, timeout time.Duration) *Message {
	return &Message{registry: registry, submissions: submissions, timeout: timeout}
}

func (h *Message) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	msg := update.Message

	text := msg.Text
	if text == "" {
		text = msg.Caption
	}

	log.Debug().Str("message", text).Msg("received message")

	m := &domain.Message{
		ID:       msg.ID,
		ChatID:   msg.Chat.ID,
		UserID:   msg.From.ID,
		Username: getUserNameFromMessage(msg.From),
		Text:     text,
	}

	resolveMedia(ctx, b, msg, m)

	target := h.submissions

	if strings.HasPrefix(text, "/") {
		cmd := domain.ParseCommand(text)
		commandHandler, err := h.registry.Get(cmd)
		if err != nil {
			log.Debug().Str("command", cmd).Msg("no handler for command")
			return
		}
		target = commandHandler
	}

	go func() {
		if err := target.Respond(context.Background(), h.timeout, m); err != nil {
			log.Err(err).Str("handler", target.GetCommand()).Msg("failed to respond to message")
		}
	}()
}

// resolveMedia fills in file size and download link for photo and video
// payloads. Links are only resolved for payloads within the size cap, so
// oversized media is rejected without touching the file API.
func resolveMedia(ctx context.Context, b *bot.Bot, msg *models.Message, m *domain.Message) {
	switch {
	case len(msg.Photo) > 0:
		photo := msg.Photo[len(msg.Photo)-1]
		m.FileSize = int64(photo.FileSize)
		if m.FileSize <= domain.MaxFileSize {
			m.ImageURL = fileLink(ctx, b, photo.FileID)
		}
	case msg.Video != nil:
		m.IsVideo = true
		m.FileSize = msg.Video.FileSize
		if m.FileSize <= domain.MaxFileSize && msg.Video.Thumbnail != nil {
			m.ImageURL = fileLink(ctx, b, msg.Video.Thumbnail.FileID)
		}
	}
}

func fileLink(ctx context.Context, b *bot.Bot, fileID string) string {
	f, err := b.GetFile(ctx, &bot.GetFileParams{FileID: fileID})
	if err != nil {
		log.Error().Err(err).Msg("error getting file from telegram api")
		return ""
	}

	return b.FileDownloadLink(f)
}

func getUserNameFromMessage(user *models.User) string {
	if user.Username == "" {
		return user.FirstName
	}

	return "@" + user.Username
}
