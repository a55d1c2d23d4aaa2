package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"capbot/internal/core/domain"
	"capbot/internal/core/port"
	"capbot/internal/core/service"

	"github.com/rs/zerolog/log"
)

// Submission handles every non-command message: new content submissions and,
// when an edit is pending, the free-form edit reply.
type Submission struct {
	generator  port.CaptionGenerator
	sender     port.TextSender
	downloader port.FileDownloader
	sessions   port.SessionStore
	limiter    service.Limiter
}

func NewSubmission(generator port.CaptionGenerator,
	sender port.TextSender,
	downloader port.FileDownloader,
	sessions port.SessionStore,
	limiter service.Limiter) *Submission {
	return &Submission{generator: generator,
		sender:     sender,
		downloader: downloader,
		sessions:   sessions,
		limiter:    limiter}
}

func (h *Submission) GetCommand() string {
	return "submission"
}

func (h *Submission) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	l := log.With().
		Int("messageId", message.ID).
		Int64("chatId", message.ChatID).
		Int64("userId", message.UserID).
		Logger()

	l.Info().Msg("handling submission")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	session := h.sessions.Get(message.UserID)
	session.Lock()
	defer session.Unlock()

	// a pending edit consumes the next plain-text message instead of
	// starting a new generation
	if session.EditingIndex != domain.NoEditing && isPlainText(message) {
		return h.consumeEdit(ctx, session, message)
	}

	if !h.limiter.Admit(session) {
		l.Debug().Msg("rate limited")
		_, err := h.sender.SendMessageReply(ctx, message, rateLimited)
		return err
	}

	content, reject, err := h.normalize(ctx, message)
	if err != nil {
		l.Error().Err(err).Msg("failed to normalize submission")
		return h.sender.NotifyAndReturnError(ctx, err, message)
	}

	if reject != "" {
		l.Debug().Str("reason", reject).Msg("submission rejected")
		_, err := h.sender.SendMessageReply(ctx, message, reject)
		return err
	}

	go h.sender.SendChatAction(ctx, message.ChatID, domain.Typing)

	if _, err := h.sender.SendMessageReply(ctx, message, generating); err != nil {
		l.Warn().Err(err).Msg("failed to send progress reply")
	}

	session.LastContent = content

	captions := h.generator.Generate(ctx, content, session.Platform)
	session.LastCaptions = captions
	session.EditingIndex = domain.NoEditing

	l.Debug().Msg("captions generated")

	return replyWithCaptions(ctx, h.sender, message, session.Platform, captions)
}

// normalize converts an inbound message into ordered content items. A
// non-empty reject string means the submission is refused with that reply
// and no session state changes.
func (h *Submission) normalize(ctx context.Context,
	message *domain.Message) ([]domain.ContentItem, string, error) {
	if message.FileSize > domain.MaxFileSize {
		if message.IsVideo {
			return nil, videoTooLarge, nil
		}
		return nil, imageTooLarge, nil
	}

	var content []domain.ContentItem

	if message.ImageURL != "" {
		data, err := h.downloader.Download(ctx, message.ImageURL)
		if err != nil {
			return nil, "", fmt.Errorf("error downloading media: %w", err)
		}

		content = append(content, domain.ContentItem{
			Kind:      domain.ContentImage,
			Data:      data,
			MediaType: "image/jpeg",
		})
	}

	if text := strings.TrimSpace(message.Text); text != "" && !strings.HasPrefix(text, "/") {
		content = append(content, domain.ContentItem{Kind: domain.ContentText, Text: text})
	}

	if len(content) == 0 {
		return nil, emptySubmission, nil
	}

	return content, "", nil
}

// consumeEdit merges the reply into the caption being edited: the text
// replaces the body, hook/CTA/hashtags stay.
func (h *Submission) consumeEdit(ctx context.Context,
	session *domain.Session, message *domain.Message) error {
	idx := session.EditingIndex
	session.EditingIndex = domain.NoEditing

	if idx < 0 || idx >= len(session.LastCaptions) {
		_, err := h.sender.SendMessageReply(ctx, message, noCaptions)
		return err
	}

	caption := session.LastCaptions[idx]
	caption.Body = strings.TrimSpace(message.Text)
	session.LastCaptions[idx] = caption

	_, err := h.sender.SendMessageReply(ctx, message,
		updatedCaption+"\n"+domain.FormatCaption(caption))
	return err
}

func isPlainText(message *domain.Message) bool {
	return message.Text != "" && message.ImageURL == "" && !message.IsVideo &&
		!strings.HasPrefix(message.Text, "/")
}

// replyWithCaptions renders a generation result with its quick-actions.
func replyWithCaptions(ctx context.Context, sender port.TextSender, message *domain.Message,
	platform string, captions []domain.Caption) error {
	_, err := sender.SendKeyboardReply(ctx, message,
		domain.FormatCaptions(platform, captions),
		domain.CaptionKeyboard(len(captions)))
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrSendingReplyFailed, err)
	}

	return nil
}
