package sender

import (
	"context"
	"fmt"
	"time"

	"capbot/internal/core/domain"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
)

const TelegramMessageLimit = 4096

type TelegramBot interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
	EditMessageText(ctx context.Context, params *bot.EditMessageTextParams) (*models.Message, error)
	SendChatAction(ctx context.Context, params *bot.SendChatActionParams) (bool, error)
}

type Telegram struct {
	bot TelegramBot
}

func NewTelegram(bot TelegramBot) *Telegram {
	return &Telegram{bot: bot}
}

func (s *Telegram) SendMessageReply(ctx context.Context, message *domain.Message, text string) (int, error) {
	var lastID int

	for _, chunk := range chunkText(text, TelegramMessageLimit) {
		m, err := s.bot.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: message.ChatID,
			Text:   chunk,
			ReplyParameters: &models.ReplyParameters{
				MessageID: message.ID,
				ChatID:    message.ChatID,
			},
		})
		if err != nil {
			return 0, fmt.Errorf("failed to send reply: %w", err)
		}

		lastID = m.ID
	}

	return lastID, nil
}

func (s *Telegram) SendKeyboardReply(ctx context.Context, message *domain.Message, text string,
	keyboard [][]domain.QuickAction) (int, error) {
	rows := make([][]models.InlineKeyboardButton, len(keyboard))

	for i, row := range keyboard {
		buttons := make([]models.InlineKeyboardButton, len(row))
		for j, action := range row {
			buttons[j] = models.InlineKeyboardButton{
				Text:         action.Label,
				CallbackData: action.Token,
			}
		}
		rows[i] = buttons
	}

	m, err := s.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: message.ChatID,
		Text:   text,
		ReplyParameters: &models.ReplyParameters{
			MessageID: message.ID,
			ChatID:    message.ChatID,
		},
		ReplyMarkup: &models.InlineKeyboardMarkup{InlineKeyboard: rows},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to send keyboard reply: %w", err)
	}

	return m.ID, nil
}

func (s *Telegram) EditMessageText(ctx context.Context, message *domain.Message, text string) error {
	_, err := s.bot.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:    message.ChatID,
		MessageID: message.ID,
		Text:      text,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to edit message")
		return err
	}

	return nil
}

const ChatActionRepeatSeconds = 5

func (s *Telegram) SendChatAction(ctx context.Context, chatID int64, action domain.Action) {
	log.Debug().Int64("chatID", chatID).Msg("starting action routine")
	for {
		select {
		case <-ctx.Done():
			log.Debug().Int64("chatID", chatID).Msg("done, stopping action routine")
			return
		default:
		}

		var chatAction models.ChatAction
		switch action {
		case domain.Typing:
			chatAction = models.ChatActionTyping
		default:
			chatAction = models.ChatActionTyping
		}

		log.Debug().Int64("chatID", chatID).Msg("transmitting action")
		_, err := s.bot.SendChatAction(ctx, &bot.SendChatActionParams{
			ChatID: chatID,
			Action: chatAction,
		})
		if err != nil {
			log.Err(err).Msg("error sending chat action")
			return
		}

		time.Sleep(ChatActionRepeatSeconds * time.Second)
	}
}

func (s *Telegram) NotifyAndReturnError(ctx context.Context, err error, message *domain.Message) error {
	_, sendErr := s.SendMessageReply(ctx, message, fmt.Sprintf("❌ Error: %s", err))
	if sendErr != nil {
		log.Error().Err(sendErr).Msg("failed to notify user about error")
	}

	return err
}

func chunkText(text string, limit int) []string {
	runes := []rune(text)
	if len(runes) <= limit {
		return []string{text}
	}

	var chunks []string
	for len(runes) > limit {
		chunks = append(chunks, string(runes[:limit]))
		runes = runes[limit:]
	}

	return append(chunks, string(runes))
}
