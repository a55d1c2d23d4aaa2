package port

import (
	"context"

	"capbot/internal/core/domain"
)

type TextSender interface {
	// SendMessageReply sends a reply to a specified message with the given text and returns the sent message ID and
	// an error if any.
	SendMessageReply(ctx context.Context, message *domain.Message, text string) (int, error)
	// SendKeyboardReply sends a reply carrying a set of labeled quick-actions and returns the sent message ID.
	SendKeyboardReply(ctx context.Context, message *domain.Message, text string,
		keyboard [][]domain.QuickAction) (int, error)
	// EditMessageText replaces the text of the message the event originated from, dropping its quick-actions.
	EditMessageText(ctx context.Context, message *domain.Message, text string) error
	// SendChatAction sends a specified chat action (e.g., typing) to indicate activity in a given chat.
	SendChatAction(ctx context.Context, chatID int64, action domain.Action)
	// NotifyAndReturnError sends an error notification based on the provided message context and returns the error.
	NotifyAndReturnError(ctx context.Context, err error, message *domain.Message) error
}
