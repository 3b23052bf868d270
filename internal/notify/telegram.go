package notify

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type botAPISender struct{ api *tgbotapi.BotAPI }

func (s botAPISender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	return s.api.Send(c)
}

// TelegramDispatcher is an optional side channel that mirrors the message to
// a Telegram chat.
type TelegramDispatcher struct {
	s      sender
	chatID int64
}

func NewTelegram(token string, chatID int64) (*TelegramDispatcher, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}
	return &TelegramDispatcher{s: botAPISender{api: api}, chatID: chatID}, nil
}

func (d *TelegramDispatcher) Dispatch(ctx context.Context, message string) error {
	if _, err := d.s.Send(tgbotapi.NewMessage(d.chatID, message)); err != nil {
		return fmt.Errorf("telegram send failed: %w", err)
	}
	return nil
}
