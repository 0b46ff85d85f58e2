package notify

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
)

// Bale speaks the Telegram Bot API, so the same client library works with a
// different server URL.
const baleServerURL = "https://tapi.bale.ai"

// ChatResolver maps a draft recipient to a Bale chat id. Returns false when
// no chat is known for the recipient.
type ChatResolver func(role Role, recipientID string) (int64, bool)

// BaleSender delivers drafts through the Bale messenger.
type BaleSender struct {
	bot     *bot.Bot
	resolve ChatResolver
}

func NewBaleSender(token string, resolve ChatResolver) (*BaleSender, error) {
	b, err := bot.New(token, bot.WithServerURL(baleServerURL), bot.WithSkipGetMe())
	if err != nil {
		return nil, fmt.Errorf("create bale client: %w", err)
	}
	return &BaleSender{bot: b, resolve: resolve}, nil
}

func (s *BaleSender) Send(ctx context.Context, d Draft) error {
	chatID, ok := s.resolve(d.Recipient, d.RecipientID)
	if !ok {
		return fmt.Errorf("no chat known for %s %s", d.Recipient, d.RecipientID)
	}
	_, err := s.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   d.Subject + "\n\n" + d.Body,
	})
	if err != nil {
		return fmt.Errorf("send bale message: %w", err)
	}
	return nil
}
