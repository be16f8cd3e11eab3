package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"beeclaimer/internal/models"

	"github.com/samber/do"
	tele "gopkg.in/telebot.v3"

	initdata "github.com/telegram-mini-apps/init-data-golang"
)

// Bot validates Telegram mini-app sessions and delivers the withdrawal-request
// message to the configured admin chat. Token and chat come from the current
// config snapshot so admin edits take effect on the next send.
type Bot struct {
	serviceConfig *ServiceConfig
}

func NewBot(container *do.Injector) (*Bot, error) {
	serviceConfig, err := do.Invoke[*ServiceConfig](container)
	if err != nil {
		return nil, err
	}
	return &Bot{serviceConfig}, nil
}

func (bot *Bot) ValidateInitData(dataStr string) (*models.UserFromAuth, error) {
	config := bot.serviceConfig.Current()

	if err := initdata.Validate(dataStr, config.TelegramToken, 0); err != nil {
		return nil, err
	}

	data, err := initdata.Parse(dataStr)
	if err != nil {
		return nil, err
	}

	return &models.UserFromAuth{
		ID:           data.User.ID,
		Username:     data.User.Username,
		FirstName:    data.User.FirstName,
		LastName:     data.User.LastName,
		IsBot:        data.User.IsBot,
		IsPremium:    data.User.IsPremium,
		LanguageCode: data.User.LanguageCode,
		PhotoURL:     data.User.PhotoURL,
	}, nil
}

func (bot *Bot) NotifyWithdrawal(ctx context.Context, amount float64, address string) error {
	config := bot.serviceConfig.Current()

	chatID, err := strconv.ParseInt(config.TelegramChatID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid telegram chat id: %w", err)
	}

	pref := tele.Settings{
		Token:  config.TelegramToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return err
	}

	text := fmt.Sprintf("🚀 *Withdrawal Request*\nAmt: %v TON\nAdr: `%s`", amount, address)
	_, err = b.Send(&tele.User{ID: chatID}, text, &tele.SendOptions{
		ParseMode: tele.ModeMarkdown,
	})
	return err
}
