package reporter

import (
	"fmt"

	"go-outreach-automation/internal/config"
	"go-outreach-automation/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type TelegramReporter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramReporter(cfg *config.Config) (*TelegramReporter, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	//turn this on in case of debug
	//bot.Debug = true

	return &TelegramReporter{
		bot:    bot,
		chatID: cfg.TelegramChatID,
	}, nil
}

func (t *TelegramReporter) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "HTML" //use HTML for bold/italic
	_, err := t.bot.Send(msg)
	return err
}

// SendApplication posts a confirmation for one logged application.
func (t *TelegramReporter) SendApplication(sender string, entry models.ApplicationEntry) error {
	text := fmt.Sprintf(
		"✅ <b>Application sent</b>\n"+
			"👤 %s\n"+
			"🏢 %s\n"+
			"💼 %s\n"+
			"📧 %s\n"+
			"📌 %s",
		sender,
		entry.Company,
		entry.Role,
		entry.RecruiterEmail,
		entry.Subject,
	)
	return t.SendMessage(text)
}

func (t *TelegramReporter) SendError(errReq error) error {
	text := fmt.Sprintf("⚠️ <b>Outreach Error</b>:\n%v", errReq)
	return t.SendMessage(text)
}
