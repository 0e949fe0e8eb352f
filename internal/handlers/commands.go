package handlers

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Bossofgyms/newbot/internal/logger"
)

// RegisterCommands publishes /start and /help to the telegram command menu.
// A failure is logged; the bot works without the menu.
func (h *Handler) RegisterCommands() {
	cfg := tgbotapi.NewSetMyCommands(
		tgbotapi.BotCommand{Command: "start", Description: cmdStartDescription},
		tgbotapi.BotCommand{Command: "help", Description: cmdHelpDescription},
	)
	if _, err := h.Bot.Request(cfg); err != nil {
		h.Log.Warn("не удалось зарегистрировать команды", logger.Err(err))
	}
}

func (h *Handler) HandleCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	h.deleteQuietly(chatID, msg.MessageID)

	switch msg.Command() {
	case "start":
		h.HandleStart(ctx, chatID)
	case "help":
		h.HandleHelp(chatID)
	}
}

// ---------------- /start --------------------
func (h *Handler) HandleStart(ctx context.Context, chatID int64) {
	reply, err := h.Onboarding.Start(ctx, chatID)
	if err != nil {
		h.failure(chatID, "ошибка /start", err)
		return
	}
	h.sendText(chatID, reply.Text, startKeyboard())
}

// ---------------- /help ---------------------
func (h *Handler) HandleHelp(chatID int64) {
	text := txtHelp
	if h.SupportContact != "" {
		text += fmt.Sprintf(txtHelpContact, h.SupportContact)
	}
	h.sendText(chatID, text, mainKeyboard())
}
