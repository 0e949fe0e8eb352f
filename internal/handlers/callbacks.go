package handlers

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Bossofgyms/newbot/internal/logger"
)

func (h *Handler) HandleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	// Всегда отвечаем на callback, чтобы у клиента не висели "часики".
	_, _ = h.Bot.Request(tgbotapi.NewCallback(cq.ID, ""))

	if cq.Message == nil {
		return
	}
	chatID := cq.Message.Chat.ID

	switch cq.Data {
	case cbRefresh:
		h.refreshHoroscope(ctx, chatID, cq.Message.MessageID)
	default:
		h.Log.Debug("неизвестный callback", slog.String("data", cq.Data))
	}
}

func (h *Handler) refreshHoroscope(ctx context.Context, chatID int64, messageID int) {
	p, ok := h.profile(ctx, chatID)
	if !ok {
		return
	}
	f := h.Horoscopes.Refresh(ctx, p.Sign, p.BirthDayMonth())

	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, f.Text, refreshKeyboard())
	if _, err := h.Bot.Send(edit); err != nil {
		// "message is not modified" when the text came out identical.
		h.Log.Warn("не удалось обновить гороскоп",
			slog.Int64("chat_id", chatID), logger.Err(err))
	}
}
