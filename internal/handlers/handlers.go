package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Bossofgyms/newbot/internal/logger"
	"github.com/Bossofgyms/newbot/internal/messages"
	"github.com/Bossofgyms/newbot/internal/models"
	"github.com/Bossofgyms/newbot/internal/natal"
	"github.com/Bossofgyms/newbot/internal/storage"
	"github.com/Bossofgyms/newbot/internal/zodiac"
)

// profile loads the user's profile. ok is false when a reply has already
// been sent: either the user has no birth data yet or storage failed.
func (h *Handler) profile(ctx context.Context, chatID int64) (*models.Profile, bool) {
	p, err := h.DB.GetProfile(ctx, chatID)
	if err != nil {
		h.failure(chatID, "ошибка чтения профиля", err)
		return nil, false
	}
	if !p.HasBirthData() {
		h.sendText(chatID, txtNeedStart, nil)
		return nil, false
	}
	return p, true
}

// ---------------- Гороскоп ------------------
func (h *Handler) HandleHoroscope(ctx context.Context, chatID int64) {
	p, ok := h.profile(ctx, chatID)
	if !ok {
		return
	}

	loading, sent := h.send(tgbotapi.NewMessage(chatID, txtLoading))
	f := h.Horoscopes.Forecast(ctx, p.Sign, p.BirthDayMonth())
	if sent {
		h.deleteQuietly(chatID, loading.MessageID)
	}

	h.sendText(chatID, f.Text, refreshKeyboard())
}

// ---------------- Натальная карта -----------
func (h *Handler) HandleNatal(ctx context.Context, chatID int64) {
	p, ok := h.profile(ctx, chatID)
	if !ok {
		return
	}

	chart, err := natal.BuildLink(p.BirthDate, p.BirthTime, p.BirthPlace)
	if err != nil {
		h.Log.Warn("не удалось построить ссылку на карту",
			slog.Int64("chat_id", chatID), logger.Err(err))
		h.sendText(chatID, txtBadBirth, nil)
		return
	}

	msg := tgbotapi.NewMessage(chatID, messages.NatalChart(p.Sign, chart, h.SupportContact))
	msg.DisableWebPagePreview = true
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL(btnNatalLink, chart.URL),
		),
	)
	h.send(msg)
}

// ---------------- Число жизни ---------------
func (h *Handler) HandleLifeNumber(ctx context.Context, chatID int64) {
	p, ok := h.profile(ctx, chatID)
	if !ok {
		return
	}
	msg := tgbotapi.NewMessage(chatID, messages.LifeNumber(p.BirthDate))
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = mainKeyboard()
	h.send(msg)
}

// ---------------- Профиль -------------------
func (h *Handler) HandleProfile(ctx context.Context, chatID int64) {
	p, ok := h.profile(ctx, chatID)
	if !ok {
		return
	}
	h.sendText(chatID, messages.Profile(p), mainKeyboard())
}

// ---------------- Подписка ------------------
func (h *Handler) HandleSubscribe(ctx context.Context, chatID int64) {
	p, ok := h.profile(ctx, chatID)
	if !ok {
		return
	}
	if !p.Sign.Valid() {
		h.sendText(chatID, txtNeedStart, nil)
		return
	}
	if err := h.DB.SetSubscribed(ctx, chatID, true); err != nil {
		h.failure(chatID, "ошибка подписки", err)
		return
	}
	h.sendText(chatID, fmt.Sprintf(txtSubscribed, h.DeliveryTime), mainKeyboard())
}

func (h *Handler) HandleUnsubscribe(ctx context.Context, chatID int64) {
	err := h.DB.SetSubscribed(ctx, chatID, false)
	if err != nil && !errors.Is(err, storage.ErrUserNotFound) {
		h.failure(chatID, "ошибка отписки", err)
		return
	}
	h.sendText(chatID, txtUnsubscribe, mainKeyboard())
}

// SendDailyHoroscope delivers the scheduled forecast to one subscriber.
func (h *Handler) SendDailyHoroscope(ctx context.Context, chatID int64, sign zodiac.Sign) error {
	f := h.Horoscopes.Forecast(ctx, sign, nil)
	_, err := h.Bot.Send(tgbotapi.NewMessage(chatID, messages.Daily(sign, f)))
	return err
}
