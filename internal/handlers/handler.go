package handlers

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Bossofgyms/newbot/internal/astro"
	"github.com/Bossofgyms/newbot/internal/horoscope"
	"github.com/Bossofgyms/newbot/internal/logger"
	"github.com/Bossofgyms/newbot/internal/models"
	"github.com/Bossofgyms/newbot/internal/onboarding"
	"github.com/Bossofgyms/newbot/internal/zodiac"
)

// Bot is the part of *tgbotapi.BotAPI the handlers use.
type Bot interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type ProfileStore interface {
	GetProfile(ctx context.Context, chatID int64) (*models.Profile, error)
	SetSubscribed(ctx context.Context, chatID int64, subscribed bool) error
}

type Forecaster interface {
	Forecast(ctx context.Context, sign zodiac.Sign, birth *astro.DayMonth) horoscope.Forecast
	Refresh(ctx context.Context, sign zodiac.Sign, birth *astro.DayMonth) horoscope.Forecast
}

type Handler struct {
	Bot        Bot
	DB         ProfileStore
	Onboarding *onboarding.Machine
	Horoscopes Forecaster
	Log        *slog.Logger

	DeliveryTime   string // shown in the subscription confirmation, e.g. "9:00"
	SupportContact string
}

// HandleUpdate routes one telegram update.
func (h *Handler) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	switch {
	case upd.CallbackQuery != nil:
		h.HandleCallback(ctx, upd.CallbackQuery)
	case upd.Message != nil && upd.Message.Text != "":
		h.HandleMessage(ctx, upd.Message)
	}
}

func (h *Handler) send(c tgbotapi.Chattable) (tgbotapi.Message, bool) {
	m, err := h.Bot.Send(c)
	if err != nil {
		h.Log.Error("не удалось отправить сообщение", logger.Err(err))
		return m, false
	}
	return m, true
}

func (h *Handler) sendText(chatID int64, text string, markup any) {
	msg := tgbotapi.NewMessage(chatID, text)
	if markup != nil {
		msg.ReplyMarkup = markup
	}
	h.send(msg)
}

// deleteQuietly removes a message if telegram lets us. Failure is logged
// and otherwise ignored.
func (h *Handler) deleteQuietly(chatID int64, messageID int) {
	if _, err := h.Bot.Request(tgbotapi.NewDeleteMessage(chatID, messageID)); err != nil {
		h.Log.Warn("не удалось удалить сообщение",
			slog.Int64("chat_id", chatID),
			slog.Int("message_id", messageID),
			logger.Err(err),
		)
	}
}

func (h *Handler) failure(chatID int64, op string, err error) {
	h.Log.Error(op, slog.Int64("chat_id", chatID), logger.Err(err))
	h.sendText(chatID, txtFailure, nil)
}

func mainKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(btnHoroscope)),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(btnNatal)),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(btnLifeNumber)),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnSubscribe),
			tgbotapi.NewKeyboardButton(btnUnsubscribe),
		),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(btnProfile)),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(btnHelp)),
	)
	kb.ResizeKeyboard = true
	return kb
}

func startKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(btnHelp)),
	)
	kb.ResizeKeyboard = true
	return kb
}

func refreshKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnRefresh, cbRefresh),
		),
	)
}
