package handlers

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Bossofgyms/newbot/internal/models"
	"github.com/Bossofgyms/newbot/internal/onboarding"
)

// HandleMessage dispatches a text message: commands first. While the user
// is entering birth time or place every text goes to onboarding, otherwise
// menu buttons win over the onboarding flow.
func (h *Handler) HandleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.IsCommand() {
		h.HandleCommand(ctx, msg)
		return
	}

	chatID := msg.Chat.ID
	step, err := h.Onboarding.Current(ctx, chatID)
	if err != nil {
		h.failure(chatID, "ошибка чтения состояния", err)
		return
	}

	if step != models.StepAwaitingTime && step != models.StepAwaitingPlace {
		if action, ok := h.menu()[msg.Text]; ok {
			h.deleteQuietly(chatID, msg.MessageID)
			action(ctx, chatID)
			return
		}
	}

	reply, handled, err := h.Onboarding.Handle(ctx, chatID, msg.Text)
	if err != nil {
		h.failure(chatID, "ошибка онбординга", err)
		return
	}
	h.deleteQuietly(chatID, msg.MessageID)
	if !handled {
		return
	}
	h.sendOnboarding(chatID, reply)
}

func (h *Handler) menu() map[string]func(context.Context, int64) {
	return map[string]func(context.Context, int64){
		btnHoroscope:   h.HandleHoroscope,
		btnNatal:       h.HandleNatal,
		btnLifeNumber:  h.HandleLifeNumber,
		btnSubscribe:   h.HandleSubscribe,
		btnUnsubscribe: h.HandleUnsubscribe,
		btnProfile:     h.HandleProfile,
		btnHelp:        func(_ context.Context, chatID int64) { h.HandleHelp(chatID) },
	}
}

func (h *Handler) sendOnboarding(chatID int64, reply onboarding.Reply) {
	switch reply.Kind {
	case onboarding.KindPrompt:
		h.sendText(chatID, reply.Text, tgbotapi.NewRemoveKeyboard(true))
	case onboarding.KindCompleted:
		h.sendText(chatID, reply.Text, mainKeyboard())
		if reply.Followup != "" {
			h.sendText(chatID, reply.Followup, nil)
		}
	default:
		h.sendText(chatID, reply.Text, nil)
	}
}
