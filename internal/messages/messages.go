package messages

import (
	"fmt"
	"strings"

	"github.com/Bossofgyms/newbot/internal/horoscope"
	"github.com/Bossofgyms/newbot/internal/models"
	"github.com/Bossofgyms/newbot/internal/natal"
	"github.com/Bossofgyms/newbot/internal/numerology"
	"github.com/Bossofgyms/newbot/internal/zodiac"
)

// --- profile ----------

// Welcome is sent right after onboarding completes.
func Welcome(info models.BirthInfo) string {
	var sb strings.Builder
	sb.WriteString("🔮 Добро пожаловать в меню астролога!\n\n")
	sb.WriteString("Ваш профиль:\n")
	fmt.Fprintf(&sb, "🎂 Дата рождения: %s\n", info.Date)
	fmt.Fprintf(&sb, "⭐ Знак зодиака: %s\n", info.Sign)
	if info.Time != "" {
		fmt.Fprintf(&sb, "⏰ Время рождения: %s\n", info.Time)
	}
	if info.Place != "" {
		fmt.Fprintf(&sb, "📍 Место рождения: %s\n", info.Place)
	}
	sb.WriteString("\nИспользуйте кнопки ниже для навигации:")
	return sb.String()
}

func Profile(p *models.Profile) string {
	sign := string(p.Sign)
	if sign == "" {
		sign = "Не определен"
	}

	var sb strings.Builder
	sb.WriteString("👤 Ваш профиль:\n\n")
	fmt.Fprintf(&sb, "🎂 Дата рождения: %s\n", p.BirthDate)
	fmt.Fprintf(&sb, "⭐ Знак зодиака: %s\n", sign)
	if p.BirthTime != "" {
		fmt.Fprintf(&sb, "⏰ Время рождения: %s\n", p.BirthTime)
	}
	if p.BirthPlace != "" {
		fmt.Fprintf(&sb, "📍 Место рождения: %s\n", p.BirthPlace)
	}
	if p.Subscribed {
		sb.WriteString("📨 Подписка на гороскоп: активна\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// --- daily push ----------

func Daily(sign zodiac.Sign, f horoscope.Forecast) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🌅 Доброе утро! Ежедневный гороскоп для %s\n\n", sign)
	if f.Date != "" {
		fmt.Fprintf(&sb, "📅 %s\n\n", f.Date)
	}
	sb.WriteString(f.Text)
	sb.WriteString("\n\n")

	var details []string
	if f.Reading.Mood != "" {
		details = append(details, "Настроение: "+f.Reading.Mood)
	}
	if f.Reading.Color != "" {
		details = append(details, "Цвет дня: "+f.Reading.Color)
	}
	if f.Reading.LuckyNumber != "" {
		details = append(details, "Счастливое число: "+f.Reading.LuckyNumber)
	}
	if f.Reading.LuckyTime != "" {
		details = append(details, "Счастливое время: "+f.Reading.LuckyTime)
	}
	if len(details) > 0 {
		sb.WriteString(strings.Join(details, "\n"))
		sb.WriteString("\n")
	}

	sb.WriteString("\n💫 Хорошего дня!")
	return sb.String()
}

// --- natal chart ----------

func NatalChart(sign zodiac.Sign, chart natal.Chart, contact string) string {
	text := fmt.Sprintf("📊 Натальная карта для %s\n\n%s", sign, chart.Summary)
	if contact != "" {
		text += "\n• ДЛЯ БОЛЕЕ ТОЧНОГО ПОНИМАНИЯ СВОЕГО ДАЛЬНЕЙШЕГО ПУТИ ОБРАТИТЕСЬ К НАШИМ СПЕЦИАЛИСТАМ " + contact
	}
	return text
}

// --- numerology ----------

const disclaimer = "ℹ️ *Важно:* Нумерология не является научной дисциплиной. Это интерпретация чисел, основанная на традициях и верованиях."

// LifeNumber renders the Markdown answer for the life number button.
func LifeNumber(date string) string {
	number, err := numerology.LifeNumber(date)
	if err != nil {
		return numerology.ErrorText(err)
	}
	description, ok := numerology.Describe(number)
	if !ok {
		description = "Неизвестное число: " + number
	}
	return fmt.Sprintf("🔢 Ваше Число Жизни: *%s*\n\n%s\n\n%s", number, description, disclaimer)
}
