package messages

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Bossofgyms/newbot/internal/horoscope"
	"github.com/Bossofgyms/newbot/internal/models"
	"github.com/Bossofgyms/newbot/internal/natal"
	"github.com/Bossofgyms/newbot/internal/zodiac"
)

func TestWelcome(t *testing.T) {
	text := Welcome(models.BirthInfo{Date: "31.07.1990", Sign: zodiac.Leo, Time: "14:30", Place: "Москва"})
	assert.Contains(t, text, "🎂 Дата рождения: 31.07.1990")
	assert.Contains(t, text, "⭐ Знак зодиака: Лев")
	assert.Contains(t, text, "⏰ Время рождения: 14:30")
	assert.Contains(t, text, "📍 Место рождения: Москва")

	text = Welcome(models.BirthInfo{Date: "31.07.1990", Sign: zodiac.Leo})
	assert.NotContains(t, text, "⏰")
	assert.NotContains(t, text, "📍")
}

func TestProfile(t *testing.T) {
	text := Profile(&models.Profile{BirthDate: "02.11.1991", Sign: zodiac.Scorpio, Subscribed: true})
	assert.True(t, strings.HasPrefix(text, "👤 Ваш профиль:"))
	assert.Contains(t, text, "⭐ Знак зодиака: Скорпион")
	assert.Contains(t, text, "Подписка на гороскоп: активна")

	text = Profile(&models.Profile{BirthDate: "02.11.1991"})
	assert.Contains(t, text, "Не определен")
}

func TestDaily(t *testing.T) {
	f := horoscope.Forecast{
		Date:    "31.07.2025",
		Text:    "🔮 Гороскоп для Лев на 31.07.2025",
		Reading: horoscope.Reading{Mood: "спокойный", LuckyNumber: "7"},
	}
	text := Daily(zodiac.Leo, f)

	assert.True(t, strings.HasPrefix(text, "🌅 Доброе утро! Ежедневный гороскоп для Лев\n\n📅 31.07.2025\n\n🔮 Гороскоп"))
	assert.Contains(t, text, "Настроение: спокойный\nСчастливое число: 7\n")
	assert.NotContains(t, text, "Цвет дня")
	assert.True(t, strings.HasSuffix(text, "\n💫 Хорошего дня!"))
}

func TestNatalChart(t *testing.T) {
	chart := natal.Chart{Summary: "📊 Натальная карта\n🎂 Дата рождения: 31.07.1990"}
	text := NatalChart(zodiac.Leo, chart, "@astro_support")
	assert.True(t, strings.HasPrefix(text, "📊 Натальная карта для Лев\n\n📊 Натальная карта"))
	assert.True(t, strings.HasSuffix(text, "@astro_support"))

	assert.NotContains(t, NatalChart(zodiac.Leo, chart, ""), "СПЕЦИАЛИСТАМ")
}

func TestLifeNumber(t *testing.T) {
	text := LifeNumber("31.07.1990")
	assert.True(t, strings.HasPrefix(text, "🔢 Ваше Число Жизни: *3*\n\n"))
	assert.Contains(t, text, "Нумерология не является научной дисциплиной")

	assert.Equal(t, "❌ Неверный формат даты.", LifeNumber("31-07-1990"))
	assert.Equal(t, "❌ Дата рождения не указана.", LifeNumber(""))
}
