package horoscope

import (
	"fmt"
	"strings"
	"time"

	"github.com/Bossofgyms/newbot/internal/astro"
	"github.com/Bossofgyms/newbot/internal/zodiac"
)

// Descriptions this short are treated as missing.
const minDescriptionLength = 10

const retrogradeNotice = "☿️ Меркурий находится в ретроградном движении! Будьте внимательны в коммуникациях, перепроверяйте важные документы и отложите запуск новых IT-проектов."

var signFallbacks = map[zodiac.Sign]string{
	zodiac.Aries:       "Сегодня ваша энергия на пике! Используйте это для начала важных проектов. Будьте осторожны в личных отношениях - избегайте импульсивных решений.",
	zodiac.Taurus:      "Финансовые возможности представятся вам сегодня. Доверяйте своей интуиции в денежных вопросах. Обратите внимание на здоровье.",
	zodiac.Gemini:      "Отличный день для общения и обучения. Ваши идеи будут особенно востребованы. Избегайте многозадачности - сосредоточьтесь на главном.",
	zodiac.Cancer:      "Эмоциональная чувствительность усиливается сегодня. Прислушайтесь к своим внутренним голосам. Дом и семья требуют вашего внимания.",
	zodiac.Leo:         "Ваша харизма на высоте! Используйте её для достижения целей. Не бойтесь проявлять лидерские качества, но учитывайте других.",
	zodiac.Virgo:       "Сегодня идеальный день для организации и планирования. Ваши аналитические способности помогут решить сложные задачи. Обратите внимание на детали.",
	zodiac.Libra:       "Баланс и гармония - ваши ключевые слова сегодня. Ищите компромиссы в сложных ситуациях. Красота и искусство вдохновят вас.",
	zodiac.Scorpio:     "Глубокие эмоции и интуиция будут вашими союзниками. Сегодня вы способны увидеть скрытые мотивы. Будьте осторожны с ревностью.",
	zodiac.Sagittarius: "Приключения и новые знания ждут вас сегодня. Расширьте свои горизонты. Избегайте импульсивных финансовых решений.",
	zodiac.Capricorn:   "Ваша целеустремлённость и дисциплина принесут успехи. Сосредоточьтесь на долгосрочных целях. Не забывайте о личной жизни.",
	zodiac.Aquarius:    "Оригинальные идеи и нестандартное мышление - ваши сильные стороны сегодня. Работайте над групповыми проектами. Будьте открыты новому.",
	zodiac.Pisces:      "Ваша интуиция особенно остра сегодня. Доверяйте внутреннему голосу. Творческие проекты будут успешны. Избегайте чрезмерной эмоциональности.",
}

const genericFallback = "Сегодня звезды указывают на важные перемены в вашей жизни. Обратите внимание на интуитивные сигналы и не упускайте возможности, которые представятся вам сегодня."

// FallbackDescription is used when the retrieved description is too short.
func FallbackDescription(sign zodiac.Sign) string {
	if text, ok := signFallbacks[sign]; ok {
		return text
	}
	return genericFallback
}

// Compose renders the forecast message. description is expected to be
// already translated.
func Compose(now time.Time, sign zodiac.Sign, description string, cond astro.Conditions) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "🔮 Гороскоп для %s на %s\n", sign, now.Format("02.01.2006"))

	description = strings.TrimSpace(description)
	if len([]rune(description)) <= minDescriptionLength {
		description = FallbackDescription(sign)
	}
	fmt.Fprintf(&sb, "✨ Астрологический прогноз для %s:\n%s\n", sign, description)

	sb.WriteString("🌌 Астрологические условия сегодня:\n")
	fmt.Fprintf(&sb, "• ☀️ Солнце находится в знаке %s (сегодня)\n", cond.SunSign)
	fmt.Fprintf(&sb, "• %s\n", cond.MoonPhase.Description())
	if cond.MercuryRetrograde {
		fmt.Fprintf(&sb, "• %s\n", retrogradeNotice)
	}
	sb.WriteString("\n")

	recs := recommendations(cond)
	stone := zodiac.Stone(sign)
	if len(recs) > 0 {
		sb.WriteString("💡 Рекомендации на день:\n")
		sb.WriteString(strings.Join(recs, "\n"))
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "\n🪨 Ваш природный камень: %s\n", stone)
	} else {
		fmt.Fprintf(&sb, "🪨 Природный камень %s: %s\n", sign, stone)
	}

	return strings.TrimSpace(sb.String())
}

func recommendations(cond astro.Conditions) []string {
	var recs []string
	if cond.MercuryRetrograde {
		recs = append(recs,
			"• Перепроверяйте всю важную информацию и договорённости.",
			"• Не подписывайте важные документы, если это не срочно.",
			"• Отложите крупные покупки электроники.",
		)
	}
	switch cond.MoonPhase {
	case astro.FullMoon:
		recs = append(recs,
			"• Эмоции могут быть напряжёнными, найдите способ расслабиться.",
			"• Хорошее время для завершения проектов.",
		)
	case astro.NewMoon:
		recs = append(recs,
			"• Отличный день для планирования и постановки целей.",
			"• Сосредоточьтесь на внутренней работе.",
		)
	}
	return recs
}
