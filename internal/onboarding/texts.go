package onboarding

import "fmt"

const (
	txtWelcome = `🔮 Привет! Я астрологический бот!

Я могу:
• Определить ваш знак зодиака
• Сгенерировать натальную карту
• Присылать ежедневный гороскоп
• Дать детальный астрологический анализ

Введите вашу дату рождения в формате ДД.ММ.ГГГГ
Например: 31.07.1990`

	txtAskPlace = "Введите место рождения (город) или отправьте '-':"
	txtSaved    = "✅ Данные успешно сохранены!"
)

func txtDateAccepted(sign fmt.Stringer) string {
	return fmt.Sprintf("✅ Дата принята!\nВаш знак зодиака: %s ♢\n\nВведите время рождения (формат ЧЧ:ММ) или отправьте '-' если не знаете:", sign)
}

func txtBadDate(reason string) string {
	return fmt.Sprintf("❌ Ошибка: %s\n\nПожалуйста, введите дату в формате ДД.ММ.ГГГГ\nПример: 31.07.1990", reason)
}

func txtBadTime(reason string) string {
	return fmt.Sprintf("❌ Ошибка: %s\n\nВведите время в формате ЧЧ:ММ или '-' если не знаете", reason)
}

func txtBadPlace(reason string) string {
	return "❌ " + reason
}
