package handlers

const (
	btnHoroscope   = "🔮 Гороскоп"
	btnNatal       = "📊 Натальная карта"
	btnLifeNumber  = "🔢 Число жизни"
	btnSubscribe   = "📨 Подписаться на гороскоп"
	btnUnsubscribe = "❌ Отписаться"
	btnProfile     = "👤 Мой профиль"
	btnHelp        = "❓ Помощь"

	btnNatalLink = "🔮 Рассчитать натальную карту"
	btnRefresh   = "🔄 Обновить"

	cbRefresh = "refresh_horoscope"

	cmdStartDescription = "Начать работу с ботом"
	cmdHelpDescription  = "Помощь"
)

const (
	txtNeedStart   = "❌ Сначала введите дату рождения через /start"
	txtBadBirth    = "❌ Неверный формат даты рождения. Введите данные заново через /start"
	txtLoading     = "🔮 Получаю астрологический гороскоп..."
	txtUnsubscribe = "❌ Вы отписались от ежедневной рассылки гороскопа."
	txtFailure     = "⚠️ Произошла ошибка. Попробуйте позже."
	txtSubscribed  = "✅ Вы успешно подписались на ежедневную рассылку гороскопа!\nГороскоп будет приходить каждый день в %s."

	txtHelp = `🔮 Помощь по боту:

Для начала работы введите дату рождения в формате ДД.ММ.ГГГГ
Пример: 31.07.1990

Кнопки меню:
🔮 Гороскоп - Получить гороскоп на сегодня
📊 Натальная карта - Ссылка на вашу натальную карту
🔢 Число жизни - Нумерологическое число по дате рождения
👤 Мой профиль - Просмотр ваших данных
📨 Подписаться - Ежедневная рассылка гороскопа
❌ Отписаться - Отменить подписку
❓ Помощь - Показать эту справку

Также доступны команды:
/start - Начать работу с ботом
/help - Помощь`

	txtHelpContact = "\n\nДля вопросов, связанных с некорректной работой бота, прошу сообщать %s"
)
