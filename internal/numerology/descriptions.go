package numerology

import "errors"

var descriptions = map[string]string{
	"1": "Единица символизирует новое начало, лидерство, независимость и стремление быть первым. " +
		"Вы обладаете сильной волей, инициативой и амбициями. Люди с этим числом часто становятся вдохновителями и новаторами. " +
		"Ваши сильные стороны: решительность, уверенность, творческий подход, способность принимать решения. " +
		"Возможные слабые стороны: импульсивность, нетерпение, стремление контролировать, индивидуализм.",
	"2": "Двойка олицетворяет сотрудничество, дипломатию, чувствительность и стремление к гармонии. " +
		"Вы цените партнёрские отношения, умеете слушать и чувствуете настроение окружающих. " +
		"Ваши сильные стороны: эмпатия, дипломатичность, умение работать в команде, гибкость. " +
		"Возможные слабые стороны: излишняя зависимость от мнения других, неуверенность, избегание конфликтов, чрезмерная чувствительность.",
	"3": "Тройка символизирует творчество, самовыражение, общительность и оптимизм. " +
		"Вы легко находите общий язык с людьми, любите общение и умеете вдохновлять. " +
		"Ваши сильные стороны: коммуникабельность, творческий талант, жизнерадостность, воображение. " +
		"Возможные слабые стороны: поверхностность, рассеянность, излишняя болтливость, трудности с концентрацией.",
	"4": "Четверка означает стабильность, практичность, организованность и трудолюбие. " +
		"Вы цените порядок, надежность и способны доводить начатое до конца. " +
		"Ваши сильные стороны: дисциплина, надежность, логическое мышление, терпение. " +
		"Возможные слабые стороны: упрямство, склонность к рутине, излишний пессимизм, сопротивление переменам.",
	"5": "Пятерка символизирует свободу, приключения, адаптивность и любопытство. " +
		"Вы любите перемены, новые впечатления и не боитесь риска. " +
		"Ваши сильные стороны: адаптивность, любознательность, энергичность, гибкость мышления. " +
		"Возможные слабые стороны: неугомонность, непостоянство, трудности с обязательствами, импульсивность.",
	"6": "Шестерка олицетворяет заботу, ответственность, гармонию и чувство долга. " +
		"Вы стремитесь к стабильным отношениям, заботитесь о близких и цените красоту и порядок. " +
		"Ваши сильные стороны: заботливость, надежность, чувство справедливости, любовь к красоте. " +
		"Возможные слабые стороны: чрезмерная тревожность, стремление контролировать других, самопожертвование, обида при недостатке благодарности.",
	"7": "Семерка символизирует анализ, интроспекцию, стремление к знаниям и поиск истины. " +
		"Вы любите размышлять, углубляться в суть вещей и цените уединение. " +
		"Ваши сильные стороны: аналитический ум, интуиция, мудрость, стремление к самопознанию. " +
		"Возможные слабые стороны: склонность к изоляции, чрезмерный перфекционизм, скептицизм, трудности с выражением эмоций.",
	"8": "Восьмерка означает власть, материальный успех, амбиции и управленческие способности. " +
		"Вы стремитесь к достижению целей, обладаете сильной волей и чувством справедливости. " +
		"Ваши сильные стороны: решимость, организаторские способности, умение зарабатывать, практическая польза. " +
		"Возможные слабые стороны: чрезмерный фокус на материальном, жесткость, склонность к манипуляциям, трудности в личной жизни из-за работы.",
	"9": "Девятка символизирует гуманизм, идеализм, сострадание и стремление служить другим. " +
		"Вы чувствительны к страданиям мира и стремитесь внести вклад в общее благо. " +
		"Ваши сильные стороны: сострадание, альтруизм, толерантность, творческий потенциал. " +
		"Возможные слабые стороны: чрезмерная эмоциональность, склонность к жертвенности, разочарование из-за несовершенства мира, трудности с постановкой личных границ.",
	"11": "Одиннадцать - мастер-число, символизирующее интуицию, вдохновение, идеализм и потенциал для духовного пробуждения. " +
		"Вы обладаете острым умом, чувствительны к энергетике окружающих и часто испытываете вдохновение. " +
		"Ваши сильные стороны: высокая интуиция, вдохновляющее лидерство, идеализм, чувствительность. " +
		"Возможные слабые стороны: чрезмерная чувствительность, склонность к иллюзиям, внутренние конфликты из-за высоких идеалов, трудности с заземлением.",
	"22": "Двадцать два - мастер-число, символизирующее мастерство в воплощении великих идей, практичный идеализм и сильное влияние на мир. " +
		"Вы обладаете потенциалом для реализации масштабных проектов и можете вдохновлять других на большие свершения. " +
		"Ваши сильные стороны: практические мечтатели, сильная воля, лидерские качества, способность вдохновлять. " +
		"Возможные слабые стороны: давление высоких ожиданий, трудности с балансом между идеалами и реальностью, склонность к перегрузке.",
	"33": "Тридцать три - редкое мастер-число, символизирующее высшую степень сострадания, мудрости и способности быть учителем и целителем. " +
		"Вы обладаете великодушием и стремлением помогать другим на глубоком уровне. " +
		"Ваши сильные стороны: высокое сострадание, мудрость, вдохновляющее наставничество, целительная энергия. " +
		"Возможные слабые стороны: чрезмерная жертвенность, трудности с установлением личных границ, эмоциональное выгорание из-за заботы о других.",
}

// Describe returns the interpretation of a life number.
func Describe(number string) (string, bool) {
	d, ok := descriptions[number]
	return d, ok
}

// ErrorText maps a LifeNumber error to the text shown to the user.
func ErrorText(err error) string {
	switch {
	case errors.Is(err, ErrNoDate):
		return "❌ Дата рождения не указана."
	case errors.Is(err, ErrFormat):
		return "❌ Неверный формат даты."
	case errors.Is(err, ErrOutOfRange):
		return "❌ Некорректная дата."
	default:
		return "❌ Ошибка при расчёте числа жизни."
	}
}
