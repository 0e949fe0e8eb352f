package astro

import (
	"time"

	"github.com/Bossofgyms/newbot/internal/zodiac"
)

type Phase string

const (
	NewMoon        Phase = "Новолуние"
	WaxingCrescent Phase = "Молодая луна"
	FirstQuarter   Phase = "Первая четверть"
	WaxingGibbous  Phase = "Прибывающая луна"
	FullMoon       Phase = "Полнолуние"
	WaningGibbous  Phase = "Убывающая луна"
	LastQuarter    Phase = "Последняя четверть"
	WaningCrescent Phase = "Старая луна"
)

// phaseEnds holds the last day of the month covered by each phase.
var phaseEnds = [8]struct {
	lastDay int
	phase   Phase
}{
	{3, NewMoon},
	{7, WaxingCrescent},
	{10, FirstQuarter},
	{14, WaxingGibbous},
	{17, FullMoon},
	{21, WaningGibbous},
	{24, LastQuarter},
	{28, WaningCrescent},
}

var phaseDescriptions = map[Phase]string{
	NewMoon:        "🌑 Новолуние - время новых начинаний, внутренней работы и постановки целей. Энергия внутренняя, заряжайтесь идеями.",
	WaxingCrescent: "🌒 Молодая луна - фаза роста и первых шагов. Начинайте воплощать идеи в жизнь, энергия набирает силу.",
	FirstQuarter:   "🌓 Первая четверть - время действий и преодоления первых препятствий. Требуется настойчивость.",
	WaxingGibbous:  "🌔 Прибывающая луна - продолжайте работу, энергия сильна. Подходит для развития и доработки проектов.",
	FullMoon:       "🌕 Полнолуние - пик энергии и эмоций. Видны результаты, но возможны перегрузы. Хорошее время для завершения.",
	WaningGibbous:  "🌖 Убывающая луна - фаза спада. Начинайте отпускать, завершать дела, уменьшайте активность.",
	LastQuarter:    "🌗 Последняя четверть - время очищения и подготовки. Может быть напряжённой, но необходимой для обновления.",
	WaningCrescent: "🌘 Старая луна - глубокий отдых и внутренний анализ перед новым циклом. Подходит для медитации и планирования.",
}

// Description returns the user-facing line for the phase.
func (p Phase) Description() string {
	if d, ok := phaseDescriptions[p]; ok {
		return d
	}
	return "🌕 Луна в фазе " + string(p)
}

// span is an inclusive month/day range inside one calendar year.
type span struct {
	fromMonth, fromDay int
	toMonth, toDay     int
}

func (s span) contains(month, day int) bool {
	v := month*100 + day
	return v >= s.fromMonth*100+s.fromDay && v <= s.toMonth*100+s.toDay
}

// Approximate retrograde windows. The December window runs into the
// January one of the following year.
var retrogradeWindows = []span{
	{1, 1, 1, 25},
	{5, 14, 6, 4},
	{9, 6, 9, 26},
	{12, 30, 12, 31},
}

// Heuristic is the table-driven Calendar.
type Heuristic struct{}

func (Heuristic) SunSign(t time.Time) zodiac.Sign {
	return zodiac.Resolve(t.Day(), int(t.Month()))
}

// MoonPhase buckets the day of month into roughly 3-4 day phases; days
// after the 28th wrap to a new moon.
func (Heuristic) MoonPhase(t time.Time) Phase {
	day := t.Day()
	for _, p := range phaseEnds {
		if day <= p.lastDay {
			return p.phase
		}
	}
	return NewMoon
}

func (Heuristic) MercuryRetrograde(t time.Time) bool {
	month, day := int(t.Month()), t.Day()
	for _, w := range retrogradeWindows {
		if w.contains(month, day) {
			return true
		}
	}
	return false
}
