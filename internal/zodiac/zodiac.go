package zodiac

// Sign is one of the twelve zodiac signs, named the way users see it.
type Sign string

const (
	Aries       Sign = "Овен"
	Taurus      Sign = "Телец"
	Gemini      Sign = "Близнецы"
	Cancer      Sign = "Рак"
	Leo         Sign = "Лев"
	Virgo       Sign = "Дева"
	Libra       Sign = "Весы"
	Scorpio     Sign = "Скорпион"
	Sagittarius Sign = "Стрелец"
	Capricorn   Sign = "Козерог"
	Aquarius    Sign = "Водолей"
	Pisces      Sign = "Рыбы"

	Unknown Sign = "Неизвестно"
)

// boundary is the first day (inclusive) of a sign inside a month.
type boundary struct {
	month int
	day   int
	sign  Sign
}

// Each month is split in two: days before the boundary belong to the
// previous sign, days from the boundary on belong to the listed one.
var boundaries = [12]boundary{
	{1, 20, Aquarius},
	{2, 19, Pisces},
	{3, 21, Aries},
	{4, 20, Taurus},
	{5, 21, Gemini},
	{6, 21, Cancer},
	{7, 23, Leo},
	{8, 23, Virgo},
	{9, 23, Libra},
	{10, 23, Scorpio},
	{11, 22, Sagittarius},
	{12, 22, Capricorn},
}

var apiCodes = map[Sign]string{
	Aries:       "aries",
	Taurus:      "taurus",
	Gemini:      "gemini",
	Cancer:      "cancer",
	Leo:         "leo",
	Virgo:       "virgo",
	Libra:       "libra",
	Scorpio:     "scorpio",
	Sagittarius: "sagittarius",
	Capricorn:   "capricorn",
	Aquarius:    "aquarius",
	Pisces:      "pisces",
}

var stones = map[Sign]string{
	Aries:       "Яшма",
	Taurus:      "Сердолик",
	Gemini:      "Агат",
	Cancer:      "Изумруд",
	Leo:         "Оникс",
	Virgo:       "Сапфир",
	Libra:       "Опал",
	Scorpio:     "Топаз",
	Sagittarius: "Аметист",
	Capricorn:   "Гранат",
	Aquarius:    "Гелиодор (золотистый берилл)",
	Pisces:      "Аквамарин",
}

// Resolve maps a day and month to a sign. It does not check that the day
// exists in the month (31 April resolves like 30 April); values outside
// 1..31 / 1..12 yield Unknown.
func Resolve(day, month int) Sign {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return Unknown
	}
	b := boundaries[month-1]
	if day >= b.day {
		return b.sign
	}
	prev := boundaries[(month+10)%12]
	return prev.sign
}

// APICode returns the lowercase english code used by third-party APIs.
func APICode(s Sign) (string, bool) {
	code, ok := apiCodes[s]
	return code, ok
}

// Stone returns the gemstone associated with the sign.
func Stone(s Sign) string {
	if stone, ok := stones[s]; ok {
		return stone
	}
	return "Неизвестен"
}

// Valid reports whether s is one of the twelve signs.
func (s Sign) Valid() bool {
	_, ok := apiCodes[s]
	return ok
}

func (s Sign) String() string { return string(s) }

// All returns the signs in calendar order starting with Aries.
func All() []Sign {
	return []Sign{Aries, Taurus, Gemini, Cancer, Leo, Virgo, Libra, Scorpio, Sagittarius, Capricorn, Aquarius, Pisces}
}
