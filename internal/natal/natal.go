// Package natal builds deep links to an external natal chart calculator.
// The calculator page is never fetched, only linked.
package natal

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/Bossofgyms/newbot/internal/validate"
)

const baseURL = "https://ru.astro-seek.com/vychislit-natalnaya-karta/"

// Place is a birth location as the calculator expects it. Only the default
// city carries real coordinates; any other city name is passed as a label
// with the default coordinates.
type Place struct {
	City        string
	CountryCode string
	LatDeg      int
	LatMin      int
	LatDir      int
	LonDeg      int
	LonMin      int
	LonDir      int
}

var DefaultPlace = Place{
	City:        "Краснодар",
	CountryCode: "RU",
	LatDeg:      45,
	LatMin:      3,
	LonDeg:      38,
	LonMin:      59,
}

const defaultTime = "00:00"

var ErrDateFormat = errors.New("natal: birth date is not in dd.mm.yyyy format")

// Chart is the result of BuildLink: a text summary and the calculator URL.
type Chart struct {
	Summary string
	URL     string
}

// BuildLink builds the chart summary and link. Empty or "-" time and place
// fall back to midnight and DefaultPlace.
func BuildLink(date, birthTime, birthPlace string) (Chart, error) {
	parts := strings.Split(date, ".")
	if len(parts) != 3 {
		return Chart{}, ErrDateFormat
	}
	day, errD := strconv.Atoi(parts[0])
	month, errM := strconv.Atoi(parts[1])
	if errD != nil || errM != nil {
		return Chart{}, ErrDateFormat
	}
	year := parts[2]

	hour, minute := parseClock(birthTime)

	place := DefaultPlace
	if known(birthPlace) {
		place.City = birthPlace
	}

	lines := []string{
		"📊 Натальная карта",
		"🎂 Дата рождения: " + date,
	}
	if known(birthTime) {
		lines = append(lines, "⏰ Время рождения: "+birthTime)
	} else {
		lines = append(lines, "⏰ Время рождения: "+defaultTime+" (по умолчанию)")
	}
	if known(birthPlace) {
		lines = append(lines, "📍 Место рождения: "+birthPlace)
	} else {
		lines = append(lines, "📍 Место рождения: "+DefaultPlace.City+" (по умолчанию)")
	}
	lines = append(lines,
		"",
		"💡 Советы:",
		"• Для точного расчета укажите точное время рождения",
		"• Если не знаете время, используйте 12:00",
		"• Место рождения влияет на точность расчетов",
	)

	return Chart{
		Summary: strings.Join(lines, "\n"),
		URL:     chartURL(day, month, year, hour, minute, place),
	}, nil
}

func known(v string) bool {
	return v != "" && v != validate.Unknown
}

// parseClock returns zero-padded hour and minute, or 00/00 when the value
// is missing or malformed.
func parseClock(v string) (string, string) {
	if !known(v) {
		return "00", "00"
	}
	parts := strings.Split(v, ":")
	if len(parts) < 2 {
		return "00", "00"
	}
	h, errH := strconv.Atoi(parts[0])
	m, errM := strconv.Atoi(parts[1])
	if errH != nil || errM != nil {
		return "00", "00"
	}
	return fmt.Sprintf("%02d", h), fmt.Sprintf("%02d", m)
}

// quote percent-encodes a value the way the calculator expects spaces (%20, not +).
func quote(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func chartURL(day, month int, year, hour, minute string, p Place) string {
	city := quote(p.City)
	params := []string{
		"edit_input_data=1",
		"natal_input=1",
		"send_calculation=1",
		fmt.Sprintf("narozeni_den=%d", day),
		fmt.Sprintf("narozeni_mesic=%d", month),
		"narozeni_rok=" + year,
		"narozeni_hodina=" + hour,
		"narozeni_minuta=" + minute,
		"narozeni_city=" + city + "%2C+" + p.CountryCode,
		"narozeni_mesto_hidden=" + city,
		"narozeni_stat_hidden=" + p.CountryCode,
		"narozeni_podstat_kratky_hidden=",
		fmt.Sprintf("narozeni_sirka_stupne=%d", p.LatDeg),
		fmt.Sprintf("narozeni_sirka_minuty=%d", p.LatMin),
		fmt.Sprintf("narozeni_sirka_smer=%d", p.LatDir),
		fmt.Sprintf("narozeni_delka_stupne=%d", p.LonDeg),
		fmt.Sprintf("narozeni_delka_minuty=%d", p.LonMin),
		fmt.Sprintf("narozeni_delka_smer=%d", p.LonDir),
		"narozeni_timezone_form=auto",
		"narozeni_timezone_dst_form=auto",
		"house_system=placidus",
		"hid_fortune=1",
		"hid_fortune_check=on",
		"hid_chiron=1",
		"hid_chiron_check=on",
		"hid_lilith=1",
		"hid_lilith_check=on",
		"hid_uzel=1",
		"hid_uzel_check=on",
		"tolerance=1",
		"tolerance_paral=1.2",
	}
	return baseURL + "?" + strings.Join(params, "&")
}
