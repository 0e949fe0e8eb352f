// Package validate checks the birth data users type into the chat.
package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Unknown is what a user sends when they do not know their birth time or place.
const Unknown = "-"

const (
	MinYear = 1900
	MaxYear = 2030
)

var (
	dateRx  = regexp.MustCompile(`^\d{1,2}\.\d{1,2}\.\d{4}$`)
	timeRx  = regexp.MustCompile(`^\d{1,2}:\d{2}$`)
	placeRx = regexp.MustCompile(`^[а-яА-ЯёЁa-zA-Z\s\-,.\d]+$`)
)

// InputError explains which field is wrong and why. Reason is shown to the user as is.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return e.Field + ": " + e.Reason
}

func inputErr(field, format string, args ...any) *InputError {
	return &InputError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Date validates a DD.MM.YYYY string and returns its parts.
func Date(s string) (day, month, year int, err error) {
	if s == "" {
		return 0, 0, 0, inputErr("date", "Дата не может быть пустой")
	}
	if !dateRx.MatchString(s) {
		return 0, 0, 0, inputErr("date", "Неверный формат даты. Используйте ДД.ММ.ГГГГ (например: 31.07.1990)")
	}

	parts := strings.Split(s, ".")
	day, _ = strconv.Atoi(parts[0])
	month, _ = strconv.Atoi(parts[1])
	year, _ = strconv.Atoi(parts[2])

	switch {
	case day < 1 || day > 31:
		return 0, 0, 0, inputErr("day", "День должен быть от 1 до 31 (вы ввели: %d)", day)
	case month < 1 || month > 12:
		return 0, 0, 0, inputErr("month", "Месяц должен быть от 1 до 12 (вы ввели: %d)", month)
	case year < MinYear || year > MaxYear:
		return 0, 0, 0, inputErr("year", "Год должен быть от %d до %d (вы ввели: %d)", MinYear, MaxYear, year)
	}

	switch month {
	case 4, 6, 9, 11:
		if day > 30 {
			return 0, 0, 0, inputErr("day", "В этом месяце только 30 дней")
		}
	case 2:
		maxFeb := 28
		if IsLeap(year) {
			maxFeb = 29
		}
		if day > maxFeb {
			return 0, 0, 0, inputErr("day", "В феврале %d года только %d дней", year, maxFeb)
		}
	}

	// both checks must agree
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month || t.Year() != year {
		return 0, 0, 0, inputErr("date", "Некорректная дата (такого дня не существует)")
	}

	return day, month, year, nil
}

// Time validates HH:MM (24h). The Unknown sentinel is always accepted.
func Time(s string) error {
	if s == "" {
		return inputErr("time", "Время не может быть пустым")
	}
	if s == Unknown {
		return nil
	}
	if !timeRx.MatchString(s) {
		return inputErr("time", "Неверный формат времени. Используйте ЧЧ:ММ (например: 14:30) или '-' если не знаете")
	}

	hh, mm, _ := strings.Cut(s, ":")
	hour, _ := strconv.Atoi(hh)
	minute, _ := strconv.Atoi(mm)

	if hour < 0 || hour > 23 {
		return inputErr("hour", "Час должен быть от 0 до 23 (вы ввели: %d)", hour)
	}
	if minute < 0 || minute > 59 {
		return inputErr("minute", "Минуты должны быть от 0 до 59 (вы ввели: %d)", minute)
	}
	return nil
}

// Place accepts the Unknown sentinel or a city name made of letters, digits,
// spaces, hyphens, commas and periods.
func Place(s string) error {
	if strings.TrimSpace(s) == "" {
		return inputErr("place", "Место рождения не может быть пустым. Введите название города или отправьте '-'")
	}
	if s == Unknown {
		return nil
	}
	if !placeRx.MatchString(s) {
		return inputErr("place", "Недопустимые символы в названии города. Используйте буквы, пробелы и дефисы")
	}
	return nil
}

// LooksLikeDate reports whether text has the rough shape of a date
// (three dot-separated parts). It says nothing about validity.
func LooksLikeDate(text string) bool {
	return strings.Contains(text, ".") && len(strings.Split(text, ".")) == 3
}

func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
