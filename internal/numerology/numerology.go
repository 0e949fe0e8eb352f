// Package numerology computes the "life number" of a birth date.
package numerology

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrNoDate     = errors.New("birth date is empty")
	ErrFormat     = errors.New("birth date is not DD.MM.YYYY")
	ErrOutOfRange = errors.New("birth date is out of range")
)

func isMaster(n int) bool {
	return n == 11 || n == 22 || n == 33
}

// LifeNumber sums day, month and year and reduces the total digit by digit
// until a single digit or a master number (11, 22, 33) remains.
func LifeNumber(date string) (string, error) {
	if date == "" {
		return "", ErrNoDate
	}
	parts := strings.Split(date, ".")
	if len(parts) != 3 {
		return "", ErrFormat
	}

	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return "", ErrFormat
		}
		nums[i] = n
	}
	day, month, year := nums[0], nums[1], nums[2]
	if day < 1 || day > 31 || month < 1 || month > 12 || year < 1900 || year > 2030 {
		return "", ErrOutOfRange
	}

	total := day + month + year
	for total > 9 && !isMaster(total) {
		total = digitSum(total)
	}
	return strconv.Itoa(total), nil
}

func digitSum(n int) int {
	sum := 0
	for n > 0 {
		sum += n % 10
		n /= 10
	}
	return sum
}
