package numerology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifeNumber(t *testing.T) {
	cases := []struct {
		date string
		want string
	}{
		{"31.07.1990", "3"}, // 2028 -> 12 -> 3
		{"02.11.1991", "6"}, // 2004 -> 6
		{"01.01.1900", "3"}, // 1902 -> 12 -> 3
		{"09.09.2002", "4"}, // 2020 -> 4
		{"1.1.2027", "4"},   // 2029 -> 13 -> 4
	}
	for _, c := range cases {
		got, err := LifeNumber(c.date)
		require.NoError(t, err, c.date)
		assert.Equal(t, c.want, got, c.date)
	}
}

func TestLifeNumberStopsAtMasterNumbers(t *testing.T) {
	// 29 + 9 + 1901 = 1939 -> 22
	got, err := LifeNumber("29.09.1901")
	require.NoError(t, err)
	assert.Equal(t, "22", got)

	// 2 + 8 + 1900 = 1910 -> 11
	got, err = LifeNumber("02.08.1900")
	require.NoError(t, err)
	assert.Equal(t, "11", got)
}

func TestLifeNumberErrors(t *testing.T) {
	_, err := LifeNumber("")
	assert.ErrorIs(t, err, ErrNoDate)

	_, err = LifeNumber("31.07")
	assert.ErrorIs(t, err, ErrFormat)

	_, err = LifeNumber("aa.07.1990")
	assert.ErrorIs(t, err, ErrFormat)

	_, err = LifeNumber("31.07.1899")
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = LifeNumber("32.07.1990")
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestDescribe(t *testing.T) {
	for _, n := range []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "11", "22", "33"} {
		d, ok := Describe(n)
		assert.True(t, ok, n)
		assert.NotEmpty(t, d)
	}
	_, ok := Describe("12")
	assert.False(t, ok)

	assert.Contains(t, ErrorText(ErrFormat), "формат")
	assert.Contains(t, ErrorText(ErrNoDate), "не указана")
}
