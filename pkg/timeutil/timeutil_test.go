package timeutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFullYearsBetween(t *testing.T) {
	tests := []struct {
		name string
		from [3]int
		to   [3]int
		want int
	}{
		{"exact anniversary", [3]int{2000, 6, 1}, [3]int{2021, 6, 1}, 21},
		{"day before anniversary", [3]int{2000, 6, 1}, [3]int{2021, 5, 31}, 20},
		{"day after anniversary", [3]int{2000, 6, 1}, [3]int{2021, 6, 2}, 21},
		{"same day", [3]int{2000, 6, 1}, [3]int{2000, 6, 1}, 0},
		{"under one year", [3]int{2000, 6, 1}, [3]int{2001, 5, 31}, 0},
		{"leap birthday in non-leap year", [3]int{2004, 2, 29}, [3]int{2025, 2, 28}, 20},
		{"leap birthday after Mar 1", [3]int{2004, 2, 29}, [3]int{2025, 3, 1}, 21},
		{"leap birthday in leap year", [3]int{2004, 2, 29}, [3]int{2024, 2, 29}, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from := Date(tt.from[0], tt.from[1], tt.from[2])
			to := Date(tt.to[0], tt.to[1], tt.to[2])
			assert.Equal(t, tt.want, FullYearsBetween(from, to))
		})
	}
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2026-08-31")

	assert.NoError(t, err)
	assert.Equal(t, Date(2026, 8, 31), parsed)
	assert.Equal(t, "2026-08-31", FormatDateStr(parsed))

	_, err = ParseDate("31.08.2026")
	assert.Error(t, err)
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 1, DaysBetween(Date(2026, 8, 30), Date(2026, 8, 31)))
	assert.Equal(t, 1, DaysBetween(Date(2026, 8, 31), Date(2026, 8, 30)))
	assert.Equal(t, 0, DaysBetween(Date(2026, 8, 31), Date(2026, 8, 31)))
}

func TestIsSameDay(t *testing.T) {
	assert.True(t, IsSameDay(Date(2026, 8, 31), Date(2026, 8, 31)))
	assert.False(t, IsSameDay(Date(2026, 8, 31), Date(2026, 9, 1)))
}
