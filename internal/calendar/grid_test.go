package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthGrid(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     time.Month
		weeks     int
		firstWeek []int
		lastWeek  []int
	}{
		{
			name:      "starts on wednesday",
			year:      2025,
			month:     time.January,
			weeks:     5,
			firstWeek: []int{0, 0, 0, 1, 2, 3, 4},
			lastWeek:  []int{26, 27, 28, 29, 30, 31, 0},
		},
		{
			name:      "february fitting four full weeks",
			year:      2026,
			month:     time.February,
			weeks:     4,
			firstWeek: []int{1, 2, 3, 4, 5, 6, 7},
			lastWeek:  []int{22, 23, 24, 25, 26, 27, 28},
		},
		{
			name:      "leap february",
			year:      2024,
			month:     time.February,
			weeks:     5,
			firstWeek: []int{0, 0, 0, 0, 1, 2, 3},
			lastWeek:  []int{25, 26, 27, 28, 29, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			weeks := MonthGrid(tt.year, tt.month)

			assert.Len(t, weeks, tt.weeks)
			assert.Equal(t, tt.firstWeek, weeks[0])
			assert.Equal(t, tt.lastWeek, weeks[len(weeks)-1])
		})
	}
}

func TestAdjacentMonths(t *testing.T) {
	prev, next := adjacentMonths(2025, time.January)
	assert.Equal(t, MonthRef{Year: 2024, Month: 12}, prev)
	assert.Equal(t, MonthRef{Year: 2025, Month: 2}, next)

	prev, next = adjacentMonths(2025, time.December)
	assert.Equal(t, MonthRef{Year: 2025, Month: 11}, prev)
	assert.Equal(t, MonthRef{Year: 2026, Month: 1}, next)
}
