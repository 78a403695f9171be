package calendar

import "time"

// MonthGrid returns the weeks of a month as rows of day numbers, Sunday
// first. Days outside the month are 0.
func MonthGrid(year int, month time.Month) [][]int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := first.AddDate(0, 1, -1).Day()

	var weeks [][]int
	week := make([]int, 7)
	col := int(first.Weekday())
	for day := 1; day <= days; day++ {
		week[col] = day
		col++
		if col == 7 {
			weeks = append(weeks, week)
			week = make([]int, 7)
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, week)
	}
	return weeks
}

// adjacentMonths returns the previous and next month of year/month.
func adjacentMonths(year int, month time.Month) (MonthRef, MonthRef) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	prev := first.AddDate(0, -1, 0)
	next := first.AddDate(0, 1, 0)
	return MonthRef{Year: prev.Year(), Month: int(prev.Month())},
		MonthRef{Year: next.Year(), Month: int(next.Month())}
}
