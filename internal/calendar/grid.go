package calendar

import (
	"fmt"
	"iter"
	"slices"
	"time"
)

// DaysPerWeek is the width of a month grid.
const DaysPerWeek = 7

// DayCell is one position of a rendered month grid: either a placeholder
// used to align day 1 under its weekday, or a concrete day.
type DayCell struct {
	Key         string
	Day         int
	Date        Date
	Placeholder bool
	Today       bool
	Selected    bool
	Weekend     bool
}

// DaysInMonth returns the number of days in month using the "day 0 of the
// following month" normalisation, so leap years come for free.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// LeadingPlaceholders returns how many blank cells precede day 1 in a
// Monday-first grid: Monday is 0 and Sunday is 6.
func LeadingPlaceholders(p Period) int {
	wd := p.First().Weekday()
	if wd == time.Sunday {
		return 6
	}
	return int(wd) - 1
}

// MonthCells yields the grid for p: leading placeholders then one cell per
// day. No trailing placeholders are produced. The sequence is recomputed
// from scratch on every iteration.
func MonthCells(p Period, selected, today Date) iter.Seq[DayCell] {
	return func(yield func(DayCell) bool) {
		leading := LeadingPlaceholders(p)
		for i := range leading {
			if !yield(placeholder(i)) {
				return
			}
		}

		days := DaysInMonth(p.Year, p.Month)
		for day := 1; day <= days; day++ {
			date := Date{Year: p.Year, Month: p.Month, Day: day}
			cell := DayCell{
				Key:      "day-" + date.String(),
				Day:      day,
				Date:     date,
				Today:    date.Equal(today),
				Selected: date.Equal(selected),
				Weekend:  date.IsWeekend(),
			}
			if !yield(cell) {
				return
			}
		}
	}
}

// BuildMonthGrid collects MonthCells into a slice.
func BuildMonthGrid(p Period, selected, today Date) []DayCell {
	return slices.Collect(MonthCells(p, selected, today))
}

// Weeks splits cells into rows of seven. The final row is padded with
// placeholders so every row is full; padded keys continue the ph-N series.
func Weeks(cells []DayCell) [][]DayCell {
	if len(cells) == 0 {
		return nil
	}

	next := 0
	for _, c := range cells {
		if c.Placeholder {
			next++
		}
	}

	padded := slices.Clone(cells)
	for len(padded)%DaysPerWeek != 0 {
		padded = append(padded, placeholder(next))
		next++
	}

	return slices.Collect(slices.Chunk(padded, DaysPerWeek))
}

// IndexOf returns the grid position of d in cells, or -1.
func IndexOf(cells []DayCell, d Date) int {
	return slices.IndexFunc(cells, func(c DayCell) bool {
		return !c.Placeholder && c.Date.Equal(d)
	})
}

// Weekday is a column heading of the month grid.
type Weekday struct {
	Label   string
	Weekend bool
}

// Weekdays returns the Monday-first column headings.
func Weekdays() []Weekday {
	return []Weekday{
		{Label: "M"}, {Label: "T"}, {Label: "W"}, {Label: "T"}, {Label: "F"},
		{Label: "S", Weekend: true}, {Label: "S", Weekend: true},
	}
}

func placeholder(i int) DayCell {
	return DayCell{Key: fmt.Sprintf("ph-%d", i), Placeholder: true}
}
