package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func countDays(cells []DayCell) int {
	n := 0
	for _, c := range cells {
		if !c.Placeholder {
			n++
		}
	}
	return n
}

func countSelected(cells []DayCell) int {
	n := 0
	for _, c := range cells {
		if c.Selected {
			n++
		}
	}
	return n
}

func TestDaysInMonth(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		year  int
		month time.Month
		want  int
	}{
		{name: "leap february", year: 2024, month: time.February, want: 29},
		{name: "common february", year: 2023, month: time.February, want: 28},
		{name: "century non leap", year: 1900, month: time.February, want: 28},
		{name: "quadricentennial leap", year: 2000, month: time.February, want: 29},
		{name: "april", year: 2024, month: time.April, want: 30},
		{name: "december", year: 2024, month: time.December, want: 31},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, DaysInMonth(tc.year, tc.month))
		})
	}
}

func TestNonPlaceholderCountMatchesDaysInMonth(t *testing.T) {
	t.Parallel()

	for year := 1999; year <= 2025; year++ {
		for month := time.January; month <= time.December; month++ {
			p := Period{Year: year, Month: month}
			cells := BuildMonthGrid(p, Date{}, Date{})
			require.Equal(t, DaysInMonth(year, month), countDays(cells), "%s", p)
			require.Equal(t, LeadingPlaceholders(p)+DaysInMonth(year, month), len(cells), "%s", p)
		}
	}
}

func TestLeadingPlaceholdersMondayFirst(t *testing.T) {
	t.Parallel()

	// January 2024 starts on a Monday, September 2024 on a Sunday,
	// June 2024 on a Saturday.
	require.Equal(t, 0, LeadingPlaceholders(Period{Year: 2024, Month: time.January}))
	require.Equal(t, 6, LeadingPlaceholders(Period{Year: 2024, Month: time.September}))
	require.Equal(t, 5, LeadingPlaceholders(Period{Year: 2024, Month: time.June}))
}

func TestBuildMonthGridFlags(t *testing.T) {
	t.Parallel()

	p := Period{Year: 2024, Month: time.February}
	selected := NewDate(2024, time.February, 14)
	today := NewDate(2024, time.February, 10)

	cells := BuildMonthGrid(p, selected, today)

	// February 2024 starts on a Thursday.
	require.Equal(t, 3, LeadingPlaceholders(p))
	for i := 0; i < 3; i++ {
		require.True(t, cells[i].Placeholder)
		require.Equal(t, "ph-"+string(rune('0'+i)), cells[i].Key)
	}

	first := cells[3]
	require.False(t, first.Placeholder)
	require.Equal(t, 1, first.Day)
	require.Equal(t, "day-2024-02-01", first.Key)
	require.False(t, first.Weekend)

	sat := cells[IndexOf(cells, NewDate(2024, time.February, 3))]
	sun := cells[IndexOf(cells, NewDate(2024, time.February, 4))]
	require.True(t, sat.Weekend)
	require.True(t, sun.Weekend)

	require.True(t, cells[IndexOf(cells, today)].Today)
	require.True(t, cells[IndexOf(cells, selected)].Selected)
	require.Equal(t, 1, countSelected(cells))
}

func TestSelectedOnlyWithinVisibleMonth(t *testing.T) {
	t.Parallel()

	selected := NewDate(2024, time.March, 1)
	require.Equal(t, 1, countSelected(BuildMonthGrid(Period{Year: 2024, Month: time.March}, selected, Date{})))
	require.Equal(t, 0, countSelected(BuildMonthGrid(Period{Year: 2024, Month: time.February}, selected, Date{})))
	require.Equal(t, 0, countSelected(BuildMonthGrid(Period{Year: 2025, Month: time.March}, selected, Date{})))
}

func TestKeysAreUnique(t *testing.T) {
	t.Parallel()

	cells := BuildMonthGrid(Period{Year: 2024, Month: time.September}, Date{}, Date{})
	seen := map[string]bool{}
	for _, row := range Weeks(cells) {
		for _, c := range row {
			require.False(t, seen[c.Key], "duplicate key %s", c.Key)
			seen[c.Key] = true
		}
	}
}

func TestMonthCellsStopsEarly(t *testing.T) {
	t.Parallel()

	n := 0
	for range MonthCells(Period{Year: 2024, Month: time.September}, Date{}, Date{}) {
		n++
		if n == 8 {
			break
		}
	}
	require.Equal(t, 8, n)
}

func TestWeeksPadsLastRow(t *testing.T) {
	t.Parallel()

	for month := time.January; month <= time.December; month++ {
		p := Period{Year: 2024, Month: month}
		cells := BuildMonthGrid(p, Date{}, Date{})
		rows := Weeks(cells)

		total := LeadingPlaceholders(p) + DaysInMonth(p.Year, p.Month)
		wantRows := (total + DaysPerWeek - 1) / DaysPerWeek
		require.Len(t, rows, wantRows, "%s", p)
		for _, row := range rows {
			require.Len(t, row, DaysPerWeek)
		}
	}

	// February 2021 starts on Monday and fills exactly four rows.
	require.Len(t, Weeks(BuildMonthGrid(Period{Year: 2021, Month: time.February}, Date{}, Date{})), 4)
	require.Nil(t, Weeks(nil))
}

func TestWeekdaysMondayFirst(t *testing.T) {
	t.Parallel()

	days := Weekdays()
	require.Len(t, days, DaysPerWeek)
	require.Equal(t, "M", days[0].Label)
	require.True(t, days[5].Weekend)
	require.True(t, days[6].Weekend)
	require.False(t, days[4].Weekend)
}
