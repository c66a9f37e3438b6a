package datepicker

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alexisbeaulieu97/granular/internal/calendar"
	"github.com/alexisbeaulieu97/granular/internal/picker"
	"github.com/alexisbeaulieu97/granular/internal/theme"
	"github.com/alexisbeaulieu97/granular/internal/tui/tuitest"
)

func TestView_Calendar(t *testing.T) {
	m := New(picker.DateOptions{Initial: calendar.NewDate(2024, time.February, 10), Clock: fixedNow}, theme.Theme{})

	out := tuitest.Plain(m)
	assert.Contains(t, out, "Sat, Feb 10")
	assert.Contains(t, out, "February 2024")
	assert.Contains(t, out, "‹")
	assert.Contains(t, out, "›")
	assert.Contains(t, out, "CANCEL")
	assert.Contains(t, out, "OK")
	assert.Contains(t, out, "29")
	assert.NotContains(t, out, "30")

	var weekdays string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "M") && strings.Contains(line, "W") && strings.Contains(line, "F") {
			weekdays = line
			break
		}
	}
	assert.Equal(t, "MTWTFSS", strings.Join(strings.Fields(strings.Trim(weekdays, "│ ")), ""))
}

func TestView_MonthGridRows(t *testing.T) {
	m := New(picker.DateOptions{Initial: calendar.NewDate(2024, time.February, 10), Clock: fixedNow}, theme.Theme{})

	var firstWeek string
	for _, line := range strings.Split(tuitest.Plain(m), "\n") {
		fields := strings.Fields(strings.Trim(line, "│ "))
		if len(fields) > 0 && fields[0] == "1" {
			firstWeek = strings.Join(fields, " ")
			break
		}
	}
	// February 2024 starts on a Thursday.
	assert.Equal(t, "1 2 3 4", firstWeek)
}

func TestView_YearList(t *testing.T) {
	m := New(picker.DateOptions{Initial: calendar.NewDate(2024, time.February, 10), Clock: fixedNow}, theme.Theme{})

	next, _ := tuitest.Press(m, "y", "2", "0", "3")
	out := tuitest.Plain(next)
	assert.Contains(t, out, "Select year: 203")
	assert.Contains(t, out, "2030")
	assert.NotContains(t, out, "February 2024")
	assert.Contains(t, out, "filter")

	next, _ = tuitest.Press(next, "9", "9")
	assert.Contains(t, tuitest.Plain(next), "no matching years")
}

func TestView_YearListWindowFollowsFocus(t *testing.T) {
	m := New(picker.DateOptions{Initial: calendar.NewDate(1950, time.June, 1), Clock: fixedNow}, theme.Theme{})

	next, _ := tuitest.Press(m, "y")
	out := tuitest.Plain(next)
	assert.Contains(t, out, "1950")
	assert.NotContains(t, out, "2050")

	keys := make([]string, 0, 40)
	for range 40 {
		keys = append(keys, "down")
	}
	next, _ = tuitest.Press(next, keys...)
	out = tuitest.Plain(next)
	assert.Contains(t, out, "2049")
	assert.NotContains(t, out, "1950")
}
