package calendar

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	granularerrors "github.com/alexisbeaulieu97/granular/pkg/errors"
)

func TestNewDateNormalisesOverflow(t *testing.T) {
	t.Parallel()

	require.Equal(t, Date{Year: 2023, Month: time.March, Day: 1}, NewDate(2023, time.February, 29))
	require.Equal(t, Date{Year: 2024, Month: time.February, Day: 29}, NewDate(2024, time.February, 29))
	require.Equal(t, Date{Year: 2023, Month: time.December, Day: 31}, NewDate(2024, time.January, 0))
}

func TestDateEqualityIgnoresTimeOfDay(t *testing.T) {
	t.Parallel()

	morning := DateOf(time.Date(2024, time.May, 5, 6, 0, 0, 0, time.Local))
	evening := DateOf(time.Date(2024, time.May, 5, 23, 59, 0, 0, time.Local))
	require.True(t, morning.Equal(evening))
	require.False(t, morning.Equal(morning.AddDays(1)))
	require.True(t, morning.Before(morning.AddDays(1)))
	require.False(t, morning.Before(morning))
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	d, err := ParseDate("2024-02-10")
	require.NoError(t, err)
	require.Equal(t, NewDate(2024, time.February, 10), d)
	require.Equal(t, "2024-02-10", d.String())
	require.Equal(t, "Sat, Feb 10", d.Label())

	_, err = ParseDate("10/02/2024")
	var parseErr *granularerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "10/02/2024", parseErr.Source)
}

func TestDateTextRoundTripInJSON(t *testing.T) {
	t.Parallel()

	payload := struct {
		Date Date `json:"date"`
	}{Date: NewDate(1999, time.December, 31)}

	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	require.JSONEq(t, `{"date":"1999-12-31"}`, string(raw))

	var decoded struct {
		Date Date `json:"date"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Equal(t, payload.Date, decoded.Date)
}

func TestPeriodShift(t *testing.T) {
	t.Parallel()

	p := Period{Year: 2024, Month: time.January}
	require.Equal(t, Period{Year: 2023, Month: time.December}, p.Shift(-1))
	require.Equal(t, Period{Year: 2024, Month: time.February}, p.Shift(1))
	require.Equal(t, Period{Year: 2025, Month: time.January}, p.Shift(12))
	require.Equal(t, Period{Year: 2020, Month: time.January}, p.WithYear(2020))
	require.Equal(t, "January 2024", p.String())
	require.Equal(t, 31, p.Last().Day)
	require.True(t, p.Contains(p.First()))
	require.False(t, p.Contains(p.Shift(1).First()))
}

func TestToday(t *testing.T) {
	t.Parallel()

	clock := FixedClock(time.Date(2026, time.October, 18, 15, 30, 0, 0, time.Local))
	require.Equal(t, NewDate(2026, time.October, 18), Today(clock))
	require.False(t, Today(nil).IsZero())
}
