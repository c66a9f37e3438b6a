package timepicker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexisbeaulieu97/granular/internal/theme"
	"github.com/alexisbeaulieu97/granular/internal/tui/tuitest"
)

func TestView_TwelveHour(t *testing.T) {
	var rec recorder
	m := New(rec.options(false, 15), theme.Theme{})

	out := tuitest.Plain(m)
	assert.Contains(t, out, "9:30")
	assert.Contains(t, out, "AM")
	assert.Contains(t, out, "PM")
	assert.Contains(t, out, "Hour")
	assert.Contains(t, out, "Min")
	assert.Contains(t, out, "45")
	assert.Contains(t, out, "CANCEL")
	assert.NotContains(t, out, "13")
}

func TestView_TwentyFourHour(t *testing.T) {
	var rec recorder
	m := New(rec.options(true, 1), theme.Theme{})

	out := tuitest.Plain(m)
	assert.Contains(t, out, "09:30")
	assert.NotContains(t, out, "AM")
	assert.Contains(t, out, "12")
}

func TestUnitStyleCascade(t *testing.T) {
	var rec recorder
	m := New(rec.options(false, 1), theme.Theme{
		Colors: theme.Colors{Primary: "#28a745"},
		Time:   theme.TimeRegions{SelectedUnitText: theme.Style{Italic: theme.Ptr(true)}},
	})

	st := m.unitStyle(true, true)
	assert.Equal(t, "#28a745", *st.Background)
	assert.True(t, *st.Italic)
	assert.True(t, *st.Underline)

	plain := m.unitStyle(false, false)
	assert.Equal(t, theme.Default().Text, *plain.Foreground)
	assert.Nil(t, plain.Underline)
}
