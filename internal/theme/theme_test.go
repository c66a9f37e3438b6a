package theme

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultColors(t *testing.T) {
	t.Parallel()

	th := Default()
	require.Equal(t, "#007AFF", th.Primary)
	require.Equal(t, "#E8F0FE", th.Secondary)
	require.Equal(t, "#333333", th.Text)
	require.Equal(t, "#555555", th.Arrow)
	require.True(t, th.Date.DayText.IsZero())
}

func TestOverrideColorsKeepsUnset(t *testing.T) {
	t.Parallel()

	th := Default().Override(Theme{Colors: Colors{Primary: "#28a745"}})
	require.Equal(t, "#28a745", th.Primary)
	require.Equal(t, "#E8F0FE", th.Secondary)
	require.Equal(t, "#333333", th.Text)
}

func TestOverrideMergesRegions(t *testing.T) {
	t.Parallel()

	first := Theme{Date: DateRegions{DayText: Style{Bold: Ptr(true), Foreground: Ptr("#111111")}}}
	second := Theme{
		Date: DateRegions{DayText: Style{Foreground: Ptr("#222222")}},
		Time: TimeRegions{SelectedUnitContainer: Bg("#28a745")},
	}

	th := Default().Override(first).Override(second)
	require.True(t, *th.Date.DayText.Bold)
	require.Equal(t, "#222222", *th.Date.DayText.Foreground)
	require.Equal(t, "#28a745", *th.Time.SelectedUnitContainer.Background)
	require.True(t, th.Date.TodayText.IsZero())
}
