package timepicker

import "github.com/alexisbeaulieu97/granular/internal/calendar"

// ConfirmedMsg is emitted after the user accepts a time.
type ConfirmedMsg struct {
	Time calendar.TimeOfDay
}

// CancelledMsg is emitted after the user dismisses the picker.
type CancelledMsg struct{}
