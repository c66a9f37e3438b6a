package datepicker

import "github.com/alexisbeaulieu97/granular/internal/calendar"

// ConfirmedMsg is emitted after the user accepts a date.
type ConfirmedMsg struct {
	Date calendar.Date
}

// CancelledMsg is emitted after the user dismisses the picker.
type CancelledMsg struct{}
