package export

import (
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-ical"

	"github.com/alexisbeaulieu97/granular/internal/calendar"
	granularerrors "github.com/alexisbeaulieu97/granular/pkg/errors"
)

const icsProductID = "-//granular//date picker//EN"

// writeICS emits a calendar holding one all-day event on the selected date.
func writeICS(w io.Writer, sel Selection, clock calendar.Clock) error {
	if sel.Date == nil {
		return granularerrors.NewValidationError("format", "ics output needs a date selection", nil)
	}
	if clock == nil {
		clock = calendar.SystemClock{}
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, icsProductID)

	day := sel.Date.Time(time.UTC)
	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, fmt.Sprintf("%s@granular", sel.Date.String()))
	stamp := ical.NewProp(ical.PropDateTimeStamp)
	stamp.SetDateTime(clock.Now().UTC())
	event.Props.Set(stamp)
	event.Props.SetText(ical.PropSummary, sel.Display)

	start := ical.NewProp(ical.PropDateTimeStart)
	start.SetDate(day)
	event.Props.Set(start)

	end := ical.NewProp(ical.PropDateTimeEnd)
	end.SetDate(day.AddDate(0, 0, 1))
	event.Props.Set(end)

	cal.Children = append(cal.Children, event.Component)

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("encode ics: %w", err)
	}
	return nil
}
