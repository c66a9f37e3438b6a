package calendar

import "fmt"

// UnitCell is one entry of the hour or minute list of a time picker.
// Value is always the 24-hour hour or the minute.
type UnitCell struct {
	Key      string
	Value    int
	Label    string
	Selected bool
}

// HourCells lists selectable hours. In 24-hour mode that is 00-23; in
// 12-hour mode it is 12, 1 ... 11 within the selected time's meridiem.
func HourCells(selected TimeOfDay, use24Hour bool) []UnitCell {
	if use24Hour {
		cells := make([]UnitCell, 0, 24)
		for h := range 24 {
			cells = append(cells, UnitCell{
				Key:      fmt.Sprintf("hour-%02d", h),
				Value:    h,
				Label:    fmt.Sprintf("%02d", h),
				Selected: h == selected.Hour(),
			})
		}
		return cells
	}

	offset := 0
	if selected.Meridiem() == PM {
		offset = 12
	}
	cells := make([]UnitCell, 0, 12)
	for i := range 12 {
		h := i + offset
		cells = append(cells, UnitCell{
			Key:      fmt.Sprintf("hour-%02d", h),
			Value:    h,
			Label:    fmt.Sprintf("%d", TimeOfDay{hour: h}.Hour12()),
			Selected: h == selected.Hour(),
		})
	}
	return cells
}

// MinuteCells lists minutes 0, step, 2*step ... below 60. A step that is
// not positive is treated as 1.
func MinuteCells(selected TimeOfDay, step int) []UnitCell {
	if step <= 0 {
		step = 1
	}
	cells := make([]UnitCell, 0, 60/step+1)
	for m := 0; m < 60; m += step {
		cells = append(cells, UnitCell{
			Key:      fmt.Sprintf("minute-%02d", m),
			Value:    m,
			Label:    fmt.Sprintf("%02d", m),
			Selected: m == selected.Minute(),
		})
	}
	return cells
}

// SnapMinute rounds minute down to the nearest multiple of step.
func SnapMinute(minute, step int) int {
	if step <= 1 {
		return minute
	}
	return minute - minute%step
}
