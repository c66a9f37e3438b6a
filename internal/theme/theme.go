package theme

import "reflect"

// Colors are the theme-wide colour props. Region defaults are derived from
// them, so changing Primary recolours the selected day, the header, the
// buttons and the selected year at once.
type Colors struct {
	Primary    string `yaml:"primary_color,omitempty" json:"primary_color,omitempty" validate:"omitempty,color"`
	Secondary  string `yaml:"secondary_color,omitempty" json:"secondary_color,omitempty" validate:"omitempty,color"`
	Text       string `yaml:"text_color,omitempty" json:"text_color,omitempty" validate:"omitempty,color"`
	HeaderText string `yaml:"header_text_color,omitempty" json:"header_text_color,omitempty" validate:"omitempty,color"`
	Arrow      string `yaml:"arrow_color,omitempty" json:"arrow_color,omitempty" validate:"omitempty,color"`
	Surface    string `yaml:"surface_color,omitempty" json:"surface_color,omitempty" validate:"omitempty,color"`
	Muted      string `yaml:"muted_color,omitempty" json:"muted_color,omitempty" validate:"omitempty,color"`
	Divider    string `yaml:"divider_color,omitempty" json:"divider_color,omitempty" validate:"omitempty,color"`
	OnPrimary  string `yaml:"on_primary_color,omitempty" json:"on_primary_color,omitempty" validate:"omitempty,color"`
}

// DateRegions holds one caller override per visual region of the date
// picker. Container regions carry box properties (background, border,
// padding); text regions carry glyph properties. Both are merged into the
// final cell style, container first.
type DateRegions struct {
	Container                      Style `yaml:"container" json:"container"`
	SelectedDateHeader             Style `yaml:"selected_date_header" json:"selected_date_header"`
	SelectedDateHeaderText         Style `yaml:"selected_date_header_text" json:"selected_date_header_text"`
	MonthNavigationContainer       Style `yaml:"month_navigation_container" json:"month_navigation_container"`
	MonthNavigationText            Style `yaml:"month_navigation_text" json:"month_navigation_text"`
	ArrowButton                    Style `yaml:"arrow_button" json:"arrow_button"`
	ArrowIcon                      Style `yaml:"arrow_icon" json:"arrow_icon"`
	DayOfWeekContainer             Style `yaml:"day_of_week_container" json:"day_of_week_container"`
	DayOfWeekText                  Style `yaml:"day_of_week_text" json:"day_of_week_text"`
	DayContainer                   Style `yaml:"day_container" json:"day_container"`
	DayText                        Style `yaml:"day_text" json:"day_text"`
	TodayContainer                 Style `yaml:"today_container" json:"today_container"`
	TodayText                      Style `yaml:"today_text" json:"today_text"`
	SelectedDayContainer           Style `yaml:"selected_day_container" json:"selected_day_container"`
	SelectedDayText                Style `yaml:"selected_day_text" json:"selected_day_text"`
	WeekendText                    Style `yaml:"weekend_text" json:"weekend_text"`
	FocusedDay                     Style `yaml:"focused_day" json:"focused_day"`
	CancelButton                   Style `yaml:"cancel_button" json:"cancel_button"`
	CancelButtonText               Style `yaml:"cancel_button_text" json:"cancel_button_text"`
	OKButton                       Style `yaml:"ok_button" json:"ok_button"`
	OKButtonText                   Style `yaml:"ok_button_text" json:"ok_button_text"`
	YearSelectorContainer          Style `yaml:"year_selector_container" json:"year_selector_container"`
	YearSelectorButton             Style `yaml:"year_selector_button" json:"year_selector_button"`
	YearSelectorButtonText         Style `yaml:"year_selector_button_text" json:"year_selector_button_text"`
	SelectedYearSelectorButton     Style `yaml:"selected_year_selector_button" json:"selected_year_selector_button"`
	SelectedYearSelectorButtonText Style `yaml:"selected_year_selector_button_text" json:"selected_year_selector_button_text"`
}

// TimeRegions holds one caller override per visual region of the time
// picker.
type TimeRegions struct {
	Container             Style `yaml:"container" json:"container"`
	Header                Style `yaml:"header" json:"header"`
	HeaderText            Style `yaml:"header_text" json:"header_text"`
	ActiveUnitText        Style `yaml:"active_unit_text" json:"active_unit_text"`
	ListContainer         Style `yaml:"list_container" json:"list_container"`
	UnitContainer         Style `yaml:"unit_container" json:"unit_container"`
	UnitText              Style `yaml:"unit_text" json:"unit_text"`
	SelectedUnitContainer Style `yaml:"selected_unit_container" json:"selected_unit_container"`
	SelectedUnitText      Style `yaml:"selected_unit_text" json:"selected_unit_text"`
	FocusedUnit           Style `yaml:"focused_unit" json:"focused_unit"`
	PeriodButton          Style `yaml:"period_button" json:"period_button"`
	PeriodButtonText      Style `yaml:"period_button_text" json:"period_button_text"`
	SelectedPeriodText    Style `yaml:"selected_period_text" json:"selected_period_text"`
	CancelButton          Style `yaml:"cancel_button" json:"cancel_button"`
	CancelButtonText      Style `yaml:"cancel_button_text" json:"cancel_button_text"`
	OKButton              Style `yaml:"ok_button" json:"ok_button"`
	OKButtonText          Style `yaml:"ok_button_text" json:"ok_button_text"`
}

// Theme bundles colours and caller region overrides for both pickers.
type Theme struct {
	Colors `yaml:",inline"`
	Date   DateRegions `yaml:"date_styles" json:"date_styles"`
	Time   TimeRegions `yaml:"time_styles" json:"time_styles"`
}

// Default returns the built-in colours with no region overrides.
func Default() Theme {
	return Theme{
		Colors: Colors{
			Primary:    "#007AFF",
			Secondary:  "#E8F0FE",
			Text:       "#333333",
			HeaderText: "#333333",
			Arrow:      "#555555",
			Surface:    "#F8F9FA",
			Muted:      "#757575",
			Divider:    "#EEEEEE",
			OnPrimary:  "#FFFFFF",
		},
	}
}

// Override layers o over t: non-empty colours replace t's, and region
// overrides are merged field by field.
func (t Theme) Override(o Theme) Theme {
	t.Colors = t.Colors.Override(o.Colors)
	t.Date = overrideRegions(t.Date, o.Date)
	t.Time = overrideRegions(t.Time, o.Time)
	return t
}

// Override returns c with every non-empty colour of o applied.
func (c Colors) Override(o Colors) Colors {
	pick := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	pick(&c.Primary, o.Primary)
	pick(&c.Secondary, o.Secondary)
	pick(&c.Text, o.Text)
	pick(&c.HeaderText, o.HeaderText)
	pick(&c.Arrow, o.Arrow)
	pick(&c.Surface, o.Surface)
	pick(&c.Muted, o.Muted)
	pick(&c.Divider, o.Divider)
	pick(&c.OnPrimary, o.OnPrimary)
	return c
}

var styleType = reflect.TypeOf(Style{})

// overrideRegions merges every Style field of over into base.
func overrideRegions[T DateRegions | TimeRegions](base, over T) T {
	dst := reflect.ValueOf(&base).Elem()
	src := reflect.ValueOf(over)
	for i := range dst.NumField() {
		field := dst.Field(i)
		if field.Type() != styleType {
			continue
		}
		merged := field.Interface().(Style).Override(src.Field(i).Interface().(Style))
		field.Set(reflect.ValueOf(merged))
	}
	return base
}
