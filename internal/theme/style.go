// Package theme implements the style override cascade used by the pickers.
//
// Every visual region is described by a partial Style. Layers are merged
// left to right and the last layer to set a field wins, so a caller can
// replace any subset of properties of a region without touching the rest:
//
//	day := theme.Merge(base, colourDefaults, callerOverride)
//	fmt.Println(day.Render("14"))
//
// Styles are plain values with yaml tags, so a theme can be loaded from the
// configuration file.
package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Style is a partial set of visual properties. Nil fields are unset and
// leave whatever an earlier layer decided.
type Style struct {
	Foreground  *string `yaml:"foreground,omitempty" json:"foreground,omitempty" validate:"omitempty,color"`
	Background  *string `yaml:"background,omitempty" json:"background,omitempty" validate:"omitempty,color"`
	BorderColor *string `yaml:"border_color,omitempty" json:"border_color,omitempty" validate:"omitempty,color"`
	Border      *string `yaml:"border,omitempty" json:"border,omitempty" validate:"omitempty,oneof=none normal rounded thick double hidden"`
	Bold        *bool   `yaml:"bold,omitempty" json:"bold,omitempty"`
	Italic      *bool   `yaml:"italic,omitempty" json:"italic,omitempty"`
	Underline   *bool   `yaml:"underline,omitempty" json:"underline,omitempty"`
	Faint       *bool   `yaml:"faint,omitempty" json:"faint,omitempty"`
	Reverse     *bool   `yaml:"reverse,omitempty" json:"reverse,omitempty"`
	PaddingX    *int    `yaml:"padding_x,omitempty" json:"padding_x,omitempty" validate:"omitempty,min=0,max=10"`
	PaddingY    *int    `yaml:"padding_y,omitempty" json:"padding_y,omitempty" validate:"omitempty,min=0,max=10"`
	MarginX     *int    `yaml:"margin_x,omitempty" json:"margin_x,omitempty" validate:"omitempty,min=0,max=10"`
	MarginY     *int    `yaml:"margin_y,omitempty" json:"margin_y,omitempty" validate:"omitempty,min=0,max=10"`
	Width       *int    `yaml:"width,omitempty" json:"width,omitempty" validate:"omitempty,min=0,max=200"`
	Align       *string `yaml:"align,omitempty" json:"align,omitempty" validate:"omitempty,oneof=left center right"`
}

// Ptr returns a pointer to v. It keeps style literals short.
func Ptr[T any](v T) *T {
	return &v
}

// Merge folds layers left to right; later layers win per field.
func Merge(layers ...Style) Style {
	var out Style
	for _, layer := range layers {
		out = out.Override(layer)
	}
	return out
}

// Override returns s with every field set in o replacing the field of s.
func (s Style) Override(o Style) Style {
	override(&s.Foreground, o.Foreground)
	override(&s.Background, o.Background)
	override(&s.BorderColor, o.BorderColor)
	override(&s.Border, o.Border)
	override(&s.Bold, o.Bold)
	override(&s.Italic, o.Italic)
	override(&s.Underline, o.Underline)
	override(&s.Faint, o.Faint)
	override(&s.Reverse, o.Reverse)
	override(&s.PaddingX, o.PaddingX)
	override(&s.PaddingY, o.PaddingY)
	override(&s.MarginX, o.MarginX)
	override(&s.MarginY, o.MarginY)
	override(&s.Width, o.Width)
	override(&s.Align, o.Align)
	return s
}

func override[T any](dst **T, src *T) {
	if src != nil {
		*dst = src
	}
}

// IsZero reports whether no field is set.
func (s Style) IsZero() bool {
	return s == Style{}
}

// Fg is a layer setting only the foreground colour.
func Fg(color string) Style { return Style{Foreground: &color} }

// Bg is a layer setting only the background colour.
func Bg(color string) Style { return Style{Background: &color} }

// Bold is a layer setting only the bold attribute.
func Bold(on bool) Style { return Style{Bold: &on} }

var borders = map[string]lipgloss.Border{
	"normal":  lipgloss.NormalBorder(),
	"rounded": lipgloss.RoundedBorder(),
	"thick":   lipgloss.ThickBorder(),
	"double":  lipgloss.DoubleBorder(),
	"hidden":  lipgloss.HiddenBorder(),
}

var alignments = map[string]lipgloss.Position{
	"left":   lipgloss.Left,
	"center": lipgloss.Center,
	"right":  lipgloss.Right,
}

// Lipgloss converts the set fields into a lipgloss.Style.
func (s Style) Lipgloss() lipgloss.Style {
	st := lipgloss.NewStyle()

	if s.Foreground != nil {
		st = st.Foreground(lipgloss.Color(*s.Foreground))
	}
	if s.Background != nil {
		st = st.Background(lipgloss.Color(*s.Background))
	}
	if s.Border != nil {
		if b, ok := borders[*s.Border]; ok {
			st = st.Border(b)
			if s.BorderColor != nil {
				st = st.BorderForeground(lipgloss.Color(*s.BorderColor))
			}
			if s.Background != nil {
				st = st.BorderBackground(lipgloss.Color(*s.Background))
			}
		}
	}
	if s.Bold != nil {
		st = st.Bold(*s.Bold)
	}
	if s.Italic != nil {
		st = st.Italic(*s.Italic)
	}
	if s.Underline != nil {
		st = st.Underline(*s.Underline)
	}
	if s.Faint != nil {
		st = st.Faint(*s.Faint)
	}
	if s.Reverse != nil {
		st = st.Reverse(*s.Reverse)
	}
	if s.PaddingX != nil {
		st = st.PaddingLeft(*s.PaddingX).PaddingRight(*s.PaddingX)
	}
	if s.PaddingY != nil {
		st = st.PaddingTop(*s.PaddingY).PaddingBottom(*s.PaddingY)
	}
	if s.MarginX != nil {
		st = st.MarginLeft(*s.MarginX).MarginRight(*s.MarginX)
	}
	if s.MarginY != nil {
		st = st.MarginTop(*s.MarginY).MarginBottom(*s.MarginY)
	}
	if s.Width != nil {
		st = st.Width(*s.Width)
	}
	if s.Align != nil {
		if pos, ok := alignments[*s.Align]; ok {
			st = st.Align(pos)
		}
	}
	return st
}

// Render is shorthand for s.Lipgloss().Render(text).
func (s Style) Render(text ...string) string {
	return s.Lipgloss().Render(text...)
}
