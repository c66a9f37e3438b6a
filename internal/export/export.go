// Package export writes a confirmed selection to stdout or a file in one of
// the supported output formats.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/granular/internal/calendar"
	granularerrors "github.com/alexisbeaulieu97/granular/pkg/errors"
)

// Format names an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatICS  Format = "ics"
)

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatYAML, FormatICS}
}

// ParseFormat accepts a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", granularerrors.NewValidationError("format",
		fmt.Sprintf("unsupported format %q (want text, json, yaml or ics)", s), nil)
}

// Kind tells which picker produced a Selection.
type Kind string

const (
	KindDate Kind = "date"
	KindTime Kind = "time"
)

// Selection is the serialisable form of a confirmed value.
type Selection struct {
	Kind    Kind                `json:"kind" yaml:"kind"`
	Date    *calendar.Date      `json:"date,omitempty" yaml:"date,omitempty"`
	Time    *calendar.TimeOfDay `json:"time,omitempty" yaml:"time,omitempty"`
	Display string              `json:"display" yaml:"display"`
}

// DateSelection wraps a confirmed date.
func DateSelection(d calendar.Date) Selection {
	return Selection{Kind: KindDate, Date: &d, Display: d.Label()}
}

// TimeSelection wraps a confirmed time, displayed on a 12 or 24-hour clock.
func TimeSelection(t calendar.TimeOfDay, use24Hour bool) Selection {
	return Selection{Kind: KindTime, Time: &t, Display: t.Format(use24Hour)}
}

// Write encodes sel to w. clock stamps ICS output.
func Write(w io.Writer, format Format, sel Selection, clock calendar.Clock) error {
	switch format {
	case FormatText, "":
		_, err := fmt.Fprintln(w, sel.text())
		return err

	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(sel); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(sel); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()

	case FormatICS:
		return writeICS(w, sel, clock)
	}

	return granularerrors.NewValidationError("format", fmt.Sprintf("unsupported format %q", format), nil)
}

func (s Selection) text() string {
	switch {
	case s.Date != nil:
		return s.Date.String()
	case s.Time != nil:
		return s.Time.String()
	}
	return ""
}
