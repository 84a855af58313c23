package present

import (
	"errors"
	"fmt"

	"github.com/caiogeraldes/wttr/internal/models"
)

const (
	TempUnit  = "°C"
	SpeedUnit = "km/h"
)

// Field selects what Format prints.
type Field string

const (
	Area           Field = "area"
	Temperature    Field = "temperature"
	FeelsLike      Field = "feel-temperature"
	WindSpeed      Field = "wind-speed"
	Description    Field = "description"
	WindDirection  Field = "wind-direction"
	MinTemperature Field = "min-temperature"
	MaxTemperature Field = "max-temperature"
	Full           Field = "full"
)

// Mode picks text or symbol output for the coded fields.
type Mode string

const (
	Text   Mode = "text"
	Symbol Mode = "emoji"
)

var ErrUnknownField = errors.New("unknown field")

var ErrUnknownMode = errors.New("unknown mode")

// Fields lists every selectable field in help order.
func Fields() []Field {
	return []Field{Temperature, FeelsLike, Description, WindSpeed, WindDirection, MinTemperature, MaxTemperature, Area, Full}
}

// HasMode reports whether f takes a text/symbol sub-selector.
func (f Field) HasMode() bool {
	return f == Description || f == WindDirection
}

// ParseMode accepts "text", "emoji" and "symbol".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "text":
		return Text, nil
	case "emoji", "symbol":
		return Symbol, nil
	}
	return "", fmt.Errorf("%w: %q (want text or emoji)", ErrUnknownMode, s)
}

// Format renders one field of w. mode only affects Description and
// WindDirection.
func Format(w models.Weather, field Field, mode Mode) (string, error) {
	switch field {
	case Area:
		return w.Area, nil
	case Temperature:
		return fmt.Sprintf("%d%s", w.Temperature, TempUnit), nil
	case FeelsLike:
		return fmt.Sprintf("%d%s", w.FeelsLike, TempUnit), nil
	case MaxTemperature:
		return fmt.Sprintf("%d%s", w.MaxTemp, TempUnit), nil
	case MinTemperature:
		return fmt.Sprintf("%d%s", w.MinTemp, TempUnit), nil
	case WindSpeed:
		return fmt.Sprintf("%d%s", w.WindSpeed, SpeedUnit), nil
	case Description:
		if mode == Symbol {
			return w.Condition.Symbol(), nil
		}
		return w.Condition.Text(), nil
	case WindDirection:
		if mode == Symbol {
			return w.WindDirection.Symbol(), nil
		}
		return w.WindDirection.Text(), nil
	case Full:
		return Summary(w), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, string(field))
}

// Summary is the one-line overview, e.g.
// "London: ☀ 10°C (8°C) | ↑ 14km/h | max:12°C | min:5°C".
func Summary(w models.Weather) string {
	return fmt.Sprintf("%s: %s %d%s (%d%s) | %s %d%s | max:%d%s | min:%d%s",
		w.Area,
		w.Condition.Symbol(),
		w.Temperature, TempUnit,
		w.FeelsLike, TempUnit,
		w.WindDirection.Symbol(),
		w.WindSpeed, SpeedUnit,
		w.MaxTemp, TempUnit,
		w.MinTemp, TempUnit,
	)
}
