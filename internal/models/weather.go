package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedRecord is returned when extracted weather JSON is missing a
// field, has a field of the wrong type, or carries an unknown coded value.
var ErrMalformedRecord = errors.New("malformed weather record")

// Weather is the normalized current-conditions record for one invocation.
type Weather struct {
	Area          string       `json:"area"`
	Temperature   int          `json:"temp"`
	FeelsLike     int          `json:"sens"`
	MaxTemp       int          `json:"max"`
	MinTemp       int          `json:"min"`
	Condition     Condition    `json:"code"`
	WindDirection CompassPoint `json:"winddir16Point"`
	WindSpeed     uint         `json:"windspeed"`
}

// weatherJSON mirrors Weather with pointers so absent keys can be told apart
// from zero values.
type weatherJSON struct {
	Area          *string       `json:"area"`
	Temp          *int          `json:"temp"`
	Sens          *int          `json:"sens"`
	Max           *int          `json:"max"`
	Min           *int          `json:"min"`
	Code          *Condition    `json:"code"`
	WindDir16     *CompassPoint `json:"winddir16Point"`
	WindSpeedKmph *uint         `json:"windspeed"`
}

// ParseWeather decodes the 8-field record produced by the extraction step.
// Every field is required; any failure wraps ErrMalformedRecord.
func ParseWeather(data []byte) (Weather, error) {
	var raw weatherJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		if errors.Is(err, ErrMalformedRecord) {
			return Weather{}, err
		}
		return Weather{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}

	var missing []string
	if raw.Area == nil {
		missing = append(missing, "area")
	}
	if raw.Temp == nil {
		missing = append(missing, "temp")
	}
	if raw.Sens == nil {
		missing = append(missing, "sens")
	}
	if raw.Max == nil {
		missing = append(missing, "max")
	}
	if raw.Min == nil {
		missing = append(missing, "min")
	}
	if raw.Code == nil {
		missing = append(missing, "code")
	}
	if raw.WindDir16 == nil {
		missing = append(missing, "winddir16Point")
	}
	if raw.WindSpeedKmph == nil {
		missing = append(missing, "windspeed")
	}
	if len(missing) > 0 {
		return Weather{}, fmt.Errorf("%w: missing fields %v", ErrMalformedRecord, missing)
	}

	return Weather{
		Area:          *raw.Area,
		Temperature:   *raw.Temp,
		FeelsLike:     *raw.Sens,
		MaxTemp:       *raw.Max,
		MinTemp:       *raw.Min,
		Condition:     *raw.Code,
		WindDirection: *raw.WindDir16,
		WindSpeed:     *raw.WindSpeedKmph,
	}, nil
}

// String renders the wind arrow followed by the condition symbol.
func (w Weather) String() string {
	return fmt.Sprintf("%s %s", w.WindDirection.Symbol(), w.Condition.Symbol())
}
