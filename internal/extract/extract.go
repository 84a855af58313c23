package extract

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/itchyny/gojq"
)

// ErrExtractionFailed is returned when the provider payload does not have the
// shape the extraction query expects.
var ErrExtractionFailed = errors.New("extraction failed")

// Query reduces a wttr.in j1 payload to the 8-field weather record.
const Query = `. | {
	area: .nearest_area[0].areaName[0].value,
	temp: (.current_condition[0].temp_C)|tonumber,
	sens: (.current_condition[0].FeelsLikeC)|tonumber,
	max: (.weather[0].maxtempC)|tonumber,
	min: (.weather[0].mintempC)|tonumber,
	code: (.current_condition[0].weatherCode)|tonumber,
	winddir16Point: .current_condition[0].winddir16Point,
	windspeed: (.current_condition[0].windspeedKmph)|tonumber
}`

// Extractor runs a compiled jq program over raw provider payloads.
type Extractor struct {
	code *gojq.Code
}

// New compiles Query.
func New() (*Extractor, error) {
	return NewWithQuery(Query)
}

// NewWithQuery compiles an arbitrary jq expression. The expression must
// produce exactly one JSON value per input.
func NewWithQuery(query string) (*Extractor, error) {
	parsed, err := gojq.Parse(query)
	if err != nil {
		return nil, fmt.Errorf("parse query: %w", err)
	}
	code, err := gojq.Compile(parsed)
	if err != nil {
		return nil, fmt.Errorf("compile query: %w", err)
	}
	return &Extractor{code: code}, nil
}

// Extract applies the program to payload and returns the resulting JSON text.
func (e *Extractor) Extract(payload []byte) (string, error) {
	var input any
	if err := json.Unmarshal(payload, &input); err != nil {
		return "", fmt.Errorf("%w: decode payload: %v", ErrExtractionFailed, err)
	}

	iter := e.code.Run(input)
	v, ok := iter.Next()
	if !ok {
		return "", fmt.Errorf("%w: query produced no output", ErrExtractionFailed)
	}
	if err, isErr := v.(error); isErr {
		return "", fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	out, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: encode result: %v", ErrExtractionFailed, err)
	}
	return string(out), nil
}
