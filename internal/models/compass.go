package models

import (
	"encoding/json"
	"fmt"
)

// CompassPoint is one of the 16 wind directions reported by the provider.
type CompassPoint int

const (
	N CompassPoint = iota
	NNE
	NE
	ENE
	E
	ESE
	SE
	SSE
	S
	SSW
	SW
	WSW
	W
	WNW
	NW
	NNW
)

var compassNames = [...]string{
	N: "N", NNE: "NNE", NE: "NE", ENE: "ENE",
	E: "E", ESE: "ESE", SE: "SE", SSE: "SSE",
	S: "S", SSW: "SSW", SW: "SW", WSW: "WSW",
	W: "W", WNW: "WNW", NW: "NW", NNW: "NNW",
}

// CompassPoints lists every direction in clockwise order starting at north.
func CompassPoints() []CompassPoint {
	out := make([]CompassPoint, len(compassNames))
	for i := range compassNames {
		out[i] = CompassPoint(i)
	}
	return out
}

// ParseCompassPoint returns the direction whose canonical name is s.
// Matching is exact: "n" or " N" are rejected.
func ParseCompassPoint(s string) (CompassPoint, error) {
	for i, name := range compassNames {
		if name == s {
			return CompassPoint(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown wind direction %q", ErrMalformedRecord, s)
}

// Valid reports whether p is one of the 16 defined directions.
func (p CompassPoint) Valid() bool {
	return p >= N && p <= NNW
}

// Text returns the canonical name, e.g. "WSW".
func (p CompassPoint) Text() string {
	if !p.Valid() {
		return ""
	}
	return compassNames[p]
}

// Symbol returns the 8-point arrow for the direction.
// Each diagonal arrow covers the three 16-point directions around it.
func (p CompassPoint) Symbol() string {
	switch p {
	case N:
		return "↑"
	case NNE, NE, ENE:
		return "↗"
	case E:
		return "→"
	case ESE, SE, SSE:
		return "↘"
	case S:
		return "↓"
	case SSW, SW, WSW:
		return "↙"
	case W:
		return "←"
	case WNW, NW, NNW:
		return "↖"
	}
	return ""
}

func (p CompassPoint) String() string {
	return p.Text()
}

func (p CompassPoint) MarshalJSON() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("invalid compass point %d", int(p))
	}
	return json.Marshal(p.Text())
}

func (p *CompassPoint) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: winddir16Point: %v", ErrMalformedRecord, err)
	}
	parsed, err := ParseCompassPoint(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
