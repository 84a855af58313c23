package present

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caiogeraldes/wttr/internal/models"
)

var london = models.Weather{
	Area:          "London",
	Temperature:   10,
	FeelsLike:     8,
	MaxTemp:       12,
	MinTemp:       5,
	Condition:     models.Sunny,
	WindDirection: models.N,
	WindSpeed:     14,
}

func TestFormat(t *testing.T) {
	tests := []struct {
		field Field
		mode  Mode
		want  string
	}{
		{Area, Text, "London"},
		{Temperature, Text, "10°C"},
		{FeelsLike, Text, "8°C"},
		{MaxTemperature, Text, "12°C"},
		{MinTemperature, Text, "5°C"},
		{WindSpeed, Text, "14km/h"},
		{Description, Text, "Sunny"},
		{Description, Symbol, "☀"},
		{WindDirection, Text, "N"},
		{WindDirection, Symbol, "↑"},
		{Temperature, Symbol, "10°C"},
		{Full, Text, "London: ☀ 10°C (8°C) | ↑ 14km/h | max:12°C | min:5°C"},
	}
	for _, tt := range tests {
		t.Run(string(tt.field)+"/"+string(tt.mode), func(t *testing.T) {
			got, err := Format(london, tt.field, tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_NegativeAndOtherCodes(t *testing.T) {
	w := models.Weather{
		Area: "Tromsø", Temperature: -4, FeelsLike: -11, MaxTemp: -1, MinTemp: -6,
		Condition: models.HeavySnow, WindDirection: models.WSW, WindSpeed: 31,
	}
	assert.Equal(t, "Tromsø: ❄ -4°C (-11°C) | ↙ 31km/h | max:-1°C | min:-6°C", Summary(w))

	got, err := Format(w, Description, Text)
	require.NoError(t, err)
	assert.Equal(t, "Heavy snow", got)
}

func TestFormat_UnknownField(t *testing.T) {
	_, err := Format(london, Field("humidity"), Text)
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"": Text, "text": Text, "emoji": Symbol, "symbol": Symbol} {
		got, err := ParseMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseMode("Emoji")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestFields(t *testing.T) {
	fields := Fields()
	assert.Len(t, fields, 9)
	for _, f := range fields {
		_, err := Format(london, f, Text)
		assert.NoError(t, err, f)
		assert.Equal(t, f == Description || f == WindDirection, f.HasMode(), f)
	}
}
