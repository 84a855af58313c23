package models

import (
	"encoding/json"
	"fmt"
)

// Condition is a World Weather Online weather code as served by wttr.in.
type Condition int

const (
	Sunny                          Condition = 113
	PartlyCloudy                   Condition = 116
	Cloudy                         Condition = 119
	Overcast                       Condition = 122
	Mist                           Condition = 143
	PatchyRainPossible             Condition = 176
	PatchySnowPossible             Condition = 179
	PatchySleetPossible            Condition = 182
	PatchyFreezingDrizzlePossible  Condition = 185
	ThunderyOutbreaksPossible      Condition = 200
	BlowingSnow                    Condition = 227
	Blizzard                       Condition = 230
	Fog                            Condition = 248
	FreezingFog                    Condition = 260
	PatchyLightDrizzle             Condition = 263
	LightDrizzle                   Condition = 266
	FreezingDrizzle                Condition = 281
	HeavyFreezingDrizzle           Condition = 284
	PatchyLightRain                Condition = 293
	LightRain                      Condition = 296
	ModerateRainAtTimes            Condition = 299
	ModerateRain                   Condition = 302
	HeavyRainAtTimes               Condition = 305
	HeavyRain                      Condition = 308
	LightFreezingRain              Condition = 311
	ModerateOrHeavyFreezingRain    Condition = 314
	LightSleet                     Condition = 317
	ModerateOrHeavySleet           Condition = 320
	PatchyLightSnow                Condition = 323
	LightSnow                      Condition = 326
	PatchyModerateSnow             Condition = 329
	ModerateSnow                   Condition = 332
	PatchyHeavySnow                Condition = 335
	HeavySnow                      Condition = 338
	IcePellets                     Condition = 350
	LightRainShower                Condition = 353
	ModerateOrHeavyRainShower      Condition = 356
	TorrentialRainShower           Condition = 359
	LightSleetShowers              Condition = 362
	ModerateOrHeavySleetShowers    Condition = 365
	LightSnowShowers               Condition = 368
	ModerateOrHeavySnowShowers     Condition = 371
	LightShowersOfIcePellets       Condition = 374
	ModerateOrHeavyIcePelletShower Condition = 377
	PatchyLightRainWithThunder     Condition = 386
	ModerateOrHeavyRainWithThunder Condition = 389
	PatchyLightSnowWithThunder     Condition = 392
	ModerateOrHeavySnowWithThunder Condition = 395
)

// Symbols for the weather groups wttr.in renders. Variation selectors are
// dropped so every symbol is a single code point.
const (
	symbolSunny             = "☀"
	symbolPartlyCloudy      = "⛅"
	symbolCloudy            = "☁"
	symbolFog               = "🌫"
	symbolLightRain         = "🌦"
	symbolRain              = "🌧"
	symbolLightSnow         = "🌨"
	symbolHeavySnow         = "❄"
	symbolThunderyShowers   = "⛈"
	symbolThunderyHeavyRain = "🌩"
)

type conditionInfo struct {
	text   string
	symbol string
}

var conditions = map[Condition]conditionInfo{
	Sunny:                          {"Sunny", symbolSunny},
	PartlyCloudy:                   {"Partly cloudy", symbolPartlyCloudy},
	Cloudy:                         {"Cloudy", symbolCloudy},
	Overcast:                       {"Overcast", symbolCloudy},
	Mist:                           {"Mist", symbolFog},
	PatchyRainPossible:             {"Patchy rain possible", symbolLightRain},
	PatchySnowPossible:             {"Patchy snow possible", symbolRain},
	PatchySleetPossible:            {"Patchy sleet possible", symbolRain},
	PatchyFreezingDrizzlePossible:  {"Patchy freezing drizzle possible", symbolRain},
	ThunderyOutbreaksPossible:      {"Thundery outbreaks possible", symbolThunderyShowers},
	BlowingSnow:                    {"Blowing snow", symbolLightSnow},
	Blizzard:                       {"Blizzard", symbolHeavySnow},
	Fog:                            {"Fog", symbolFog},
	FreezingFog:                    {"Freezing fog", symbolFog},
	PatchyLightDrizzle:             {"Patchy light drizzle", symbolLightRain},
	LightDrizzle:                   {"Light drizzle", symbolLightRain},
	FreezingDrizzle:                {"Freezing drizzle", symbolRain},
	HeavyFreezingDrizzle:           {"Heavy freezing drizzle", symbolRain},
	PatchyLightRain:                {"Patchy light rain", symbolLightRain},
	LightRain:                      {"Light rain", symbolLightRain},
	ModerateRainAtTimes:            {"Moderate rain at times", symbolRain},
	ModerateRain:                   {"Moderate rain", symbolRain},
	HeavyRainAtTimes:               {"Heavy rain at times", symbolRain},
	HeavyRain:                      {"Heavy rain", symbolRain},
	LightFreezingRain:              {"Light freezing rain", symbolRain},
	ModerateOrHeavyFreezingRain:    {"Moderate or heavy freezing rain", symbolRain},
	LightSleet:                     {"Light sleet", symbolRain},
	ModerateOrHeavySleet:           {"Moderate or heavy sleet", symbolLightSnow},
	PatchyLightSnow:                {"Patchy light snow", symbolLightSnow},
	LightSnow:                      {"Light snow", symbolLightSnow},
	PatchyModerateSnow:             {"Patchy moderate snow", symbolHeavySnow},
	ModerateSnow:                   {"Moderate snow", symbolHeavySnow},
	PatchyHeavySnow:                {"Patchy heavy snow", symbolHeavySnow},
	HeavySnow:                      {"Heavy snow", symbolHeavySnow},
	IcePellets:                     {"Ice pellets", symbolRain},
	LightRainShower:                {"Light rain shower", symbolLightRain},
	ModerateOrHeavyRainShower:      {"Moderate or heavy rain shower", symbolRain},
	TorrentialRainShower:           {"Torrential rain shower", symbolRain},
	LightSleetShowers:              {"Light sleet showers", symbolRain},
	ModerateOrHeavySleetShowers:    {"Moderate or heavy sleet showers", symbolRain},
	LightSnowShowers:               {"Light snow showers", symbolLightSnow},
	ModerateOrHeavySnowShowers:     {"Moderate or heavy snow showers", symbolHeavySnow},
	LightShowersOfIcePellets:       {"Light showers of ice pellets", symbolRain},
	ModerateOrHeavyIcePelletShower: {"Moderate or heavy showers of ice pellets", symbolRain},
	PatchyLightRainWithThunder:     {"Patchy light rain with thunder", symbolThunderyShowers},
	ModerateOrHeavyRainWithThunder: {"Moderate or heavy rain with thunder", symbolThunderyHeavyRain},
	PatchyLightSnowWithThunder:     {"Patchy light snow with thunder", symbolThunderyShowers},
	ModerateOrHeavySnowWithThunder: {"Moderate or heavy snow with thunder", symbolHeavySnow},
}

// ParseCondition returns the condition for a provider code. Codes outside the
// provider's documented list are an error, never a default.
func ParseCondition(code int) (Condition, error) {
	c := Condition(code)
	if !c.Valid() {
		return 0, fmt.Errorf("%w: unknown weather code %d", ErrMalformedRecord, code)
	}
	return c, nil
}

// Conditions returns every known condition code.
func Conditions() []Condition {
	out := make([]Condition, 0, len(conditions))
	for c := range conditions {
		out = append(out, c)
	}
	return out
}

func (c Condition) Valid() bool {
	_, ok := conditions[c]
	return ok
}

// Text returns the provider's description of the code.
func (c Condition) Text() string {
	return conditions[c].text
}

// Symbol returns the single emoji for the code's weather group.
func (c Condition) Symbol() string {
	return conditions[c].symbol
}

func (c Condition) String() string {
	return c.Text()
}

func (c *Condition) UnmarshalJSON(data []byte) error {
	var code int
	if err := json.Unmarshal(data, &code); err != nil {
		return fmt.Errorf("%w: code: %v", ErrMalformedRecord, err)
	}
	parsed, err := ParseCondition(code)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
