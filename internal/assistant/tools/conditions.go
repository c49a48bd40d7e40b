package tools

import (
	"math"
	"strconv"
	"strings"
)

// weatherCondition describes how a WMO weather condition is presented.
type weatherCondition struct {
	Icon         string
	OutdoorScore int
	Description  string
}

const unknownCondition = "Unknown"

var weatherConditions = map[string]weatherCondition{
	"Clear":         {Icon: "☀️", OutdoorScore: 10, Description: "Clear sky"},
	"Partly Cloudy": {Icon: "⛅", OutdoorScore: 8, Description: "Partly cloudy"},
	"Cloudy":        {Icon: "☁️", OutdoorScore: 6, Description: "Cloudy"},
	"Overcast":      {Icon: "🌥️", OutdoorScore: 5, Description: "Overcast"},
	"Foggy":         {Icon: "🌫️", OutdoorScore: 4, Description: "Foggy conditions"},
	"Light Rain":    {Icon: "🌦️", OutdoorScore: 3, Description: "Light rain"},
	"Rainy":         {Icon: "🌧️", OutdoorScore: 2, Description: "Rainy"},
	"Heavy Rain":    {Icon: "🌧️", OutdoorScore: 1, Description: "Heavy rain"},
	"Snow":          {Icon: "🌨️", OutdoorScore: 4, Description: "Snowy"},
	"Heavy Snow":    {Icon: "❄️", OutdoorScore: 2, Description: "Heavy snow"},
	"Thunderstorm":  {Icon: "⛈️", OutdoorScore: 1, Description: "Thunderstorm"},
	"Unknown":       {Icon: "🌡️", OutdoorScore: 5, Description: "Weather data unavailable"},
}

// wmoConditions maps WMO weather interpretation codes to condition names.
var wmoConditions = map[int]string{
	0:  "Clear",
	1:  "Clear",
	2:  "Partly Cloudy",
	3:  "Overcast",
	45: "Foggy",
	48: "Foggy",
	51: "Light Rain",
	53: "Light Rain",
	55: "Rainy",
	56: "Light Rain",
	57: "Rainy",
	61: "Light Rain",
	63: "Rainy",
	65: "Heavy Rain",
	66: "Light Rain",
	67: "Heavy Rain",
	71: "Snow",
	73: "Snow",
	75: "Heavy Snow",
	77: "Snow",
	80: "Light Rain",
	81: "Rainy",
	82: "Heavy Rain",
	85: "Snow",
	86: "Heavy Snow",
	95: "Thunderstorm",
	96: "Thunderstorm",
	99: "Thunderstorm",
}

func conditionName(code int) string {
	if name, ok := wmoConditions[code]; ok {
		return name
	}
	return unknownCondition
}

func conditionInfo(name string) weatherCondition {
	if info, ok := weatherConditions[name]; ok {
		return info
	}
	return weatherConditions[unknownCondition]
}

// conditionLabel returns the icon followed by the condition name, e.g. "⛅ Partly Cloudy".
func conditionLabel(name string) string {
	return conditionInfo(name).Icon + " " + name
}

func celsiusToFahrenheit(c float64) int {
	return int(math.RoundToEven(c*9/5 + 32))
}

func kmhToMph(kmh float64) int {
	return int(math.RoundToEven(kmh * 0.621371))
}

// formatTemperature renders a Celsius reading in both scales, e.g. "72°F (22°C)".
func formatTemperature(c float64) string {
	return strconv.Itoa(celsiusToFahrenheit(c)) + "°F (" + strconv.Itoa(int(math.RoundToEven(c))) + "°C)"
}

// formatReading renders a reading without trailing zeros.
func formatReading(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func activityRecommendation(outdoorScore int, condition string) string {
	switch {
	case outdoorScore >= 8:
		return "☀️ Perfect weather for outdoor activities! Enjoy hiking, cycling, or a picnic."
	case outdoorScore >= 6:
		return "⛅ Good conditions for outdoor plans. Maybe bring a light jacket."
	case outdoorScore >= 4:
		return "🌥️ Decent weather, but consider indoor backup plans."
	case strings.Contains(condition, "Rain") || strings.Contains(condition, "Snow"):
		return "🌧️ Wet conditions - bring an umbrella or raincoat if going out."
	case strings.Contains(condition, "Thunderstorm"):
		return "⛈️ Stay indoors! Thunderstorms expected - avoid open areas."
	default:
		return "🏠 Indoor activities recommended today."
	}
}

// aqiCategory is the health guidance of an air quality band.
type aqiCategory struct {
	Limit           float64
	Name            string
	Color           string
	HealthMessage   string
	SensitiveGroups string
	OutdoorExercise string
}

var aqiCategories = []aqiCategory{
	{
		Limit:           50,
		Name:            "Good",
		Color:           "🟢",
		HealthMessage:   "Air quality is excellent! Great day for outdoor activities.",
		SensitiveGroups: "No restrictions",
		OutdoorExercise: "Highly recommended",
	},
	{
		Limit:           100,
		Name:            "Moderate",
		Color:           "🟡",
		HealthMessage:   "Air quality is acceptable. Sensitive individuals should consider limiting prolonged outdoor exertion.",
		SensitiveGroups: "May experience minor symptoms",
		OutdoorExercise: "Generally safe",
	},
	{
		Limit:           150,
		Name:            "Unhealthy for Sensitive Groups",
		Color:           "🟠",
		HealthMessage:   "Members of sensitive groups may experience health effects. General public less likely to be affected.",
		SensitiveGroups: "Reduce prolonged outdoor exertion",
		OutdoorExercise: "Limit intense outdoor activity",
	},
	{
		Limit:           200,
		Name:            "Unhealthy",
		Color:           "🔴",
		HealthMessage:   "Everyone may begin to experience health effects. Sensitive groups may experience more serious effects.",
		SensitiveGroups: "Avoid outdoor activities",
		OutdoorExercise: "Move activities indoors",
	},
	{
		Limit:           300,
		Name:            "Very Unhealthy",
		Color:           "🟣",
		HealthMessage:   "Health alert: everyone may experience serious health effects.",
		SensitiveGroups: "Stay indoors",
		OutdoorExercise: "Avoid all outdoor physical activity",
	},
	{
		Limit:           math.Inf(1),
		Name:            "Hazardous",
		Color:           "🟤",
		HealthMessage:   "Health emergency: everyone is likely to be affected.",
		SensitiveGroups: "Remain indoors with air filtration",
		OutdoorExercise: "Do not go outside",
	},
}

func categorizeAQI(aqi float64) aqiCategory {
	for _, c := range aqiCategories {
		if aqi <= c.Limit {
			return c
		}
	}
	return aqiCategories[len(aqiCategories)-1]
}
