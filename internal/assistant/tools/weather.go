package tools

import (
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/cleitonmarx/symbiont-agenthub/internal/common"
	"github.com/cleitonmarx/symbiont-agenthub/internal/domain"
)

const (
	forecastSource   = "Open-Meteo via MCP Server (Live Data)"
	alertsSource     = "Open-Meteo via MCP Server (Live Analysis)"
	airQualitySource = "Open-Meteo Air Quality via MCP Server (Live Data)"

	defaultForecastDays = 3
	maxForecastDays     = 7
	defaultVisibilityM  = 10000
	defaultAQI          = 50
)

// NewWeatherTools returns the tools of the weather assistant.
func NewWeatherTools(fetcher domain.WeatherFetcher, timeProvider domain.CurrentTimeProvider) []domain.Tool {
	return []domain.Tool{
		NewWeatherForecastTool(fetcher, timeProvider),
		NewWeatherAlertsTool(fetcher, timeProvider),
		NewAirQualityTool(fetcher, timeProvider),
	}
}

type cityArgs struct {
	City string `mapstructure:"city"`
	Days int    `mapstructure:"days"`
}

// weatherFailure builds the result returned when no data could be retrieved.
func weatherFailure(city, errMsg, message, suggestion, checkedAt string) domain.ToolResult {
	res := domain.ToolResult{
		"success":    false,
		"city":       common.TitleCase(city),
		"error":      errMsg,
		"message":    message,
		"checked_at": checkedAt,
	}
	if suggestion != "" {
		res["suggestion"] = suggestion
	}
	return res
}

func coordinates(loc domain.Location) map[string]any {
	return map[string]any{
		"latitude":  loc.Latitude,
		"longitude": loc.Longitude,
	}
}

// WeatherForecastTool returns current conditions and a daily forecast.
type WeatherForecastTool struct {
	fetcher      domain.WeatherFetcher
	timeProvider domain.CurrentTimeProvider
}

// NewWeatherForecastTool creates a new WeatherForecastTool.
func NewWeatherForecastTool(fetcher domain.WeatherFetcher, timeProvider domain.CurrentTimeProvider) WeatherForecastTool {
	return WeatherForecastTool{fetcher: fetcher, timeProvider: timeProvider}
}

// Spec returns the tool spec of WeatherForecastTool.
func (t WeatherForecastTool) Spec() domain.ToolSpec {
	return domain.ToolSpec{
		Name:    "get_weather_forecast",
		Summary: "Get the current weather and forecast for a specific city using live data from Open-Meteo.",
		Doc: `Get the current weather and forecast for a specific city using live data from Open-Meteo.

city: City name (e.g., New York, London, Tokyo, Miami)
days: Number of forecast days (1-7, default is 3)`,
		Params: []domain.ToolParam{
			{Name: "city", Kind: domain.ToolParamKind_String},
			{Name: "days", Kind: domain.ToolParamKind_Integer, Default: defaultForecastDays},
		},
	}
}

// Call fetches the forecast. Days are clamped to the 1-7 range.
func (t WeatherForecastTool) Call(ctx context.Context, args domain.ToolArguments) (domain.ToolResult, error) {
	var in cityArgs
	if err := decodeArguments(args, &in); err != nil {
		return nil, err
	}
	days := min(max(in.Days, 1), maxForecastDays)
	now := t.timeProvider.Now()
	checkedAt := now.Format(domain.TimestampLayout)

	fc, found, err := t.fetcher.FetchForecast(ctx, in.City, days)
	if err != nil {
		return weatherFailure(
			in.City,
			err.Error(),
			fmt.Sprintf("❌ Failed to retrieve weather for '%s'.", in.City),
			"Please check the city name or try again later.",
			checkedAt,
		), nil
	}
	if !found {
		return weatherFailure(
			in.City,
			"No data received",
			fmt.Sprintf("❌ Could not retrieve weather data for '%s'.", in.City),
			"Please check the city name spelling or try a major city nearby.",
			checkedAt,
		), nil
	}

	cur := fc.Current
	condition := conditionName(cur.WeatherCode)
	info := conditionInfo(condition)
	feelsLike := cur.Temperature - cur.WindSpeed*0.1

	var uvIndex any = "N/A"
	if cur.UVIndex != nil {
		uvIndex = *cur.UVIndex
	}
	visibility := common.Deref(cur.Visibility, defaultVisibilityM)

	forecast := make([]map[string]any, 0, days)
	for i, d := range fc.Daily {
		if i >= days {
			break
		}
		dayInfo := conditionInfo(conditionName(d.WeatherCode))
		label := "Today"
		if i > 0 {
			label = d.Date.Format("Monday")
		}
		forecast = append(forecast, map[string]any{
			"day":           label,
			"date":          d.Date.Format("Jan 02"),
			"condition":     conditionLabel(conditionName(d.WeatherCode)),
			"high":          formatTemperature(d.TempMax),
			"low":           formatTemperature(d.TempMin),
			"precipitation": fmt.Sprintf("%d%%", d.PrecipitationProbability),
			"outdoor_score": fmt.Sprintf("%d/10", dayInfo.OutdoorScore),
		})
	}

	sunrise, sunset := "N/A", "N/A"
	if len(fc.Daily) > 0 {
		if !fc.Daily[0].Sunrise.IsZero() {
			sunrise = fc.Daily[0].Sunrise.Format("03:04 PM")
		}
		if !fc.Daily[0].Sunset.IsZero() {
			sunset = fc.Daily[0].Sunset.Format("03:04 PM")
		}
	}

	return domain.ToolResult{
		"success": true,
		"city":    common.TitleCase(in.City),
		"current": map[string]any{
			"condition":   conditionLabel(condition),
			"description": info.Description,
			"temperature": formatTemperature(cur.Temperature),
			"feels_like":  formatTemperature(feelsLike),
			"humidity":    formatReading(cur.Humidity) + "%",
			"wind":        fmt.Sprintf("%d mph (%s km/h)", kmhToMph(cur.WindSpeed), formatReading(cur.WindSpeed)),
			"uv_index":    uvIndex,
			"visibility":  fmt.Sprintf("%.1f km", visibility/1000),
		},
		"forecast":                forecast,
		"activity_recommendation": activityRecommendation(info.OutdoorScore, condition),
		"sunrise":                 sunrise,
		"sunset":                  sunset,
		"timezone":                orDefault(fc.Location.Timezone, "UTC"),
		"coordinates":             coordinates(fc.Location),
		"last_updated":            checkedAt,
		"source":                  forecastSource,
	}, nil
}

// WeatherAlertsTool derives severe weather alerts from current conditions.
type WeatherAlertsTool struct {
	fetcher      domain.WeatherFetcher
	timeProvider domain.CurrentTimeProvider
}

// NewWeatherAlertsTool creates a new WeatherAlertsTool.
func NewWeatherAlertsTool(fetcher domain.WeatherFetcher, timeProvider domain.CurrentTimeProvider) WeatherAlertsTool {
	return WeatherAlertsTool{fetcher: fetcher, timeProvider: timeProvider}
}

// Spec returns the tool spec of WeatherAlertsTool.
func (t WeatherAlertsTool) Spec() domain.ToolSpec {
	return domain.ToolSpec{
		Name: "get_weather_alerts",
		Doc: `Check for active weather alerts and warnings in a specific area.

city: City name to check for weather alerts`,
		Params: []domain.ToolParam{
			{Name: "city", Kind: domain.ToolParamKind_String},
		},
	}
}

// Call checks the current conditions against the alert thresholds.
func (t WeatherAlertsTool) Call(ctx context.Context, args domain.ToolArguments) (domain.ToolResult, error) {
	var in cityArgs
	if err := decodeArguments(args, &in); err != nil {
		return nil, err
	}
	checkedAt := t.timeProvider.Now().Format(domain.TimestampLayout)

	cur, found, err := t.fetcher.FetchCurrentConditions(ctx, in.City)
	if err != nil {
		return weatherFailure(
			in.City,
			err.Error(),
			fmt.Sprintf("❌ Failed to check alerts for '%s'.", in.City),
			"",
			checkedAt,
		), nil
	}
	if !found {
		return weatherFailure(
			in.City,
			"No data received",
			fmt.Sprintf("❌ Could not check alerts for '%s'.", in.City),
			"",
			checkedAt,
		), nil
	}

	alerts := weatherAlerts(cur)
	if len(alerts) > 0 {
		return domain.ToolResult{
			"success":     true,
			"city":        common.TitleCase(in.City),
			"has_alerts":  true,
			"alert_count": len(alerts),
			"alerts":      alerts,
			"emergency_contacts": map[string]any{
				"emergency":    "911 (US) / 112 (EU)",
				"weather_info": "weather.gov",
			},
			"checked_at": checkedAt,
			"source":     alertsSource,
		}, nil
	}

	return domain.ToolResult{
		"success":            true,
		"city":               common.TitleCase(in.City),
		"has_alerts":         false,
		"alert_count":        0,
		"message":            "✅ No active weather alerts for this area.",
		"status":             "All Clear",
		"current_conditions": conditionLabel(conditionName(cur.WeatherCode)),
		"tip":                "Weather conditions are normal. Enjoy your day!",
		"checked_at":         checkedAt,
		"source":             alertsSource,
	}, nil
}

func weatherAlerts(cur domain.CurrentConditions) []map[string]any {
	alerts := make([]map[string]any, 0)
	add := func(kind, severity, message, advice, expires string) {
		alerts = append(alerts, map[string]any{
			"type":          kind,
			"severity":      severity,
			"message":       message,
			"safety_advice": advice,
			"expires":       expires,
		})
	}

	code := cur.WeatherCode
	if code >= 95 {
		add("⛈️ Thunderstorm Warning", "High",
			"Thunderstorms are occurring or expected in this area.",
			"Seek shelter immediately. Avoid open areas, tall objects, and bodies of water.",
			"Until conditions improve")
	}
	if cur.WindSpeed > 60 {
		add("💨 High Wind Warning", "Moderate",
			fmt.Sprintf("Strong winds of %s km/h detected.", formatReading(cur.WindSpeed)),
			"Secure loose outdoor objects. Avoid driving high-profile vehicles.",
			"Until wind subsides")
	}
	if cur.Temperature > 35 {
		add("🌡️ Extreme Heat Warning", "Moderate",
			fmt.Sprintf("Temperature of %s°C (%d°F) detected.", formatReading(cur.Temperature), celsiusToFahrenheit(cur.Temperature)),
			"Stay hydrated. Limit outdoor activities during peak heat. Check on elderly neighbors.",
			"Until temperatures drop")
	}
	if cur.Temperature < -10 {
		add("❄️ Extreme Cold Warning", "Moderate",
			fmt.Sprintf("Temperature of %s°C (%d°F) detected.", formatReading(cur.Temperature), celsiusToFahrenheit(cur.Temperature)),
			"Dress in layers. Limit exposure to cold. Check on vulnerable individuals.",
			"Until temperatures rise")
	}
	if slices.Contains([]int{65, 67, 82}, code) {
		add("🌧️ Heavy Rain Advisory", "Low",
			"Heavy rainfall may cause localized flooding.",
			"Avoid flood-prone areas. Do not drive through standing water.",
			"Until rain subsides")
	}
	if slices.Contains([]int{75, 86}, code) {
		add("🌨️ Heavy Snow Advisory", "Moderate",
			"Heavy snowfall may impact travel conditions.",
			"Avoid unnecessary travel. Keep emergency supplies ready.",
			"Until snowfall ends")
	}
	return alerts
}

// AirQualityTool returns the air quality index and health guidance.
type AirQualityTool struct {
	fetcher      domain.WeatherFetcher
	timeProvider domain.CurrentTimeProvider
}

// NewAirQualityTool creates a new AirQualityTool.
func NewAirQualityTool(fetcher domain.WeatherFetcher, timeProvider domain.CurrentTimeProvider) AirQualityTool {
	return AirQualityTool{fetcher: fetcher, timeProvider: timeProvider}
}

// Spec returns the tool spec of AirQualityTool.
func (t AirQualityTool) Spec() domain.ToolSpec {
	return domain.ToolSpec{
		Name:    "get_air_quality",
		Summary: "Get the Air Quality Index (AQI) and health recommendations for a city.",
		Params: []domain.ToolParam{
			{Name: "city", Kind: domain.ToolParamKind_String, Description: "City name to check air quality"},
		},
	}
}

// Call fetches the air quality. The European AQI is preferred over the US AQI.
func (t AirQualityTool) Call(ctx context.Context, args domain.ToolArguments) (domain.ToolResult, error) {
	var in cityArgs
	if err := decodeArguments(args, &in); err != nil {
		return nil, err
	}
	checkedAt := t.timeProvider.Now().Format(domain.TimestampLayout)

	aq, found, err := t.fetcher.FetchAirQuality(ctx, in.City)
	if err != nil {
		return weatherFailure(
			in.City,
			err.Error(),
			fmt.Sprintf("❌ Failed to retrieve air quality for '%s'.", in.City),
			"Please check the city name or try again later.",
			checkedAt,
		), nil
	}
	if !found {
		return weatherFailure(
			in.City,
			"No data received",
			fmt.Sprintf("❌ Could not retrieve air quality data for '%s'.", in.City),
			"Please check the city name or try a major city nearby.",
			checkedAt,
		), nil
	}

	aqi := float64(defaultAQI)
	switch {
	case aq.EuropeanAQI != nil:
		aqi = *aq.EuropeanAQI
	case aq.USAQI != nil:
		aqi = *aq.USAQI
	}
	category := categorizeAQI(aqi)

	windows := "Can be open"
	if aqi > 150 {
		windows = "Keep closed"
	}

	return domain.ToolResult{
		"success":        true,
		"city":           common.TitleCase(in.City),
		"aqi":            aqi,
		"aqi_scale":      "European AQI",
		"category":       category.Color + " " + category.Name,
		"health_message": category.HealthMessage,
		"recommendations": map[string]any{
			"general_public":   category.OutdoorExercise,
			"sensitive_groups": category.SensitiveGroups,
			"mask_recommended": aqi > 100,
			"windows":          windows,
		},
		"pollutants": map[string]any{
			"PM2.5":      formatPollutant(aq.PM25),
			"PM10":       formatPollutant(aq.PM10),
			"Ozone (O₃)": formatPollutant(aq.Ozone),
			"NO₂":        formatPollutant(aq.NO2),
			"CO":         formatPollutant(aq.CO),
		},
		"dominant_pollutant": dominantPollutant(aq),
		"coordinates":        coordinates(aq.Location),
		"last_updated":       checkedAt,
		"source":             airQualitySource,
	}, nil
}

func formatPollutant(v *float64) string {
	if v == nil || *v == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.1f µg/m³", *v)
}

// dominantPollutant returns the pollutant with the highest concentration.
// PM2.5 is reported when no readings are available.
func dominantPollutant(aq domain.AirQuality) string {
	candidates := []struct {
		name  string
		value *float64
	}{
		{"PM2.5", aq.PM25},
		{"PM10", aq.PM10},
		{"Ozone", aq.Ozone},
		{"NO2", aq.NO2},
	}
	dominant, highest := "PM2.5", math.Inf(-1)
	hasReading := false
	for _, c := range candidates {
		v := common.Deref(c.value, 0)
		if v != 0 {
			hasReading = true
		}
		if v > highest {
			dominant, highest = c.name, v
		}
	}
	if !hasReading {
		return "PM2.5"
	}
	return dominant
}
