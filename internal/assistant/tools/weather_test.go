package tools

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-agenthub/internal/common"
	"github.com/cleitonmarx/symbiont-agenthub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var weatherCheckTime = time.Date(2026, 1, 14, 15, 0, 0, 0, time.UTC)

func TestWeatherForecastTool(t *testing.T) {
	london := domain.Location{Name: "London", Country: "United Kingdom", Timezone: "Europe/London", Latitude: 51.5, Longitude: -0.12}
	day := func(offset int, code int, high, low float64, precip int) domain.DailyForecast {
		date := time.Date(2026, 1, 14+offset, 0, 0, 0, 0, time.UTC)
		return domain.DailyForecast{
			Date:                     date,
			WeatherCode:              code,
			TempMax:                  high,
			TempMin:                  low,
			PrecipitationProbability: precip,
			Sunrise:                  date.Add(7*time.Hour + 58*time.Minute),
			Sunset:                   date.Add(16*time.Hour + 21*time.Minute),
		}
	}

	tests := map[string]struct {
		args       domain.ToolArguments
		setupMocks func(*domain.MockWeatherFetcher)
		validate   func(t *testing.T, res domain.ToolResult)
	}{
		"success": {
			args: domain.ToolArguments{"city": "london", "days": 3},
			setupMocks: func(fetcher *domain.MockWeatherFetcher) {
				fetcher.EXPECT().
					FetchForecast(mock.Anything, "london", 3).
					Return(domain.Forecast{
						Location: london,
						Current: domain.CurrentConditions{
							Location:    london,
							Temperature: 22,
							Humidity:    65,
							WeatherCode: 2,
							WindSpeed:   10,
							UVIndex:     common.Ptr(3.5),
							Visibility:  common.Ptr(24140.0),
						},
						Daily: []domain.DailyForecast{
							day(0, 2, 24, 15, 10),
							day(1, 61, 18.4, 11.6, 70),
							day(2, 95, 20, 14, 90),
						},
					}, true, nil).
					Once()
			},
			validate: func(t *testing.T, res domain.ToolResult) {
				assert.Equal(t, true, res["success"])
				assert.Equal(t, "London", res["city"])
				assert.Equal(t, map[string]any{
					"condition":   "⛅ Partly Cloudy",
					"description": "Partly cloudy",
					"temperature": "72°F (22°C)",
					"feels_like":  "70°F (21°C)",
					"humidity":    "65%",
					"wind":        "6 mph (10 km/h)",
					"uv_index":    3.5,
					"visibility":  "24.1 km",
				}, res["current"])

				forecast := res["forecast"].([]map[string]any)
				require.Len(t, forecast, 3)
				assert.Equal(t, map[string]any{
					"day":           "Today",
					"date":          "Jan 14",
					"condition":     "⛅ Partly Cloudy",
					"high":          "75°F (24°C)",
					"low":           "59°F (15°C)",
					"precipitation": "10%",
					"outdoor_score": "8/10",
				}, forecast[0])
				assert.Equal(t, "Thursday", forecast[1]["day"])
				assert.Equal(t, "🌦️ Light Rain", forecast[1]["condition"])
				assert.Equal(t, "65°F (18°C)", forecast[1]["high"])
				assert.Equal(t, "1/10", forecast[2]["outdoor_score"])

				assert.Equal(t, "☀️ Perfect weather for outdoor activities! Enjoy hiking, cycling, or a picnic.", res["activity_recommendation"])
				assert.Equal(t, "07:58 AM", res["sunrise"])
				assert.Equal(t, "04:21 PM", res["sunset"])
				assert.Equal(t, "Europe/London", res["timezone"])
				assert.Equal(t, map[string]any{"latitude": 51.5, "longitude": -0.12}, res["coordinates"])
				assert.Equal(t, "2026-01-14 15:00:00", res["last_updated"])
				assert.Equal(t, "Open-Meteo via MCP Server (Live Data)", res["source"])
			},
		},
		"days-are-clamped-and-defaults-applied": {
			args: domain.ToolArguments{"city": "Oslo", "days": 30},
			setupMocks: func(fetcher *domain.MockWeatherFetcher) {
				fetcher.EXPECT().
					FetchForecast(mock.Anything, "Oslo", 7).
					Return(domain.Forecast{
						Current: domain.CurrentConditions{WeatherCode: 3},
					}, true, nil).
					Once()
			},
			validate: func(t *testing.T, res domain.ToolResult) {
				current := res["current"].(map[string]any)
				assert.Equal(t, "N/A", current["uv_index"])
				assert.Equal(t, "10.0 km", current["visibility"])
				assert.Equal(t, "N/A", res["sunrise"])
				assert.Equal(t, "UTC", res["timezone"])
				assert.Empty(t, res["forecast"])
				assert.Equal(t, "🌥️ Decent weather, but consider indoor backup plans.", res["activity_recommendation"])
			},
		},
		"city-not-found": {
			args: domain.ToolArguments{"city": "atlantis", "days": 3},
			setupMocks: func(fetcher *domain.MockWeatherFetcher) {
				fetcher.EXPECT().
					FetchForecast(mock.Anything, "atlantis", 3).
					Return(domain.Forecast{}, false, nil).
					Once()
			},
			validate: func(t *testing.T, res domain.ToolResult) {
				assert.Equal(t, domain.ToolResult{
					"success":    false,
					"city":       "Atlantis",
					"error":      "No data received",
					"message":    "❌ Could not retrieve weather data for 'atlantis'.",
					"suggestion": "Please check the city name spelling or try a major city nearby.",
					"checked_at": "2026-01-14 15:00:00",
				}, res)
			},
		},
		"fetch-error": {
			args: domain.ToolArguments{"city": "paris", "days": 1},
			setupMocks: func(fetcher *domain.MockWeatherFetcher) {
				fetcher.EXPECT().
					FetchForecast(mock.Anything, "paris", 1).
					Return(domain.Forecast{}, false, errors.New("upstream returned 503")).
					Once()
			},
			validate: func(t *testing.T, res domain.ToolResult) {
				assert.Equal(t, false, res["success"])
				assert.Equal(t, "upstream returned 503", res["error"])
				assert.Equal(t, "❌ Failed to retrieve weather for 'paris'.", res["message"])
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			fetcher := domain.NewMockWeatherFetcher(t)
			timeProvider := domain.NewMockCurrentTimeProvider(t)
			timeProvider.EXPECT().Now().Return(weatherCheckTime).Once()
			tt.setupMocks(fetcher)

			res, err := NewWeatherForecastTool(fetcher, timeProvider).Call(context.Background(), tt.args)
			require.NoError(t, err)
			tt.validate(t, res)
		})
	}
}

func TestWeatherAlertsTool(t *testing.T) {
	tests := map[string]struct {
		conditions domain.CurrentConditions
		found      bool
		err        error
		validate   func(t *testing.T, res domain.ToolResult)
	}{
		"all-clear": {
			conditions: domain.CurrentConditions{Temperature: 20, WindSpeed: 12, WeatherCode: 0},
			found:      true,
			validate: func(t *testing.T, res domain.ToolResult) {
				assert.Equal(t, false, res["has_alerts"])
				assert.Equal(t, 0, res["alert_count"])
				assert.Equal(t, "All Clear", res["status"])
				assert.Equal(t, "☀️ Clear", res["current_conditions"])
				assert.Equal(t, "Open-Meteo via MCP Server (Live Analysis)", res["source"])
			},
		},
		"thunderstorm-with-heat-and-wind": {
			conditions: domain.CurrentConditions{Temperature: 36.5, WindSpeed: 72.4, WeatherCode: 95},
			found:      true,
			validate: func(t *testing.T, res domain.ToolResult) {
				assert.Equal(t, true, res["has_alerts"])
				assert.Equal(t, 3, res["alert_count"])
				alerts := res["alerts"].([]map[string]any)
				assert.Equal(t, "⛈️ Thunderstorm Warning", alerts[0]["type"])
				assert.Equal(t, "High", alerts[0]["severity"])
				assert.Equal(t, "Strong winds of 72.4 km/h detected.", alerts[1]["message"])
				assert.Equal(t, "Temperature of 36.5°C (98°F) detected.", alerts[2]["message"])
				assert.Equal(t, map[string]any{
					"emergency":    "911 (US) / 112 (EU)",
					"weather_info": "weather.gov",
				}, res["emergency_contacts"])
			},
		},
		"extreme-cold-and-heavy-snow": {
			conditions: domain.CurrentConditions{Temperature: -15, WeatherCode: 75},
			found:      true,
			validate: func(t *testing.T, res domain.ToolResult) {
				alerts := res["alerts"].([]map[string]any)
				require.Len(t, alerts, 2)
				assert.Equal(t, "❄️ Extreme Cold Warning", alerts[0]["type"])
				assert.Equal(t, "🌨️ Heavy Snow Advisory", alerts[1]["type"])
			},
		},
		"heavy-rain": {
			conditions: domain.CurrentConditions{Temperature: 15, WeatherCode: 82},
			found:      true,
			validate: func(t *testing.T, res domain.ToolResult) {
				alerts := res["alerts"].([]map[string]any)
				require.Len(t, alerts, 1)
				assert.Equal(t, "Low", alerts[0]["severity"])
			},
		},
		"not-found": {
			validate: func(t *testing.T, res domain.ToolResult) {
				assert.Equal(t, false, res["success"])
				assert.Equal(t, "❌ Could not check alerts for 'miami'.", res["message"])
				assert.NotContains(t, res, "suggestion")
			},
		},
		"fetch-error": {
			err: errors.New("timeout"),
			validate: func(t *testing.T, res domain.ToolResult) {
				assert.Equal(t, "timeout", res["error"])
				assert.Equal(t, "❌ Failed to check alerts for 'miami'.", res["message"])
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			fetcher := domain.NewMockWeatherFetcher(t)
			timeProvider := domain.NewMockCurrentTimeProvider(t)
			timeProvider.EXPECT().Now().Return(weatherCheckTime).Once()
			fetcher.EXPECT().
				FetchCurrentConditions(mock.Anything, "miami").
				Return(tt.conditions, tt.found, tt.err).
				Once()

			res, err := NewWeatherAlertsTool(fetcher, timeProvider).Call(context.Background(), domain.ToolArguments{"city": "miami"})
			require.NoError(t, err)
			assert.Equal(t, "Miami", res["city"])
			assert.Equal(t, "2026-01-14 15:00:00", res["checked_at"])
			tt.validate(t, res)
		})
	}
}

func TestAirQualityTool(t *testing.T) {
	tests := map[string]struct {
		airQuality domain.AirQuality
		validate   func(t *testing.T, res domain.ToolResult)
	}{
		"good": {
			airQuality: domain.AirQuality{
				Location:    domain.Location{Latitude: 35.68, Longitude: 139.69},
				EuropeanAQI: common.Ptr(32.0),
				USAQI:       common.Ptr(80.0),
				PM25:        common.Ptr(8.24),
				PM10:        common.Ptr(14.0),
				Ozone:       common.Ptr(61.3),
				NO2:         common.Ptr(12.0),
			},
			validate: func(t *testing.T, res domain.ToolResult) {
				assert.Equal(t, 32.0, res["aqi"])
				assert.Equal(t, "🟢 Good", res["category"])
				assert.Equal(t, "Air quality is excellent! Great day for outdoor activities.", res["health_message"])
				assert.Equal(t, map[string]any{
					"general_public":   "Highly recommended",
					"sensitive_groups": "No restrictions",
					"mask_recommended": false,
					"windows":          "Can be open",
				}, res["recommendations"])
				assert.Equal(t, map[string]any{
					"PM2.5":      "8.2 µg/m³",
					"PM10":       "14.0 µg/m³",
					"Ozone (O₃)": "61.3 µg/m³",
					"NO₂":        "12.0 µg/m³",
					"CO":         "N/A",
				}, res["pollutants"])
				assert.Equal(t, "Ozone", res["dominant_pollutant"])
				assert.Equal(t, map[string]any{"latitude": 35.68, "longitude": 139.69}, res["coordinates"])
			},
		},
		"us-aqi-fallback-unhealthy": {
			airQuality: domain.AirQuality{USAQI: common.Ptr(175.0), PM10: common.Ptr(90.0)},
			validate: func(t *testing.T, res domain.ToolResult) {
				assert.Equal(t, "🔴 Unhealthy", res["category"])
				recs := res["recommendations"].(map[string]any)
				assert.Equal(t, true, recs["mask_recommended"])
				assert.Equal(t, "Keep closed", recs["windows"])
				assert.Equal(t, "PM10", res["dominant_pollutant"])
			},
		},
		"no-readings-uses-defaults": {
			airQuality: domain.AirQuality{},
			validate: func(t *testing.T, res domain.ToolResult) {
				assert.Equal(t, 50.0, res["aqi"])
				assert.Equal(t, "🟢 Good", res["category"])
				assert.Equal(t, "PM2.5", res["dominant_pollutant"])
			},
		},
		"hazardous": {
			airQuality: domain.AirQuality{EuropeanAQI: common.Ptr(350.0)},
			validate: func(t *testing.T, res domain.ToolResult) {
				assert.Equal(t, "🟤 Hazardous", res["category"])
				assert.Equal(t, "Health emergency: everyone is likely to be affected.", res["health_message"])
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			fetcher := domain.NewMockWeatherFetcher(t)
			timeProvider := domain.NewMockCurrentTimeProvider(t)
			timeProvider.EXPECT().Now().Return(weatherCheckTime).Once()
			fetcher.EXPECT().
				FetchAirQuality(mock.Anything, "tokyo").
				Return(tt.airQuality, true, nil).
				Once()

			res, err := NewAirQualityTool(fetcher, timeProvider).Call(context.Background(), domain.ToolArguments{"city": "tokyo"})
			require.NoError(t, err)
			assert.Equal(t, true, res["success"])
			assert.Equal(t, "Tokyo", res["city"])
			assert.Equal(t, "European AQI", res["aqi_scale"])
			assert.Equal(t, "Open-Meteo Air Quality via MCP Server (Live Data)", res["source"])
			tt.validate(t, res)
		})
	}
}

func TestCategorizeAQI(t *testing.T) {
	tests := map[string]struct {
		aqi  float64
		want string
	}{
		"good-upper-bound": {aqi: 50, want: "Good"},
		"moderate":         {aqi: 50.5, want: "Moderate"},
		"sensitive-groups": {aqi: 150, want: "Unhealthy for Sensitive Groups"},
		"very-unhealthy":   {aqi: 300, want: "Very Unhealthy"},
		"hazardous":        {aqi: 301, want: "Hazardous"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, categorizeAQI(tt.aqi).Name)
		})
	}
}

func TestActivityRecommendation(t *testing.T) {
	tests := map[string]struct {
		condition string
		want      string
	}{
		"partly-cloudy": {condition: "Partly Cloudy", want: "☀️ Perfect weather for outdoor activities! Enjoy hiking, cycling, or a picnic."},
		"rain":          {condition: "Rainy", want: "🌧️ Wet conditions - bring an umbrella or raincoat if going out."},
		"snow":          {condition: "Snow", want: "🌥️ Decent weather, but consider indoor backup plans."},
		"thunderstorm":  {condition: "Thunderstorm", want: "⛈️ Stay indoors! Thunderstorms expected - avoid open areas."},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := activityRecommendation(conditionInfo(tt.condition).OutdoorScore, tt.condition)
			assert.Equal(t, tt.want, got)
		})
	}
}
