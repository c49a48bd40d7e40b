// Package openmeteo implements domain.WeatherFetcher over the Open-Meteo
// geocoding, forecast and air quality APIs. Open-Meteo requires no API key.
package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

const (
	currentWeatherFields = "temperature_2m,relative_humidity_2m,weather_code,wind_speed_10m,wind_direction_10m,uv_index,visibility"
	dailyForecastFields  = "weather_code,temperature_2m_max,temperature_2m_min,precipitation_probability_max,sunrise,sunset,uv_index_max"
	currentAirFields     = "european_aqi,us_aqi,pm10,pm2_5,carbon_monoxide,nitrogen_dioxide,ozone,dust,uv_index"
)

// Endpoints are the Open-Meteo API URLs.
type Endpoints struct {
	Geocoding  string
	Forecast   string
	AirQuality string
}

// GeocodingResult is a place match of the geocoding API.
type GeocodingResult struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country"`
	Admin1    string  `json:"admin1"`
	Timezone  string  `json:"timezone"`
}

// GeocodingResponse is the body of the geocoding API.
type GeocodingResponse struct {
	Results []GeocodingResult `json:"results"`
}

// CurrentWeather is the "current" block of the forecast API.
type CurrentWeather struct {
	Time             string   `json:"time"`
	Temperature      float64  `json:"temperature_2m"`
	RelativeHumidity float64  `json:"relative_humidity_2m"`
	WeatherCode      int      `json:"weather_code"`
	WindSpeed        float64  `json:"wind_speed_10m"`
	WindDirection    float64  `json:"wind_direction_10m"`
	UVIndex          *float64 `json:"uv_index"`
	Visibility       *float64 `json:"visibility"`
}

// DailyWeather is the "daily" block of the forecast API. Values are
// parallel arrays indexed by day; missing readings are null.
type DailyWeather struct {
	Time                        []string   `json:"time"`
	WeatherCode                 []*int     `json:"weather_code"`
	TemperatureMax              []*float64 `json:"temperature_2m_max"`
	TemperatureMin              []*float64 `json:"temperature_2m_min"`
	PrecipitationProbabilityMax []*float64 `json:"precipitation_probability_max"`
	Sunrise                     []string   `json:"sunrise"`
	Sunset                      []string   `json:"sunset"`
	UVIndexMax                  []*float64 `json:"uv_index_max"`
}

// ForecastResponse is the body of the forecast API.
type ForecastResponse struct {
	Timezone string         `json:"timezone"`
	Current  CurrentWeather `json:"current"`
	Daily    *DailyWeather  `json:"daily"`
}

// CurrentAirQuality is the "current" block of the air quality API.
type CurrentAirQuality struct {
	Time            string   `json:"time"`
	EuropeanAQI     *float64 `json:"european_aqi"`
	USAQI           *float64 `json:"us_aqi"`
	PM10            *float64 `json:"pm10"`
	PM25            *float64 `json:"pm2_5"`
	CarbonMonoxide  *float64 `json:"carbon_monoxide"`
	NitrogenDioxide *float64 `json:"nitrogen_dioxide"`
	Ozone           *float64 `json:"ozone"`
	Dust            *float64 `json:"dust"`
	UVIndex         *float64 `json:"uv_index"`
}

// AirQualityResponse is the body of the air quality API.
type AirQualityResponse struct {
	Current CurrentAirQuality `json:"current"`
}

type apiError struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}

// APIClient is a thin client for the Open-Meteo APIs.
type APIClient struct {
	endpoints Endpoints
	http      *http.Client
}

// NewAPIClient creates a new APIClient.
func NewAPIClient(endpoints Endpoints, httpClient *http.Client) APIClient {
	return APIClient{
		endpoints: endpoints,
		http:      httpClient,
	}
}

// Geocode returns the best match for a place name.
func (c APIClient) Geocode(ctx context.Context, name string) (GeocodingResult, bool, error) {
	query := url.Values{}
	query.Set("name", name)
	query.Set("count", "1")
	query.Set("language", "en")
	query.Set("format", "json")

	var out GeocodingResponse
	if err := c.get(ctx, c.endpoints.Geocoding, query, &out); err != nil {
		return GeocodingResult{}, false, err
	}
	if len(out.Results) == 0 {
		return GeocodingResult{}, false, nil
	}
	return out.Results[0], true, nil
}

// Forecast returns the current conditions and, when days > 0, the daily forecast.
func (c APIClient) Forecast(ctx context.Context, lat, lon float64, timezone string, days int) (ForecastResponse, error) {
	query := coordinatesQuery(lat, lon, timezone)
	query.Set("current", currentWeatherFields)
	if days > 0 {
		query.Set("daily", dailyForecastFields)
		query.Set("forecast_days", strconv.Itoa(days))
	}

	var out ForecastResponse
	if err := c.get(ctx, c.endpoints.Forecast, query, &out); err != nil {
		return ForecastResponse{}, err
	}
	return out, nil
}

// AirQuality returns the current air quality readings.
func (c APIClient) AirQuality(ctx context.Context, lat, lon float64, timezone string) (AirQualityResponse, error) {
	query := coordinatesQuery(lat, lon, timezone)
	query.Set("current", currentAirFields)

	var out AirQualityResponse
	if err := c.get(ctx, c.endpoints.AirQuality, query, &out); err != nil {
		return AirQualityResponse{}, err
	}
	return out, nil
}

func coordinatesQuery(lat, lon float64, timezone string) url.Values {
	query := url.Values{}
	query.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	query.Set("timezone", timezone)
	return query
}

func (c APIClient) get(ctx context.Context, endpoint string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr apiError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Reason != "" {
			return fmt.Errorf("non-2xx response: %s: %s", resp.Status, apiErr.Reason)
		}
		return fmt.Errorf("non-2xx response: %s: %s", resp.Status, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}
