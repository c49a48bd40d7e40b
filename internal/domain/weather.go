package domain

import (
	"context"
	"time"
)

// Location is a geocoded place.
type Location struct {
	Name      string
	Country   string
	Admin1    string
	Timezone  string
	Latitude  float64
	Longitude float64
}

// CurrentConditions are the observed weather conditions of a location.
type CurrentConditions struct {
	Location      Location
	Temperature   float64
	Humidity      float64
	WeatherCode   int
	WindSpeed     float64
	WindDirection float64
	// Optional readings.
	UVIndex    *float64
	Visibility *float64
	ObservedAt time.Time
}

// DailyForecast is the forecast of a single day.
type DailyForecast struct {
	Date                     time.Time
	WeatherCode              int
	TempMax                  float64
	TempMin                  float64
	PrecipitationProbability int
	Sunrise                  time.Time
	Sunset                   time.Time
	UVIndexMax               float64
}

// Forecast bundles current conditions with a daily forecast.
type Forecast struct {
	Location Location
	Current  CurrentConditions
	Daily    []DailyForecast
}

// AirQuality is the air quality reading of a location.
type AirQuality struct {
	Location    Location
	EuropeanAQI *float64
	USAQI       *float64
	PM25        *float64
	PM10        *float64
	CO          *float64
	NO2         *float64
	Ozone       *float64
	Dust        *float64
	UVIndex     *float64
}

// WeatherFetcher retrieves weather data by city name. A false result means
// the upstream has no data for the city; errors are transport faults.
type WeatherFetcher interface {
	FetchCurrentConditions(ctx context.Context, city string) (CurrentConditions, bool, error)
	FetchForecast(ctx context.Context, city string, days int) (Forecast, bool, error)
	FetchAirQuality(ctx context.Context, city string) (AirQuality, bool, error)
	// Close releases resources. It is safe to call more than once.
	Close() error
}
