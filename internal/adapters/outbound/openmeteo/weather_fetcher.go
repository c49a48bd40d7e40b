package openmeteo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/araddon/dateparse"
	"github.com/cleitonmarx/symbiont-agenthub/internal/domain"
	"github.com/cleitonmarx/symbiont-agenthub/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	lru "github.com/hashicorp/golang-lru/v2"
)

// ErrClosed is returned by fetch operations after Close.
var ErrClosed = errors.New("weather fetcher is closed")

const (
	minForecastDays = 1
	maxForecastDays = 7
	defaultTimezone = "UTC"
	isoMinuteLayout = "2006-01-02T15:04"

	geocodeCacheSize  = 512
	timezoneCacheSize = 128
)

// WeatherFetcher implements domain.WeatherFetcher. Geocoding results and
// timezones are kept in bounded LRU caches until Close.
type WeatherFetcher struct {
	client    APIClient
	timeout   time.Duration
	closed    atomic.Bool
	geocodes  *lru.Cache[string, domain.Location]
	locations *lru.Cache[string, *time.Location]
}

// NewWeatherFetcher creates a WeatherFetcher bounding every fetch operation to timeout.
func NewWeatherFetcher(client APIClient, timeout time.Duration) *WeatherFetcher {
	return &WeatherFetcher{
		client:    client,
		timeout:   timeout,
		geocodes:  mustNewCache[string, domain.Location](geocodeCacheSize),
		locations: mustNewCache[string, *time.Location](timezoneCacheSize),
	}
}

// mustNewCache panics only on a non-positive size.
func mustNewCache[K comparable, V any](size int) *lru.Cache[K, V] {
	cache, err := lru.New[K, V](size)
	if err != nil {
		panic(err)
	}
	return cache
}

// FetchCurrentConditions returns the observed conditions of a city.
func (f *WeatherFetcher) FetchCurrentConditions(ctx context.Context, city string) (domain.CurrentConditions, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	callCtx, cancel := context.WithTimeout(spanCtx, f.timeout)
	defer cancel()

	loc, found, err := f.geocode(callCtx, city)
	if telemetry.RecordErrorAndStatus(span, err) || !found {
		return domain.CurrentConditions{}, false, err
	}

	resp, err := f.client.Forecast(callCtx, loc.Latitude, loc.Longitude, loc.Timezone, 0)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.CurrentConditions{}, false, fmt.Errorf("fetch current weather of %s: %w", city, err)
	}

	return f.currentConditions(loc, resp.Current), true, nil
}

// FetchForecast returns the current conditions and the daily forecast of a
// city. Days are clamped to the 1-7 range.
func (f *WeatherFetcher) FetchForecast(ctx context.Context, city string, days int) (domain.Forecast, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	days = min(max(days, minForecastDays), maxForecastDays)

	callCtx, cancel := context.WithTimeout(spanCtx, f.timeout)
	defer cancel()

	loc, found, err := f.geocode(callCtx, city)
	if telemetry.RecordErrorAndStatus(span, err) || !found {
		return domain.Forecast{}, false, err
	}

	resp, err := f.client.Forecast(callCtx, loc.Latitude, loc.Longitude, loc.Timezone, days)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Forecast{}, false, fmt.Errorf("fetch forecast of %s: %w", city, err)
	}

	return domain.Forecast{
		Location: loc,
		Current:  f.currentConditions(loc, resp.Current),
		Daily:    f.dailyForecast(loc, resp.Daily),
	}, true, nil
}

// FetchAirQuality returns the current air quality of a city.
func (f *WeatherFetcher) FetchAirQuality(ctx context.Context, city string) (domain.AirQuality, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	callCtx, cancel := context.WithTimeout(spanCtx, f.timeout)
	defer cancel()

	loc, found, err := f.geocode(callCtx, city)
	if telemetry.RecordErrorAndStatus(span, err) || !found {
		return domain.AirQuality{}, false, err
	}

	resp, err := f.client.AirQuality(callCtx, loc.Latitude, loc.Longitude, loc.Timezone)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.AirQuality{}, false, fmt.Errorf("fetch air quality of %s: %w", city, err)
	}

	cur := resp.Current
	return domain.AirQuality{
		Location:    loc,
		EuropeanAQI: cur.EuropeanAQI,
		USAQI:       cur.USAQI,
		PM25:        cur.PM25,
		PM10:        cur.PM10,
		CO:          cur.CarbonMonoxide,
		NO2:         cur.NitrogenDioxide,
		Ozone:       cur.Ozone,
		Dust:        cur.Dust,
		UVIndex:     cur.UVIndex,
	}, true, nil
}

// Close rejects further fetches and purges the caches. It is safe to call
// more than once.
func (f *WeatherFetcher) Close() error {
	if f.closed.Swap(true) {
		return nil
	}
	f.geocodes.Purge()
	f.locations.Purge()
	return nil
}

// geocode resolves a city name, consulting the cache first. Cache keys are
// the lowercased trimmed city names.
func (f *WeatherFetcher) geocode(ctx context.Context, city string) (domain.Location, bool, error) {
	if f.closed.Load() {
		return domain.Location{}, false, ErrClosed
	}

	key := strings.ToLower(strings.TrimSpace(city))
	if key == "" {
		return domain.Location{}, false, nil
	}

	if loc, ok := f.geocodes.Get(key); ok {
		return loc, true, nil
	}

	res, found, err := f.client.Geocode(ctx, strings.TrimSpace(city))
	if err != nil {
		return domain.Location{}, false, fmt.Errorf("geocode %s: %w", city, err)
	}
	if !found {
		return domain.Location{}, false, nil
	}

	loc := domain.Location{
		Name:      res.Name,
		Country:   res.Country,
		Admin1:    res.Admin1,
		Timezone:  res.Timezone,
		Latitude:  res.Latitude,
		Longitude: res.Longitude,
	}
	if loc.Timezone == "" {
		loc.Timezone = defaultTimezone
	}

	f.geocodes.Add(key, loc)

	return loc, true, nil
}

// timeLocation returns the *time.Location of an IANA timezone name, falling back to UTC.
func (f *WeatherFetcher) timeLocation(name string) *time.Location {
	if tz, ok := f.locations.Get(name); ok {
		return tz
	}

	tz, err := time.LoadLocation(name)
	if err != nil {
		tz = time.UTC
	}

	f.locations.Add(name, tz)
	return tz
}

func (f *WeatherFetcher) currentConditions(loc domain.Location, cur CurrentWeather) domain.CurrentConditions {
	return domain.CurrentConditions{
		Location:      loc,
		Temperature:   cur.Temperature,
		Humidity:      cur.RelativeHumidity,
		WeatherCode:   cur.WeatherCode,
		WindSpeed:     cur.WindSpeed,
		WindDirection: cur.WindDirection,
		UVIndex:       cur.UVIndex,
		Visibility:    cur.Visibility,
		ObservedAt:    parseLocalTime(cur.Time, f.timeLocation(loc.Timezone)),
	}
}

func (f *WeatherFetcher) dailyForecast(loc domain.Location, daily *DailyWeather) []domain.DailyForecast {
	if daily == nil {
		return []domain.DailyForecast{}
	}

	tz := f.timeLocation(loc.Timezone)
	out := make([]domain.DailyForecast, 0, len(daily.Time))
	for i, day := range daily.Time {
		out = append(out, domain.DailyForecast{
			Date:                     parseLocalTime(day, tz),
			WeatherCode:              valueAt(daily.WeatherCode, i),
			TempMax:                  valueAt(daily.TemperatureMax, i),
			TempMin:                  valueAt(daily.TemperatureMin, i),
			PrecipitationProbability: int(math.Round(valueAt(daily.PrecipitationProbabilityMax, i))),
			Sunrise:                  parseLocalTime(stringAt(daily.Sunrise, i), tz),
			Sunset:                   parseLocalTime(stringAt(daily.Sunset, i), tz),
			UVIndexMax:               valueAt(daily.UVIndexMax, i),
		})
	}
	return out
}

// parseLocalTime parses Open-Meteo local times such as "2026-01-24" or
// "2026-01-24T07:42". Unparseable values yield the zero time.
func parseLocalTime(value string, tz *time.Location) time.Time {
	if value == "" {
		return time.Time{}
	}
	if t, err := dateparse.ParseIn(value, tz); err == nil {
		return t
	}
	if t, err := time.ParseInLocation(isoMinuteLayout, value, tz); err == nil {
		return t
	}
	return time.Time{}
}

func valueAt[T int | float64](values []*T, i int) T {
	if i >= len(values) || values[i] == nil {
		var zero T
		return zero
	}
	return *values[i]
}

func stringAt(values []string, i int) string {
	if i >= len(values) {
		return ""
	}
	return values[i]
}

// InitWeatherFetcher initializes the Open-Meteo WeatherFetcher dependency.
type InitWeatherFetcher struct {
	HttpClient    *http.Client  `resolve:""`
	Logger        *log.Logger   `resolve:""`
	GeocodingURL  string        `config:"OPEN_METEO_GEOCODING_URL" default:"https://geocoding-api.open-meteo.com/v1/search"`
	ForecastURL   string        `config:"OPEN_METEO_FORECAST_URL" default:"https://api.open-meteo.com/v1/forecast"`
	AirQualityURL string        `config:"OPEN_METEO_AIR_QUALITY_URL" default:"https://air-quality-api.open-meteo.com/v1/air-quality"`
	Timeout       time.Duration `config:"OPEN_METEO_TIMEOUT" default:"30s"`
	fetcher       *WeatherFetcher
}

// Initialize registers the WeatherFetcher in the dependency container.
func (i *InitWeatherFetcher) Initialize(ctx context.Context) (context.Context, error) {
	i.fetcher = NewWeatherFetcher(NewAPIClient(Endpoints{
		Geocoding:  i.GeocodingURL,
		Forecast:   i.ForecastURL,
		AirQuality: i.AirQualityURL,
	}, i.HttpClient), i.Timeout)
	depend.Register[domain.WeatherFetcher](i.fetcher)
	return ctx, nil
}

// Close releases the WeatherFetcher resources.
func (i *InitWeatherFetcher) Close() {
	if i.fetcher == nil {
		return
	}
	if err := i.fetcher.Close(); err != nil {
		i.Logger.Printf("InitWeatherFetcher: error closing weather fetcher: %v", err)
	}
}
