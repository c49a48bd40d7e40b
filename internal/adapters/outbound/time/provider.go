package time

import (
	"context"
	"fmt"
	"time"

	"github.com/cleitonmarx/symbiont-agenthub/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// CurrentTimeProvider is an implementation of domain.CurrentTimeProvider using the standard time package.
type CurrentTimeProvider struct {
	location *time.Location
}

// NewCurrentTimeProvider creates a CurrentTimeProvider reporting times in the given location.
func NewCurrentTimeProvider(location *time.Location) CurrentTimeProvider {
	return CurrentTimeProvider{location: location}
}

// Now returns the current time.
func (ts CurrentTimeProvider) Now() time.Time {
	if ts.location == nil {
		return time.Now()
	}
	return time.Now().In(ts.location)
}

// InitCurrentTimeProvider initializes the CurrentTimeProvider and registers it in the dependency container.
type InitCurrentTimeProvider struct {
	Timezone string `config:"APP_TIMEZONE" default:"Local"`
}

// Initialize registers the CurrentTimeProvider in the dependency container.
func (its InitCurrentTimeProvider) Initialize(ctx context.Context) (context.Context, error) {
	loc, err := time.LoadLocation(its.Timezone)
	if err != nil {
		return ctx, fmt.Errorf("invalid APP_TIMEZONE %q: %w", its.Timezone, err)
	}
	depend.Register[domain.CurrentTimeProvider](NewCurrentTimeProvider(loc))
	return ctx, nil
}
