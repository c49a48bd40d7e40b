package time

import (
	"context"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-agenthub/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCurrentTimeProvider_Initialize(t *testing.T) {
	tests := map[string]struct {
		timezone    string
		expectedErr bool
	}{
		"local": {
			timezone: "Local",
		},
		"utc": {
			timezone: "UTC",
		},
		"invalid-timezone": {
			timezone:    "Mars/Olympus_Mons",
			expectedErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			i := &InitCurrentTimeProvider{Timezone: tt.timezone}

			_, err := i.Initialize(context.Background())
			if tt.expectedErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			_, err = depend.Resolve[domain.CurrentTimeProvider]()
			assert.NoError(t, err)
		})
	}
}

func TestCurrentTimeProvider_Now(t *testing.T) {
	p := CurrentTimeProvider{}
	now := p.Now()
	assert.WithinDuration(t, time.Now(), now, time.Second)

	p = NewCurrentTimeProvider(time.UTC)
	assert.Equal(t, time.UTC, p.Now().Location())
}
