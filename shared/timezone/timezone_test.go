package timezone_test

import (
	"journal/config"
	"journal/shared/timezone"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	t.Cleanup(func() { timezone.Set(time.UTC) })

	tests := []struct {
		name     string
		timezone string
		expected string
		wantErr  bool
	}{
		{name: "unset is utc", timezone: "", expected: "UTC"},
		{name: "iana name", timezone: "Asia/Jakarta", expected: "Asia/Jakarta"},
		{name: "unknown name falls back to utc", timezone: "Mars/Olympus_Mons", expected: "UTC", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timezone.Set(time.FixedZone("stale", 3600))

			cfg := &config.Config{}
			cfg.App.Timezone = tt.timezone

			err := timezone.Init(cfg)
			if tt.wantErr {
				assert.ErrorContains(t, err, tt.timezone)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.expected, timezone.Location().String())
		})
	}
}

func TestFormatAndParseUseTheConfiguredLocation(t *testing.T) {
	t.Cleanup(func() { timezone.Set(time.UTC) })

	cfg := &config.Config{}
	cfg.App.Timezone = "Asia/Jakarta"
	require.NoError(t, timezone.Init(cfg))

	uploaded := time.Date(2024, 5, 1, 20, 30, 0, 0, time.UTC)

	assert.Equal(t, "2024-05-02 03:30:00", timezone.Format(uploaded, time.DateTime))
	assert.Equal(t, "Asia/Jakarta", timezone.ToAppTime(uploaded).Location().String())
	assert.Equal(t, "Asia/Jakarta", timezone.Now().Location().String())

	parsed, err := timezone.Parse(time.DateTime, "2024-05-02 03:30:00")
	require.NoError(t, err)
	assert.True(t, parsed.Equal(uploaded))
}

func TestSetNilResetsToUTC(t *testing.T) {
	timezone.Set(time.FixedZone("plus-one", 3600))
	timezone.Set(nil)

	assert.Equal(t, time.UTC, timezone.Location())
}
