package promotion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBusinessDayBounds(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		offset    int
		wantStart time.Time
		wantDate  string
	}{
		{
			name:      "midday utc",
			now:       time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
			offset:    3,
			wantStart: time.Date(2025, 6, 14, 21, 0, 0, 0, time.UTC),
			wantDate:  "2025-06-15",
		},
		{
			name:      "late utc evening already next business day",
			now:       time.Date(2025, 6, 15, 22, 30, 0, 0, time.UTC),
			offset:    3,
			wantStart: time.Date(2025, 6, 15, 21, 0, 0, 0, time.UTC),
			wantDate:  "2025-06-16",
		},
		{
			name:      "exactly at business midnight",
			now:       time.Date(2025, 6, 14, 21, 0, 0, 0, time.UTC),
			offset:    3,
			wantStart: time.Date(2025, 6, 14, 21, 0, 0, 0, time.UTC),
			wantDate:  "2025-06-15",
		},
		{
			name:      "zero offset",
			now:       time.Date(2025, 1, 1, 0, 0, 1, 0, time.UTC),
			offset:    0,
			wantStart: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			wantDate:  "2025-01-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := BusinessDayBounds(tt.now, tt.offset)

			assert.True(t, start.Equal(tt.wantStart), "start = %s", start.UTC())
			assert.True(t, end.Equal(tt.wantStart.Add(24*time.Hour-time.Microsecond)), "end = %s", end.UTC())
			assert.False(t, tt.now.Before(start))
			assert.False(t, tt.now.After(end))
			assert.Equal(t, tt.wantDate, BusinessDayOf(tt.now, tt.offset).Date())
		})
	}
}

func TestBusinessDayBounds_IgnoresInputLocation(t *testing.T) {
	instant := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	tokyo := time.FixedZone("JST", 9*60*60)

	startUTC, endUTC := BusinessDayBounds(instant, DefaultOffsetHours)
	startTokyo, endTokyo := BusinessDayBounds(instant.In(tokyo), DefaultOffsetHours)

	assert.True(t, startUTC.Equal(startTokyo))
	assert.True(t, endUTC.Equal(endTokyo))
}
