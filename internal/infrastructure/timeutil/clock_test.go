package timeutil

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealClock_Now(t *testing.T) {
	clock := NewRealClock()

	before := time.Now()
	now := clock.Now()
	after := time.Now()

	assert.False(t, now.Before(before), "clock time should not be before start")
	assert.False(t, now.After(after), "clock time should not be after end")
}

func TestMockClock_Now(t *testing.T) {
	fixedTime := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	clock := NewMockClock(fixedTime)

	assert.Equal(t, fixedTime, clock.Now())
	assert.Equal(t, fixedTime, clock.Now())
}

func TestMockClock_Set(t *testing.T) {
	clock := NewMockClock(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
	newTime := time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC)

	clock.Set(newTime)
	assert.Equal(t, newTime, clock.Now())
}

func TestMockClock_Advance(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want time.Time
	}{
		{name: "forward", d: 90 * time.Minute, want: time.Date(2025, 6, 1, 11, 30, 0, 0, time.UTC)},
		{name: "backward", d: -2 * time.Hour, want: time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := NewMockClock(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
			clock.Advance(tt.d)
			assert.Equal(t, tt.want, clock.Now())
		})
	}
}

func TestMockClock_AdvanceDays_KeepsWallClock(t *testing.T) {
	loc := MustGetLocation(Eastern)
	// DST starts on 2025-03-09 in New York.
	clock := NewMockClock(time.Date(2025, 3, 8, 9, 0, 0, 0, loc))

	clock.AdvanceDays(1)

	assert.Equal(t, time.Date(2025, 3, 9, 9, 0, 0, 0, loc), clock.Now())
}

func TestNewMockClockFromString(t *testing.T) {
	clock := NewMockClockFromString("2025-06-01T10:00:00Z")
	assert.Equal(t, time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC), clock.Now())
}

func TestNewMockClockFromString_Panic(t *testing.T) {
	assert.Panics(t, func() {
		NewMockClockFromString("invalid-time")
	})
}

func TestMockClock_ConcurrentAccess(t *testing.T) {
	clock := NewMockClock(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			clock.Advance(time.Minute)
		}()
		go func() {
			defer wg.Done()
			_ = clock.Now()
		}()
	}
	wg.Wait()

	assert.Equal(t, time.Date(2025, 6, 1, 0, 20, 0, 0, time.UTC), clock.Now())
}
