package chart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimatorLinear(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	a := NewAnimator(DefaultDuration)
	a.Start(start)
	assert.Zero(t, a.Progress())
	assert.False(t, a.Done())

	cases := []struct {
		elapsed time.Duration
		want    float64
	}{
		{0, 0},
		{500 * time.Millisecond, 0.25},
		{time.Second, 0.5},
		{1500 * time.Millisecond, 0.75},
		{2 * time.Second, 1},
		{5 * time.Second, 1},
	}
	for _, c := range cases {
		assert.InDelta(t, c.want, a.Tick(start.Add(c.elapsed)), 1e-9, "elapsed %v", c.elapsed)
	}
	assert.True(t, a.Done())
}

func TestAnimatorNeverGoesBack(t *testing.T) {
	start := time.Unix(100, 0)
	a := NewAnimator(time.Second)
	a.Start(start)
	require.InDelta(t, 0.6, a.Tick(start.Add(600*time.Millisecond)), 1e-9)
	assert.InDelta(t, 0.6, a.Tick(start.Add(100*time.Millisecond)), 1e-9)
	assert.InDelta(t, 0.6, a.Tick(start.Add(-time.Second)), 1e-9)
	a.Set(0.2)
	assert.InDelta(t, 0.6, a.Progress(), 1e-9)
}

func TestAnimatorHoldsAtOne(t *testing.T) {
	start := time.Unix(0, 0)
	a := NewAnimator(time.Second)
	a.Start(start)
	a.Tick(start.Add(3 * time.Second))
	assert.Equal(t, 1.0, a.Progress())
	assert.Equal(t, 1.0, a.Tick(start.Add(10*time.Second)))
}

func TestAnimatorRestart(t *testing.T) {
	start := time.Unix(0, 0)
	a := NewAnimator(time.Second)
	a.Start(start)
	a.Tick(start.Add(2 * time.Second))
	require.True(t, a.Done())

	a.Start(start.Add(time.Minute))
	assert.Zero(t, a.Progress())
	assert.InDelta(t, 0.5, a.Tick(start.Add(time.Minute+500*time.Millisecond)), 1e-9)
}

func TestAnimatorZeroDuration(t *testing.T) {
	a := NewAnimator(0)
	a.Start(time.Now())
	assert.True(t, a.Done())
	assert.Equal(t, 1.0, a.Progress())
}

func TestAnimatorSetClamps(t *testing.T) {
	a := NewAnimator(time.Second)
	a.Start(time.Unix(0, 0))
	a.Set(-3)
	assert.Zero(t, a.Progress())
	a.Set(7)
	assert.Equal(t, 1.0, a.Progress())
	assert.True(t, a.Done())
}

func TestFrames(t *testing.T) {
	frames := Frames(DefaultDuration, 10)
	require.Len(t, frames, 21)
	assert.Zero(t, frames[0])
	assert.InDelta(t, 0.05, frames[1], 1e-9)
	assert.Equal(t, 1.0, frames[len(frames)-1])
	for i := 1; i < len(frames); i++ {
		assert.Greater(t, frames[i], frames[i-1])
	}

	assert.Equal(t, []float64{1}, Frames(DefaultDuration, 0))
	assert.Equal(t, []float64{1}, Frames(0, 30))
}

func TestFramesCapsFrameRate(t *testing.T) {
	done := make(chan []float64, 1)
	go func() { done <- Frames(DefaultDuration, 2_000_000_000) }()
	select {
	case frames := <-done:
		assert.Len(t, frames, 2*MaxFPS+1)
		assert.Equal(t, 1.0, frames[len(frames)-1])
	case <-time.After(5 * time.Second):
		t.Fatal("Frames did not return")
	}
	assert.Equal(t, Frames(DefaultDuration, MaxFPS), Frames(DefaultDuration, MaxFPS+1))
}
