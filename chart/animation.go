package chart

import "time"

const (
	// DefaultDuration is how long the reveal animation takes.
	DefaultDuration = 2000 * time.Millisecond
	// MaxFPS is the highest frame rate Frames samples at.
	MaxFPS = 1000
)

// Animator holds the reveal progress of one mounted chart. Progress moves
// linearly from 0 to 1 over the duration and then stays at 1. It never goes
// backwards. The host decides when to tick it.
//
// An Animator is not safe for concurrent use.
type Animator struct {
	duration time.Duration
	start    time.Time
	running  bool
	progress float64
}

func NewAnimator(d time.Duration) *Animator {
	return &Animator{duration: d}
}

// Start resets progress to 0 and takes now as the beginning of the
// animation.
func (a *Animator) Start(now time.Time) {
	a.start = now
	a.progress = 0
	a.running = true
	if a.duration <= 0 {
		a.progress = 1
		a.running = false
	}
}

// Tick advances progress to the fraction of the duration elapsed at now and
// returns it.
func (a *Animator) Tick(now time.Time) float64 {
	if !a.running {
		return a.progress
	}
	a.Set(float64(now.Sub(a.start)) / float64(a.duration))
	return a.progress
}

// Set moves progress to p, for hosts whose scheduler already reports the
// elapsed fraction. Values are clamped to [0,1]; lower values are ignored.
func (a *Animator) Set(p float64) {
	if p = clamp01(p); p > a.progress {
		a.progress = p
	}
	if a.progress >= 1 {
		a.running = false
	}
}

func (a *Animator) Progress() float64 {
	return a.progress
}

func (a *Animator) Done() bool {
	return a.progress >= 1
}

// Frames samples an animation of duration d at fps frames per second. The
// first frame is 0 and the last is 1. fps above MaxFPS is sampled at MaxFPS.
func Frames(d time.Duration, fps int) []float64 {
	a := NewAnimator(d)
	start := time.Unix(0, 0)
	a.Start(start)
	if fps <= 0 || a.Done() {
		return []float64{1}
	}
	if fps > MaxFPS {
		fps = MaxFPS
	}
	interval := time.Second / time.Duration(fps)
	var out []float64
	for i := 0; ; i++ {
		out = append(out, a.Tick(start.Add(time.Duration(i)*interval)))
		if a.Done() {
			return out
		}
	}
}
