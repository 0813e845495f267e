package viewport

import (
	"math"
	"time"
)

// Clock returns the current time. Injected so animations can be driven in tests.
type Clock func() time.Time

type springPoint struct {
	value float64
	time  time.Time
}

// Spring animates a scalar towards a target with an exponential ease-out curve.
// When exponential is set, values are interpolated in log space, which keeps
// zoom animations perceptually uniform.
type Spring struct {
	animationTime time.Duration
	stiffness     float64
	exponential   bool
	clock         Clock

	start   springPoint
	target  springPoint
	current springPoint
}

// NewSpring creates a spring resting at initial.
func NewSpring(initial float64, animationTime time.Duration, stiffness float64, exponential bool, clock Clock) *Spring {
	if clock == nil {
		clock = time.Now
	}
	s := &Spring{
		animationTime: animationTime,
		stiffness:     stiffness,
		exponential:   exponential,
		clock:         clock,
	}
	s.ResetTo(initial)
	return s
}

// Current returns the in-flight value as of the last Update.
func (s *Spring) Current() float64 {
	return s.current.value
}

// Target returns the value the spring is heading to.
func (s *Spring) Target() float64 {
	return s.target.value
}

// SpringTo starts animating from the current value towards target.
func (s *Spring) SpringTo(target float64) {
	now := s.clock()
	s.start = springPoint{value: s.current.value, time: now}
	s.current.time = now
	s.target = springPoint{value: target, time: now.Add(s.animationTime)}
}

// ResetTo jumps to value without animation.
func (s *Spring) ResetTo(value float64) {
	now := s.clock()
	p := springPoint{value: value, time: now}
	s.start = p
	s.target = p
	s.current = p
}

// Update advances the animation to the current clock time.
// It reports whether the spring is still moving.
func (s *Spring) Update() bool {
	now := s.clock()
	s.current.time = now

	if !now.Before(s.target.time) {
		s.current.value = s.target.value
		return false
	}

	span := s.target.time.Sub(s.start.time)
	progress := 1.0
	if span > 0 {
		progress = float64(now.Sub(s.start.time)) / float64(span)
	}
	eased := transform(s.stiffness, progress)

	if s.exponential && s.start.value > 0 && s.target.value > 0 {
		from := math.Log(s.start.value)
		to := math.Log(s.target.value)
		s.current.value = math.Exp(from + (to-from)*eased)
	} else {
		s.current.value = s.start.value + (s.target.value-s.start.value)*eased
	}
	return true
}

// IsAtTarget reports whether the spring has settled.
func (s *Spring) IsAtTarget() bool {
	return s.current.value == s.target.value
}

// Progress returns how far through the current animation the spring is, in [0, 1].
func (s *Spring) Progress() float64 {
	span := s.target.time.Sub(s.start.time)
	if span <= 0 {
		return 1
	}
	p := float64(s.current.time.Sub(s.start.time)) / float64(span)
	return math.Max(0, math.Min(1, p))
}

func transform(stiffness, x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	if stiffness == 0 {
		return x
	}
	return (1.0 - math.Exp(-stiffness*x)) / (1.0 - math.Exp(-stiffness))
}
