package core

import "time"

// Stopwatch measures wall-clock spans.
type Stopwatch struct {
	now     func() time.Time
	start   time.Time
	elapsed time.Duration
	running bool
}

// NewStopwatch constructs a Stopwatch reading the system clock.
func NewStopwatch() *Stopwatch {
	return NewStopwatchWithClock(time.Now)
}

// NewStopwatchWithClock constructs a Stopwatch reading the provided clock.
func NewStopwatchWithClock(now func() time.Time) *Stopwatch {
	if now == nil {
		now = time.Now
	}
	return &Stopwatch{now: now}
}

// Start begins a new span. Calling Start while running restarts the span.
func (s *Stopwatch) Start() {
	s.start = s.now()
	s.running = true
}

// Stop ends the current span, adds it to the total and returns it.
func (s *Stopwatch) Stop() time.Duration {
	if !s.running {
		return 0
	}
	span := s.now().Sub(s.start)
	s.elapsed += span
	s.running = false
	return span
}

// Elapsed returns the total of all stopped spans.
func (s *Stopwatch) Elapsed() time.Duration { return s.elapsed }

// Reset clears the accumulated total.
func (s *Stopwatch) Reset() {
	s.elapsed = 0
	s.running = false
}
