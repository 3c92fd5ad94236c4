package clock

import (
	"time"
)

// Clock reports time in milliseconds.
type Clock interface {
	CurrentTime() float64
}

// Manual is a clock that only moves when told to.
type Manual struct {
	Time float64
}

func (m *Manual) CurrentTime() float64 {
	return m.Time
}

func (m *Manual) Seek(time float64) {
	m.Time = time
}

func (m *Manual) Advance(delta float64) {
	m.Time += delta
}

// Stopwatch measures real time at an adjustable rate. Create it using NewStopwatch.
type Stopwatch struct {
	// Now is used as time source. Defaults to time.Now
	Now func() time.Time

	rate    float64
	running bool

	// time accumulated up to startedAt
	offset    float64
	startedAt time.Time
}

func NewStopwatch() *Stopwatch {
	return &Stopwatch{rate: 1}
}

func (s *Stopwatch) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}

	return s.Now()
}

func (s *Stopwatch) Rate() float64 {
	return s.rate
}

// SetRate changes the speed of the clock without a jump in time.
// Negative rates run the clock backwards.
func (s *Stopwatch) SetRate(rate float64) {
	s.fold()
	s.rate = rate
}

func (s *Stopwatch) IsRunning() bool {
	return s.running
}

func (s *Stopwatch) Start() {
	if s.running {
		return
	}

	s.startedAt = s.now()
	s.running = true
}

func (s *Stopwatch) Stop() {
	if !s.running {
		return
	}

	s.fold()
	s.running = false
}

// Reset stops the clock and moves it back to zero.
func (s *Stopwatch) Reset() {
	s.running = false
	s.offset = 0
}

// Seek jumps to the given time, forwards or backwards.
func (s *Stopwatch) Seek(time float64) {
	s.offset = time
	s.startedAt = s.now()
}

func (s *Stopwatch) CurrentTime() float64 {
	if !s.running {
		return s.offset
	}

	return s.offset + s.elapsedUntil(s.now())
}

func (s *Stopwatch) elapsedUntil(now time.Time) float64 {
	millis := float64(now.Sub(s.startedAt)) / float64(time.Millisecond)
	return millis * s.rate
}

// fold moves the running time into offset
func (s *Stopwatch) fold() {
	if s.running {
		now := s.now()
		s.offset += s.elapsedUntil(now)
		s.startedAt = now
	}
}

// Framed samples its source once per frame so that every object updated
// within a frame sees the same time.
type Framed struct {
	Source Clock

	current float64
	elapsed float64
	started bool
}

func NewFramed(source Clock) *Framed {
	return &Framed{Source: source}
}

// ProcessFrame captures the source time. Call it once at the start of a frame.
func (f *Framed) ProcessFrame() {
	now := f.Source.CurrentTime()

	if f.started {
		f.elapsed = now - f.current
	}

	f.current = now
	f.started = true
}

func (f *Framed) CurrentTime() float64 {
	return f.current
}

// ElapsedFrameTime is the time passed since the previous frame. It is
// negative when the source went backwards.
func (f *Framed) ElapsedFrameTime() float64 {
	return f.elapsed
}
