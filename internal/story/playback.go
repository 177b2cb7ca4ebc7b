package story

import (
	"sync"
	"time"
)

const (
	// auto-advance duration for slides without an override
	DefaultSlideDuration = 6 * time.Second

	// how often progress is sampled while a slide is active
	progressInterval = 50 * time.Millisecond
)

// current playback position
type PlaybackState struct {
	Index    int     `json:"index"`
	Progress float64 `json:"progress"` // 0.0 - 1.0 of the slide's duration
}

// playback event callbacks; all are optional and invoked without the
// machine lock held, so they may call back into the machine
type Callbacks struct {
	OnSlideChange func(index int, slide Slide)
	OnProgress    func(index int, progress float64)
	OnComplete    func()
}

// Machine drives which slide is active: auto-advance with live
// progress, manual forward and back navigation, and direct jumps.
// Every transition cancels the leaving slide's countdown and progress
// ticker before starting the next, so a stale timer can never fire
// against the wrong index or advance twice. After completion the
// machine is terminal and all further transitions are no-ops; the
// caller is expected to discard it.
type Machine struct {
	mu     sync.Mutex
	slides []Slide
	cb     Callbacks
	sched  Scheduler
	clock  func() time.Time

	index    int
	startAt  time.Time
	done     bool
	started  bool
	timerGen uint64

	cancelTimer  CancelFunc
	cancelTicker CancelFunc
}

type MachineOption func(*Machine)

// overrides the wall-clock scheduler (used by the TUI and tests)
func WithScheduler(s Scheduler) MachineOption {
	return func(m *Machine) { m.sched = s }
}

// overrides the clock used for progress sampling
func WithClock(clock func() time.Time) MachineOption {
	return func(m *Machine) { m.clock = clock }
}

// starts playback at a slide other than the first
func WithInitialIndex(index int) MachineOption {
	return func(m *Machine) {
		if index >= 0 && index < len(m.slides) {
			m.index = index
		}
	}
}

func NewMachine(slides []Slide, cb Callbacks, opts ...MachineOption) *Machine {
	m := &Machine{
		slides: slides,
		cb:     cb,
		sched:  NewScheduler(),
		clock:  time.Now,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// begins playback on the initial slide
func (m *Machine) Start() {
	m.mu.Lock()

	if m.started || m.done || len(m.slides) == 0 {
		m.mu.Unlock()
		return
	}

	m.started = true
	index := m.index
	slide := m.slides[index]
	m.armLocked()
	m.mu.Unlock()

	if m.cb.OnSlideChange != nil {
		m.cb.OnSlideChange(index, slide)
	}
}

// advances one slide; at the last slide it ends the session instead
func (m *Machine) Next() {
	m.transition(noGuard, moveNext)
}

func moveNext(index, n int) (int, bool) {
	if index < n-1 {
		return index + 1, true
	}
	return index, false // terminal
}

// retreats one slide; no-op at the first slide
func (m *Machine) Prev() {
	m.transition(noGuard, func(index, n int) (int, bool) {
		if index > 0 {
			return index - 1, true
		}
		return index, true // stays put; transition leaves the countdown alone
	})
}

// jumps directly to a slide; out-of-range indexes are ignored
func (m *Machine) GoTo(i int) {
	m.transition(noGuard, func(index, n int) (int, bool) {
		if i >= 0 && i < n {
			return i, true
		}
		return index, true
	})
}

// stops all timers and ends the session without the completion
// callback firing twice
func (m *Machine) Close() {
	m.mu.Lock()

	if m.done {
		m.mu.Unlock()
		return
	}

	m.done = true
	m.disarmLocked()
	m.mu.Unlock()

	if m.cb.OnComplete != nil {
		m.cb.OnComplete()
	}
}

// returns the current position
func (m *Machine) State() PlaybackState {
	m.mu.Lock()
	defer m.mu.Unlock()

	return PlaybackState{Index: m.index, Progress: m.progressLocked()}
}

func (m *Machine) Slides() []Slide {
	return m.slides
}

// sentinel meaning "not fired by a timer"; manual navigation always applies
const noGuard = ^uint64(0)

// applies a transition decided by move: the returned index becomes
// active, or the session ends when move reports terminal. Progress
// always resets to zero on navigation, never restores. A timer-fired
// transition carries the generation it was armed for and is dropped
// when a manual transition already disarmed that generation.
func (m *Machine) transition(gen uint64, move func(index, n int) (int, bool)) {
	m.mu.Lock()

	if m.done || !m.started {
		m.mu.Unlock()
		return
	}

	if gen != noGuard && gen != m.timerGen {
		m.mu.Unlock()
		return
	}

	next, keepGoing := move(m.index, len(m.slides))

	if !keepGoing {
		m.done = true
		m.disarmLocked()
		m.mu.Unlock()

		if m.cb.OnComplete != nil {
			m.cb.OnComplete()
		}
		return
	}

	if next == m.index {
		// rejected navigation leaves the running countdown untouched
		m.mu.Unlock()
		return
	}

	m.index = next
	m.disarmLocked()
	m.armLocked()
	slide := m.slides[next]
	m.mu.Unlock()

	if m.cb.OnSlideChange != nil {
		m.cb.OnSlideChange(next, slide)
	}
}

// arms the countdown and progress ticker for the current slide.
// The generation counter guards against a canceled timer that already
// fired and is waiting on the lock.
func (m *Machine) armLocked() {
	m.startAt = m.clock()
	m.timerGen++
	gen := m.timerGen

	duration := m.slideDurationLocked()

	m.cancelTimer = m.sched.Schedule(duration, func() {
		m.transition(gen, moveNext)
	})

	if m.cb.OnProgress != nil {
		m.cancelTicker = m.sched.Repeat(progressInterval, func() {
			m.mu.Lock()
			if m.done || gen != m.timerGen {
				m.mu.Unlock()
				return
			}
			index := m.index
			progress := m.progressLocked()
			m.mu.Unlock()

			m.cb.OnProgress(index, progress)
		})
	}
}

// cancels any pending countdown and ticker
func (m *Machine) disarmLocked() {
	if m.cancelTimer != nil {
		m.cancelTimer()
		m.cancelTimer = nil
	}

	if m.cancelTicker != nil {
		m.cancelTicker()
		m.cancelTicker = nil
	}
}

func (m *Machine) slideDurationLocked() time.Duration {
	slide := m.slides[m.index]

	if slide.DurationMs > 0 {
		return time.Duration(slide.DurationMs) * time.Millisecond
	}

	return DefaultSlideDuration
}

// elapsed fraction of the active slide's duration, clamped to [0, 1]
func (m *Machine) progressLocked() float64 {
	if !m.started || m.done {
		return 0
	}

	duration := m.slideDurationLocked()
	elapsed := m.clock().Sub(m.startAt)

	progress := float64(elapsed) / float64(duration)

	if progress < 0 {
		return 0
	}

	if progress > 1 {
		return 1
	}

	return progress
}
