package story

import (
	"sync"
	"time"
)

// cancels a pending schedule; safe to call more than once
type CancelFunc func()

// Scheduler abstracts timer ownership for the playback machine:
// Schedule fires fn once after d, Repeat fires fn every interval until
// canceled. The machine cancels the previous handle before scheduling
// a new one on every transition, so at most one countdown and one
// ticker exist at a time. Tests substitute a manual implementation.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) CancelFunc
	Repeat(interval time.Duration, fn func()) CancelFunc
}

// wall-clock scheduler backed by time.AfterFunc and time.Ticker
type realScheduler struct{}

func NewScheduler() Scheduler {
	return realScheduler{}
}

func (realScheduler) Schedule(d time.Duration, fn func()) CancelFunc {
	timer := time.AfterFunc(d, fn)

	var once sync.Once
	return func() {
		once.Do(func() { timer.Stop() })
	}
}

func (realScheduler) Repeat(interval time.Duration, fn func()) CancelFunc {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.C:
				fn()
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			ticker.Stop()
			close(done)
		})
	}
}
