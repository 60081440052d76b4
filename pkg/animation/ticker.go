// Package animation provides the timing primitives that drive fluid scroll
// surfaces: an injectable [Clock] and per-trajectory [Ticker]s pumped once
// per display frame.
//
// The scroll core itself is a pure function of elapsed time; a Ticker is the
// bridge between a display-refresh callback and those closed-form queries.
// Each ballistic trajectory (a fling or a spring-back) starts a ticker when
// the finger lifts, and the embedding calls [StepTickers] from its frame
// callback:
//
//	for animation.HasActiveTickers() {
//	    animation.StepTickers() // once per display frame
//	}
//
// The ticker registry takes a mutex only to guard registration; callbacks
// run without the lock and the scroll core remains single-threaded.
package animation

import (
	"sync"
	"time"
)

var (
	tickerMu      sync.Mutex
	activeTickers = make(map[*Ticker]struct{})
)

// Ticker invokes a callback with the elapsed time since Start on every
// frame pump. Elapsed time is measured against the package clock, so a fake
// clock advances tickers deterministically.
type Ticker struct {
	callback func(elapsed time.Duration)
	active   bool
	started  time.Time
}

// NewTicker creates an inactive ticker with the given callback.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{callback: callback}
}

// Start marks the current clock time as elapsed zero and registers the
// ticker with the frame pump. Starting an active ticker restarts it.
func (t *Ticker) Start() {
	t.started = Now()
	if t.active {
		return
	}
	t.active = true
	tickerMu.Lock()
	activeTickers[t] = struct{}{}
	tickerMu.Unlock()
}

// Stop deregisters the ticker.
func (t *Ticker) Stop() {
	if !t.active {
		return
	}
	t.active = false
	tickerMu.Lock()
	delete(activeTickers, t)
	tickerMu.Unlock()
}

// IsActive reports whether the ticker is registered with the frame pump.
func (t *Ticker) IsActive() bool { return t.active }

// Elapsed returns the time since Start, or zero for an inactive ticker.
func (t *Ticker) Elapsed() time.Duration {
	if !t.active {
		return 0
	}
	return Now().Sub(t.started)
}

// StepTickers advances every active ticker. Call once per display frame.
func StepTickers() {
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	tickers := make([]*Ticker, 0, len(activeTickers))
	for t := range activeTickers {
		tickers = append(tickers, t)
	}
	tickerMu.Unlock()

	for _, t := range tickers {
		if t.active && t.callback != nil {
			t.callback(Now().Sub(t.started))
		}
	}
}

// HasActiveTickers reports whether any ticker is registered.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}
