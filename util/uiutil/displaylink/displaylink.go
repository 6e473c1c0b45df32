// Package displaylink calls a function once per frame on the UI thread while not paused.
package displaylink

import (
	"sync"
	"time"
)

// DisplayLink ticks in its own goroutine and posts the frame function through post, which should run it on the UI thread. It is created paused.
type DisplayLink struct {
	post func(func())
	fn   func()
	dur  time.Duration

	mu      sync.Mutex
	paused  bool
	closed  bool
	gen     int  // incremented on pause, frames posted before are dropped
	pending bool // a frame was posted and didn't run yet
	wake    chan struct{}
	done    chan struct{}
	started bool
}

func New(post func(func()), fn func(), fps int) *DisplayLink {
	if fps <= 0 {
		fps = 60
	}
	return &DisplayLink{
		post:   post,
		fn:     fn,
		dur:    time.Second / time.Duration(fps),
		paused: true,
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

// Start launches the ticker goroutine. The link stays paused until Resume.
func (dl *DisplayLink) Start() {
	dl.mu.Lock()
	defer dl.mu.Unlock()
	if dl.started || dl.closed {
		return
	}
	dl.started = true
	go dl.loop()
}

func (dl *DisplayLink) Close() {
	dl.mu.Lock()
	defer dl.mu.Unlock()
	if dl.closed {
		return
	}
	dl.closed = true
	dl.gen++
	close(dl.done)
}

//----------

func (dl *DisplayLink) Paused() bool {
	dl.mu.Lock()
	defer dl.mu.Unlock()
	return dl.paused
}

func (dl *DisplayLink) Pause() {
	dl.mu.Lock()
	defer dl.mu.Unlock()
	if dl.paused {
		return
	}
	dl.paused = true
	dl.gen++
}

func (dl *DisplayLink) Resume() {
	dl.mu.Lock()
	defer dl.mu.Unlock()
	if !dl.paused || dl.closed {
		return
	}
	dl.paused = false
	select {
	case dl.wake <- struct{}{}:
	default:
	}
}

//----------

func (dl *DisplayLink) loop() {
	var ticker *time.Ticker
	var tick <-chan time.Time
	stop := func() {
		if ticker != nil {
			ticker.Stop()
			ticker, tick = nil, nil
		}
	}
	defer stop()

	for {
		select {
		case <-dl.done:
			return
		case <-dl.wake:
			if ticker == nil {
				ticker = time.NewTicker(dl.dur)
				tick = ticker.C
			}
			// first frame right away
			dl.Frame()
		case <-tick:
			if dl.Paused() {
				stop()
				continue
			}
			dl.Frame()
		}
	}
}

// Frame posts one frame unless paused or a frame is already pending. Called by the ticker goroutine, exported so tests can step frames without a ticker.
func (dl *DisplayLink) Frame() {
	dl.mu.Lock()
	if dl.paused || dl.closed || dl.pending {
		dl.mu.Unlock()
		return
	}
	dl.pending = true
	gen := dl.gen
	dl.mu.Unlock()

	dl.post(func() { dl.run(gen) })
}

func (dl *DisplayLink) run(gen int) {
	dl.mu.Lock()
	dl.pending = false
	ok := gen == dl.gen && !dl.paused
	dl.mu.Unlock()
	if ok {
		dl.fn()
	}
}
