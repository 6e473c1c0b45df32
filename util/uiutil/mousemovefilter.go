package uiutil

import (
	"time"

	"github.com/jmigpin/mapscalebar/util/uiutil/event"
)

// MouseMoveFilterLoop forwards events from in to out, keeping only the last mouse move within a frame. Closes nothing; returns when in is closed or done is closed.
func MouseMoveFilterLoop(in <-chan interface{}, out chan<- interface{}, done <-chan struct{}, fps int) {
	frameDur := time.Second / time.Duration(fps)
	var kept interface{}
	var timer *time.Timer
	var timeToSend <-chan time.Time
	var lastSent time.Time

	// false if done was closed
	send1 := func(ev interface{}) bool {
		select {
		case out <- ev:
			return true
		case <-done:
			return false
		}
	}
	send := func() bool {
		if timer != nil {
			timer.Stop()
			timer, timeToSend = nil, nil
		}
		if kept == nil {
			return true
		}
		ev := kept
		kept = nil
		lastSent = time.Now()
		return send1(ev)
	}

	for {
		select {
		case <-done:
			return
		case ev, ok := <-in:
			if !ok {
				send()
				return
			}
			if !isMouseMove(ev) {
				// keep order
				if !send() || !send1(ev) {
					return
				}
				continue
			}
			kept = ev
			if timer != nil {
				continue
			}
			if d := time.Since(lastSent); d >= frameDur {
				if !send() {
					return
				}
			} else {
				timer = time.NewTimer(frameDur - d)
				timeToSend = timer.C
			}
		case <-timeToSend:
			timer, timeToSend = nil, nil
			if !send() {
				return
			}
		}
	}
}

func isMouseMove(ev interface{}) bool {
	if wi, ok := ev.(*event.WindowInput); ok {
		_, ok := wi.Event.(*event.MouseMove)
		return ok
	}
	return false
}
