package displaylink

import (
	"testing"
	"time"
)

func newTestLink() (*DisplayLink, chan func(), *int) {
	q := make(chan func(), 8)
	n := 0
	dl := New(func(f func()) { q <- f }, func() { n++ }, 60)
	return dl, q, &n
}

func drain(q chan func()) int {
	k := 0
	for {
		select {
		case f := <-q:
			f()
			k++
		default:
			return k
		}
	}
}

//----------

func TestCreatedPaused(t *testing.T) {
	dl, q, n := newTestLink()
	if !dl.Paused() {
		t.Fatal("not paused")
	}
	dl.Frame()
	if drain(q) != 0 || *n != 0 {
		t.Fatal(*n)
	}
}

func TestFrameWhileResumed(t *testing.T) {
	dl, q, n := newTestLink()
	dl.Resume()
	dl.Frame()
	dl.Frame() // one frame pending at most
	if k := drain(q); k != 1 || *n != 1 {
		t.Fatal(k, *n)
	}
	dl.Frame()
	drain(q)
	if *n != 2 {
		t.Fatal(*n)
	}
}

func TestPauseDropsQueuedFrame(t *testing.T) {
	dl, q, n := newTestLink()
	dl.Resume()
	dl.Frame()
	dl.Pause()
	if k := drain(q); k != 1 || *n != 0 {
		t.Fatal(k, *n)
	}

	// pause+resume before the queued frame runs still drops it
	dl.Resume()
	dl.Frame()
	dl.Pause()
	dl.Resume()
	drain(q)
	if *n != 0 {
		t.Fatal(*n)
	}
	dl.Frame()
	drain(q)
	if *n != 1 {
		t.Fatal(*n)
	}
}

func TestClose(t *testing.T) {
	dl, q, n := newTestLink()
	dl.Resume()
	dl.Frame()
	dl.Close()
	dl.Resume()
	dl.Frame()
	drain(q)
	if *n != 0 {
		t.Fatal(*n)
	}
	dl.Close() // idempotent
}

func TestTicker(t *testing.T) {
	q := make(chan func(), 8)
	ran := make(chan struct{}, 8)
	dl := New(func(f func()) { q <- f }, func() { ran <- struct{}{} }, 200)
	dl.Start()
	defer dl.Close()

	// ui thread
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		for {
			select {
			case f := <-q:
				f()
			case <-stop:
				return
			}
		}
	}()

	select {
	case <-ran:
		t.Fatal("ran while paused")
	case <-time.After(30 * time.Millisecond):
	}

	dl.Resume()
	for i := 0; i < 3; i++ {
		select {
		case <-ran:
		case <-time.After(2 * time.Second):
			t.Fatal("timeout")
		}
	}
	dl.Pause()
}
