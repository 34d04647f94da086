package main

import (
	"sync"
	"time"
)

// debounced wraps a callback so it fires once per quiet period: each Call
// cancels the pending timer and re-arms it with the latest argument.
type debounced[T any] struct {
	mu    sync.Mutex
	delay time.Duration
	fn    func(T)
	timer *time.Timer
}

func newDebounced[T any](delay time.Duration, fn func(T)) *debounced[T] {
	return &debounced[T]{delay: delay, fn: fn}
}

func (d *debounced[T]) Call(arg T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() { d.fn(arg) })
}

// Stop cancels any pending invocation.
func (d *debounced[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
