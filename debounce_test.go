package main

import (
	"sync"
	"testing"
	"time"
)

func TestDebounceCollapsesBurst(t *testing.T) {
	var mu sync.Mutex
	var got []int

	d := newDebounced(20*time.Millisecond, func(v int) {
		mu.Lock()
		got = append(got, v)
		mu.Unlock()
	})

	for i := 1; i <= 5; i++ {
		d.Call(i)
		time.Sleep(2 * time.Millisecond)
	}

	time.Sleep(80 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 1 {
		t.Fatalf("expected exactly one invocation, got %d", len(got))
	}
	if got[0] != 5 {
		t.Errorf("expected last argument 5, got %d", got[0])
	}
}

func TestDebounceFiresAgainAfterQuietPeriod(t *testing.T) {
	var mu sync.Mutex
	count := 0

	d := newDebounced(10*time.Millisecond, func(int) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	d.Call(1)
	time.Sleep(40 * time.Millisecond)
	d.Call(2)
	time.Sleep(40 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if count != 2 {
		t.Fatalf("expected two invocations across two quiet periods, got %d", count)
	}
}

func TestDebounceStopCancelsPending(t *testing.T) {
	var mu sync.Mutex
	count := 0

	d := newDebounced(15*time.Millisecond, func(int) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	d.Call(1)
	d.Stop()
	time.Sleep(50 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if count != 0 {
		t.Fatalf("expected no invocations after Stop, got %d", count)
	}
}
