package task

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestRunner_RunsEverySubmittedTask(t *testing.T) {
	runner := NewRunner(4)

	var counter atomic.Int64
	for i := 0; i < 200; i++ {
		runner.Submit(func() {
			counter.Add(1)
		})
	}

	runner.Close()
	if got := counter.Load(); got != 200 {
		t.Errorf("ran %d tasks, want 200", got)
	}
}

func TestRunner_SubmitNeverBlocks(t *testing.T) {
	runner := NewRunner(1)
	defer runner.Close()

	release := make(chan struct{})
	runner.Submit(func() { <-release })

	done := make(chan struct{})
	go func() {
		// The single worker is busy; submissions must still return.
		for i := 0; i < 100; i++ {
			runner.Submit(func() {})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Submit blocked while the worker was busy")
	}
	close(release)
}

func TestRunner_CloseWaitsForBacklog(t *testing.T) {
	runner := NewRunner(2)

	var mu sync.Mutex
	var order []int
	for i := 0; i < 20; i++ {
		i := i
		runner.Submit(func() {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
		})
	}

	runner.Close()
	mu.Lock()
	defer mu.Unlock()
	if len(order) != 20 {
		t.Errorf("Close returned with %d of 20 tasks run", len(order))
	}
}

func TestRunner_SubmitAfterCloseIsDropped(t *testing.T) {
	runner := NewRunner(1)
	runner.Close()

	var ran atomic.Bool
	runner.Submit(func() { ran.Store(true) })

	time.Sleep(50 * time.Millisecond)
	if ran.Load() {
		t.Error("task submitted after Close was executed")
	}
}

func TestRunner_MinimumOneWorker(t *testing.T) {
	runner := NewRunner(0)

	var ran atomic.Bool
	runner.Submit(func() { ran.Store(true) })
	runner.Close()

	if !ran.Load() {
		t.Error("runner with zero requested workers never ran the task")
	}
}
