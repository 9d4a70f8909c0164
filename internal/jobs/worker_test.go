package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWorkerProcessesQueuedJobs(t *testing.T) {
	w := NewWorker(2)
	defer w.Shutdown()

	var ran atomic.Int32
	done := make(chan struct{})
	w.Enqueue(func(ctx context.Context) error {
		ran.Add(1)
		close(done)
		return nil
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("queued job did not run")
	}
	assert.Equal(t, int32(1), ran.Load())
}

func TestWorkerTracksFailures(t *testing.T) {
	w := NewWorker(1)
	defer w.Shutdown()

	done := make(chan struct{})
	w.Enqueue(func(ctx context.Context) error {
		defer close(done)
		return errors.New("boom")
	})
	<-done

	// Stats update happens right after the job returns
	assert.Eventually(t, func() bool {
		return w.GetStats().FailedJobs == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestWorkerAsyncJobsRun(t *testing.T) {
	w := NewWorker(1)
	defer w.Shutdown()

	done := make(chan struct{})
	w.EnqueueAsync(func(ctx context.Context) error {
		close(done)
		return nil
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("async job did not run")
	}
}

func TestWorkerShutdownWaitsForInFlightJob(t *testing.T) {
	w := NewWorker(1)

	started := make(chan struct{})
	var ran atomic.Int32
	w.Enqueue(func(ctx context.Context) error {
		close(started)
		time.Sleep(50 * time.Millisecond)
		ran.Add(1)
		return nil
	})

	<-started
	w.Shutdown()
	assert.Equal(t, int32(1), ran.Load())
}
