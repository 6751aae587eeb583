package cron

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRunOnceRunsEveryJob(t *testing.T) {
	s := NewScheduler()

	var calls []string
	s.AddJob("first", time.Hour, func(context.Context) error {
		calls = append(calls, "first")
		return nil
	})
	s.AddJob("failing", time.Hour, func(context.Context) error {
		calls = append(calls, "failing")
		return errors.New("boom")
	})
	s.AddJob("last", time.Hour, func(context.Context) error {
		calls = append(calls, "last")
		return nil
	})

	s.RunOnce(context.Background())

	want := []string{"first", "failing", "last"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("calls[%d] = %q, want %q", i, calls[i], want[i])
		}
	}
}

func TestStartRunsJobImmediatelyAndStopCancels(t *testing.T) {
	s := NewScheduler()

	ran := make(chan struct{}, 1)
	var jobCtx context.Context
	s.AddJob("tick", time.Hour, func(ctx context.Context) error {
		jobCtx = ctx
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})

	s.Start()
	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run on start")
	}

	s.Stop()
	select {
	case <-jobCtx.Done():
	default:
		t.Error("job context not cancelled after Stop")
	}
}
