package db

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestAwaitReady_FiresOnceStoreAnswers(t *testing.T) {
	calls := 0
	ping := func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("connection refused")
		}
		return nil
	}

	ready := make(chan struct{})
	go AwaitReady(context.Background(), time.Millisecond, ping, func() { close(ready) })

	select {
	case <-ready:
	case <-time.After(time.Second):
		t.Fatal("onReady never fired")
	}
	if calls != 3 {
		t.Errorf("ping called %d times, want 3", calls)
	}
}

func TestAwaitReady_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	fired := make(chan struct{}, 1)
	done := make(chan struct{})
	go func() {
		AwaitReady(ctx, time.Millisecond, func(context.Context) error {
			return errors.New("still down")
		}, func() { fired <- struct{}{} })
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("AwaitReady did not return after cancel")
	}
	select {
	case <-fired:
		t.Fatal("onReady fired for a store that never answered")
	default:
	}
}
