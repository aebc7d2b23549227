package service

import (
	"context"
	"time"

	"coinbot/events"
)

// fakeRand returns a fixed sequence of draws, cycling when exhausted.
type fakeRand struct {
	values []int
	next   int
}

func (r *fakeRand) Intn(n int) int {
	v := r.values[r.next%len(r.values)]
	r.next++
	return v % n
}

// nopPublisher drops all events.
type nopPublisher struct{}

func (nopPublisher) Emit(ctx context.Context, event events.Event) {}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func timePtr(t time.Time) *time.Time {
	return &t
}
