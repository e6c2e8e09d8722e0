package poller

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const testInterval = 5 * time.Millisecond

func waitForTicks(t *testing.T, ticks <-chan struct{}, n int) {
	t.Helper()

	timeout := time.After(2 * time.Second)

	for i := 0; i < n; i++ {
		select {
		case <-ticks:
		case <-timeout:
			t.Fatalf("received %d of %d ticks before timing out", i, n)
		}
	}
}

func tickRecorder() (func(), <-chan struct{}) {
	ticks := make(chan struct{}, 64)

	return func() {
		select {
		case ticks <- struct{}{}:
		default:
		}
	}, ticks
}

func TestDefaultInterval(t *testing.T) {
	assert.Equal(t, time.Second, New(0).interval)
	assert.Equal(t, time.Second, New(-time.Minute).interval)
	assert.Equal(t, testInterval, New(testInterval).interval)
}

func TestStartInvokesCallback(t *testing.T) {
	p := New(testInterval)

	callback, ticks := tickRecorder()

	assert.True(t, p.Start(callback))
	assert.True(t, p.Active())

	waitForTicks(t, ticks, 3)

	p.Stop()
	assert.False(t, p.Active())
}

func TestStartIsIdempotent(t *testing.T) {
	p := New(testInterval)

	var first, second atomic.Int64

	assert.True(t, p.Start(func() { first.Add(1) }))
	assert.False(t, p.Start(func() { second.Add(1) }))

	time.Sleep(10 * testInterval)

	p.Stop()

	assert.Positive(t, first.Load())
	assert.Zero(t, second.Load())
}

func TestNoCallbackAfterStop(t *testing.T) {
	p := New(time.Millisecond)

	var count atomic.Int64

	p.Start(func() { count.Add(1) })

	time.Sleep(10 * time.Millisecond)

	p.Stop()

	stopped := count.Load()

	time.Sleep(20 * time.Millisecond)

	assert.Equal(t, stopped, count.Load())
}

func TestStopWhenIdle(t *testing.T) {
	p := New(testInterval)

	assert.NotPanics(t, p.Stop)
	assert.NotPanics(t, p.Stop)
	assert.False(t, p.Active())
}

func TestRestart(t *testing.T) {
	p := New(testInterval)

	for i := 0; i < 3; i++ {
		callback, ticks := tickRecorder()

		assert.True(t, p.Start(callback))
		waitForTicks(t, ticks, 1)
		p.Stop()
	}

	goleak.VerifyNone(t)
}
