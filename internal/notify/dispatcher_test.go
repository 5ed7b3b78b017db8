package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/smallbiznis/threadline/internal/providers/email"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
)

type fakeProvider struct {
	mu       sync.Mutex
	failures int
	sent     []email.Message
}

func (f *fakeProvider) Send(_ context.Context, msg email.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failures > 0 {
		f.failures--
		return errors.New("smtp unavailable")
	}
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeProvider) sentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func newTestDispatcher(t *testing.T, provider email.Provider) (Dispatcher, *fxtest.Lifecycle) {
	t.Helper()
	lc := fxtest.NewLifecycle(t)
	d := New(Params{LC: lc, Log: zap.NewNop(), Email: provider})
	lc.RequireStart()
	return d, lc
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestDispatcher_Delivers(t *testing.T) {
	provider := &fakeProvider{}
	d, lc := newTestDispatcher(t, provider)
	defer lc.RequireStop()

	ok := d.Enqueue(Notification{To: "owner@example.com", Subject: "hi", Body: "hello"})
	assert.True(t, ok)

	waitFor(t, func() bool { return provider.sentCount() == 1 })
	assert.Equal(t, "owner@example.com", provider.sent[0].To)
}

func TestDispatcher_RetriesUntilSuccess(t *testing.T) {
	provider := &fakeProvider{failures: 1}
	d, lc := newTestDispatcher(t, provider)
	defer lc.RequireStop()

	require.True(t, d.Enqueue(Notification{To: "member@example.com", Subject: "approved"}))

	waitFor(t, func() bool { return provider.sentCount() == 1 })
}

func TestDispatcher_EnqueueNeverBlocks(t *testing.T) {
	// Worker not started: the queue fills up and further enqueues are
	// rejected instead of blocking.
	d := &dispatcher{
		log:   zap.NewNop(),
		email: &fakeProvider{},
		queue: make(chan Notification, 2),
		done:  make(chan struct{}),
	}

	assert.True(t, d.Enqueue(Notification{To: "a@example.com"}))
	assert.True(t, d.Enqueue(Notification{To: "b@example.com"}))
	assert.False(t, d.Enqueue(Notification{To: "c@example.com"}))
}

func TestDispatcher_DrainsQueueOnStop(t *testing.T) {
	provider := &fakeProvider{}
	d, lc := newTestDispatcher(t, provider)

	for i := 0; i < 5; i++ {
		require.True(t, d.Enqueue(Notification{To: "owner@example.com", Subject: "batch"}))
	}

	lc.RequireStop()
	assert.Equal(t, 5, provider.sentCount())
}
