package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeWorker блокируется в Start до вызова Stop
type fakeWorker struct {
	name     string
	started  chan struct{}
	stop     chan struct{}
	stopped  atomic.Bool
	startErr error
}

func newFakeWorker(name string) *fakeWorker {
	return &fakeWorker{
		name:    name,
		started: make(chan struct{}),
		stop:    make(chan struct{}),
	}
}

func (w *fakeWorker) Start(ctx context.Context) error {
	close(w.started)
	if w.startErr != nil {
		return w.startErr
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-w.stop:
		return nil
	}
}

func (w *fakeWorker) Stop() error {
	if w.stopped.CompareAndSwap(false, true) {
		close(w.stop)
	}
	return nil
}

func (w *fakeWorker) Name() string {
	return w.name
}

func TestWorkerManager_StartWithoutWorkers(t *testing.T) {
	m := NewWorkerManager(zap.NewNop())

	err := m.Start(context.Background())

	assert.Error(t, err)
}

func TestWorkerManager_Lifecycle(t *testing.T) {
	m := NewWorkerManager(zap.NewNop())
	first := newFakeWorker("first")
	second := newFakeWorker("second")
	m.Register(first)
	m.Register(second)

	require.NoError(t, m.Start(context.Background()))

	for _, w := range []*fakeWorker{first, second} {
		select {
		case <-w.started:
		case <-time.After(time.Second):
			t.Fatalf("worker %s did not start", w.Name())
		}
	}

	require.NoError(t, m.Stop())
	assert.True(t, first.stopped.Load())
	assert.True(t, second.stopped.Load())
}

func TestWorkerManager_FailedWorkerDoesNotBlockStop(t *testing.T) {
	m := NewWorkerManager(zap.NewNop())
	broken := newFakeWorker("broken")
	broken.startErr = errors.New("boom")
	m.Register(broken)

	require.NoError(t, m.Start(context.Background()))
	<-broken.started

	assert.NoError(t, m.Stop())
}
