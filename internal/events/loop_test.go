package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoopRunsTasksInOrder(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	l := NewLoop(8)
	go l.Run(ctx)

	var seen []int
	for i := 0; i < 5; i++ {
		i := i
		require.True(t, l.Post(func() { seen = append(seen, i) }))
	}
	require.NoError(t, l.Do(ctx, func() {}))

	assert.Equal(t, []int{0, 1, 2, 3, 4}, seen)
}

func TestLoopSurvivesPanickingTask(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	l := NewLoop(1)
	go l.Run(ctx)

	l.Post(func() { panic("boom") })
	ran := false
	require.NoError(t, l.Do(ctx, func() { ran = true }))
	assert.True(t, ran)
}

func TestLoopRejectsAfterStop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	l := NewLoop(0)
	stopped := make(chan struct{})
	go func() {
		_ = l.Run(ctx)
		close(stopped)
	}()
	cancel()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("loop did not stop")
	}
	assert.False(t, l.Post(func() {}))
	assert.Error(t, l.Do(context.Background(), func() {}))
}
