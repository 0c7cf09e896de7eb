package session

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSweeperRemovesExpiredSessions(t *testing.T) {
	svc, repo, clock := newTestService(t)
	_, err := svc.Start(context.Background())
	require.NoError(t, err)
	clock.Advance(2 * time.Hour)

	sw, err := NewSweeper(svc, 20*time.Millisecond)
	require.NoError(t, err)
	sw.Start()
	t.Cleanup(func() { _ = sw.Stop() })

	require.Eventually(t, func() bool { return repo.Len() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestSweeperRunsAddedJobs(t *testing.T) {
	svc, _, _ := newTestService(t)
	sw, err := NewSweeper(svc, 20*time.Millisecond)
	require.NoError(t, err)

	var runs atomic.Int32
	require.NoError(t, sw.AddJob("count", func() { runs.Add(1) }))
	sw.Start()
	t.Cleanup(func() { _ = sw.Stop() })

	require.Eventually(t, func() bool { return runs.Load() >= 2 }, 2*time.Second, 10*time.Millisecond)
}
