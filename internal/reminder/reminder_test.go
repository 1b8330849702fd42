package reminder

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/asnmemo/internal/catalog"
	"github.com/example/asnmemo/internal/progress"
	"github.com/example/asnmemo/internal/scheduler"
	"github.com/example/asnmemo/internal/spaced_repetition"
	"github.com/example/asnmemo/pkg/models"
)

type countingNotifier struct {
	refreshes atomic.Int64
}

func (n *countingNotifier) NotifyDueRefresh() {
	n.refreshes.Add(1)
}

func TestRefreshSignalsNotifier(t *testing.T) {
	notifier := &countingNotifier{}
	rem := New(notifier)

	rem.refresh()
	rem.refresh()
	assert.Equal(t, int64(2), notifier.refreshes.Load())
}

// The refresh tick fires on a background goroutine while the UI goroutine
// grades cards. The tick must not read scheduler or store state, so the
// two must be able to run concurrently without synchronization.
func TestRefreshIsSafeAlongsideGrading(t *testing.T) {
	store := progress.NewStore(t.TempDir())
	_, err := store.Load()
	require.NoError(t, err)

	cat, err := catalog.New([]models.Network{
		{ASN: 3356, Name: "Lumen Technologies", Tier: models.TierOne},
	})
	require.NoError(t, err)
	sched := scheduler.New(cat, store, nil)

	notifier := &countingNotifier{}
	rem := New(notifier)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			rem.refresh()
		}
	}()

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 200; i++ {
		_, err := sched.Grade("3356", spaced_repetition.RatingGood, now)
		require.NoError(t, err)
		now = now.AddDate(0, 0, 1)
	}
	wg.Wait()

	assert.Equal(t, int64(200), notifier.refreshes.Load())
}
