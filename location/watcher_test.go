package location

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReloadsOnChange(t *testing.T) {
	path := writeLocations(t, testLocations)
	store, err := NewFileStore(path, nil)
	require.NoError(t, err)

	watcher, err := NewWatcher(WatcherConfig{
		Store:         store,
		Path:          path,
		DebounceDelay: 20 * time.Millisecond,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, watcher.Start(ctx))
	defer watcher.Stop()

	updated := `
locations:
  - id: hq
    name: Renamed HQ
    status: publish
`
	require.NoError(t, os.WriteFile(path, []byte(updated), 0644))

	assert.Eventually(t, func() bool {
		rec, err := store.ByID(ctx, "hq")
		return err == nil && rec != nil && rec.Name == "Renamed HQ"
	}, 2*time.Second, 25*time.Millisecond)
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	path := writeLocations(t, testLocations)
	store, err := NewFileStore(path, nil)
	require.NoError(t, err)

	watcher, err := NewWatcher(WatcherConfig{
		Store:         store,
		Path:          path,
		DebounceDelay: 20 * time.Millisecond,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, watcher.Start(ctx))
	defer watcher.Stop()

	// A sibling file changing must not trigger a reload of broken data.
	sibling := path + ".bak"
	require.NoError(t, os.WriteFile(sibling, []byte("not yaml: ["), 0644))

	time.Sleep(100 * time.Millisecond)
	rec, err := store.ByID(ctx, "hq")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "Springfield HQ", rec.Name)
}
