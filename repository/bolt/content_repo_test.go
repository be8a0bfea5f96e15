package bolt

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	boltdb "go.etcd.io/bbolt"

	"github.com/soilhealth-et/portal/domain"
)

func openTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := Open(filepath.Join(t.TempDir(), "content.db"), "")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestLoadEmptySlot(t *testing.T) {
	repo := openTestRepo(t)

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrContentNotFound)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	content := domain.DefaultContent()
	require.NoError(t, repo.Save(ctx, content))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, content, loaded)
}

func TestSaveOverwritesSlot(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	first := domain.DefaultContent()
	require.NoError(t, repo.Save(ctx, first))

	second := first.Clone()
	second.SiteName = "renamed"
	require.NoError(t, repo.Save(ctx, second))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "renamed", loaded.SiteName)
}

func TestLoadCorruptSlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.db")
	repo, err := Open(path, "site")
	require.NoError(t, err)
	defer repo.Close()

	require.NoError(t, repo.db.Update(func(tx *boltdb.Tx) error {
		return tx.Bucket([]byte("site")).Put([]byte(contentKey), []byte("{not json"))
	}))

	_, err = repo.Load(context.Background())
	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
}

func TestSlotSize(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	size, err := repo.SlotSize()
	require.NoError(t, err)
	assert.Zero(t, size)

	require.NoError(t, repo.Save(ctx, domain.DefaultContent()))
	size, err = repo.SlotSize()
	require.NoError(t, err)
	assert.Greater(t, size, 0)
}

func TestCompactKeepsContent(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	content := domain.DefaultContent()
	// Churn the slot so compaction has freed pages to reclaim.
	for i := 0; i < 10; i++ {
		next := content.Clone()
		next.HeroImageURL = domain.DataURI("image/png", make([]byte, 4096))
		require.NoError(t, repo.Save(ctx, next))
	}
	require.NoError(t, repo.Save(ctx, content))

	require.NoError(t, repo.Compact())

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, content, loaded)
	assert.True(t, repo.Available())
}

func TestSaveRespectsContext(t *testing.T) {
	repo := openTestRepo(t)

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	err := repo.Save(ctx, domain.DefaultContent())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClose(t *testing.T) {
	repo := openTestRepo(t)
	require.NoError(t, repo.Close())
	assert.False(t, repo.Available())
	assert.NoError(t, repo.Close())
}
