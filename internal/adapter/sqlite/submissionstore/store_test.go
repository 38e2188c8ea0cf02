package submissionstore

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/bhajan-roster.net/internal/adapter/logging"
	"gitlab.com/bhajan-roster.net/internal/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "roster.db"), logging.NewNopLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func newSub(deity, singer string, partner string, at time.Time) *domain.Submission {
	return domain.NewSubmission("2024-06-06", deity, domain.TempoMedium, domain.SubmissionData{
		SingerName:  singer,
		PartnerName: partner,
		Title:       deity + " song",
		Scale:       "D",
	}, at)
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open(context.Background(), " ", logging.NewNopLogger())
	assert.Error(t, err)
}

func TestInsertAndRead(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	at := time.Date(2024, 6, 1, 10, 30, 0, 123000000, time.UTC)
	sub := newSub("Krishna", "Amy", "Raj", at)

	res, err := store.InsertIfAbsent(ctx, sub)
	require.NoError(t, err)
	assert.True(t, res.Inserted)

	got, err := store.FindByKey(ctx, "2024-06-06", "KRISHNA")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, sub.ID, got.ID)
	assert.Equal(t, "Krishna", got.Deity)
	assert.Equal(t, "D", got.Scale)
	assert.Equal(t, domain.TempoMedium, got.Speed)
	assert.True(t, at.Equal(got.CreatedAt))
	require.NotNil(t, got.PartnerName)
	assert.Equal(t, "Raj", *got.PartnerName)
}

func TestInsertIfAbsentReturnsExisting(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	_, err := store.InsertIfAbsent(ctx, newSub("Sai", "Amy", "", time.Now()))
	require.NoError(t, err)

	res, err := store.InsertIfAbsent(ctx, newSub("sai", "Zoe", "", time.Now()))
	require.NoError(t, err)
	assert.False(t, res.Inserted)
	require.NotNil(t, res.Existing)
	assert.Equal(t, "Amy", res.Existing.SingerName)
	assert.Nil(t, res.Existing.PartnerName)
}

func TestFindAllByDateOrdersByCreation(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	_, err := store.InsertIfAbsent(ctx, newSub("Rama", "Bob", "", base.Add(time.Minute)))
	require.NoError(t, err)
	_, err = store.InsertIfAbsent(ctx, newSub("Guru", "Amy", "", base))
	require.NoError(t, err)

	subs, err := store.FindAllByDate(ctx, "2024-06-06")
	require.NoError(t, err)
	require.Len(t, subs, 2)
	assert.Equal(t, "Guru", subs[0].Deity)
	assert.Equal(t, "Rama", subs[1].Deity)

	other, err := store.FindAllByDate(ctx, "2024-06-13")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestConcurrentInsertsKeepOneRow(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	const writers = 10
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		inserted int
	)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := store.InsertIfAbsent(ctx, newSub("Shiva", string(rune('A'+i)), "", time.Now()))
			if err != nil {
				t.Errorf("insert: %v", err)
				return
			}
			if res.Inserted {
				mu.Lock()
				inserted++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, inserted)
	subs, err := store.FindAllByDate(ctx, "2024-06-06")
	require.NoError(t, err)
	assert.Len(t, subs, 1)
}
