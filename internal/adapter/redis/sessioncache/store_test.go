package sessioncache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/bhajan-roster.net/internal/adapter/logging"
	memorystore "gitlab.com/bhajan-roster.net/internal/adapter/memory/submissionstore"
	"gitlab.com/bhajan-roster.net/internal/domain"
)

const date = domain.SessionDate("2024-06-06")

type fakeCache struct {
	sessions    map[domain.SessionDate][]*domain.Submission
	gets        int
	invalidated int
	failReads   bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{sessions: make(map[domain.SessionDate][]*domain.Submission)}
}

func (c *fakeCache) GetSession(ctx context.Context, d domain.SessionDate) ([]*domain.Submission, bool, error) {
	c.gets++
	if c.failReads {
		return nil, false, errors.New("redis: connection refused")
	}
	subs, ok := c.sessions[d]
	return subs, ok, nil
}

func (c *fakeCache) SetSession(ctx context.Context, d domain.SessionDate, subs []*domain.Submission) error {
	c.sessions[d] = subs
	return nil
}

func (c *fakeCache) InvalidateSession(ctx context.Context, d domain.SessionDate) error {
	c.invalidated++
	delete(c.sessions, d)
	return nil
}

func newSub(deity, singer string) *domain.Submission {
	return domain.NewSubmission(date, deity, domain.TempoFast, domain.SubmissionData{SingerName: singer, Title: "t"}, time.Now())
}

func TestCachedStoreReadThrough(t *testing.T) {
	backing := memorystore.New()
	cache := newFakeCache()
	store := NewCachedStore(backing, cache, logging.NewNopLogger())
	ctx := context.Background()

	_, err := store.InsertIfAbsent(ctx, newSub("Sai", "Amy"))
	require.NoError(t, err)
	assert.Equal(t, 1, cache.invalidated)

	first, err := store.FindAllByDate(ctx, date)
	require.NoError(t, err)
	require.Len(t, first, 1)
	require.Contains(t, cache.sessions, date)

	// served from cache even though the backing store gains a row behind its back
	_, err = backing.InsertIfAbsent(ctx, newSub("Rama", "Bob"))
	require.NoError(t, err)
	cached, err := store.FindAllByDate(ctx, date)
	require.NoError(t, err)
	assert.Len(t, cached, 1)

	_, err = store.InsertIfAbsent(ctx, newSub("Guru", "Cara"))
	require.NoError(t, err)
	fresh, err := store.FindAllByDate(ctx, date)
	require.NoError(t, err)
	assert.Len(t, fresh, 3)
}

func TestCachedStoreSkipsInvalidationOnRejectedInsert(t *testing.T) {
	cache := newFakeCache()
	store := NewCachedStore(memorystore.New(), cache, logging.NewNopLogger())
	ctx := context.Background()

	_, err := store.InsertIfAbsent(ctx, newSub("Sai", "Amy"))
	require.NoError(t, err)
	res, err := store.InsertIfAbsent(ctx, newSub("Sai", "Zoe"))
	require.NoError(t, err)
	assert.False(t, res.Inserted)
	assert.Equal(t, 1, cache.invalidated)
}

func TestCachedStoreBypassesBrokenCache(t *testing.T) {
	backing := memorystore.New()
	cache := newFakeCache()
	cache.failReads = true
	store := NewCachedStore(backing, cache, logging.NewNopLogger())
	ctx := context.Background()

	_, err := backing.InsertIfAbsent(ctx, newSub("Sai", "Amy"))
	require.NoError(t, err)

	subs, err := store.FindAllByDate(ctx, date)
	require.NoError(t, err)
	assert.Len(t, subs, 1)
}

func TestSessionKey(t *testing.T) {
	assert.Equal(t, "roster:session:2024-06-06", sessionKey(date))
}
