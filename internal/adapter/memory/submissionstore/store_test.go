package submissionstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/bhajan-roster.net/internal/domain"
)

func newSub(date domain.SessionDate, deity, singer string) *domain.Submission {
	return domain.NewSubmission(date, deity, domain.TempoSlow, domain.SubmissionData{
		SingerName:  singer,
		PartnerName: "Raj",
		Title:       deity + " song",
	}, time.Now())
}

func TestInsertIfAbsent(t *testing.T) {
	store := New()
	ctx := context.Background()

	res, err := store.InsertIfAbsent(ctx, newSub("2024-06-06", "Sai", "Amy"))
	require.NoError(t, err)
	assert.True(t, res.Inserted)

	res, err = store.InsertIfAbsent(ctx, newSub("2024-06-06", "SAI", "Zoe"))
	require.NoError(t, err)
	assert.False(t, res.Inserted)
	require.NotNil(t, res.Existing)
	assert.Equal(t, "Amy", res.Existing.SingerName)

	res, err = store.InsertIfAbsent(ctx, newSub("2024-06-13", "Sai", "Zoe"))
	require.NoError(t, err)
	assert.True(t, res.Inserted)
	assert.Equal(t, 2, store.Len())
}

func TestFindAllByDateKeepsInsertionOrder(t *testing.T) {
	store := New()
	ctx := context.Background()
	for _, deity := range []string{"Rama", "Ganesha", "Sai"} {
		_, err := store.InsertIfAbsent(ctx, newSub("2024-06-06", deity, "Amy"))
		require.NoError(t, err)
	}

	subs, err := store.FindAllByDate(ctx, "2024-06-06")
	require.NoError(t, err)
	require.Len(t, subs, 3)
	assert.Equal(t, "Rama", subs[0].Deity)
	assert.Equal(t, "Ganesha", subs[1].Deity)
	assert.Equal(t, "Sai", subs[2].Deity)

	none, err := store.FindAllByDate(ctx, "2024-06-13")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestReturnedSubmissionsAreCopies(t *testing.T) {
	store := New()
	ctx := context.Background()
	_, err := store.InsertIfAbsent(ctx, newSub("2024-06-06", "Sai", "Amy"))
	require.NoError(t, err)

	got, err := store.FindByKey(ctx, "2024-06-06", "sai")
	require.NoError(t, err)
	got.SingerName = "Mallory"
	*got.PartnerName = "Eve"

	again, err := store.FindByKey(ctx, "2024-06-06", "Sai")
	require.NoError(t, err)
	assert.Equal(t, "Amy", again.SingerName)
	assert.Equal(t, "Raj", *again.PartnerName)
}

func TestFindByKeyMissing(t *testing.T) {
	got, err := New().FindByKey(context.Background(), "2024-06-06", "Sai")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New().InsertIfAbsent(ctx, newSub("2024-06-06", "Sai", "Amy"))
	assert.ErrorIs(t, err, context.Canceled)
}
