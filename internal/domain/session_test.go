package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSessionDate(t *testing.T) {
	d, err := ParseSessionDate(" 2024-06-06 ")
	require.NoError(t, err)
	assert.Equal(t, SessionDate("2024-06-06"), d)
	assert.Equal(t, time.Date(2024, 6, 6, 0, 0, 0, 0, time.UTC), d.Time())

	for _, bad := range []string{"", "06/06/2024", "2024-13-01", "2024-06-06T10:00:00Z"} {
		_, err := ParseSessionDate(bad)
		assert.Error(t, err, bad)
	}
}

func TestSessionDateScan(t *testing.T) {
	var d SessionDate

	require.NoError(t, d.Scan(time.Date(2024, 6, 6, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, SessionDate("2024-06-06"), d)

	require.NoError(t, d.Scan("2024-06-13T00:00:00Z"))
	assert.Equal(t, SessionDate("2024-06-13"), d)

	require.NoError(t, d.Scan([]byte("2024-06-20")))
	assert.Equal(t, SessionDate("2024-06-20"), d)

	assert.Error(t, d.Scan(42))
}

func TestNewSubmissionDefaults(t *testing.T) {
	now := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)
	sub := NewSubmission("2024-06-06", "Sai", TempoSlow, SubmissionData{
		SingerName:  " Amy ",
		PartnerName: "   ",
		Title:       " Sai Ram ",
	}, now)

	assert.Equal(t, "Amy", sub.SingerName)
	assert.Equal(t, "Sai Ram", sub.Title)
	assert.Equal(t, ScaleNotSpecified, sub.Scale)
	assert.Nil(t, sub.PartnerName)
	assert.Equal(t, now, sub.CreatedAt)
	assert.NotEqual(t, [16]byte{}, [16]byte(sub.ID))

	withPartner := NewSubmission("2024-06-06", "Sai", TempoSlow, SubmissionData{
		SingerName:  "Amy",
		PartnerName: "Raj",
		Title:       "Sai Ram",
		Scale:       "C#",
	}, now)
	require.NotNil(t, withPartner.PartnerName)
	assert.Equal(t, "Raj", *withPartner.PartnerName)
	assert.Equal(t, "C#", withPartner.Scale)
}

func TestTempo(t *testing.T) {
	tempo, ok := ParseTempo(" FAST ")
	require.True(t, ok)
	assert.Equal(t, TempoFast, tempo)

	_, ok = ParseTempo("presto")
	assert.False(t, ok)

	r := DefaultTempoRanking()
	assert.Equal(t, 0, r.Rank(TempoSlow))
	assert.Equal(t, 1, r.Rank(TempoMedium))
	assert.Equal(t, 2, r.Rank(TempoFast))
	assert.Equal(t, 2, r.Rank("Fast"))
	assert.Equal(t, 1, r.Rank("presto"))
	assert.Equal(t, 1, r.Rank(""))
}
