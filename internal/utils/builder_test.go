package querybuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSelect(t *testing.T) {
	query, args := NewQueryBuilder("roster").
		Select("id", "deity").
		From("submissions").
		Where("session_date = ?", "2024-06-06").
		And("deity_key = ?", "sai").
		Or("deity_key = ?", "rama").
		OrderBy("created_at", true).
		OrderBy("id", false).
		Build()

	assert.Equal(t,
		"SELECT id, deity FROM roster.submissions WHERE session_date = ? AND deity_key = ? OR deity_key = ? ORDER BY created_at ASC, id DESC",
		query)
	assert.Equal(t, []interface{}{"2024-06-06", "sai", "rama"}, args)
}

func TestBuildSelectWithoutSchema(t *testing.T) {
	query, args := NewQueryBuilder("").Select("id").From("submissions").Build()
	assert.Equal(t, "SELECT id FROM submissions", query)
	assert.Empty(t, args)
}

func TestBuildInsertOnConflict(t *testing.T) {
	query, args := NewQueryBuilder("").
		Insert("id", "session_date", "deity_key").
		Into("submissions").
		Values("a", "2024-06-06", "sai").
		OnConflict("session_date", "deity_key").
		DoNothing().
		Build()

	assert.Equal(t,
		"INSERT INTO submissions (id, session_date, deity_key) VALUES (?, ?, ?) ON CONFLICT (session_date, deity_key) DO NOTHING",
		query)
	assert.Equal(t, []interface{}{"a", "2024-06-06", "sai"}, args)
}

func TestBuildInsertMultipleRows(t *testing.T) {
	query, args := NewQueryBuilder("public").
		Insert("a", "b").
		Into("t").
		Values(1, 2).
		Values(3, 4).
		Build()
	assert.Equal(t, "INSERT INTO public.t (a, b) VALUES (?, ?), (?, ?)", query)
	assert.Equal(t, []interface{}{1, 2, 3, 4}, args)
}

func TestBuildInsertRejectsWrongWidth(t *testing.T) {
	query, args := NewQueryBuilder("").Insert("a", "b").Into("t").Values(1).Build()
	assert.Empty(t, query)
	assert.Nil(t, args)
}

func TestBuildEmpty(t *testing.T) {
	query, _ := NewQueryBuilder("").From("t").Build()
	assert.Empty(t, query)
}
