package domain

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const sessionDateLayout = "2006-01-02"

// SessionDate identifies one singing session by calendar date (YYYY-MM-DD).
type SessionDate string

// ParseSessionDate accepts a YYYY-MM-DD date and returns its canonical form.
func ParseSessionDate(value string) (SessionDate, error) {
	t, err := time.Parse(sessionDateLayout, strings.TrimSpace(value))
	if err != nil {
		return "", fmt.Errorf("session date %q: %w", value, err)
	}
	return SessionDate(t.Format(sessionDateLayout)), nil
}

// SessionDateOf truncates a timestamp to its calendar date in the timestamp's location.
func SessionDateOf(t time.Time) SessionDate {
	return SessionDate(t.Format(sessionDateLayout))
}

func (d SessionDate) String() string {
	return string(d)
}

// Time returns midnight UTC of the session date.
func (d SessionDate) Time() time.Time {
	t, _ := time.Parse(sessionDateLayout, string(d))
	return t
}

// Value stores the date as YYYY-MM-DD text, which Postgres casts to DATE.
func (d SessionDate) Value() (driver.Value, error) {
	return string(d), nil
}

// Scan accepts DATE columns (time.Time) as well as text.
func (d *SessionDate) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*d = SessionDate(v.UTC().Format(sessionDateLayout))
	case string:
		parsed, err := ParseSessionDate(firstDatePart(v))
		if err != nil {
			return err
		}
		*d = parsed
	case []byte:
		parsed, err := ParseSessionDate(firstDatePart(string(v)))
		if err != nil {
			return err
		}
		*d = parsed
	case nil:
		*d = ""
	default:
		return fmt.Errorf("cannot scan %T into SessionDate", src)
	}
	return nil
}

// firstDatePart drops any time suffix a driver may add to a DATE value.
func firstDatePart(v string) string {
	if len(v) > len(sessionDateLayout) {
		return v[:len(sessionDateLayout)]
	}
	return v
}
