package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ScaleNotSpecified is stored when a singer leaves the scale blank.
const ScaleNotSpecified = "Not specified"

// Submission is one accepted song for a deity slot of a session.
// It is never updated once stored.
type Submission struct {
	ID          uuid.UUID   `db:"id" json:"id"`
	SessionDate SessionDate `db:"session_date" json:"sessionDate"`
	SingerName  string      `db:"singer_name" json:"singerName"`
	Gender      string      `db:"gender" json:"gender,omitempty"`
	PartnerName *string     `db:"partner_name" json:"partnerName,omitempty"`
	Title       string      `db:"title" json:"title"`
	Deity       string      `db:"deity" json:"deity"`
	Scale       string      `db:"scale" json:"scale"`
	Speed       Tempo       `db:"speed" json:"speed"`
	CreatedAt   time.Time   `db:"created_at" json:"createdAt"`
}

// SubmissionData carries the singer-provided fields of a submit request.
type SubmissionData struct {
	SingerName  string `json:"singerName"`
	Gender      string `json:"gender"`
	PartnerName string `json:"partnerName"`
	Title       string `json:"title"`
	Scale       string `json:"scale"`
	Speed       string `json:"speed"`
}

type SubmissionTable struct {
	ID          string
	SessionDate string
	DeityKey    string
	SingerName  string
	Gender      string
	PartnerName string
	Title       string
	Deity       string
	Scale       string
	Speed       string
	CreatedAt   string
}

func GetSubmissionTable() SubmissionTable {
	return SubmissionTable{
		ID:          "id",
		SessionDate: "session_date",
		DeityKey:    "deity_key",
		SingerName:  "singer_name",
		Gender:      "gender",
		PartnerName: "partner_name",
		Title:       "title",
		Deity:       "deity",
		Scale:       "scale",
		Speed:       "speed",
		CreatedAt:   "created_at",
	}
}

func (SubmissionTable) TableName() string {
	return "submissions"
}

// Columns lists the columns read back into a Submission, in scan order.
func (t SubmissionTable) Columns() []string {
	return []string{
		t.ID, t.SessionDate, t.SingerName, t.Gender, t.PartnerName,
		t.Title, t.Deity, t.Scale, t.Speed, t.CreatedAt,
	}
}

// NewSubmission builds a submission for an already validated request.
// Blank scale becomes ScaleNotSpecified and a blank partner is dropped.
func NewSubmission(date SessionDate, deity string, speed Tempo, data SubmissionData, now time.Time) *Submission {
	scale := strings.TrimSpace(data.Scale)
	if scale == "" {
		scale = ScaleNotSpecified
	}
	var partner *string
	if p := strings.TrimSpace(data.PartnerName); p != "" {
		partner = &p
	}
	return &Submission{
		ID:          uuid.New(),
		SessionDate: date,
		SingerName:  strings.TrimSpace(data.SingerName),
		Gender:      strings.TrimSpace(data.Gender),
		PartnerName: partner,
		Title:       strings.TrimSpace(data.Title),
		Deity:       deity,
		Scale:       scale,
		Speed:       speed,
		CreatedAt:   now.UTC(),
	}
}

// DeityKey is the case-insensitive slot key for a deity name.
func DeityKey(deity string) string {
	return strings.ToLower(strings.TrimSpace(deity))
}

// OrderedSubmission is a submission with its 1-based performance position.
type OrderedSubmission struct {
	Position int `json:"position"`
	*Submission
}
