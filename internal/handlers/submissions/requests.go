package submissions

import "gitlab.com/bhajan-roster.net/internal/domain"

// SubmitRequest represents a request to claim one deity slot
type SubmitRequest struct {
	Deity       string `json:"deity"`
	SingerName  string `json:"singerName"`
	Gender      string `json:"gender"`
	PartnerName string `json:"partnerName"`
	Title       string `json:"title"`
	Scale       string `json:"scale"`
	Speed       string `json:"speed"`
}

func (r SubmitRequest) data() domain.SubmissionData {
	return domain.SubmissionData{
		SingerName:  r.SingerName,
		Gender:      r.Gender,
		PartnerName: r.PartnerName,
		Title:       r.Title,
		Scale:       r.Scale,
		Speed:       r.Speed,
	}
}

// SubmitResponse carries the accepted submission, or the one already holding the slot
type SubmitResponse struct {
	Status     string             `json:"status"`
	Submission *domain.Submission `json:"submission"`
	Message    string             `json:"message,omitempty"`
}

// BatchRequest represents a request to claim several slots for one singer
type BatchRequest struct {
	SingerName  string             `json:"singerName"`
	Gender      string             `json:"gender"`
	PartnerName string             `json:"partnerName"`
	Items       []domain.BatchItem `json:"items"`
}

// ListResponse is the ordered roster of a session
type ListResponse struct {
	SessionDate domain.SessionDate         `json:"sessionDate"`
	Submissions []domain.OrderedSubmission `json:"submissions"`
}
