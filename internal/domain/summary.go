package domain

// DeitySlot is the fill state of one catalog deity for a session.
type DeitySlot struct {
	Deity     string `json:"deity"`
	Mandatory bool   `json:"mandatory"`
	Taken     bool   `json:"taken"`
	ClaimedBy string `json:"claimedBy,omitempty"`
	Title     string `json:"title,omitempty"`
	Scale     string `json:"scale,omitempty"`
	Speed     Tempo  `json:"speed,omitempty"`
}

// SessionSummary reports how many deity slots of a session are filled.
type SessionSummary struct {
	SessionDate     SessionDate `json:"sessionDate"`
	MandatoryFilled int         `json:"mandatoryFilled"`
	OptionalFilled  int         `json:"optionalFilled"`
	MandatoryTotal  int         `json:"mandatoryTotal"`
	OptionalTotal   int         `json:"optionalTotal"`
	Slots           []DeitySlot `json:"slots"`
}

// Slot returns the status for deity, ignoring case.
func (s SessionSummary) Slot(deity string) (DeitySlot, bool) {
	key := DeityKey(deity)
	for _, slot := range s.Slots {
		if DeityKey(slot.Deity) == key {
			return slot, true
		}
	}
	return DeitySlot{}, false
}

// SubmitOutcome is the result of a submit request that passed validation.
// When Accepted is false, Submission is the one already holding the slot.
type SubmitOutcome struct {
	Accepted   bool        `json:"accepted"`
	Submission *Submission `json:"submission"`
}

// BatchItem is one song of a batch submission.
type BatchItem struct {
	Deity string `json:"deity"`
	Title string `json:"title"`
	Scale string `json:"scale"`
	Speed string `json:"speed"`
}

// BatchItemResult reports the outcome of one batch item.
type BatchItemResult struct {
	Deity    string      `json:"deity"`
	Accepted bool        `json:"accepted"`
	Existing *Submission `json:"existing,omitempty"`
	Created  *Submission `json:"created,omitempty"`
	Error    string      `json:"error,omitempty"`
	Kind     string      `json:"kind,omitempty"`
}

// BatchResult summarises a batch submission.
type BatchResult struct {
	Accepted int               `json:"accepted"`
	Results  []BatchItemResult `json:"results"`
}
